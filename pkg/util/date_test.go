package util

import "testing"

func TestParseDate(t *testing.T) {
	y, m, d, ok := ParseDate("1990-05-15")
	if !ok || y != 1990 || m != 5 || d != 15 {
		t.Fatalf("ParseDate = %d-%d-%d ok=%v", y, m, d, ok)
	}
	if _, _, _, ok := ParseDate("1990-13-40"); ok {
		t.Errorf("invalid date accepted")
	}
	if _, _, _, ok := ParseDate("15/05/1990"); ok {
		t.Errorf("wrong format accepted")
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("42", 7); got != 42 {
		t.Errorf("ParseIntDefault(42) = %d", got)
	}
	if got := ParseIntDefault("", 7); got != 7 {
		t.Errorf("empty default = %d", got)
	}
	if got := ParseIntDefault("x2", 7); got != 7 {
		t.Errorf("invalid default = %d", got)
	}
}
