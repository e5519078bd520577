package di

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"SajuCore/internal/domain/repository"
	"SajuCore/internal/handler/api"
	internalrepo "SajuCore/internal/repository"
	"SajuCore/internal/saju/calendar"
	icache "SajuCore/internal/service/cache"
	"SajuCore/internal/service/ratelimit"
	"SajuCore/internal/usecase"
	pkgcache "SajuCore/pkg/cache"
	pkgch "SajuCore/pkg/clickhouse"
	"SajuCore/pkg/config"
	xhttp "SajuCore/pkg/http"
	pkgkafka "SajuCore/pkg/kafka"
	applogger "SajuCore/pkg/logger"
	"SajuCore/pkg/metrics"
	"SajuCore/pkg/server"
)

// ProvideLogger creates the application logger from the environment name.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := "info"
	if cfg.Environment == "development" {
		level = "debug"
	}
	return applogger.New(&applogger.Config{Level: level, Format: "console", Output: "stdout"})
}

// ProvideCalculator creates the four-pillar calculator with its lunar
// converter and configured year bounds.
func ProvideCalculator(cfg *config.Config) *calendar.Calculator {
	var opts []calendar.Option
	if cfg.Saju.MinYear != 0 && cfg.Saju.MaxYear != 0 {
		opts = append(opts, calendar.WithYearBounds(cfg.Saju.MinYear, cfg.Saju.MaxYear))
	}
	return calendar.NewCalculator(calendar.NewLunarGoConverter(), opts...)
}

// ProvideClickHouseClient creates a ClickHouse client, or nil when the
// history store is disabled.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	table := historyTable(cfg)
	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS " + cfg.ClickHouse.Database,
		"CREATE TABLE IF NOT EXISTS " + table + " (" +
			"ts DateTime, digest String, kind LowCardinality(String), " +
			"birth_date String, birth_time String, gender LowCardinality(String), calendar LowCardinality(String), " +
			"year_pillar UInt8, month_pillar UInt8, day_pillar UInt8, hour_pillar UInt8, " +
			"strength_band LowCardinality(String), pattern LowCardinality(String), " +
			"mode LowCardinality(String), score Float64" +
			") ENGINE=MergeTree ORDER BY (ts, digest)",
	}); err != nil {
		_ = client.Close() // cannot log here (DI layer no logger); propagate error
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

func historyTable(cfg *config.Config) string {
	table := cfg.History.Table
	if table == "" {
		table = "saju_readings"
	}
	return cfg.ClickHouse.Database + "." + table
}

// ProvideKafkaProducer creates a Kafka producer, or nil when events are
// disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideReadingStore creates the ClickHouse reading history store.
func ProvideReadingStore(chClient *pkgch.Client, cfg *config.Config) repository.ReadingStore {
	if chClient == nil {
		return nil
	}
	return internalrepo.NewClickHouseReadingStore(chClient.DB(), historyTable(cfg))
}

// ProvideReadingPublisher creates the Kafka reading-event publisher.
func ProvideReadingPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic)
}

// ProvideKafkaConsumer creates a Kafka consumer configured from YAML,
// or nil when the ingest side is disabled.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	if !cfg.Kafka.Enabled || !cfg.Kafka.Consumer.Enabled {
		return nil, nil
	}
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithConsumerDLQ(cfg.Kafka.Consumer.DLQTopic),
		pkgkafka.WithConsumerFetch(cfg.Kafka.Consumer.MinBytes, cfg.Kafka.Consumer.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideKafkaReadingsHandler registers handler for the readings topic.
func ProvideKafkaReadingsHandler(store repository.ReadingStore, metrics repository.Metrics, cfg *config.Config) *usecase.KafkaReadingsHandler {
	return usecase.NewKafkaReadingsHandler(cfg.Kafka.Topic, store, metrics)
}

// ProvideCache creates the reading cache: layered memory+redis when
// redis is configured, an in-process TTL cache otherwise.
func ProvideCache(cfg *config.Config) (icache.BytesCache, error) {
	if !cfg.Saju.Redis.Enabled {
		return icache.NewTTLCache(), nil
	}

	host, port := splitHostPort(cfg.Saju.Redis.Addr, 6379)
	redisCache, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(host),
		pkgcache.WithRedisPort(port),
		pkgcache.WithRedisPassword(cfg.Saju.Redis.Password),
		pkgcache.WithRedisDB(cfg.Saju.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	layered := pkgcache.NewLayeredCache(redisCache, pkgcache.WithLayeredMemorySize(2000))
	return icache.NewLayeredBytes(layered), nil
}

func splitHostPort(addr string, defaultPort int) (string, int) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, defaultPort
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return host, defaultPort
	}
	return host, port
}

// ProvideRateLimiter creates the per-IP limiter, or nil when disabled.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.Server.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New()
}

// ProvideReadingProcessor creates the reading use case.
func ProvideReadingProcessor(
	calc *calendar.Calculator,
	store repository.ReadingStore,
	pub repository.Publisher,
	metrics repository.Metrics,
	cache icache.BytesCache,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.ReadingProcessor {
	ttl := cfg.Saju.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return usecase.NewReadingProcessor(calc, store, pub, metrics, cache, ttl, logger)
}

// ProvideInfoCatalogue creates the static reference catalogue.
func ProvideInfoCatalogue() *usecase.InfoCatalogue {
	return usecase.NewInfoCatalogue()
}

// ProvideHTTPHandler creates the Echo API handler.
func ProvideHTTPHandler(
	logger *applogger.Logger,
	readings *usecase.ReadingProcessor,
	info *usecase.InfoCatalogue,
	limiter *ratelimit.Limiter,
	cfg *config.Config,
) xhttp.Handler {
	burst := cfg.Server.RateLimit.Burst
	if burst <= 0 {
		burst = 20
	}
	rps := cfg.Server.RateLimit.PerSecond
	if rps <= 0 {
		rps = 10
	}
	return api.NewSajuEchoHandler(logger, readings, info, limiter, burst, rps)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	producer *pkgkafka.Producer,
	consumer *pkgkafka.Consumer,
	kh *usecase.KafkaReadingsHandler,
	chClient *pkgch.Client,
	store repository.ReadingStore,
	pub repository.Publisher,
) *server.App {
	if consumer != nil {
		trace := pkgkafka.HookFuncs{
			Before: func(ctx context.Context, _ string, km kafkago.Message, data []byte) (context.Context, kafkago.Message, []byte, error) {
				ctx = pkgkafka.WithStartTime(ctx, time.Now())
				ctx = pkgkafka.WithTraceID(ctx, pkgkafka.ExtractTraceID(km))
				return ctx, km, data, nil
			},
		}
		failures := pkgkafka.HookFuncs{
			Err: func(_ context.Context, topic string, _ kafkago.Message, _ []byte, err error) {
				logger.Warn("kafka message failed", applogger.String("topic", topic), applogger.Error(err))
			},
		}
		consumer.WithConsumerHook(pkgkafka.NewHookChain(trace, failures))
	}
	if producer != nil {
		logger.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   30 * time.Second,
			CountThreshold: 100,
			Topic:          "saju.logs",
			Publisher:      kafkaLogSink{producer},
		})
	}
	return server.New(cfg, logger, handler, consumer, kh, chClient, store, pub)
}

// kafkaLogSink ships aggregated error logs through the shared producer.
type kafkaLogSink struct {
	producer *pkgkafka.Producer
}

func (s kafkaLogSink) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return s.producer.Publish(ctx, topic, nil, payload)
}
