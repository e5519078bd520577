package api

import (
	"errors"
	"net/http"
	"time"

	models "SajuCore/internal/domain/models"
	"SajuCore/internal/saju/analysis"
	"SajuCore/internal/saju/calendar"
	svcmetrics "SajuCore/internal/service/metrics"
	"SajuCore/internal/service/ratelimit"
	"SajuCore/internal/usecase"
	xhttp "SajuCore/pkg/http"
	xlogger "SajuCore/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SajuEchoHandler implements Echo-based HTTP handlers following Clean Architecture.
type SajuEchoHandler struct {
	logger   *xlogger.Logger
	readings *usecase.ReadingProcessor
	info     *usecase.InfoCatalogue
	limiter  *ratelimit.Limiter
	rateCap  float64
	rateRPS  float64
}

func NewSajuEchoHandler(logger *xlogger.Logger, readings *usecase.ReadingProcessor, info *usecase.InfoCatalogue, limiter *ratelimit.Limiter, rateCap, rateRPS float64) *SajuEchoHandler {
	svcmetrics.Register()
	return &SajuEchoHandler{
		logger:   logger,
		readings: readings,
		info:     info,
		limiter:  limiter,
		rateCap:  rateCap,
		rateRPS:  rateRPS,
	}
}

func (h *SajuEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api/v1/saju")
	if h.limiter != nil {
		g.Use(h.rateLimit)
	}
	g.POST("/calculate", h.Calculate)
	g.POST("/compatibility", h.Compatibility)
	g.GET("/info/:type", h.Info)
	g.GET("/history", h.History)
}

func (h *SajuEchoHandler) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.limiter.Allow(c.RealIP(), h.rateCap, h.rateRPS) {
			svcmetrics.RateLimited.WithLabelValues(c.Path()).Inc()
			return xhttp.DataResponse(c, http.StatusTooManyRequests,
				xhttp.NewAppError("rate_limited", "", "too many requests", http.StatusTooManyRequests))
		}
		return next(c)
	}
}

func (h *SajuEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *SajuEchoHandler) Calculate(c echo.Context) error {
	start := time.Now()
	req := &models.CalculateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.readings.Calculate(c.Request().Context(), req)
	svcmetrics.EndpointLatency.WithLabelValues("calculate").Observe(time.Since(start).Seconds())
	if err != nil {
		svcmetrics.EndpointErrors.WithLabelValues("calculate").Inc()
		return h.engineError(c, "calculate", err)
	}
	h.logger.Debug("calculate served",
		xlogger.String("date", req.BirthDate),
		xlogger.Duration("elapsed", time.Since(start)))
	return xhttp.SuccessResponse(c, res)
}

func (h *SajuEchoHandler) Compatibility(c echo.Context) error {
	req := &models.CompatibilityRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	start := time.Now()
	res, err := h.readings.Compatibility(c.Request().Context(), req)
	svcmetrics.EndpointLatency.WithLabelValues("compatibility").Observe(time.Since(start).Seconds())
	if err != nil {
		svcmetrics.EndpointErrors.WithLabelValues("compatibility").Inc()
		return h.engineError(c, "compatibility", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SajuEchoHandler) Info(c echo.Context) error {
	req := &models.InfoRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	data := h.info.Lookup(req.Type)
	if data == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundErrorf("unknown info type %q", req.Type))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")
	return xhttp.SuccessResponse(c, data)
}

func (h *SajuEchoHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rows, err := h.readings.History(c.Request().Context(), req.Limit, req.Offset)
	if err != nil {
		h.logger.Error("history usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

// engineError maps calculator and analyzer failures onto HTTP statuses:
// bad input is the caller's fault, a lunar date with no solar equivalent
// is unprocessable, anything else is ours.
func (h *SajuEchoHandler) engineError(c echo.Context, op string, err error) error {
	var (
		rangeErr  *calendar.RangeError
		formatErr *calendar.FormatError
		convErr   *calendar.ConversionError
		missing   *analysis.MissingDayMasterError
	)
	switch {
	case errors.As(err, &rangeErr), errors.As(err, &formatErr):
		return xhttp.BadRequestResponse(c, xhttp.BadRequestError(err.Error()))
	case errors.As(err, &convErr):
		return xhttp.DataResponse(c, http.StatusUnprocessableEntity,
			xhttp.NewAppError("unconvertible", "birth_date", err.Error(), http.StatusUnprocessableEntity))
	case errors.As(err, &missing):
		h.logger.Error(op+" incomplete chart", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError(err.Error()))
	default:
		h.logger.Error(op+" usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
}
