package middleware

import (
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestLoggerMiddleware injects a request-scoped logger carrying the
// request ID into the request context, so use cases can correlate their logs
// with the incoming request.
type RequestLoggerMiddleware struct {
	logger *slog.Logger
}

// NewRequestLoggerMiddleware creates a new request logger middleware
func NewRequestLoggerMiddleware(logger *slog.Logger) *RequestLoggerMiddleware {
	return &RequestLoggerMiddleware{logger: logger}
}

// Process attaches the request ID and a scoped logger to the request context.
func (m *RequestLoggerMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("requestID", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
