package middleware

import (
	"crypto-analysis/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRequestLoggerMiddleware logs one line per request and stores a
// request-scoped logger in the request context.
func NewRequestLoggerMiddleware(log *logger.Logger) echo.MiddlewareFunc {
	attach := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqLog := log.With(logger.StringField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))
			ctx := logger.NewContext(c.Request().Context(), reqLog)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}

	requestLog := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			reqLog := log.With(
				logger.StringField("request_id", v.RequestID),
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.StringField("remote_ip", v.RemoteIP),
				logger.StringField("latency", v.Latency.String()),
			)
			if v.Error != nil {
				reqLog.Error("Request failed", logger.ErrorField(v.Error))
				return nil
			}
			reqLog.Info("Request handled")
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return requestLog(attach(next))
	}
}
