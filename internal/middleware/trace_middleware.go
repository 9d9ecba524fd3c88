package middleware

import (
	"context"

	"eventRadar/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const TraceIDHeader = "X-Trace-Id"

// TraceID attaches a per-request trace id to the request context.
// An incoming X-Trace-Id header is reused, otherwise one is generated.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommend.TraceIDKey, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}
