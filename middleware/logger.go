package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// requestIDKey is the locals key carrying the per-request ID that error
// responses echo back.
const requestIDKey = "requestID"

// GetRequestID returns the request ID tagged by StructuredLogger, or ""
// outside of it.
func GetRequestID(c *fiber.Ctx) string {
	id, ok := c.Locals(requestIDKey).(string)
	if !ok {
		return ""
	}
	return id
}

// StructuredLogger tags every request with an ID and emits one slog line
// when it finishes. A gateway-supplied X-Request-ID is kept so log lines
// correlate across services; otherwise one is minted here.
func StructuredLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(requestIDKey, requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		status := c.Response().StatusCode()

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("ip", c.IP()),
		}
		if userID := GetUserID(c); userID != "" {
			attrs = append(attrs, slog.String("user_id", userID))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		msg, level := "request completed", slog.LevelInfo
		switch {
		case err != nil || status >= 500:
			msg, level = "request failed", slog.LevelError
		case status >= 400:
			msg, level = "client error", slog.LevelWarn
		}
		logger.LogAttrs(c.Context(), level, msg, attrs...)

		return err
	}
}
