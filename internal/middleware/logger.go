package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connecthub/connecthub-go/internal/security"
)

// Logger returns a request logging middleware. Authenticated requests carry
// the acting profile's ID so log lines correlate with profile activity.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Duration("latency", latency),
			zap.String("request_id", GetRequestID(c)),
		}

		if id := actingProfileID(c); id != "" {
			fields = append(fields, zap.String("profile_id", id))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("server error", fields...)
		case status >= 400:
			logger.Warn("client error", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// actingProfileID reads the authenticated profile's ID from the claims the
// auth middleware stored, without requiring a SecurityService instance.
func actingProfileID(c *gin.Context) string {
	v, exists := c.Get(security.ContextKeyClaims)
	if !exists {
		return ""
	}
	if claims, ok := v.(*security.ProfileClaims); ok {
		return claims.ProfileID
	}
	return ""
}
