// Package middleware provides the request-scoped gin middleware shared by all routes.
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact_backend/internal/api"
	jwtmw "contact_backend/internal/platform/jwt"
	"contact_backend/internal/shared/apperr"
)

// AccessLog writes one structured line per request after it completes.
// The raw query string is not logged.
func AccessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if userID, ok := jwtmw.UserIDFrom(c); ok {
			fields = append(fields, zap.Uint("user_id", userID))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Recovery turns a panic in a later handler into a 500 envelope.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if r == http.ErrAbortHandler {
					panic(r)
				}
				log.Error("panic recovered",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				if c.Writer.Written() {
					c.Abort()
					return
				}
				api.Fail(c, zap.NewNop(), apperr.Wrap(apperr.ErrInternal, fmt.Errorf("panic: %v", r)))
			}
		}()
		c.Next()
	}
}

// NotFound answers unknown routes with the standard envelope.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, api.Response{Success: false, Message: "route not found"})
}
