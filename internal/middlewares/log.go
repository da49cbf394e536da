package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestId = "request-id"

func LogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(RequestId, id)

		slog.Info("Handling request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		slog.Info("Finish handling request", "id", id, "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "time", elapsed)
	}
}
