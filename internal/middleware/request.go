package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/metrics"
)

const (
	HeaderRequestID  = "X-Request-ID"
	ContextRequestID = "requestID"
)

// RequestID keeps a caller-supplied X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger logs one line per request. Errors attached with c.Error,
// which httperr.Respond does for unexpected failures, are logged with it.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"route":      c.FullPath(),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.GetString(ContextRequestID),
			"client_ip":  c.ClientIP(),
		}
		if userID, ok := c.Get(ContextUserID); ok {
			fields["user_id"] = userID
		}

		switch {
		case len(c.Errors) > 0:
			fields["error"] = c.Errors.String()
			log.Error("request failed", fields)
		case c.Writer.Status() >= 500:
			log.Error("request failed", fields)
		case c.Writer.Status() >= 400:
			log.Warn("request rejected", fields)
		default:
			log.Info("request handled", fields)
		}
	}
}

// Metrics records request count and latency by route template, so path
// parameters do not explode label cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
