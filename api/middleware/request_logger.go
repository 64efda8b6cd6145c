package middleware

import (
	"strconv"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/util/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-Id"

	requestIDContextKey = "jazzgrid.request_id"
)

// RequestLogger 为每个请求分配 request id，记录访问日志与耗时指标
func RequestLogger(logger *zap.Logger, m *metrics.Metrics) gin.HandlerFunc {
	m = metrics.OrUnregistered(m)
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDContextKey, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		latency := time.Since(start)

		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Observe(latency.Seconds())

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("请求处理失败", fields...)
		case status >= 400:
			logger.Warn("请求被拒绝", fields...)
		default:
			logger.Info("请求完成", fields...)
		}
	}
}

// RequestID 返回当前请求的 request id
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDContextKey)
}
