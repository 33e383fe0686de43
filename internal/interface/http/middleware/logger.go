package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
)

// RequestLogger 请求日志中间件
// 设计说明:
// 1. 每个请求生成唯一请求ID,写入响应头X-Request-ID便于排查
// 2. 记录方法、路径、状态码、耗时、客户端IP
// 3. 不记录请求体与Token等敏感信息
// 4. 慢请求(>3s)单独给警告
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	httpLog := log.Named("http")

	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			httpLog.Error("请求完成", fields...)
		case c.Writer.Status() >= 400:
			httpLog.Warn("请求完成", fields...)
		default:
			httpLog.Info("请求完成", fields...)
		}

		if latency > 3*time.Second {
			httpLog.Warn("慢请求",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("latency", latency),
			)
		}
	}
}
