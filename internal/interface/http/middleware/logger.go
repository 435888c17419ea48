package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// SlowRequestThreshold 超过这个耗时记一条warn
var SlowRequestThreshold = time.Second

// Logger 请求日志中间件
//
// 要点：
// 1. 记录每个请求的方法、路径、状态码、耗时、客户端IP
// 2. 生成唯一的请求ID，写进响应头X-Request-ID，便于排查
// 3. handler通过c.Error挂上来的内部错误在这里统一记录
// 4. 挂在Tracing中间件之前时，同时记录trace_id
// 5. 不记录请求体
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			fields = append(fields, zap.String("trace_id", traceID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		log.Check(levelFor(status), "http request").Write(fields...)

		if latency > SlowRequestThreshold {
			log.Warn("slow request",
				zap.String("request_id", requestID),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("latency", latency),
			)
		}
	}
}

// GetRequestID 当前请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// levelFor 5xx记error，其余info
func levelFor(status int) zapcore.Level {
	if status >= 500 {
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}
