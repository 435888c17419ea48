package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"

	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const httpTracerName = "http-server"

// Tracing 为每个请求创建一个Server Span
// 1. 从请求头提取上游的Trace Context(W3C traceparent)
// 2. 把带Span的context放回c.Request，领域服务里的Span会挂在它下面
// 3. 未初始化TracerProvider时是空操作
func Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		spanName := c.FullPath()
		if spanName == "" {
			spanName = unmatchedPath
		}
		ctx, span := tracing.StartSpan(ctx, httpTracerName, c.Request.Method+" "+spanName)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.target", c.Request.URL.Path),
			attribute.Int("http.status_code", status),
		)
		if status >= 500 {
			span.SetStatus(codes.Error, c.Errors.String())
		}
	}
}
