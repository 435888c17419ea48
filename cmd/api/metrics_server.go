package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xiebiao/bookcatalog/pkg/response"
)

// newMetricsEngine 指标端口上的路由
// /metrics 给Prometheus抓取，/healthz 给探针用，都不走业务中间件
func newMetricsEngine() *gin.Engine {
	r := gin.New()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, response.Message{Message: "ok"})
	})
	return r
}
