// Package metrics 提供基于Prometheus的指标收集
//
// # 核心概念
//
// **1. Counter（计数器）**：只增不减的累计值
//   - 示例：HTTP请求总数、目录写操作总数
//
// **2. Gauge（仪表盘）**：可增可减的瞬时值
//   - 示例：正在处理的请求数、目录中的图书数量
//
// **3. Histogram（直方图）**：观测值的分布
//   - 示例：HTTP请求耗时
//
// # 使用示例
//
//	// 1. 初始化Metrics
//	metrics.InitMetrics()
//
//	// 2. 在独立端口暴露/metrics端点（不占用业务路由）
//	r := gin.New()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//	go http.ListenAndServe(":9090", r)
//
//	// 3. 在业务代码中记录指标
//	metrics.IncCounterVec(metrics.CatalogMutationsTotal, map[string]string{
//	    "operation": "add",
//	    "result":    "created",
//	})
//
// # 常见指标命名规范
//
// 1. **Counter**: 以`_total`结尾
// 2. **Histogram**: 以单位结尾（`_seconds`、`_bytes`）
// 3. **Gauge**: 描述当前状态（`catalog_books`）
//
// 便捷函数对未初始化的指标是空操作，单元测试里不调用InitMetrics也不会panic。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initOnce 防止重复注册
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板，未匹配为"unmatched"）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 目录查询都在内存里完成，桶从0.5ms开始
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 目录业务指标

	// CatalogMutationsTotal 目录写操作总数（Counter）
	// 标签：operation（add/review）、result（created/updated/rejected）
	CatalogMutationsTotal *prometheus.CounterVec

	// CatalogBooks 目录中的图书数量（Gauge）
	CatalogBooks prometheus.Gauge

	// 查询缓存指标

	// QueryCacheRequests 查询缓存访问总数（Counter）
	// 标签：result（hit/miss/error/rejected）
	QueryCacheRequests *prometheus.CounterVec

	// 熔断器指标

	// CircuitBreakerState 熔断器状态（Gauge）
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// 消息队列指标

	// EventsPublishedTotal 目录事件发布总数（Counter）
	// 标签：routing_key（book.added等）、result（success/failure）
	EventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用，用于注册所有指标到全局Registry。
// 多次调用是安全的（sync.Once）。
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		CatalogMutationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_mutations_total",
				Help: "目录写操作总数",
			},
			[]string{"operation", "result"},
		)

		CatalogBooks = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_books",
				Help: "目录中的图书数量",
			},
		)

		QueryCacheRequests = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "query_cache_requests_total",
				Help: "查询缓存访问总数",
			},
			[]string{"result"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)

		EventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_events_published_total",
				Help: "目录事件发布总数",
			},
			[]string{"routing_key", "result"},
		)
	})
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge == nil {
		return
	}
	gauge.Set(value)
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
