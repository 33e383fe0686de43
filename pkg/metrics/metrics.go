// Package metrics 提供基于Prometheus的指标收集
//
// 核心概念：
// - **Counter（计数器）**：只增不减的累计值（如HTTP请求总数）
// - **Gauge（仪表盘）**：可增可减的瞬时值（如正在处理的请求数）
// - **Histogram（直方图）**：观测值的分布，自动计算分位数（如请求耗时P99）
//
// 使用方式：
//
//	// 1. 启动时初始化一次
//	metrics.InitMetrics()
//
//	// 2. Gin路由上挂/metrics端点（见middleware.Metrics）
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 业务代码记录指标
//	metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
//	    "method": "POST", "path": "/api/books", "status": "201",
//	})
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds）。
// 标签只用有限取值的维度（method/path/status/entity），不要用id类高基数标签。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册panic）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/authors）、status（200/404/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// EntityWritesTotal 实体写操作总数（Counter）
	// 标签：entity（author/book）、op（create/update/delete）、result（success/failure）
	EntityWritesTotal *prometheus.CounterVec

	// UsersRegisteredTotal 注册用户总数（Counter）
	UsersRegisteredTotal prometheus.Counter

	// LoginsTotal 登录请求总数（Counter）
	// 标签：result（success/failure）
	LoginsTotal *prometheus.CounterVec

	// 消息队列指标

	// MessagesPublishedTotal 审计事件发布总数（Counter）
	// 标签：exchange（交换机）、routing_key（路由键）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，注册所有指标到默认Registry。
// 设计要点：
// 1. promauto.New*自动注册，重复注册会panic，所以用initialized守护
// 2. Histogram的Buckets覆盖常见HTTP耗时（1ms~10s）
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

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
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	EntityWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_writes_total",
			Help: "实体写操作总数",
		},
		[]string{"entity", "op", "result"},
	)

	UsersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "注册用户总数",
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "登录请求总数",
		},
		[]string{"result"},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "审计事件发布总数",
		},
		[]string{"exchange", "routing_key"},
	)
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
