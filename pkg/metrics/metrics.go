// Package metrics 提供 Prometheus helper，包含常用 counter/gauge/histogram 模板
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal prometheus.Counter
	// HTTP 请求耗时
	HTTPRequestDuration prometheus.Histogram
	// HTTP 响应大小
	HTTPResponseSize prometheus.Histogram

	// 数据库查询计数
	DBQueriesTotal prometheus.Counter
	// 数据库查询耗时
	DBQueryDuration prometheus.Histogram

	// Redis 操作计数
	RedisOpsTotal prometheus.Counter
	// Redis 操作耗时
	RedisOpDuration prometheus.Histogram

	// 业务指标
	SearchesTotal       prometheus.Counter
	SearchDuration      prometheus.Histogram
	CouponsAppliedTotal prometheus.Counter
	CartsActive         prometheus.Gauge
	OrdersTotal         prometheus.Counter
	PaymentsFailedTotal prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	return &Metrics{
		// HTTP 指标
		HTTPRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}),
		HTTPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		HTTPResponseSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "http_response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   []float64{100, 1000, 10000, 100000, 1000000},
		}),

		// 数据库指标
		DBQueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "db_queries_total",
			Help:      "Total database queries",
		}),
		DBQueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		// Redis 指标
		RedisOpsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "redis_ops_total",
			Help:      "Total Redis operations",
		}),
		RedisOpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "redis_op_duration_seconds",
			Help:      "Redis operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		// 业务指标
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "searches_total",
			Help:      "Total product searches executed",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "search_duration_seconds",
			Help:      "Product search duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		CouponsAppliedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "coupons_applied_total",
			Help:      "Total coupons successfully applied",
		}),
		CartsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "carts_active",
			Help:      "Number of carts with at least one item",
		}),
		OrdersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "orders_total",
			Help:      "Total orders placed",
		}),
		PaymentsFailedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "beauty",
			Subsystem: serviceName,
			Name:      "payments_failed_total",
			Help:      "Total payment attempts that did not complete",
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register() error {
	metrics := []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPResponseSize,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.RedisOpsTotal,
		m.RedisOpDuration,
		m.SearchesTotal,
		m.SearchDuration,
		m.CouponsAppliedTotal,
		m.CartsActive,
		m.OrdersTotal,
		m.PaymentsFailedTotal,
	}

	for _, metric := range metrics {
		if err := prometheus.DefaultRegisterer.Register(metric); err != nil {
			logger.Error(context.Background(), "Failed to register metric", "error", err)
			return err
		}
	}

	logger.Info(context.Background(), "Metrics registered successfully")
	return nil
}

// StartHTTPServer 启动 Prometheus HTTP 服务器
func StartHTTPServer(port int, path string) error {
	if path == "" {
		path = "/metrics"
	}

	http.Handle(path, promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info(context.Background(), "Starting Prometheus HTTP server", "addr", addr, "path", path)

	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Error(context.Background(), "Failed to start Prometheus HTTP server", "error", err)
		}
	}()

	return nil
}

// Collector 指标收集器接口
type Collector interface {
	// 记录搜索
	RecordSearch(duration float64)
	// 记录优惠券应用
	RecordCouponApplied()
	// 更新活跃购物车数
	UpdateActiveCarts(count int64)
	// 记录下单
	RecordOrder()
	// 记录支付失败
	RecordPaymentFailed()
}

// DefaultCollector 默认指标收集器实现
type DefaultCollector struct {
	metrics *Metrics
}

// NewDefaultCollector 创建默认指标收集器
func NewDefaultCollector(metrics *Metrics) *DefaultCollector {
	return &DefaultCollector{metrics: metrics}
}

// RecordSearch 记录搜索
func (dc *DefaultCollector) RecordSearch(duration float64) {
	dc.metrics.SearchesTotal.Inc()
	dc.metrics.SearchDuration.Observe(duration)
}

// RecordCouponApplied 记录优惠券应用
func (dc *DefaultCollector) RecordCouponApplied() {
	dc.metrics.CouponsAppliedTotal.Inc()
}

// UpdateActiveCarts 更新活跃购物车数
func (dc *DefaultCollector) UpdateActiveCarts(count int64) {
	dc.metrics.CartsActive.Set(float64(count))
}

// RecordOrder 记录下单
func (dc *DefaultCollector) RecordOrder() {
	dc.metrics.OrdersTotal.Inc()
}

// RecordPaymentFailed 记录支付失败
func (dc *DefaultCollector) RecordPaymentFailed() {
	dc.metrics.PaymentsFailedTotal.Inc()
}
