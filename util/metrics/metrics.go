package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jazzgrid"

// Metrics 进程内 Prometheus 指标
type Metrics struct {
	GuessOutcomes   *prometheus.CounterVec   // 猜测结果计数（outcome）
	CatalogRequests *prometheus.HistogramVec // 目录请求耗时（endpoint, status）
	CompletedGrids  prometheus.Counter       // 完成整张网格的次数
	SecondaryWrites *prometheus.CounterVec   // 被吞掉的次要写入失败（operation）
	HTTPRequests    *prometheus.HistogramVec // HTTP 请求耗时（method, route, status）
}

// New 在给定 Registerer 上注册全部指标
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GuessOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guess_outcomes_total",
			Help:      "Guess submissions by outcome.",
		}, []string{"outcome"}),
		CatalogRequests: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_request_duration_seconds",
			Help:      "Latency of music catalog requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "status"}),
		CompletedGrids: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completed_grids_total",
			Help:      "Grids completed by players.",
		}),
		SecondaryWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "secondary_write_failures_total",
			Help:      "Best-effort writes that failed and were skipped.",
		}, []string{"operation"}),
		HTTPRequests: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// OrUnregistered 未注入指标时退回到独立 Registry，调用方无需判空
func OrUnregistered(m *Metrics) *Metrics {
	if m != nil {
		return m
	}
	return NewUnregistered()
}

// NewUnregistered 测试用，指标不挂到全局 Registerer
func NewUnregistered() *Metrics {
	return New(prometheus.NewRegistry())
}
