package schedule

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 调度器的 Prometheus 指标
type Metrics struct {
	RunsTotal     *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec
	TripletsFound *prometheus.CounterVec
}

// NewMetrics 创建并注册指标
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zerosum_task_runs_total",
			Help: "Total task runs by task and final status.",
		}, []string{"task", "status"}),
		RunDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zerosum_task_run_duration_seconds",
			Help:    "Duration of task runs in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8), // 1ms .. ~16s
		}, []string{"task"}),
		TripletsFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zerosum_triplets_found_total",
			Help: "Total zero-sum triplets found by task.",
		}, []string{"task"}),
	}
	reg.MustRegister(m.RunsTotal, m.RunDuration, m.TripletsFound)
	return m
}

// OnTriplets 作为 local.FoundHook 使用
func (m *Metrics) OnTriplets(taskName string, count int) {
	if m == nil {
		return
	}
	m.TripletsFound.WithLabelValues(taskName).Add(float64(count))
}

func (m *Metrics) observeRun(taskName, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(taskName, status).Inc()
	m.RunDuration.WithLabelValues(taskName).Observe(d.Seconds())
}
