// Package metrics exposes Prometheus collectors for the RPC layer and
// serves them, with a health probe, on a separate HTTP listener.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Counts reports collection sizes for the gauges. Nil funcs are skipped.
type Counts struct {
	Users    func() int
	Services func() int
}

// Metrics records RPC outcomes.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. Collectors that
// are already registered are reused.
func New(reg prometheus.Registerer, counts Counts) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "servico_rpc_requests_total",
		Help: "RPC calls handled, by method and status code.",
	}, []string{"method", "code"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "servico_rpc_duration_seconds",
		Help:    "RPC handling latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	m := &Metrics{}
	c, err := registerCollector(reg, requests)
	if err != nil {
		return nil, err
	}
	m.requests = c.(*prometheus.CounterVec)

	c, err = registerCollector(reg, duration)
	if err != nil {
		return nil, err
	}
	m.duration = c.(*prometheus.HistogramVec)

	if counts.Users != nil {
		if _, err := registerCollector(reg, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "servico_users_total",
			Help: "Users currently stored.",
		}, func() float64 { return float64(counts.Users()) })); err != nil {
			return nil, err
		}
	}
	if counts.Services != nil {
		if _, err := registerCollector(reg, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "servico_services_total",
			Help: "Service records currently stored.",
		}, func() float64 { return float64(counts.Services()) })); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveRPC counts one call and records its latency.
func (m *Metrics) ObserveRPC(method, code string, d time.Duration) {
	m.requests.WithLabelValues(method, code).Inc()
	m.duration.WithLabelValues(method).Observe(d.Seconds())
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector, nil
		}
		return nil, err
	}
	return c, nil
}
