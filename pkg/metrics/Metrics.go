package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const NAMESPACE = "smrinv"

// Registry holds every inventory metric; it is what the API serves on /metrics.
var Registry = NewRegistry()

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return registry
}

func NewCounter(name string, help string, labels []string) *Counter {
	counter := &Counter{
		metric: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: NAMESPACE,
				Name:      name,
				Help:      help,
			},
			labels,
		),
	}

	counter.Register(Registry)
	return counter
}

func NewGauge(name string, help string, labels []string) *Gauge {
	gauge := &Gauge{
		metric: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: NAMESPACE,
				Name:      name,
				Help:      help,
			},
			labels,
		),
	}

	gauge.Register(Registry)
	return gauge
}

func NewHistogram(name string, help string, labels []string) *Histogram {
	histogram := &Histogram{
		metric: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: NAMESPACE,
				Name:      name,
				Help:      help,
				Buckets:   prometheus.DefBuckets,
			},
			labels,
		),
	}

	histogram.Register(Registry)
	return histogram
}
