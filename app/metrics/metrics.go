package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	instructions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "namechain",
			Subsystem: "registry",
			Name:      "instructions_total",
			Help:      "Count of executed instructions classified by operation and result",
		},
		[]string{"op", "result"},
	)

	executeSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "namechain",
			Subsystem: "registry",
			Name:      "execute_seconds",
			Help:      "Time spent executing one instruction end to end",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)
)

func ensureRegistered() {
	registerOnce.Do(func() {
		prometheus.MustRegister(instructions, executeSeconds)
	})
}

func InstructionsCounter() *prometheus.CounterVec {
	ensureRegistered()
	return instructions
}

func ExecuteObserver() prometheus.Observer {
	ensureRegistered()
	return executeSeconds
}
