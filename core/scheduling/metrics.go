package scheduling

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	strategyDuration *prometheus.HistogramVec
	optionScore      *prometheus.GaugeVec
	strategySelected *prometheus.CounterVec
	runsTotal        prometheus.Counter
	runsFailed       prometheus.Counter
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.HistogramVec, *prometheus.GaugeVec, *prometheus.CounterVec, prometheus.Counter, prometheus.Counter) {
	dur := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scheduling_strategy_duration_seconds",
			Help:    "Solving time per strategy",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)
	score := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scheduling_option_score",
			Help: "Composite score of the last option produced per strategy",
		},
		[]string{"strategy"},
	)
	sel := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduling_strategy_selected_total",
			Help: "Number of runs each strategy won",
		},
		[]string{"strategy"},
	)
	runs := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scheduling_runs_total",
			Help: "Number of scheduling runs started",
		},
	)
	failed := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scheduling_runs_failed_total",
			Help: "Number of scheduling runs that produced no usable option",
		},
	)
	return dur, score, sel, runs, failed
}

func init() {
	strategyDuration, optionScore, strategySelected, runsTotal, runsFailed = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers scheduling metrics on the provided
// registry. If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(strategyDuration, optionScore, strategySelected, runsTotal, runsFailed)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	strategyDuration, optionScore, strategySelected, runsTotal, runsFailed = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
