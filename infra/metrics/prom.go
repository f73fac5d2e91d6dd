package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/jaewonkim/ivsched/core/metrics"
)

// PromSink records run results in Prometheus metrics.
type PromSink struct {
	results   *prometheus.CounterVec
	placement *prometheus.GaugeVec
	solve     *prometheus.HistogramVec
}

// NewPromSink registers run metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. If the
// collectors are already registered, the existing ones are reused.
func NewPromSinkWithRegistry(_ Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	results := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "interview_run_results_total",
		Help: "Total number of strategy results produced across runs",
	}, []string{"strategy", "selected", "time_limited"})
	placement := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "interview_placement_ratio",
		Help: "Fraction of teams placed by the last result per strategy",
	}, []string{"strategy"})
	solve := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "interview_solve_seconds",
		Help:    "Time each strategy spent solving",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy", "selected"})

	if err := reg.Register(results); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			results = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(placement); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			placement = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(solve); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solve = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{results: results, placement: placement, solve: solve}, nil
}

// RecordRunResult increments counters and observes solve time for each
// strategy result of a run.
func (s *PromSink) RecordRunResult(res []coremetrics.RunResult) error {
	for _, r := range res {
		sel := strconv.FormatBool(r.Selected)
		s.results.WithLabelValues(r.Strategy, sel, strconv.FormatBool(r.TimeLimited)).Inc()
		if r.Teams > 0 {
			s.placement.WithLabelValues(r.Strategy).Set(float64(r.Placed) / float64(r.Teams))
		}
		s.solve.WithLabelValues(r.Strategy, sel).Observe(r.Elapsed.Seconds())
	}
	return nil
}
