package metrics

import "time"

// RunResult represents one strategy outcome of a scheduling run.
type RunResult struct {
	RunID       string
	Strategy    string
	Score       float64
	Violations  int
	Placed      int
	Teams       int
	TimeLimited bool
	Selected    bool
	Elapsed     time.Duration
}

// Sink records scheduling results for observability purposes.
type Sink interface {
	RecordRunResult(results []RunResult) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRunResult([]RunResult) error { return nil }

// MultiSink fans run results out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRunResult forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordRunResult(res []RunResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordRunResult(res); err != nil {
			return err
		}
	}
	return nil
}
