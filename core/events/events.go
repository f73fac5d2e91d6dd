package events

import "time"

// StrategyStarted is emitted when a strategy worker begins solving.
type StrategyStarted struct {
	RunID    string
	Strategy string
}

// StrategyFinished is emitted when a strategy worker completes.
// Status is one of "feasible", "time_limited", "infeasible" or
// "skipped".
type StrategyFinished struct {
	RunID    string
	Strategy string
	Status   string
	Elapsed  time.Duration
	Err      error
}

// RunCompleted is emitted once the engine has ranked all options and
// selected a winner.
type RunCompleted struct {
	RunID    string
	Selected string
	Options  int
	Unplaced int
	Elapsed  time.Duration
}
