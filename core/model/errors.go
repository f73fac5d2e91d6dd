package model

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports a malformed domain entity at construction time.
// Scheduling never starts when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// InfeasibleInputError reports a team whose constraint domain is empty
// before solving starts.
type InfeasibleInputError struct {
	TeamID string
	Reason string
}

func (e *InfeasibleInputError) Error() string {
	return fmt.Sprintf("team %s has no compatible slot: %s", e.TeamID, e.Reason)
}

// StrategyTimeoutError reports that a strategy hit its search budget or
// deadline before exhausting the search space. It is never fatal: the
// strategy's best feasible solution is kept as a time-limited option.
type StrategyTimeoutError struct {
	Strategy string
	Budget   time.Duration
}

func (e *StrategyTimeoutError) Error() string {
	return fmt.Sprintf("strategy %s exceeded its budget of %s", e.Strategy, e.Budget)
}

// SchedulingFailedError is returned when no strategy produced a usable
// option. It names the unsatisfiable teams where determinable.
type SchedulingFailedError struct {
	Unsatisfiable []InfeasibleInputError
}

func (e *SchedulingFailedError) Error() string {
	if len(e.Unsatisfiable) == 0 {
		return "scheduling failed: no strategy produced a usable option"
	}
	ids := make([]string, len(e.Unsatisfiable))
	for i, u := range e.Unsatisfiable {
		ids[i] = u.TeamID
	}
	return fmt.Sprintf("scheduling failed: no compatible slot for teams %s", strings.Join(ids, ", "))
}
