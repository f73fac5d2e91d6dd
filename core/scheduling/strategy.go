package scheduling

// Strategy is a deterministic variable-ordering and objective policy
// applied to a private copy of the shared constraint model. Strategies
// never perform I/O and never touch shared mutable state.
type Strategy interface {
	Name() string

	// Priority is the fixed selection tie-break order; lower wins.
	Priority() int

	// OrderTeams returns the variable order for the search.
	OrderTeams(m *Model) []int

	// OrderSlots returns the value order for one team's domain. It may
	// consult the model's live load counters.
	OrderSlots(m *Model, team int) []int

	// Score rates a complete or partial solution; higher is better.
	// solution[i] holds the slot index for team i, or unassigned.
	Score(m *Model, solution []int) float64

	// AllowPartial reports whether empty-domain teams are skipped and
	// reported instead of failing the whole strategy.
	AllowPartial() bool
}

// DefaultStrategies returns the five built-in strategies in priority
// order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		FirstPreferenceStrategy{},
		TemporalSpreadStrategy{},
		MorningAfternoonStrategy{},
		GroupBalanceStrategy{},
		ConstraintPriorityStrategy{},
	}
}

// inputOrder returns team indices in input order.
func inputOrder(m *Model) []int {
	order := make([]int, len(m.Teams))
	for i := range order {
		order[i] = i
	}
	return order
}
