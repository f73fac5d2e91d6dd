package scheduling

import (
	"fmt"
	"time"
)

// Weights configure the composite option score used for ranking.
type Weights struct {
	Preference float64 `json:"preference"`
	Spread     float64 `json:"spread"`
	Balance    float64 `json:"balance"`
	Violation  float64 `json:"violation"`
}

func (w Weights) zero() bool {
	return w.Preference == 0 && w.Spread == 0 && w.Balance == 0 && w.Violation == 0
}

// Config carries per-run scheduling parameters.
type Config struct {
	// GlobalBudgetSeconds bounds the whole run wall clock.
	GlobalBudgetSeconds int `json:"global_budget_seconds"`
	// StrategyBudgetSeconds bounds each strategy worker.
	StrategyBudgetSeconds int `json:"strategy_budget_seconds"`
	// MaxWorkers caps concurrent strategy workers.
	MaxWorkers int `json:"max_workers"`
	// MaxNodes bounds the search per strategy. The node budget, not the
	// wall clock, is the primary cutoff so results stay reproducible.
	MaxNodes int `json:"max_nodes"`
	// Restarts is the number of seeded-shuffle search restarts.
	Restarts int `json:"restarts"`
	// Seed drives all tie-break randomization.
	Seed int64 `json:"seed"`
	// MiddayHour splits morning from afternoon slots.
	MiddayHour int `json:"midday_hour"`
	// Blackouts lists slot keys removed from every team's domain.
	Blackouts []string `json:"blackouts"`
	Weights   Weights  `json:"weights"`
}

// SetDefaults applies sane defaults. The 30-second solving ceiling and
// the 0.4/0.3/0.3 weight split carry over from the historical engine.
func (c *Config) SetDefaults() {
	if c.GlobalBudgetSeconds == 0 {
		c.GlobalBudgetSeconds = 30
	}
	if c.StrategyBudgetSeconds == 0 {
		c.StrategyBudgetSeconds = 10
	}
	if c.MaxWorkers == 0 {
		c.MaxWorkers = 5
	}
	if c.MaxNodes == 0 {
		c.MaxNodes = 200000
	}
	if c.Restarts == 0 {
		c.Restarts = 4
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.MiddayHour == 0 {
		c.MiddayHour = 13
	}
	if c.Weights.zero() {
		c.Weights = Weights{Preference: 0.4, Spread: 0.3, Balance: 0.3, Violation: 1}
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.GlobalBudgetSeconds < 1 || c.StrategyBudgetSeconds < 1 {
		return fmt.Errorf("scheduling: time budgets must be positive")
	}
	if c.MaxWorkers < 1 {
		return fmt.Errorf("scheduling: max_workers must be positive")
	}
	if c.MaxNodes < 1 || c.Restarts < 1 {
		return fmt.Errorf("scheduling: max_nodes and restarts must be positive")
	}
	if c.MiddayHour < 0 || c.MiddayHour > 23 {
		return fmt.Errorf("scheduling: midday_hour must be a valid hour")
	}
	if c.Weights.Preference < 0 || c.Weights.Spread < 0 || c.Weights.Balance < 0 || c.Weights.Violation < 0 {
		return fmt.Errorf("scheduling: weights must not be negative")
	}
	return nil
}

// GlobalBudget returns the run deadline as a duration.
func (c Config) GlobalBudget() time.Duration {
	return time.Duration(c.GlobalBudgetSeconds) * time.Second
}

// StrategyBudget returns the per-strategy deadline as a duration.
func (c Config) StrategyBudget() time.Duration {
	return time.Duration(c.StrategyBudgetSeconds) * time.Second
}
