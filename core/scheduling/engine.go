package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/jaewonkim/ivsched/core/events"
	"github.com/jaewonkim/ivsched/core/logger"
	"github.com/jaewonkim/ivsched/core/metrics"
	"github.com/jaewonkim/ivsched/core/model"
	"github.com/jaewonkim/ivsched/internal/eventbus"
)

// Engine runs all strategies concurrently over private copies of one
// constraint model, ranks the resulting schedules and selects the best
// one. The team set, slot grid and configuration are shared read-only
// inputs; the join on the worker group is the only synchronization
// point.
type Engine struct {
	strategies []Strategy
	logger     logger.Logger
	metrics    metrics.Sink
	bus        eventbus.EventBus
}

// NewEngine creates a new engine. The metrics sink and the event bus
// are optional.
func NewEngine(strategies []Strategy, log logger.Logger, sink metrics.Sink, bus eventbus.EventBus) (*Engine, error) {
	if len(strategies) == 0 {
		return nil, fmt.Errorf("scheduling: at least one strategy is required")
	}
	if log == nil {
		return nil, fmt.Errorf("scheduling: nil logger provided to NewEngine")
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Engine{strategies: strategies, logger: log, metrics: sink, bus: bus}, nil
}

// Result bundles everything one scheduling run returns.
type Result struct {
	RunID    string
	Selected model.Schedule
	Options  []model.SchedulingOption
	Unplaced []model.UnplacedTeamReport
	Elapsed  time.Duration
}

// Schedule runs every strategy against the given teams and slot grid
// and returns the selected schedule, the full ranked option set and the
// teams that could not be placed. A single strategy's failure never
// aborts the others; only total failure across all strategies is
// escalated as SchedulingFailedError.
func (e *Engine) Schedule(ctx context.Context, teams []model.Team, slots []model.InterviewSlot, cfg Config) (*Result, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateUniverse(teams, slots); err != nil {
		return nil, err
	}

	runsTotal.Inc()
	runID := uuid.NewString()[:8]
	start := time.Now()

	base, infeasible := BuildModel(teams, slots, cfg)
	for _, inf := range infeasible {
		e.logger.Warnf("run %s: team %s has no compatible slot: %s", runID, inf.TeamID, inf.Reason)
	}

	deadline := start.Add(cfg.GlobalBudget())
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	// One fixed result slot per strategy index; workers share nothing
	// else.
	outcomes := make([]*model.SchedulingOption, len(e.strategies))
	sem := make(chan struct{}, cfg.MaxWorkers)
	var wg sync.WaitGroup
	for i, st := range e.strategies {
		wg.Add(1)
		go func(i int, st Strategy) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					e.logger.Errorf("run %s: strategy %s panicked: %v", runID, st.Name(), r)
				}
			}()
			sem <- struct{}{}
			defer func() { <-sem }()

			e.publish(events.StrategyStarted{RunID: runID, Strategy: st.Name()})
			begin := time.Now()
			if !st.AllowPartial() && len(infeasible) > 0 {
				e.publish(events.StrategyFinished{RunID: runID, Strategy: st.Name(), Status: "skipped"})
				e.logger.Debugf("run %s: strategy %s skipped, input infeasible for %d teams", runID, st.Name(), len(infeasible))
				return
			}

			stDeadline := begin.Add(cfg.StrategyBudget())
			if deadline.Before(stDeadline) {
				stDeadline = deadline
			}
			solver := Solver{MaxNodes: cfg.MaxNodes, Restarts: cfg.Restarts, Seed: cfg.Seed}
			res := solver.Solve(base.Clone(), st, stDeadline)
			elapsed := time.Since(begin)
			strategyDuration.WithLabelValues(st.Name()).Observe(elapsed.Seconds())

			if !res.Feasible {
				e.publish(events.StrategyFinished{RunID: runID, Strategy: st.Name(), Status: "infeasible", Elapsed: elapsed})
				e.logger.Warnf("run %s: strategy %s found no feasible schedule", runID, st.Name())
				return
			}
			opt := Evaluator{Weights: cfg.Weights}.Evaluate(base, st, res, elapsed)
			optionScore.WithLabelValues(st.Name()).Set(opt.Score)
			status := "feasible"
			var timeoutErr error
			if opt.TimeLimited {
				status = "time_limited"
				timeoutErr = &model.StrategyTimeoutError{Strategy: st.Name(), Budget: cfg.StrategyBudget()}
			}
			e.publish(events.StrategyFinished{RunID: runID, Strategy: st.Name(), Status: status, Elapsed: elapsed, Err: timeoutErr})
			outcomes[i] = &opt
		}(i, st)
	}
	wg.Wait()

	options := lo.FilterMap(outcomes, func(o *model.SchedulingOption, _ int) (model.SchedulingOption, bool) {
		if o == nil {
			return model.SchedulingOption{}, false
		}
		return *o, true
	})
	if len(options) == 0 {
		runsFailed.Inc()
		return nil, &model.SchedulingFailedError{Unsatisfiable: infeasible}
	}

	ranked := Rank(options)
	winner := ranked[0]
	strategySelected.WithLabelValues(winner.Strategy).Inc()
	unplaced := mergeUnplacedReasons(winner.Unplaced, infeasible)

	recs := make([]metrics.RunResult, 0, len(ranked))
	for _, opt := range ranked {
		recs = append(recs, metrics.RunResult{
			RunID:       runID,
			Strategy:    opt.Strategy,
			Score:       opt.Score,
			Violations:  opt.Metrics.Violations,
			Placed:      len(opt.Schedule.Assignments),
			Teams:       len(teams),
			TimeLimited: opt.TimeLimited,
			Selected:    opt.Strategy == winner.Strategy,
			Elapsed:     opt.Elapsed,
		})
	}
	if err := e.metrics.RecordRunResult(recs); err != nil {
		e.logger.Errorf("run %s: metrics error: %v", runID, err)
	}

	elapsed := time.Since(start)
	e.publish(events.RunCompleted{
		RunID:    runID,
		Selected: winner.Strategy,
		Options:  len(ranked),
		Unplaced: len(unplaced),
		Elapsed:  elapsed,
	})
	e.logger.Infof("run %s: selected %s, %d/%d teams placed in %s",
		runID, winner.Strategy, len(winner.Schedule.Assignments), len(teams), elapsed)

	return &Result{
		RunID:    runID,
		Selected: winner.Schedule,
		Options:  ranked,
		Unplaced: unplaced,
		Elapsed:  elapsed,
	}, nil
}

func (e *Engine) publish(ev eventbus.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}

// mergeUnplacedReasons replaces the generic search reason with the
// builder's diagnostic for teams whose domain was empty from the start.
func mergeUnplacedReasons(unplaced []model.UnplacedTeamReport, infeasible []model.InfeasibleInputError) []model.UnplacedTeamReport {
	reasons := make(map[string]string, len(infeasible))
	for _, inf := range infeasible {
		reasons[inf.TeamID] = inf.Reason
	}
	return lo.Map(unplaced, func(r model.UnplacedTeamReport, _ int) model.UnplacedTeamReport {
		if reason, ok := reasons[r.TeamID]; ok {
			r.Reason = reason
		}
		return r
	})
}

// validateUniverse rejects malformed or duplicated teams and slots
// before any model is built.
func validateUniverse(teams []model.Team, slots []model.InterviewSlot) error {
	if len(teams) == 0 {
		return &model.ValidationError{Field: "teams", Reason: "at least one team is required"}
	}
	if len(slots) == 0 {
		return &model.ValidationError{Field: "slots", Reason: "at least one slot is required"}
	}
	seenTeams := make(map[string]bool, len(teams))
	for _, t := range teams {
		if err := t.Validate(); err != nil {
			return err
		}
		if seenTeams[t.ID] {
			return &model.ValidationError{Field: "team.id", Reason: fmt.Sprintf("duplicate team %s", t.ID)}
		}
		seenTeams[t.ID] = true
	}
	seenSlots := make(map[string]bool, len(slots))
	for _, s := range slots {
		if err := s.Validate(); err != nil {
			return err
		}
		if seenSlots[s.ID] {
			return &model.ValidationError{Field: "slot.id", Reason: fmt.Sprintf("duplicate slot %s", s.ID)}
		}
		seenSlots[s.ID] = true
	}
	return nil
}
