package scheduling

import (
	"sort"
	"time"

	"github.com/jaewonkim/ivsched/core/model"
)

// Evaluator turns raw solver results into scored scheduling options.
type Evaluator struct {
	Weights Weights
}

// Evaluate computes the option metrics and the composite score for one
// strategy's solution.
func (e Evaluator) Evaluate(m *Model, st Strategy, res solveResult, elapsed time.Duration) model.SchedulingOption {
	var (
		placed, withPref, prefHit, firstHit int
		assignments                         []model.Assignment
		unplaced                            []model.UnplacedTeamReport
	)
	loads := make([]int, m.NumBuckets)
	am, pm := 0, 0
	for ti, t := range m.Teams {
		si := res.Solution[ti]
		if len(t.Preferences) > 0 {
			withPref++
		}
		if si == unassigned {
			unplaced = append(unplaced, model.UnplacedTeamReport{
				TeamID: t.ID,
				Reason: "no feasible placement within the search budget",
			})
			continue
		}
		placed++
		rank := m.PrefRank[ti][si]
		if rank > 0 {
			prefHit++
		}
		if rank == 1 {
			firstHit++
		}
		loads[m.Bucket[si]]++
		if m.Morning[si] {
			am++
		} else {
			pm++
		}
		assignments = append(assignments, model.Assignment{
			TeamID:         t.ID,
			SlotID:         m.Slots[si].ID,
			PreferenceRank: rank,
		})
	}

	peak := 0
	for _, l := range loads {
		if l > peak {
			peak = l
		}
	}
	gap := am - pm
	if gap < 0 {
		gap = -gap
	}

	metrics := model.OptionMetrics{
		PreferenceRate:      rate(prefHit, withPref),
		FirstChoiceRate:     rate(firstHit, withPref),
		PeakBucketLoad:      peak,
		MorningAfternoonGap: gap,
		GroupVariance:       groupVariance(m, res.Solution),
		Violations:          len(m.Teams) - placed,
	}
	return model.SchedulingOption{
		Strategy:    st.Name(),
		Priority:    st.Priority(),
		Schedule:    model.Schedule{Strategy: st.Name(), Assignments: assignments},
		Metrics:     metrics,
		Score:       e.composite(metrics, placed),
		Elapsed:     elapsed,
		TimeLimited: res.TimeLimited,
		Unplaced:    unplaced,
	}
}

// composite folds the quality indicators into one weighted score. All
// soft terms are normalized to [0,1]; violations subtract whole points
// so feasibility keeps dominating.
func (e Evaluator) composite(mt model.OptionMetrics, placed int) float64 {
	spread := 0.0
	if placed > 0 {
		spread = 1 - float64(mt.PeakBucketLoad)/float64(placed)
	}
	balance := 1 / (1 + mt.GroupVariance)
	return e.Weights.Preference*mt.PreferenceRate +
		e.Weights.Spread*spread +
		e.Weights.Balance*balance -
		e.Weights.Violation*float64(mt.Violations)
}

// Rank sorts options by the selection rule: fewest violations first,
// then highest composite score, then the fixed strategy priority.
func Rank(options []model.SchedulingOption) []model.SchedulingOption {
	ranked := append([]model.SchedulingOption(nil), options...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Less(ranked[j]) })
	return ranked
}

// rate is n/d guarded against an empty denominator; with nothing to
// satisfy the rate is vacuously perfect.
func rate(n, d int) float64 {
	if d == 0 {
		return 1
	}
	return float64(n) / float64(d)
}
