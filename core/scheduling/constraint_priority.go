package scheduling

import "sort"

// residualPrefWeights keep preferences relevant once every hard
// constraint is settled, at a fraction of the placement reward.
var residualPrefWeights = [3]float64{10, 5, 1}

// ConstraintPriorityStrategy processes the most constrained teams first
// and maximizes the number of hard constraints that can be satisfied
// when the full set cannot. It is the only strategy that places the
// remaining teams when some team's domain is empty.
type ConstraintPriorityStrategy struct{}

func (ConstraintPriorityStrategy) Name() string       { return "constraint-priority" }
func (ConstraintPriorityStrategy) Priority() int      { return 5 }
func (ConstraintPriorityStrategy) AllowPartial() bool { return true }

// OrderTeams applies most-constrained-first: teams with the fewest
// compatible slots are assigned first.
func (ConstraintPriorityStrategy) OrderTeams(m *Model) []int {
	order := inputOrder(m)
	sort.SliceStable(order, func(i, j int) bool {
		return len(m.Domains[order[i]]) < len(m.Domains[order[j]])
	})
	return order
}

func (ConstraintPriorityStrategy) OrderSlots(m *Model, team int) []int {
	return append([]int(nil), m.Domains[team]...)
}

func (ConstraintPriorityStrategy) Score(m *Model, solution []int) float64 {
	var score float64
	for ti, si := range solution {
		if si == unassigned {
			continue
		}
		// Every placement satisfies the team's availability and
		// avoidance constraints.
		score += 1000
		if r := m.PrefRank[ti][si]; r >= 1 && r <= len(residualPrefWeights) {
			score += residualPrefWeights[r-1]
		}
	}
	return score
}
