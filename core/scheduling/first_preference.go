package scheduling

import "sort"

// prefWeights rate a satisfied first, second and third choice. The
// 100/50/25 split carries over from the historical engine.
var prefWeights = [3]float64{100, 50, 25}

// FirstPreferenceStrategy maximizes the number of teams placed in their
// declared first choice by trying each team's preferred slots in rank
// order before any other compatible slot.
type FirstPreferenceStrategy struct{}

func (FirstPreferenceStrategy) Name() string       { return "first-preference" }
func (FirstPreferenceStrategy) Priority() int      { return 1 }
func (FirstPreferenceStrategy) AllowPartial() bool { return false }

func (FirstPreferenceStrategy) OrderTeams(m *Model) []int {
	return inputOrder(m)
}

func (FirstPreferenceStrategy) OrderSlots(m *Model, team int) []int {
	domain := append([]int(nil), m.Domains[team]...)
	sort.SliceStable(domain, func(i, j int) bool {
		return prefOrdinal(m.PrefRank[team][domain[i]]) < prefOrdinal(m.PrefRank[team][domain[j]])
	})
	return domain
}

func (FirstPreferenceStrategy) Score(m *Model, solution []int) float64 {
	var score float64
	for ti, si := range solution {
		if si == unassigned {
			continue
		}
		if r := m.PrefRank[ti][si]; r >= 1 && r <= len(prefWeights) {
			score += prefWeights[r-1]
		}
	}
	return score
}

// prefOrdinal maps rank 0 (not preferred) behind every declared rank.
func prefOrdinal(rank int) int {
	if rank == 0 {
		return int(^uint(0) >> 1)
	}
	return rank
}
