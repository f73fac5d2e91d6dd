package scheduling

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TemporalSpreadStrategy spreads teams evenly across the day by
// minimizing the peak number of teams in any single time bucket. Value
// ordering steers each team toward the least loaded bucket first.
type TemporalSpreadStrategy struct{}

func (TemporalSpreadStrategy) Name() string       { return "temporal-spread" }
func (TemporalSpreadStrategy) Priority() int      { return 2 }
func (TemporalSpreadStrategy) AllowPartial() bool { return false }

func (TemporalSpreadStrategy) OrderTeams(m *Model) []int {
	return inputOrder(m)
}

func (TemporalSpreadStrategy) OrderSlots(m *Model, team int) []int {
	domain := append([]int(nil), m.Domains[team]...)
	sort.SliceStable(domain, func(i, j int) bool {
		li, lj := m.BucketLoad[m.Bucket[domain[i]]], m.BucketLoad[m.Bucket[domain[j]]]
		if li != lj {
			return li < lj
		}
		return domain[i] < domain[j]
	})
	return domain
}

func (TemporalSpreadStrategy) Score(m *Model, solution []int) float64 {
	loads := make([]float64, m.NumBuckets)
	peak := 0.0
	for _, si := range solution {
		if si == unassigned {
			continue
		}
		loads[m.Bucket[si]]++
		if loads[m.Bucket[si]] > peak {
			peak = loads[m.Bucket[si]]
		}
	}
	// Peak load dominates; variance smooths ties between equal peaks.
	return -peak*1000 - stat.Variance(loads, nil)
}
