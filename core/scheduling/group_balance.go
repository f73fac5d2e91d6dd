package scheduling

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GroupBalanceStrategy minimizes the variance of per-group team counts
// across time buckets so no group clusters into one part of the day.
type GroupBalanceStrategy struct{}

func (GroupBalanceStrategy) Name() string       { return "group-balance" }
func (GroupBalanceStrategy) Priority() int      { return 4 }
func (GroupBalanceStrategy) AllowPartial() bool { return false }

func (GroupBalanceStrategy) OrderTeams(m *Model) []int {
	return inputOrder(m)
}

func (GroupBalanceStrategy) OrderSlots(m *Model, team int) []int {
	group := m.Teams[team].Group
	domain := append([]int(nil), m.Domains[team]...)
	sort.SliceStable(domain, func(i, j int) bool {
		li := m.GroupLoad[group][m.Bucket[domain[i]]]
		lj := m.GroupLoad[group][m.Bucket[domain[j]]]
		if li != lj {
			return li < lj
		}
		return domain[i] < domain[j]
	})
	return domain
}

func (GroupBalanceStrategy) Score(m *Model, solution []int) float64 {
	return -groupVariance(m, solution)
}

// groupVariance sums, per group tag, the variance of that group's team
// counts across time buckets.
func groupVariance(m *Model, solution []int) float64 {
	counts := make(map[string][]float64, len(m.Groups))
	for _, g := range m.Groups {
		counts[g] = make([]float64, m.NumBuckets)
	}
	for ti, si := range solution {
		if si == unassigned {
			continue
		}
		counts[m.Teams[ti].Group][m.Bucket[si]]++
	}
	var total float64
	for _, g := range m.Groups {
		total += stat.Variance(counts[g], nil)
	}
	return total
}
