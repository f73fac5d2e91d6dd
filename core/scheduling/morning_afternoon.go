package scheduling

import "sort"

// MorningAfternoonStrategy minimizes the absolute difference between
// the number of teams placed before and after the midday point.
type MorningAfternoonStrategy struct{}

func (MorningAfternoonStrategy) Name() string       { return "morning-afternoon" }
func (MorningAfternoonStrategy) Priority() int      { return 3 }
func (MorningAfternoonStrategy) AllowPartial() bool { return false }

func (MorningAfternoonStrategy) OrderTeams(m *Model) []int {
	return inputOrder(m)
}

func (MorningAfternoonStrategy) OrderSlots(m *Model, team int) []int {
	domain := append([]int(nil), m.Domains[team]...)
	sort.SliceStable(domain, func(i, j int) bool {
		ci, cj := halfDayCost(m, domain[i]), halfDayCost(m, domain[j])
		if ci != cj {
			return ci < cj
		}
		return domain[i] < domain[j]
	})
	return domain
}

func (MorningAfternoonStrategy) Score(m *Model, solution []int) float64 {
	am, pm := 0, 0
	for _, si := range solution {
		if si == unassigned {
			continue
		}
		if m.Morning[si] {
			am++
		} else {
			pm++
		}
	}
	return -abs(am - pm)
}

// halfDayCost prefers the half of the day that currently holds fewer
// teams.
func halfDayCost(m *Model, si int) int {
	if m.Morning[si] {
		if m.AMCount <= m.PMCount {
			return 0
		}
		return 1
	}
	if m.PMCount < m.AMCount {
		return 0
	}
	return 1
}

func abs(v int) float64 {
	if v < 0 {
		return float64(-v)
	}
	return float64(v)
}
