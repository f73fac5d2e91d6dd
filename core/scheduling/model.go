package scheduling

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/jaewonkim/ivsched/core/model"
)

// Model is the solver-ready constraint model for one strategy run.
// Teams, slots and the precomputed domains are read-only during search;
// the load counters are the only mutable state, so each strategy works
// on a private Clone.
type Model struct {
	Teams []model.Team
	Slots []model.InterviewSlot

	// Domains holds, per team index, the ordered compatible slot
	// indices after hard availability, blackout and avoidance
	// constraints. Incompatible pairs are removed entirely, not merely
	// penalized.
	Domains [][]int

	// PrefRank caches the preference rank per (team, slot); 0 = none.
	PrefRank [][]int

	// Bucket maps a slot index to its time bucket. Slots sharing a day
	// and start time (parallel rooms) fall into one bucket.
	Bucket     []int
	NumBuckets int

	// Morning flags slots starting before the configured midday hour.
	Morning []bool

	// Groups lists the distinct team group tags in stable order.
	Groups []string

	// Search state, owned exclusively by one solver.
	Capacity   []int            // remaining seats per slot
	BucketLoad []int            // teams currently placed per bucket
	GroupLoad  map[string][]int // group tag -> per-bucket counts
	AMCount    int
	PMCount    int
}

// BuildModel translates the team set, the slot grid and the run
// configuration into a constraint model. Teams whose domain ends up
// empty are reported as InfeasibleInputError; the model still carries
// them so strategies that allow partial placement can skip and report
// them instead of failing outright.
func BuildModel(teams []model.Team, slots []model.InterviewSlot, cfg Config) (*Model, []model.InfeasibleInputError) {
	m := &Model{
		Teams:    teams,
		Slots:    slots,
		Domains:  make([][]int, len(teams)),
		PrefRank: make([][]int, len(teams)),
		Bucket:   make([]int, len(slots)),
		Morning:  make([]bool, len(slots)),
		Capacity: make([]int, len(slots)),
	}

	bucketOf := make(map[string]int)
	for si, s := range slots {
		key := fmt.Sprintf("%d|%s", s.Day, s.Start.Format("15:04"))
		b, ok := bucketOf[key]
		if !ok {
			b = len(bucketOf)
			bucketOf[key] = b
		}
		m.Bucket[si] = b
		m.Morning[si] = s.Start.Hour() < cfg.MiddayHour
		m.Capacity[si] = s.Capacity
	}
	m.NumBuckets = len(bucketOf)
	m.BucketLoad = make([]int, m.NumBuckets)

	blackout := make(map[string]bool, len(cfg.Blackouts))
	for _, k := range cfg.Blackouts {
		blackout[k] = true
	}

	var infeasible []model.InfeasibleInputError
	for ti, t := range teams {
		m.PrefRank[ti] = make([]int, len(slots))
		attendable := 0
		var domain []int
		for si, s := range slots {
			key := s.Key()
			if blackout[key] || t.UnavailableAt(key) {
				continue
			}
			attendable++
			if lo.Some(s.Interviewers, t.Avoid) {
				continue
			}
			domain = append(domain, si)
			m.PrefRank[ti][si] = t.PreferenceRank(key)
		}
		m.Domains[ti] = domain
		if len(domain) == 0 {
			infeasible = append(infeasible, model.InfeasibleInputError{
				TeamID: t.ID,
				Reason: emptyDomainReason(attendable),
			})
		}
	}

	m.Groups = lo.Uniq(lo.Map(teams, func(t model.Team, _ int) string { return t.Group }))
	m.GroupLoad = make(map[string][]int, len(m.Groups))
	for _, g := range m.Groups {
		m.GroupLoad[g] = make([]int, m.NumBuckets)
	}
	return m, infeasible
}

func emptyDomainReason(attendable int) string {
	if attendable == 0 {
		return "no attendable slot in the interview window"
	}
	return "every attendable slot is hosted by an avoided interviewer"
}

// Clone returns a copy with private search state. The immutable parts
// (teams, slots, domains, preference ranks, bucket map) are shared;
// nothing a solver mutates is.
func (m *Model) Clone() *Model {
	cp := *m
	cp.Capacity = append([]int(nil), m.Capacity...)
	cp.BucketLoad = append([]int(nil), m.BucketLoad...)
	cp.GroupLoad = make(map[string][]int, len(m.GroupLoad))
	for g, counts := range m.GroupLoad {
		cp.GroupLoad[g] = append([]int(nil), counts...)
	}
	return &cp
}

// place records a (team, slot) assignment in the live counters.
func (m *Model) place(ti, si int) {
	m.Capacity[si]--
	b := m.Bucket[si]
	m.BucketLoad[b]++
	m.GroupLoad[m.Teams[ti].Group][b]++
	if m.Morning[si] {
		m.AMCount++
	} else {
		m.PMCount++
	}
}

// unplace reverts a place call.
func (m *Model) unplace(ti, si int) {
	m.Capacity[si]++
	b := m.Bucket[si]
	m.BucketLoad[b]--
	m.GroupLoad[m.Teams[ti].Group][b]--
	if m.Morning[si] {
		m.AMCount--
	} else {
		m.PMCount--
	}
}
