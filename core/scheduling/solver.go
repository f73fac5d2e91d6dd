package scheduling

import (
	"math/rand"
	"time"
)

// unassigned marks a team without a slot in a solution vector.
const unassigned = -1

// solveResult is the outcome of one strategy's search. Solution[i]
// holds the slot index assigned to team i, or unassigned.
type solveResult struct {
	Solution    []int
	Score       float64
	Feasible    bool
	TimeLimited bool
	Nodes       int
}

// Solver runs an anytime backtracking search over a private model copy.
// It records the first complete solution it reaches and keeps exploring
// for better-scoring ones until the node budget, the deadline or the
// search space is exhausted. Restarts perturb the team order with a
// seeded generator, so results are reproducible for a fixed seed: the
// node budget, not the wall clock, is the primary cutoff.
type Solver struct {
	MaxNodes int
	Restarts int
	Seed     int64
}

// Solve searches the model under the given strategy. A strategy that
// allows partial placement skips empty-domain teams; any other strategy
// is infeasible as soon as one domain is empty. A result that places
// nobody is not a usable option.
func (s Solver) Solve(m *Model, st Strategy, deadline time.Time) solveResult {
	order := st.OrderTeams(m)
	if st.AllowPartial() {
		kept := make([]int, 0, len(order))
		for _, ti := range order {
			if len(m.Domains[ti]) > 0 {
				kept = append(kept, ti)
			}
		}
		order = kept
	} else {
		for _, ti := range order {
			if len(m.Domains[ti]) == 0 {
				return solveResult{}
			}
		}
	}
	if len(order) == 0 {
		return solveResult{}
	}

	rng := rand.New(rand.NewSource(s.Seed))
	restarts := s.Restarts
	if restarts < 1 {
		restarts = 1
	}
	budget := s.MaxNodes / restarts
	if budget < 1 {
		budget = s.MaxNodes
	}

	var best solveResult
	cur := make([]int, len(m.Teams))
	for i := range cur {
		cur[i] = unassigned
	}

	cutOff := false
	for r := 0; r < restarts; r++ {
		if r > 0 {
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}
		w := &walker{m: m, st: st, cur: cur, deadline: deadline, budget: budget}
		w.dfs(order, 0, &best)
		best.Nodes += w.nodes
		if !w.budgetHit && !w.deadlineHit {
			// Full space explored; reordering cannot improve the result.
			cutOff = false
			break
		}
		cutOff = true
		if w.deadlineHit {
			break
		}
	}
	best.TimeLimited = best.Feasible && cutOff
	return best
}

// walker carries the state of one depth-first descent.
type walker struct {
	m           *Model
	st          Strategy
	cur         []int
	deadline    time.Time
	budget      int
	nodes       int
	budgetHit   bool
	deadlineHit bool
}

func (w *walker) stopped() bool { return w.budgetHit || w.deadlineHit }

func (w *walker) dfs(order []int, depth int, best *solveResult) {
	if depth == len(order) {
		score := w.st.Score(w.m, w.cur)
		if !best.Feasible || score > best.Score {
			best.Feasible = true
			best.Score = score
			best.Solution = append(best.Solution[:0], w.cur...)
		}
		return
	}
	ti := order[depth]
	for _, si := range w.st.OrderSlots(w.m, ti) {
		if w.m.Capacity[si] == 0 {
			continue
		}
		w.nodes++
		if w.nodes > w.budget {
			w.budgetHit = true
			return
		}
		if w.nodes%1024 == 0 && time.Now().After(w.deadline) {
			w.deadlineHit = true
			return
		}
		w.m.place(ti, si)
		w.cur[ti] = si
		w.dfs(order, depth+1, best)
		w.m.unplace(ti, si)
		w.cur[ti] = unassigned
		if w.stopped() {
			return
		}
	}
	// A partial strategy may leave the team out when no slot fits, e.g.
	// when remaining capacity runs short. Placement branches come first,
	// so skipping stays the last resort.
	if w.st.AllowPartial() {
		w.nodes++
		if w.nodes > w.budget {
			w.budgetHit = true
			return
		}
		w.dfs(order, depth+1, best)
	}
}
