package model

import (
	"fmt"
	"time"
)

// Assignment pairs exactly one team with exactly one interview slot.
type Assignment struct {
	TeamID string
	SlotID string

	// PreferenceRank is 1 for a first-choice placement, 2 for a second
	// choice and so on; 0 when the slot was not among the team's
	// preferences.
	PreferenceRank int
}

// Schedule is the set of assignments one strategy produced. It covers
// all teams, or a documented subset when the input is partially
// infeasible.
type Schedule struct {
	Strategy    string
	Assignments []Assignment
}

// Validate checks the schedule invariants against the run's universe:
// every referenced team and slot must exist, no team appears twice, no
// slot exceeds its capacity, and every assignment honors the team's
// unavailability and interviewer-avoidance constraints.
func (s Schedule) Validate(teams []Team, slots []InterviewSlot) error {
	teamByID := make(map[string]Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}
	slotByID := make(map[string]InterviewSlot, len(slots))
	for _, sl := range slots {
		slotByID[sl.ID] = sl
	}

	seen := make(map[string]bool, len(s.Assignments))
	load := make(map[string]int, len(s.Assignments))
	for _, a := range s.Assignments {
		team, ok := teamByID[a.TeamID]
		if !ok {
			return &ValidationError{Field: "assignment.team", Reason: fmt.Sprintf("unknown team %s", a.TeamID)}
		}
		slot, ok := slotByID[a.SlotID]
		if !ok {
			return &ValidationError{Field: "assignment.slot", Reason: fmt.Sprintf("unknown slot %s", a.SlotID)}
		}
		if seen[a.TeamID] {
			return &ValidationError{Field: "assignment.team", Reason: fmt.Sprintf("team %s assigned twice", a.TeamID)}
		}
		seen[a.TeamID] = true
		load[a.SlotID]++
		if load[a.SlotID] > slot.Capacity {
			return &ValidationError{Field: "assignment.slot", Reason: fmt.Sprintf("slot %s exceeds capacity %d", a.SlotID, slot.Capacity)}
		}
		if team.UnavailableAt(slot.Key()) {
			return &ValidationError{Field: "assignment.slot", Reason: fmt.Sprintf("team %s is unavailable at %s", a.TeamID, slot.Key())}
		}
		for _, iv := range slot.Interviewers {
			if team.Avoids(iv) {
				return &ValidationError{Field: "assignment.slot", Reason: fmt.Sprintf("team %s must avoid interviewer %s", a.TeamID, iv)}
			}
		}
	}
	return nil
}

// OptionMetrics holds the computed quality indicators of one schedule.
type OptionMetrics struct {
	// PreferenceRate is the fraction of preference-declaring teams
	// placed in one of their preferred slots.
	PreferenceRate float64
	// FirstChoiceRate is the fraction of preference-declaring teams
	// placed in their declared first choice.
	FirstChoiceRate float64
	// PeakBucketLoad is the highest number of teams sharing one time
	// bucket.
	PeakBucketLoad int
	// MorningAfternoonGap is |teams before midday - teams after|.
	MorningAfternoonGap int
	// GroupVariance sums, per group tag, the variance of that group's
	// team counts across time buckets.
	GroupVariance float64
	// Violations counts teams the schedule could not place.
	Violations int
}

// SchedulingOption wraps a schedule with its computed metrics and the
// strategy that produced it. Options are comparable by a total order
// used for ranking.
type SchedulingOption struct {
	Strategy string
	// Priority is the fixed strategy tie-break order; lower wins ties.
	Priority    int
	Schedule    Schedule
	Metrics     OptionMetrics
	Score       float64
	Elapsed     time.Duration
	TimeLimited bool
	Unplaced    []UnplacedTeamReport
}

// Less implements the selection order: fewest violations first
// (feasibility dominates optimality), then highest composite score,
// then the fixed strategy priority.
func (o SchedulingOption) Less(other SchedulingOption) bool {
	if o.Metrics.Violations != other.Metrics.Violations {
		return o.Metrics.Violations < other.Metrics.Violations
	}
	if o.Score != other.Score {
		return o.Score > other.Score
	}
	return o.Priority < other.Priority
}

// UnplacedTeamReport explains why a team could not be placed.
type UnplacedTeamReport struct {
	TeamID string
	Reason string
}
