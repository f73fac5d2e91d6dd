package model

import (
	"strings"
	"testing"
	"time"
)

func testSlot(id string, hour int, capacity int, interviewers ...string) InterviewSlot {
	start := time.Date(2026, 9, 12, hour, 0, 0, 0, time.UTC)
	return InterviewSlot{
		ID:           id,
		Start:        start,
		End:          start.Add(30 * time.Minute),
		Room:         "Room A",
		Interviewers: interviewers,
		Capacity:     capacity,
	}
}

func TestSlotValidate(t *testing.T) {
	if err := testSlot("s1", 9, 1).Validate(); err != nil {
		t.Fatalf("valid slot rejected: %v", err)
	}
	bad := testSlot("s1", 9, 1)
	bad.End = bad.Start
	if bad.Validate() == nil {
		t.Error("expected error for zero-length slot")
	}
	bad = testSlot("s1", 9, 0)
	if bad.Validate() == nil {
		t.Error("expected error for zero capacity")
	}
}

func TestSlotKey(t *testing.T) {
	s := testSlot("s1", 19, 1)
	if got, want := s.Key(), "9/12 19:00-19:30"; got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
}

func TestScheduleValidate(t *testing.T) {
	teams := []Team{
		{ID: "a"},
		{ID: "b", Unavailable: []string{"9/12 09:00-09:30"}},
		{ID: "c", Avoid: []string{"carol"}},
	}
	slots := []InterviewSlot{
		testSlot("s1", 9, 1, "alice"),
		testSlot("s2", 10, 1, "carol"),
	}

	ok := Schedule{Assignments: []Assignment{{TeamID: "a", SlotID: "s1"}, {TeamID: "b", SlotID: "s2"}}}
	if err := ok.Validate(teams, slots); err != nil {
		t.Fatalf("valid schedule rejected: %v", err)
	}

	cases := []struct {
		name string
		sch  Schedule
	}{
		{"unknown team", Schedule{Assignments: []Assignment{{TeamID: "zz", SlotID: "s1"}}}},
		{"unknown slot", Schedule{Assignments: []Assignment{{TeamID: "a", SlotID: "zz"}}}},
		{"duplicate team", Schedule{Assignments: []Assignment{{TeamID: "a", SlotID: "s1"}, {TeamID: "a", SlotID: "s2"}}}},
		{"over capacity", Schedule{Assignments: []Assignment{{TeamID: "a", SlotID: "s1"}, {TeamID: "c", SlotID: "s1"}}}},
		{"unavailable", Schedule{Assignments: []Assignment{{TeamID: "b", SlotID: "s1"}}}},
		{"avoided interviewer", Schedule{Assignments: []Assignment{{TeamID: "c", SlotID: "s2"}}}},
	}
	for _, c := range cases {
		if err := c.sch.Validate(teams, slots); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestOptionLess(t *testing.T) {
	fewerViolations := SchedulingOption{Metrics: OptionMetrics{Violations: 0}, Score: 0.1}
	moreViolations := SchedulingOption{Metrics: OptionMetrics{Violations: 2}, Score: 0.9}
	if !fewerViolations.Less(moreViolations) {
		t.Error("fewer violations must win regardless of score")
	}

	higherScore := SchedulingOption{Score: 0.8, Priority: 4}
	lowerScore := SchedulingOption{Score: 0.5, Priority: 1}
	if !higherScore.Less(lowerScore) {
		t.Error("higher score must win among equal violations")
	}

	first := SchedulingOption{Score: 0.5, Priority: 1}
	fifth := SchedulingOption{Score: 0.5, Priority: 5}
	if !first.Less(fifth) || fifth.Less(first) {
		t.Error("equal scores must fall back to strategy priority")
	}
}

func TestSchedulingFailedErrorNamesTeams(t *testing.T) {
	err := &SchedulingFailedError{Unsatisfiable: []InfeasibleInputError{
		{TeamID: "a", Reason: "r"},
		{TeamID: "b", Reason: "r"},
	}}
	msg := err.Error()
	if !strings.Contains(msg, "a") || !strings.Contains(msg, "b") {
		t.Fatalf("error should name both teams: %q", msg)
	}
	empty := &SchedulingFailedError{}
	if empty.Error() == "" {
		t.Fatal("empty failure must still render a message")
	}
}
