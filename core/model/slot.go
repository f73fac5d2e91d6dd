package model

import (
	"fmt"
	"time"
)

// InterviewSlot is a discrete bookable interview time unit. The full
// grid of slots is generated from configuration before scheduling
// begins; slot identity is stable across strategies.
type InterviewSlot struct {
	ID           string
	Day          int // 0-based day index within the interview window
	Start        time.Time
	End          time.Time
	Room         string
	Interviewers []string

	// Capacity bounds how many teams may land on this slot.
	Capacity int
}

// Validate checks that the slot definition is sound.
func (s InterviewSlot) Validate() error {
	if s.ID == "" {
		return &ValidationError{Field: "slot.id", Reason: "identifier is required"}
	}
	if !s.End.After(s.Start) {
		return &ValidationError{Field: "slot.end", Reason: "end time must be after start time"}
	}
	if s.Capacity < 1 {
		return &ValidationError{Field: "slot.capacity", Reason: "capacity must be positive"}
	}
	return nil
}

// Key returns the stable identity teams use in preference and
// unavailability lists, e.g. "9/12 19:00-19:45".
func (s InterviewSlot) Key() string {
	return fmt.Sprintf("%d/%d %s-%s",
		int(s.Start.Month()), s.Start.Day(),
		s.Start.Format("15:04"), s.End.Format("15:04"))
}

// HostedBy reports whether the given interviewer sits on this slot.
func (s InterviewSlot) HostedBy(interviewer string) bool {
	for _, id := range s.Interviewers {
		if id == interviewer {
			return true
		}
	}
	return false
}
