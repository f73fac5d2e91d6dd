package model

// Team is a scheduling candidate requiring exactly one interview slot.
// Teams are constructed once from ingested input and are never mutated
// by the engine.
type Team struct {
	ID    string
	Name  string
	Email string
	Phone string

	// Preferences holds slot keys (see InterviewSlot.Key) in declared
	// order. Preferences only influence ranking, never feasibility.
	Preferences []string

	// Unavailable lists slot keys the team cannot attend.
	Unavailable []string

	// Avoid lists interviewer IDs the team must not face. Slots hosted
	// by an avoided interviewer are removed from the team's domain.
	Avoid []string

	// Group is an arbitrary tag consumed by the group-balance objective.
	Group string
}

// Validate checks that the team record is sound.
func (t Team) Validate() error {
	if t.ID == "" {
		return &ValidationError{Field: "team.id", Reason: "identifier is required"}
	}
	return nil
}

// Avoids reports whether the team must avoid the given interviewer.
func (t Team) Avoids(interviewer string) bool {
	for _, id := range t.Avoid {
		if id == interviewer {
			return true
		}
	}
	return false
}

// UnavailableAt reports whether the team declared the slot key as
// unattendable.
func (t Team) UnavailableAt(slotKey string) bool {
	for _, k := range t.Unavailable {
		if k == slotKey {
			return true
		}
	}
	return false
}

// PreferenceRank returns the 1-based rank of the slot key in the team's
// preference list, or 0 when the slot is not preferred.
func (t Team) PreferenceRank(slotKey string) int {
	for i, p := range t.Preferences {
		if p == slotKey {
			return i + 1
		}
	}
	return 0
}
