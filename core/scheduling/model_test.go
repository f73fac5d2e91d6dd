package scheduling

import (
	"testing"
	"time"

	"github.com/jaewonkim/ivsched/core/model"
)

// slotAt builds one interview slot on the 2026-09-14 grid.
func slotAt(id string, day, hour, min, capacity int, interviewers ...string) model.InterviewSlot {
	start := time.Date(2026, 9, 14+day, hour, min, 0, 0, time.UTC)
	return model.InterviewSlot{
		ID:           id,
		Day:          day,
		Start:        start,
		End:          start.Add(30 * time.Minute),
		Room:         "Room A",
		Interviewers: interviewers,
		Capacity:     capacity,
	}
}

// testCfg returns a small deterministic run configuration.
func testCfg() Config {
	cfg := Config{}
	cfg.SetDefaults()
	cfg.MaxNodes = 20000
	cfg.Restarts = 2
	return cfg
}

func TestBuildModelDomains(t *testing.T) {
	slots := []model.InterviewSlot{
		slotAt("s1", 0, 9, 0, 1, "alice"),
		slotAt("s2", 0, 10, 0, 1, "carol"),
		slotAt("s3", 0, 14, 0, 1, "alice"),
	}
	teams := []model.Team{
		{ID: "a", Preferences: []string{slots[1].Key()}},
		{ID: "b", Unavailable: []string{slots[0].Key()}},
		{ID: "c", Avoid: []string{"carol"}},
	}
	cfg := testCfg()

	m, infeasible := BuildModel(teams, slots, cfg)
	if len(infeasible) != 0 {
		t.Fatalf("unexpected infeasible teams: %v", infeasible)
	}
	if got, want := len(m.Domains[0]), 3; got != want {
		t.Errorf("team a domain size = %d, want %d", got, want)
	}
	if got, want := len(m.Domains[1]), 2; got != want {
		t.Errorf("team b domain size = %d, want %d", got, want)
	}
	for _, si := range m.Domains[1] {
		if m.Slots[si].ID == "s1" {
			t.Error("unavailable slot left in domain")
		}
	}
	for _, si := range m.Domains[2] {
		if m.Slots[si].ID == "s2" {
			t.Error("avoided interviewer's slot left in domain")
		}
	}
	if got, want := m.PrefRank[0][1], 1; got != want {
		t.Errorf("cached preference rank = %d, want %d", got, want)
	}
	if !m.Morning[0] || m.Morning[2] {
		t.Error("morning flags do not follow the midday hour")
	}
}

func TestBuildModelBuckets(t *testing.T) {
	// Two rooms at 09:00 share a bucket; 10:00 opens a second one.
	slots := []model.InterviewSlot{
		slotAt("s1", 0, 9, 0, 1),
		slotAt("s2", 0, 9, 0, 1),
		slotAt("s3", 0, 10, 0, 1),
	}
	m, _ := BuildModel([]model.Team{{ID: "a"}}, slots, testCfg())
	if m.NumBuckets != 2 {
		t.Fatalf("buckets = %d, want 2", m.NumBuckets)
	}
	if m.Bucket[0] != m.Bucket[1] {
		t.Error("parallel rooms must share a bucket")
	}
	if m.Bucket[0] == m.Bucket[2] {
		t.Error("distinct start times must not share a bucket")
	}
}

func TestBuildModelBlackout(t *testing.T) {
	slots := []model.InterviewSlot{
		slotAt("s1", 0, 9, 0, 1),
		slotAt("s2", 0, 10, 0, 1),
	}
	cfg := testCfg()
	cfg.Blackouts = []string{slots[0].Key()}
	m, _ := BuildModel([]model.Team{{ID: "a"}}, slots, cfg)
	if got, want := len(m.Domains[0]), 1; got != want {
		t.Fatalf("domain size = %d, want %d", got, want)
	}
	if m.Slots[m.Domains[0][0]].ID != "s2" {
		t.Error("blacked-out slot left in domain")
	}
}

func TestBuildModelReportsInfeasibleTeams(t *testing.T) {
	slots := []model.InterviewSlot{slotAt("s1", 0, 9, 0, 1, "carol")}
	teams := []model.Team{
		{ID: "a", Unavailable: []string{slots[0].Key()}},
		{ID: "b", Avoid: []string{"carol"}},
	}
	_, infeasible := BuildModel(teams, slots, testCfg())
	if len(infeasible) != 2 {
		t.Fatalf("infeasible teams = %d, want 2", len(infeasible))
	}
	if infeasible[0].TeamID != "a" || infeasible[1].TeamID != "b" {
		t.Fatalf("unexpected infeasible order: %+v", infeasible)
	}
	if infeasible[0].Reason == infeasible[1].Reason {
		t.Error("availability and avoidance should produce distinct diagnostics")
	}
}

func TestModelCloneIsolatesSearchState(t *testing.T) {
	slots := []model.InterviewSlot{slotAt("s1", 0, 9, 0, 2)}
	teams := []model.Team{{ID: "a", Group: "g"}}
	m, _ := BuildModel(teams, slots, testCfg())

	cp := m.Clone()
	cp.place(0, 0)
	if m.Capacity[0] != 2 || m.BucketLoad[0] != 0 || m.GroupLoad["g"][0] != 0 {
		t.Fatal("placing on a clone mutated the base model")
	}
	if cp.Capacity[0] != 1 || cp.AMCount != 1 {
		t.Fatal("clone counters not updated")
	}
	cp.unplace(0, 0)
	if cp.Capacity[0] != 2 || cp.AMCount != 0 || cp.BucketLoad[0] != 0 {
		t.Fatal("unplace did not revert the clone counters")
	}
}
