package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTeams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.json")
	data := `[
  {
    "id": "team-1",
    "name": "Alpha",
    "email": "alpha@example.com",
    "preferences": ["9/14 09:00-09:30", "9/14 10:00-10:30"],
    "unavailable": ["9/15 09:00-09:30"],
    "avoid": ["carol"],
    "group": "fintech"
  },
  {"id": "team-2", "name": "Beta"}
]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write teams: %v", err)
	}

	teams, err := LoadTeams(path)
	if err != nil {
		t.Fatalf("load teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("teams = %d, want 2", len(teams))
	}
	first := teams[0]
	if first.ID != "team-1" || first.Group != "fintech" {
		t.Fatalf("unexpected first team: %+v", first)
	}
	if len(first.Preferences) != 2 || first.Preferences[0] != "9/14 09:00-09:30" {
		t.Fatalf("preferences not decoded: %+v", first.Preferences)
	}
	if len(first.Avoid) != 1 || first.Avoid[0] != "carol" {
		t.Fatalf("avoid list not decoded: %+v", first.Avoid)
	}
	if teams[1].ID != "team-2" {
		t.Fatalf("unexpected second team: %+v", teams[1])
	}
}

func TestLoadTeamsRejectsMissingID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.json")
	if err := os.WriteFile(path, []byte(`[{"name": "anon"}]`), 0o644); err != nil {
		t.Fatalf("write teams: %v", err)
	}
	if _, err := LoadTeams(path); err == nil {
		t.Fatal("expected validation error for missing id")
	}
}

func TestLoadTeamsRejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("write teams: %v", err)
	}
	if _, err := LoadTeams(path); err == nil {
		t.Fatal("expected parse error")
	}
}
