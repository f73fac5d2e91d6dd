package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `grid:
  start_date: "2026-09-14"
  days: 2
  slot_minutes: 45
  windows:
    - start: "09:00"
      end: "12:00"
  rooms:
    - name: "Room A"
      interviewers: ["alice", "bob"]
  capacity: 2
scheduling:
  global_budget_seconds: 20
  strategy_budget_seconds: 5
  seed: 42
  blackouts: ["9/14 09:00-09:45"]
metrics:
  prometheus_enabled: true
  prometheus_port: ":9191"
logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"start_date", cfg.Grid.StartDate, "2026-09-14"},
		{"days", cfg.Grid.Days, 2},
		{"slot_minutes", cfg.Grid.SlotMinutes, 45},
		{"room", cfg.Grid.Rooms[0].Name, "Room A"},
		{"capacity", cfg.Grid.Capacity, 2},
		{"global_budget_seconds", cfg.Scheduling.GlobalBudgetSeconds, 20},
		{"strategy_budget_seconds", cfg.Scheduling.StrategyBudgetSeconds, 5},
		{"seed", cfg.Scheduling.Seed, int64(42)},
		{"blackout", cfg.Scheduling.Blackouts[0], "9/14 09:00-09:45"},
		{"prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"prometheus_port", cfg.Metrics.PrometheusPort, ":9191"},
		{"log_level", cfg.Logging.Level, "debug"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}

	// Omitted scheduling knobs fall back to defaults.
	if cfg.Scheduling.MaxWorkers != 5 || cfg.Scheduling.MaxNodes != 200000 {
		t.Errorf("scheduling defaults not applied: %+v", cfg.Scheduling)
	}
	if cfg.Scheduling.Weights.Preference != 0.4 {
		t.Errorf("default weights not applied: %+v", cfg.Scheduling.Weights)
	}
}

func TestLoadRejectsUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("x = 1"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `grid:
  start_date: "2026-09-14"
logging:
  level: "loud"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestLoggingConfigDefaults(t *testing.T) {
	var c LoggingConfig
	c.SetDefaults()
	if c.Level != "info" {
		t.Fatalf("default level = %q, want info", c.Level)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default level invalid: %v", err)
	}
}
