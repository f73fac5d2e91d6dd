package slots

import (
	"fmt"
	"time"

	"github.com/jaewonkim/ivsched/core/model"
)

// Window is a daily interviewing period, e.g. 09:00-12:00.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Room binds a physical room and its interviewer panel to every slot
// generated in it.
type Room struct {
	Name         string   `json:"name"`
	Interviewers []string `json:"interviewers"`
}

// GridConfig describes the slot grid generated before scheduling.
type GridConfig struct {
	// StartDate is the first interview day, YYYY-MM-DD.
	StartDate string `json:"start_date"`
	// Days is the number of consecutive interview days.
	Days int `json:"days"`
	// SlotMinutes is the duration of one interview slot.
	SlotMinutes int `json:"slot_minutes"`
	// Windows are the interviewing periods of each day.
	Windows []Window `json:"windows"`
	// Rooms host one slot each per grid time.
	Rooms []Room `json:"rooms"`
	// Capacity bounds how many teams share one generated slot.
	Capacity int `json:"capacity"`
}

// SetDefaults applies the historical defaults: three days of 30-minute
// slots across a split morning/afternoon day, one room, one team per
// slot.
func (c *GridConfig) SetDefaults() {
	if c.Days == 0 {
		c.Days = 3
	}
	if c.SlotMinutes == 0 {
		c.SlotMinutes = 30
	}
	if len(c.Windows) == 0 {
		c.Windows = []Window{{Start: "09:00", End: "12:00"}, {Start: "14:00", End: "18:00"}}
	}
	if len(c.Rooms) == 0 {
		c.Rooms = []Room{{Name: "Room A"}}
	}
	if c.Capacity == 0 {
		c.Capacity = 1
	}
}

// Validate checks mandatory fields.
func (c GridConfig) Validate() error {
	if _, err := time.Parse("2006-01-02", c.StartDate); err != nil {
		return fmt.Errorf("grid: invalid start_date %q: %w", c.StartDate, err)
	}
	if c.Days < 1 {
		return fmt.Errorf("grid: days must be positive")
	}
	if c.SlotMinutes < 1 {
		return fmt.Errorf("grid: slot_minutes must be positive")
	}
	if c.Capacity < 1 {
		return fmt.Errorf("grid: capacity must be positive")
	}
	if len(c.Rooms) == 0 {
		return fmt.Errorf("grid: at least one room is required")
	}
	for _, w := range c.Windows {
		start, err := parseClock(w.Start)
		if err != nil {
			return fmt.Errorf("grid: invalid window start %q: %w", w.Start, err)
		}
		end, err := parseClock(w.End)
		if err != nil {
			return fmt.Errorf("grid: invalid window end %q: %w", w.End, err)
		}
		if end <= start {
			return fmt.Errorf("grid: window %s-%s ends before it starts", w.Start, w.End)
		}
	}
	return nil
}

// Generate builds the full grid of interview slots before scheduling
// begins. One slot is produced per (day, window step, room); identity
// is stable for identical configuration.
func Generate(cfg GridConfig) ([]model.InterviewSlot, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	first, err := time.Parse("2006-01-02", cfg.StartDate)
	if err != nil {
		return nil, err
	}

	step := time.Duration(cfg.SlotMinutes) * time.Minute
	var grid []model.InterviewSlot
	for day := 0; day < cfg.Days; day++ {
		date := first.AddDate(0, 0, day)
		for _, w := range cfg.Windows {
			startMin, _ := parseClock(w.Start)
			endMin, _ := parseClock(w.End)
			for cur := startMin; cur+cfg.SlotMinutes <= endMin; cur += cfg.SlotMinutes {
				begin := date.Add(time.Duration(cur) * time.Minute)
				for _, room := range cfg.Rooms {
					slot := model.InterviewSlot{
						ID:           fmt.Sprintf("d%d-%s-%s", day, begin.Format("1504"), room.Name),
						Day:          day,
						Start:        begin,
						End:          begin.Add(step),
						Room:         room.Name,
						Interviewers: room.Interviewers,
						Capacity:     cfg.Capacity,
					}
					if err := slot.Validate(); err != nil {
						return nil, err
					}
					grid = append(grid, slot)
				}
			}
		}
	}
	return grid, nil
}

// parseClock converts "HH:MM" to minutes after midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
