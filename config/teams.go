package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/jaewonkim/ivsched/core/model"
)

// LoadTeams reads the team roster from a JSON file. The file holds an
// array of team objects keyed by lowercase field names.
func LoadTeams(path string) ([]model.Team, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("teams file %s: %w", path, err)
	}
	var teams []model.Team
	if err := mapstructure.Decode(raw, &teams); err != nil {
		return nil, fmt.Errorf("teams file %s: %w", path, err)
	}
	for _, t := range teams {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return teams, nil
}
