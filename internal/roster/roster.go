// ABOUTME: Session roster loaded from YAML for boards and the sessions API
// ABOUTME: Each session carries occupancy, capacity, and an optional utilization percent

package roster

import (
	"fmt"
	"os"

	"github.com/markalston/campboard/internal/utilization"
	"gopkg.in/yaml.v3"
)

// Session is one cabin, activity block, or other bookable unit
type Session struct {
	Name      string `yaml:"name" json:"name"`
	Occupancy int    `yaml:"occupancy" json:"occupancy"`
	Capacity  int    `yaml:"capacity" json:"capacity"`

	// Utilization overrides the percentage derived from occupancy/capacity
	Utilization *float64 `yaml:"utilization,omitempty" json:"utilization,omitempty"`
}

// Reading returns the utilization reading for the session
func (s Session) Reading() utilization.Reading {
	percent := utilization.PercentOf(s.Occupancy, s.Capacity)
	if s.Utilization != nil {
		percent = *s.Utilization
	}
	return utilization.Reading{
		Utilization: percent,
		Occupancy:   s.Occupancy,
		Capacity:    s.Capacity,
	}
}

// Level classifies the session
func (s Session) Level() utilization.Level {
	return utilization.Classify(s.Reading())
}

// Roster is the full list of sessions in file order
type Roster struct {
	Sessions []Session `yaml:"sessions" json:"sessions"`
}

// Load reads a roster from a YAML file
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return Parse(data)
}

// Parse decodes roster YAML
func Parse(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	for i, s := range r.Sessions {
		if s.Name == "" {
			r.Sessions[i].Name = fmt.Sprintf("Session %d", i+1)
		}
	}
	return &r, nil
}

// Counts returns how many sessions fall into each level
func (r *Roster) Counts() map[utilization.Level]int {
	counts := make(map[utilization.Level]int)
	for _, s := range r.Sessions {
		counts[s.Level()]++
	}
	return counts
}
