// Package shift holds the shift catalog and the break slot generator.
package shift

import (
	"fmt"
	"os"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/diegoclair/slack-break-bot/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// Catalog is the static registry of shift definitions
type Catalog struct {
	shifts []entity.ShiftDefinition
	byID   map[string]int
}

func NewCatalog(defs ...entity.ShiftDefinition) (*Catalog, error) {
	c := &Catalog{
		shifts: make([]entity.ShiftDefinition, 0, len(defs)),
		byID:   make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("shift without id")
		}
		if _, ok := c.byID[d.ID]; ok {
			return nil, fmt.Errorf("duplicate shift id: %s", d.ID)
		}
		if !d.StartTime.Valid() || !d.EndTime.Valid() {
			return nil, fmt.Errorf("shift %s has an invalid time", d.ID)
		}
		c.byID[d.ID] = len(c.shifts)
		c.shifts = append(c.shifts, d)
	}
	return c, nil
}

// DefaultCatalog returns the five shifts of the reference deployment
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		entity.ShiftDefinition{ID: "early-morning", DisplayName: "Early Morning Shift", StartTime: entity.MustTimeOfDay("07:00"), EndTime: entity.MustTimeOfDay("15:00"), Icon: "☀️"},
		entity.ShiftDefinition{ID: "morning", DisplayName: "Morning Shift", StartTime: entity.MustTimeOfDay("08:00"), EndTime: entity.MustTimeOfDay("17:00"), Icon: "🌅"},
		entity.ShiftDefinition{ID: "afternoon", DisplayName: "Afternoon Shift", StartTime: entity.MustTimeOfDay("12:00"), EndTime: entity.MustTimeOfDay("21:00"), Icon: "🌤️"},
		entity.ShiftDefinition{ID: "evening", DisplayName: "Evening Shift", StartTime: entity.MustTimeOfDay("15:00"), EndTime: entity.MustTimeOfDay("00:00"), Icon: "🌙"},
		entity.ShiftDefinition{ID: "night", DisplayName: "Night Shift", StartTime: entity.MustTimeOfDay("22:00"), EndTime: entity.MustTimeOfDay("07:00"), Icon: "🌃"},
	)
	if err != nil {
		panic(err)
	}
	return c
}

type catalogFile struct {
	Shifts []struct {
		ID    string `yaml:"id"`
		Name  string `yaml:"name"`
		Start string `yaml:"start"`
		End   string `yaml:"end"`
		Icon  string `yaml:"icon"`
	} `yaml:"shifts"`
}

// LoadCatalog reads a YAML catalog. An empty path yields the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shift catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse shift catalog: %w", err)
	}
	if len(file.Shifts) == 0 {
		return nil, fmt.Errorf("shift catalog is empty")
	}

	defs := make([]entity.ShiftDefinition, 0, len(file.Shifts))
	for _, s := range file.Shifts {
		start, err := entity.ParseTimeOfDay(s.Start)
		if err != nil {
			return nil, fmt.Errorf("shift %s start: %w", s.ID, err)
		}
		end, err := entity.ParseTimeOfDay(s.End)
		if err != nil {
			return nil, fmt.Errorf("shift %s end: %w", s.ID, err)
		}
		name := s.Name
		if name == "" {
			name = s.ID
		}
		defs = append(defs, entity.ShiftDefinition{
			ID:          s.ID,
			DisplayName: name,
			StartTime:   start,
			EndTime:     end,
			Icon:        s.Icon,
		})
	}
	return NewCatalog(defs...)
}

// List returns the shifts in catalog order
func (c *Catalog) List() []entity.ShiftDefinition {
	out := make([]entity.ShiftDefinition, len(c.shifts))
	copy(out, c.shifts)
	return out
}

func (c *Catalog) Find(id string) (entity.ShiftDefinition, error) {
	i, ok := c.byID[id]
	if !ok {
		return entity.ShiftDefinition{}, fmt.Errorf("%w: %s", domain.ErrShiftNotFound, id)
	}
	return c.shifts[i], nil
}
