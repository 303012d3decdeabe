// Package stats holds the statistic records shown on the dashboard: their
// validation rules, the built-in sample data, data-file loading and watching.
package stats

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/dash/internal/errors"
)

// Trend is the direction a statistic moved.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Defaults applied to optional fields.
const (
	DefaultIcon      = "insights"
	DefaultIconColor = "#3498DB"
)

// Record is one statistic card. Records are values: the dashboard replaces the
// whole slice on refresh rather than mutating entries in place.
type Record struct {
	ID         string `yaml:"id" mapstructure:"id" toml:"id" json:"id"`
	Title      string `yaml:"title" mapstructure:"title" toml:"title" json:"title"`
	Value      string `yaml:"value" mapstructure:"value" toml:"value" json:"value"`
	Subtitle   string `yaml:"subtitle,omitempty" mapstructure:"subtitle" toml:"subtitle" json:"subtitle,omitempty"`
	Icon       string `yaml:"icon,omitempty" mapstructure:"icon" toml:"icon" json:"icon,omitempty"`
	IconColor  string `yaml:"icon_color,omitempty" mapstructure:"icon_color" toml:"icon_color" json:"icon_color,omitempty"`
	Trend      Trend  `yaml:"trend,omitempty" mapstructure:"trend" toml:"trend" json:"trend,omitempty"`
	TrendValue string `yaml:"trend_value,omitempty" mapstructure:"trend_value" toml:"trend_value" json:"trend_value,omitempty"`
}

// WithDefaults fills tolerated missing fields: icon, icon color, trend and title.
func (r Record) WithDefaults() Record {
	if strings.TrimSpace(r.Icon) == "" {
		r.Icon = DefaultIcon
	}
	if strings.TrimSpace(r.IconColor) == "" {
		r.IconColor = DefaultIconColor
	}
	switch Trend(strings.ToLower(string(r.Trend))) {
	case TrendDown:
		r.Trend = TrendDown
	default:
		r.Trend = TrendUp
	}
	if strings.TrimSpace(r.Title) == "" {
		r.Title = r.ID
	}
	return r
}

// DisplayTitle returns the title, or the ID when the title is blank.
func (r Record) DisplayTitle() string {
	if strings.TrimSpace(r.Title) == "" {
		return r.ID
	}
	return r.Title
}

// Validate checks that every record has a non-empty ID and that IDs are unique.
func Validate(records []Record) error {
	seen := make(map[string]int, len(records))
	for i, r := range records {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return errors.InvalidArgument(
				fmt.Sprintf("Statistic #%d (%q) has no id", i+1, r.Title),
				"Give every statistic a unique id")
		}
		if prev, ok := seen[id]; ok {
			return errors.InvalidArgument(
				fmt.Sprintf("Statistic id %q is used by #%d and #%d", id, prev+1, i+1),
				"Statistic ids must be unique")
		}
		seen[id] = i
	}
	return nil
}

// Normalize validates records and returns a defaulted copy. The input is not modified.
func Normalize(records []Record) ([]Record, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}
	out := make([]Record, len(records))
	for i, r := range records {
		r.ID = strings.TrimSpace(r.ID)
		out[i] = r.WithDefaults()
	}
	return out, nil
}

// Clone returns a copy of records.
func Clone(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// Find returns the record with the given id.
func Find(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// WithValue returns a new slice where the record matching id has its value
// replaced. Every other record passes through unchanged, in order.
func WithValue(records []Record, id, value string) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		if r.ID == id {
			r.Value = value
		}
		out[i] = r
	}
	return out
}
