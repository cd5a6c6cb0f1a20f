package query

import "github.com/Mizuchii42/monster-toram/internal/boss"

// Match is one stat entry together with the base name of its boss. It
// encodes as a flat object, like a source record with a split name.
type Match struct {
	Name string `json:"name"`
	boss.StatEntry
}

// Summary aggregates the entries that have a level.
type Summary struct {
	TotalMonsters int      `json:"total_monsters"`
	AvgLevel      float64  `json:"avg_level"`
	MaxLevel      float64  `json:"max_level"`
	MinLevel      float64  `json:"min_level"`
	Elements      []string `json:"elements"`
	AvgHP         int64    `json:"avg_hp"`
}

// Provider answers lookups over grouped boss data. Only entries with a
// level take part; unleveled entries are placeholders in the source data.
type Provider interface {
	// Lifecycle
	Close() error

	SearchByName(term string) ([]Match, error)
	ByElement(element string) ([]Match, error)
	ByLevelRange(min, max float64) ([]Match, error)
	Summarize() (*Summary, error)
}
