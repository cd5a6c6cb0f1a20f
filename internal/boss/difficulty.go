package boss

import (
	"fmt"
	"strings"
)

// Difficulty is one of the five fixed difficulty tiers.
type Difficulty string

const (
	Easy      Difficulty = "easy"
	Normal    Difficulty = "normal"
	Hard      Difficulty = "hard"
	Nightmare Difficulty = "nightmare"
	Ultimate  Difficulty = "ultimate"
)

var difficulties = []Difficulty{Easy, Normal, Hard, Nightmare, Ultimate}

// Difficulties returns the recognised tiers from easiest to hardest.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// ParseDifficulty matches token against the known tiers, ignoring case.
func ParseDifficulty(token string) (Difficulty, bool) {
	for _, d := range difficulties {
		if strings.EqualFold(token, string(d)) {
			return d, true
		}
	}
	return "", false
}

// Title returns the capitalised form used in source names, e.g. "Nightmare".
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// ParseName splits a source name into its base name and difficulty. Names
// without a trailing "(<difficulty>)" marker are unmarked bosses and count
// as Normal. A single newline after the marker is tolerated.
func ParseName(full string) (string, Difficulty) {
	marked := strings.TrimSuffix(full, "\n")
	if strings.HasSuffix(marked, ")") {
		if open := strings.LastIndexByte(marked, '('); open >= 0 {
			if d, ok := ParseDifficulty(marked[open+1 : len(marked)-1]); ok {
				return strings.TrimSpace(marked[:open]), d
			}
		}
	}
	return strings.TrimSpace(full), Normal
}

// FormatName is the inverse of ParseName.
func FormatName(base string, d Difficulty) string {
	return fmt.Sprintf("%s(%s)", base, d.Title())
}
