package query

import (
	"math"
	"strings"

	"github.com/Mizuchii42/monster-toram/internal/boss"
)

var _ Provider = (*MemoryProvider)(nil)

// MemoryProvider implements Provider over grouped records held in memory.
type MemoryProvider struct {
	groups []boss.GroupedRecord
}

// NewMemoryProvider wraps groups. The slice is not copied.
func NewMemoryProvider(groups []boss.GroupedRecord) *MemoryProvider {
	return &MemoryProvider{groups: groups}
}

func (p *MemoryProvider) Close() error {
	return nil
}

// SearchByName matches base names containing term, ignoring case.
func (p *MemoryProvider) SearchByName(term string) ([]Match, error) {
	term = strings.ToLower(term)
	return p.filter(func(name string, _ *boss.StatEntry) bool {
		return strings.Contains(strings.ToLower(name), term)
	}), nil
}

// ByElement matches entries whose element contains element, ignoring case.
func (p *MemoryProvider) ByElement(element string) ([]Match, error) {
	element = strings.ToLower(element)
	return p.filter(func(_ string, e *boss.StatEntry) bool {
		s, ok := e.Element.Text()
		return ok && s != "" && strings.Contains(strings.ToLower(s), element)
	}), nil
}

// ByLevelRange matches entries with min <= level <= max.
func (p *MemoryProvider) ByLevelRange(min, max float64) ([]Match, error) {
	return p.filter(func(_ string, e *boss.StatEntry) bool {
		level, _ := e.Level.Float64()
		return level >= min && level <= max
	}), nil
}

func (p *MemoryProvider) Summarize() (*Summary, error) {
	return summarize(p.filter(func(string, *boss.StatEntry) bool { return true })), nil
}

// filter walks entries in document order, skipping those without a numeric
// level.
func (p *MemoryProvider) filter(keep func(name string, e *boss.StatEntry) bool) []Match {
	matches := make([]Match, 0)
	for _, g := range p.groups {
		for i := range g.StatDef {
			e := &g.StatDef[i]
			if _, ok := e.Level.Float64(); !ok {
				continue
			}
			if keep(g.Name, e) {
				matches = append(matches, Match{Name: g.Name, StatEntry: *e})
			}
		}
	}
	return matches
}

func summarize(matches []Match) *Summary {
	s := &Summary{Elements: make([]string, 0)}
	if len(matches) == 0 {
		return s
	}

	var levelSum, hpSum float64
	seen := make(map[string]bool)
	s.MaxLevel = math.Inf(-1)
	s.MinLevel = math.Inf(1)

	for _, m := range matches {
		level, _ := m.Level.Float64()
		levelSum += level
		s.MaxLevel = math.Max(s.MaxLevel, level)
		s.MinLevel = math.Min(s.MinLevel, level)

		// missing hp counts as zero
		if hp, ok := m.HP.Float64(); ok {
			hpSum += hp
		}
		if el, ok := m.Element.Text(); ok && el != "" && !seen[el] {
			seen[el] = true
			s.Elements = append(s.Elements, el)
		}
	}

	n := float64(len(matches))
	s.TotalMonsters = len(matches)
	s.AvgLevel = math.Round(levelSum/n*100) / 100
	s.AvgHP = int64(math.Round(hpSum / n))
	return s
}
