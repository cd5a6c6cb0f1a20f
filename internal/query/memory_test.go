package query

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mizuchii42/monster-toram/internal/boss"
	"github.com/Mizuchii42/monster-toram/internal/storage"
)

func fixtureProvider(t *testing.T) *MemoryProvider {
	t.Helper()
	records, err := storage.Decode(strings.NewReader(`[
		{"name": "Goblin King(Easy)", "level": 10, "hp": 100, "element": "Dark"},
		{"name": "Goblin King(Hard)", "level": 30, "hp": 500, "element": "Dark"},
		{"name": "Ice Dragon(Nightmare)", "level": 90, "hp": 9001, "element": "Water"},
		{"name": "Slime Mini Boss", "level": 5, "element": "Neutral"},
		{"name": "Unfinished Boss", "hp": 77, "element": "Dark"}
	]`))
	require.NoError(t, err)
	return NewMemoryProvider(boss.Transform(records))
}

func names(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Name + "/" + string(m.Difficulty)
	}
	return out
}

func TestMemoryProvider_SearchByName(t *testing.T) {
	p := fixtureProvider(t)

	matches, err := p.SearchByName("GOBLIN")
	require.NoError(t, err)
	assert.Equal(t, []string{"Goblin King/easy", "Goblin King/hard"}, names(matches))

	matches, err = p.SearchByName("boss")
	require.NoError(t, err)
	// Unfinished Boss has no level
	assert.Equal(t, []string{"Slime Mini Boss/normal"}, names(matches))
}

func TestMemoryProvider_ByElement(t *testing.T) {
	p := fixtureProvider(t)

	matches, err := p.ByElement("dark")
	require.NoError(t, err)
	assert.Equal(t, []string{"Goblin King/easy", "Goblin King/hard"}, names(matches))

	matches, err = p.ByElement("fire")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemoryProvider_ByLevelRange(t *testing.T) {
	p := fixtureProvider(t)

	matches, err := p.ByLevelRange(10, 90)
	require.NoError(t, err)
	assert.Equal(t, []string{"Goblin King/easy", "Goblin King/hard", "Ice Dragon/nightmare"}, names(matches))
}

func TestMemoryProvider_Summarize(t *testing.T) {
	p := fixtureProvider(t)

	s, err := p.Summarize()
	require.NoError(t, err)
	assert.Equal(t, 4, s.TotalMonsters)
	assert.Equal(t, 33.75, s.AvgLevel)
	assert.Equal(t, 90.0, s.MaxLevel)
	assert.Equal(t, 5.0, s.MinLevel)
	assert.Equal(t, []string{"Dark", "Water", "Neutral"}, s.Elements)
	// (100 + 500 + 9001 + 0) / 4 = 2400.25
	assert.Equal(t, int64(2400), s.AvgHP)
}

func TestMemoryProvider_SummarizeEmpty(t *testing.T) {
	s, err := NewMemoryProvider(nil).Summarize()
	require.NoError(t, err)
	assert.Zero(t, s.TotalMonsters)
	assert.Zero(t, s.AvgLevel)
	assert.NotNil(t, s.Elements)
}

func TestMatch_EncodesFlat(t *testing.T) {
	p := fixtureProvider(t)
	matches, err := p.SearchByName("dragon")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	var buf strings.Builder
	require.NoError(t, encodeJSON(&buf, matches[0]))
	out := buf.String()
	assert.Contains(t, out, `"name":"Ice Dragon"`)
	assert.Contains(t, out, `"difficulty":"nightmare"`)
	assert.Contains(t, out, `"hp":9001`)
}

func encodeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
