package boss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		in         string
		base       string
		difficulty Difficulty
	}{
		{"Goblin King(Easy)", "Goblin King", Easy},
		{"Goblin King (Hard)", "Goblin King", Hard},
		{"Dragon(NIGHTMARE)", "Dragon", Nightmare},
		{"Dragon(ultimate)", "Dragon", Ultimate},
		{"Dragon(Normal)", "Dragon", Normal},
		{"Slime Mini Boss", "Slime Mini Boss", Normal},
		{"  Padded Boss  ", "Padded Boss", Normal},
		{"", "", Normal},
		{"(Hard)", "", Hard},
		{"Boss (Phase 2)(Hard)", "Boss (Phase 2)", Hard},
		{"Boss (Phase 2)", "Boss (Phase 2)", Normal},
		{"Boss(Extreme)", "Boss(Extreme)", Normal},
		{"Boss(Hard) ", "Boss(Hard)", Normal},
		{"Boss( Hard)", "Boss( Hard)", Normal},
		{"Boss(Hard))", "Boss(Hard))", Normal},
		{"Boss)", "Boss)", Normal},
		{"Bóss Ünïcode(Easy)", "Bóss Ünïcode", Easy},
		{"A(Hard)\n", "A", Hard},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			base, d := ParseName(tt.in)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.difficulty, d)
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	d, ok := ParseDifficulty("HaRd")
	assert.True(t, ok)
	assert.Equal(t, Hard, d)

	_, ok = ParseDifficulty("extreme")
	assert.False(t, ok)
	_, ok = ParseDifficulty("")
	assert.False(t, ok)
}

func TestFormatNameRoundTrip(t *testing.T) {
	for _, d := range Difficulties() {
		name := FormatName("Venena", d)
		base, got := ParseName(name)
		assert.Equal(t, "Venena", base)
		assert.Equal(t, d, got)
	}
	assert.Equal(t, "Venena(Nightmare)", FormatName("Venena", Nightmare))
}

func TestDifficultiesIsCopy(t *testing.T) {
	ds := Difficulties()
	ds[0] = "broken"
	assert.Equal(t, Easy, Difficulties()[0])
}
