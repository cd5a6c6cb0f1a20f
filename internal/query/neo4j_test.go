package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mizuchii42/monster-toram/internal/boss"
	"github.com/Mizuchii42/monster-toram/internal/config"
)

func TestBuildEntryQuery(t *testing.T) {
	query := buildEntryQuery("s.level >= $min")
	assert.Contains(t, query, "MATCH (b:Boss)-[:HAS_STATDEF]->(s:StatDef)")
	assert.Contains(t, query, "WHERE s.level IS NOT NULL AND (s.level >= $min)")
	assert.Contains(t, query, "ORDER BY b.seq, s.ordinal")
}

func TestMatchFromProps(t *testing.T) {
	m, err := matchFromProps("Goblin King", map[string]any{
		"id":         "Goblin King#0",
		"difficulty": "hard",
		"level":      int64(30),
		"hp":         1.5,
		"element":    "Dark",
	})
	require.NoError(t, err)

	assert.Equal(t, "Goblin King", m.Name)
	assert.Equal(t, boss.Hard, m.Difficulty)
	assert.Equal(t, boss.Value("30"), m.Level)
	assert.Equal(t, boss.Value("1.5"), m.HP)
	assert.Equal(t, boss.Value(`"Dark"`), m.Element)
	assert.True(t, m.Guard.IsNull())
}

func getProvider(t *testing.T) *Neo4jProvider {
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("NEO4J_URI not set, skipping integration test")
	}

	provider, err := NewNeo4jProvider(config.Config{
		Neo4jURI:      uri,
		Neo4jUser:     os.Getenv("NEO4J_USER"),
		Neo4jPassword: os.Getenv("NEO4J_PASSWORD"),
	})
	require.NoError(t, err)
	return provider
}

func TestNeo4jProvider_SearchByName(t *testing.T) {
	p := getProvider(t)
	defer p.Close()

	matches, err := p.SearchByName("zz-no-such-boss-zz")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestNeo4jProvider_Summarize(t *testing.T) {
	p := getProvider(t)
	defer p.Close()

	s, err := p.Summarize()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.TotalMonsters, 0)
	assert.NotNil(t, s.Elements)
}
