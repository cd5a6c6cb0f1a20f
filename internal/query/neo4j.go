package query

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/Mizuchii42/monster-toram/internal/boss"
	"github.com/Mizuchii42/monster-toram/internal/config"
)

var _ Provider = (*Neo4jProvider)(nil)

// Neo4jProvider implements Provider over the Boss/StatDef graph written by
// the loader.
type Neo4jProvider struct {
	driver neo4j.DriverWithContext
	ctx    context.Context
	dbName string
}

// NewNeo4jProvider creates a new connection to Neo4j.
func NewNeo4jProvider(cfg config.Config) (*Neo4jProvider, error) {
	auth := neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, "")

	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	ctx := context.Background()
	// Verify connectivity
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("failed to verify connectivity to neo4j: %w", err)
	}

	return &Neo4jProvider{
		driver: driver,
		ctx:    ctx,
		dbName: cfg.Neo4jDatabase,
	}, nil
}

// Close closes the Neo4j driver connection.
func (p *Neo4jProvider) Close() error {
	return p.driver.Close(p.ctx)
}

func (p *Neo4jProvider) SearchByName(term string) ([]Match, error) {
	return p.entries(buildEntryQuery("toLower(b.name) CONTAINS toLower($term)"), map[string]any{
		"term": term,
	})
}

func (p *Neo4jProvider) ByElement(element string) ([]Match, error) {
	return p.entries(buildEntryQuery("s.element IS NOT NULL AND toLower(toString(s.element)) CONTAINS toLower($element)"), map[string]any{
		"element": element,
	})
}

func (p *Neo4jProvider) ByLevelRange(min, max float64) ([]Match, error) {
	return p.entries(buildEntryQuery("s.level >= $min AND s.level <= $max"), map[string]any{
		"min": min,
		"max": max,
	})
}

// Summarize aggregates client side, sharing the in-memory rounding.
func (p *Neo4jProvider) Summarize() (*Summary, error) {
	matches, err := p.entries(buildEntryQuery("true"), nil)
	if err != nil {
		return nil, err
	}
	return summarize(matches), nil
}

func (p *Neo4jProvider) entries(query string, params map[string]any) ([]Match, error) {
	var opts []neo4j.ExecuteQueryConfigurationOption
	if p.dbName != "" {
		opts = append(opts, neo4j.ExecuteQueryWithDatabase(p.dbName))
	}

	result, err := neo4j.ExecuteQuery(p.ctx, p.driver, query, params, neo4j.EagerResultTransformer, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute stat entry query: %w", err)
	}

	matches := make([]Match, 0, len(result.Records))
	for _, record := range result.Records {
		name, _, err := neo4j.GetRecordValue[string](record, "name")
		if err != nil {
			return nil, fmt.Errorf("failed to read boss name: %w", err)
		}
		props, _, err := neo4j.GetRecordValue[map[string]any](record, "props")
		if err != nil {
			return nil, fmt.Errorf("failed to read stat entry of %s: %w", name, err)
		}

		m, err := matchFromProps(name, props)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	return matches, nil
}

func buildEntryQuery(where string) string {
	return fmt.Sprintf(`
		MATCH (b:Boss)-[:HAS_STATDEF]->(s:StatDef)
		WHERE s.level IS NOT NULL AND (%s)
		RETURN b.name AS name, properties(s) AS props
		ORDER BY b.seq, s.ordinal
	`, where)
}

func matchFromProps(name string, props map[string]any) (Match, error) {
	m := Match{Name: name}
	if d, ok := props["difficulty"].(string); ok {
		m.Difficulty = boss.Difficulty(d)
	}
	for _, f := range m.Fields() {
		v, err := boss.ValueOf(props[f.Name])
		if err != nil {
			return Match{}, fmt.Errorf("stat %s of %s: %w", f.Name, name, err)
		}
		*f.Value = v
	}
	return m, nil
}
