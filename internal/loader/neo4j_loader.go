package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/Mizuchii42/monster-toram/internal/boss"
	"github.com/Mizuchii42/monster-toram/internal/graph"
)

// Neo4jLoader handles batch loading of grouped boss data into Neo4j.
type Neo4jLoader struct {
	Driver neo4j.DriverWithContext
	DBName string
	Logger *zap.Logger
}

// NewNeo4jLoader creates a new loader instance.
func NewNeo4jLoader(driver neo4j.DriverWithContext, dbName string, logger *zap.Logger) *Neo4jLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Neo4jLoader{
		Driver: driver,
		DBName: dbName,
		Logger: logger,
	}
}

// Load applies constraints, optionally wipes existing boss data, then merges
// groups into the graph.
func (l *Neo4jLoader) Load(ctx context.Context, groups []boss.GroupedRecord, wipe bool) error {
	if err := l.ApplyConstraints(ctx); err != nil {
		return err
	}
	if wipe {
		if err := l.Wipe(ctx); err != nil {
			return fmt.Errorf("failed to wipe boss data: %w", err)
		}
		l.Logger.Info("Wiped existing boss data")
	}

	nodes, edges := ToGraph(groups)
	if err := l.BatchLoadNodes(ctx, nodes); err != nil {
		return err
	}
	if err := l.BatchLoadEdges(ctx, edges); err != nil {
		return err
	}

	l.Logger.Info("Loaded boss graph",
		zap.Int("bosses", len(groups)),
		zap.Int("nodes", len(nodes)),
		zap.Int("edges", len(edges)),
	)
	return nil
}

// BatchLoadNodes loads a batch of nodes using UNWIND.
func (l *Neo4jLoader) BatchLoadNodes(ctx context.Context, nodes []graph.Node) error {
	if len(nodes) == 0 {
		return nil
	}

	batches := groupNodesByLabel(nodes)

	session := l.Driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: l.DBName})
	defer session.Close(ctx)

	for label, batch := range batches {
		query := buildNodeQuery(label)
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			return tx.Run(ctx, query, map[string]any{"batch": batch})
		})
		if err != nil {
			return fmt.Errorf("failed to load nodes for label %s: %w", label, err)
		}
		l.Logger.Debug("Loaded node batch", zap.String("label", label), zap.Int("count", len(batch)))
	}

	return nil
}

// BatchLoadEdges loads a batch of edges using UNWIND.
func (l *Neo4jLoader) BatchLoadEdges(ctx context.Context, edges []graph.Edge) error {
	if len(edges) == 0 {
		return nil
	}

	batches := groupEdgesByType(edges)

	session := l.Driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: l.DBName})
	defer session.Close(ctx)

	for relType, batch := range batches {
		query := buildEdgeQuery(relType)
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			return tx.Run(ctx, query, map[string]any{"batch": batch})
		})
		if err != nil {
			return fmt.Errorf("failed to load edges for type %s: %w", relType, err)
		}
		l.Logger.Debug("Loaded edge batch", zap.String("type", relType), zap.Int("count", len(batch)))
	}

	return nil
}

// Wipe deletes all Boss and StatDef nodes.
func (l *Neo4jLoader) Wipe(ctx context.Context) error {
	session := l.Driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: l.DBName})
	defer session.Close(ctx)

	query := buildWipeQuery()
	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, query, nil)
	})
	return err
}

// ApplyConstraints creates uniqueness constraints and indexes.
func (l *Neo4jLoader) ApplyConstraints(ctx context.Context) error {
	session := l.Driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: l.DBName})
	defer session.Close(ctx)

	for _, query := range constraintQueries() {
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			return tx.Run(ctx, query, nil)
		})
		if err != nil {
			return fmt.Errorf("failed to apply constraint '%s': %w", query, err)
		}
	}
	return nil
}

// Helpers extracted for testing
func groupNodesByLabel(nodes []graph.Node) map[string][]map[string]any {
	batches := make(map[string][]map[string]any)
	for _, n := range nodes {
		props := make(map[string]any)
		for k, v := range n.Properties {
			props[k] = v
		}
		props["id"] = n.ID

		batches[n.Label] = append(batches[n.Label], props)
	}
	return batches
}

func buildNodeQuery(label string) string {
	return fmt.Sprintf(`
			UNWIND $batch AS row
			MERGE (n:%s {id: row.id})
			SET n += row
		`, sanitizeLabel(label))
}

func groupEdgesByType(edges []graph.Edge) map[string][]map[string]any {
	batches := make(map[string][]map[string]any)
	for _, e := range edges {
		row := map[string]any{
			"sourceId": e.SourceID,
			"targetId": e.TargetID,
		}
		batches[e.Type] = append(batches[e.Type], row)
	}
	return batches
}

func buildEdgeQuery(relType string) string {
	return fmt.Sprintf(`
			UNWIND $batch AS row
			MATCH (source:%s {id: row.sourceId})
			MATCH (target:%s {id: row.targetId})
			MERGE (source)-[r:%s]->(target)
		`, LabelBoss, LabelStatDef, sanitizeLabel(relType))
}

func buildWipeQuery() string {
	return fmt.Sprintf("MATCH (n) WHERE n:%s OR n:%s DETACH DELETE n", LabelBoss, LabelStatDef)
}

func constraintQueries() []string {
	return []string{
		fmt.Sprintf("CREATE CONSTRAINT IF NOT EXISTS FOR (n:%s) REQUIRE n.id IS UNIQUE", LabelBoss),
		fmt.Sprintf("CREATE CONSTRAINT IF NOT EXISTS FOR (n:%s) REQUIRE n.id IS UNIQUE", LabelStatDef),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS FOR (n:%s) ON (n.name)", LabelBoss),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS FOR (n:%s) ON (n.level)", LabelStatDef),
	}
}

func sanitizeLabel(label string) string {
	return strings.ReplaceAll(label, "`", "")
}
