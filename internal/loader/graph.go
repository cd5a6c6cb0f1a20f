package loader

import (
	"fmt"

	"github.com/Mizuchii42/monster-toram/internal/boss"
	"github.com/Mizuchii42/monster-toram/internal/graph"
)

const (
	LabelBoss    = "Boss"
	LabelStatDef = "StatDef"
	EdgeStatDef  = "HAS_STATDEF"
)

// ToGraph turns grouped records into Boss and StatDef nodes joined by
// HAS_STATDEF edges. seq and ordinal keep document order for queries.
func ToGraph(groups []boss.GroupedRecord) ([]graph.Node, []graph.Edge) {
	var nodes []graph.Node
	var edges []graph.Edge

	for seq, g := range groups {
		bossNode := graph.Node{
			ID:    g.Name,
			Label: LabelBoss,
			Properties: map[string]interface{}{
				"name": g.Name,
				"seq":  seq,
			},
		}
		nodes = append(nodes, bossNode)

		for ordinal := range g.StatDef {
			entry := &g.StatDef[ordinal]
			props := map[string]interface{}{
				"boss":       g.Name,
				"difficulty": string(entry.Difficulty),
				"ordinal":    ordinal,
			}
			// null stats are left off the node
			for _, f := range entry.Fields() {
				if v := f.Value.Native(); v != nil {
					props[f.Name] = v
				}
			}

			statNode := graph.Node{
				ID:         statDefID(g.Name, ordinal),
				Label:      LabelStatDef,
				Properties: props,
			}
			nodes = append(nodes, statNode)
			edges = append(edges, graph.Edge{
				SourceID: bossNode.ID,
				TargetID: statNode.ID,
				Type:     EdgeStatDef,
			})
		}
	}

	return nodes, edges
}

func statDefID(bossName string, ordinal int) string {
	return fmt.Sprintf("%s#%d", bossName, ordinal)
}
