// File: view.go
// Role: Non-mutating views of a graph: textual dump, label adjacency snapshot, Stats.
// Determinism:
//   - Source vertices are emitted sorted by label; each neighbor sequence keeps stored order.
// Concurrency:
//   - Read lock on mu; results are fresh values.
// AI-HINT (file):
//   - String() is diagnostic output only; there is no parser for it.

package core

import (
	"slices"
	"strings"
)

// emptyGraphText is what String renders for a graph with no vertex.
const emptyGraphText = "The graph is empty"

// String renders one "<from> --> <to>" line per adjacency entry, grouped by
// source vertex, with a blank line after each group. An empty graph renders
// as "The graph is empty".
//
// Example (single edge A—B):
//
//	A --> B
//
//	B --> A
//
// Complexity: O(V log V + E).
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.order) == 0 {
		return emptyGraphText
	}

	keys := slices.Clone(g.order)
	sortVertices(keys)
	var sb strings.Builder
	for _, from := range keys {
		for _, to := range g.adj[from] {
			sb.WriteString(from.label)
			sb.WriteString(" --> ")
			sb.WriteString(to.label)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// AdjacencyList returns a label snapshot: label → neighbor labels, in stored
// order with duplicates.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string][]string, len(g.adj))
	for v, nbrs := range g.adj {
		labels := make([]string, len(nbrs))
		for i, u := range nbrs {
			labels[i] = u.label
		}
		out[v.label] = labels
	}

	return out
}

// Stats returns a snapshot of the graph sizes and its largest edge multiplicity.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	stats := GraphStats{VertexCount: len(g.order)}
	counts := make(map[Vertex]int)
	for _, nbrs := range g.adj {
		stats.DegreeSum += len(nbrs)
		clear(counts)
		for _, u := range nbrs {
			counts[u]++
			if counts[u] > stats.MaxMultiplicity {
				stats.MaxMultiplicity = counts[u]
			}
		}
	}
	stats.EdgeCount = stats.DegreeSum / 2

	return stats
}
