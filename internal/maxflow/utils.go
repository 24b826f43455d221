package maxflow

import (
	"slices"

	"github.com/katalvlaran/mincut/core"
)

// capMap holds residual capacities: capMap[u][v] is the remaining capacity u→v.
type capMap map[core.Vertex]map[core.Vertex]int

// buildCapMap turns the undirected multigraph g into a symmetric capacity map
// where each parallel copy of u—v adds 1 to both u→v and v→u.
//
// Steps:
//  1. One inner map per vertex (O(V)).
//  2. For each stored neighbor entry of u, add 1 to capMap[u][v]. Because the
//     neighbor sequence of u lists v once per parallel edge, and the sequence
//     of v lists u just as often, both directions end up with the multiplicity.
//  3. Self-loops are skipped: they can carry no flow between distinct vertices.
//
// Complexity: O(V + E).
func buildCapMap(g *core.Graph, vertices []core.Vertex) (capMap, error) {
	cm := make(capMap, len(vertices))
	for _, u := range vertices {
		cm[u] = make(map[core.Vertex]int)
	}
	for _, u := range vertices {
		nbrs, err := g.ConnectedVertices(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			if v == u {
				continue
			}
			cm[u][v]++
		}
	}

	return cm, nil
}

// clone returns an independent copy of cm.
func (cm capMap) clone() capMap {
	out := make(capMap, len(cm))
	for u, inner := range cm {
		c := make(map[core.Vertex]int, len(inner))
		for v, w := range inner {
			c[v] = w
		}
		out[u] = c
	}

	return out
}

// sortedNeighbors returns the keys of cm[u] in label order, so augmenting
// path search is deterministic.
func (cm capMap) sortedNeighbors(u core.Vertex) []core.Vertex {
	out := make([]core.Vertex, 0, len(cm[u]))
	for v := range cm[u] {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b core.Vertex) int {
		switch {
		case a.Label() < b.Label():
			return -1
		case a.Label() > b.Label():
			return 1
		}
		return 0
	})

	return out
}

// reachable returns the vertices reachable from source through edges with
// positive residual capacity: after a max flow this is the source side of a
// minimum s-t cut.
func (cm capMap) reachable(source core.Vertex) map[core.Vertex]bool {
	seen := map[core.Vertex]bool{source: true}
	queue := []core.Vertex{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, c := range cm[u] {
			if c > 0 && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}
