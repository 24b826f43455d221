package bfs

import (
	"slices"
	"strings"

	"github.com/katalvlaran/mincut/core"
)

// Components partitions g into connected components.
//
// Each component is sorted by label asc, and components are ordered by their
// smallest label, so the output is independent of insertion history.
// An empty graph has no components.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) ([][]core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var comps [][]core.Vertex
	seen := make(map[core.Vertex]bool, g.NumVertices())
	// Vertices() is sorted, so the first unseen vertex is the smallest label
	// of a new component.
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		comp := res.Order
		slices.SortFunc(comp, func(a, b core.Vertex) int { return strings.Compare(a.Label(), b.Label()) })
		comps = append(comps, comp)
	}

	return comps, nil
}

// IsConnected reports whether g has exactly one component.
// The empty graph is reported as not connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	start, ok := firstVertex(g)
	if !ok {
		return false, nil
	}
	res, err := BFS(g, start)
	if err != nil {
		return false, err
	}

	return len(res.Order) == g.NumVertices(), nil
}

// firstVertex returns the smallest-label vertex of g.
func firstVertex(g *core.Graph) (core.Vertex, bool) {
	vs := g.Vertices()
	if len(vs) == 0 {
		return core.Vertex{}, false
	}

	return vs[0], true
}
