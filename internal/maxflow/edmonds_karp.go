package maxflow

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/mincut/core"
)

// EdmondsKarp computes the maximum flow from source to sink of the
// undirected multigraph g, where every parallel edge has unit capacity in
// both directions. By max-flow/min-cut duality this is the size of the
// smallest cut separating source from sink.
//
// It returns:
//   - maxFlow: total flow value (the s-t min cut size)
//   - sourceSide: the vertices reachable from source in the final residual
//     network, sorted by label
//   - err: ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints, or the
//     context error if opts.Ctx is canceled.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	g *core.Graph,
	source, sink core.Vertex,
	opts FlowOptions,
) (maxFlow int, sourceSide []core.Vertex, err error) {
	if g == nil {
		return 0, nil, core.ErrNilGraph
	}
	// 1) Validate presence of source/sink
	if !g.Contains(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.Contains(sink) {
		return 0, nil, ErrSinkNotFound
	}
	if source == sink {
		return 0, nil, ErrSameEndpoints
	}

	// 2) Build residual capacities
	vertices := g.Vertices()
	base, err := buildCapMap(g, vertices)
	if err != nil {
		return 0, nil, err
	}
	maxFlow, residual, err := edmondsKarp(base.clone(), source, sink, opts)
	if err != nil {
		return 0, nil, err
	}

	// 3) Source side of the cut
	side := residual.reachable(source)
	for _, v := range vertices {
		if side[v] {
			sourceSide = append(sourceSide, v)
		}
	}

	return maxFlow, sourceSide, nil
}

// edmondsKarp saturates residual in place and returns the flow value.
func edmondsKarp(residual capMap, source, sink core.Vertex, opts FlowOptions) (int, capMap, error) {
	ctx := opts.context()
	maxFlow := 0
	for {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}
		path, bottle := bfsAugmentingPath(residual, source, sink)
		if len(path) == 0 {
			break
		}
		maxFlow += bottle

		// Augment along the path
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			residual[u][v] -= bottle
			residual[v][u] += bottle
		}
	}

	return maxFlow, residual, nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path in residual
// from source to sink with positive capacity, and returns that path plus its
// bottleneck capacity. Returns nil if no path exists.
func bfsAugmentingPath(residual capMap, source, sink core.Vertex) ([]core.Vertex, int) {
	parent := make(map[core.Vertex]core.Vertex, len(residual))
	bottleneck := map[core.Vertex]int{source: math.MaxInt}
	visited := map[core.Vertex]bool{source: true}

	queue := []core.Vertex{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range residual.sortedNeighbors(u) {
			c := residual[u][v]
			if visited[v] || c <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottleneck[v] = min(bottleneck[u], c)
			if v == sink {
				path := []core.Vertex{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				slices.Reverse(path)

				return path, bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// GlobalMinCut computes the exact minimum cut of g: with s the first vertex
// in label order, it is the smallest s-t max flow over every other vertex t.
// A disconnected graph yields 0.
//
// Errors: core.ErrNilGraph, ErrTooFewVertices, or the context error.
//
// Complexity: O(V² · E²); intended as a verification oracle for graphs of
// modest size.
func GlobalMinCut(g *core.Graph, opts FlowOptions) (Cut, error) {
	if g == nil {
		return Cut{}, core.ErrNilGraph
	}
	vertices := g.Vertices()
	if len(vertices) < 2 {
		return Cut{}, fmt.Errorf("%w: |V|=%d", ErrTooFewVertices, len(vertices))
	}
	base, err := buildCapMap(g, vertices)
	if err != nil {
		return Cut{}, err
	}

	s := vertices[0]
	best := Cut{Size: -1}
	for _, t := range vertices[1:] {
		f, residual, err := edmondsKarp(base.clone(), s, t, opts)
		if err != nil {
			return Cut{}, err
		}
		if best.Size >= 0 && f >= best.Size {
			continue
		}
		side := residual.reachable(s)
		best = Cut{Size: f}
		for _, v := range vertices {
			if side[v] {
				best.Left = append(best.Left, v.Label())
			} else {
				best.Right = append(best.Right, v.Label())
			}
		}
	}

	return best, nil
}
