// File: interop_gonum.go
// Role: Export a Graph as a gonum multigraph so gonum's graph algorithms
//       (topo, traverse, ...) can run on the same topology.
// Determinism:
//   - Node IDs are assigned 0..V-1 in Vertices() order (label asc).
//   - Lines are emitted per unordered pair occurrence in that same order.
// AI-HINT (file):
//   - Self-loops are not exported; they never cross a cut.

package core

import (
	"slices"

	"gonum.org/v1/gonum/graph/multi"
)

// GonumView is a snapshot of a Graph as a gonum undirected multigraph.
type GonumView struct {
	// Graph holds one node per vertex and one line per parallel edge.
	Graph *multi.UndirectedGraph
	// IDs maps each vertex to its gonum node ID.
	IDs map[Vertex]int64
	// Vertices maps a gonum node ID back to its vertex (index == ID).
	Vertices []Vertex
}

// ToGonum exports g to a gonum multigraph. The view does not track later
// mutations of g.
// Complexity: O(V log V + E).
// Concurrency: a single read lock, so the view is one consistent snapshot.
func (g *Graph) ToGonum() *GonumView {
	// One read lock covers both the vertex set and the sequences, so every
	// neighbor has an ID.
	g.mu.RLock()
	defer g.mu.RUnlock()

	vertices := slices.Clone(g.order)
	sortVertices(vertices)

	view := &GonumView{
		Graph:    multi.NewUndirectedGraph(),
		IDs:      make(map[Vertex]int64, len(vertices)),
		Vertices: vertices,
	}
	for i, v := range vertices {
		view.IDs[v] = int64(i)
		view.Graph.AddNode(multi.Node(i))
	}
	// Each undirected edge appears in both sequences; emit it from the
	// endpoint with the smaller ID only.
	for i, v := range vertices {
		for _, u := range g.adj[v] {
			j := view.IDs[u]
			if j <= int64(i) {
				continue
			}
			view.Graph.SetLine(view.Graph.NewLine(multi.Node(i), multi.Node(j)))
		}
	}

	return view
}
