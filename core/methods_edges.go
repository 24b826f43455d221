// File: methods_edges.go
// Role: Edge lifecycle: AddEdge/AddEdgeLabels/RemoveEdge/RemoveEdgeLabels,
//       plus the internal key bookkeeping shared with merge and clone.
// Determinism:
//   - New vertices are appended to the key order; removed ones are swap-removed.
//   - Neighbor sequences grow by append, so insertion order is preserved.
// Concurrency:
//   - Mutations under mu write lock.
// AI-HINT (file):
//   - Parallel edges are always accepted (this is a multigraph).
//   - RemoveEdge strips ONE parallel copy per call and deletes vertices left with no neighbors.

package core

import (
	"fmt"
	"strings"
)

// AddEdge inserts one undirected edge v1—v2, creating missing vertices.
//
// Steps:
//  1. Reject zero vertices (ErrNilVertex).
//  2. Lock mu; append v2 to adj[v1] and v1 to adj[v2].
//
// Both endpoints equal (v1 == v2) produces a self-loop entry on each side of
// the same list; contraction never creates such entries, but callers may.
//
// Complexity: O(1) amortized.
// Concurrency: acquires mu write lock.
func (g *Graph) AddEdge(v1, v2 Vertex) error {
	// AI-HINT: duplicates are intentional; two calls with the same pair yield two parallel edges.
	if v1.IsZero() || v2.IsZero() {
		return ErrNilVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.link(v1, v2)

	return nil
}

// AddEdgeLabels is the label form of AddEdge.
// Empty or whitespace-only labels are rejected with ErrBlankLabel.
func (g *Graph) AddEdgeLabels(a, b string) error {
	if isBlank(a) || isBlank(b) {
		return fmt.Errorf("AddEdgeLabels(%q, %q): %w", a, b, ErrBlankLabel)
	}

	return g.AddEdge(NewVertex(a), NewVertex(b))
}

// RemoveEdge removes exactly one parallel copy of the edge v1—v2.
//
// Steps:
//  1. Reject zero vertices (ErrNilVertex) and absent vertices (ErrVertexNotFound).
//  2. Remove the first occurrence of v2 from adj[v1] and of v1 from adj[v2].
//  3. Delete any endpoint whose sequence became empty.
//
// If both vertices exist but are not adjacent, nothing changes.
//
// Complexity: O(deg(v1) + deg(v2)).
// Concurrency: acquires mu write lock.
func (g *Graph) RemoveEdge(v1, v2 Vertex) error {
	if v1.IsZero() || v2.IsZero() {
		return ErrNilVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[v1]; !ok {
		return fmt.Errorf("RemoveEdge(%s, %s): %s: %w", v1, v2, v1, ErrVertexNotFound)
	}
	if _, ok := g.adj[v2]; !ok {
		return fmt.Errorf("RemoveEdge(%s, %s): %s: %w", v1, v2, v2, ErrVertexNotFound)
	}

	// A self-loop occupies two entries of the same sequence, so the second
	// removeFirst strips its mirror as well.
	g.adj[v1] = removeFirst(g.adj[v1], v2)
	g.adj[v2] = removeFirst(g.adj[v2], v1)
	// Drop endpoints that lost their last neighbor.
	if len(g.adj[v1]) == 0 {
		g.dropKey(v1)
	}
	if len(g.adj[v2]) == 0 {
		g.dropKey(v2)
	}

	return nil
}

// RemoveEdgeLabels is the label form of RemoveEdge.
func (g *Graph) RemoveEdgeLabels(a, b string) error {
	if isBlank(a) || isBlank(b) {
		return fmt.Errorf("RemoveEdgeLabels(%q, %q): %w", a, b, ErrBlankLabel)
	}

	return g.RemoveEdge(NewVertex(a), NewVertex(b))
}

// NumEdges returns the number of undirected edges, recomputed from the
// current neighbor sequences (DegreeSum / 2). No counter is cached.
// Complexity: O(V).
// Concurrency: read lock on mu.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.degreeSum() / 2
}

// DegreeSum returns the total length of all neighbor sequences, i.e. every
// undirected edge counted once from each endpoint.
// Complexity: O(V).
// Concurrency: read lock on mu.
func (g *Graph) DegreeSum() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.degreeSum()
}

// link appends v2 to adj[v1] and v1 to adj[v2]. Caller holds mu.
func (g *Graph) link(v1, v2 Vertex) {
	g.ensureKey(v1)
	g.ensureKey(v2)
	g.adj[v1] = append(g.adj[v1], v2)
	g.adj[v2] = append(g.adj[v2], v1)
}

// ensureKey registers v in order/index if absent. Caller holds mu.
func (g *Graph) ensureKey(v Vertex) {
	if _, ok := g.index[v]; ok {
		return
	}
	g.index[v] = len(g.order)
	g.order = append(g.order, v)
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
	}
}

// dropKey removes v from adj/order/index using swap-remove. Caller holds mu.
func (g *Graph) dropKey(v Vertex) {
	i, ok := g.index[v]
	if !ok {
		return
	}
	last := len(g.order) - 1
	if i != last {
		moved := g.order[last]
		g.order[i] = moved
		g.index[moved] = i
	}
	g.order[last] = Vertex{}
	g.order = g.order[:last]
	delete(g.index, v)
	delete(g.adj, v)
}

// degreeSum sums neighbor-sequence lengths. Caller holds mu.
func (g *Graph) degreeSum() int {
	sum := 0
	for _, nbrs := range g.adj {
		sum += len(nbrs)
	}

	return sum
}

// removeFirst deletes the first occurrence of x from s, preserving order.
func removeFirst(s []Vertex, x Vertex) []Vertex {
	for i, v := range s {
		if v == x {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

// isBlank reports whether label is empty or whitespace-only.
func isBlank(label string) bool {
	return strings.TrimSpace(label) == ""
}
