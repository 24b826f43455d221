// File: methods_vertices.go
// Role: Vertex queries: Contains/Connected/ConnectedVertices/Degree/NumVertices/Vertices,
//       each in vertex form and label form.
// Determinism:
//   - Vertices() returns vertices sorted by label asc.
//   - ConnectedVertices() returns the neighbor sequence in stored order (duplicates kept).
// Concurrency:
//   - All queries under mu read lock; returned slices are fresh copies.
// AI-HINT (file):
//   - Contains never errors; every other query rejects zero and absent vertices.

package core

import (
	"fmt"
	"slices"
	"strings"
)

// Contains reports whether v is a present vertex. The zero Vertex never matches.
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Graph) Contains(v Vertex) bool {
	if v.IsZero() {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[v]

	return ok
}

// ContainsLabel is the label form of Contains.
func (g *Graph) ContainsLabel(label string) bool {
	return g.Contains(NewVertex(label))
}

// Connected reports whether v2 occurs in the neighbor sequence of v1.
//
// Errors:
//   - ErrNilVertex if either vertex is zero.
//   - ErrVertexNotFound if either vertex is absent.
//
// Complexity: O(deg(v1)).
// Concurrency: read lock on mu.
func (g *Graph) Connected(v1, v2 Vertex) (bool, error) {
	if v1.IsZero() || v2.IsZero() {
		return false, ErrNilVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.requirePresent(v1, v2); err != nil {
		return false, fmt.Errorf("Connected(%s, %s): %w", v1, v2, err)
	}

	return slices.Contains(g.adj[v1], v2), nil
}

// ConnectedLabels is the label form of Connected.
func (g *Graph) ConnectedLabels(a, b string) (bool, error) {
	if isBlank(a) || isBlank(b) {
		return false, fmt.Errorf("ConnectedLabels(%q, %q): %w", a, b, ErrBlankLabel)
	}

	return g.Connected(NewVertex(a), NewVertex(b))
}

// ConnectedVertices returns a copy of v's neighbor sequence, one entry per
// incident edge (parallel edges repeat the neighbor).
//
// Errors: ErrNilVertex, ErrVertexNotFound.
// Complexity: O(deg(v)).
// Concurrency: read lock on mu.
func (g *Graph) ConnectedVertices(v Vertex) ([]Vertex, error) {
	if v.IsZero() {
		return nil, ErrNilVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("ConnectedVertices(%s): %w", v, ErrVertexNotFound)
	}

	return slices.Clone(nbrs), nil
}

// ConnectedLabelsOf is the label form of ConnectedVertices; it returns labels.
func (g *Graph) ConnectedLabelsOf(label string) ([]string, error) {
	if isBlank(label) {
		return nil, fmt.Errorf("ConnectedLabelsOf(%q): %w", label, ErrBlankLabel)
	}
	nbrs, err := g.ConnectedVertices(NewVertex(label))
	if err != nil {
		return nil, err
	}
	out := make([]string, len(nbrs))
	for i, v := range nbrs {
		out[i] = v.label
	}

	return out, nil
}

// Degree returns the length of v's neighbor sequence.
// Errors: ErrNilVertex, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(v Vertex) (int, error) {
	if v.IsZero() {
		return 0, ErrNilVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[v]
	if !ok {
		return 0, fmt.Errorf("Degree(%s): %w", v, ErrVertexNotFound)
	}

	return len(nbrs), nil
}

// NumVertices returns the number of present vertices.
// Complexity: O(1).
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Vertices returns a copy of the vertex set, sorted by label asc.
// Complexity: O(V log V).
// Concurrency: read lock on mu.
func (g *Graph) Vertices() []Vertex {
	// AI-HINT: Deterministic ordering by label; rely on it for golden tests.
	g.mu.RLock()
	out := slices.Clone(g.order)
	g.mu.RUnlock()
	sortVertices(out)

	return out
}

// requirePresent returns ErrVertexNotFound for the first absent vertex. Caller holds mu.
func (g *Graph) requirePresent(vs ...Vertex) error {
	for _, v := range vs {
		if _, ok := g.adj[v]; !ok {
			return fmt.Errorf("%s: %w", v, ErrVertexNotFound)
		}
	}

	return nil
}

// sortVertices sorts vs by label asc, in place.
func sortVertices(vs []Vertex) {
	slices.SortFunc(vs, func(a, b Vertex) int { return strings.Compare(a.label, b.label) })
}
