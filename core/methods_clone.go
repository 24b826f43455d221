// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves the key order, so a clone and its source give identical
//     random picks for identical seeds.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.
// AI-HINT (file):
//   - Every neighbor sequence is copied; mutating a clone never touches the source.

package core

import (
	"fmt"
	"slices"
)

// Clone returns a deep copy of the Graph: new map, new key order, new
// neighbor sequences.
// Complexity: O(V + E).
// Concurrency: read lock on the source.
func (g *Graph) Clone() *Graph {
	// AI-HINT: Contraction trials call Clone once per trial; the source stays read-only.
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adj:   make(map[Vertex][]Vertex, len(g.adj)),
		order: slices.Clone(g.order),
		index: make(map[Vertex]int, len(g.index)),
	}
	for v, nbrs := range g.adj {
		clone.adj[v] = slices.Clone(nbrs)
	}
	for v, i := range g.index {
		clone.index[v] = i
	}

	return clone
}

// Copy is the copy constructor: it returns a deep copy of src.
// Errors: ErrNilGraph if src is nil.
func Copy(src *Graph) (*Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}

	return src.Clone(), nil
}

// Clear resets the graph to an empty state.
// Complexity: O(1) for map reallocation.
// Concurrency: acquires mu write lock.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.adj = make(map[Vertex][]Vertex)
	g.order = nil
	g.index = make(map[Vertex]int)
	g.mu.Unlock()
}

// Relabel returns a deep copy of g in which the vertex at key-order slot i is
// renamed to rename(i, v). Key order and neighbor sequences are kept, so the
// copy gives the same random picks as g for the same rng state.
//
// Errors: ErrBlankLabel if rename yields a blank label, ErrLabelTaken if two
// vertices receive the same label.
// Complexity: O(V + E).
// Concurrency: read lock on the source; rename runs under it and must not
// call back into g.
func (g *Graph) Relabel(rename func(i int, v Vertex) string) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	to := make(map[Vertex]Vertex, len(g.order))
	out := &Graph{
		adj:   make(map[Vertex][]Vertex, len(g.adj)),
		order: make([]Vertex, len(g.order)),
		index: make(map[Vertex]int, len(g.index)),
	}
	for i, v := range g.order {
		label := rename(i, v)
		if isBlank(label) {
			return nil, fmt.Errorf("Relabel(%s): %w", v, ErrBlankLabel)
		}
		nv := NewVertex(label)
		if _, dup := out.index[nv]; dup {
			return nil, fmt.Errorf("Relabel(%s): %s: %w", v, label, ErrLabelTaken)
		}
		to[v] = nv
		out.order[i] = nv
		out.index[nv] = i
	}
	for v, nbrs := range g.adj {
		mapped := make([]Vertex, len(nbrs))
		for j, u := range nbrs {
			mapped[j] = to[u]
		}
		out.adj[to[v]] = mapped
	}

	return out, nil
}
