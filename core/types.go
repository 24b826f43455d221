// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Graph, GraphStats and sentinel errors; NewGraph constructor.
// Policy:
//   - Vertex is an immutable comparable value (label fixed at construction).
//   - Graph storage is an adjacency map plus an insertion-ordered key slice.
//   - Every exported method acquires mu (RLock for queries, Lock for mutations).
// AI-HINT (file):
//   - The zero Vertex is the "absent/nil" vertex; every operation rejects it with ErrNilVertex.
//   - ErrGraphTooSmall is NOT part of the ErrInvalidArgument family (control signal for contraction).

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
//
// All argument-validation errors wrap ErrInvalidArgument, so callers may
// branch either on the precise sentinel or on the whole family:
//
//	errors.Is(err, core.ErrVertexNotFound)  // precise
//	errors.Is(err, core.ErrInvalidArgument) // family
var (
	// ErrInvalidArgument is the umbrella for every argument-validation failure.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrNilVertex indicates a zero (unlabeled) Vertex was passed.
	ErrNilVertex = fmt.Errorf("%w: vertex is nil", ErrInvalidArgument)

	// ErrBlankLabel indicates an empty or whitespace-only label was passed in label form.
	ErrBlankLabel = fmt.Errorf("%w: vertex label is blank", ErrInvalidArgument)

	// ErrVertexNotFound indicates an operation referenced a vertex absent from the graph.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrInvalidArgument)

	// ErrNotConnected indicates a merge was requested for two non-adjacent vertices.
	ErrNotConnected = fmt.Errorf("%w: vertices are not connected", ErrInvalidArgument)

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidArgument)

	// ErrNilEdgeList indicates AddEdges received a nil slice.
	ErrNilEdgeList = fmt.Errorf("%w: edge list is nil", ErrInvalidArgument)

	// ErrLabelTaken indicates the label of a merged vertex already names another vertex.
	ErrLabelTaken = fmt.Errorf("%w: merged label already in use", ErrInvalidArgument)

	// ErrGraphTooSmall indicates a merge was attempted on a graph with at most two vertices.
	ErrGraphTooSmall = errors.New("core: graph too small to contract")
)

// minMergeVertices is the smallest vertex count at which MergeVertices is defined.
// At two vertices contraction is terminal: the remaining edges are the cut.
const minMergeVertices = 3

// Vertex is an immutable graph node identified by its label.
//
// Two vertices are equal iff their labels are equal, which makes Vertex
// directly usable as a map key. There is deliberately no setter: a vertex
// used as a key keeps its identity for its whole lifetime.
type Vertex struct {
	label string
}

// NewVertex returns the Vertex identified by label.
// Validation (blank labels) is done by the graph operations, not here.
func NewVertex(label string) Vertex {
	return Vertex{label: label}
}

// Label returns the vertex label.
func (v Vertex) Label() string { return v.label }

// String implements fmt.Stringer; it returns the label.
func (v Vertex) String() string { return v.label }

// IsZero reports whether v is the zero Vertex (the "nil" vertex).
func (v Vertex) IsZero() bool { return v.label == "" }

// Graph is an undirected multigraph keyed by Vertex.
//
// adj[v] is the ordered neighbor sequence of v; a neighbor appears once per
// parallel edge. order keeps the vertex keys in a reproducible order (append
// on insert, swap-remove on delete) and index maps a vertex to its slot in
// order, so uniform vertex selection is O(1).
//
// Invariants (maintained by every mutating method):
//   - symmetry: u occurs k times in adj[v] ⇔ v occurs k times in adj[u];
//   - no key has an empty neighbor sequence;
//   - len(order) == len(index) == len(adj).
type Graph struct {
	mu sync.RWMutex // guards adj, order, index

	adj   map[Vertex][]Vertex
	order []Vertex
	index map[Vertex]int
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	// VertexCount is the number of present vertices.
	VertexCount int
	// EdgeCount is the number of undirected edges (DegreeSum / 2).
	EdgeCount int
	// DegreeSum is the total length of all neighbor sequences.
	DegreeSum int
	// MaxMultiplicity is the largest number of parallel edges between one pair.
	MaxMultiplicity int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adj:   make(map[Vertex][]Vertex),
		index: make(map[Vertex]int),
	}
}
