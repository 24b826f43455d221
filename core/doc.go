// Package core provides the undirected multigraph used by the min-cut
// estimator: vertices identified by immutable labels, ordered neighbor
// sequences with parallel edges, and the contraction primitive MergeVertices.
//
// The Graph G = (V,E) is stored as
//
//	adj[v] = [u1, u2, u2, ...]   // one entry per incident edge
//
// so that an undirected edge v—u appears once in adj[v] and once in adj[u].
// Parallel edges repeat the neighbor; their multiplicity is what makes the
// random edge choice of Karger's algorithm uniform over edges.
//
// Invariants:
//
//   - Symmetry: u occurs k times in adj[v] ⇔ v occurs k times in adj[u].
//   - No isolated vertices: a vertex disappears the moment its degree is 0.
//   - NumEdges() == DegreeSum()/2, recomputed on every call.
//
// Core Methods (vertex form; every one has a label form too):
//
//	// Edges
//	AddEdge(v1, v2 Vertex) error               // O(1)
//	AddEdges(entries []string) (int, error)    // "A -- B" bulk ingestion
//	RemoveEdge(v1, v2 Vertex) error            // one parallel copy per call
//
//	// Queries
//	Contains(v Vertex) bool
//	Connected(v1, v2 Vertex) (bool, error)
//	ConnectedVertices(v Vertex) ([]Vertex, error)
//	NumVertices() int, Vertices() []Vertex, NumEdges() int, DegreeSum() int
//
//	// Contraction
//	MergeVertices(v1, v2 Vertex) (Vertex, error)   // "(v1/v2)"
//	PickVertex(rng), PickNeighbor(v, rng)          // uniform picks
//
//	// Copies and views
//	Clone() *Graph, Copy(src) (*Graph, error), String(), AdjacencyList(), Stats(), ToGonum()
//
// Errors:
//
//	ErrInvalidArgument  – family of every validation failure below
//	ErrNilVertex        – zero Vertex
//	ErrBlankLabel       – blank label in label form
//	ErrVertexNotFound   – vertex absent
//	ErrNotConnected     – merge of non-adjacent vertices
//	ErrNilGraph         – nil source graph
//	ErrNilEdgeList      – nil AddEdges input
//	ErrLabelTaken       – merged label already names another vertex
//	ErrGraphTooSmall    – merge with ≤ 2 vertices (contraction is terminal)
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// graph. Contraction trials never share a Graph: each works on its own Clone.
package core
