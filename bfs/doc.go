// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order,
// plus the connectivity helpers the min-cut estimator relies on.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor entries via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components / IsConnected: connected-component partition of a multigraph.
//
// Why
//
//   - A disconnected graph has a min cut of 0; the estimator checks this
//     before spending any contraction trial.
//   - Unweighted shortest paths and level layering in O(V + E).
//
// Determinism
//
//	Neighbors are enqueued in stored sequence order (core.ConnectedVertices),
//	so for a fixed mutation history the visit sequence is reproducible.
//	Components are sorted by label and do not depend on that history at all.
//
// Multigraphs
//
//	Parallel edges repeat a neighbor in the sequence. The neighbor is enqueued
//	on its first unseen occurrence; later copies are ignored.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, core.NewVertex("start"),
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v core.Vertex, depth int) error { return nil }),
//	)
//
//	comps, err := bfs.Components(g)  // [][]core.Vertex
//	ok, err := bfs.IsConnected(g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if the neighbor lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
