// Package maxflow computes exact minimum cuts of the multigraphs in package
// core through maximum flow. It is the deterministic reference the randomized
// estimator is checked against in tests and is not part of the public API.
//
// Every parallel edge u—v is a unit capacity in both directions; self-loops
// carry nothing. Two entry points are offered:
//
//   - EdmondsKarp
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Result: the s-t max flow, equal to the smallest cut separating s and t,
//     and the source side of such a cut.
//
//   - GlobalMinCut
//
//   - Method: fix s, run EdmondsKarp to every other vertex, keep the minimum.
//
//   - Time:   O(V² · E²).
//
//   - Result: the exact global minimum cut with its partition.
//
// Augmenting paths scan neighbors in label order, so results are
// deterministic for a given graph.
//
// # Errors
//
//	ErrSourceNotFound - if the source vertex is missing in the input graph.
//	ErrSinkNotFound   - if the sink vertex is missing.
//	ErrSameEndpoints  - if source == sink.
//	ErrTooFewVertices - GlobalMinCut on fewer than two vertices.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
package maxflow
