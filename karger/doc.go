// Package karger estimates the minimum cut of an undirected multigraph with
// Karger's randomized contraction algorithm.
//
// One trial contracts a private copy of the graph: while more than two
// vertices remain it picks a vertex uniformly, picks one of its incident
// edges uniformly (parallel edges count separately) and merges the two
// endpoints. The edges left between the final two super-vertices form a cut.
// A single trial finds a minimum cut with probability at least 1/C(V,2), so
// the estimator repeats trials and keeps the smallest result.
//
// Two schedules are available:
//
//	MinCut(g, n)                        // n sequential trials
//	MinCutWithConcurrency(g, n, true)   // n workers, one trial each
//	Run(g, n, mode)                     // either, with a full *Result
//
// The input graph is only read. Workers share nothing but the read-only
// input and write disjoint slots of a results slice; errgroup.Wait is the
// only synchronization point.
//
// Disconnected graphs are detected up front with bfs.IsConnected and yield 0
// without running trials.
//
// Bounds helpers (SuccessProbability, FailureProbability, RecommendedTrials)
// turn a target confidence into a trial count. Observability is opt-in:
// WithLogger takes a zerolog.Logger and WithMetrics a *Metrics built by
// NewMetrics over any prometheus.Registerer.
package karger
