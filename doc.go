// Package mincut estimates minimum cuts of undirected multigraphs with
// Karger's randomized contraction algorithm.
//
// What is a minimum cut?
//
//	Split the vertices into two non-empty groups; the cut is the number of
//	edges with one end in each group. The minimum cut is the smallest such
//	number over all splits. Parallel edges count once per copy.
//
// Under the hood, everything is organized in subpackages:
//
//	core/        the multigraph: labeled vertices, parallel edges, MergeVertices
//	karger/      contraction trials, sequential and one-worker-per-trial runners,
//	             success bounds, Prometheus metrics
//	bfs/         breadth-first traversal and connected components
//	builder/     deterministic fixtures: cycles, cliques, grids, barbells, random multigraphs
//	loader/      edge-list text and YAML graph documents
//	cmd/mincut/  the command-line front end (run, demo, bounds)
//
// Quick start:
//
//	g := core.NewGraph()
//	g.AddEdges([]string{"1 -- 2", "2 -- 3", "3 -- 4", "4 -- 1"})
//	cut, _ := karger.MinCut(g, 50)                           // 50 sequential trials
//	cut, _ = karger.MinCutWithConcurrency(g, 50, true)       // 50 workers, one trial each
//
// Each trial returns the size of a real cut, so the estimate never falls
// below the true minimum; more trials make hitting it more likely
// (see karger.RecommendedTrials).
package mincut
