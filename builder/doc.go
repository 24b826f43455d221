// Package builder assembles deterministic core.Graph fixtures from composable
// constructors: the known-min-cut topologies that exercise the estimator.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): new graph, resolved config, constructors in order.
//     – Constructor: func(*core.Graph, builderConfig) error.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithIDScheme, WithSeed, WithRand, WithPartitionPrefix.
//   - Vertex label schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – OneBasedIDFn:      decimal strings from one ("1","2",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Topologies and their min cut λ:
//
//	Cycle(n)              λ = 2
//	Path(n)               λ = 1
//	Star(n)               λ = 1
//	Wheel(n)              λ = 3
//	Complete(n)           λ = n-1
//	CompleteBipartite(a,b) λ = min(a,b)
//	Grid(r,c)             λ = 2   (r,c ≥ 2)
//	Barbell(n,k)          λ = k   (k < n-1)
//	RandomMultigraph(n,m) connected, λ ≥ 1
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidCount,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
//   - Every constructor only adds edges, so the result never holds an isolated vertex.
package builder
