// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodBarbell is the canonical name for the Barbell constructor.
	MethodBarbell = "Barbell"
	// MethodRandomMultigraph is the canonical name for the RandomMultigraph constructor.
	MethodRandomMultigraph = "RandomMultigraph"
)

// CenterVertexID is the label of the hub vertex in Star and Wheel.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// Fewer than 3 nodes cannot form a ring without loops or parallel edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges and would leave an empty graph.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel topology:
// a rim of at least 3 plus one hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest K_n with at least one edge.
const MinCompleteNodes = 2

// MinGridDim is the smallest allowed dimension (rows or cols) for a grid.
// 1×1 is rejected: it has no edge, so it cannot exist in a core.Graph.
const MinGridDim = 1

// MinBarbellClique is the smallest clique size of a barbell bell.
const MinBarbellClique = 2
