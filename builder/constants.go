// Package builder defines shared constants used by the link constructors.
package builder

// Constructor names used to prefix errors.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodClique       = "Clique"
	MethodRandomSparse = "RandomSparse"
	MethodBridge       = "Bridge"
	MethodBuildLinks   = "BuildLinks"
)

// Minimum block sizes.
const (
	// MinPathNodes: a path needs two ends.
	MinPathNodes = 2
	// MinCycleNodes: fewer than three nodes is not a ring without loops.
	MinCycleNodes = 3
	// MinStarNodes: a hub and at least one leaf.
	MinStarNodes = 2
	// MinCliqueNodes: one pair.
	MinCliqueNodes = 2
	// MinRandomSparseNodes: an empty block has no trials.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
