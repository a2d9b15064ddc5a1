// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// constants.go - method tags, kind names and size minima.

package builder

// Method tags used in error context.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodGrid              = "Grid"
	MethodPlatonicSolid     = "PlatonicSolid"
)

// Kind names accepted by ByName.
const (
	KindPath     = "path"
	KindCycle    = "cycle"
	KindStar     = "star"
	KindWheel    = "wheel"
	KindComplete = "complete"
	KindGrid     = "grid"
	KindRandom   = "random"
	KindRegular  = "regular"
)

// Size minima.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4 // outer ring must be a cycle
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinPartitionSize = 1
	MinRandomNodes   = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
