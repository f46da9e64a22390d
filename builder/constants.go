// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest size of a cycle without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one edge.
const MinPathNodes = 2

// MinStarNodes is one hub plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-cycle plus the hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed rows or cols of a Grid; 1×1 is valid.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Probability bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound of RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound of RandomSparse's p.
const MaxProbability = 1.0
