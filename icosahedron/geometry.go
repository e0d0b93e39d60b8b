// SPDX-License-Identifier: MIT
// Package: landlab/icosahedron
//
// geometry.go — canonical vertex and face datasets for the base icosahedron.
//
// Design:
//   • Single source of truth for the 12-vertex, 20-face regular icosahedron.
//   • Datasets are package constants in all but name: declared once, never
//     mutated; New copies them into each Icosahedron instance.
//   • Vertices come from the three mutually orthogonal golden rectangles;
//     faces are enumerated ring by ring starting from the five faces around
//     vertex 0, so face 0 is always (0, 11, 5).
//
// Determinism:
//   • Both orderings are part of the public contract: downstream index
//     tables (links, patches, corners) inherit them verbatim.

package icosahedron

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// goldenRatio is (1+√5)/2, the aspect ratio of the three rectangles whose
// corners form the icosahedron's vertices.
var goldenRatio = (1 + math.Sqrt(5)) / 2

// baseVertices lists the 12 golden-rectangle corner points, unnormalized.
// New scales each onto the sphere of the configured radius.
var baseVertices = [12]r3.Vec{
	{X: -1, Y: goldenRatio, Z: 0},
	{X: 1, Y: goldenRatio, Z: 0},
	{X: -1, Y: -goldenRatio, Z: 0},
	{X: 1, Y: -goldenRatio, Z: 0},

	{X: 0, Y: -1, Z: goldenRatio},
	{X: 0, Y: 1, Z: goldenRatio},
	{X: 0, Y: -1, Z: -goldenRatio},
	{X: 0, Y: 1, Z: -goldenRatio},

	{X: goldenRatio, Y: 0, Z: -1},
	{X: goldenRatio, Y: 0, Z: 1},
	{X: -goldenRatio, Y: 0, Z: -1},
	{X: -goldenRatio, Y: 0, Z: 1},
}

// baseFaces lists the 20 triangular faces as vertex-index triples, all wound
// counterclockwise viewed from outside the sphere (outward normals).
var baseFaces = [20][3]int{
	// 5 faces around vertex 0
	{0, 11, 5},
	{0, 5, 1},
	{0, 1, 7},
	{0, 7, 10},
	{0, 10, 11},

	// 5 faces adjacent to the ring above
	{1, 5, 9},
	{5, 11, 4},
	{11, 10, 2},
	{10, 7, 6},
	{7, 1, 8},

	// 5 faces around vertex 3
	{3, 9, 4},
	{3, 4, 2},
	{3, 2, 6},
	{3, 6, 8},
	{3, 8, 9},

	// 5 faces adjacent to the ring above
	{4, 9, 5},
	{2, 4, 11},
	{6, 2, 10},
	{8, 6, 7},
	{9, 8, 1},
}
