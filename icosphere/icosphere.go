// SPDX-License-Identifier: MIT
// Package: landlab/icosphere
//
// icosphere.go — construction entry points and input validation.
//
// Contract:
//   • New(opts...) refines the canonical icosahedron and hands the result to
//     FromTriangulation; only sentinel errors are returned, never panics.
//   • FromTriangulation runs the one-shot pipeline:
//       nodes → links → patches/corners (+ angular sort) → faces → cells.
//     Each stage writes its own tables exactly once and reads only earlier
//     stages' tables. A failed precondition aborts with no partial mesh.
//   • Inputs are validated up front (index range, repeated vertices);
//     geometric and topological defects surface in the stage that first
//     observes them (degenerate normals, open/non-manifold node pairs).

package icosphere

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Ashaniekam/landlab/icosahedron"
)

// New builds the dual mesh of an icosphere: the canonical icosahedron,
// refined WithDensificationLevel times and scaled to WithRadius. Each
// densification level multiplies patch and link counts by four.
// Complexity: O(P) for P final patches, plus the O(d log d) per-node sort.
func New(opts ...Option) (*Mesh, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	ico, err := icosahedron.New(cfg.radius)
	if err != nil {
		return nil, fmt.Errorf("icosphere: %w", err)
	}
	if err := ico.Refine(cfg.level); err != nil {
		return nil, fmt.Errorf("icosphere: %w", err)
	}
	return FromTriangulation(cfg.radius, ico.Vertices, ico.Faces)
}

// FromTriangulation builds the dual mesh from an externally produced
// triangulation: vertices on the sphere of the given radius and triangles as
// vertex-index triples wound counterclockwise viewed from outside. The
// triangulation must be closed (every edge shared by exactly two triangles)
// and every vertex must have at most MaxNeighbors neighbors.
//
// The vertex slice is copied; the caller keeps ownership of its inputs.
func FromTriangulation(radius float64, vertices []r3.Vec, triangles [][3]int) (*Mesh, error) {
	if radius <= 0 {
		return nil, ErrRadius
	}
	if err := validateTriangulation(len(vertices), triangles); err != nil {
		return nil, err
	}

	m := &Mesh{radius: radius}
	m.setupNodes(vertices)
	if err := m.setupLinks(triangles); err != nil {
		return nil, err
	}
	if err := m.setupPatchesAndCorners(triangles); err != nil {
		return nil, err
	}
	if err := m.setupFaces(); err != nil {
		return nil, err
	}
	m.setupCells()
	return m, nil
}

// validateTriangulation fails fast on malformed input: a vertex index
// outside [0, numVertices), a triangle repeating a vertex, or a vertex no
// triangle references (it would have an empty corner ring and no cell).
func validateTriangulation(numVertices int, triangles [][3]int) error {
	referenced := make([]bool, numVertices)
	for t, tri := range triangles {
		for _, v := range tri {
			if v < 0 || v >= numVertices {
				return fmt.Errorf("triangle %d references node %d of %d: %w",
					t, v, numVertices, ErrNodeIndex)
			}
			referenced[v] = true
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			return fmt.Errorf("triangle %d is %v: %w", t, tri, ErrDegenerateTriangle)
		}
	}
	for v, ok := range referenced {
		if !ok {
			return fmt.Errorf("node %d: %w", v, ErrIsolatedNode)
		}
	}
	return nil
}

// setupNodes copies the vertex list into CoordsOfNode.
func (m *Mesh) setupNodes(vertices []r3.Vec) {
	m.CoordsOfNode = make([]r3.Vec, len(vertices))
	copy(m.CoordsOfNode, vertices)
}

// pairKey packs an unordered node-index pair into one map key, low index in
// the high half so keys sort like (min, max) tuples.
func pairKey(n1, n2 int) uint64 {
	if n2 < n1 {
		n1, n2 = n2, n1
	}
	return uint64(n1)<<32 | uint64(n2)
}

// emptySlots returns a slot row with every entry set to Sentinel.
func emptySlots() [MaxNeighbors]int {
	return [MaxNeighbors]int{Sentinel, Sentinel, Sentinel, Sentinel, Sentinel, Sentinel}
}
