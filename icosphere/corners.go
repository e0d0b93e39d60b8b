// SPDX-License-Identifier: MIT
// Package: landlab/icosphere
//
// corners.go — patch records, dual corners, and the counterclockwise
// angular sort of each node's corner ring.
//
// Contract:
//   • One corner per patch, at radius·normalize((p1−p0)×(p2−p0)): the
//     patch's outward unit normal projected onto the sphere.
//   • After sortCornersCCW, CornersAtNode[n] walks node n's dual-cell
//     boundary in a single rotational sense (counterclockwise from outside),
//     so the cell is a simple polygon.
//   • The local frame for sorting comes from rotating the sphere so the node
//     sits at the +z pole; no mesh vertex may coincide with the coordinate
//     pole's azimuth singularity, which holds for icosahedral meshes under
//     the canonical vertex layout.

package icosphere

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Ashaniekam/landlab/spherical"
)

// degenerateNormalTol rejects patch normals whose magnitude, relative to the
// squared radius (the scale of a healthy cross product), is indistinguishable
// from zero.
const degenerateNormalTol = 1e-12

// setupPatchesAndCorners records the patch node triples, collects each
// node's incident patches into its corner slots in triangle-list order,
// positions the corners, and sorts every corner ring counterclockwise.
// Complexity: O(P) plus an O(d log d) sort per node, d <= MaxNeighbors.
func (m *Mesh) setupPatchesAndCorners(triangles [][3]int) error {
	numNodes := len(m.CoordsOfNode)
	m.NodesAtPatch = make([][3]int, len(triangles))
	m.CornersAtNode = make([][MaxNeighbors]int, numNodes)
	for node := range m.CornersAtNode {
		m.CornersAtNode[node] = emptySlots()
	}

	nextSlot := make([]int, numNodes)
	for patch, tri := range triangles {
		m.NodesAtPatch[patch] = tri
		for _, node := range tri {
			if nextSlot[node] == MaxNeighbors {
				return fmt.Errorf("node %d at patch %d: %w", node, patch, ErrNodeDegree)
			}
			m.CornersAtNode[node][nextSlot[node]] = patch
			nextSlot[node]++
		}
	}

	if err := m.setCoordsOfCorner(); err != nil {
		return err
	}
	m.sortCornersCCW()
	return nil
}

// setCoordsOfCorner places one corner per patch at the patch's outward unit
// normal, scaled onto the sphere. A vanishing normal means collinear patch
// nodes and aborts the build.
func (m *Mesh) setCoordsOfCorner() error {
	m.CoordsOfCorner = make([]r3.Vec, len(m.NodesAtPatch))
	for patch, tri := range m.NodesAtPatch {
		p0 := m.CoordsOfNode[tri[0]]
		p1 := m.CoordsOfNode[tri[1]]
		p2 := m.CoordsOfNode[tri[2]]
		normal := r3.Cross(r3.Sub(p1, p0), r3.Sub(p2, p0))
		length := r3.Norm(normal)
		if length <= degenerateNormalTol*m.radius*m.radius {
			return fmt.Errorf("patch %d nodes %v: %w", patch, tri, ErrDegeneratePatch)
		}
		m.CoordsOfCorner[patch] = r3.Scale(m.radius/length, normal)
	}
	return nil
}

// sortCornersCCW orders each node's corner slots by ascending angle in the
// node's local tangent frame. The frame comes from rotating every corner by
// the negative of the node's azimuth about z and then the negative of its
// polar angle about y, which carries the node to the +z pole; atan2 in the
// resulting xy plane then measures counterclockwise angle as seen from
// outside the sphere. Angles are remapped into [0, 2π) and the sort is
// stable, so equal-angle inputs (which a valid mesh never produces) would
// keep insertion order.
func (m *Mesh) sortCornersCCW() {
	var angle [MaxNeighbors]float64
	var order [MaxNeighbors]int
	var sorted [MaxNeighbors]int

	for node := range m.CoordsOfNode {
		_, phi, theta := spherical.CartesianToSpherical(m.CoordsOfNode[node])

		slots := &m.CornersAtNode[node]
		degree := 0
		for degree < MaxNeighbors && slots[degree] != Sentinel {
			degree++
		}
		for i := 0; i < degree; i++ {
			rotated := spherical.RotateZY(m.CoordsOfCorner[slots[i]], -phi, -theta)
			a := math.Atan2(rotated.Y, rotated.X)
			if a < 0 {
				a += 2 * math.Pi
			}
			angle[i] = a
			order[i] = i
		}

		idx := order[:degree]
		sort.SliceStable(idx, func(i, j int) bool {
			return angle[idx[i]] < angle[idx[j]]
		})
		for i := 0; i < degree; i++ {
			sorted[i] = slots[idx[i]]
		}
		copy(slots[:degree], sorted[:degree])
	}
}
