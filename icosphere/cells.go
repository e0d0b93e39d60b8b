// SPDX-License-Identifier: MIT
// Package: landlab/icosphere
//
// cells.go — dual-cell areas.

package icosphere

import "github.com/Ashaniekam/landlab/spherical"

// setupCells computes each cell's area as the spherical-triangle area of one
// wedge (the node and its first two sorted corners) times the cell's polygon
// degree (5 or 6, counted as non-sentinel corner slots). Exact for the
// regular cells of the unrefined icosahedron; an approximation once
// densification makes the wedges incongruent (see the package comment).
// Complexity: O(N).
func (m *Mesh) setupCells() {
	m.AreaOfCell = make([]float64, len(m.CoordsOfNode))
	for cell := range m.AreaOfCell {
		corners := &m.CornersAtNode[cell]
		degree := 0
		for degree < MaxNeighbors && corners[degree] != Sentinel {
			degree++
		}
		wedge := spherical.TriangleArea(
			m.CoordsOfNode[cell],
			m.CoordsOfCorner[corners[0]],
			m.CoordsOfCorner[corners[1]],
			m.radius)
		m.AreaOfCell[cell] = float64(degree) * wedge
	}
}
