package icosphere

import "github.com/Ashaniekam/landlab/spherical"

// Radius returns the sphere radius the mesh was built for.
func (m *Mesh) Radius() float64 { return m.radius }

// NumNodes returns the number of primal nodes (== NumCells).
func (m *Mesh) NumNodes() int { return len(m.CoordsOfNode) }

// NumLinks returns the number of primal links (== NumFaces).
func (m *Mesh) NumLinks() int { return len(m.NodesAtLink) }

// NumPatches returns the number of primal patches (== NumCorners).
func (m *Mesh) NumPatches() int { return len(m.NodesAtPatch) }

// NumCorners returns the number of dual corners, one per patch.
func (m *Mesh) NumCorners() int { return len(m.CoordsOfCorner) }

// NumFaces returns the number of dual faces, one per link.
func (m *Mesh) NumFaces() int { return len(m.CornersAtFace) }

// NumCells returns the number of dual cells, one per node.
func (m *Mesh) NumCells() int { return len(m.AreaOfCell) }

// CellAtNode maps node i to cell i. The dual complex shares the primal
// index space, so the map is the identity; it is materialized lazily for
// consumers that want the table spelled out.
func (m *Mesh) CellAtNode() []int {
	if m.cellAtNode == nil {
		m.cellAtNode = identity(m.NumNodes())
	}
	return m.cellAtNode
}

// NodeAtCell maps cell i to node i (the same identity table as CellAtNode).
func (m *Mesh) NodeAtCell() []int { return m.CellAtNode() }

// FaceAtLink maps link j to face j (identity, materialized lazily).
func (m *Mesh) FaceAtLink() []int {
	if m.faceAtLink == nil {
		m.faceAtLink = identity(m.NumLinks())
	}
	return m.faceAtLink
}

// LinkAtFace maps face j to link j (the same identity table as FaceAtLink).
func (m *Mesh) LinkAtFace() []int { return m.FaceAtLink() }

// PatchesAtNode lists the patches incident to each node. Corner k is patch
// k, so this is the CornersAtNode table under its primal name.
func (m *Mesh) PatchesAtNode() [][MaxNeighbors]int { return m.CornersAtNode }

// CornersAtCell lists each cell's boundary corners counterclockwise; cell i
// is node i, so this is the CornersAtNode table.
func (m *Mesh) CornersAtCell() [][MaxNeighbors]int { return m.CornersAtNode }

// FacesAtCell lists the faces bounding each cell. Face j is link j and cell
// i is node i, so this is the LinksAtNode table.
func (m *Mesh) FacesAtCell() [][MaxNeighbors]int { return m.LinksAtNode }

// ROfNode returns each node's distance from the sphere center (the radius,
// up to floating-point projection error). Computed on first access.
func (m *Mesh) ROfNode() []float64 {
	m.setupNodeSphericalCoords()
	return m.rOfNode
}

// PhiOfNode returns each node's azimuth in (-π, π], measured
// counterclockwise from +x. Computed on first access.
func (m *Mesh) PhiOfNode() []float64 {
	m.setupNodeSphericalCoords()
	return m.phiOfNode
}

// ThetaOfNode returns each node's polar angle in [0, π], measured from +z.
// Computed on first access.
func (m *Mesh) ThetaOfNode() []float64 {
	m.setupNodeSphericalCoords()
	return m.thetaOfNode
}

// AreaOfPatch returns each patch's spherical-triangle surface area.
// Computed on first access; unlike AreaOfCell these are exact at every
// densification level and sum to the full sphere.
func (m *Mesh) AreaOfPatch() []float64 {
	if m.areaOfPatch == nil {
		m.areaOfPatch = make([]float64, m.NumPatches())
		for patch, tri := range m.NodesAtPatch {
			m.areaOfPatch[patch] = spherical.TriangleArea(
				m.CoordsOfNode[tri[0]],
				m.CoordsOfNode[tri[1]],
				m.CoordsOfNode[tri[2]],
				m.radius)
		}
	}
	return m.areaOfPatch
}

func (m *Mesh) setupNodeSphericalCoords() {
	if m.rOfNode != nil {
		return
	}
	n := m.NumNodes()
	m.rOfNode = make([]float64, n)
	m.phiOfNode = make([]float64, n)
	m.thetaOfNode = make([]float64, n)
	for node, coords := range m.CoordsOfNode {
		m.rOfNode[node], m.phiOfNode[node], m.thetaOfNode[node] =
			spherical.CartesianToSpherical(coords)
	}
}

func identity(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}
