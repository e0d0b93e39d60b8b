package icosphere_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Ashaniekam/landlab/icosphere"
)

//----------------------------------------------------------------------------//
// Construction and the level-0 concrete scenario
//----------------------------------------------------------------------------//

// TestNew_Level0Counts checks the bare icosahedron's table sizes and the
// dual-complex bijections at densification level 0.
func TestNew_Level0Counts(t *testing.T) {
	m, err := icosphere.New()
	require.NoError(t, err)

	require.Equal(t, 12, m.NumNodes())
	require.Equal(t, 30, m.NumLinks())
	require.Equal(t, 20, m.NumPatches())
	require.Equal(t, 20, m.NumCorners())
	require.Equal(t, 20, m.NumFaces())
	require.Equal(t, 12, m.NumCells())
}

// TestNew_Level0Tables pins the canonical level-0 tables entry by entry:
// first node position, first link, first patch, the incidence slots of node
// 0, the sorted corner rings of nodes 0 and 1, the first face, and the
// first cell area (one twelfth of the unit sphere).
func TestNew_Level0Tables(t *testing.T) {
	m, err := icosphere.New()
	require.NoError(t, err)

	n0 := m.CoordsOfNode[0]
	require.InDelta(t, -0.526, n0.X, 5e-4)
	require.InDelta(t, 0.851, n0.Y, 5e-4)
	require.InDelta(t, 0.0, n0.Z, 1e-12)

	require.Equal(t, [2]int{0, 11}, m.NodesAtLink[0])
	require.InDelta(t, 1.1071, m.LengthOfLink[0], 1e-4)

	require.Equal(t, [icosphere.MaxNeighbors]int{0, 2, 4, 6, 8, -1}, m.LinksAtNode[0])
	require.Equal(t, [icosphere.MaxNeighbors]int{-1, 1, 1, 1, 1, 0}, m.LinkDirsAtNode[0])

	require.Equal(t, [3]int{0, 11, 5}, m.NodesAtPatch[0])

	c1 := m.CoordsOfCorner[1]
	require.InDelta(t, 0.0, c1.X, 5e-4)
	require.InDelta(t, 0.934, c1.Y, 5e-4)
	require.InDelta(t, 0.357, c1.Z, 5e-4)

	require.Equal(t, [icosphere.MaxNeighbors]int{3, 4, 0, 1, 2, -1}, m.CornersAtNode[0])
	require.Equal(t, [icosphere.MaxNeighbors]int{2, 1, 5, 19, 9, -1}, m.CornersAtNode[1])

	require.Equal(t, [2]int{0, 4}, m.CornersAtFace[0])
	require.InDelta(t, 0.7297, m.LengthOfFace[0], 1e-4)

	require.InDelta(t, 1.047198, m.AreaOfCell[0], 1e-6)
}

// TestNew_Level1Growth: one densification level multiplies link and patch
// counts by four while preserving every bijection and degree invariant.
func TestNew_Level1Growth(t *testing.T) {
	m, err := icosphere.New(icosphere.WithDensificationLevel(1))
	require.NoError(t, err)

	require.Equal(t, 42, m.NumNodes())
	require.Equal(t, 120, m.NumLinks())
	require.Equal(t, 80, m.NumPatches())
	require.Equal(t, m.NumLinks(), m.NumFaces())
	require.Equal(t, m.NumNodes(), m.NumCells())
	require.Equal(t, m.NumPatches(), m.NumCorners())
}

// TestNew_OptionViolations: invalid options surface as sentinel errors.
func TestNew_OptionViolations(t *testing.T) {
	cases := []struct {
		name string
		opt  icosphere.Option
		err  error
	}{
		{"ZeroRadius", icosphere.WithRadius(0), icosphere.ErrRadius},
		{"NegativeRadius", icosphere.WithRadius(-2), icosphere.ErrRadius},
		{"NegativeLevel", icosphere.WithDensificationLevel(-1), icosphere.ErrDensificationLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := icosphere.New(tc.opt)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_RadiusScaling: lengths scale linearly with the radius, areas
// quadratically.
func TestNew_RadiusScaling(t *testing.T) {
	unit, err := icosphere.New()
	require.NoError(t, err)
	const radius = 6371.0
	earth, err := icosphere.New(icosphere.WithRadius(radius))
	require.NoError(t, err)

	for link := range unit.LengthOfLink {
		require.InEpsilon(t, radius*unit.LengthOfLink[link], earth.LengthOfLink[link], 1e-9)
		require.InEpsilon(t, radius*unit.LengthOfFace[link], earth.LengthOfFace[link], 1e-9)
	}
	for cell := range unit.AreaOfCell {
		require.InEpsilon(t, radius*radius*unit.AreaOfCell[cell], earth.AreaOfCell[cell], 1e-9)
	}
}

//----------------------------------------------------------------------------//
// FromTriangulation input validation and failure modes
//----------------------------------------------------------------------------//

func TestFromTriangulation_Validation(t *testing.T) {
	onSphere := []r3.Vec{
		r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1}),
		r3.Unit(r3.Vec{X: -1, Y: 1, Z: 1}),
		r3.Unit(r3.Vec{X: 1, Y: -1, Z: 1}),
	}
	collinear := []r3.Vec{{X: 1}, {X: 2}, {X: 3}}

	cases := []struct {
		name      string
		radius    float64
		vertices  []r3.Vec
		triangles [][3]int
		err       error
	}{
		{"NonPositiveRadius", 0, onSphere, [][3]int{{0, 1, 2}}, icosphere.ErrRadius},
		{"IndexOutOfRange", 1, onSphere, [][3]int{{0, 1, 3}}, icosphere.ErrNodeIndex},
		{"NegativeIndex", 1, onSphere, [][3]int{{0, -1, 2}}, icosphere.ErrNodeIndex},
		{"RepeatedNode", 1, onSphere, [][3]int{{0, 1, 1}}, icosphere.ErrDegenerateTriangle},
		{"CollinearNodes", 1, collinear, [][3]int{{0, 1, 2}}, icosphere.ErrDegeneratePatch},
		{
			"UnreferencedNode", 1,
			append(append([]r3.Vec(nil), onSphere...), r3.Unit(r3.Vec{X: -1, Y: -1, Z: -1})),
			[][3]int{{0, 1, 2}},
			icosphere.ErrIsolatedNode,
		},
		{"OpenMesh", 1, onSphere, [][3]int{{0, 1, 2}}, icosphere.ErrOpenMesh},
		{
			// Same unordered edge in three patches.
			"NonManifold", 1,
			[]r3.Vec{
				r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1}),
				r3.Unit(r3.Vec{X: -1, Y: 1, Z: 1}),
				r3.Unit(r3.Vec{X: 1, Y: -1, Z: 1}),
				r3.Unit(r3.Vec{X: 1, Y: 1, Z: -1}),
				r3.Unit(r3.Vec{X: -1, Y: -1, Z: 1}),
			},
			[][3]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}},
			icosphere.ErrNonManifold,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := icosphere.FromTriangulation(tc.radius, tc.vertices, tc.triangles)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, m, "no partial mesh on failure")
		})
	}
}

// TestFromTriangulation_ExtraVertex: a vertex appended to an otherwise valid
// closed triangulation belongs to no patch, so it has no corner ring to sort
// and no cell; the builder must reject it up front rather than build partial
// tables around it.
func TestFromTriangulation_ExtraVertex(t *testing.T) {
	m, err := icosphere.New()
	require.NoError(t, err)

	vertices := append(append([]r3.Vec(nil), m.CoordsOfNode...), r3.Vec{Z: 1})
	_, err = icosphere.FromTriangulation(1, vertices, m.NodesAtPatch)
	require.ErrorIs(t, err, icosphere.ErrIsolatedNode)
}

// TestFromTriangulation_DegreeOverflow: a fan of eight triangles around one
// hub exceeds the fixed slot capacity and must be rejected, not written past.
func TestFromTriangulation_DegreeOverflow(t *testing.T) {
	vertices := make([]r3.Vec, 9)
	vertices[0] = r3.Vec{Z: 1}
	for i := 1; i < 9; i++ {
		vertices[i] = r3.Unit(r3.Vec{X: float64(i), Y: float64(9 - i), Z: 0.5})
	}
	triangles := make([][3]int, 0, 8)
	for i := 1; i <= 8; i++ {
		j := i%8 + 1
		triangles = append(triangles, [3]int{0, i, j})
	}
	_, err := icosphere.FromTriangulation(1, vertices, triangles)
	require.ErrorIs(t, err, icosphere.ErrNodeDegree)
}

// TestFromTriangulation_CopiesVertices: mutating the caller's slice after
// construction must not reach into the mesh.
func TestFromTriangulation_CopiesVertices(t *testing.T) {
	m, err := icosphere.New()
	require.NoError(t, err)

	vertices := make([]r3.Vec, len(m.CoordsOfNode))
	copy(vertices, m.CoordsOfNode)
	triangles := make([][3]int, len(m.NodesAtPatch))
	copy(triangles, m.NodesAtPatch)

	rebuilt, err := icosphere.FromTriangulation(1, vertices, triangles)
	require.NoError(t, err)
	vertices[0] = r3.Vec{X: 99}
	require.Equal(t, m.CoordsOfNode[0], rebuilt.CoordsOfNode[0])
}

//----------------------------------------------------------------------------//
// Determinism and identity maps
//----------------------------------------------------------------------------//

// TestDeterminism: two builds from identical inputs yield identical index
// tables and coordinate arrays.
func TestDeterminism(t *testing.T) {
	for _, level := range []int{0, 1, 2} {
		a, err := icosphere.New(icosphere.WithDensificationLevel(level))
		require.NoError(t, err)
		b, err := icosphere.New(icosphere.WithDensificationLevel(level))
		require.NoError(t, err)

		require.Equal(t, a.CoordsOfNode, b.CoordsOfNode, "level %d", level)
		require.Equal(t, a.NodesAtLink, b.NodesAtLink, "level %d", level)
		require.Equal(t, a.LinksAtNode, b.LinksAtNode, "level %d", level)
		require.Equal(t, a.LinkDirsAtNode, b.LinkDirsAtNode, "level %d", level)
		require.Equal(t, a.NodesAtPatch, b.NodesAtPatch, "level %d", level)
		require.Equal(t, a.CoordsOfCorner, b.CoordsOfCorner, "level %d", level)
		require.Equal(t, a.CornersAtNode, b.CornersAtNode, "level %d", level)
		require.Equal(t, a.CornersAtFace, b.CornersAtFace, "level %d", level)
		require.Equal(t, a.LengthOfLink, b.LengthOfLink, "level %d", level)
		require.Equal(t, a.LengthOfFace, b.LengthOfFace, "level %d", level)
		require.Equal(t, a.AreaOfCell, b.AreaOfCell, "level %d", level)
	}
}

// TestIdentityMapsAndAliases: the dual complex shares the primal index
// space, and the alias accessors expose the same tables.
func TestIdentityMapsAndAliases(t *testing.T) {
	m, err := icosphere.New(icosphere.WithDensificationLevel(1))
	require.NoError(t, err)

	cellAtNode := m.CellAtNode()
	require.Len(t, cellAtNode, m.NumNodes())
	for i, cell := range cellAtNode {
		require.Equal(t, i, cell)
	}
	require.Equal(t, cellAtNode, m.NodeAtCell())

	faceAtLink := m.FaceAtLink()
	require.Len(t, faceAtLink, m.NumLinks())
	for j, face := range faceAtLink {
		require.Equal(t, j, face)
	}
	require.Equal(t, faceAtLink, m.LinkAtFace())

	require.Equal(t, m.CornersAtNode, m.PatchesAtNode())
	require.Equal(t, m.CornersAtNode, m.CornersAtCell())
	require.Equal(t, m.LinksAtNode, m.FacesAtCell())
}

// TestNodeSphericalCoords: the memoized spherical coordinates reproduce the
// Cartesian node positions.
func TestNodeSphericalCoords(t *testing.T) {
	const radius = 2.5
	m, err := icosphere.New(icosphere.WithRadius(radius))
	require.NoError(t, err)

	r := m.ROfNode()
	phi := m.PhiOfNode()
	theta := m.ThetaOfNode()
	require.Len(t, r, m.NumNodes())
	for node := range r {
		require.InEpsilon(t, radius, r[node], 1e-12)
		require.GreaterOrEqual(t, theta[node], 0.0)
		require.LessOrEqual(t, theta[node], math.Pi)
		require.LessOrEqual(t, math.Abs(phi[node]), math.Pi)
	}
}
