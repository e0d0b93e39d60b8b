// Package icosphere core types, constants, options, and sentinel errors.
package icosphere

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Table-shape constants. Downstream consumers rely on both: the fixed slot
// width lets per-node tables be dense 2-D arrays, and the sentinel marks the
// unused sixth slot of the twelve pentagonal nodes.
const (
	// MaxNeighbors is the capacity of every per-node slot table. No vertex of
	// a refined icosahedron has more than six neighbors.
	MaxNeighbors = 6
	// Sentinel fills unused index slots. Any value >= 0 is a valid index.
	Sentinel = -1
)

// Sentinel errors for mesh construction.
var (
	// ErrRadius indicates a non-positive sphere radius option.
	ErrRadius = errors.New("icosphere: radius must be positive")
	// ErrDensificationLevel indicates a negative densification level option.
	ErrDensificationLevel = errors.New("icosphere: densification level must be non-negative")
	// ErrNodeIndex indicates a triangle referencing a node outside [0, n).
	ErrNodeIndex = errors.New("icosphere: triangle node index out of range")
	// ErrDegenerateTriangle indicates a triangle that repeats a node index.
	ErrDegenerateTriangle = errors.New("icosphere: triangle repeats a node index")
	// ErrIsolatedNode indicates a node referenced by no triangle; such a
	// node has no corners and no dual cell.
	ErrIsolatedNode = errors.New("icosphere: node referenced by no triangle")
	// ErrNodeDegree indicates a node with more than MaxNeighbors incident
	// links or patches; such input cannot come from icosahedral refinement.
	ErrNodeDegree = errors.New("icosphere: node degree exceeds slot capacity")
	// ErrDegeneratePatch indicates a patch with collinear nodes, whose
	// normal vanishes and whose corner would be ill-defined.
	ErrDegeneratePatch = errors.New("icosphere: degenerate patch with vanishing normal")
	// ErrOpenMesh indicates a node pair bounded by fewer than two patches;
	// the dual construction requires a closed (boundary-free) mesh.
	ErrOpenMesh = errors.New("icosphere: link bounded by fewer than two patches")
	// ErrNonManifold indicates a node pair shared by more than two patches.
	ErrNonManifold = errors.New("icosphere: more than two patches share a node pair")
)

// Default option values.
const (
	// DefaultRadius is the unit sphere.
	DefaultRadius = 1.0
	// DefaultDensificationLevel leaves the bare icosahedron unrefined.
	DefaultDensificationLevel = 0
)

// config aggregates the construction knobs. Passed by value; immutable to
// callers once options have been applied.
type config struct {
	radius float64
	level  int
}

// Option configures New. Options are applied in order; later options
// override earlier ones. An invalid value surfaces as a sentinel error from
// New, never a panic.
type Option func(*config) error

// WithRadius sets the sphere radius. It must be positive.
func WithRadius(radius float64) Option {
	return func(c *config) error {
		if radius <= 0 {
			return ErrRadius
		}
		c.radius = radius
		return nil
	}
}

// WithDensificationLevel sets the number of 4-way triangle subdivisions
// applied to the base icosahedron. It must be non-negative; level 0 yields
// the bare icosahedron (12 nodes, 30 links, 20 patches).
func WithDensificationLevel(level int) Option {
	return func(c *config) error {
		if level < 0 {
			return ErrDensificationLevel
		}
		c.level = level
		return nil
	}
}

// newConfig applies opts over the deterministic defaults.
func newConfig(opts ...Option) (config, error) {
	cfg := config{
		radius: DefaultRadius,
		level:  DefaultDensificationLevel,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// Mesh is the dual icosphere mesh. All exported tables are written exactly
// once during construction and must be treated as read-only; mutating them
// afterwards silently invalidates the memoized derived tables.
type Mesh struct {
	radius float64

	// CoordsOfNode holds each primal node's Cartesian position on the
	// sphere, |v| == Radius().
	CoordsOfNode []r3.Vec
	// NodesAtLink holds each link's (tail, head) node pair in first-seen
	// orientation.
	NodesAtLink [][2]int
	// LengthOfLink is each link's great-circle arc length.
	LengthOfLink []float64
	// LinksAtNode lists each node's incident links in insertion order,
	// sentinel-padded to MaxNeighbors.
	LinksAtNode [][MaxNeighbors]int
	// LinkDirsAtNode carries the direction sign of each LinksAtNode slot:
	// -1 where the node is the link's tail, +1 at the head, 0 in padding.
	LinkDirsAtNode [][MaxNeighbors]int
	// NodesAtPatch holds each patch's node triple in the orientation
	// supplied by the refined icosahedron (counterclockwise from outside).
	NodesAtPatch [][3]int
	// CoordsOfCorner holds each dual corner: the patch's outward unit
	// normal scaled onto the sphere. Corner k belongs to patch k.
	CoordsOfCorner []r3.Vec
	// CornersAtNode lists each node's incident corners sorted
	// counterclockwise as seen from outside the sphere, sentinel-padded.
	// It bounds the node's dual cell as a simple polygon.
	CornersAtNode [][MaxNeighbors]int
	// CornersAtFace holds each face's corner pair as (min, max) of the two
	// patches adjacent across the corresponding link.
	CornersAtFace [][2]int
	// LengthOfFace is each face's great-circle arc length between its
	// two corners.
	LengthOfFace []float64
	// AreaOfCell is each dual cell's surface area: one wedge triangle times
	// the polygon degree (see the package comment for the approximation).
	AreaOfCell []float64

	// Derived tables below are memoized on first access (nil = uncomputed).
	cellAtNode  []int
	faceAtLink  []int
	rOfNode     []float64
	phiOfNode   []float64
	thetaOfNode []float64
	areaOfPatch []float64
}
