package icosahedron

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for icosahedron construction.
var (
	// ErrRadius indicates a non-positive sphere radius.
	ErrRadius = errors.New("icosahedron: radius must be positive")
	// ErrLevel indicates a negative refinement level.
	ErrLevel = errors.New("icosahedron: refinement level must be non-negative")
)

// Icosahedron is a triangulation of the sphere: a vertex list of points on
// the sphere of the configured radius, and a face list of vertex-index
// triples wound counterclockwise viewed from outside.
//
// Vertices and Faces grow during Refine but existing entries are never
// renumbered, so indices handed out earlier stay valid.
type Icosahedron struct {
	// Radius of the circumscribing sphere.
	Radius float64
	// Vertices are points on the sphere, |v| == Radius.
	Vertices []r3.Vec
	// Faces are triples of vertex indices.
	Faces [][3]int

	// midpoints deduplicates subdivision vertices, keyed by the packed
	// unordered endpoint pair of the split edge.
	midpoints map[uint64]int
}

// New returns the canonical 12-vertex, 20-face icosahedron inscribed in the
// sphere of the given radius. Returns ErrRadius if radius <= 0.
// Complexity: O(1).
func New(radius float64) (*Icosahedron, error) {
	if radius <= 0 {
		return nil, ErrRadius
	}
	ico := &Icosahedron{
		Radius:    radius,
		Vertices:  make([]r3.Vec, 0, len(baseVertices)),
		Faces:     make([][3]int, len(baseFaces)),
		midpoints: make(map[uint64]int),
	}
	for _, v := range baseVertices {
		ico.addVertex(v)
	}
	copy(ico.Faces, baseFaces[:])
	return ico, nil
}

// Refine subdivides every face into four, `levels` times in sequence. Each
// split edge contributes one new vertex at its midpoint, re-projected onto
// the sphere; edges shared between faces are split once. Returns ErrLevel if
// levels < 0; Refine(0) is a no-op.
// Complexity: O(F·4^levels) with F the current face count.
func (ico *Icosahedron) Refine(levels int) error {
	if levels < 0 {
		return ErrLevel
	}
	for lvl := 0; lvl < levels; lvl++ {
		next := make([][3]int, 0, 4*len(ico.Faces))
		for _, f := range ico.Faces {
			a := ico.midpoint(f[0], f[1])
			b := ico.midpoint(f[1], f[2])
			c := ico.midpoint(f[2], f[0])
			next = append(next,
				[3]int{f[0], a, c},
				[3]int{f[1], b, a},
				[3]int{f[2], c, b},
				[3]int{a, b, c},
			)
		}
		ico.Faces = next
	}
	return nil
}

// midpoint returns the index of the vertex halfway along the edge (p1, p2),
// creating and caching it on first use.
func (ico *Icosahedron) midpoint(p1, p2 int) int {
	key := edgeKey(p1, p2)
	if i, ok := ico.midpoints[key]; ok {
		return i
	}
	mid := r3.Scale(0.5, r3.Add(ico.Vertices[p1], ico.Vertices[p2]))
	i := ico.addVertex(mid)
	ico.midpoints[key] = i
	return i
}

// addVertex appends v scaled onto the sphere and returns its index.
func (ico *Icosahedron) addVertex(v r3.Vec) int {
	ico.Vertices = append(ico.Vertices, r3.Scale(ico.Radius/r3.Norm(v), v))
	return len(ico.Vertices) - 1
}

// edgeKey packs the unordered vertex pair (p1, p2) into one map key.
func edgeKey(p1, p2 int) uint64 {
	if p2 < p1 {
		p1, p2 = p2, p1
	}
	return uint64(p1)<<32 | uint64(p2)
}
