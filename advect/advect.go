package advect

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Ashaniekam/landlab/icosphere"
)

// Sentinel errors for solver construction.
var (
	// ErrNilMesh indicates a nil mesh passed to NewSolver.
	ErrNilMesh = errors.New("advect: mesh must not be nil")
	// ErrFieldLength indicates a field whose length differs from the mesh's
	// node count.
	ErrFieldLength = errors.New("advect: field length must equal node count")
	// ErrVelocityLength indicates a velocity array whose length differs from
	// the mesh's link count.
	ErrVelocityLength = errors.New("advect: velocity length must equal link count")
)

// FluxLimiterVanLeer returns the van Leer limiter psi(r) = (r+|r|)/(1+|r|).
// It is 0 for r <= 0 (local extremum, fall back to first-order upwind) and
// approaches 2 for large r.
func FluxLimiterVanLeer(r float64) float64 {
	return (r + math.Abs(r)) / (1.0 + math.Abs(r))
}

// FindUpwindLinkAtLink returns, for every link, the incident link at the
// link's upwind node that best continues the link's own chord direction,
// or -1 where no incident link points forward into it.
//
// The upwind node is the tail where vel >= 0 and the head where vel < 0.
// Among the other links at that node, the one whose chord, oriented into
// the node, has the largest positive dot product with the link's own chord
// is chosen. On a one-dimensional or raster grid this reduces to the
// parallel link behind the upwind node.
func FindUpwindLinkAtLink(m *icosphere.Mesh, vel []float64) []int {
	upwind := make([]int, m.NumLinks())
	for j := range upwind {
		tail, head := m.NodesAtLink[j][0], m.NodesAtLink[j][1]
		node := tail
		if vel[j] < 0 {
			node = head
		}
		chord := r3.Unit(r3.Sub(m.CoordsOfNode[head], m.CoordsOfNode[tail]))

		best, bestDot := icosphere.Sentinel, 0.0
		for _, k := range m.LinksAtNode[node] {
			if k == icosphere.Sentinel {
				break
			}
			if k == j {
				continue
			}
			other := m.NodesAtLink[k][0] + m.NodesAtLink[k][1] - node
			into := r3.Unit(r3.Sub(m.CoordsOfNode[node], m.CoordsOfNode[other]))
			if d := r3.Dot(into, chord); d > bestDot {
				best, bestDot = k, d
			}
		}
		upwind[j] = best
	}
	return upwind
}

// UpwindToLocalGradRatio fills out with the ratio of the upwind link's
// gradient in value to each link's own gradient, the quantity a TVD flux
// limiter is evaluated at. The ratio is 1 where a link has no upwind link
// or a zero local gradient. A nil out allocates; the filled slice is
// returned either way.
func UpwindToLocalGradRatio(m *icosphere.Mesh, value []float64, upwind []int, out []float64) []float64 {
	if out == nil {
		out = make([]float64, m.NumLinks())
	}
	diff := make([]float64, m.NumLinks())
	for j := range diff {
		diff[j] = value[m.NodesAtLink[j][1]] - value[m.NodesAtLink[j][0]]
	}
	for j := range out {
		out[j] = 1.0
		if upwind[j] != icosphere.Sentinel && diff[j] != 0.0 {
			out[j] = diff[upwind[j]] / diff[j]
		}
	}
	return out
}

// Solver advances a node scalar field under per-link advection velocities.
type Solver struct {
	mesh   *icosphere.Mesh
	scalar []float64
	vel    []float64
	flux   []float64
	steady bool
	upwind []int
	ratio  []float64
}

// Option configures a Solver.
type Option func(*Solver) error

// WithField advects the given node array in place. The solver keeps the
// slice, so callers observe every update through their own reference.
// Defaults to a fresh zero field.
func WithField(field []float64) Option {
	return func(s *Solver) error {
		if len(field) != s.mesh.NumNodes() {
			return fmt.Errorf("%w: got %d, want %d",
				ErrFieldLength, len(field), s.mesh.NumNodes())
		}
		s.scalar = field
		return nil
	}
}

// WithVelocity sets the per-link advection velocities, positive in each
// link's tail-to-head direction. The slice is kept, not copied. Defaults
// to all zeros.
func WithVelocity(vel []float64) Option {
	return func(s *Solver) error {
		if len(vel) != s.mesh.NumLinks() {
			return fmt.Errorf("%w: got %d, want %d",
				ErrVelocityLength, len(vel), s.mesh.NumLinks())
		}
		s.vel = vel
		return nil
	}
}

// WithSteadyVelocityDirection promises that no velocity will change sign
// during the run, letting the solver resolve upwind links once at
// construction instead of every step.
func WithSteadyVelocityDirection() Option {
	return func(s *Solver) error {
		s.steady = true
		return nil
	}
}

// NewSolver builds a Solver over m.
func NewSolver(m *icosphere.Mesh, opts ...Option) (*Solver, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	s := &Solver{mesh: m}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.scalar == nil {
		s.scalar = make([]float64, m.NumNodes())
	}
	if s.vel == nil {
		s.vel = make([]float64, m.NumLinks())
	}
	s.flux = make([]float64, m.NumLinks())
	s.ratio = make([]float64, m.NumLinks())
	if s.steady {
		s.upwind = FindUpwindLinkAtLink(m, s.vel)
	}
	return s, nil
}

// Field returns the advected node array (live, not a copy).
func (s *Solver) Field() []float64 { return s.scalar }

// Velocity returns the per-link velocity array (live, not a copy).
func (s *Solver) Velocity() []float64 { return s.vel }

// Flux returns the per-link scalar flux from the most recent step.
func (s *Solver) Flux() []float64 { return s.flux }

// RateOfChangeAtNodes returns d(field)/dt at every node for a step of
// duration dt: limited face values times velocity give per-link fluxes,
// and each node accumulates flux times face width over its cell area,
// counted positive inward.
func (s *Solver) RateOfChangeAtNodes(dt float64) []float64 {
	m := s.mesh
	if !s.steady {
		s.upwind = FindUpwindLinkAtLink(m, s.vel)
	}
	s.ratio = UpwindToLocalGradRatio(m, s.scalar, s.upwind, s.ratio)

	for j := 0; j < m.NumLinks(); j++ {
		tail, head := m.NodesAtLink[j][0], m.NodesAtLink[j][1]
		u := s.vel[j]

		sLow := s.scalar[tail]
		if u < 0 {
			sLow = s.scalar[head]
		}
		courant := dt * u / m.LengthOfLink[j]
		sHigh := 0.5 * ((1.0+courant)*s.scalar[tail] + (1.0-courant)*s.scalar[head])

		psi := FluxLimiterVanLeer(s.ratio[j])
		s.flux[j] = u * (psi*sHigh + (1.0-psi)*sLow)
	}

	roc := make([]float64, m.NumNodes())
	for i := 0; i < m.NumNodes(); i++ {
		var net float64
		for slot, j := range m.LinksAtNode[i] {
			if j == icosphere.Sentinel {
				break
			}
			net += float64(m.LinkDirsAtNode[i][slot]) * s.flux[j] * m.LengthOfFace[j]
		}
		roc[i] = net / m.AreaOfCell[i]
	}
	return roc
}

// Update advances the field by one step of duration dt.
func (s *Solver) Update(dt float64) {
	roc := s.RateOfChangeAtNodes(dt)
	floats.AddScaled(s.scalar, dt, roc)
}
