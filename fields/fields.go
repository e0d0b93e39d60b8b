package fields

import (
	"errors"
	"fmt"
	"sort"
)

// At names the element kind a field is bound to.
type At int

// Field locations, one per element kind of the dual mesh.
const (
	AtNode At = iota
	AtLink
	AtPatch
	AtCorner
	AtFace
	AtCell
)

// String returns the landlab-style location name ("node", "link", ...).
func (a At) String() string {
	switch a {
	case AtNode:
		return "node"
	case AtLink:
		return "link"
	case AtPatch:
		return "patch"
	case AtCorner:
		return "corner"
	case AtFace:
		return "face"
	case AtCell:
		return "cell"
	default:
		return fmt.Sprintf("At(%d)", int(a))
	}
}

// Sentinel errors for field registration and lookup.
var (
	// ErrFieldExists indicates an Add or AddZeros under an already-taken
	// (name, location) pair.
	ErrFieldExists = errors.New("fields: field already exists")
	// ErrFieldNotFound indicates a Get for an unregistered (name, location).
	ErrFieldNotFound = errors.New("fields: field not found")
	// ErrFieldSize indicates an Add whose array length does not match the
	// element count of the location.
	ErrFieldSize = errors.New("fields: array length does not match location size")
	// ErrLocation indicates an At value outside the six element kinds.
	ErrLocation = errors.New("fields: unknown field location")
)

// Counts carries the element totals a Store sizes its arrays against.
type Counts struct {
	Nodes   int
	Links   int
	Patches int
	Corners int
	Faces   int
	Cells   int
}

// Sized is the subset of a mesh's accessors Counts can be read from.
// *icosphere.Mesh satisfies it.
type Sized interface {
	NumNodes() int
	NumLinks() int
	NumPatches() int
	NumCorners() int
	NumFaces() int
	NumCells() int
}

// CountsOf reads element totals from a mesh.
func CountsOf(m Sized) Counts {
	return Counts{
		Nodes:   m.NumNodes(),
		Links:   m.NumLinks(),
		Patches: m.NumPatches(),
		Corners: m.NumCorners(),
		Faces:   m.NumFaces(),
		Cells:   m.NumCells(),
	}
}

func (c Counts) size(loc At) (int, error) {
	switch loc {
	case AtNode:
		return c.Nodes, nil
	case AtLink:
		return c.Links, nil
	case AtPatch:
		return c.Patches, nil
	case AtCorner:
		return c.Corners, nil
	case AtFace:
		return c.Faces, nil
	case AtCell:
		return c.Cells, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrLocation, int(loc))
	}
}

// Store is a registry of scalar arrays keyed by name and location.
// The zero value is not usable; construct with NewStore.
type Store struct {
	counts Counts
	data   map[At]map[string][]float64
}

// NewStore returns an empty Store sized by c.
func NewStore(c Counts) *Store {
	return &Store{
		counts: c,
		data:   make(map[At]map[string][]float64),
	}
}

// Counts returns the element totals the Store was built with.
func (s *Store) Counts() Counts { return s.counts }

// AddZeros registers a zero-valued array under (name, loc) and returns it.
// Returns ErrFieldExists if the pair is taken, ErrLocation if loc is unknown.
func (s *Store) AddZeros(name string, loc At) ([]float64, error) {
	n, err := s.counts.size(loc)
	if err != nil {
		return nil, err
	}
	if s.Has(name, loc) {
		return nil, fmt.Errorf("%w: %q at %s", ErrFieldExists, name, loc)
	}
	values := make([]float64, n)
	s.put(name, loc, values)
	return values, nil
}

// Add registers values under (name, loc). The slice is stored as is, so
// later in-place updates remain visible through Get. Returns ErrFieldSize
// when len(values) does not match the element count of loc.
func (s *Store) Add(name string, loc At, values []float64) error {
	n, err := s.counts.size(loc)
	if err != nil {
		return err
	}
	if len(values) != n {
		return fmt.Errorf("%w: %q at %s: got %d, want %d",
			ErrFieldSize, name, loc, len(values), n)
	}
	if s.Has(name, loc) {
		return fmt.Errorf("%w: %q at %s", ErrFieldExists, name, loc)
	}
	s.put(name, loc, values)
	return nil
}

// Get returns the array registered under (name, loc), or ErrFieldNotFound.
func (s *Store) Get(name string, loc At) ([]float64, error) {
	if _, err := s.counts.size(loc); err != nil {
		return nil, err
	}
	values, ok := s.data[loc][name]
	if !ok {
		return nil, fmt.Errorf("%w: %q at %s", ErrFieldNotFound, name, loc)
	}
	return values, nil
}

// Has reports whether (name, loc) is registered.
func (s *Store) Has(name string, loc At) bool {
	_, ok := s.data[loc][name]
	return ok
}

// Names returns the sorted field names registered at loc.
func (s *Store) Names(loc At) []string {
	names := make([]string, 0, len(s.data[loc]))
	for name := range s.data[loc] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) put(name string, loc At, values []float64) {
	if s.data[loc] == nil {
		s.data[loc] = make(map[string][]float64)
	}
	s.data[loc][name] = values
}
