package vtk

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Ashaniekam/landlab/icosphere"
)

// Sentinel errors for export validation.
var (
	// ErrPointIndex indicates a polygon referencing a point outside
	// [0, len(points)).
	ErrPointIndex = errors.New("vtk: polygon references a point out of range")
	// ErrFieldLength indicates a scalar field whose length differs from the
	// polygon count it annotates.
	ErrFieldLength = errors.New("vtk: field length must equal polygon count")
)

const (
	cellTypeTriangle = 5
	cellTypePolygon  = 7
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WritePolygons emits points and polygons to w in the legacy VTK 2.0 ASCII
// layout. Negative ids inside a polygon are padding and are dropped; the
// CELL_TYPES section is triangle (5) when no polygon has more than three
// vertices and generic polygon (7) otherwise. A non-nil field adds a
// CELL_DATA scalar section named fieldName, one value per polygon.
func WritePolygons(w io.Writer, points []r3.Vec, polys [][]int, field []float64, fieldName string) error {
	if field != nil && len(field) != len(polys) {
		return fmt.Errorf("%w: got %d, want %d", ErrFieldLength, len(field), len(polys))
	}

	sizes := make([]int, len(polys))
	total, maxSize := 0, 0
	for i, poly := range polys {
		for _, id := range poly {
			if id < 0 {
				continue
			}
			if id >= len(points) {
				return fmt.Errorf("%w: polygon %d references point %d of %d",
					ErrPointIndex, i, id, len(points))
			}
			sizes[i]++
		}
		total += sizes[i] + 1
		if sizes[i] > maxSize {
			maxSize = sizes[i]
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# vtk DataFile Version 2.0")
	fmt.Fprintln(bw, "Icosphere Grid")
	fmt.Fprintln(bw, "ASCII")
	fmt.Fprintln(bw, "DATASET UNSTRUCTURED_GRID")

	fmt.Fprintf(bw, "POINTS %d float\n", len(points))
	for _, p := range points {
		fmt.Fprintf(bw, "%s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "CELLS %d %d\n", len(polys), total)
	for i, poly := range polys {
		fmt.Fprint(bw, sizes[i])
		for _, id := range poly {
			if id >= 0 {
				fmt.Fprintf(bw, " %d", id)
			}
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	cellType := cellTypePolygon
	if maxSize <= 3 {
		cellType = cellTypeTriangle
	}
	fmt.Fprintf(bw, "CELL_TYPES %d\n", len(polys))
	for range polys {
		fmt.Fprintln(bw, cellType)
	}

	if field != nil {
		fmt.Fprintf(bw, "CELL_DATA %d\n", len(field))
		fmt.Fprintf(bw, "SCALARS %s float 1\n", fieldName)
		fmt.Fprintln(bw, "LOOKUP_TABLE default")
		for _, v := range field {
			fmt.Fprintln(bw, formatFloat(v))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("vtk: write: %w", err)
	}
	return nil
}

type config struct {
	cellField  []float64
	cellName   string
	patchField []float64
	patchName  string
}

// Option configures WriteMesh.
type Option func(*config)

// WithCellField attaches a per-cell scalar field, written into the
// <base>_cells.vtk CELL_DATA section under the given name.
func WithCellField(name string, field []float64) Option {
	return func(c *config) {
		c.cellName, c.cellField = name, field
	}
}

// WithPatchField attaches a per-patch scalar field, written into the
// <base>_patches.vtk CELL_DATA section under the given name.
func WithPatchField(name string, field []float64) Option {
	return func(c *config) {
		c.patchName, c.patchField = name, field
	}
}

// WriteMesh writes m as two legacy VTK files, <baseName>_cells.vtk
// (corner points and polygonal cells) and <baseName>_patches.vtk (node
// points and triangular patches).
func WriteMesh(m *icosphere.Mesh, baseName string, opts ...Option) error {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cellField != nil && len(cfg.cellField) != m.NumCells() {
		return fmt.Errorf("%w: cell field got %d, want %d",
			ErrFieldLength, len(cfg.cellField), m.NumCells())
	}
	if cfg.patchField != nil && len(cfg.patchField) != m.NumPatches() {
		return fmt.Errorf("%w: patch field got %d, want %d",
			ErrFieldLength, len(cfg.patchField), m.NumPatches())
	}

	cells := make([][]int, m.NumCells())
	for i := range cells {
		ring := m.CornersAtNode[i]
		cells[i] = ring[:]
	}
	if err := writeFile(baseName+"_cells.vtk",
		m.CoordsOfCorner, cells, cfg.cellField, cfg.cellName); err != nil {
		return err
	}

	patches := make([][]int, m.NumPatches())
	for i := range patches {
		tri := m.NodesAtPatch[i]
		patches[i] = tri[:]
	}
	return writeFile(baseName+"_patches.vtk",
		m.CoordsOfNode, patches, cfg.patchField, cfg.patchName)
}

func writeFile(name string, points []r3.Vec, polys [][]int, field []float64, fieldName string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("vtk: create %s: %w", name, err)
	}
	if err := WritePolygons(f, points, polys, field, fieldName); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("vtk: close %s: %w", name, err)
	}
	return nil
}
