// Package vtk writes sphere meshes as legacy-VTK text files for inspection
// in ParaView and similar viewers.
//
// What:
//
//   - WritePolygons: the generic writer, emitting a "# vtk DataFile
//     Version 2.0" ASCII UNSTRUCTURED_GRID with POINTS, CELLS, CELL_TYPES
//     (triangle 5 or polygon 7) and an optional CELL_DATA scalar section.
//   - WriteMesh: a dual mesh as two files, <base>_patches.vtk (nodes and
//     triangular patches) and <base>_cells.vtk (corners and polygonal
//     cells), with optional per-patch and per-cell scalar fields.
//
// "Cell" in the VTK sections means any polygon; the mesh's patches and
// cells both map onto it. Negative ids in a polygon are padding and are
// skipped.
//
// Errors: ErrPointIndex, ErrFieldLength, plus wrapped I/O errors.
package vtk
