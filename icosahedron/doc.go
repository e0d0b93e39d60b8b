// Package icosahedron builds a regular icosahedron inscribed in a sphere and
// refines it into an icosphere by iterative 4-way triangle subdivision.
//
// What:
//
//   - Icosahedron holds a vertex list (points on the sphere) and a face list
//     (triples of vertex indices) in a canonical, deterministic order.
//   - New(radius) creates the 12-vertex, 20-face base solid.
//   - Refine(levels) splits every face into four by inserting deduplicated
//     edge midpoints re-projected onto the sphere.
//
// Why:
//
//   - The icosahedron is the platonic solid whose subdivisions give the most
//     uniform triangulations of the sphere: after any number of refinements,
//     exactly the 12 original vertices have five neighbors and every vertex
//     added by subdivision has six.
//   - The vertex/face lists feed the dual-mesh builder in package icosphere.
//
// Determinism:
//
//   - Vertices and faces follow one canonical ordering (golden-rectangle
//     vertex layout, faces enumerated ring by ring), so two runs with the
//     same inputs produce identical index tables.
//   - Midpoint vertices are assigned indices in face-scan order; an edge
//     shared by two faces yields a single midpoint via a keyed cache.
//
// Counts: refinement level L has 10·4^L + 2 vertices and 20·4^L faces.
//
// Complexity:
//
//   - New: O(1).
//   - Refine(levels): O(F·4^levels) time and memory, F = 20 base faces.
//
// Errors:
//
//   - ErrRadius: the sphere radius is not positive.
//   - ErrLevel: the requested refinement level is negative.
package icosahedron
