// Package spherical provides the geometry kernel for meshes on the surface
// of a sphere: great-circle arc lengths, spherical-triangle areas, and the
// coordinate conversions and axis rotations used to flatten a point's
// neighborhood onto a local tangent plane.
//
// What:
//
//   - ArcLength: shortest-path distance between two surface points.
//   - TriangleArea: area of a spherical triangle via the L'Huilier
//     spherical-excess formula (stable for small, nearly-degenerate triangles).
//   - CartesianToSpherical: (x,y,z) → (r, phi, theta) with phi the azimuth
//     measured from +x and theta the polar angle measured from +z.
//   - RotateZY: rotation about the z axis followed by rotation about the
//     y axis; RotateZY(p, -phi, -theta) carries the point with azimuth phi
//     and polar angle theta to the +z pole.
//
// Why:
//
//   - Link and face lengths of a spherical mesh are arc lengths, not chords.
//   - Dual-cell areas decompose into spherical triangles.
//   - Sorting a vertex's neighborhood counterclockwise requires a frame in
//     which the vertex sits at the pole and its neighbors lie near a plane.
//
// All functions are pure and allocation-free; coordinates use
// gonum.org/v1/gonum/spatial/r3.Vec. Inputs are assumed to lie on the sphere
// of the given radius; validation belongs to the callers that construct them.
//
// Complexity: every function is O(1).
package spherical
