// Package icosphere builds a topologically consistent dual mesh on the
// surface of a sphere from an iteratively refined icosahedron: a primal
// triangulation (nodes, links, patches) interlocked with its planar dual
// (cells, faces, corners), with every adjacency computed once at
// construction and stored as fixed-width index tables.
//
// What:
//
//   - Mesh: immutable-after-construction table bundle. Primal side:
//     CoordsOfNode, NodesAtLink, LengthOfLink, LinksAtNode/LinkDirsAtNode,
//     NodesAtPatch. Dual side: CoordsOfCorner, CornersAtNode (sorted
//     counterclockwise), CornersAtFace, LengthOfFace, AreaOfCell.
//   - New(opts...): build from the refined icosahedron
//     (WithRadius, WithDensificationLevel).
//   - FromTriangulation: build from any well-formed closed triangulation of
//     the sphere supplied by an external refinement step.
//
// Index spaces:
//
//   - The dual complex shares the primal index spaces: cell i is node i,
//     face j is link j, corner k is patch k. CellAtNode, FaceAtLink and
//     friends expose the identity maps for callers that want them spelled
//     out; PatchesAtNode, CornersAtCell and FacesAtCell are aliases into the
//     same tables.
//   - Per-node tables have fixed capacity MaxNeighbors (6); unused slots hold
//     Sentinel (-1). Exactly the 12 original icosahedron nodes keep five
//     neighbors after refinement, every node added by subdivision has six, so
//     counting non-sentinel slots distinguishes pentagonal from hexagonal
//     cells.
//
// Construction is one-shot and sequential (nodes → links → patches/corners →
// faces → cells); no step mutates a previous step's tables, and a failed
// precondition aborts the whole build with no partial mesh. A handful of
// derived tables (spherical node coordinates, patch areas, the identity
// maps) are computed on first access and memoized, which is safe only
// because the mesh forbids post-construction mutation.
//
// Known accuracy limitation: AreaOfCell multiplies one wedge triangle
// (node, first two sorted corners) by the cell's polygon degree. That is
// exact for the regular cells of the unrefined icosahedron and an
// approximation for cells reshaped by densification, whose wedges are not
// congruent. The table is what downstream flux dividers expect; callers
// needing exact areas can sum wedges from CornersAtNode themselves.
//
// Complexity: O(N + L + P) time and memory for the whole pipeline, with an
// O(d log d) angular sort per node (d ≤ 6).
//
// Errors:
//
//   - ErrRadius, ErrDensificationLevel: option violations.
//   - ErrNodeIndex, ErrDegenerateTriangle, ErrIsolatedNode: malformed input
//     triangulation.
//   - ErrNodeDegree: a node with more than MaxNeighbors incident links or
//     patches (not an icosphere refinement).
//   - ErrDegeneratePatch: a patch whose normal vanishes (collinear nodes).
//   - ErrOpenMesh, ErrNonManifold: a node pair bounded by fewer or more than
//     two patches (the construction requires a closed spherical mesh).
package icosphere
