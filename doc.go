// Package landlab builds geometrically exact dual meshes on the sphere —
// a refined icosahedron paired with its polygonal dual — plus the field
// storage, transport solver, and export tooling that make them usable for
// global numerical modeling.
//
// 🚀 What is landlab?
//
//	A pure-Go toolkit for quasi-uniform global grids:
//		• Geometry kernel: arc lengths, spherical-triangle areas, local frames
//		• Refinable icosahedron: the primal triangulation at any density
//		• Dual icosphere mesh: nodes/links/patches and cells/faces/corners
//		  in fixed-width, sentinel-padded index tables
//		• Field store: name-keyed scalar arrays bound to element kinds
//		• TVD advection: conservative, oscillation-free scalar transport
//		• VTK export: drop the mesh straight into ParaView
//
// ✨ Why a dual icosphere?
//
//   - No pole singularities – cells stay near-uniform over the whole sphere
//   - Exact geometry – great-circle lengths and spherical areas, not chords
//   - Finite-volume ready – every node owns a closed polygonal cell whose
//     faces bisect its links
//   - Plain data – every table is a flat slice indexed by element id
//
// Everything is organized under six subpackages:
//
//	spherical/   — geometry kernel over gonum r3 vectors
//	icosahedron/ — golden-rectangle icosahedron with 4-way refinement
//	icosphere/   — the dual mesh builder and its index tables
//	fields/      — scalar field registry for coupled components
//	advect/      — Total Variation Diminishing advection solver
//	vtk/         — legacy-VTK text export
//
// Quick ASCII sketch of the dual complex at one node:
//
//	    corner───corner
//	      /  \   /  \
//	     /   node    \        five or six corners ring every node;
//	    \    /  \    /        their loop is the node's cell
//	     corner──corner
//
//	go get github.com/Ashaniekam/landlab
package landlab
