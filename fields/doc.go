// Package fields stores name-keyed scalar arrays bound to the element kinds
// of a dual spherical mesh.
//
// What:
//
//   - At: the six element kinds a field can live on (nodes, links, patches,
//     corners, faces, cells).
//   - Counts: the element totals a Store sizes its arrays against; CountsOf
//     reads them from any mesh exposing the Num* accessors.
//   - Store: AddZeros and Add register arrays under (name, location), Get and
//     Has retrieve them, Names lists a location's fields in sorted order.
//
// Why:
//
//   - Numerical components exchange state as flat []float64 arrays indexed by
//     element id; a shared registry keyed by name and location keeps those
//     arrays sized correctly and discoverable across components.
//
// A Store hands out the registered slices themselves, not copies, so a solver
// can update a field in place and every holder of the slice observes it.
//
// Errors: ErrFieldExists, ErrFieldNotFound, ErrFieldSize, ErrLocation.
package fields
