// Package advect solves scalar advection on a dual spherical mesh with a
// Total Variation Diminishing (TVD) finite-volume scheme.
//
// What:
//
//   - FindUpwindLinkAtLink: per link, the incident link at the upwind node
//     whose chord best continues the link's own direction (-1 where none).
//   - UpwindToLocalGradRatio: the ratio of upwind to local gradient that
//     feeds the flux limiter.
//   - FluxLimiterVanLeer: the van Leer limiter psi(r) = (r+|r|)/(1+|r|).
//   - Solver: advances a node field under link velocities, blending
//     first-order upwind and Lax-Wendroff face values through the limiter
//     and accumulating flux divergence over the dual faces.
//
// Why:
//
//   - First-order upwinding is monotone but diffusive; Lax-Wendroff is
//     second-order but oscillates at sharp fronts. The limiter switches
//     between them per link, keeping fronts sharp without over/undershoot.
//   - Integrating fluxes over face widths and dividing by cell areas makes
//     the update conservative: the area-weighted total of the field is
//     unchanged by transport.
//
// The scheme needs the usual CFL restriction dt <= min(length/|u|) to stay
// stable.
//
// Complexity: each step is O(links + nodes).
//
// Errors: ErrNilMesh, ErrFieldLength, ErrVelocityLength.
package advect
