package spherical

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ArcLength returns the great-circle distance between points a and b on the
// sphere of the given radius, i.e. radius times the central angle between
// them. The cosine is clamped into [-1, 1] so that rounding drift on
// near-identical or near-antipodal points cannot push Acos out of domain.
// Complexity: O(1).
func ArcLength(a, b r3.Vec, radius float64) float64 {
	cos := r3.Dot(a, b) / (radius * radius)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return radius * math.Acos(cos)
}

// TriangleArea returns the surface area of the spherical triangle with
// vertices p0, p1, p2 on the sphere of the given radius, computed from the
// spherical excess via L'Huilier's theorem:
//
//	E = 4·atan(√(tan(s/2)·tan((s-a)/2)·tan((s-b)/2)·tan((s-c)/2)))
//
// where a, b, c are the angular side lengths and s their half-sum. The area
// is E·radius². The tangent product is clamped at zero: for a degenerate
// (collinear) triangle it can round to a small negative number.
// Complexity: O(1).
func TriangleArea(p0, p1, p2 r3.Vec, radius float64) float64 {
	a := ArcLength(p1, p2, radius) / radius
	b := ArcLength(p0, p2, radius) / radius
	c := ArcLength(p0, p1, radius) / radius
	s := (a + b + c) / 2

	t := math.Tan(s/2) * math.Tan((s-a)/2) * math.Tan((s-b)/2) * math.Tan((s-c)/2)
	if t < 0 {
		t = 0
	}
	return 4 * math.Atan(math.Sqrt(t)) * radius * radius
}

// CartesianToSpherical converts a Cartesian point to spherical coordinates:
// r is the distance from the origin, phi the azimuth in (-π, π] measured
// counterclockwise from +x in the xy plane, and theta the polar angle in
// [0, π] measured from +z. A point on the z axis has an arbitrary (zero)
// azimuth; callers that rotate by phi must not depend on it there.
// Complexity: O(1).
func CartesianToSpherical(v r3.Vec) (r, phi, theta float64) {
	r = r3.Norm(v)
	phi = math.Atan2(v.Y, v.X)
	theta = math.Acos(v.Z / r)
	return r, phi, theta
}

// RotateZY rotates v about the z axis by phi, then about the y axis by theta,
// both right-handed. Composed with the angles negated, it maps the point at
// azimuth phi and polar angle theta onto the +z pole, flattening that point's
// spherical neighborhood into the local xy plane:
//
//	RotateZY(p, -phi, -theta)
//
// Complexity: O(1).
func RotateZY(v r3.Vec, phi, theta float64) r3.Vec {
	sinPhi, cosPhi := math.Sincos(phi)
	x := v.X*cosPhi - v.Y*sinPhi
	y := v.X*sinPhi + v.Y*cosPhi

	sinTheta, cosTheta := math.Sincos(theta)
	return r3.Vec{
		X: x*cosTheta + v.Z*sinTheta,
		Y: y,
		Z: -x*sinTheta + v.Z*cosTheta,
	}
}
