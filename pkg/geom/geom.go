// pkg/geom/geom.go
// Package geom holds the ground-plane math shared by every collision check.
// All ground units live on the XZ plane; Y is height and is never touched by
// horizontal resolution.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon below which a direction is considered degenerate.
const Epsilon = 1e-6

// Forward returns the unit heading for an angle in radians.
// Angle 0 points along +X, positive angles turn toward +Z.
func Forward(angle float32) mgl32.Vec3 {
	s, c := math.Sincos(float64(angle))
	return mgl32.Vec3{float32(c), 0, float32(s)}
}

// Flatten drops the vertical component.
func Flatten(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// Direction returns the unit vector of v, or the zero vector when v is too
// short to normalize. Coincident centers therefore produce no displacement.
func Direction(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// Bearing is the heading angle of the horizontal vector from -> to.
func Bearing(from, to mgl32.Vec3) float32 {
	d := to.Sub(from)
	return float32(math.Atan2(float64(d.Z()), float64(d.X())))
}

// HorizontalDistSq is the squared distance between a and b on the ground plane.
func HorizontalDistSq(a, b mgl32.Vec3) float32 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return dx*dx + dz*dz
}

// HorizontalDist is the distance between a and b on the ground plane.
func HorizontalDist(a, b mgl32.Vec3) float32 {
	return float32(math.Sqrt(float64(HorizontalDistSq(a, b))))
}

// Overlaps reports whether two spheres intersect. Touching is not overlapping.
func Overlaps(aPos mgl32.Vec3, aR float32, bPos mgl32.Vec3, bR float32) bool {
	return aPos.Sub(bPos).Len() < aR+bR
}

// OverlapsSq is the ground-plane circle test without a square root.
func OverlapsSq(aPos mgl32.Vec3, aR float32, bPos mgl32.Vec3, bR float32) bool {
	r := aR + bR
	return HorizontalDistSq(aPos, bPos) < r*r
}

// Penetration returns the unit push direction from b toward a on the ground
// plane and the overlap depth. depth <= 0 means no contact.
func Penetration(a, b mgl32.Vec3, combined float32) (dir mgl32.Vec3, depth float32) {
	diff := Flatten(a.Sub(b))
	return Direction(diff), combined - diff.Len()
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampXZ keeps p inside the square arena of the given half size.
func ClampXZ(p mgl32.Vec3, half float32) mgl32.Vec3 {
	return mgl32.Vec3{Clamp(p.X(), -half, half), p.Y(), Clamp(p.Z(), -half, half)}
}
