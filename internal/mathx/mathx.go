// Package mathx holds the scalar and vector helpers shared by every per-frame
// subsystem: interpolation, easing and spherical coordinate conversion.
package mathx

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WorldUp is the +Y axis every look-at in the scene is built against.
var WorldUp = mgl64.Vec3{0, 1, 0}

// Lerp interpolates between a and b; t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 interpolates each component of a toward b.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseInOutCubic starts slow, speeds up, and settles into the end point.
//
//	t < 0.5:  4t³
//	t >= 0.5: 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutCubic decelerates into the end point: 1 - (1-t)³.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// SphericalToCartesian converts an orbit radius, yaw and pitch into a point
// around the origin. Pitch is measured from the horizon (phi = π/2 - pitch),
// yaw around +Y starting at +Z.
func SphericalToCartesian(radius, yaw, pitch float64) mgl64.Vec3 {
	phi := math.Pi/2 - pitch
	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		radius * sinPhi * math.Sin(yaw),
		radius * math.Cos(phi),
		radius * sinPhi * math.Cos(yaw),
	}
}

// CartesianToSpherical is the inverse of SphericalToCartesian. A point at the
// origin yields a zero radius and zero angles.
func CartesianToSpherical(p mgl64.Vec3) (radius, yaw, pitch float64) {
	radius = p.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	yaw = math.Atan2(p[0], p[2])
	phi := math.Acos(Clamp(p[1]/radius, -1, 1))
	return radius, yaw, math.Pi/2 - phi
}

// LookRotation returns the orientation whose front (-Z) faces dir. When dir is
// nearly parallel to up a fallback up axis is used so the result never
// degenerates. A zero dir yields the identity.
func LookRotation(dir, up mgl64.Vec3) mgl64.Quat {
	if dir.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	dir = dir.Normalize()
	if math.Abs(dir.Dot(up.Normalize())) > 0.999 {
		up = mgl64.Vec3{0, 0, 1}
	}
	right := dir.Cross(up).Normalize()
	trueUp := right.Cross(dir)
	back := dir.Mul(-1)
	// Columns are the rotated X, Y and Z axes.
	basis := mgl64.Mat3{
		right[0], right[1], right[2],
		trueUp[0], trueUp[1], trueUp[2],
		back[0], back[1], back[2],
	}
	return mgl64.Mat4ToQuat(basis.Mat4()).Normalize()
}

// Front is the direction an orientation's front (-Z) points at.
func Front(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{0, 0, -1})
}
