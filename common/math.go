package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the global up axis (+Y). Every camera routine levels against it.
var WorldUp = mgl32.Vec3{0, 1, 0}

// epsilon below which a vector length is treated as zero.
const epsilon = 1e-6

// Clampf clamps v into [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: inclusive lower bound
//   - hi: inclusive upper bound
//
// Returns:
//   - float32: the clamped value
func Clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsZeroLength reports whether v is too short to be normalized safely.
func IsZeroLength(v mgl32.Vec3) bool {
	return v.Len() < epsilon
}

// ProjectOntoNormalized returns the component of v along the unit vector n.
//
// Parameters:
//   - v: the vector to project
//   - n: a unit-length direction
//
// Returns:
//   - mgl32.Vec3: the projection of v onto n
func ProjectOntoNormalized(v, n mgl32.Vec3) mgl32.Vec3 {
	return n.Mul(v.Dot(n))
}

// RejectFromNormalized returns v with its component along the unit vector n removed,
// i.e. the projection of v onto the plane whose normal is n.
//
// Parameters:
//   - v: the vector to reject
//   - n: a unit-length plane normal
//
// Returns:
//   - mgl32.Vec3: the rejection of v from n
func RejectFromNormalized(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(ProjectOntoNormalized(v, n))
}

// SignedAngle returns the right-handed angle in radians that rotates a onto b about
// the axis n, using atan2((a × b)·n, a·b). a and b are expected to be perpendicular
// to n (or close to it); the result is in (-π, π].
//
// Parameters:
//   - a: the start vector
//   - b: the end vector
//   - n: the rotation axis
//
// Returns:
//   - float32: the signed angle in radians
func SignedAngle(a, b, n mgl32.Vec3) float32 {
	y := a.Cross(b).Dot(n)
	x := a.Dot(b)
	return float32(math.Atan2(float64(y), float64(x)))
}

// RotationArc returns the shortest rotation taking the unit vector from onto the
// unit vector to.
//
// Parameters:
//   - from: unit-length start direction
//   - to: unit-length end direction
//
// Returns:
//   - mgl32.Quat: the rotation from -> to
func RotationArc(from, to mgl32.Vec3) mgl32.Quat {
	return mgl32.QuatBetweenVectors(from, to).Normalize()
}

// LookToRotation builds the orientation whose forward (-Z) axis points along dir and
// whose up axis is as close to up as possible. dir and up must not be parallel.
//
// Parameters:
//   - dir: the direction to look toward (need not be normalized)
//   - up: the up reference (need not be normalized)
//
// Returns:
//   - mgl32.Quat: the resulting orientation
func LookToRotation(dir, up mgl32.Vec3) mgl32.Quat {
	back := dir.Mul(-1).Normalize()
	right := up.Cross(back).Normalize()
	newUp := back.Cross(right)

	// Columns are the local X, Y and Z axes expressed in world space.
	m := mgl32.Mat4{
		right[0], right[1], right[2], 0,
		newUp[0], newUp[1], newUp[2], 0,
		back[0], back[1], back[2], 0,
		0, 0, 0, 1,
	}
	return mgl32.Mat4ToQuat(m).Normalize()
}
