package transform

import (
	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Local axes in object space. Forward is -Z, matching the view matrix convention
// used by common.LookToRotation.
var (
	localForward = mgl32.Vec3{0, 0, -1}
	localRight   = mgl32.Vec3{1, 0, 0}
	localUp      = mgl32.Vec3{0, 1, 0}
)

// Transform is a position + orientation pair for a scene entity.
// It is a plain value; entities store it as a component and routines mutate it in place.
type Transform struct {
	// Translation is the world-space position.
	Translation mgl32.Vec3

	// Rotation is the world-space orientation. Kept normalized by every mutating method.
	Rotation mgl32.Quat
}

// Identity returns a transform at the origin looking down -Z.
//
// Returns:
//   - Transform: the identity transform
func Identity() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// Forward returns the unit vector the transform is looking along.
func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(localForward)
}

// Back returns the opposite of Forward.
func (t *Transform) Back() mgl32.Vec3 {
	return t.Forward().Mul(-1)
}

// Right returns the transform's local +X axis in world space.
func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(localRight)
}

// Left returns the opposite of Right.
func (t *Transform) Left() mgl32.Vec3 {
	return t.Right().Mul(-1)
}

// Up returns the transform's local +Y axis in world space.
func (t *Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(localUp)
}

// Down returns the opposite of Up.
func (t *Transform) Down() mgl32.Vec3 {
	return t.Up().Mul(-1)
}

// Translate moves the transform by delta in world space.
//
// Parameters:
//   - delta: world-space offset
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Translation = t.Translation.Add(delta)
}

// Rotate applies q in world space (q is composed on the left).
//
// Parameters:
//   - q: the world-space rotation to apply
func (t *Transform) Rotate(q mgl32.Quat) {
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// RotateAxis rotates by angle radians about a world-space axis.
//
// Parameters:
//   - axis: unit-length world axis
//   - angle: rotation in radians
func (t *Transform) RotateAxis(axis mgl32.Vec3, angle float32) {
	t.Rotate(mgl32.QuatRotate(angle, axis))
}

// RotateY rotates by angle radians about the world Y axis (extrinsic yaw).
//
// Parameters:
//   - angle: rotation in radians
func (t *Transform) RotateY(angle float32) {
	t.RotateAxis(common.WorldUp, angle)
}

// RotateLocal applies q in the transform's local space (q is composed on the right).
//
// Parameters:
//   - q: the local-space rotation to apply
func (t *Transform) RotateLocal(q mgl32.Quat) {
	t.Rotation = t.Rotation.Mul(q).Normalize()
}

// RotateLocalX rotates by angle radians about the transform's own X axis (intrinsic pitch).
//
// Parameters:
//   - angle: rotation in radians
func (t *Transform) RotateLocalX(angle float32) {
	t.RotateLocal(mgl32.QuatRotate(angle, localRight))
}

// LookTo re-orients the transform so Forward points along dir, keeping Up as close
// to up as possible. dir must not be parallel to up.
//
// Parameters:
//   - dir: the direction to look toward
//   - up: the up reference
func (t *Transform) LookTo(dir, up mgl32.Vec3) {
	t.Rotation = common.LookToRotation(dir, up)
}

// LookAt re-orients the transform to face target from its current position.
//
// Parameters:
//   - target: the world-space point to face
//   - up: the up reference
func (t *Transform) LookAt(target, up mgl32.Vec3) {
	t.LookTo(target.Sub(t.Translation), up)
}

// Matrix returns the local-to-world matrix.
//
// Returns:
//   - mgl32.Mat4: translation * rotation
func (t *Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).Mul4(t.Rotation.Mat4())
}

// ViewMatrix returns the world-to-view matrix for a camera using this transform.
//
// Returns:
//   - mgl32.Mat4: the inverse of Matrix
func (t *Transform) ViewMatrix() mgl32.Mat4 {
	inv := t.Rotation.Inverse()
	pos := inv.Rotate(t.Translation.Mul(-1))
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(inv.Mat4())
}
