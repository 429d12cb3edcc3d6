package debugcam

import (
	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// rotate turns t by the pointer motion of one frame: yaw about world up first, then
// pitch about the camera's own right axis. A zero delta leaves t untouched.
func rotate(o *Options, t *transform.Transform, delta mgl32.Vec2, elapsed float32) {
	if delta.X() == 0 && delta.Y() == 0 {
		return
	}

	yaw := o.TurningSpeed.X() * elapsed * delta.X()
	pitch := o.TurningSpeed.Y() * elapsed * delta.Y()
	t.RotateY(yaw)
	t.RotateLocalX(pitch)

	if o.ForceUp {
		forceUp(t)
	}
}

// forceUp rolls t so its up vector lies in the vertical plane containing its forward
// vector. Skipped when forward is vertical since that plane is undefined.
func forceUp(t *transform.Transform) {
	normal := t.Forward().Cross(common.WorldUp)
	if common.IsZeroLength(normal) {
		return
	}
	normal = normal.Normalize()

	up := t.Up()
	leveled := common.RejectFromNormalized(up, normal)
	if common.IsZeroLength(leveled) {
		return
	}
	t.Rotate(common.RotationArc(up, leveled.Normalize()))
}
