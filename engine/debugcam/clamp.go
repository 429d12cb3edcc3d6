package debugcam

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// Pitch returns the signed angle between t's forward vector and its horizontal
// projection, measured about the camera's left axis. Looking down is positive.
// The second result is false when forward is vertical and the angle is undefined.
func Pitch(t *transform.Transform) (float32, bool) {
	forward := t.Forward()
	flat := mgl32.Vec3{forward.X(), 0, forward.Z()}
	if common.IsZeroLength(flat) {
		return 0, false
	}
	flat = flat.Normalize()
	normal := flat.Cross(common.WorldUp).Normalize()
	return common.SignedAngle(forward, flat, normal), true
}

// clampPitch re-orients t when its pitch falls outside limits. A vertical forward
// vector is a contract violation and panics before t is touched.
func clampPitch(limits common.Range, t *transform.Transform) {
	angle, ok := Pitch(t)
	if !ok {
		panic(fmt.Sprintf("debugcam: cannot clamp pitch, forward %v is parallel to world up", t.Forward()))
	}
	if limits.Contains(angle) {
		return
	}

	forward := t.Forward()
	flat := mgl32.Vec3{forward.X(), 0, forward.Z()}.Normalize()
	left := common.WorldUp.Cross(flat).Normalize()
	dir := mgl32.QuatRotate(limits.Clamp(angle), left).Rotate(flat)
	t.LookTo(dir, common.WorldUp)
}
