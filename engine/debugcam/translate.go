package debugcam

import (
	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/input"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// fastSpeed reports whether the fast movement speed applies this frame and, in sticky
// mode, flips the camera's toggle on the press edge of the fast movement key.
func fastSpeed(o *Options, cam *DebugCamera, keys input.KeyState) bool {
	key := o.Input.KeyBindings.FastMovement
	if key == nil {
		return cam.fastMovement && o.Input.StickyFastMovement
	}
	if !o.Input.StickyFastMovement {
		return keys.Pressed(*key)
	}
	if keys.JustPressed(*key) {
		cam.fastMovement = !cam.fastMovement
	}
	return cam.fastMovement
}

// translate moves t along every bound direction whose key is held.
func translate(o *Options, cam *DebugCamera, t *transform.Transform, keys input.KeyState, elapsed float32) {
	speed := o.MovementSpeed
	if fastSpeed(o, cam, keys) {
		speed = o.FastMovementSpeed
	}

	kb := &o.Input.KeyBindings
	directions := []struct {
		key *common.Key
		dir mgl32.Vec3
	}{
		{kb.Forward, t.Forward()},
		{kb.Back, t.Back()},
		{kb.Left, t.Left()},
		{kb.Right, t.Right()},
		{kb.Up, t.Up()},
		{kb.Down, t.Down()},
		{kb.GlobalUp, common.WorldUp},
		{kb.GlobalDown, common.WorldUp.Mul(-1)},
	}

	var sum mgl32.Vec3
	moved := false
	for _, d := range directions {
		if d.key == nil || !keys.Pressed(*d.key) {
			continue
		}
		sum = sum.Add(d.dir.Mul(speed * elapsed))
		moved = true
	}
	if moved {
		t.Translate(sum)
	}
}
