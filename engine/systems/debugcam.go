package systems

import (
	"github.com/Carmen-Shannon/oxy-debugcam/engine/debugcam"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/input"
	"github.com/yohamta/donburi/ecs"
)

// FrameSource produces the input snapshot for the current frame.
type FrameSource func() input.Snapshot

// NewDebugCameraSystem returns an update system that runs one debug camera pass per
// ECS update. The pass already orders the vertical clamp after the other routines,
// so a single system covers both phases.
func NewDebugCameraSystem(p debugcam.Plugin, frame FrameSource, onPass func(cameras int)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		n := p.Update(e.World, frame())
		if onPass != nil {
			onPass(n)
		}
	}
}

// InstallDebugCamera registers the debug camera system on e.
func InstallDebugCamera(e *ecs.ECS, p debugcam.Plugin, frame FrameSource, onPass func(cameras int)) {
	e.AddSystem(NewDebugCameraSystem(p, frame, onPass))
}
