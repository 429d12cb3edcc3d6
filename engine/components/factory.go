package components

import (
	"github.com/Carmen-Shannon/oxy-debugcam/engine/projection"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/yohamta/donburi"
)

// SpawnCamera creates a camera entity carrying a Transform, a Projection and a
// RenderTarget, the components a host engine would give a regular camera.
//
// Parameters:
//   - world: the world to spawn into
//   - t: the initial transform
//   - p: the projection
//   - target: the surface the camera renders into
//
// Returns:
//   - *donburi.Entry: the new entity
func SpawnCamera(world donburi.World, t transform.Transform, p projection.Projection, target RenderTargetData) *donburi.Entry {
	entry := world.Entry(world.Create(Transform, Projection, RenderTarget))
	Transform.SetValue(entry, t)
	Projection.SetValue(entry, p)
	RenderTarget.SetValue(entry, target)
	return entry
}

// SpawnObject creates an entity with only a Transform.
//
// Parameters:
//   - world: the world to spawn into
//   - t: the initial transform
//
// Returns:
//   - *donburi.Entry: the new entity
func SpawnObject(world donburi.World, t transform.Transform) *donburi.Entry {
	entry := world.Entry(world.Create(Transform))
	Transform.SetValue(entry, t)
	return entry
}
