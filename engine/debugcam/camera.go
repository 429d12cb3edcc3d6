package debugcam

import (
	"github.com/Carmen-Shannon/oxy-debugcam/engine/components"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/projection"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// DebugCamera marks an entity as driven by the debug camera routines and holds the
// per-camera state they keep between frames.
type DebugCamera struct {
	// Enabled switches this camera on or off. Only effective while Options.Enabled is set.
	Enabled bool

	// Anchor is an optional focus point. Reserved; no routine reads it.
	Anchor *mgl32.Vec3

	// Origin is the transform the entity had when the marker was attached, if
	// Options.RememberOriginalTransform was set. Only applied by an explicit reset.
	Origin *transform.Transform

	// Magnification is the accumulated zoom factor. Starts at 1 and stays inside
	// Options.ZoomRange after every zoom update.
	Magnification float32

	// fastMovement is the sticky fast movement toggle.
	fastMovement bool

	// originProjection is the projection at attach time, kept alongside Origin.
	originProjection *projection.Projection
}

// Component is the donburi component type for DebugCamera.
var Component = donburi.NewComponentType[DebugCamera]()

// New creates a camera marker. When options.RememberOriginalTransform is set, t is
// required and is copied into Origin; a nil t is a programming error and panics.
//
// Parameters:
//   - options: the shared options
//   - t: the entity's current transform (may be nil when origins are not remembered)
//
// Returns:
//   - DebugCamera: the initialized marker
func New(options *Options, t *transform.Transform) DebugCamera {
	cam := DebugCamera{
		Enabled:       true,
		Magnification: 1,
	}
	if options.RememberOriginalTransform {
		if t == nil {
			panic("debugcam: remembering the original transform requires a transform")
		}
		origin := *t
		cam.Origin = &origin
	}
	return cam
}

// Attach adds a DebugCamera to entry. When options.RememberOriginalTransform is set the
// entry must already carry a Transform; otherwise Attach panics without touching the entry.
//
// Parameters:
//   - entry: the entity to mark
//   - options: the shared options
//
// Returns:
//   - *DebugCamera: the attached marker
func Attach(entry *donburi.Entry, options *Options) *DebugCamera {
	var t *transform.Transform
	if entry.HasComponent(components.Transform) {
		t = components.Transform.Get(entry)
	} else if options.RememberOriginalTransform {
		panic("debugcam: attached DebugCamera to an entity without a Transform")
	}

	cam := New(options, t)
	if cam.Origin != nil && entry.HasComponent(components.Projection) {
		p := *components.Projection.Get(entry)
		cam.originProjection = &p
	}
	donburi.Add(entry, Component, &cam)
	return Component.Get(entry)
}

// FastMovement reports whether the sticky fast movement toggle is on.
func (c *DebugCamera) FastMovement() bool {
	return c.fastMovement
}

// resetToOrigin restores the remembered transform and undoes any zoom. No-op without
// an origin. Fov and Scale come back from the attach-time projection when one was kept.
func (c *DebugCamera) resetToOrigin(entry *donburi.Entry) {
	if c.Origin == nil {
		return
	}
	*components.Transform.Get(entry) = *c.Origin
	if entry.HasComponent(components.Projection) {
		p := components.Projection.Get(entry)
		switch {
		case c.originProjection != nil:
			p.Fov = c.originProjection.Fov
			p.Scale = c.originProjection.Scale
		case c.Magnification != 0:
			p.Magnify(1 / c.Magnification)
		}
	}
	c.Magnification = 1
	c.fastMovement = false
}
