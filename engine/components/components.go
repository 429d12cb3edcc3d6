package components

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-debugcam/engine/input"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/projection"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ErrNoPrimarySurface is returned when a primary render target is resolved while no
// primary surface exists.
var ErrNoPrimarySurface = errors.New("no primary surface to resolve render target against")

// RenderTargetData names the display surface a camera renders into. A primary target
// follows whichever surface is currently primary.
type RenderTargetData struct {
	// Primary makes the target follow the primary surface; Surface is ignored.
	Primary bool
	// Surface is the concrete surface when Primary is false.
	Surface input.SurfaceID
}

// PrimaryTarget returns a render target that follows the primary surface.
func PrimaryTarget() RenderTargetData {
	return RenderTargetData{Primary: true}
}

// SurfaceTarget returns a render target bound to one concrete surface.
func SurfaceTarget(surface input.SurfaceID) RenderTargetData {
	return RenderTargetData{Surface: surface}
}

// Resolve returns the concrete surface for this target.
//
// Parameters:
//   - snap: the frame input carrying the current primary surface
//
// Returns:
//   - input.SurfaceID: the concrete surface
//   - error: ErrNoPrimarySurface if the target is primary and none exists
func (r RenderTargetData) Resolve(snap *input.Snapshot) (input.SurfaceID, error) {
	if !r.Primary {
		return r.Surface, nil
	}
	if !snap.HasPrimary {
		return 0, ErrNoPrimarySurface
	}
	return snap.PrimarySurface, nil
}

var (
	Transform    = donburi.NewComponentType[transform.Transform]()
	Projection   = donburi.NewComponentType[projection.Projection]()
	RenderTarget = donburi.NewComponentType[RenderTargetData]()
)

// CameraFilter matches entities carrying everything a rendering camera needs.
func CameraFilter() filter.LayoutFilter {
	return filter.Contains(Transform, Projection, RenderTarget)
}

// ObjectFilter matches plain scene objects: a Transform without a Projection.
func ObjectFilter() filter.LayoutFilter {
	return filter.And(filter.Contains(Transform), filter.Not(filter.Contains(Projection)))
}
