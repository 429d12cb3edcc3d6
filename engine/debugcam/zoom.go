package debugcam

import (
	"github.com/Carmen-Shannon/oxy-debugcam/engine/projection"
)

// zoom applies one frame of summed scroll input to a camera. Magnification is clamped
// into the zoom range and the projection is scaled by the relative change.
func zoom(o *Options, cam *DebugCamera, p *projection.Projection, scroll float32) {
	delta := -scroll * o.ZoomIntensity / 100
	next := o.ZoomRange.Clamp(cam.Magnification + delta)
	if cam.Magnification <= 0 {
		// Only reachable with a hand-built marker; restart from the range minimum.
		cam.Magnification = o.ZoomRange.Min
	}
	if next == cam.Magnification {
		return
	}
	factor := next / cam.Magnification

	p.Magnify(factor)
	cam.Magnification = next
}
