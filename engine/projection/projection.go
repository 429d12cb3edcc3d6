package projection

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Kind tags which numeric zoom representation a Projection carries.
type Kind int

const (
	// KindPerspective projections zoom by changing their vertical field of view.
	KindPerspective Kind = iota
	// KindOrthographic projections zoom by changing their scale.
	KindOrthographic
)

func (k Kind) String() string {
	switch k {
	case KindPerspective:
		return "perspective"
	case KindOrthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Hard limits on the perspective field of view, independent of any zoom range.
var (
	MinFov = mgl32.DegToRad(1)
	MaxFov = mgl32.DegToRad(180)
)

// Projection is a camera projection: either a perspective field of view or an
// orthographic scale, dispatched on Kind.
type Projection struct {
	// Kind selects which of Fov or Scale is meaningful.
	Kind Kind

	// Fov is the vertical field of view in radians (KindPerspective).
	Fov float32

	// Scale multiplies the orthographic view volume (KindOrthographic).
	Scale float32

	// Aspect is the viewport aspect ratio (width / height).
	Aspect float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32
}

// NewPerspective creates a perspective projection.
//
// Parameters:
//   - fov: vertical field of view in radians
//   - aspect: viewport aspect ratio (width / height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - Projection: the perspective projection
func NewPerspective(fov, aspect, near, far float32) Projection {
	return Projection{
		Kind:   KindPerspective,
		Fov:    fov,
		Scale:  1,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// NewOrthographic creates an orthographic projection.
//
// Parameters:
//   - scale: size multiplier of the view volume
//   - aspect: viewport aspect ratio (width / height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - Projection: the orthographic projection
func NewOrthographic(scale, aspect, near, far float32) Projection {
	return Projection{
		Kind:   KindOrthographic,
		Fov:    float32(math.Pi / 4),
		Scale:  scale,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// Magnify applies a relative zoom factor. Perspective projections multiply the
// field of view and clamp it into [MinFov, MaxFov]; orthographic projections
// multiply the scale with no further clamp.
//
// Parameters:
//   - factor: ratio of new magnification to old magnification
func (p *Projection) Magnify(factor float32) {
	switch p.Kind {
	case KindPerspective:
		p.Fov = common.Clampf(p.Fov*factor, MinFov, MaxFov)
	case KindOrthographic:
		p.Scale *= factor
	}
}

// Matrix returns the projection matrix for the current parameters.
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func (p *Projection) Matrix() mgl32.Mat4 {
	switch p.Kind {
	case KindOrthographic:
		halfH := p.Scale
		halfW := halfH * p.Aspect
		return mgl32.Ortho(-halfW, halfW, -halfH, halfH, p.Near, p.Far)
	default:
		return mgl32.Perspective(p.Fov, p.Aspect, p.Near, p.Far)
	}
}
