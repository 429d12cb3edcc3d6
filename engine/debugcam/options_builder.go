package debugcam

import (
	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// OptionsBuilderOption is a functional option for configuring Options.
type OptionsBuilderOption func(*Options)

// NewOptions creates Options from DefaultOptions and applies each option in order.
//
// Parameters:
//   - options: functional options to configure the camera options
//
// Returns:
//   - *Options: the configured options
func NewOptions(options ...OptionsBuilderOption) *Options {
	o := DefaultOptions()
	for _, option := range options {
		option(o)
	}
	return o
}

// WithEnabled sets the global enable flag.
//
// Parameters:
//   - enabled: true to run the debug camera routines
//
// Returns:
//   - OptionsBuilderOption: functional option to set the global switch
func WithEnabled(enabled bool) OptionsBuilderOption {
	return func(o *Options) {
		o.Enabled = enabled
	}
}

// WithRememberOriginalTransform sets whether attaching a camera snapshots its transform.
//
// Parameters:
//   - remember: true to snapshot the transform on attach
//
// Returns:
//   - OptionsBuilderOption: functional option to set origin snapshotting
func WithRememberOriginalTransform(remember bool) OptionsBuilderOption {
	return func(o *Options) {
		o.RememberOriginalTransform = remember
	}
}

// WithForceUp sets whether pointer rotation re-levels the camera's up vector.
//
// Parameters:
//   - force: true to keep up in the vertical plane
//
// Returns:
//   - OptionsBuilderOption: functional option to set up-vector stabilization
func WithForceUp(force bool) OptionsBuilderOption {
	return func(o *Options) {
		o.ForceUp = force
	}
}

// WithMovementSpeed sets the base movement speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - OptionsBuilderOption: functional option to set the base speed
func WithMovementSpeed(speed float32) OptionsBuilderOption {
	return func(o *Options) {
		o.MovementSpeed = speed
	}
}

// WithFastMovementSpeed sets the speed used while fast movement is active.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - OptionsBuilderOption: functional option to set the fast speed
func WithFastMovementSpeed(speed float32) OptionsBuilderOption {
	return func(o *Options) {
		o.FastMovementSpeed = speed
	}
}

// WithTurningSpeed sets the angular rate per unit of pointer motion.
//
// Parameters:
//   - x: radians per second per unit of horizontal motion (yaw)
//   - y: radians per second per unit of vertical motion (pitch)
//
// Returns:
//   - OptionsBuilderOption: functional option to set the turning speed
func WithTurningSpeed(x, y float32) OptionsBuilderOption {
	return func(o *Options) {
		o.TurningSpeed = mgl32.Vec2{x, y}
	}
}

// WithZoomIntensity sets how strongly scrolling changes magnification.
//
// Parameters:
//   - intensity: unitless rate
//
// Returns:
//   - OptionsBuilderOption: functional option to set the zoom intensity
func WithZoomIntensity(intensity float32) OptionsBuilderOption {
	return func(o *Options) {
		o.ZoomIntensity = intensity
	}
}

// WithZoomRange sets the inclusive magnification bounds.
//
// Parameters:
//   - min: smallest magnification, must be > 0
//   - max: largest magnification
//
// Returns:
//   - OptionsBuilderOption: functional option to set the zoom range
func WithZoomRange(min, max float32) OptionsBuilderOption {
	return func(o *Options) {
		o.ZoomRange = common.NewRange(min, max)
	}
}

// WithVerticalFov sets the inclusive signed pitch range in radians.
//
// Parameters:
//   - min: lowest allowed signed pitch
//   - max: highest allowed pitch
//
// Returns:
//   - OptionsBuilderOption: functional option to set the vertical clamp
func WithVerticalFov(min, max float32) OptionsBuilderOption {
	return func(o *Options) {
		r := common.NewRange(min, max)
		o.VerticalFov = &r
	}
}

// WithoutVerticalClamp disables the vertical look clamp.
//
// Returns:
//   - OptionsBuilderOption: functional option to disable the clamp
func WithoutVerticalClamp() OptionsBuilderOption {
	return func(o *Options) {
		o.VerticalFov = nil
	}
}

// WithKeyBindings replaces the key bindings.
//
// Parameters:
//   - bindings: the bindings to use
//
// Returns:
//   - OptionsBuilderOption: functional option to set the key bindings
func WithKeyBindings(bindings KeyBindings) OptionsBuilderOption {
	return func(o *Options) {
		o.Input.KeyBindings = bindings
	}
}

// WithStickyFastMovement sets toggle (true) or hold (false) semantics for the fast
// movement key.
//
// Parameters:
//   - sticky: true for toggle-on-press
//
// Returns:
//   - OptionsBuilderOption: functional option to set fast movement semantics
func WithStickyFastMovement(sticky bool) OptionsBuilderOption {
	return func(o *Options) {
		o.Input.StickyFastMovement = sticky
	}
}
