package debugcam

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNonPositiveSpeed     = errors.New("movement speeds must be positive")
	ErrInvalidZoomRange     = errors.New("zoom range must satisfy 0 < min <= max")
	ErrInvalidVerticalRange = errors.New("vertical fov range must satisfy -pi/2 < min <= max < pi/2")
)

// KeyBindings assigns an optional key to each logical camera action.
// A nil binding makes that action unreachable from the keyboard.
type KeyBindings struct {
	Forward      *common.Key `yaml:"forward,omitempty"`
	Back         *common.Key `yaml:"back,omitempty"`
	Left         *common.Key `yaml:"left,omitempty"`
	Right        *common.Key `yaml:"right,omitempty"`
	Up           *common.Key `yaml:"up,omitempty"`
	Down         *common.Key `yaml:"down,omitempty"`
	GlobalUp     *common.Key `yaml:"global_up,omitempty"`
	GlobalDown   *common.Key `yaml:"global_down,omitempty"`
	FastMovement *common.Key `yaml:"fast_movement,omitempty"`

	// Reset restores a camera's remembered origin. Unbound in both default layouts.
	Reset *common.Key `yaml:"reset,omitempty"`
}

// EmptyKeyBindings returns bindings with every action unbound, for callers that
// drive the camera with their own input scheme.
func EmptyKeyBindings() KeyBindings {
	return KeyBindings{}
}

// DefaultKeyBindings returns the conventional WASD layout: W/S/A/D move along the
// camera's own axes, Q/E move along its up axis, R/F move along the world up axis
// and left shift selects the fast movement speed.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward:      bind(common.KeyW),
		Back:         bind(common.KeyS),
		Left:         bind(common.KeyA),
		Right:        bind(common.KeyD),
		Up:           bind(common.KeyQ),
		Down:         bind(common.KeyE),
		GlobalUp:     bind(common.KeyR),
		GlobalDown:   bind(common.KeyF),
		FastMovement: bind(common.KeyLeftShift),
	}
}

func bind(k common.Key) *common.Key {
	return &k
}

// InputOptions groups everything about how keyboard input is interpreted.
type InputOptions struct {
	// KeyBindings maps actions to keys.
	KeyBindings KeyBindings `yaml:"key_bindings"`

	// StickyFastMovement makes the fast movement key a toggle (one press on, next
	// press off) instead of hold-to-activate.
	StickyFastMovement bool `yaml:"sticky_fast_movement"`
}

// Options is the shared configuration read by every debug camera routine.
// Routines never modify it; changes made by the owner apply from the next frame on.
type Options struct {
	// Enabled turns the debug camera on globally. Individual cameras can still be
	// disabled while this is on, but not the other way around. Defaults to false.
	Enabled bool `yaml:"enabled"`

	// RememberOriginalTransform snapshots a camera's transform when the marker is
	// attached. Defaults to true.
	RememberOriginalTransform bool `yaml:"remember_original_transform"`

	// ForceUp keeps the camera's up vector inside the vertical plane containing its
	// forward direction after each pointer rotation. Defaults to true.
	ForceUp bool `yaml:"force_up"`

	// MovementSpeed in world units per second. Defaults to 2.
	MovementSpeed float32 `yaml:"movement_speed"`

	// FastMovementSpeed in world units per second. Defaults to 3.
	FastMovementSpeed float32 `yaml:"fast_movement_speed"`

	// TurningSpeed is the angle in radians turned per second per unit of pointer
	// motion, one component per pointer axis. The sign controls the direction.
	// Defaults to -τ/60 on both axes.
	TurningSpeed mgl32.Vec2 `yaml:"turning_speed,flow"`

	// ZoomIntensity scales scroll input into magnification. Defaults to 2.
	ZoomIntensity float32 `yaml:"zoom_intensity"`

	// ZoomRange bounds the magnification. Min must be strictly positive.
	// Defaults to [0.1, 100].
	ZoomRange common.Range `yaml:"zoom_range"`

	// VerticalFov is the range of signed pitch angles in radians the camera may
	// look at, zero being level. Nil disables the clamp. Defaults to [-π/4, π/4].
	VerticalFov *common.Range `yaml:"vertical_fov,omitempty"`

	// Input configures key bindings and fast movement behaviour.
	Input InputOptions `yaml:"input"`
}

// DefaultOptions returns the default options with no key bindings.
//
// Returns:
//   - *Options: the default options
func DefaultOptions() *Options {
	vertical := common.NewRange(-math.Pi/4, math.Pi/4)
	return &Options{
		Enabled:                   false,
		RememberOriginalTransform: true,
		ForceUp:                   true,
		MovementSpeed:             2.0,
		FastMovementSpeed:         3.0,
		TurningSpeed:              mgl32.Vec2{-2 * math.Pi / 60, -2 * math.Pi / 60},
		ZoomIntensity:             2.0,
		ZoomRange:                 common.NewRange(0.1, 100),
		VerticalFov:               &vertical,
		Input: InputOptions{
			KeyBindings:        EmptyKeyBindings(),
			StickyFastMovement: false,
		},
	}
}

// DefaultOptionsWithKeyBindings returns the default options with the WASD layout
// from DefaultKeyBindings.
//
// Returns:
//   - *Options: the default options with key bindings
func DefaultOptionsWithKeyBindings() *Options {
	o := DefaultOptions()
	o.Input.KeyBindings = DefaultKeyBindings()
	return o
}

// Validate checks the invariants the routines rely on.
//
// Returns:
//   - error: the first violated invariant, or nil
func (o *Options) Validate() error {
	if o.MovementSpeed <= 0 || o.FastMovementSpeed <= 0 {
		return fmt.Errorf("%w: movement %g, fast %g", ErrNonPositiveSpeed, o.MovementSpeed, o.FastMovementSpeed)
	}
	if o.ZoomRange.Min <= 0 || !o.ZoomRange.Valid() {
		return fmt.Errorf("%w: got %v", ErrInvalidZoomRange, o.ZoomRange)
	}
	if o.VerticalFov != nil {
		r := *o.VerticalFov
		if !r.Valid() || r.Min <= -math.Pi/2 || r.Max >= math.Pi/2 {
			return fmt.Errorf("%w: got %v", ErrInvalidVerticalRange, r)
		}
	}
	return nil
}

// Clone returns a deep copy so the copy can be edited without affecting a running pass.
//
// Returns:
//   - *Options: the copy
func (o *Options) Clone() *Options {
	c := *o
	if o.VerticalFov != nil {
		r := *o.VerticalFov
		c.VerticalFov = &r
	}
	kb := &c.Input.KeyBindings
	for _, k := range []**common.Key{
		&kb.Forward, &kb.Back, &kb.Left, &kb.Right, &kb.Up, &kb.Down,
		&kb.GlobalUp, &kb.GlobalDown, &kb.FastMovement, &kb.Reset,
	} {
		if *k != nil {
			*k = bind(**k)
		}
	}
	return &c
}
