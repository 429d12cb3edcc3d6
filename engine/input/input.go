package input

import (
	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceID identifies a display surface (window) that input events can target.
type SurfaceID uint32

// ScrollEvent is one wheel event tagged with the surface it happened over.
type ScrollEvent struct {
	// Surface is the window the cursor was over when the wheel moved.
	Surface SurfaceID
	// Delta is the vertical scroll amount (positive = away from the user).
	Delta float32
}

// KeyState is the keyboard state for one frame.
type KeyState struct {
	pressed     map[common.Key]bool
	justPressed map[common.Key]bool
}

// NewKeyState builds a KeyState from the held keys and the keys whose press edge
// happened this frame. Every just-pressed key is also considered held.
//
// Parameters:
//   - pressed: keys currently held
//   - justPressed: keys that went down since the previous frame
//
// Returns:
//   - KeyState: the frame's key state
func NewKeyState(pressed, justPressed []common.Key) KeyState {
	ks := KeyState{
		pressed:     make(map[common.Key]bool, len(pressed)+len(justPressed)),
		justPressed: make(map[common.Key]bool, len(justPressed)),
	}
	for _, k := range pressed {
		ks.pressed[k] = true
	}
	for _, k := range justPressed {
		ks.pressed[k] = true
		ks.justPressed[k] = true
	}
	return ks
}

// Pressed reports whether k is held this frame.
func (ks KeyState) Pressed(k common.Key) bool {
	return ks.pressed[k]
}

// JustPressed reports whether k went down this frame.
func (ks KeyState) JustPressed(k common.Key) bool {
	return ks.justPressed[k]
}

// Snapshot is the read-only input for one frame.
type Snapshot struct {
	// PointerDelta is the summed pointer motion since the previous frame.
	PointerDelta mgl32.Vec2

	// Scroll holds every wheel event since the previous frame.
	Scroll []ScrollEvent

	// Keys is the keyboard state.
	Keys KeyState

	// Elapsed is the wall time since the previous frame, in seconds.
	Elapsed float32

	// PrimarySurface is the surface that "primary" render targets resolve to.
	// Only meaningful when HasPrimary is true.
	PrimarySurface SurfaceID

	// HasPrimary reports whether a primary surface exists.
	HasPrimary bool
}

// ScrollFor sums the wheel deltas of the events that targeted surface.
//
// Parameters:
//   - surface: the surface to filter on
//
// Returns:
//   - float32: the summed delta
//   - bool: true if at least one event targeted the surface
func (s *Snapshot) ScrollFor(surface SurfaceID) (float32, bool) {
	var sum float32
	found := false
	for _, ev := range s.Scroll {
		if ev.Surface != surface {
			continue
		}
		sum += ev.Delta
		found = true
	}
	return sum, found
}
