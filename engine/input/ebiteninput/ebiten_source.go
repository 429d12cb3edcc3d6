package ebiteninput

import (
	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenKeys maps the module's key codes onto ebiten's.
var ebitenKeys = map[common.Key]ebiten.Key{
	common.KeyW:            ebiten.KeyW,
	common.KeyA:            ebiten.KeyA,
	common.KeyS:            ebiten.KeyS,
	common.KeyD:            ebiten.KeyD,
	common.KeyQ:            ebiten.KeyQ,
	common.KeyE:            ebiten.KeyE,
	common.KeyR:            ebiten.KeyR,
	common.KeyF:            ebiten.KeyF,
	common.KeyC:            ebiten.KeyC,
	common.KeyX:            ebiten.KeyX,
	common.KeyZ:            ebiten.KeyZ,
	common.KeySpace:        ebiten.KeySpace,
	common.KeyBackspace:    ebiten.KeyBackspace,
	common.KeyEsc:          ebiten.KeyEscape,
	common.KeyHome:         ebiten.KeyHome,
	common.KeyLeftShift:    ebiten.KeyShiftLeft,
	common.KeyLeftControl:  ebiten.KeyControlLeft,
	common.KeyRightShift:   ebiten.KeyShiftRight,
	common.KeyRightControl: ebiten.KeyControlRight,
}

// Source polls ebiten's input state once per Update and turns it into a Snapshot.
// Ebiten owns a single window, so every scroll event targets Surface, which is also
// reported as the primary surface.
type Source struct {
	// Surface is the id given to the ebiten window.
	Surface input.SurfaceID

	hasCursor bool
	lastX     int
	lastY     int
}

// NewSource creates a source for the ebiten window.
//
// Parameters:
//   - surface: the id to tag the window's scroll events with
//
// Returns:
//   - *Source: the new source
func NewSource(surface input.SurfaceID) *Source {
	return &Source{Surface: surface}
}

// Frame polls ebiten and returns this frame's input. Must be called from the game's
// Update method.
//
// Parameters:
//   - elapsed: seconds since the previous Update (typically 1/ebiten.TPS())
//
// Returns:
//   - input.Snapshot: the frame's input
func (s *Source) Frame(elapsed float32) input.Snapshot {
	snap := input.Snapshot{
		Elapsed:        elapsed,
		PrimarySurface: s.Surface,
		HasPrimary:     true,
	}

	x, y := ebiten.CursorPosition()
	if s.hasCursor {
		snap.PointerDelta = mgl32.Vec2{float32(x - s.lastX), float32(y - s.lastY)}
	}
	s.lastX, s.lastY = x, y
	s.hasCursor = true

	if _, dy := ebiten.Wheel(); dy != 0 {
		snap.Scroll = []input.ScrollEvent{{Surface: s.Surface, Delta: float32(dy)}}
	}

	var pressed, justPressed []common.Key
	for k, ek := range ebitenKeys {
		if inpututil.IsKeyJustPressed(ek) {
			justPressed = append(justPressed, k)
		} else if ebiten.IsKeyPressed(ek) {
			pressed = append(pressed, k)
		}
	}
	snap.Keys = input.NewKeyState(pressed, justPressed)

	return snap
}
