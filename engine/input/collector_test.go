package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCollectorPointer(t *testing.T) {
	c := NewCollector()

	// First absolute position only sets the baseline.
	c.CursorMoved(100, 100)
	c.CursorMoved(110, 95)
	c.PointerMoved(1, 1)

	snap := c.Frame(0.016)
	if snap.PointerDelta != (mgl32.Vec2{11, -4}) {
		t.Errorf("Expected delta (11, -4), got: %v", snap.PointerDelta)
	}
	if snap.Elapsed != 0.016 {
		t.Errorf("Expected elapsed 0.016, got: %f", snap.Elapsed)
	}

	snap = c.Frame(0.016)
	if snap.PointerDelta != (mgl32.Vec2{}) {
		t.Errorf("Delta should reset between frames, got: %v", snap.PointerDelta)
	}

	c.ResetCursor()
	c.CursorMoved(500, 500)
	snap = c.Frame(0.016)
	if snap.PointerDelta != (mgl32.Vec2{}) {
		t.Errorf("Reset cursor should not produce a jump, got: %v", snap.PointerDelta)
	}
}

func TestCollectorKeyEdges(t *testing.T) {
	c := NewCollector()

	c.KeyDown(common.KeyW)
	c.KeyDown(common.KeyW) // repeat
	snap := c.Frame(0.016)
	if !snap.Keys.Pressed(common.KeyW) || !snap.Keys.JustPressed(common.KeyW) {
		t.Fatal("W should be pressed and just pressed on the first frame")
	}

	c.KeyDown(common.KeyW) // repeat while held
	snap = c.Frame(0.016)
	if !snap.Keys.Pressed(common.KeyW) {
		t.Error("W should still be held")
	}
	if snap.Keys.JustPressed(common.KeyW) {
		t.Error("Holding W must not produce another edge")
	}

	c.KeyUp(common.KeyW)
	snap = c.Frame(0.016)
	if snap.Keys.Pressed(common.KeyW) {
		t.Error("W should be released")
	}

	// Tap inside a single frame still counts as a press.
	c.KeyDown(common.KeyLeftShift)
	c.KeyUp(common.KeyLeftShift)
	snap = c.Frame(0.016)
	if !snap.Keys.JustPressed(common.KeyLeftShift) || !snap.Keys.Pressed(common.KeyLeftShift) {
		t.Error("A tap within one frame should register as pressed and just pressed")
	}
}

func TestSnapshotScrollFor(t *testing.T) {
	c := NewCollector()
	c.SetPrimarySurface(1)
	c.Scrolled(1, 2)
	c.Scrolled(2, 5)
	c.Scrolled(1, -0.5)

	snap := c.Frame(0.016)
	if !snap.HasPrimary || snap.PrimarySurface != 1 {
		t.Fatalf("Expected primary surface 1, got: %d (%v)", snap.PrimarySurface, snap.HasPrimary)
	}

	testCases := map[string]struct {
		surface  SurfaceID
		expected float32
		found    bool
	}{
		"Primary": {surface: 1, expected: 1.5, found: true},
		"Other":   {surface: 2, expected: 5, found: true},
		"None":    {surface: 3, expected: 0, found: false},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			sum, found := snap.ScrollFor(tt.surface)
			if sum != tt.expected || found != tt.found {
				t.Errorf("Expected: (%f, %v), got: (%f, %v)", tt.expected, tt.found, sum, found)
			}
		})
	}

	snap = c.Frame(0.016)
	if len(snap.Scroll) != 0 {
		t.Errorf("Scroll events should reset between frames, got: %v", snap.Scroll)
	}
}
