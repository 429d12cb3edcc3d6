package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Collector accumulates raw window events between frames and hands them out as a
// Snapshot once per frame. Event methods may be called from the window thread while
// Frame is called from the engine tick goroutine.
type Collector interface {
	// SetPrimarySurface marks the surface that "primary" render targets resolve to.
	//
	// Parameters:
	//   - surface: the primary surface
	SetPrimarySurface(surface SurfaceID)

	// CursorMoved records an absolute cursor position. The first position seen after
	// a reset only establishes the baseline; later positions accumulate deltas.
	//
	// Parameters:
	//   - x, y: cursor position in window pixels
	CursorMoved(x, y float64)

	// PointerMoved records a relative pointer motion (raw device units).
	//
	// Parameters:
	//   - dx, dy: motion since the last event
	PointerMoved(dx, dy float32)

	// Scrolled records a wheel event over surface.
	//
	// Parameters:
	//   - surface: the surface the cursor was over
	//   - delta: vertical scroll amount
	Scrolled(surface SurfaceID, delta float32)

	// KeyDown records a key press. Repeats of an already held key are ignored.
	//
	// Parameters:
	//   - key: the pressed key
	KeyDown(key common.Key)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - key: the released key
	KeyUp(key common.Key)

	// ResetCursor forgets the cursor baseline, e.g. after the cursor was warped or
	// re-captured, so the next CursorMoved does not produce a jump.
	ResetCursor()

	// Frame returns the input gathered since the previous call and starts a new frame.
	//
	// Parameters:
	//   - elapsed: seconds since the previous frame
	//
	// Returns:
	//   - Snapshot: the frame's input
	Frame(elapsed float32) Snapshot
}

type collectorImpl struct {
	mu *sync.Mutex

	primary    SurfaceID
	hasPrimary bool

	hasCursor bool
	lastX     float64
	lastY     float64

	pointer mgl32.Vec2
	scroll  []ScrollEvent

	held  map[common.Key]bool
	edges map[common.Key]bool
}

var _ Collector = &collectorImpl{}

// NewCollector creates an empty Collector with no primary surface.
//
// Returns:
//   - Collector: the new collector
func NewCollector() Collector {
	return &collectorImpl{
		mu:    &sync.Mutex{},
		held:  make(map[common.Key]bool),
		edges: make(map[common.Key]bool),
	}
}

func (c *collectorImpl) SetPrimarySurface(surface SurfaceID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.primary = surface
	c.hasPrimary = true
}

func (c *collectorImpl) CursorMoved(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hasCursor {
		c.pointer = c.pointer.Add(mgl32.Vec2{float32(x - c.lastX), float32(y - c.lastY)})
	}
	c.lastX, c.lastY = x, y
	c.hasCursor = true
}

func (c *collectorImpl) PointerMoved(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointer = c.pointer.Add(mgl32.Vec2{dx, dy})
}

func (c *collectorImpl) Scrolled(surface SurfaceID, delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scroll = append(c.scroll, ScrollEvent{Surface: surface, Delta: delta})
}

func (c *collectorImpl) KeyDown(key common.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.held[key] {
		return
	}
	c.held[key] = true
	c.edges[key] = true
}

func (c *collectorImpl) KeyUp(key common.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.held, key)
}

func (c *collectorImpl) ResetCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasCursor = false
}

func (c *collectorImpl) Frame(elapsed float32) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	pressed := make([]common.Key, 0, len(c.held))
	for k := range c.held {
		pressed = append(pressed, k)
	}
	justPressed := make([]common.Key, 0, len(c.edges))
	for k := range c.edges {
		justPressed = append(justPressed, k)
	}

	snap := Snapshot{
		PointerDelta:   c.pointer,
		Scroll:         c.scroll,
		Keys:           NewKeyState(pressed, justPressed),
		Elapsed:        elapsed,
		PrimarySurface: c.primary,
		HasPrimary:     c.hasPrimary,
	}

	c.pointer = mgl32.Vec2{}
	c.scroll = nil
	clear(c.edges)
	return snap
}
