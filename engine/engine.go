package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-debugcam/engine/components"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/debugcam"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/input"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/window"
	"github.com/yohamta/donburi"
)

// engine implements the Engine interface.
// Coordinates the tick goroutine with the window's message loop.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	// worldMu guards world against the tick goroutine and window callbacks.
	worldMu sync.Mutex
	world   donburi.World
	plugin  debugcam.Plugin

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(world donburi.World, snap input.Snapshot)
}

// Engine is the main entry point for the engine.
// It runs the debug camera pass at a fixed tick rate over a donburi world, fed by
// the window's input.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Plugin returns the debug camera plugin run every tick.
	//
	// Returns:
	//   - debugcam.Plugin: the plugin
	Plugin() debugcam.Plugin

	// Do runs fn with exclusive access to the world. Use it for any world access
	// outside the tick callback.
	//
	// Parameters:
	//   - fn: function receiving the world
	Do(fn func(world donburi.World))

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called after each debug camera pass,
	// with the world still locked.
	//
	// Parameters:
	//   - callback: function receiving the world and the tick's input snapshot
	SetTickCallback(callback func(world donburi.World, snap input.Snapshot))

	// Run starts the engine loop (blocks until window closes).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Without WithWindow a default window is opened; without WithWorld a new world is
// created; without WithPlugin a plugin with DefaultOptionsWithKeyBindings is used.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(time.Second),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		e.window = window.NewWindow()
	}
	if e.world == nil {
		e.world = donburi.NewWorld()
	}
	if e.plugin == nil {
		e.plugin = debugcam.NewPluginWithKeyBindings()
	}

	e.window.SetResizeCallback(func(width, height int) {
		if height == 0 {
			return
		}
		e.Do(func(world donburi.World) {
			resizeCameras(world, e.window, float32(width)/float32(height))
		})
	})

	return e
}

// resizeCameras updates the aspect ratio of every camera rendering into w.
func resizeCameras(world donburi.World, w window.Window, aspect float32) {
	donburi.NewQuery(components.CameraFilter()).Each(world, func(entry *donburi.Entry) {
		target := components.RenderTarget.Get(entry)
		if target.Primary || target.Surface == w.Surface() {
			components.Projection.Get(entry).Aspect = aspect
		}
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Plugin() debugcam.Plugin {
	return e.plugin
}

func (e *engine) Do(fn func(world donburi.World)) {
	e.worldMu.Lock()
	defer e.worldMu.Unlock()
	fn(e.world)
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick goroutine, tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(1)
	go e.handleEngine()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Each tick drains the window's input into a snapshot and runs one debug camera pass.
// Listens for dynamic rate changes via tickRateChannel and exits when the quit channel
// is closed. A panic in the pass is logged and shuts the engine down.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// tick runs one debug camera pass and the user callback under the world lock.
func (e *engine) tick(dt float32) {
	snap := e.window.Collector().Frame(dt)

	e.worldMu.Lock()
	defer e.worldMu.Unlock()

	start := time.Now()
	cameras := e.plugin.Update(e.world, snap)
	pass := time.Since(start)

	if e.tickCallback != nil {
		e.tickCallback(e.world, snap)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.RecordPass(pass, cameras)
		e.profiler.Tick()
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Non-blocking send; replace a pending value if the channel is full.
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(world donburi.World, snap input.Snapshot)) {
	e.tickCallback = callback
}
