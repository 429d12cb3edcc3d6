package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-debugcam/engine/debugcam"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/window"
	"github.com/yohamta/donburi"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithWorld sets the world the debug camera pass runs over.
//
// Parameters:
//   - world: a donburi world holding the cameras
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWorld(world donburi.World) EngineBuilderOption {
	return func(e *engine) {
		e.world = world
	}
}

// WithPlugin sets the debug camera plugin run every tick.
//
// Parameters:
//   - p: the plugin
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPlugin(p debugcam.Plugin) EngineBuilderOption {
	return func(e *engine) {
		e.plugin = p
	}
}
