package debugcam

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// PluginBuilderOption is a functional option for configuring a Plugin.
type PluginBuilderOption func(*plugin)

// NewPlugin creates a Plugin with DefaultOptions (no key bindings) and applies each
// option in order. Options that fail validation are a setup error and panic.
//
// Parameters:
//   - options: functional options to configure the plugin
//
// Returns:
//   - Plugin: the configured plugin
func NewPlugin(options ...PluginBuilderOption) Plugin {
	p := &plugin{
		options: DefaultOptions(),
		cameras: newCameraQuery(),
	}
	for _, option := range options {
		option(p)
	}
	if err := p.options.Validate(); err != nil {
		panic(fmt.Sprintf("debugcam: invalid options: %v", err))
	}
	if p.workers > 0 {
		p.pool = worker.NewDynamicWorkerPool(p.workers, 256, 1*time.Second)
	}
	return p
}

// NewPluginWithKeyBindings creates a Plugin starting from DefaultOptionsWithKeyBindings.
//
// Parameters:
//   - options: functional options applied after the default bindings
//
// Returns:
//   - Plugin: the configured plugin
func NewPluginWithKeyBindings(options ...PluginBuilderOption) Plugin {
	return NewPlugin(append([]PluginBuilderOption{WithOptions(DefaultOptionsWithKeyBindings())}, options...)...)
}

// WithOptions replaces the plugin's options. The plugin keeps its own copy.
//
// Parameters:
//   - o: the options to use
//
// Returns:
//   - PluginBuilderOption: option function to apply
func WithOptions(o *Options) PluginBuilderOption {
	return func(p *plugin) {
		p.options = o.Clone()
	}
}

// WithEnabledByDefault turns the global enable flag on at construction time.
//
// Returns:
//   - PluginBuilderOption: option function to apply
func WithEnabledByDefault() PluginBuilderOption {
	return func(p *plugin) {
		p.options.Enabled = true
	}
}

// EnableByDefault is an alias for WithEnabledByDefault.
var EnableByDefault = WithEnabledByDefault

// WithWorkers runs the per-camera routines on a pool of n goroutines. Values <= 0 keep
// the pass on the calling goroutine (default).
//
// Parameters:
//   - n: the number of workers
//
// Returns:
//   - PluginBuilderOption: option function to apply
func WithWorkers(n int) PluginBuilderOption {
	return func(p *plugin) {
		p.workers = max(n, 0)
	}
}
