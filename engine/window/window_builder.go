package window

import "github.com/Carmen-Shannon/oxy-debugcam/engine/input"

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial window size.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
		w.height = height
	}
}

// WithSizeLimits sets the minimum and maximum window size enforced while resizing.
//
// Parameters:
//   - minWidth: minimum width in pixels
//   - minHeight: minimum height in pixels
//   - maxWidth: maximum width in pixels
//   - maxHeight: maximum height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth, w.minHeight = minWidth, minHeight
		w.maxWidth, w.maxHeight = maxWidth, maxHeight
	}
}

// WithSurface sets the id the window tags its scroll events with. Defaults to 1.
//
// Parameters:
//   - surface: the surface id
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSurface(surface input.SurfaceID) WindowBuilderOption {
	return func(w *engineWindow) {
		w.surface = surface
	}
}

// WithPrimary sets whether the window registers itself as the primary surface.
// Defaults to true.
//
// Parameters:
//   - primary: true to become the primary surface
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithPrimary(primary bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.primary = primary
	}
}

// WithCollector shares an input collector between windows. By default every window
// creates its own.
//
// Parameters:
//   - c: the collector to feed
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithCollector(c input.Collector) WindowBuilderOption {
	return func(w *engineWindow) {
		w.collector = c
	}
}

// WithCapturedCursor captures the cursor as soon as the window opens.
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithCapturedCursor() WindowBuilderOption {
	return func(w *engineWindow) {
		w.captureOnStart = true
	}
}
