package debugcam

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/components"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/input"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/projection"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// plugin implements the Plugin interface.
type plugin struct {
	mu      sync.Mutex
	options *Options
	pending *Options

	workers int
	pool    worker.DynamicWorkerPool

	cameras *donburi.Query
}

// Plugin runs the debug camera routines over every marked entity of a world.
type Plugin interface {
	// Options returns the options used by the current pass. Callers must not mutate
	// them; use SetOptions to change settings.
	//
	// Returns:
	//   - *Options: the live options
	Options() *Options

	// SetOptions queues a replacement that takes effect at the start of the next pass.
	// Invalid options are rejected and the current ones are kept.
	//
	// Parameters:
	//   - o: the new options
	//
	// Returns:
	//   - error: the validation error, if any
	SetOptions(o *Options) error

	// Update runs one pass: rotation, zoom and translation for every enabled camera,
	// followed by the vertical clamp once all of them are done.
	//
	// Parameters:
	//   - world: the world holding the cameras
	//   - snap: the frame's input
	//
	// Returns:
	//   - int: the number of cameras updated
	Update(world donburi.World, snap input.Snapshot) int
}

var _ Plugin = &plugin{}

// cameraJob is everything the per-camera routines touch, collected up front so the
// pre-phase can run on worker goroutines without touching the world.
type cameraJob struct {
	cam        *DebugCamera
	transform  *transform.Transform
	projection *projection.Projection
	scroll     float32
	scrolled   bool
}

func (p *plugin) Options() *Options {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.options
}

func (p *plugin) SetOptions(o *Options) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("debugcam: rejected options: %w", err)
	}
	p.mu.Lock()
	p.pending = o.Clone()
	p.mu.Unlock()
	return nil
}

func (p *plugin) Update(world donburi.World, snap input.Snapshot) int {
	p.mu.Lock()
	if p.pending != nil {
		p.options = p.pending
		p.pending = nil
	}
	o := p.options
	p.mu.Unlock()

	if !o.Enabled {
		return 0
	}

	jobs := p.collect(world, o, &snap)
	if len(jobs) == 0 {
		return 0
	}

	if p.workers > 0 && len(jobs) > 1 {
		var wg sync.WaitGroup
		for i := range jobs {
			wg.Add(1)
			job := &jobs[i]
			p.pool.SubmitTask(worker.Task{
				ID: i,
				Do: func() (any, error) {
					defer wg.Done()
					step(o, job, &snap)
					return nil, nil
				},
			})
		}
		wg.Wait()
	} else {
		for i := range jobs {
			step(o, &jobs[i], &snap)
		}
	}

	if o.VerticalFov != nil {
		for i := range jobs {
			job := &jobs[i]
			if job.transform != nil && job.projection != nil {
				clampPitch(*o.VerticalFov, job.transform)
			}
		}
	}
	return len(jobs)
}

// collect gathers the enabled cameras of world. Reset requests and render target
// resolution happen here on the calling goroutine, so a missing primary surface
// panics before any routine runs.
func (p *plugin) collect(world donburi.World, o *Options, snap *input.Snapshot) []cameraJob {
	reset := o.Input.KeyBindings.Reset != nil && snap.Keys.JustPressed(*o.Input.KeyBindings.Reset)

	var jobs []cameraJob
	p.cameras.Each(world, func(entry *donburi.Entry) {
		cam := Component.Get(entry)
		if !cam.Enabled {
			return
		}

		job := cameraJob{cam: cam}
		if entry.HasComponent(components.Transform) {
			job.transform = components.Transform.Get(entry)
		}
		if entry.HasComponent(components.Projection) {
			job.projection = components.Projection.Get(entry)
		}
		if job.projection != nil && entry.HasComponent(components.RenderTarget) {
			surface, err := components.RenderTarget.Get(entry).Resolve(snap)
			if err != nil {
				panic(fmt.Sprintf("debugcam: %v", err))
			}
			job.scroll, job.scrolled = snap.ScrollFor(surface)
		}
		if reset && job.transform != nil {
			cam.resetToOrigin(entry)
		}
		jobs = append(jobs, job)
	})
	return jobs
}

// step runs the pre-clamp routines for one camera.
func step(o *Options, job *cameraJob, snap *input.Snapshot) {
	if job.transform != nil {
		rotate(o, job.transform, snap.PointerDelta, snap.Elapsed)
		translate(o, job.cam, job.transform, snap.Keys, snap.Elapsed)
	}
	if job.scrolled {
		zoom(o, job.cam, job.projection, job.scroll)
	}
}

// newCameraQuery matches every entity carrying the debug camera marker.
func newCameraQuery() *donburi.Query {
	return donburi.NewQuery(filter.Contains(Component))
}
