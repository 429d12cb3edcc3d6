package main

import (
	"flag"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/Carmen-Shannon/oxy-debugcam/engine"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/components"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/config"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/debugcam"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/input"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/projection"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

func main() {
	configPath := flag.String("config", "", "YAML options file, reloaded on change")
	persist := flag.Bool("persist", false, "load and save options in the user data directory")
	workers := flag.Int("workers", 0, "worker goroutines for the camera pass (0 = serial)")
	profile := flag.Bool("profile", false, "log tick and camera pass statistics")
	flag.Parse()

	var store *config.Store
	if *persist {
		s, err := config.OpenStore("")
		if err != nil {
			log.Printf("Warning: persistence disabled: %v", err)
		} else {
			store = s
		}
	}

	options := loadOptions(*configPath, store)
	plugin := debugcam.NewPlugin(debugcam.WithOptions(options), debugcam.WithWorkers(*workers))

	// ── Engine + Window ─────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithProfiling(*profile),
		engine.WithTickRate(60),
		engine.WithPlugin(plugin),
		engine.WithWindow(window.NewWindow(
			window.WithTitle("oxy debug camera (click to capture, Esc to release)"),
			window.WithSize(1280, 720),
		)),
	)

	if *configPath != "" {
		w, err := config.Watch(*configPath, func(o *debugcam.Options) {
			if err := plugin.SetOptions(o); err != nil {
				log.Printf("Warning: %v", err)
				return
			}
			log.Printf("Reloaded options from %s", *configPath)
		}, func(err error) {
			log.Printf("Warning: options reload: %v", err)
		})
		if err != nil {
			log.Printf("Warning: not watching %s: %v", *configPath, err)
		} else {
			defer w.Close()
		}
	}

	// ── Scene ───────────────────────────────────────────────────────────
	var camera *donburi.Entry
	eng.Do(func(world donburi.World) {
		camera = components.SpawnCamera(world,
			*transform.New(transform.WithPosition(0, 2, 8), transform.WithLookAt(mgl32.Vec3{}, common.WorldUp)),
			projection.NewPerspective(mgl32.DegToRad(60), eng.Window().Aspect(), 0.01, 1000),
			components.PrimaryTarget(),
		)
		debugcam.Attach(camera, plugin.Options())

		for x := -2; x <= 2; x++ {
			components.SpawnObject(world, *transform.New(transform.WithPosition(float32(x)*3, 0, 0)))
		}
	})

	lastLog := time.Now()
	eng.SetTickCallback(func(world donburi.World, snap input.Snapshot) {
		if snap.Keys.JustPressed(common.KeyC) {
			cam := debugcam.Component.Get(camera)
			cam.Enabled = !cam.Enabled
			log.Printf("Debug camera enabled: %v", cam.Enabled)
		}
		if time.Since(lastLog) < time.Second {
			return
		}
		lastLog = time.Now()
		logCamera(camera)
	})

	eng.Run()

	if store != nil {
		if err := store.SaveOptions(plugin.Options()); err != nil {
			log.Printf("Warning: could not save options: %v", err)
		}
	}
}

// loadOptions picks the options file if one was given, then saved options, then the
// default WASD layout. The debug camera starts enabled.
func loadOptions(path string, store *config.Store) *debugcam.Options {
	if path != "" {
		o, err := config.Load(path)
		if err == nil {
			return o
		}
		log.Printf("Warning: %v, using defaults", err)
	}
	if store != nil {
		o, err := store.LoadOptions()
		if err != nil {
			log.Printf("Warning: %v, using defaults", err)
		} else if o != nil {
			return o
		}
	}
	o := debugcam.DefaultOptionsWithKeyBindings()
	o.Enabled = true
	return o
}

func logCamera(entry *donburi.Entry) {
	t := components.Transform.Get(entry)
	p := components.Projection.Get(entry)
	cam := debugcam.Component.Get(entry)
	pitch, _ := debugcam.Pitch(t)
	log.Printf("Camera pos=%.2v forward=%.2v pitch=%.1f° fov=%.1f° magnification=%.2f fast=%v",
		t.Translation, t.Forward(), mgl32.RadToDeg(pitch), mgl32.RadToDeg(p.Fov), cam.Magnification, cam.FastMovement())
}
