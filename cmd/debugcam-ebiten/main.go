package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/components"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/config"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/debugcam"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/input"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/input/ebiteninput"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/projection"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/systems"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	surface      = input.SurfaceID(1)
)

var markerColor = color.RGBA{R: 0xe0, G: 0x90, B: 0x30, A: 0xff}

type Game struct {
	ecs     *ecs.ECS
	plugin  debugcam.Plugin
	source  *ebiteninput.Source
	camera  *donburi.Entry
	cameras int
}

func NewGame(plugin debugcam.Plugin) *Game {
	g := &Game{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		plugin: plugin,
		source: ebiteninput.NewSource(surface),
	}

	g.camera = components.SpawnCamera(g.ecs.World,
		*transform.New(transform.WithPosition(0, 3, 12), transform.WithLookAt(mgl32.Vec3{}, common.WorldUp)),
		projection.NewPerspective(mgl32.DegToRad(60), float32(screenWidth)/screenHeight, 0.1, 500),
		components.PrimaryTarget(),
	)
	debugcam.Attach(g.camera, plugin.Options())

	for x := -5; x <= 5; x++ {
		for z := -5; z <= 5; z++ {
			components.SpawnObject(g.ecs.World, *transform.New(transform.WithPosition(float32(x)*2, 0, float32(z)*2)))
		}
	}

	systems.InstallDebugCamera(g.ecs, plugin, func() input.Snapshot {
		return g.source.Frame(1 / float32(ebiten.TPS()))
	}, func(n int) { g.cameras = n })
	return g
}

func (g *Game) Update() error {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) && ebiten.CursorMode() == ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	g.ecs.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	t := components.Transform.Get(g.camera)
	p := components.Projection.Get(g.camera)
	viewProj := p.Matrix().Mul4(t.ViewMatrix())
	frustum := common.NewFrustum(viewProj)

	donburi.NewQuery(components.ObjectFilter()).Each(g.ecs.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Translation
		if !frustum.ContainsSphere(pos, 0.5) {
			return
		}
		clip := viewProj.Mul4x1(pos.Vec4(1))
		if clip.W() <= 0 {
			return
		}
		ndc := clip.Vec3().Mul(1 / clip.W())
		sx := (ndc.X() + 1) / 2 * screenWidth
		sy := (1 - ndc.Y()) / 2 * screenHeight
		size := common.Clampf(40/clip.W(), 2, 24)
		vector.DrawFilledRect(screen, sx-size/2, sy-size/2, size, size, markerColor, false)
	})

	cam := debugcam.Component.Get(g.camera)
	pitch, _ := debugcam.Pitch(t)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"click to capture, Esc to release\npos %.2v\npitch %.1f°  fov %.1f°  magnification %.2f\nfast %v  cameras %d  TPS %.0f",
		t.Translation, mgl32.RadToDeg(pitch), mgl32.RadToDeg(p.Fov), cam.Magnification, cam.FastMovement(), g.cameras, ebiten.ActualTPS()))
}

func (g *Game) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML options file")
	persist := flag.Bool("persist", false, "load and save options in the user data directory")
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

	options := debugcam.DefaultOptionsWithKeyBindings()
	if *configPath != "" {
		o, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		options = o
	} else if store != nil {
		if o, err := store.LoadOptions(); err != nil {
			log.Printf("Warning: %v, using defaults", err)
		} else if o != nil {
			options = o
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("oxy debug camera")

	game := NewGame(debugcam.NewPlugin(debugcam.WithOptions(options), debugcam.EnableByDefault()))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	if store != nil {
		if err := store.SaveOptions(game.plugin.Options()); err != nil {
			log.Printf("Warning: could not save options: %v", err)
		}
	}
}
