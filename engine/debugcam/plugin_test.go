package debugcam

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-debugcam/common"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/components"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/input"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/projection"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

const surface input.SurfaceID = 1

func spawn(world donburi.World, o *Options, tr transform.Transform) *donburi.Entry {
	entry := components.SpawnCamera(world, tr, projection.NewPerspective(mgl32.DegToRad(60), 16.0/9, 0.1, 100), components.PrimaryTarget())
	Attach(entry, o)
	return entry
}

func frame(keys ...common.Key) input.Snapshot {
	return input.Snapshot{
		Keys:           input.NewKeyState(keys, nil),
		Elapsed:        1.0 / 60,
		PrimarySurface: surface,
		HasPrimary:     true,
	}
}

func TestIdleFrames(t *testing.T) {
	world := donburi.NewWorld()
	p := NewPluginWithKeyBindings(WithEnabledByDefault())
	entry := spawn(world, p.Options(), *transform.New(transform.WithPosition(1, 2, 3)))

	tr := *components.Transform.Get(entry)
	proj := *components.Projection.Get(entry)
	mag := Component.Get(entry).Magnification

	for i := 0; i < 10; i++ {
		if n := p.Update(world, frame()); n != 1 {
			t.Fatalf("Expected 1 camera updated, got: %d", n)
		}
	}

	if got := *components.Transform.Get(entry); got != tr {
		t.Errorf("Expected transform %v, got: %v", tr, got)
	}
	if got := *components.Projection.Get(entry); got != proj {
		t.Errorf("Expected projection %v, got: %v", proj, got)
	}
	if got := Component.Get(entry).Magnification; got != mag {
		t.Errorf("Expected magnification %v, got: %v", mag, got)
	}
}

func TestGlobalSwitch(t *testing.T) {
	world := donburi.NewWorld()
	p := NewPluginWithKeyBindings()
	entry := spawn(world, p.Options(), transform.Identity())

	if n := p.Update(world, frame(common.KeyW)); n != 0 {
		t.Fatalf("Expected no cameras updated while disabled, got: %d", n)
	}
	if got := components.Transform.Get(entry).Translation; got != (mgl32.Vec3{}) {
		t.Errorf("Expected no movement while disabled, got: %v", got)
	}
}

func TestPerCameraSwitch(t *testing.T) {
	world := donburi.NewWorld()
	p := NewPluginWithKeyBindings(EnableByDefault())
	on := spawn(world, p.Options(), transform.Identity())
	off := spawn(world, p.Options(), transform.Identity())
	Component.Get(off).Enabled = false

	p.Update(world, frame(common.KeyD))

	if got := components.Transform.Get(on).Translation.X(); got <= 0 {
		t.Errorf("Expected enabled camera to move right, got x=%v", got)
	}
	if got := components.Transform.Get(off).Translation; got != (mgl32.Vec3{}) {
		t.Errorf("Expected disabled camera untouched, got: %v", got)
	}
}

func TestScrollTargetsOwnSurface(t *testing.T) {
	world := donburi.NewWorld()
	p := NewPlugin(WithEnabledByDefault())
	primary := spawn(world, p.Options(), transform.Identity())

	other := components.SpawnCamera(world, transform.Identity(), projection.NewOrthographic(1, 1, 0.1, 100), components.SurfaceTarget(2))
	Attach(other, p.Options())
	otherBefore := *components.Projection.Get(other)

	snap := frame()
	snap.Scroll = []input.ScrollEvent{{Surface: surface, Delta: -50}, {Surface: surface, Delta: -50}}
	p.Update(world, snap)

	// -100 * 2 / 100 = +2
	if got := Component.Get(primary).Magnification; !mgl32.FloatEqualThreshold(got, 3, tolerance) {
		t.Errorf("Expected magnification 3, got: %v", got)
	}
	if got := *components.Projection.Get(other); got != otherBefore {
		t.Errorf("Expected other surface untouched: %v, got: %v", otherBefore, got)
	}
	if got := Component.Get(other).Magnification; got != 1 {
		t.Errorf("Expected other magnification 1, got: %v", got)
	}
}

func TestMissingPrimaryPanics(t *testing.T) {
	world := donburi.NewWorld()
	p := NewPlugin(WithEnabledByDefault())
	entry := spawn(world, p.Options(), transform.Identity())
	before := *components.Transform.Get(entry)

	snap := frame()
	snap.HasPrimary = false
	snap.PointerDelta = mgl32.Vec2{10, 10}

	defer func() {
		if recover() == nil {
			t.Fatal("Expected a panic without a primary surface")
		}
		if got := *components.Transform.Get(entry); got != before {
			t.Errorf("Expected transform untouched: %v, got: %v", before, got)
		}
	}()
	p.Update(world, snap)
}

func TestVerticalClampAfterRotation(t *testing.T) {
	world := donburi.NewWorld()
	p := NewPlugin(WithEnabledByDefault())
	entry := spawn(world, p.Options(), transform.Identity())

	// Pull the pointer far enough to pitch well past 45 degrees in one frame.
	snap := frame()
	snap.PointerDelta = mgl32.Vec2{0, -500}
	p.Update(world, snap)

	got, ok := Pitch(components.Transform.Get(entry))
	if !ok {
		t.Fatal("Expected pitch to be defined")
	}
	if got < -math.Pi/4-tolerance || got > math.Pi/4+tolerance {
		t.Errorf("Expected pitch inside [-pi/4, pi/4], got: %v", got)
	}
}

func TestClampSkippedWithoutProjection(t *testing.T) {
	world := donburi.NewWorld()
	p := NewPlugin(WithEnabledByDefault())
	tr := transform.Identity()
	tr.Rotation = mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0})
	entry := components.SpawnObject(world, tr)
	Attach(entry, p.Options())

	// Straight up would panic in the clamp; objects without a projection never reach it.
	p.Update(world, frame())

	if got := *components.Transform.Get(entry); got != tr {
		t.Errorf("Expected transform %v, got: %v", tr, got)
	}
}

func TestSetOptionsNextPass(t *testing.T) {
	world := donburi.NewWorld()
	p := NewPluginWithKeyBindings(WithEnabledByDefault())
	entry := spawn(world, p.Options(), transform.Identity())

	faster := p.Options().Clone()
	faster.MovementSpeed = 60
	if err := p.SetOptions(faster); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Options().MovementSpeed != 2 {
		t.Errorf("Expected options unchanged before the next pass, got speed %v", p.Options().MovementSpeed)
	}

	snap := frame(common.KeyD)
	snap.Elapsed = 0.5
	p.Update(world, snap)

	if got := components.Transform.Get(entry).Translation.X(); !mgl32.FloatEqualThreshold(got, 30, tolerance) {
		t.Errorf("Expected x=30, got: %v", got)
	}

	bad := p.Options().Clone()
	bad.ZoomRange = common.NewRange(0, 10)
	if err := p.SetOptions(bad); !errors.Is(err, ErrInvalidZoomRange) {
		t.Errorf("Expected: %v, got: %v", ErrInvalidZoomRange, err)
	}
}

func TestInvalidOptionsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected a panic for invalid options")
		}
	}()
	NewPlugin(WithOptions(NewOptions(WithMovementSpeed(0))))
}

func TestResetBinding(t *testing.T) {
	world := donburi.NewWorld()
	o := DefaultOptionsWithKeyBindings()
	o.Enabled = true
	o.Input.KeyBindings.Reset = bind(common.KeyHome)
	p := NewPlugin(WithOptions(o))
	start := *transform.New(transform.WithPosition(0, 1, 4))
	entry := spawn(world, p.Options(), start)

	snap := frame(common.KeyW)
	snap.Elapsed = 1
	p.Update(world, snap)
	if got := *components.Transform.Get(entry); got == start {
		t.Fatal("Expected the camera to move")
	}

	reset := frame()
	reset.Keys = input.NewKeyState(nil, []common.Key{common.KeyHome})
	p.Update(world, reset)

	if got := *components.Transform.Get(entry); got != start {
		t.Errorf("Expected transform %v, got: %v", start, got)
	}
}

func TestWorkersMatchSerial(t *testing.T) {
	run := func(p Plugin) []transform.Transform {
		world := donburi.NewWorld()
		var entries []*donburi.Entry
		for i := 0; i < 8; i++ {
			entries = append(entries, spawn(world, p.Options(), *transform.New(transform.WithPosition(float32(i), 0, 0))))
		}
		for i := 0; i < 20; i++ {
			snap := frame(common.KeyW, common.KeyQ)
			snap.PointerDelta = mgl32.Vec2{float32(i % 7), float32(i%5) - 2}
			snap.Scroll = []input.ScrollEvent{{Surface: surface, Delta: float32(i%3) - 1}}
			p.Update(world, snap)
		}
		out := make([]transform.Transform, len(entries))
		for i, e := range entries {
			out[i] = *components.Transform.Get(e)
		}
		return out
	}

	serial := run(NewPluginWithKeyBindings(WithEnabledByDefault()))
	parallel := run(NewPluginWithKeyBindings(WithEnabledByDefault(), WithWorkers(4)))

	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("Camera %d: expected %v, got: %v", i, serial[i], parallel[i])
		}
	}
}
