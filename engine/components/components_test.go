package components

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-debugcam/engine/input"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/projection"
	"github.com/Carmen-Shannon/oxy-debugcam/engine/transform"
	"github.com/yohamta/donburi"
)

func TestResolve(t *testing.T) {
	withPrimary := &input.Snapshot{PrimarySurface: 7, HasPrimary: true}
	noPrimary := &input.Snapshot{}

	testCases := map[string]struct {
		target   RenderTargetData
		snap     *input.Snapshot
		expected input.SurfaceID
		err      error
	}{
		"Concrete":          {target: SurfaceTarget(3), snap: noPrimary, expected: 3},
		"Primary":           {target: PrimaryTarget(), snap: withPrimary, expected: 7},
		"PrimaryMissing":    {target: PrimaryTarget(), snap: noPrimary, err: ErrNoPrimarySurface},
		"ConcreteIgnoresPr": {target: SurfaceTarget(2), snap: withPrimary, expected: 2},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := tt.target.Resolve(tt.snap)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected error: %v, got: %v", tt.err, err)
			}
			if err == nil && got != tt.expected {
				t.Errorf("Expected: %d, got: %d", tt.expected, got)
			}
		})
	}
}

func TestSpawnCamera(t *testing.T) {
	world := donburi.NewWorld()
	tr := *transform.New(transform.WithPosition(1, 2, 3))
	entry := SpawnCamera(world, tr, projection.NewPerspective(1, 1, 0.1, 100), PrimaryTarget())

	if !entry.HasComponent(Transform) || !entry.HasComponent(Projection) || !entry.HasComponent(RenderTarget) {
		t.Fatal("Camera entity should carry transform, projection and render target")
	}
	if got := Transform.Get(entry).Translation; got != tr.Translation {
		t.Errorf("Expected translation %v, got: %v", tr.Translation, got)
	}

	obj := SpawnObject(world, transform.Identity())
	if obj.HasComponent(Projection) {
		t.Error("Plain object should not carry a projection")
	}
}

func TestCameraFilter(t *testing.T) {
	world := donburi.NewWorld()
	SpawnCamera(world, transform.Identity(), projection.NewOrthographic(1, 1, 0.1, 10), SurfaceTarget(1))
	SpawnCamera(world, transform.Identity(), projection.NewOrthographic(1, 1, 0.1, 10), PrimaryTarget())
	SpawnObject(world, transform.Identity())

	if got := donburi.NewQuery(CameraFilter()).Count(world); got != 2 {
		t.Errorf("Expected 2 cameras, got: %d", got)
	}
	if got := donburi.NewQuery(ObjectFilter()).Count(world); got != 1 {
		t.Errorf("Expected 1 object, got: %d", got)
	}
}
