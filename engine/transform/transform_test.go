package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

func TestDirections(t *testing.T) {
	tr := Identity()

	testCases := map[string]struct {
		got      mgl32.Vec3
		expected mgl32.Vec3
	}{
		"Forward": {tr.Forward(), mgl32.Vec3{0, 0, -1}},
		"Back":    {tr.Back(), mgl32.Vec3{0, 0, 1}},
		"Left":    {tr.Left(), mgl32.Vec3{-1, 0, 0}},
		"Right":   {tr.Right(), mgl32.Vec3{1, 0, 0}},
		"Up":      {tr.Up(), mgl32.Vec3{0, 1, 0}},
		"Down":    {tr.Down(), mgl32.Vec3{0, -1, 0}},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if !tt.got.ApproxEqualThreshold(tt.expected, tolerance) {
				t.Errorf("Expected: %v, got: %v", tt.expected, tt.got)
			}
		})
	}
}

func TestRotateYThenLocalX(t *testing.T) {
	tr := Identity()

	// Yaw a quarter turn left, then pitch up by 45 degrees about the new right axis.
	tr.RotateY(math.Pi / 2)
	if !tr.Forward().ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, tolerance) {
		t.Fatalf("Expected forward -X after yaw, got: %v", tr.Forward())
	}

	tr.RotateLocalX(math.Pi / 4)
	s := float32(math.Sqrt2 / 2)
	if !tr.Forward().ApproxEqualThreshold(mgl32.Vec3{-s, s, 0}, tolerance) {
		t.Errorf("Expected forward (-0.707, 0.707, 0), got: %v", tr.Forward())
	}
	if !tr.Right().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, tolerance) {
		t.Errorf("Pitch should not move the right axis, got: %v", tr.Right())
	}
}

func TestLookTo(t *testing.T) {
	tr := New(WithPosition(1, 2, 3))
	tr.LookAt(mgl32.Vec3{1, 2, 13}, mgl32.Vec3{0, 1, 0})

	if !tr.Forward().ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, tolerance) {
		t.Errorf("Expected forward +Z, got: %v", tr.Forward())
	}
	if !tr.Up().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, tolerance) {
		t.Errorf("Expected up +Y, got: %v", tr.Up())
	}
	if !tr.Translation.ApproxEqualThreshold(mgl32.Vec3{1, 2, 3}, tolerance) {
		t.Errorf("LookAt must not move the transform, got: %v", tr.Translation)
	}
}

func TestTranslate(t *testing.T) {
	tr := New(WithPosition(1, 1, 1))
	tr.Translate(mgl32.Vec3{1, -2, 0.5})
	if !tr.Translation.ApproxEqualThreshold(mgl32.Vec3{2, -1, 1.5}, tolerance) {
		t.Errorf("Expected (2, -1, 1.5), got: %v", tr.Translation)
	}
}

func TestViewMatrixInvertsMatrix(t *testing.T) {
	tr := New(
		WithPosition(-2.5, 4.5, 9),
		WithLookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
	)

	id := tr.ViewMatrix().Mul4(tr.Matrix())
	if !id.ApproxEqualThreshold(mgl32.Ident4(), 1e-4) {
		t.Errorf("ViewMatrix * Matrix should be identity, got: %v", id)
	}
}
