package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

func TestSignedAngle(t *testing.T) {
	testCases := map[string]struct {
		a, b, n  mgl32.Vec3
		expected float32
	}{
		"Same": {
			a: mgl32.Vec3{0, 0, -1}, b: mgl32.Vec3{0, 0, -1}, n: mgl32.Vec3{1, 0, 0},
			expected: 0,
		},
		"QuarterPositive": {
			a: mgl32.Vec3{0, 1, 0}, b: mgl32.Vec3{0, 0, 1}, n: mgl32.Vec3{1, 0, 0},
			expected: math.Pi / 2,
		},
		"QuarterNegative": {
			a: mgl32.Vec3{0, 0, 1}, b: mgl32.Vec3{0, 1, 0}, n: mgl32.Vec3{1, 0, 0},
			expected: -math.Pi / 2,
		},
		"Opposite": {
			a: mgl32.Vec3{0, 0, 1}, b: mgl32.Vec3{0, 0, -1}, n: mgl32.Vec3{1, 0, 0},
			expected: math.Pi,
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			got := SignedAngle(tt.a, tt.b, tt.n)
			if !mgl32.FloatEqualThreshold(got, tt.expected, tolerance) {
				t.Errorf("Expected: %f, got: %f", tt.expected, got)
			}
		})
	}
}

func TestRejectFromNormalized(t *testing.T) {
	v := mgl32.Vec3{1, 2, 3}
	n := mgl32.Vec3{0, 1, 0}

	rej := RejectFromNormalized(v, n)
	if !rej.ApproxEqualThreshold(mgl32.Vec3{1, 0, 3}, tolerance) {
		t.Errorf("Expected rejection (1, 0, 3), got: %v", rej)
	}
	proj := ProjectOntoNormalized(v, n)
	if !proj.Add(rej).ApproxEqualThreshold(v, tolerance) {
		t.Errorf("Projection and rejection should sum to the input, got: %v + %v", proj, rej)
	}
}

func TestRotationArc(t *testing.T) {
	from := mgl32.Vec3{0, 1, 0}
	to := mgl32.Vec3{1, 1, 0}.Normalize()

	got := RotationArc(from, to).Rotate(from)
	if !got.ApproxEqualThreshold(to, tolerance) {
		t.Errorf("Expected: %v, got: %v", to, got)
	}
}

func TestLookToRotation(t *testing.T) {
	testCases := map[string]mgl32.Vec3{
		"NegZ":    {0, 0, -1},
		"PosX":    {1, 0, 0},
		"Tilted":  {1, 1, -1},
		"Down45":  {0, -1, -1},
		"Behind":  {0, 0, 1},
		"Unnorm":  {0, 0, -10},
		"Oblique": {-3, 0.5, 2},
	}

	for name, dir := range testCases {
		t.Run(name, func(t *testing.T) {
			q := LookToRotation(dir, WorldUp)
			forward := q.Rotate(mgl32.Vec3{0, 0, -1})
			if !forward.ApproxEqualThreshold(dir.Normalize(), tolerance) {
				t.Errorf("Expected forward: %v, got: %v", dir.Normalize(), forward)
			}
			right := q.Rotate(mgl32.Vec3{1, 0, 0})
			if !mgl32.FloatEqualThreshold(right.Y(), 0, tolerance) {
				t.Errorf("Right axis should stay horizontal, got: %v", right)
			}
		})
	}
}

func TestRange(t *testing.T) {
	r := NewRange(-1, 2)
	if !r.Contains(-1) || !r.Contains(2) || r.Contains(2.5) {
		t.Errorf("Range %v should be inclusive on both ends", r)
	}
	if got := r.Clamp(10); got != 2 {
		t.Errorf("Expected clamp to 2, got: %f", got)
	}
	if got := r.Clamp(-10); got != -1 {
		t.Errorf("Expected clamp to -1, got: %f", got)
	}
	if (Range{Min: 1, Max: 0}).Valid() {
		t.Error("Inverted range should not be valid")
	}
}

func TestKeyText(t *testing.T) {
	for _, k := range AllKeys() {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", k, err)
		}
		var back Key
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != k {
			t.Errorf("Expected: %v, got: %v", k, back)
		}
	}
	if _, err := ParseKey("NotAKey"); err == nil {
		t.Error("Expected error for unknown key name")
	}
}
