package transform

import "github.com/go-gl/mathgl/mgl32"

// TransformBuilderOption is a functional option for configuring a Transform.
type TransformBuilderOption func(*Transform)

// New creates a Transform starting from Identity and applies each option in order.
//
// Parameters:
//   - options: functional options to configure the transform
//
// Returns:
//   - *Transform: the configured transform
func New(options ...TransformBuilderOption) *Transform {
	t := Identity()
	for _, option := range options {
		option(&t)
	}
	return &t
}

// WithPosition sets the world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - TransformBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) TransformBuilderOption {
	return func(t *Transform) {
		t.Translation = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the orientation directly.
//
// Parameters:
//   - q: the orientation (normalized on assignment)
//
// Returns:
//   - TransformBuilderOption: functional option to set the rotation
func WithRotation(q mgl32.Quat) TransformBuilderOption {
	return func(t *Transform) {
		t.Rotation = q.Normalize()
	}
}

// WithLookAt orients the transform toward target. Must come after WithPosition
// for the position to be taken into account.
//
// Parameters:
//   - target: the world-space point to face
//   - up: the up reference
//
// Returns:
//   - TransformBuilderOption: functional option to orient the transform
func WithLookAt(target, up mgl32.Vec3) TransformBuilderOption {
	return func(t *Transform) {
		t.LookAt(target, up)
	}
}
