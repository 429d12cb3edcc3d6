// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "fmt"

// Range is an inclusive [Min, Max] interval of float32 values.
type Range struct {
	// Min is the inclusive lower bound.
	Min float32 `yaml:"min"`
	// Max is the inclusive upper bound.
	Max float32 `yaml:"max"`
}

// NewRange creates an inclusive range.
//
// Parameters:
//   - min: inclusive lower bound
//   - max: inclusive upper bound
//
// Returns:
//   - Range: the range [min, max]
func NewRange(min, max float32) Range {
	return Range{Min: min, Max: max}
}

// Contains reports whether v lies inside the range, bounds included.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp clamps v into the range.
//
// Parameters:
//   - v: the value to clamp
//
// Returns:
//   - float32: v limited to [Min, Max]
func (r Range) Clamp(v float32) float32 {
	return Clampf(v, r.Min, r.Max)
}

// Valid reports whether Min <= Max.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}
