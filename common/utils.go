package common

// Coalesce returns the first argument that is not the zero value of T, falling back
// to the zero value. Used to apply defaults to optional settings.
func Coalesce[T comparable](candidates ...T) T {
	var zero T
	for _, c := range candidates {
		if c != zero {
			return c
		}
	}
	return zero
}
