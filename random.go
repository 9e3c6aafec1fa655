package colors

import "math/rand"

// Random returns an HSVColor whose hue, saturation and value are each drawn
// uniformly from [0, 1) using the process-wide math/rand source.
func Random() HSVColor {
	return HSVColor{h: rand.Float64(), s: rand.Float64(), v: rand.Float64()}
}

// RandomFrom is like Random but draws from r.
func RandomFrom(r *rand.Rand) HSVColor {
	return HSVColor{h: r.Float64(), s: r.Float64(), v: r.Float64()}
}
