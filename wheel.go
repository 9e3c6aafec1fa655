package colors

import "math/rand"

// Colors emitted by a ColorWheel are fully saturated at this brightness.
const (
	wheelSaturation = 1
	wheelValue      = 0.8
)

// Each wheel step advances the phase by a random amount in
// [minWheelStep, minWheelStep+wheelJitter).
const (
	minWheelStep = 0.1
	wheelJitter  = 0.1
)

// WheelOption configures a ColorWheel during creation.
type WheelOption func(*ColorWheel)

// WithRand makes the wheel draw its jitter from r instead of the process-wide
// source. Passing a seeded source makes the sequence reproducible.
//
// Example:
//
//	wheel := colors.NewColorWheel(0.2, colors.WithRand(rand.New(rand.NewSource(7))))
func WithRand(r *rand.Rand) WheelOption {
	return func(w *ColorWheel) {
		w.rnd = r
	}
}

// ColorWheel yields an endless sequence of hues spread relatively evenly
// around the color wheel.
//
// Every call to Next moves the phase forward by a random step in [0.1, 0.2),
// wrapping back past 1, and returns HSVColor{phase, 1, 0.8}. Consecutive colors
// are therefore always visibly different while still looking random.
//
// A ColorWheel is not safe for concurrent use.
type ColorWheel struct {
	phase float64
	rnd   *rand.Rand
}

// NewColorWheel creates a wheel whose phase starts at start. A start of 1 or
// more has its integer part removed, the same rule HSVColor applies to hue,
// so 2.3 starts at 0.3 rather than 1.3 as a single subtraction of 1 would
// give. Negative starts are kept as given.
func NewColorWheel(start float64, opts ...WheelOption) *ColorWheel {
	w := &ColorWheel{phase: wrapHue(start)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Phase returns the hue of the most recently emitted color, or the start
// phase before the first call to Next.
func (w *ColorWheel) Phase() float64 { return w.phase }

// Next advances the wheel and returns the color at the new phase.
func (w *ColorWheel) Next() HSVColor {
	w.phase += w.step()
	if w.phase >= 1 {
		w.phase--
	}
	return HSVColor{h: w.phase, s: wheelSaturation, v: wheelValue}
}

// Take returns the next n colors. It returns nil when n is not positive.
func (w *ColorWheel) Take(n int) []HSVColor {
	if n <= 0 {
		return nil
	}
	out := make([]HSVColor, n)
	for i := range out {
		out[i] = w.Next()
	}
	return out
}

// step draws the next phase increment.
func (w *ColorWheel) step() float64 {
	f := rand.Float64
	if w.rnd != nil {
		f = w.rnd.Float64
	}
	return f()*wheelJitter + minWheelStep
}
