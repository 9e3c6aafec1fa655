// Package colors converts and manipulates color values.
//
// Three representations are provided, all immutable value types:
//   - RGBColor: red, green, blue channels in [0, 255] (fractional values allowed)
//   - HSVColor: hue, saturation, value; saturation and value in [0, 1], hue cyclic
//   - HexColor: a 6-digit lowercase hexadecimal string such as "bada55"
//
// Every representation satisfies the Color interface and can be projected into
// the other two. Blend operators (Multiply, Add, Subtract, Divide, Screen,
// Difference, Overlay, Invert) accept any mix of representations and always
// return a new RGBColor.
//
// # Equality
//
// Two colors are equal when their RGB projections have identical red, green
// and blue channels, regardless of the representation they were built from:
//
//	colors.Equal(colors.MustHex("BADA55"), colors.MustRGB(0xba, 0xda, 0x55)) // true
//
// # Hex Conversion
//
// Hex stores 8-bit channels. Converting an RGBColor with fractional channels
// truncates each channel toward zero, so 127.6 becomes "7f" rather than "80".
//
// # Random Colors
//
// Random returns a uniformly random HSVColor. ColorWheel yields an endless
// sequence of saturated hues spaced 0.1 to 0.2 apart around the wheel, which
// keeps consecutive colors visually distinct.
//
// # Thread Safety
//
// Color values are safe to share between goroutines. A ColorWheel holds mutable
// phase and random state and must not be used from more than one goroutine
// without external synchronization. Random uses the process-wide math/rand
// source, which is safe for concurrent use; a *rand.Rand passed to RandomFrom
// or WithRand is not.
package colors
