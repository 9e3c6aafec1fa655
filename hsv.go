package colors

import (
	"math"

	"github.com/anthonynsimon/bild/math/f64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// HSVColor is a hue, saturation, value triple.
//
// Saturation and value lie in [0, 1]. Hue is cyclic: a hue of 1 or more has
// its integer part removed on construction, so 1.25 is stored as 0.25. Hues
// below zero are stored as given and only wrapped when converted to RGB.
// NaN and infinite hues are rejected.
type HSVColor struct {
	h, s, v float64
}

// NewHSV creates an HSVColor, failing with ErrInvalidChannelRange if the
// saturation or value lies outside [0, 1] or the hue is NaN or infinite.
func NewHSV(h, s, v float64) (HSVColor, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return HSVColor{}, errors.Wrapf(ErrInvalidChannelRange, "hue %s is not finite", formatChannel(h))
	}
	if !(s >= 0 && s <= 1) {
		return HSVColor{}, channelRangeError("saturation", s, 1)
	}
	if !(v >= 0 && v <= 1) {
		return HSVColor{}, channelRangeError("value", v, 1)
	}
	return HSVColor{h: wrapHue(h), s: s, v: v}, nil
}

// MustHSV is like NewHSV but panics on an out-of-range saturation or value.
func MustHSV(h, s, v float64) HSVColor {
	c, err := NewHSV(h, s, v)
	if err != nil {
		panic(err)
	}
	return c
}

// Hue returns the hue.
func (c HSVColor) Hue() float64 { return c.h }

// Saturation returns the saturation.
func (c HSVColor) Saturation() float64 { return c.s }

// Value returns the value (brightness).
func (c HSVColor) Value() float64 { return c.v }

// RGB converts c with the standard HSV to RGB formula, scaling each channel
// to [0, 255].
func (c HSVColor) RGB() RGBColor {
	deg := math.Mod(c.h, 1) * 360
	if deg < 0 {
		deg += 360
	}
	// go-colorful maps hues outside [0, 360) to gray.
	if deg >= 360 {
		deg = 0
	}
	rgb := colorful.Hsv(deg, c.s, c.v)
	return RGBColor{
		r: scaleChannel(rgb.R),
		g: scaleChannel(rgb.G),
		b: scaleChannel(rgb.B),
	}
}

// channelResolution is the grid HSV to RGB results are snapped to. It is far
// below 8-bit resolution, so integer channels come back as exact integers
// while genuinely fractional ones keep their fraction.
const channelResolution = 1e9

// scaleChannel maps a [0, 1] channel to [0, 255], removing float error so
// that 2.9999999999999973 becomes 3 before hex truncation sees it.
func scaleChannel(x float64) float64 {
	x = math.Round(x*maxChannel*channelResolution) / channelResolution
	return f64.Clamp(x, 0, maxChannel)
}

// HSV returns c unchanged.
func (c HSVColor) HSV() HSVColor { return c }

// Hex converts c through its RGB projection.
func (c HSVColor) Hex() HexColor { return hexFromRGB(c.RGB()) }

// Channels returns hue, saturation and value in that order.
func (c HSVColor) Channels() [3]float64 { return [3]float64{c.h, c.s, c.v} }

// Contains reports whether any channel equals v.
func (c HSVColor) Contains(v float64) bool {
	return c.h == v || c.s == v || c.v == v
}

// Len returns 3.
func (c HSVColor) Len() int { return channelCount }

// Equal reports whether c and other have the same RGB projection.
func (c HSVColor) Equal(other Color) bool { return Equal(c, other) }

// String renders the channels as "hue, saturation, value".
func (c HSVColor) String() string { return joinChannels(c.Channels()) }

// GoString renders "<HSVColor hue: 0.5, saturation: 1, value: 0.8>".
func (c HSVColor) GoString() string {
	return repr("HSVColor",
		[3]string{"hue", "saturation", "value"},
		[3]string{formatChannel(c.h), formatChannel(c.s), formatChannel(c.v)})
}
