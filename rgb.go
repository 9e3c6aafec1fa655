package colors

import "github.com/lucasb-eyer/go-colorful"

// maxChannel is the upper bound of an RGB channel.
const maxChannel = 255

// RGBColor is a red, green, blue triple with each channel in [0, 255].
//
// Channels are stored as float64 so blend results such as Multiply keep their
// fractional part. The zero value is black.
type RGBColor struct {
	r, g, b float64
}

// NewRGB creates an RGBColor, failing with ErrInvalidChannelRange if any
// channel lies outside [0, 255].
func NewRGB(r, g, b float64) (RGBColor, error) {
	names := [3]string{"red", "green", "blue"}
	for i, v := range [3]float64{r, g, b} {
		if !(v >= 0 && v <= maxChannel) {
			return RGBColor{}, channelRangeError(names[i], v, maxChannel)
		}
	}
	return RGBColor{r: r, g: g, b: b}, nil
}

// MustRGB is like NewRGB but panics if a channel is out of range.
func MustRGB(r, g, b float64) RGBColor {
	c, err := NewRGB(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// Red returns the red channel.
func (c RGBColor) Red() float64 { return c.r }

// Green returns the green channel.
func (c RGBColor) Green() float64 { return c.g }

// Blue returns the blue channel.
func (c RGBColor) Blue() float64 { return c.b }

// RGB returns c unchanged.
func (c RGBColor) RGB() RGBColor { return c }

// HSV converts c with the standard RGB to HSV formula after normalizing each
// channel to [0, 1].
func (c RGBColor) HSV() HSVColor {
	h, s, v := colorful.Color{R: c.r / maxChannel, G: c.g / maxChannel, B: c.b / maxChannel}.Hsv()
	// go-colorful reports hue in degrees.
	return HSVColor{h: wrapHue(h / 360), s: s, v: v}
}

// Hex formats c as six hex digits, truncating fractional channels.
func (c RGBColor) Hex() HexColor { return hexFromRGB(c) }

// Channels returns red, green and blue in that order.
func (c RGBColor) Channels() [3]float64 { return [3]float64{c.r, c.g, c.b} }

// Contains reports whether any channel equals v.
func (c RGBColor) Contains(v float64) bool {
	return c.r == v || c.g == v || c.b == v
}

// Len returns 3.
func (c RGBColor) Len() int { return channelCount }

// Equal reports whether c and other have the same RGB projection.
func (c RGBColor) Equal(other Color) bool { return Equal(c, other) }

// String renders the channels as "red, green, blue", e.g. "150, 0, 100".
func (c RGBColor) String() string { return joinChannels(c.Channels()) }

// GoString renders "<RGBColor red: 150, green: 0, blue: 100>".
func (c RGBColor) GoString() string {
	return repr("RGBColor",
		[3]string{"red", "green", "blue"},
		[3]string{formatChannel(c.r), formatChannel(c.g), formatChannel(c.b)})
}
