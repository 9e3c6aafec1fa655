package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is the capability set shared by every color representation.
//
// All arithmetic is defined in RGB space, so every implementation must be able
// to project itself into RGBColor. HSV and Hex projections are derived from it
// unless the representation is already the requested one.
type Color interface {
	// RGB returns the color as an RGBColor.
	RGB() RGBColor
	// HSV returns the color as an HSVColor.
	HSV() HSVColor
	// Hex returns the color as a HexColor, truncating fractional channels.
	Hex() HexColor
	// Len returns the number of channels, always 3.
	Len() int
	// String renders the raw channels; see the concrete types for the format.
	String() string
}

var (
	_ Color = RGBColor{}
	_ Color = HSVColor{}
	_ Color = HexColor{}
)

// channelCount is the number of channels in every representation.
const channelCount = 3

// Equal reports whether a and b have identical RGB projections.
func Equal(a, b Color) bool {
	ar, br := a.RGB(), b.RGB()
	return ar.r == br.r && ar.g == br.g && ar.b == br.b
}

// hexFromRGB formats the RGB projection as six lowercase hex digits. Channels
// are truncated toward zero before formatting.
func hexFromRGB(c RGBColor) HexColor {
	s := fmt.Sprintf("%02x%02x%02x", int(c.r), int(c.g), int(c.b))
	return HexColor{pairs: [3]string{s[0:2], s[2:4], s[4:6]}}
}

// wrapHue brings a hue of 1 or more back into [0, 1) by removing its integer
// part. Hues below 1, including negative ones, are returned unchanged.
func wrapHue(h float64) float64 {
	if h >= 1 {
		h -= math.Trunc(h)
	}
	return h
}

// formatChannel renders a channel value without trailing zeros, so integer
// channels print as "150" and fractional ones as "0.8".
func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// joinChannels renders three values as "v1, v2, v3".
func joinChannels(vals [3]float64) string {
	parts := make([]string, 0, channelCount)
	for _, v := range vals {
		parts = append(parts, formatChannel(v))
	}
	return strings.Join(parts, ", ")
}

// repr renders "<Type name: value, ...>" for GoString implementations.
func repr(typeName string, names [3]string, values [3]string) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(typeName)
	sb.WriteString(" ")
	for i := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(names[i])
		sb.WriteString(": ")
		sb.WriteString(values[i])
	}
	sb.WriteString(">")
	return sb.String()
}
