package colors

import (
	"math"

	"github.com/anthonynsimon/bild/math/f64"
	"github.com/pkg/errors"
)

// white is the operand Invert subtracts from.
var white = RGBColor{r: maxChannel, g: maxChannel, b: maxChannel}

// perChannel applies fn to matching RGB channels of a and b. fn must keep
// results inside [0, 255] for every pair of valid channels.
func perChannel(a, b Color, fn func(x, y float64) float64) RGBColor {
	ar, br := a.RGB(), b.RGB()
	return RGBColor{
		r: fn(ar.r, br.r),
		g: fn(ar.g, br.g),
		b: fn(ar.b, br.b),
	}
}

// Multiply darkens: each channel becomes a*b/255.
func Multiply(a, b Color) RGBColor {
	return perChannel(a, b, func(x, y float64) float64 {
		return x * y / maxChannel
	})
}

// Add sums channels, saturating at 255.
func Add(a, b Color) RGBColor {
	return perChannel(a, b, func(x, y float64) float64 {
		return f64.Clamp(x+y, 0, maxChannel)
	})
}

// Subtract takes b from a per channel, saturating at 0.
func Subtract(a, b Color) RGBColor {
	return perChannel(a, b, func(x, y float64) float64 {
		return f64.Clamp(x-y, 0, maxChannel)
	})
}

// Divide computes a/b per channel.
//
// It fails with ErrDivisionByZero if any channel of b is 0. Quotients are not
// clamped: a result above 255 fails with ErrInvalidChannelRange.
func Divide(a, b Color) (RGBColor, error) {
	ar, br := a.RGB(), b.RGB()
	if br.Contains(0) {
		return RGBColor{}, errors.Wrapf(ErrDivisionByZero, "divide by %s", br)
	}
	c, err := NewRGB(ar.r/br.r, ar.g/br.g, ar.b/br.b)
	if err != nil {
		return RGBColor{}, errors.WithMessage(err, "divide")
	}
	return c, nil
}

// Screen lightens: each channel becomes 255 - (255-a)*(255-b)/255.
func Screen(a, b Color) RGBColor {
	return perChannel(a, b, func(x, y float64) float64 {
		return maxChannel - (maxChannel-x)*(maxChannel-y)/maxChannel
	})
}

// Difference takes the absolute difference of each channel.
func Difference(a, b Color) RGBColor {
	return perChannel(a, b, func(x, y float64) float64 {
		return math.Abs(x - y)
	})
}

// Overlay screens a with the product of a and b.
func Overlay(a, b Color) RGBColor {
	return Screen(a, Multiply(a, b))
}

// Invert returns the difference between a and white.
func Invert(a Color) RGBColor {
	return Difference(a, white)
}

// BlendMode names a binary blend operator.
type BlendMode int

// Supported blend modes.
const (
	BlendMultiply   BlendMode = iota // a*b/255
	BlendAdd                         // min(255, a+b)
	BlendSubtract                    // max(0, a-b)
	BlendDivide                      // a/b
	BlendScreen                      // 255 - (255-a)*(255-b)/255
	BlendDifference                  // |a-b|
	BlendOverlay                     // Screen(a, Multiply(a, b))
)

var blendModeNames = [...]string{
	BlendMultiply:   "multiply",
	BlendAdd:        "add",
	BlendSubtract:   "subtract",
	BlendDivide:     "divide",
	BlendScreen:     "screen",
	BlendDifference: "difference",
	BlendOverlay:    "overlay",
}

// String returns the lowercase operator name, e.g. "multiply".
func (m BlendMode) String() string {
	if m < 0 || int(m) >= len(blendModeNames) {
		return "unknown"
	}
	return blendModeNames[m]
}

// BlendModes returns every supported mode in declaration order.
func BlendModes() []BlendMode {
	modes := make([]BlendMode, len(blendModeNames))
	for i := range modes {
		modes[i] = BlendMode(i)
	}
	return modes
}

// ParseBlendMode maps an operator name such as "screen" to its BlendMode.
func ParseBlendMode(name string) (BlendMode, error) {
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownBlendMode, "%q", name)
}

// Blend applies the operator selected by mode to a and b. Only BlendDivide
// can fail, with the errors documented on Divide.
func Blend(mode BlendMode, a, b Color) (RGBColor, error) {
	switch mode {
	case BlendMultiply:
		return Multiply(a, b), nil
	case BlendAdd:
		return Add(a, b), nil
	case BlendSubtract:
		return Subtract(a, b), nil
	case BlendDivide:
		return Divide(a, b)
	case BlendScreen:
		return Screen(a, b), nil
	case BlendDifference:
		return Difference(a, b), nil
	case BlendOverlay:
		return Overlay(a, b), nil
	default:
		return RGBColor{}, errors.Wrapf(ErrUnknownBlendMode, "mode %d", int(mode))
	}
}
