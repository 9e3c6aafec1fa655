package colors

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// hexLength is the number of digits in a hex color.
const hexLength = 6

// HexColor is a 6-digit hexadecimal RGB color such as "bada55".
//
// The digits are kept as three lowercase two-character pairs rather than
// decoded integers. Conversions decode them on demand. The zero value is
// "000000".
type HexColor struct {
	pairs [3]string
}

// NewHex parses a 6-digit hex string without a leading '#'. Parsing is case
// insensitive; the stored digits are lowercase.
//
// It fails with ErrInvalidHexLength if s is not exactly 6 characters long and
// with ErrInvalidHexDigits if s contains anything but 0-9, a-f or A-F.
func NewHex(s string) (HexColor, error) {
	if len(s) != hexLength {
		return HexColor{}, errors.Wrapf(ErrInvalidHexLength, "hex %q has %d characters, want %d", s, len(s), hexLength)
	}
	lower := strings.ToLower(s)
	for i := 0; i < len(lower); i++ {
		if !isHexDigit(lower[i]) {
			return HexColor{}, errors.Wrapf(ErrInvalidHexDigits, "hex %q", s)
		}
	}
	return HexColor{pairs: [3]string{lower[0:2], lower[2:4], lower[4:6]}}, nil
}

// MustHex is like NewHex but panics if s is not a valid hex color.
func MustHex(s string) HexColor {
	c, err := NewHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}

// pair returns the i-th digit pair, treating the zero value as "00".
func (c HexColor) pair(i int) string {
	if c.pairs[i] == "" {
		return "00"
	}
	return c.pairs[i]
}

// channel decodes the i-th digit pair. Pairs are validated on construction.
func (c HexColor) channel(i int) float64 {
	n, _ := strconv.ParseUint(c.pair(i), 16, 8)
	return float64(n)
}

// Red returns the decoded red channel.
func (c HexColor) Red() float64 { return c.channel(0) }

// Green returns the decoded green channel.
func (c HexColor) Green() float64 { return c.channel(1) }

// Blue returns the decoded blue channel.
func (c HexColor) Blue() float64 { return c.channel(2) }

// RGB decodes each digit pair as a base-16 integer.
func (c HexColor) RGB() RGBColor {
	return RGBColor{r: c.channel(0), g: c.channel(1), b: c.channel(2)}
}

// HSV converts c through its RGB projection.
func (c HexColor) HSV() HSVColor { return c.RGB().HSV() }

// Hex returns c unchanged.
func (c HexColor) Hex() HexColor { return c }

// Channels returns the three digit pairs, e.g. ["ba", "da", "55"].
func (c HexColor) Channels() [3]string {
	return [3]string{c.pair(0), c.pair(1), c.pair(2)}
}

// Contains reports whether any digit pair equals pair. The comparison is
// case insensitive.
func (c HexColor) Contains(pair string) bool {
	pair = strings.ToLower(pair)
	for _, p := range c.Channels() {
		if p == pair {
			return true
		}
	}
	return false
}

// Len returns 3.
func (c HexColor) Len() int { return channelCount }

// Equal reports whether c and other have the same RGB projection.
func (c HexColor) Equal(other Color) bool { return Equal(c, other) }

// String returns the six digits with no '#' prefix.
func (c HexColor) String() string {
	return c.pair(0) + c.pair(1) + c.pair(2)
}

// GoString renders "<HexColor red: ba, green: da, blue: 55>".
func (c HexColor) GoString() string {
	return repr("HexColor", [3]string{"red", "green", "blue"}, c.Channels())
}
