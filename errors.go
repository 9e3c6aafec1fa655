package colors

import "github.com/pkg/errors"

// Validation failures returned by constructors and operators. Returned errors
// wrap one of these values; test for them with errors.Is.
var (
	// ErrInvalidChannelRange reports an RGB channel outside [0, 255] or an HSV
	// saturation or value outside [0, 1].
	ErrInvalidChannelRange = errors.New("invalid channel range")

	// ErrInvalidHexLength reports a hex string that is not exactly 6 characters.
	ErrInvalidHexLength = errors.New("invalid hex length")

	// ErrInvalidHexDigits reports a hex string containing a non-hex character.
	ErrInvalidHexDigits = errors.New("invalid hex digits")

	// ErrDivisionByZero reports a zero channel in the divisor of Divide.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownBlendMode reports a blend mode name ParseBlendMode does not know.
	ErrUnknownBlendMode = errors.New("unknown blend mode")
)

func channelRangeError(name string, v, limit float64) error {
	return errors.Wrapf(ErrInvalidChannelRange, "%s %s outside [0, %s]", name, formatChannel(v), formatChannel(limit))
}
