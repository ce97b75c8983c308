package signedset

import (
	"errors"
	"fmt"
)

// ErrBadToken indicates a sign token outside the recognized alphabet.
var ErrBadToken = errors.New("unrecognized sign token")

// Sign is the orientation of a ground-set element within a signed subset.
type Sign int8

const (
	// Minus marks an element of the negative part.
	Minus Sign = -1

	// Zero marks an element outside the support.
	Zero Sign = 0

	// Plus marks an element of the positive part.
	Plus Sign = 1
)

// String returns the conventional one-character rendering of the sign.
func (s Sign) String() string {
	switch s {
	case Plus:
		return "+"
	case Minus:
		return "-"
	default:
		return "0"
	}
}

// Neg returns the opposite sign. Zero is its own opposite.
func (s Sign) Neg() Sign {
	return -s
}

// ParseSign converts a raw ternary token into a Sign.
//
// Recognized tokens are the integers -1, 0 and 1 (in any Go integer
// width), an existing Sign, and the strings "+", "-", "0" and "".
// Anything else fails with ErrBadToken.
func ParseSign(tok any) (Sign, error) {
	switch v := tok.(type) {
	case Sign:
		if v < Minus || v > Plus {
			return Zero, fmt.Errorf("%w: %d", ErrBadToken, int8(v))
		}
		return v, nil
	case string:
		switch v {
		case "+":
			return Plus, nil
		case "-":
			return Minus, nil
		case "0", "":
			return Zero, nil
		}
		return Zero, fmt.Errorf("%w: %q", ErrBadToken, v)
	case int:
		return signFromInt(int64(v))
	case int8:
		return signFromInt(int64(v))
	case int16:
		return signFromInt(int64(v))
	case int32:
		return signFromInt(int64(v))
	case int64:
		return signFromInt(v)
	case uint:
		return signFromInt(int64(v))
	case uint8:
		return signFromInt(int64(v))
	case uint16:
		return signFromInt(int64(v))
	case uint32:
		return signFromInt(int64(v))
	case uint64:
		return signFromInt(int64(v))
	case float64:
		// YAML and JSON decoders hand back float64 for bare numbers.
		if v == float64(int64(v)) {
			return signFromInt(int64(v))
		}
		return Zero, fmt.Errorf("%w: %v", ErrBadToken, v)
	}
	return Zero, fmt.Errorf("%w: %v", ErrBadToken, tok)
}

func signFromInt(v int64) (Sign, error) {
	if v < -1 || v > 1 {
		return Zero, fmt.Errorf("%w: %d", ErrBadToken, v)
	}
	return Sign(v), nil
}
