package signedset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSign(t *testing.T) {
	tests := []struct {
		name string
		tok  any
		want Sign
	}{
		{"int plus", 1, Plus},
		{"int minus", -1, Minus},
		{"int zero", 0, Zero},
		{"int8", int8(-1), Minus},
		{"int64", int64(1), Plus},
		{"uint", uint(1), Plus},
		{"float64 whole", float64(-1), Minus},
		{"string plus", "+", Plus},
		{"string minus", "-", Minus},
		{"string zero", "0", Zero},
		{"string empty", "", Zero},
		{"sign value", Minus, Minus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSign(tt.tok)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSignRejectsUnknownTokens(t *testing.T) {
	tests := []struct {
		name string
		tok  any
	}{
		{"out of range int", 2},
		{"negative out of range", -7},
		{"letter", "x"},
		{"plus word", "plus"},
		{"fractional float", 0.5},
		{"nil", nil},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSign(tt.tok)
			assert.ErrorIs(t, err, ErrBadToken)
		})
	}
}

func TestSignString(t *testing.T) {
	assert.Equal(t, "+", Plus.String())
	assert.Equal(t, "-", Minus.String())
	assert.Equal(t, "0", Zero.String())
}

func TestSignNeg(t *testing.T) {
	assert.Equal(t, Minus, Plus.Neg())
	assert.Equal(t, Plus, Minus.Neg())
	assert.Equal(t, Zero, Zero.Neg())
}
