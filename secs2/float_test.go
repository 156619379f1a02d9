package secs2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatValue(t *testing.T) {
	tests := []struct {
		description     string
		width           int
		input           []float64
		expectedType    ValueType
		expectedEncoded []byte
	}{
		{
			description:     "empty f4",
			width:           4,
			input:           []float64{},
			expectedType:    Float32Type,
			expectedEncoded: []byte{0x91, 0x00},
		},
		{
			description:     "f4 exact binary32 values",
			width:           4,
			input:           []float64{0.5, -1.25},
			expectedType:    Float32Type,
			expectedEncoded: []byte{0x91, 0x08, 0x3F, 0x00, 0x00, 0x00, 0xBF, 0xA0, 0x00, 0x00},
		},
		{
			description:     "f8 big-endian",
			width:           8,
			input:           []float64{1.0},
			expectedType:    Float64Type,
			expectedEncoded: []byte{0x81, 0x08, 0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)

		v := NewFloat(test.width, test.input)
		require.Equal(test.expectedType, v.Type())
		require.Equal(len(test.input), v.Size())

		got, err := v.Float()
		require.NoError(err)
		require.Equal(test.input, got)

		data, err := Encode(v)
		require.NoError(err)
		require.Equal(test.expectedEncoded, data)

		decoded, consumed, err := Decode(data)
		require.NoError(err)
		require.Equal(len(data), consumed)
		require.True(v.Equal(decoded))
	}
}

func TestFloatValue_SpecialValuesRoundTrip(t *testing.T) {
	require := require.New(t)

	specials := []float64{math.Inf(1), math.Inf(-1), math.NaN(), math.Copysign(0, -1)}

	for _, width := range []int{4, 8} {
		v := NewFloat(width, specials)

		data, err := Encode(v)
		require.NoError(err)

		decoded, _, err := Decode(data)
		require.NoError(err)
		// Equal compares bit patterns, so NaN round-trips and -0 stays -0.
		require.True(v.Equal(decoded))
	}
}

func TestFloatValue_InvalidWidthPanics(t *testing.T) {
	require.Panics(t, func() { NewFloat(2, nil) })
}

func TestFloatValue_Equal(t *testing.T) {
	require := require.New(t)

	require.True(F8(1.5).Equal(F8(1.5)))
	require.False(F8(1.5).Equal(F8(2.5)))
	require.False(F4(1.5).Equal(F8(1.5)))
	// Bit-pattern comparison distinguishes +0 from -0.
	require.False(F8(math.Copysign(0, -1)).Equal(F8(0)))
	require.True(F8(math.NaN()).Equal(F8(math.NaN())))
}
