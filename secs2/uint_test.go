package secs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintValue(t *testing.T) {
	tests := []struct {
		description     string
		width           int
		input           []uint64
		expectedType    ValueType
		expectedEncoded []byte
	}{
		{
			description:     "empty u1",
			width:           1,
			input:           []uint64{},
			expectedType:    Uint8Type,
			expectedEncoded: []byte{0xA5, 0x00},
		},
		{
			description:     "u1 full range",
			width:           1,
			input:           []uint64{0, 1, 255},
			expectedType:    Uint8Type,
			expectedEncoded: []byte{0xA5, 0x03, 0x00, 0x01, 0xFF},
		},
		{
			description:     "u2 big-endian",
			width:           2,
			input:           []uint64{1, 2, 3, 4},
			expectedType:    Uint16Type,
			expectedEncoded: []byte{0xA9, 0x08, 0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04},
		},
		{
			description:     "u4 big-endian",
			width:           4,
			input:           []uint64{4294967295},
			expectedType:    Uint32Type,
			expectedEncoded: []byte{0xB1, 0x04, 0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			description:     "u8 extremes",
			width:           8,
			input:           []uint64{0, 18446744073709551615},
			expectedType:    Uint64Type,
			expectedEncoded: []byte{
				0xA1, 0x10,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
			},
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)

		v := NewUint(test.width, test.input)
		require.Equal(test.expectedType, v.Type())
		require.Equal(len(test.input), v.Size())

		got, err := v.Uint()
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

func TestUintValue_InvalidWidthPanics(t *testing.T) {
	require.Panics(t, func() { NewUint(5, nil) })
}

func TestUintValue_Equal(t *testing.T) {
	require := require.New(t)

	require.True(U2(1, 2).Equal(U2(1, 2)))
	require.False(U2(1, 2).Equal(U2(1, 3)))
	require.False(U2(1, 2).Equal(U4(1, 2)))
	require.False(U1(1).Equal(I1(1)))
}
