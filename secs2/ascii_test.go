package secs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestASCIIValue(t *testing.T) {
	tests := []struct {
		description     string
		input           string
		expectedSize    int
		expectedEncoded []byte
	}{
		{
			description:     "empty",
			input:           "",
			expectedSize:    0,
			expectedEncoded: []byte{0x41, 0x00},
		},
		{
			description:     "plain text",
			input:           "msg",
			expectedSize:    3,
			expectedEncoded: []byte{0x41, 0x03, 0x6D, 0x73, 0x67},
		},
		{
			description:     "NUL and high-bit bytes are not rejected",
			input:           "\x00\x80\xFF",
			expectedSize:    3,
			expectedEncoded: []byte{0x41, 0x03, 0x00, 0x80, 0xFF},
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)

		v := NewASCII(test.input)
		require.Equal(ASCIIType, v.Type())
		require.Equal(test.expectedSize, v.Size())

		got, err := v.ASCII()
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

func TestASCIIValue_Equal(t *testing.T) {
	require := require.New(t)

	require.True(A("abc").Equal(A("abc")))
	require.False(A("abc").Equal(A("abd")))
	require.False(A("").Equal(B()))
}
