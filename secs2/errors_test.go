package secs2

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecError_Is(t *testing.T) {
	require := require.New(t)

	_, _, err := Decode([]byte{0xFD, 0x01, 0xFF})
	require.True(errors.Is(err, &CodecError{Kind: KindUnknownType}))
	require.False(errors.Is(err, &CodecError{Kind: KindIncomplete}))

	// Kind survives wrapping.
	wrapped := fmt.Errorf("reading message: %w", err)
	require.True(errors.Is(wrapped, &CodecError{Kind: KindUnknownType}))

	var cerr *CodecError
	require.True(errors.As(wrapped, &cerr))
	require.Equal(KindUnknownType, cerr.Kind)
	require.NotEmpty(cerr.Error())
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindIncomplete, "incomplete"},
		{KindInvalidLenByteCount, "invalid_len_byte_count"},
		{KindUnknownType, "unknown_type"},
		{KindUnalignedLength, "unaligned_length"},
		{KindLengthOverflow, "length_overflow"},
		{KindTooDeep, "too_deep"},
		{Kind(99), "unknown"},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.expected)
		require.Equal(test.expected, test.kind.String())
	}
}
