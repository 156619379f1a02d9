package secs2

import "fmt"

// Kind identifies the machine-readable category of a codec error.
//
// Callers should branch on Kind (via errors.As) rather than match on the
// human-readable message, which is diagnostic only.
type Kind int

const (
	// KindIncomplete means the buffer ended before the declared length was satisfied.
	KindIncomplete Kind = iota
	// KindInvalidLenByteCount means the header's length-byte count was zero.
	KindInvalidLenByteCount
	// KindUnknownType means the format code is not one of the 14 known variants.
	KindUnknownType
	// KindUnalignedLength means a leaf's declared length is not a multiple of its element width.
	KindUnalignedLength
	// KindLengthOverflow means a declared length exceeds MaxLength.
	KindLengthOverflow
	// KindTooDeep means list nesting exceeded the configured maximum depth.
	KindTooDeep
)

func (k Kind) String() string {
	switch k {
	case KindIncomplete:
		return "incomplete"
	case KindInvalidLenByteCount:
		return "invalid_len_byte_count"
	case KindUnknownType:
		return "unknown_type"
	case KindUnalignedLength:
		return "unaligned_length"
	case KindLengthOverflow:
		return "length_overflow"
	case KindTooDeep:
		return "too_deep"
	default:
		return "unknown"
	}
}

// CodecError records a failure in Decode or Encode. It carries a machine
// Kind and a human-readable message; the message is not part of the
// contract and should not be matched on by tests or callers.
type CodecError struct {
	Kind Kind
	msg  string
}

func newCodecError(kind Kind, format string, args ...any) *CodecError {
	return &CodecError{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *CodecError) Error() string {
	return e.msg
}

// Is reports whether target is a *CodecError with the same Kind, enabling
// errors.Is(err, &CodecError{Kind: KindIncomplete}) style checks.
func (e *CodecError) Is(target error) bool {
	other, ok := target.(*CodecError)
	if !ok {
		return false
	}

	return e.Kind == other.Kind
}
