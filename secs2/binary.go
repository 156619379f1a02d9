package secs2

import (
	"bytes"

	"github.com/arloliu/go-secs2/internal/util"
)

// binaryValue is an immutable sequence of opaque octets.
type binaryValue struct {
	baseValue
	data []byte
}

// NewBinary builds a Binary Value from the given octets. The slice is
// copied.
func NewBinary(data []byte) Value {
	return &binaryValue{data: util.CloneSlice(data, 0)}
}

func (v *binaryValue) Type() ValueType { return BinaryType }

func (v *binaryValue) Size() int { return len(v.data) }

func (v *binaryValue) Binary() ([]byte, error) { return v.data, nil }

func (v *binaryValue) Equal(other Value) bool {
	o, ok := other.(*binaryValue)
	return ok && bytes.Equal(v.data, o.data)
}

func (v *binaryValue) encodeBody(buf []byte) []byte {
	return append(buf, v.data...)
}

// decodeBinary reads length octets verbatim; L=0 yields an empty Value.
func decodeBinary(data []byte, length int) (Value, error) {
	if len(data) < length {
		return nil, newCodecError(KindIncomplete, "binary item needs %d bytes, have %d", length, len(data))
	}

	return NewBinary(data[:length]), nil
}
