package secs2

import "github.com/arloliu/go-secs2/internal/util"

// booleanValue is an immutable sequence of truth values. Decode accepts
// any nonzero byte as true; encode always emits canonical 0x01/0x00, so
// two buffers differing only in the exact nonzero byte decode to equal
// Values.
type booleanValue struct {
	baseValue
	values []bool
}

// NewBoolean builds a Boolean Value from the given truth values. The
// slice is copied.
func NewBoolean(values []bool) Value {
	return &booleanValue{values: util.CloneSlice(values, 0)}
}

func (v *booleanValue) Type() ValueType { return BooleanType }

func (v *booleanValue) Size() int { return len(v.values) }

func (v *booleanValue) Boolean() ([]bool, error) { return v.values, nil }

func (v *booleanValue) Equal(other Value) bool {
	o, ok := other.(*booleanValue)
	if !ok || len(v.values) != len(o.values) {
		return false
	}

	for i, b := range v.values {
		if b != o.values[i] {
			return false
		}
	}

	return true
}

func (v *booleanValue) encodeBody(buf []byte) []byte {
	for _, b := range v.values {
		if b {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}

	return buf
}

func decodeBoolean(data []byte, length int) (Value, error) {
	if len(data) < length {
		return nil, newCodecError(KindIncomplete, "boolean item needs %d bytes, have %d", length, len(data))
	}

	values := make([]bool, length)
	for i := 0; i < length; i++ {
		values[i] = data[i] != 0
	}

	return &booleanValue{values: values}, nil
}
