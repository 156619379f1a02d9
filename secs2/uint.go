package secs2

import (
	"encoding/binary"

	"github.com/arloliu/go-secs2/internal/util"
)

// uintValue is an immutable sequence of unsigned integers, all the same
// byte width (1, 2, 4, or 8).
type uintValue struct {
	baseValue
	width  int
	values []uint64
}

var uintTypesByWidth = map[int]ValueType{1: Uint8Type, 2: Uint16Type, 4: Uint32Type, 8: Uint64Type}

// NewUint builds a U1/U2/U4/U8 Value (selected by width, in bytes) from
// the given values. width must be 1, 2, 4, or 8; any other value panics.
func NewUint(width int, values []uint64) Value {
	if _, ok := uintTypesByWidth[width]; !ok {
		panic("secs2: invalid unsigned integer width")
	}

	return &uintValue{width: width, values: util.CloneSlice(values, 0)}
}

func (v *uintValue) Type() ValueType { return uintTypesByWidth[v.width] }

func (v *uintValue) Size() int { return len(v.values) }

func (v *uintValue) Uint() ([]uint64, error) { return v.values, nil }

func (v *uintValue) Equal(other Value) bool {
	o, ok := other.(*uintValue)
	if !ok || v.width != o.width || len(v.values) != len(o.values) {
		return false
	}

	for i, x := range v.values {
		if x != o.values[i] {
			return false
		}
	}

	return true
}

func (v *uintValue) encodeBody(buf []byte) []byte {
	switch v.width {
	case 1:
		for _, x := range v.values {
			buf = append(buf, byte(x))
		}
	case 2:
		for _, x := range v.values {
			buf = binary.BigEndian.AppendUint16(buf, uint16(x))
		}
	case 4:
		for _, x := range v.values {
			buf = binary.BigEndian.AppendUint32(buf, uint32(x))
		}
	case 8:
		for _, x := range v.values {
			buf = binary.BigEndian.AppendUint64(buf, x)
		}
	}

	return buf
}

func decodeUint(data []byte, length, width int) (Value, error) {
	if len(data) < length {
		return nil, newCodecError(KindIncomplete, "u%d item needs %d bytes, have %d", width, length, len(data))
	}

	count := length / width
	values := make([]uint64, count)
	for i := 0; i < count; i++ {
		start := i * width
		switch width {
		case 1:
			values[i] = uint64(data[start])
		case 2:
			values[i] = uint64(binary.BigEndian.Uint16(data[start:]))
		case 4:
			values[i] = uint64(binary.BigEndian.Uint32(data[start:]))
		case 8:
			values[i] = binary.BigEndian.Uint64(data[start:])
		}
	}

	return &uintValue{width: width, values: values}, nil
}
