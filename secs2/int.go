package secs2

import (
	"encoding/binary"

	"github.com/arloliu/go-secs2/internal/util"
)

// intValue is an immutable sequence of signed two's-complement integers,
// all the same byte width (1, 2, 4, or 8).
type intValue struct {
	baseValue
	width  int
	values []int64
}

var intTypesByWidth = map[int]ValueType{1: Int8Type, 2: Int16Type, 4: Int32Type, 8: Int64Type}

// NewInt builds an I1/I2/I4/I8 Value (selected by width, in bytes) from
// the given values, each widened from its own width's range. width must
// be 1, 2, 4, or 8; any other value panics, as it is a programming error
// rather than a data error.
func NewInt(width int, values []int64) Value {
	if _, ok := intTypesByWidth[width]; !ok {
		panic("secs2: invalid signed integer width")
	}

	return &intValue{width: width, values: util.CloneSlice(values, 0)}
}

func (v *intValue) Type() ValueType { return intTypesByWidth[v.width] }

func (v *intValue) Size() int { return len(v.values) }

func (v *intValue) Int() ([]int64, error) { return v.values, nil }

func (v *intValue) Equal(other Value) bool {
	o, ok := other.(*intValue)
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

func (v *intValue) encodeBody(buf []byte) []byte {
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
			buf = binary.BigEndian.AppendUint64(buf, uint64(x))
		}
	}

	return buf
}

func decodeInt(data []byte, length, width int) (Value, error) {
	if len(data) < length {
		return nil, newCodecError(KindIncomplete, "i%d item needs %d bytes, have %d", width, length, len(data))
	}

	count := length / width
	values := make([]int64, count)
	for i := 0; i < count; i++ {
		start := i * width
		switch width {
		case 1:
			values[i] = int64(int8(data[start]))
		case 2:
			values[i] = int64(int16(binary.BigEndian.Uint16(data[start:])))
		case 4:
			values[i] = int64(int32(binary.BigEndian.Uint32(data[start:])))
		case 8:
			values[i] = int64(binary.BigEndian.Uint64(data[start:]))
		}
	}

	return &intValue{width: width, values: values}, nil
}
