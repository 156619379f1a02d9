package secs2

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/go-secs2/internal/util"
)

// floatValue is an immutable sequence of IEEE-754 floating-point numbers,
// all the same byte width (4 or 8). NaN and infinities round-trip
// bit-exact since the codec treats them as raw bit patterns; F4 elements
// are held as float64 but encoded and compared as binary32.
type floatValue struct {
	baseValue
	width  int
	values []float64
}

var floatTypesByWidth = map[int]ValueType{4: Float32Type, 8: Float64Type}

// NewFloat builds an F4/F8 Value (selected by width, in bytes) from the
// given values. width must be 4 or 8; any other value panics.
func NewFloat(width int, values []float64) Value {
	if _, ok := floatTypesByWidth[width]; !ok {
		panic("secs2: invalid floating-point width")
	}

	return &floatValue{width: width, values: util.CloneSlice(values, 0)}
}

func (v *floatValue) Type() ValueType { return floatTypesByWidth[v.width] }

func (v *floatValue) Size() int { return len(v.values) }

func (v *floatValue) Float() ([]float64, error) { return v.values, nil }

func (v *floatValue) Equal(other Value) bool {
	o, ok := other.(*floatValue)
	if !ok || v.width != o.width || len(v.values) != len(o.values) {
		return false
	}

	for i, x := range v.values {
		// Bit-exact comparison so NaN == NaN and +0 != -0, matching the
		// "preserved bit-exact" decode contract rather than IEEE ==. F4
		// elements are compared at their binary32 wire precision.
		if v.width == 4 {
			if math.Float32bits(float32(x)) != math.Float32bits(float32(o.values[i])) {
				return false
			}
		} else if math.Float64bits(x) != math.Float64bits(o.values[i]) {
			return false
		}
	}

	return true
}

func (v *floatValue) encodeBody(buf []byte) []byte {
	switch v.width {
	case 4:
		for _, x := range v.values {
			buf = binary.BigEndian.AppendUint32(buf, math.Float32bits(float32(x)))
		}
	case 8:
		for _, x := range v.values {
			buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(x))
		}
	}

	return buf
}

func decodeFloat(data []byte, length, width int) (Value, error) {
	if len(data) < length {
		return nil, newCodecError(KindIncomplete, "f%d item needs %d bytes, have %d", width, length, len(data))
	}

	count := length / width
	values := make([]float64, count)
	for i := 0; i < count; i++ {
		start := i * width
		switch width {
		case 4:
			values[i] = float64(math.Float32frombits(binary.BigEndian.Uint32(data[start:])))
		case 8:
			values[i] = math.Float64frombits(binary.BigEndian.Uint64(data[start:]))
		}
	}

	return &floatValue{width: width, values: values}, nil
}
