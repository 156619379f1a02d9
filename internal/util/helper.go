// Package util holds small generic slice helpers shared by the codec packages.
package util

// CloneSlice returns a copy of src in a new slice of length cloneSize,
// zero-padded or truncated as needed. A cloneSize of 0 means "same length as src".
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// AppendInt64Slice converts values element-wise to int64 and appends them to target.
//
// uint64 is excluded from the constraint, but uint is not: a uint value above
// math.MaxInt64 wraps to a negative number, the same as a direct int64 conversion.
func AppendInt64Slice[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32](target []int64, values []T) []int64 {
	target = append(target, make([]int64, len(values))...)
	varLen := len(values)
	targetLen := len(target)
	for i, v := range values {
		target[targetLen-varLen+i] = int64(v)
	}
	return target
}

// AppendUint64Slice converts values element-wise to uint64 and appends them to target.
//
// Signed inputs are assumed non-negative; a negative value wraps, the same as a
// direct uint64 conversion would.
func AppendUint64Slice[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](target []uint64, values []T) []uint64 {
	target = append(target, make([]uint64, len(values))...)
	varLen := len(values)
	targetLen := len(target)
	for i, v := range values {
		target[targetLen-varLen+i] = uint64(v)
	}
	return target
}

// AppendFloat64Slice converts values element-wise to float64 and appends them to
// target. Integer inputs beyond 2^53 lose precision, as in any float64 conversion.
func AppendFloat64Slice[T float32 | float64 | int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](target []float64, values []T) []float64 {
	target = append(target, make([]float64, len(values))...)
	varLen := len(values)
	targetLen := len(target)
	for i, v := range values {
		target[targetLen-varLen+i] = float64(v)
	}
	return target
}
