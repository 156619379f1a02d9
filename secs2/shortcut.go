package secs2

import "github.com/arloliu/go-secs2/internal/util"

// Shortcut constructors for building message trees tersely in tests and
// tooling, one per SML tag. The numeric ones are generic so callers can pass
// untyped constants or any Go integer/float type without widening by hand.
var (
	L = NewList
	A = NewASCII
)

// B builds a Binary Value from the given octets.
func B(octets ...byte) Value {
	return NewBinary(octets)
}

// BOOLEAN builds a Boolean Value from the given truth values.
func BOOLEAN(values ...bool) Value {
	return NewBoolean(values)
}

func I1[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32](values ...T) Value {
	return &intValue{width: 1, values: util.AppendInt64Slice(nil, values)}
}

func I2[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32](values ...T) Value {
	return &intValue{width: 2, values: util.AppendInt64Slice(nil, values)}
}

func I4[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32](values ...T) Value {
	return &intValue{width: 4, values: util.AppendInt64Slice(nil, values)}
}

func I8[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32](values ...T) Value {
	return &intValue{width: 8, values: util.AppendInt64Slice(nil, values)}
}

func U1[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](values ...T) Value {
	return &uintValue{width: 1, values: util.AppendUint64Slice(nil, values)}
}

func U2[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](values ...T) Value {
	return &uintValue{width: 2, values: util.AppendUint64Slice(nil, values)}
}

func U4[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](values ...T) Value {
	return &uintValue{width: 4, values: util.AppendUint64Slice(nil, values)}
}

func U8[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](values ...T) Value {
	return &uintValue{width: 8, values: util.AppendUint64Slice(nil, values)}
}

func F4[T float32 | float64 | int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](values ...T) Value {
	return &floatValue{width: 4, values: util.AppendFloat64Slice(nil, values)}
}

func F8[T float32 | float64 | int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](values ...T) Value {
	return &floatValue{width: 8, values: util.AppendFloat64Slice(nil, values)}
}
