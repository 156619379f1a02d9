package secs2

import "fmt"

// MaxLength is the largest value a header's length field can carry: three
// big-endian bytes, 2^24-1. It bounds a leaf's payload byte count and a
// list's direct child count alike.
const MaxLength = 1<<24 - 1

// ValueType identifies one of the 14 SECS-II node variants: List plus the
// 13 leaf types. It is a closed set fixed by the SEMI E5 format-code table;
// there is no Unknown member here because decode never materializes a
// Value for an unrecognized format code, it fails with KindUnknownType
// instead.
type ValueType struct {
	name       string
	smlTag     string
	formatCode byte
	width      int // element byte width; 0 for List
}

// Name returns the type's identifier, e.g. "list", "i2", "ascii".
func (t ValueType) Name() string { return t.name }

// SMLTag returns the tag used inside angle brackets when rendering SML,
// e.g. "L", "I2", "Boolean". It's only ever consumed by package sml.
func (t ValueType) SMLTag() string { return t.smlTag }

// FormatCode returns the 6-bit SECS-II format code for the type.
func (t ValueType) FormatCode() byte { return t.formatCode }

// Width returns the element byte width for a leaf type, or 0 for List
// (whose "elements" are child nodes, not fixed-width bytes).
func (t ValueType) Width() int { return t.width }

func (t ValueType) String() string { return t.name }

var (
	ListType    = ValueType{name: "list", smlTag: "L", formatCode: 0b000000, width: 0}
	BinaryType  = ValueType{name: "binary", smlTag: "B", formatCode: 0b001000, width: 1}
	BooleanType = ValueType{name: "boolean", smlTag: "Boolean", formatCode: 0b001001, width: 1}
	ASCIIType   = ValueType{name: "ascii", smlTag: "A", formatCode: 0b010000, width: 1}
	Int8Type    = ValueType{name: "i1", smlTag: "I1", formatCode: 0b011001, width: 1}
	Int16Type   = ValueType{name: "i2", smlTag: "I2", formatCode: 0b011010, width: 2}
	Int32Type   = ValueType{name: "i4", smlTag: "I4", formatCode: 0b011100, width: 4}
	Int64Type   = ValueType{name: "i8", smlTag: "I8", formatCode: 0b011000, width: 8}
	Uint8Type   = ValueType{name: "u1", smlTag: "U1", formatCode: 0b101001, width: 1}
	Uint16Type  = ValueType{name: "u2", smlTag: "U2", formatCode: 0b101010, width: 2}
	Uint32Type  = ValueType{name: "u4", smlTag: "U4", formatCode: 0b101100, width: 4}
	Uint64Type  = ValueType{name: "u8", smlTag: "U8", formatCode: 0b101000, width: 8}
	Float32Type = ValueType{name: "f4", smlTag: "F4", formatCode: 0b100100, width: 4}
	Float64Type = ValueType{name: "f8", smlTag: "F8", formatCode: 0b100000, width: 8}
)

// leafTypesByFormatCode maps the 13 leaf format codes to their ValueType,
// used by the message codec to reject anything outside the 14-entry table.
var leafTypesByFormatCode = map[byte]ValueType{
	BinaryType.formatCode:  BinaryType,
	BooleanType.formatCode: BooleanType,
	ASCIIType.formatCode:   ASCIIType,
	Int8Type.formatCode:    Int8Type,
	Int16Type.formatCode:   Int16Type,
	Int32Type.formatCode:   Int32Type,
	Int64Type.formatCode:   Int64Type,
	Uint8Type.formatCode:   Uint8Type,
	Uint16Type.formatCode:  Uint16Type,
	Uint32Type.formatCode:  Uint32Type,
	Uint64Type.formatCode:  Uint64Type,
	Float32Type.formatCode: Float32Type,
	Float64Type.formatCode: Float64Type,
}

// Value is an immutable node of a SECS-II message tree: either a List of
// child Values, or one of 13 homogeneous leaf variants.
//
// Values are plain data: freely copyable, safe to share across goroutines,
// and compared structurally with Equal. There is no API to mutate a Value
// in place; build a new one with the constructors instead.
type Value interface {
	// Type returns the node's variant.
	Type() ValueType

	// Size returns the element count for a leaf, or the direct child
	// count for a List.
	Size() int

	// Equal reports whether two Values are structurally equal: same
	// variant and same sequence of elements (leaves) or same sequence
	// of equal children (lists).
	Equal(other Value) bool

	// List returns the child Values if the variant is List, and an
	// error otherwise.
	List() ([]Value, error)
	// Binary returns the octet sequence if the variant is Binary, and
	// an error otherwise.
	Binary() ([]byte, error)
	// Boolean returns the truth values if the variant is Boolean, and
	// an error otherwise.
	Boolean() ([]bool, error)
	// ASCII returns the character string if the variant is ASCII, and
	// an error otherwise.
	ASCII() (string, error)
	// Int returns the signed integer elements (widened to int64) if the
	// variant is I1/I2/I4/I8, and an error otherwise.
	Int() ([]int64, error)
	// Uint returns the unsigned integer elements (widened to uint64) if
	// the variant is U1/U2/U4/U8, and an error otherwise.
	Uint() ([]uint64, error)
	// Float returns the floating-point elements (widened to float64) if
	// the variant is F4/F8, and an error otherwise.
	Float() ([]float64, error)

	// encodeBody appends the item body (leaf payload or, for List, is
	// unused, see appendMessage) to buf and returns the result.
	encodeBody(buf []byte) []byte

	// sealed marks Value as implementable only from within this
	// package, since the 14 variants are a closed set.
	sealed()
}

// baseValue provides the default "wrong variant" implementation for every
// typed accessor. Each concrete leaf or list type embeds baseValue and
// overrides only the one accessor its variant actually supports.
type baseValue struct{}

func (baseValue) sealed() {}

func (baseValue) List() ([]Value, error) {
	return nil, fmt.Errorf("value is not a list")
}

func (baseValue) Binary() ([]byte, error) {
	return nil, fmt.Errorf("value does not hold binary data")
}

func (baseValue) Boolean() ([]bool, error) {
	return nil, fmt.Errorf("value does not hold boolean data")
}

func (baseValue) ASCII() (string, error) {
	return "", fmt.Errorf("value does not hold ASCII data")
}

func (baseValue) Int() ([]int64, error) {
	return nil, fmt.Errorf("value does not hold signed integer data")
}

func (baseValue) Uint() ([]uint64, error) {
	return nil, fmt.Errorf("value does not hold unsigned integer data")
}

func (baseValue) Float() ([]float64, error) {
	return nil, fmt.Errorf("value does not hold floating-point data")
}
