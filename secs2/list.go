package secs2

import "github.com/arloliu/go-secs2/internal/util"

// listValue is an immutable, ordered sequence of child Values.
//
// Its Size is the number of direct children only; grandchildren are not
// counted. Equality is structural and recursive.
type listValue struct {
	baseValue
	children []Value
}

// NewList builds a List Value from the given children, in order. The
// slice is copied, so later mutation of the caller's slice does not affect
// the returned Value.
func NewList(children ...Value) Value {
	return &listValue{children: util.CloneSlice(children, 0)}
}

func (v *listValue) Type() ValueType { return ListType }

func (v *listValue) Size() int { return len(v.children) }

func (v *listValue) List() ([]Value, error) { return v.children, nil }

func (v *listValue) Equal(other Value) bool {
	o, ok := other.(*listValue)
	if !ok || len(v.children) != len(o.children) {
		return false
	}

	for i, child := range v.children {
		if !child.Equal(o.children[i]) {
			return false
		}
	}

	return true
}

// encodeBody is unused for List: the message codec encodes each child as
// its own complete message rather than treating the list as a leaf body.
func (v *listValue) encodeBody(buf []byte) []byte { return buf }
