package secs2

import (
	"sync"

	"github.com/arloliu/go-secs2/logger"
)

// DefaultMaxDepth bounds list nesting during Decode. A buffer that nests
// lists deeper than this fails with KindTooDeep rather than exhausting the
// call stack on adversarial input.
const DefaultMaxDepth = 64

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	maxDepth int
	log      logger.Logger
}

// WithMaxDepth overrides the default list-nesting depth limit.
func WithMaxDepth(n int) DecodeOption {
	return func(c *decodeConfig) { c.maxDepth = n }
}

// WithLogger makes Decode emit debug-level tracing (decoded type, bytes
// consumed, failures) through l. Without this option Decode never logs.
func WithLogger(l logger.Logger) DecodeOption {
	return func(c *decodeConfig) { c.log = l }
}

// Encode serializes v to its SECS-II wire form.
//
// If v (or any descendant, for a List) declares a length exceeding
// MaxLength, Encode returns a KindLengthOverflow error and no bytes; the
// operation is all-or-nothing.
func Encode(v Value) ([]byte, error) {
	buf, err := appendMessage(nil, v)
	if err != nil {
		return nil, err
	}

	return buf, nil
}

// appendMessage is the recursive encode driver. On failure it returns buf
// truncated back to its length on entry, so a caller that folds failures
// up through nested lists never observes a partially written subtree.
func appendMessage(buf []byte, v Value) ([]byte, error) {
	start := len(buf)
	typ := v.Type()

	var length int
	if typ == ListType {
		children, _ := v.List()
		length = len(children)
	} else {
		length = v.Size() * typ.Width()
	}

	if length > MaxLength {
		return buf[:start], newCodecError(KindLengthOverflow, "declared length %d for %s exceeds MaxLength %d", length, typ.Name(), MaxLength)
	}

	buf = encodeHeader(buf, typ, length)

	if typ != ListType {
		return v.encodeBody(buf), nil
	}

	children, _ := v.List()
	for _, child := range children {
		var err error
		buf, err = appendMessage(buf, child)
		if err != nil {
			return buf[:start], err
		}
	}

	return buf, nil
}

// decoder holds the mutable scan state for one Decode call. Instances are
// pooled to avoid an allocation per call; the pool is invisible at the API
// boundary.
type decoder struct {
	input    []byte
	pos      int
	depth    int
	maxDepth int
}

var decoderPool = sync.Pool{New: func() any { return new(decoder) }}

// Decode parses one SECS-II message from the front of data and returns the
// decoded Value plus the number of bytes consumed. Bytes beyond the
// decoded message are left untouched; the caller uses consumed to locate
// them.
func Decode(data []byte, opts ...DecodeOption) (Value, int, error) {
	cfg := decodeConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	d, _ := decoderPool.Get().(*decoder)
	d.input = data
	d.pos = 0
	d.depth = 0
	d.maxDepth = cfg.maxDepth

	v, err := d.decodeMessage()
	consumed := d.pos

	decoderPool.Put(d)

	if err != nil {
		if cfg.log != nil {
			cfg.log.Debug("secs2 decode failed", "error", err, "pos", consumed)
		}

		return nil, 0, err
	}

	if cfg.log != nil {
		cfg.log.Debug("secs2 message decoded", "type", v.Type().Name(), "size", v.Size(), "consumed", consumed)
	}

	return v, consumed, nil
}

func (d *decoder) remaining() int { return len(d.input) - d.pos }

func (d *decoder) decodeMessage() (Value, error) {
	hdr, n, err := decodeHeader(d.input[d.pos:])
	if err != nil {
		return nil, err
	}
	d.pos += n

	if hdr.formatCode == ListType.formatCode {
		d.depth++
		if d.depth > d.maxDepth {
			return nil, newCodecError(KindTooDeep, "list nesting exceeds max depth %d", d.maxDepth)
		}

		v, err := d.decodeList(hdr.length)
		d.depth--

		return v, err
	}

	typ, ok := leafTypesByFormatCode[hdr.formatCode]
	if !ok {
		return nil, newCodecError(KindUnknownType, "unknown format code 0b%06b", hdr.formatCode)
	}

	if hdr.length%typ.width != 0 {
		return nil, newCodecError(KindUnalignedLength, "%s length %d is not a multiple of element width %d", typ.Name(), hdr.length, typ.width)
	}

	body := d.input[d.pos:]

	var v Value
	switch typ {
	case BinaryType:
		v, err = decodeBinary(body, hdr.length)
	case BooleanType:
		v, err = decodeBoolean(body, hdr.length)
	case ASCIIType:
		v, err = decodeASCII(body, hdr.length)
	case Int8Type, Int16Type, Int32Type, Int64Type:
		v, err = decodeInt(body, hdr.length, typ.width)
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		v, err = decodeUint(body, hdr.length, typ.width)
	case Float32Type, Float64Type:
		v, err = decodeFloat(body, hdr.length, typ.width)
	}
	if err != nil {
		return nil, err
	}

	d.pos += hdr.length

	return v, nil
}

// decodeList reads count direct children. Eager allocation is capped at
// min(count, remaining bytes / 2) since each child needs at least a
// 1-byte format byte and a 1-byte length; a hostile buffer can declare a
// 24-bit child count with no backing bytes at all.
func (d *decoder) decodeList(count int) (Value, error) {
	capHint := count
	if remCap := d.remaining() / 2; remCap < capHint {
		capHint = remCap
	}

	children := make([]Value, 0, capHint)
	for i := 0; i < count; i++ {
		child, err := d.decodeMessage()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return &listValue{children: children}, nil
}
