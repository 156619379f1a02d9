package sml

import (
	"strconv"
	"strings"

	"github.com/arloliu/go-secs2/secs2"
)

// DefaultIndentWidth is the number of spaces per nesting level.
const DefaultIndentWidth = 4

// Option configures a single Render call.
type Option func(*config)

type config struct {
	indentWidth int
}

// WithIndentWidth overrides the number of spaces each nesting level is
// indented by. Zero is allowed and produces flush-left children.
func WithIndentWidth(n int) Option {
	return func(c *config) { c.indentWidth = n }
}

// Render returns the SML text form of v.
//
// Leaves render on one line as "<TAG [count] elem elem ...>"; lists render
// across multiple lines with each child indented one level deeper and the
// closing bracket at the list's own indent. The result carries no trailing
// newline.
func Render(v secs2.Value, opts ...Option) string {
	cfg := config{indentWidth: DefaultIndentWidth}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sb strings.Builder
	renderValue(&sb, v, 0, cfg.indentWidth)

	return sb.String()
}

func renderValue(sb *strings.Builder, v secs2.Value, level, indentWidth int) {
	typ := v.Type()

	if typ == secs2.ListType {
		renderList(sb, v, level, indentWidth)
		return
	}

	sb.WriteByte('<')
	sb.WriteString(typ.SMLTag())
	sb.WriteString(" [")
	sb.WriteString(strconv.Itoa(v.Size()))
	sb.WriteByte(']')

	switch typ {
	case secs2.BinaryType:
		data, _ := v.Binary()
		for _, b := range data {
			sb.WriteString(" 0x")
			writeHexByte(sb, b)
		}
	case secs2.BooleanType:
		values, _ := v.Boolean()
		for _, b := range values {
			if b {
				sb.WriteString(" true")
			} else {
				sb.WriteString(" false")
			}
		}
	case secs2.ASCIIType:
		str, _ := v.ASCII()
		if len(str) > 0 {
			sb.WriteString(` "`)
			sb.WriteString(str)
			sb.WriteByte('"')
		}
	case secs2.Int8Type, secs2.Int16Type, secs2.Int32Type, secs2.Int64Type:
		values, _ := v.Int()
		for _, x := range values {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatInt(x, 10))
		}
	case secs2.Uint8Type, secs2.Uint16Type, secs2.Uint32Type, secs2.Uint64Type:
		values, _ := v.Uint()
		for _, x := range values {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatUint(x, 10))
		}
	case secs2.Float32Type, secs2.Float64Type:
		values, _ := v.Float()
		bitSize := 64
		if typ == secs2.Float32Type {
			bitSize = 32
		}
		for _, x := range values {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(x, 'g', -1, bitSize))
		}
	}

	sb.WriteByte('>')
}

func renderList(sb *strings.Builder, v secs2.Value, level, indentWidth int) {
	children, _ := v.List()

	sb.WriteString("<L [")
	sb.WriteString(strconv.Itoa(len(children)))
	sb.WriteByte(']')

	for _, child := range children {
		sb.WriteByte('\n')
		writeIndent(sb, (level+1)*indentWidth)
		renderValue(sb, child, level+1, indentWidth)
	}

	sb.WriteByte('\n')
	writeIndent(sb, level*indentWidth)
	sb.WriteByte('>')
}

const hexDigits = "0123456789ABCDEF"

func writeHexByte(sb *strings.Builder, b byte) {
	sb.WriteByte(hexDigits[b>>4])
	sb.WriteByte(hexDigits[b&0xF])
}

func writeIndent(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
	}
}
