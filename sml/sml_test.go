package sml

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-secs2/secs2"
)

func TestRender_Leaves(t *testing.T) {
	tests := []struct {
		description string
		value       secs2.Value
		expected    string
	}{
		{
			description: "empty leaf",
			value:       secs2.I1[int](),
			expected:    "<I1 [0]>",
		},
		{
			description: "binary uses uppercase hex octets",
			value:       secs2.B(0x00, 0x01, 0xAB, 0xFF),
			expected:    "<B [4] 0x00 0x01 0xAB 0xFF>",
		},
		{
			description: "boolean renders true/false",
			value:       secs2.BOOLEAN(true, false),
			expected:    "<Boolean [2] true false>",
		},
		{
			description: "empty ascii has no quotes",
			value:       secs2.A(""),
			expected:    "<A [0]>",
		},
		{
			description: "ascii is quoted once, after the count",
			value:       secs2.A("hello"),
			expected:    `<A [5] "hello">`,
		},
		{
			description: "signed integers keep their natural sign",
			value:       secs2.I2(-1, 0, 42),
			expected:    "<I2 [3] -1 0 42>",
		},
		{
			description: "unsigned integers",
			value:       secs2.U4(0, 4294967295),
			expected:    "<U4 [2] 0 4294967295>",
		},
		{
			description: "f4 uses shortest round-trip decimal at binary32 precision",
			value:       secs2.F4(0.5, -1.25),
			expected:    "<F4 [2] 0.5 -1.25>",
		},
		{
			description: "f8 uses shortest round-trip decimal",
			value:       secs2.F8(3.141592653589793),
			expected:    "<F8 [1] 3.141592653589793>",
		},
		{
			description: "u8 count is elements, not bytes",
			value:       secs2.U8(1, 2),
			expected:    "<U8 [2] 1 2>",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require.Equal(test.expected, Render(test.value))
	}
}

func TestRender_EmptyList(t *testing.T) {
	require := require.New(t)

	require.Equal("<L [0]\n>", Render(secs2.L()))
}

func TestRender_MixedTree(t *testing.T) {
	require := require.New(t)

	v := secs2.L(
		secs2.I1[int](),
		secs2.B(0x01, 0x02),
		secs2.L(
			secs2.I1[int](),
			secs2.B(0x01, 0x02),
		),
		secs2.A("hello"),
	)

	expected := "<L [4]\n" +
		"    <I1 [0]>\n" +
		"    <B [2] 0x01 0x02>\n" +
		"    <L [2]\n" +
		"        <I1 [0]>\n" +
		"        <B [2] 0x01 0x02>\n" +
		"    >\n" +
		`    <A [5] "hello">` + "\n" +
		">"

	require.Equal(expected, Render(v))
}

func TestRender_IndentWidthOption(t *testing.T) {
	require := require.New(t)

	v := secs2.L(secs2.U1(1), secs2.L(secs2.A("x")))

	expected := "<L [2]\n" +
		"  <U1 [1] 1>\n" +
		"  <L [1]\n" +
		`    <A [1] "x">` + "\n" +
		"  >\n" +
		">"
	require.Equal(expected, Render(v, WithIndentWidth(2)))

	flushLeft := "<L [2]\n" +
		"<U1 [1] 1>\n" +
		"<L [1]\n" +
		`<A [1] "x">` + "\n" +
		">\n" +
		">"
	require.Equal(flushLeft, Render(v, WithIndentWidth(0)))
}

func TestRender_NestedEmptyList(t *testing.T) {
	require := require.New(t)

	expected := "<L [1]\n" +
		"    <L [0]\n" +
		"    >\n" +
		">"
	require.Equal(expected, Render(secs2.L(secs2.L())))
}
