// Package secs2 implements the SECS-II (SEMI E5) wire format: a recursive,
// tagged binary encoding used to exchange commands and telemetry between
// semiconductor-manufacturing equipment and host controllers.
//
// A Value is an immutable tree: either a List of child Values, or one of
// 13 homogeneous leaf variants (Binary, Boolean, ASCII, I1/I2/I4/I8,
// U1/U2/U4/U8, F4/F8). Decode and Encode are the two sides of the wire
// codec; package sml renders a Value as SML (SECS Message Language) text.
//
// Usage example:
//
//	msg := secs2.NewList(
//	    secs2.NewInt(4, []int64{1, 2, 3}),
//	    secs2.NewASCII("hello"),
//	)
//	data, err := secs2.Encode(msg)
//	decoded, consumed, err := secs2.Decode(data)
//
// The shortcut constructors build the same tree more tersely:
//
//	msg := secs2.L(secs2.I4(1, 2, 3), secs2.A("hello"))
package secs2
