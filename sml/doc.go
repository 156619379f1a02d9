// Package sml renders SECS-II message values as SML (SECS Message Language),
// the indented bracketed text form used in equipment logs and tests.
//
// Only the printing direction is provided; parsing SML text back into values
// is out of scope for this package.
package sml
