// Package probe measures Go declarations with reflect: whole-type size,
// field offsets along a dotted path and the width of function parameters.
//
// Only kinds with a fixed in-memory representation can overlay native data.
// Strings, slices, maps, interfaces, channels and func values are rejected
// as unsupported wherever they appear by value.
package probe
