// Package ctype describes native C types the way the Windows headers declare
// them: fixed-width scalars, pointer-sized handles and integers, callbacks,
// enums, arrays, and structs or unions with optional #pragma pack.
//
// Declarations are built with small constructors:
//
//	var POINT = ctype.Struct("POINT",
//		ctype.F("x", LONG),
//		ctype.F("y", LONG),
//	)
//
// Sizes and offsets are computed by the layout subpackage for a chosen
// architecture; ctype itself holds no architecture-dependent state.
package ctype
