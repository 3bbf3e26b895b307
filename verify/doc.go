// Package verify checks that Go declarations overlay their Win32
// counterparts byte for byte.
//
// A StructCase pairs a native struct from the win32 catalog with a Go type
// and lists which native member each Go field stands for. Evaluation
// compares the whole size (unless the case is HeaderOnly) and the offset of
// every mapped member. Native paths can index arrays and reach into
// anonymous unions, so a Go struct that flattens "rgrc[3]" into three
// fields, or folds a union into one field, is still checked member by
// member.
//
// A FuncCase names a native prototype and the exact Go parameter types of
// one import declaration. The declaration is resolved from a bind.Registry
// and the return and parameter widths are compared. Function pointers
// measure as handles and enums as their underlying integer.
//
// There is no tolerance: any difference is a failure, and every field is
// checked independently.
//
// In a test:
//
//	func TestLayouts(t *testing.T) {
//		for _, c := range verify.Cases() {
//			t.Run(c.Name, func(t *testing.T) { verify.CheckStruct(t, c) })
//		}
//	}
//
// Run evaluates a filtered table concurrently and returns a Report in table
// order; the abicheck command is built on it.
package verify
