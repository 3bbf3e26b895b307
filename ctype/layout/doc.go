// Package layout computes MSVC struct layout for ctype declarations.
//
// # Layout Rules
//
//   - Scalars: size equals alignment, including 8-byte integers on x86
//   - Pointers, handles, callbacks, pointer-sized integers: 4 bytes on 386, 8 elsewhere
//   - Enums: laid out as their underlying integer (int unless declared otherwise)
//   - Arrays: element alignment, element size times length
//   - Structs: members in order, each aligned to min(alignment, pack); total
//     size rounded up to the largest such alignment
//   - Unions: every member at offset zero, size of the largest member rounded
//     to the union's alignment
//
// Members of anonymous structs and unions are promoted, so OffsetOf(t, "dwCaps4")
// resolves through DDSCAPS2's nameless union.
//
// # Usage
//
//	calc := layout.NewCalculator(winabi.ArchAMD64)
//	info, err := calc.Calculate(win32.MSG)
//	// info.Size == 48, info.Fields["pt"].Offset == 36
package layout
