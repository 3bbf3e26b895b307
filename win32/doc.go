// Package win32 models the subset of the Windows SDK headers that the
// verifier checks against: typedefs from windef.h and basetsd.h, the window,
// shell, common dialog and DirectDraw structures, and the prototypes of the
// user32, kernel32, comdlg32 and shell32 exports the binding layer imports.
//
// Declarations carry the header packing in effect when the SDK is compiled
// for each architecture. shellapi.h and commdlg.h are byte-packed on 386
// only; shtypes.h item ids are byte-packed everywhere.
//
// Lay out a declaration with the ctype/layout package:
//
//	info, err := layout.NewCalculator(winabi.ArchAMD64).Calculate(win32.MSG)
//
// Default returns a Catalog that indexes every declaration by native name.
package win32
