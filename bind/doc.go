// Package bind declares the Go side of the Win32 boundary: structures that
// overlay native memory and the func types through which DLL exports are
// called.
//
// Structures use exported, capitalized versions of the native member names
// except where a Go name reads better (Msg.HWnd, Msg.P). Fields standing in
// for native anonymous unions are named after the union's first member.
//
// Every import is recorded in a Registry:
//
//	imp, err := bind.Default().Resolve("SendMessageW",
//		reflect.TypeFor[bind.HWND](), reflect.TypeFor[bind.UINT](),
//		reflect.TypeFor[bind.WPARAM](), reflect.TypeFor[bind.LPARAM]())
//
// An entry point may be declared more than once with different parameter
// types; Resolve selects by exact parameter list.
//
// On Windows the declarations are backed by lazily loaded procedures from
// golang.org/x/sys/windows, and FindProc checks that an entry point exists.
package bind
