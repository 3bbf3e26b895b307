package win32

import "github.com/wippyai/winabi/ctype"

// https://learn.microsoft.com/en-us/windows/win32/winprog/windows-data-types
var (
	BYTE      = ctype.Typedef("BYTE", ctype.Uint8)
	SHORT     = ctype.Typedef("SHORT", ctype.Int16)
	USHORT    = ctype.Typedef("USHORT", ctype.Uint16)
	WORD      = ctype.Typedef("WORD", ctype.Uint16)
	WCHAR     = ctype.Typedef("WCHAR", ctype.Uint16)
	ATOM      = ctype.Typedef("ATOM", ctype.Uint16)
	INT       = ctype.Typedef("int", ctype.Int32)
	LONG      = ctype.Typedef("LONG", ctype.Int32)
	BOOL      = ctype.Typedef("BOOL", ctype.Int32)
	HRESULT   = ctype.Typedef("HRESULT", ctype.Int32)
	UINT      = ctype.Typedef("UINT", ctype.Uint32)
	ULONG     = ctype.Typedef("ULONG", ctype.Uint32)
	DWORD     = ctype.Typedef("DWORD", ctype.Uint32)
	COLORREF  = ctype.Typedef("COLORREF", ctype.Uint32)
	DWORDLONG = ctype.Typedef("DWORDLONG", ctype.Uint64)

	WPARAM    = ctype.Typedef("WPARAM", ctype.UintPtr)
	LPARAM    = ctype.Typedef("LPARAM", ctype.IntPtr)
	LRESULT   = ctype.Typedef("LRESULT", ctype.IntPtr)
	UINT_PTR  = ctype.Typedef("UINT_PTR", ctype.UintPtr)
	DWORD_PTR = ctype.Typedef("DWORD_PTR", ctype.UintPtr)

	LPVOID  = ctype.Typedef("LPVOID", ctype.VoidPtr)
	LPWSTR  = ctype.Typedef("LPWSTR", ctype.Pointer(WCHAR))
	LPCWSTR = ctype.Typedef("LPCWSTR", ctype.Pointer(WCHAR))

	HANDLE    = ctype.Handle("HANDLE")
	HWND      = ctype.Handle("HWND")
	HICON     = ctype.Handle("HICON")
	HBITMAP   = ctype.Handle("HBITMAP")
	HINSTANCE = ctype.Handle("HINSTANCE")
	HHOOK     = ctype.Handle("HHOOK")

	HOOKPROC      = ctype.FuncPtr("HOOKPROC")
	BFFCALLBACK   = ctype.FuncPtr("BFFCALLBACK")
	LPOFNHOOKPROC = ctype.FuncPtr("LPOFNHOOKPROC")

	DROPIMAGETYPE = ctype.Enum("DROPIMAGETYPE", nil)
	SHSTOCKICONID = ctype.Enum("SHSTOCKICONID", nil)
)

const (
	MAX_PATH = 260
)
