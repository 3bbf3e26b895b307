package bind

// https://learn.microsoft.com/en-us/windows/win32/winprog/windows-data-types
type (
	BYTE      byte
	USHORT    uint16
	WORD      uint16
	WCHAR     uint16
	ATOM      uint16
	INT       int32
	LONG      int32
	BOOL      int32
	HRESULT   int32
	UINT      uint32
	DWORD     uint32
	COLORREF  uint32
	DWORDLONG uint64

	WPARAM    uintptr
	LPARAM    uintptr
	LRESULT   uintptr
	UINT_PTR  uintptr
	DWORD_PTR uintptr

	HANDLE    uintptr
	HWND      uintptr
	HICON     uintptr
	HBITMAP   uintptr
	HINSTANCE uintptr
	HHOOK     uintptr
)

// Callbacks cross the boundary as the address returned by
// windows.NewCallback.
type (
	HOOKPROC      uintptr
	BFFCALLBACK   uintptr
	LPOFNHOOKPROC uintptr
)

type (
	DROPIMAGETYPE int32
	SHSTOCKICONID int32
)

const MAX_PATH = 260
