package win32

import "github.com/wippyai/winabi/ctype"

const (
	User32   = "user32.dll"
	Kernel32 = "kernel32.dll"
	Shell32  = "shell32.dll"
	Comdlg32 = "comdlg32.dll"
)

// user32
var (
	SendMessageW = ctype.Func(User32, "SendMessageW", LRESULT,
		ctype.P("hWnd", HWND),
		ctype.P("Msg", UINT),
		ctype.P("wParam", WPARAM),
		ctype.P("lParam", LPARAM),
	)

	CallNextHookEx = ctype.Func(User32, "CallNextHookEx", LRESULT,
		ctype.P("hhk", HHOOK),
		ctype.P("nCode", INT),
		ctype.P("wParam", WPARAM),
		ctype.P("lParam", LPARAM),
	)

	SetWindowsHookExW = ctype.Func(User32, "SetWindowsHookExW", HHOOK,
		ctype.P("idHook", INT),
		ctype.P("lpfn", HOOKPROC),
		ctype.P("hmod", HINSTANCE),
		ctype.P("dwThreadId", DWORD),
	)

	GetWindowRect = ctype.Func(User32, "GetWindowRect", BOOL,
		ctype.P("hWnd", HWND),
		ctype.P("lpRect", ctype.Pointer(RECT)),
	)

	GetWindowInfo = ctype.Func(User32, "GetWindowInfo", BOOL,
		ctype.P("hwnd", HWND),
		ctype.P("pwi", ctype.Pointer(WINDOWINFO)),
	)

	SetWindowPos = ctype.Func(User32, "SetWindowPos", BOOL,
		ctype.P("hWnd", HWND),
		ctype.P("hWndInsertAfter", HWND),
		ctype.P("X", INT),
		ctype.P("Y", INT),
		ctype.P("cx", INT),
		ctype.P("cy", INT),
		ctype.P("uFlags", UINT),
	)

	TrackMouseEvent = ctype.Func(User32, "TrackMouseEvent", BOOL,
		ctype.P("lpEventTrack", ctype.Pointer(TRACKMOUSEEVENT)),
	)

	GetMessageW = ctype.Func(User32, "GetMessageW", BOOL,
		ctype.P("lpMsg", ctype.Pointer(MSG)),
		ctype.P("hWnd", HWND),
		ctype.P("wMsgFilterMin", UINT),
		ctype.P("wMsgFilterMax", UINT),
	)

	DispatchMessageW = ctype.Func(User32, "DispatchMessageW", LRESULT,
		ctype.P("lpMsg", ctype.Pointer(MSG)),
	)
)

// kernel32
var GlobalMemoryStatusEx = ctype.Func(Kernel32, "GlobalMemoryStatusEx", BOOL,
	ctype.P("lpBuffer", ctype.Pointer(MEMORYSTATUSEX)),
)

// comdlg32
var GetOpenFileNameW = ctype.Func(Comdlg32, "GetOpenFileNameW", BOOL,
	ctype.P("unnamedParam1", ctype.Pointer(OPENFILENAMEW)),
)

// shell32
var (
	SHGetFileInfoW = ctype.Func(Shell32, "SHGetFileInfoW", DWORD_PTR,
		ctype.P("pszPath", LPCWSTR),
		ctype.P("dwFileAttributes", DWORD),
		ctype.P("psfi", ctype.Pointer(SHFILEINFOW)),
		ctype.P("cbFileInfo", UINT),
		ctype.P("uFlags", UINT),
	)

	SHBrowseForFolderW = ctype.Func(Shell32, "SHBrowseForFolderW", PIDLIST_ABSOLUTE,
		ctype.P("lpbi", ctype.Pointer(BROWSEINFOW)),
	)

	SHGetStockIconInfo = ctype.Func(Shell32, "SHGetStockIconInfo", HRESULT,
		ctype.P("siid", SHSTOCKICONID),
		ctype.P("uFlags", UINT),
		ctype.P("psii", ctype.Pointer(SHSTOCKICONINFO)),
	)
)
