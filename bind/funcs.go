package bind

// Signatures of the imported entry points. A declaration is a named func
// type; the zsyscall implementations on Windows are values of these types.
type (
	SendMessageWFunc       func(hWnd HWND, msg UINT, wParam WPARAM, lParam LPARAM) LRESULT
	SendMessageRectFunc    func(hWnd HWND, msg UINT, wParam WPARAM, rect *Rect) LRESULT
	CallNextHookExFunc     func(hhk HHOOK, nCode INT, wParam WPARAM, lParam LPARAM) LRESULT
	SetWindowsHookExWFunc  func(idHook INT, lpfn HOOKPROC, hmod HINSTANCE, threadID DWORD) HHOOK
	GetWindowRectFunc      func(hWnd HWND, rect *Rect) BOOL
	GetWindowInfoFunc      func(hWnd HWND, info *WindowInfo) BOOL
	SetWindowPosFunc       func(hWnd, insertAfter HWND, x, y, cx, cy INT, flags UINT) BOOL
	TrackMouseEventFunc    func(event *TrackMouseEventInfo) BOOL
	GetMessageWFunc        func(msg *Msg, hWnd HWND, filterMin, filterMax UINT) BOOL
	DispatchMessageWFunc   func(msg *Msg) LRESULT
	GlobalMemoryStatusFunc func(buf *MemoryStatusEx) BOOL
	GetOpenFileNameWFunc   func(ofn *OpenFileName) BOOL
	SHGetFileInfoWFunc     func(path *WCHAR, attrs DWORD, info *ShFileInfo, cbInfo UINT, flags UINT) DWORD_PTR
	SHBrowseForFolderWFunc func(bi *BrowseInfo) *ItemIDList
	SHGetStockIconInfoFunc func(siid SHSTOCKICONID, flags UINT, info *ShStockIconInfo) HRESULT
)
