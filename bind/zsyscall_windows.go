//go:build windows

package bind

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modUser32   = windows.NewLazySystemDLL(User32)
	modKernel32 = windows.NewLazySystemDLL(Kernel32)
	modShell32  = windows.NewLazySystemDLL(Shell32)
	modComdlg32 = windows.NewLazySystemDLL(Comdlg32)

	modules = map[string]*windows.LazyDLL{
		User32:   modUser32,
		Kernel32: modKernel32,
		Shell32:  modShell32,
		Comdlg32: modComdlg32,
	}

	procSendMessageW         = modUser32.NewProc("SendMessageW")
	procCallNextHookEx       = modUser32.NewProc("CallNextHookEx")
	procSetWindowsHookExW    = modUser32.NewProc("SetWindowsHookExW")
	procGetWindowRect        = modUser32.NewProc("GetWindowRect")
	procGetWindowInfo        = modUser32.NewProc("GetWindowInfo")
	procSetWindowPos         = modUser32.NewProc("SetWindowPos")
	procTrackMouseEvent      = modUser32.NewProc("TrackMouseEvent")
	procGetMessageW          = modUser32.NewProc("GetMessageW")
	procDispatchMessageW     = modUser32.NewProc("DispatchMessageW")
	procGlobalMemoryStatusEx = modKernel32.NewProc("GlobalMemoryStatusEx")
	procGetOpenFileNameW     = modComdlg32.NewProc("GetOpenFileNameW")
	procSHGetFileInfoW       = modShell32.NewProc("SHGetFileInfoW")
	procSHBrowseForFolderW   = modShell32.NewProc("SHBrowseForFolderW")
	procSHGetStockIconInfo   = modShell32.NewProc("SHGetStockIconInfo")
)

// FindProc loads the DLL named by imp and looks up its entry point.
func FindProc(imp Import) (*windows.LazyProc, error) {
	mod, ok := modules[imp.DLL]
	if !ok {
		mod = windows.NewLazySystemDLL(imp.DLL)
	}
	proc := mod.NewProc(imp.Entry)
	if err := proc.Find(); err != nil {
		return nil, fmt.Errorf("%s: %w", imp, err)
	}
	return proc, nil
}

var (
	SendMessageW SendMessageWFunc = func(hWnd HWND, msg UINT, wParam WPARAM, lParam LPARAM) LRESULT {
		r0, _, _ := syscall.SyscallN(procSendMessageW.Addr(), uintptr(hWnd), uintptr(msg), uintptr(wParam), uintptr(lParam))
		return LRESULT(r0)
	}

	SendMessageRect SendMessageRectFunc = func(hWnd HWND, msg UINT, wParam WPARAM, rect *Rect) LRESULT {
		r0, _, _ := syscall.SyscallN(procSendMessageW.Addr(), uintptr(hWnd), uintptr(msg), uintptr(wParam), uintptr(unsafe.Pointer(rect)))
		return LRESULT(r0)
	}

	CallNextHookEx CallNextHookExFunc = func(hhk HHOOK, nCode INT, wParam WPARAM, lParam LPARAM) LRESULT {
		r0, _, _ := syscall.SyscallN(procCallNextHookEx.Addr(), uintptr(hhk), uintptr(nCode), uintptr(wParam), uintptr(lParam))
		return LRESULT(r0)
	}

	SetWindowsHookExW SetWindowsHookExWFunc = func(idHook INT, lpfn HOOKPROC, hmod HINSTANCE, threadID DWORD) HHOOK {
		r0, _, _ := syscall.SyscallN(procSetWindowsHookExW.Addr(), uintptr(idHook), uintptr(lpfn), uintptr(hmod), uintptr(threadID))
		return HHOOK(r0)
	}

	GetWindowRect GetWindowRectFunc = func(hWnd HWND, rect *Rect) BOOL {
		r0, _, _ := syscall.SyscallN(procGetWindowRect.Addr(), uintptr(hWnd), uintptr(unsafe.Pointer(rect)))
		return BOOL(r0)
	}

	GetWindowInfo GetWindowInfoFunc = func(hWnd HWND, info *WindowInfo) BOOL {
		r0, _, _ := syscall.SyscallN(procGetWindowInfo.Addr(), uintptr(hWnd), uintptr(unsafe.Pointer(info)))
		return BOOL(r0)
	}

	SetWindowPos SetWindowPosFunc = func(hWnd, insertAfter HWND, x, y, cx, cy INT, flags UINT) BOOL {
		r0, _, _ := syscall.SyscallN(procSetWindowPos.Addr(), uintptr(hWnd), uintptr(insertAfter),
			uintptr(x), uintptr(y), uintptr(cx), uintptr(cy), uintptr(flags))
		return BOOL(r0)
	}

	TrackMouseEvent TrackMouseEventFunc = func(event *TrackMouseEventInfo) BOOL {
		r0, _, _ := syscall.SyscallN(procTrackMouseEvent.Addr(), uintptr(unsafe.Pointer(event)))
		return BOOL(r0)
	}

	GetMessageW GetMessageWFunc = func(msg *Msg, hWnd HWND, filterMin, filterMax UINT) BOOL {
		r0, _, _ := syscall.SyscallN(procGetMessageW.Addr(), uintptr(unsafe.Pointer(msg)), uintptr(hWnd), uintptr(filterMin), uintptr(filterMax))
		return BOOL(r0)
	}

	DispatchMessageW DispatchMessageWFunc = func(msg *Msg) LRESULT {
		r0, _, _ := syscall.SyscallN(procDispatchMessageW.Addr(), uintptr(unsafe.Pointer(msg)))
		return LRESULT(r0)
	}

	GlobalMemoryStatusEx GlobalMemoryStatusFunc = func(buf *MemoryStatusEx) BOOL {
		r0, _, _ := syscall.SyscallN(procGlobalMemoryStatusEx.Addr(), uintptr(unsafe.Pointer(buf)))
		return BOOL(r0)
	}

	GetOpenFileNameW GetOpenFileNameWFunc = func(ofn *OpenFileName) BOOL {
		r0, _, _ := syscall.SyscallN(procGetOpenFileNameW.Addr(), uintptr(unsafe.Pointer(ofn)))
		return BOOL(r0)
	}

	SHGetFileInfoW SHGetFileInfoWFunc = func(path *WCHAR, attrs DWORD, info *ShFileInfo, cbInfo UINT, flags UINT) DWORD_PTR {
		r0, _, _ := syscall.SyscallN(procSHGetFileInfoW.Addr(), uintptr(unsafe.Pointer(path)), uintptr(attrs),
			uintptr(unsafe.Pointer(info)), uintptr(cbInfo), uintptr(flags))
		return DWORD_PTR(r0)
	}

	SHBrowseForFolderW SHBrowseForFolderWFunc = func(bi *BrowseInfo) *ItemIDList {
		r0, _, _ := syscall.SyscallN(procSHBrowseForFolderW.Addr(), uintptr(unsafe.Pointer(bi)))
		return (*ItemIDList)(unsafe.Pointer(r0))
	}

	SHGetStockIconInfo SHGetStockIconInfoFunc = func(siid SHSTOCKICONID, flags UINT, info *ShStockIconInfo) HRESULT {
		r0, _, _ := syscall.SyscallN(procSHGetStockIconInfo.Addr(), uintptr(siid), uintptr(flags), uintptr(unsafe.Pointer(info)))
		return HRESULT(r0)
	}
)
