package win32

import (
	"github.com/wippyai/winabi"
	"github.com/wippyai/winabi/ctype"
)

// windef.h
var (
	POINT = ctype.Struct("POINT",
		ctype.F("x", LONG),
		ctype.F("y", LONG),
	)

	SIZE = ctype.Struct("SIZE",
		ctype.F("cx", LONG),
		ctype.F("cy", LONG),
	)

	RECT = ctype.Struct("RECT",
		ctype.F("left", LONG),
		ctype.F("top", LONG),
		ctype.F("right", LONG),
		ctype.F("bottom", LONG),
	)
)

// winuser.h
var (
	MSG = ctype.Struct("MSG",
		ctype.F("hwnd", HWND),
		ctype.F("message", UINT),
		ctype.F("wParam", WPARAM),
		ctype.F("lParam", LPARAM),
		ctype.F("time", DWORD),
		ctype.F("pt", POINT),
	)

	MINMAXINFO = ctype.Struct("MINMAXINFO",
		ctype.F("ptReserved", POINT),
		ctype.F("ptMaxSize", POINT),
		ctype.F("ptMaxPosition", POINT),
		ctype.F("ptMinTrackSize", POINT),
		ctype.F("ptMaxTrackSize", POINT),
	)

	TRACKMOUSEEVENT = ctype.Struct("TRACKMOUSEEVENT",
		ctype.F("cbSize", DWORD),
		ctype.F("dwFlags", DWORD),
		ctype.F("hwndTrack", HWND),
		ctype.F("dwHoverTime", DWORD),
	)

	NMHDR = ctype.Struct("NMHDR",
		ctype.F("hwndFrom", HWND),
		ctype.F("idFrom", UINT_PTR),
		ctype.F("code", UINT),
	)

	WINDOWPOS = ctype.Struct("WINDOWPOS",
		ctype.F("hwnd", HWND),
		ctype.F("hwndInsertAfter", HWND),
		ctype.F("x", INT),
		ctype.F("y", INT),
		ctype.F("cx", INT),
		ctype.F("cy", INT),
		ctype.F("flags", UINT),
	)

	NCCALCSIZE_PARAMS = ctype.Struct("NCCALCSIZE_PARAMS",
		ctype.F("rgrc", ctype.Array(RECT, 3)),
		ctype.F("lppos", ctype.Pointer(WINDOWPOS)),
	)

	WINDOWINFO = ctype.Struct("WINDOWINFO",
		ctype.F("cbSize", DWORD),
		ctype.F("rcWindow", RECT),
		ctype.F("rcClient", RECT),
		ctype.F("dwStyle", DWORD),
		ctype.F("dwExStyle", DWORD),
		ctype.F("dwWindowStatus", DWORD),
		ctype.F("cxWindowBorders", UINT),
		ctype.F("cyWindowBorders", UINT),
		ctype.F("atomWindowType", ATOM),
		ctype.F("wCreatorVersion", WORD),
	)
)

// wingdi.h
var (
	BITMAP = ctype.Struct("BITMAP",
		ctype.F("bmType", LONG),
		ctype.F("bmWidth", LONG),
		ctype.F("bmHeight", LONG),
		ctype.F("bmWidthBytes", LONG),
		ctype.F("bmPlanes", WORD),
		ctype.F("bmBitsPixel", WORD),
		ctype.F("bmBits", LPVOID),
	)

	BITMAPINFOHEADER = ctype.Struct("BITMAPINFOHEADER",
		ctype.F("biSize", DWORD),
		ctype.F("biWidth", LONG),
		ctype.F("biHeight", LONG),
		ctype.F("biPlanes", WORD),
		ctype.F("biBitCount", WORD),
		ctype.F("biCompression", DWORD),
		ctype.F("biSizeImage", DWORD),
		ctype.F("biXPelsPerMeter", LONG),
		ctype.F("biYPelsPerMeter", LONG),
		ctype.F("biClrUsed", DWORD),
		ctype.F("biClrImportant", DWORD),
	)
)

// commctrl.h
var HDITEMW = ctype.Struct("HDITEMW",
	ctype.F("mask", UINT),
	ctype.F("cxy", INT),
	ctype.F("pszText", LPWSTR),
	ctype.F("hbm", HBITMAP),
	ctype.F("cchTextMax", INT),
	ctype.F("fmt", INT),
	ctype.F("lParam", LPARAM),
	ctype.F("iImage", INT),
	ctype.F("iOrder", INT),
	ctype.F("type", UINT),
	ctype.F("pvFilter", LPVOID),
	ctype.F("state", UINT),
)

// winbase.h
var MEMORYSTATUSEX = ctype.Struct("MEMORYSTATUSEX",
	ctype.F("dwLength", DWORD),
	ctype.F("dwMemoryLoad", DWORD),
	ctype.F("ullTotalPhys", DWORDLONG),
	ctype.F("ullAvailPhys", DWORDLONG),
	ctype.F("ullTotalPageFile", DWORDLONG),
	ctype.F("ullAvailPageFile", DWORDLONG),
	ctype.F("ullTotalVirtual", DWORDLONG),
	ctype.F("ullAvailVirtual", DWORDLONG),
	ctype.F("ullAvailExtendedVirtual", DWORDLONG),
)

// commdlg.h is byte-packed on 32-bit Windows.
var OPENFILENAMEW = ctype.Struct("OPENFILENAMEW",
	ctype.F("lStructSize", DWORD),
	ctype.F("hwndOwner", HWND),
	ctype.F("hInstance", HINSTANCE),
	ctype.F("lpstrFilter", LPCWSTR),
	ctype.F("lpstrCustomFilter", LPWSTR),
	ctype.F("nMaxCustFilter", DWORD),
	ctype.F("nFilterIndex", DWORD),
	ctype.F("lpstrFile", LPWSTR),
	ctype.F("nMaxFile", DWORD),
	ctype.F("lpstrFileTitle", LPWSTR),
	ctype.F("nMaxFileTitle", DWORD),
	ctype.F("lpstrInitialDir", LPCWSTR),
	ctype.F("lpstrTitle", LPCWSTR),
	ctype.F("Flags", DWORD),
	ctype.F("nFileOffset", WORD),
	ctype.F("nFileExtension", WORD),
	ctype.F("lpstrDefExt", LPCWSTR),
	ctype.F("lCustData", LPARAM),
	ctype.F("lpfnHook", LPOFNHOOKPROC),
	ctype.F("lpTemplateName", LPCWSTR),
	ctype.F("pvReserved", LPVOID),
	ctype.F("dwReserved", DWORD),
	ctype.F("FlagsEx", DWORD),
).WithPack(1, winabi.Arch386)

// shtypes.h and shlobj_core.h; item id lists are byte-packed everywhere.
var (
	SHITEMID = ctype.Struct("SHITEMID",
		ctype.F("cb", USHORT),
		ctype.F("abID", ctype.Array(BYTE, 1)),
	).WithPack(1, winabi.Arches...)

	ITEMIDLIST = ctype.Struct("ITEMIDLIST",
		ctype.F("mkid", SHITEMID),
	).WithPack(1, winabi.Arches...)

	PCIDLIST_ABSOLUTE = ctype.Typedef("PCIDLIST_ABSOLUTE", ctype.Pointer(ITEMIDLIST))
	PIDLIST_ABSOLUTE  = ctype.Typedef("PIDLIST_ABSOLUTE", ctype.Pointer(ITEMIDLIST))

	BROWSEINFOW = ctype.Struct("BROWSEINFOW",
		ctype.F("hwndOwner", HWND),
		ctype.F("pidlRoot", PCIDLIST_ABSOLUTE),
		ctype.F("pszDisplayName", LPWSTR),
		ctype.F("lpszTitle", LPCWSTR),
		ctype.F("ulFlags", UINT),
		ctype.F("lpfn", BFFCALLBACK),
		ctype.F("lParam", LPARAM),
		ctype.F("iImage", INT),
	)

	DROPDESCRIPTION = ctype.Struct("DROPDESCRIPTION",
		ctype.F("type", DROPIMAGETYPE),
		ctype.F("szMessage", ctype.Array(WCHAR, MAX_PATH)),
		ctype.F("szInsert", ctype.Array(WCHAR, MAX_PATH)),
	)

	SHDRAGIMAGE = ctype.Struct("SHDRAGIMAGE",
		ctype.F("sizeDragImage", SIZE),
		ctype.F("ptOffset", POINT),
		ctype.F("hbmpDragImage", HBITMAP),
		ctype.F("crColorKey", COLORREF),
	)
)

// shellapi.h is byte-packed on 32-bit Windows.
var (
	SHFILEINFOW = ctype.Struct("SHFILEINFOW",
		ctype.F("hIcon", HICON),
		ctype.F("iIcon", INT),
		ctype.F("dwAttributes", DWORD),
		ctype.F("szDisplayName", ctype.Array(WCHAR, MAX_PATH)),
		ctype.F("szTypeName", ctype.Array(WCHAR, 80)),
	).WithPack(1, winabi.Arch386)

	SHSTOCKICONINFO = ctype.Struct("SHSTOCKICONINFO",
		ctype.F("cbSize", DWORD),
		ctype.F("hIcon", HICON),
		ctype.F("iSysImageIndex", INT),
		ctype.F("iIcon", INT),
		ctype.F("szPath", ctype.Array(WCHAR, MAX_PATH)),
	).WithPack(1, winabi.Arch386)
)

// ddraw.h
var (
	DDSCAPS2 = ctype.Struct("DDSCAPS2",
		ctype.F("dwCaps", DWORD),
		ctype.F("dwCaps2", DWORD),
		ctype.F("dwCaps3", DWORD),
		ctype.Anon(ctype.Union("",
			ctype.F("dwCaps4", DWORD),
			ctype.F("dwVolumeDepth", DWORD),
		)),
	)

	DDCOLORKEY = ctype.Struct("DDCOLORKEY",
		ctype.F("dwColorSpaceLowValue", DWORD),
		ctype.F("dwColorSpaceHighValue", DWORD),
	)

	DDPIXELFORMAT = ctype.Struct("DDPIXELFORMAT",
		ctype.F("dwSize", DWORD),
		ctype.F("dwFlags", DWORD),
		ctype.F("dwFourCC", DWORD),
		ctype.Anon(ctype.Union("",
			ctype.F("dwRGBBitCount", DWORD),
			ctype.F("dwYUVBitCount", DWORD),
			ctype.F("dwZBufferBitDepth", DWORD),
			ctype.F("dwAlphaBitDepth", DWORD),
			ctype.F("dwLuminanceBitCount", DWORD),
			ctype.F("dwBumpBitCount", DWORD),
			ctype.F("dwPrivateFormatBitCount", DWORD),
		)),
		ctype.Anon(ctype.Union("",
			ctype.F("dwRBitMask", DWORD),
			ctype.F("dwYBitMask", DWORD),
			ctype.F("dwStencilBitDepth", DWORD),
			ctype.F("dwLuminanceBitMask", DWORD),
			ctype.F("dwBumpDuBitMask", DWORD),
			ctype.F("dwOperations", DWORD),
		)),
		ctype.Anon(ctype.Union("",
			ctype.F("dwGBitMask", DWORD),
			ctype.F("dwUBitMask", DWORD),
			ctype.F("dwZBitMask", DWORD),
			ctype.F("dwBumpDvBitMask", DWORD),
			ctype.F("MultiSampleCaps", ctype.Struct("",
				ctype.F("wFlipMSTypes", WORD),
				ctype.F("wBltMSTypes", WORD),
			)),
		)),
		ctype.Anon(ctype.Union("",
			ctype.F("dwBBitMask", DWORD),
			ctype.F("dwVBitMask", DWORD),
			ctype.F("dwStencilBitMask", DWORD),
			ctype.F("dwBumpLuminanceBitMask", DWORD),
		)),
		ctype.Anon(ctype.Union("",
			ctype.F("dwRGBAlphaBitMask", DWORD),
			ctype.F("dwYUVAlphaBitMask", DWORD),
			ctype.F("dwLuminanceAlphaBitMask", DWORD),
			ctype.F("dwRGBZBitMask", DWORD),
			ctype.F("dwYUVZBitMask", DWORD),
		)),
	)

	DDSURFACEDESC2 = ctype.Struct("DDSURFACEDESC2",
		ctype.F("dwSize", DWORD),
		ctype.F("dwFlags", DWORD),
		ctype.F("dwHeight", DWORD),
		ctype.F("dwWidth", DWORD),
		ctype.Anon(ctype.Union("",
			ctype.F("lPitch", LONG),
			ctype.F("dwLinearSize", DWORD),
		)),
		ctype.Anon(ctype.Union("",
			ctype.F("dwBackBufferCount", DWORD),
			ctype.F("dwDepth", DWORD),
		)),
		ctype.Anon(ctype.Union("",
			ctype.F("dwMipMapCount", DWORD),
			ctype.F("dwRefreshRate", DWORD),
			ctype.F("dwSrcVBHandle", DWORD),
		)),
		ctype.F("dwAlphaBitDepth", DWORD),
		ctype.F("dwReserved", DWORD),
		ctype.F("lpSurface", LPVOID),
		ctype.Anon(ctype.Union("",
			ctype.F("ddckCKDestOverlay", DDCOLORKEY),
			ctype.F("dwEmptyFaceColor", DWORD),
		)),
		ctype.F("ddckCKDestBlt", DDCOLORKEY),
		ctype.F("ddckCKSrcOverlay", DDCOLORKEY),
		ctype.F("ddckCKSrcBlt", DDCOLORKEY),
		ctype.Anon(ctype.Union("",
			ctype.F("ddpfPixelFormat", DDPIXELFORMAT),
			ctype.F("dwFVF", DWORD),
		)),
		ctype.F("ddsCaps", DDSCAPS2),
		ctype.F("dwTextureStage", DWORD),
	)
)
