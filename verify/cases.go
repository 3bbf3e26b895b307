package verify

import (
	"reflect"
	"slices"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/wippyai/winabi"
	"github.com/wippyai/winabi/bind"
	"github.com/wippyai/winabi/errors"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

func mapped(fields ...[]FieldMap) []FieldMap {
	var all []FieldMap
	for _, f := range fields {
		all = append(all, f...)
	}
	return all
}

var structCases = []StructCase{
	{
		Name: "POINT", Native: "POINT", Candidate: typeOf[bind.Point](),
		Fields: Same("x", "y"),
	},
	{
		Name: "SIZE", Native: "SIZE", Candidate: typeOf[bind.Size](),
		Fields: []FieldMap{Map("cx", "CX"), Map("cy", "CY")},
	},
	{
		Name: "RECT", Native: "RECT", Candidate: typeOf[bind.Rect](),
		Fields: Same("left", "top", "right", "bottom"),
	},
	{
		Name: "MSG", Native: "MSG", Candidate: typeOf[bind.Msg](),
		Fields: []FieldMap{
			Map("hwnd", "HWnd"),
			Map("message", "Msg"),
			Map("wParam", "WParam"),
			Map("lParam", "LParam"),
			Map("time", "Time"),
			Map("pt", "P"),
		},
	},
	{
		Name: "MINMAXINFO", Native: "MINMAXINFO", Candidate: typeOf[bind.MinMaxInfo](),
		Fields: Same("ptReserved", "ptMaxSize", "ptMaxPosition", "ptMinTrackSize", "ptMaxTrackSize"),
	},
	{
		Name: "SHFILEINFOW", Native: "SHFILEINFOW", Candidate: typeOf[bind.ShFileInfo](),
		Fields: mapped(
			[]FieldMap{Map("hIcon", "HIcon"), Map("iIcon", "IIcon")},
			Same("dwAttributes", "szDisplayName", "szTypeName"),
		),
	},
	{
		Name: "BROWSEINFOW", Native: "BROWSEINFOW", Candidate: typeOf[bind.BrowseInfo](),
		Fields: mapped(
			Same("hwndOwner", "pidlRoot", "pszDisplayName", "lpszTitle", "ulFlags", "lpfn"),
			[]FieldMap{Map("lParam", "LParam"), Map("iImage", "IImage")},
		),
	},
	{
		Name: "MEMORYSTATUSEX", Native: "MEMORYSTATUSEX", Candidate: typeOf[bind.MemoryStatusEx](),
		Fields: Same("dwLength", "dwMemoryLoad", "ullTotalPhys", "ullAvailPhys", "ullTotalPageFile",
			"ullAvailPageFile", "ullTotalVirtual", "ullAvailVirtual", "ullAvailExtendedVirtual"),
	},
	{
		Name: "BITMAP", Native: "BITMAP", Candidate: typeOf[bind.Bitmap](),
		Fields: Same("bmType", "bmWidth", "bmHeight", "bmWidthBytes", "bmPlanes", "bmBitsPixel", "bmBits"),
	},
	{
		Name: "BITMAPINFOHEADER", Native: "BITMAPINFOHEADER", Candidate: typeOf[bind.BitmapInfoHeader](),
		Fields: Same("biSize", "biWidth", "biHeight", "biPlanes", "biBitCount", "biCompression",
			"biSizeImage", "biXPelsPerMeter", "biYPelsPerMeter", "biClrUsed", "biClrImportant"),
	},
	{
		Name: "BITMAPINFO_FLAT", Native: "BITMAPINFOHEADER", Candidate: typeOf[bind.BitmapInfoFlat](),
		HeaderOnly: true,
		Note:       "header followed by an inline colour table",
		Fields: Same("biSize", "biWidth", "biHeight", "biPlanes", "biBitCount", "biCompression",
			"biSizeImage", "biXPelsPerMeter", "biYPelsPerMeter", "biClrUsed", "biClrImportant"),
	},
	{
		Name: "HDITEMW", Native: "HDITEMW", Candidate: typeOf[bind.HdItem](),
		Fields: mapped(
			Same("mask", "cxy", "pszText", "hbm", "cchTextMax", "fmt"),
			[]FieldMap{Map("lParam", "LParam"), Map("iImage", "IImage"), Map("iOrder", "IOrder")},
			Same("type", "pvFilter", "state"),
		),
	},
	{
		Name: "TRACKMOUSEEVENT", Native: "TRACKMOUSEEVENT", Candidate: typeOf[bind.TrackMouseEventInfo](),
		Fields: Same("cbSize", "dwFlags", "hwndTrack", "dwHoverTime"),
	},
	{
		Name: "NMHDR", Native: "NMHDR", Candidate: typeOf[bind.NmHdr](),
		Fields: Same("hwndFrom", "idFrom", "code"),
	},
	{
		Name: "WINDOWPOS", Native: "WINDOWPOS", Candidate: typeOf[bind.WindowPos](),
		Fields: Same("hwnd", "hwndInsertAfter", "x", "y", "cx", "cy", "flags"),
	},
	{
		Name: "NCCALCSIZE_PARAMS", Native: "NCCALCSIZE_PARAMS", Candidate: typeOf[bind.NcCalcSizeParams](),
		Note: "rgrc is declared as three separate rectangles",
		Fields: []FieldMap{
			Map("rgrc[0]", "Rgrc0"),
			Map("rgrc[1]", "Rgrc1"),
			Map("rgrc[2]", "Rgrc2"),
			Map("rgrc[2].bottom", "Rgrc2.Bottom"),
			Map("lppos", "Lppos"),
		},
	},
	{
		Name: "WINDOWINFO", Native: "WINDOWINFO", Candidate: typeOf[bind.WindowInfo](),
		Fields: Same("cbSize", "rcWindow", "rcClient", "dwStyle", "dwExStyle", "dwWindowStatus",
			"cxWindowBorders", "cyWindowBorders", "atomWindowType", "wCreatorVersion"),
	},
	{
		Name: "OPENFILENAMEW", Native: "OPENFILENAMEW", Candidate: typeOf[bind.OpenFileName](),
		Fields: mapped(
			Same("lStructSize", "hwndOwner", "hInstance", "lpstrFilter", "lpstrCustomFilter",
				"nMaxCustFilter", "nFilterIndex", "lpstrFile", "nMaxFile", "lpstrFileTitle",
				"nMaxFileTitle", "lpstrInitialDir", "lpstrTitle", "Flags", "nFileOffset",
				"nFileExtension", "lpstrDefExt", "lCustData", "lpfnHook", "lpTemplateName",
				"pvReserved", "dwReserved", "FlagsEx"),
		),
	},
	{
		Name: "DROPDESCRIPTION", Native: "DROPDESCRIPTION", Candidate: typeOf[bind.DropDescription](),
		Fields: Same("type", "szMessage", "szInsert"),
	},
	{
		Name: "SHDRAGIMAGE", Native: "SHDRAGIMAGE", Candidate: typeOf[bind.ShDragImage](),
		Fields: Same("sizeDragImage", "ptOffset", "hbmpDragImage", "crColorKey"),
	},
	{
		Name: "SHSTOCKICONINFO", Native: "SHSTOCKICONINFO", Candidate: typeOf[bind.ShStockIconInfo](),
		Fields: mapped(
			Same("cbSize"),
			[]FieldMap{Map("hIcon", "HIcon"), Map("iSysImageIndex", "ISysImageIndex"), Map("iIcon", "IIcon")},
			Same("szPath"),
		),
	},
	{
		Name: "SHITEMID", Native: "SHITEMID", Candidate: typeOf[bind.ShItemID](),
		HeaderOnly: true,
		Note:       "byte-packed natively, padded to 4 bytes in Go",
		Fields:     []FieldMap{Map("cb", "Cb"), Map("abID", "AbID")},
	},
	{
		Name: "ITEMIDLIST", Native: "ITEMIDLIST", Candidate: typeOf[bind.ItemIDList](),
		HeaderOnly: true,
		Note:       "byte-packed natively, padded to 4 bytes in Go",
		Fields:     []FieldMap{Map("mkid", "Mkid"), Map("mkid.abID", "Mkid.AbID")},
	},
	{
		Name: "DDSCAPS2", Native: "DDSCAPS2", Candidate: typeOf[bind.DDSCaps2](),
		Arches: []winabi.Arch{winabi.Arch386},
		Fields: []FieldMap{
			Map("dwCaps", "Caps"),
			Map("dwCaps2", "Caps2"),
			Map("dwCaps3", "Caps3"),
			Map("dwCaps4", "Caps4"),
			Map("dwVolumeDepth", "Caps4"),
		},
	},
	{
		Name: "DDCOLORKEY", Native: "DDCOLORKEY", Candidate: typeOf[bind.DDColorKey](),
		Arches: []winabi.Arch{winabi.Arch386},
		Fields: []FieldMap{
			Map("dwColorSpaceLowValue", "ColorSpaceLowValue"),
			Map("dwColorSpaceHighValue", "ColorSpaceHighValue"),
		},
	},
	{
		Name: "DDPIXELFORMAT", Native: "DDPIXELFORMAT", Candidate: typeOf[bind.DDPixelFormat](),
		Arches: []winabi.Arch{winabi.Arch386},
		Fields: []FieldMap{
			Map("dwSize", "Size"),
			Map("dwFlags", "Flags"),
			Map("dwFourCC", "FourCC"),
			Map("dwRGBBitCount", "RGBBitCount"),
			Map("dwYUVBitCount", "RGBBitCount"),
			Map("dwZBufferBitDepth", "RGBBitCount"),
			Map("dwAlphaBitDepth", "RGBBitCount"),
			Map("dwLuminanceBitCount", "RGBBitCount"),
			Map("dwBumpBitCount", "RGBBitCount"),
			Map("dwPrivateFormatBitCount", "RGBBitCount"),
			Map("dwRBitMask", "RBitMask"),
			Map("dwYBitMask", "RBitMask"),
			Map("dwStencilBitDepth", "RBitMask"),
			Map("dwLuminanceBitMask", "RBitMask"),
			Map("dwBumpDuBitMask", "RBitMask"),
			Map("dwOperations", "RBitMask"),
			Map("dwGBitMask", "GBitMask"),
			Map("dwUBitMask", "GBitMask"),
			Map("dwZBitMask", "GBitMask"),
			Map("dwBumpDvBitMask", "GBitMask"),
			Map("MultiSampleCaps", "GBitMask"),
			Map("dwBBitMask", "BBitMask"),
			Map("dwVBitMask", "BBitMask"),
			Map("dwStencilBitMask", "BBitMask"),
			Map("dwBumpLuminanceBitMask", "BBitMask"),
			Map("dwRGBAlphaBitMask", "RGBAlphaBitMask"),
			Map("dwYUVAlphaBitMask", "RGBAlphaBitMask"),
			Map("dwLuminanceAlphaBitMask", "RGBAlphaBitMask"),
			Map("dwRGBZBitMask", "RGBAlphaBitMask"),
			Map("dwYUVZBitMask", "RGBAlphaBitMask"),
		},
	},
	{
		Name: "DDSURFACEDESC2", Native: "DDSURFACEDESC2", Candidate: typeOf[bind.DDSurfaceDesc2](),
		Arches: []winabi.Arch{winabi.Arch386},
		Note:   "lpSurface is held as a 32-bit value",
		Fields: []FieldMap{
			Map("dwSize", "Size"),
			Map("dwFlags", "Flags"),
			Map("dwHeight", "Height"),
			Map("dwWidth", "Width"),
			Map("lPitch", "Pitch"),
			Map("dwLinearSize", "Pitch"),
			Map("dwBackBufferCount", "BackBufferCount"),
			Map("dwDepth", "BackBufferCount"),
			Map("dwMipMapCount", "MipMapCount"),
			Map("dwRefreshRate", "MipMapCount"),
			Map("dwSrcVBHandle", "MipMapCount"),
			Map("dwAlphaBitDepth", "AlphaBitDepth"),
			Map("dwReserved", "Reserved"),
			Map("lpSurface", "LpSurface"),
			Map("ddckCKDestOverlay", "CKDestOverlay"),
			Map("dwEmptyFaceColor", "CKDestOverlay"),
			Map("ddckCKDestBlt", "CKDestBlt"),
			Map("ddckCKSrcOverlay", "CKSrcOverlay"),
			Map("ddckCKSrcBlt", "CKSrcBlt"),
			Map("ddpfPixelFormat", "PixelFormat"),
			Map("dwFVF", "PixelFormat"),
			Map("ddpfPixelFormat.dwFourCC", "PixelFormat.FourCC"),
			Map("ddsCaps", "Caps"),
			Map("ddsCaps.dwVolumeDepth", "Caps.Caps4"),
			Map("dwTextureStage", "TextureStage"),
		},
	},
}

// params lists the types of the given zero values. Use typed nils for
// pointer parameters.
func params(zero ...any) []reflect.Type {
	ts := make([]reflect.Type, len(zero))
	for i, z := range zero {
		ts[i] = reflect.TypeOf(z)
	}
	return ts
}

var funcCases = []FuncCase{
	{
		Name: "SendMessageW", Native: "SendMessageW",
		Params: params(bind.HWND(0), bind.UINT(0), bind.WPARAM(0), bind.LPARAM(0)),
	},
	{
		Name: "SendMessageW(RECT*)", Native: "SendMessageW",
		Params: params(bind.HWND(0), bind.UINT(0), bind.WPARAM(0), (*bind.Rect)(nil)),
	},
	{
		Name: "CallNextHookEx", Native: "CallNextHookEx",
		Params: params(bind.HHOOK(0), bind.INT(0), bind.WPARAM(0), bind.LPARAM(0)),
	},
	{
		Name: "SetWindowsHookExW", Native: "SetWindowsHookExW",
		Params: params(bind.INT(0), bind.HOOKPROC(0), bind.HINSTANCE(0), bind.DWORD(0)),
	},
	{
		Name: "GetWindowRect", Native: "GetWindowRect",
		Params: params(bind.HWND(0), (*bind.Rect)(nil)),
	},
	{
		Name: "GetWindowInfo", Native: "GetWindowInfo",
		Params: params(bind.HWND(0), (*bind.WindowInfo)(nil)),
	},
	{
		Name: "SetWindowPos", Native: "SetWindowPos",
		Params: params(bind.HWND(0), bind.HWND(0), bind.INT(0), bind.INT(0), bind.INT(0), bind.INT(0), bind.UINT(0)),
	},
	{
		Name: "TrackMouseEvent", Native: "TrackMouseEvent",
		Params: params((*bind.TrackMouseEventInfo)(nil)),
	},
	{
		Name: "GetMessageW", Native: "GetMessageW",
		Params: params((*bind.Msg)(nil), bind.HWND(0), bind.UINT(0), bind.UINT(0)),
	},
	{
		Name: "DispatchMessageW", Native: "DispatchMessageW",
		Params: params((*bind.Msg)(nil)),
	},
	{
		Name: "GlobalMemoryStatusEx", Native: "GlobalMemoryStatusEx",
		Params: params((*bind.MemoryStatusEx)(nil)),
	},
	{
		Name: "GetOpenFileNameW", Native: "GetOpenFileNameW",
		Params: params((*bind.OpenFileName)(nil)),
	},
	{
		Name: "SHGetFileInfoW", Native: "SHGetFileInfoW",
		Params: params((*bind.WCHAR)(nil), bind.DWORD(0), (*bind.ShFileInfo)(nil), bind.UINT(0), bind.UINT(0)),
	},
	{
		Name: "SHBrowseForFolderW", Native: "SHBrowseForFolderW",
		Params: params((*bind.BrowseInfo)(nil)),
	},
	{
		Name: "SHGetStockIconInfo", Native: "SHGetStockIconInfo",
		Params: params(bind.SHSTOCKICONID(0), bind.UINT(0), (*bind.ShStockIconInfo)(nil)),
	},
}

// validate rejects tables with repeated case names, a native member
// mapped twice within one case, or a case that compares nothing. Several
// native members may share one candidate field.
func validate(structs []StructCase, funcs []FuncCase) error {
	names := mapset.NewThreadUnsafeSet[string]()
	for _, c := range structs {
		if !names.Add(c.Name) {
			return errors.Duplicate(errors.PhaseLayout, "case", c.Name)
		}
		if !c.compares() {
			return c.emptyError()
		}
		natives := mapset.NewThreadUnsafeSetWithSize[string](len(c.Fields))
		for _, fm := range c.Fields {
			if !natives.Add(fm.Native) {
				return errors.Duplicate(errors.PhaseLayout, "field mapping", c.Name+"."+fm.Native)
			}
		}
	}
	for _, c := range funcs {
		if !names.Add(c.Name) {
			return errors.Duplicate(errors.PhaseSignature, "case", c.Name)
		}
	}
	return nil
}

var builtin = sync.OnceValues(func() ([]StructCase, []FuncCase) {
	if err := validate(structCases, funcCases); err != nil {
		panic(err)
	}
	return structCases, funcCases
})

// Cases returns the built-in struct cases in table order.
func Cases() []StructCase {
	s, _ := builtin()
	return slices.Clone(s)
}

// FuncCases returns the built-in function cases in table order.
func FuncCases() []FuncCase {
	_, f := builtin()
	return slices.Clone(f)
}
