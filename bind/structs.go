package bind

import "unsafe"

type Point struct {
	X LONG
	Y LONG
}

type Size struct {
	CX LONG
	CY LONG
}

type Rect struct {
	Left   LONG
	Top    LONG
	Right  LONG
	Bottom LONG
}

type Msg struct {
	HWnd   HWND
	Msg    UINT
	WParam WPARAM
	LParam LPARAM
	Time   DWORD
	P      Point
}

type MinMaxInfo struct {
	PtReserved     Point
	PtMaxSize      Point
	PtMaxPosition  Point
	PtMinTrackSize Point
	PtMaxTrackSize Point
}

type TrackMouseEventInfo struct {
	CbSize      DWORD
	DwFlags     DWORD
	HwndTrack   HWND
	DwHoverTime DWORD
}

type NmHdr struct {
	HwndFrom HWND
	IdFrom   UINT_PTR
	Code     UINT
}

type WindowPos struct {
	Hwnd            HWND
	HwndInsertAfter HWND
	X               INT
	Y               INT
	Cx              INT
	Cy              INT
	Flags           UINT
}

// NcCalcSizeParams spells out the three rectangles of rgrc as separate fields.
type NcCalcSizeParams struct {
	Rgrc0 Rect
	Rgrc1 Rect
	Rgrc2 Rect
	Lppos *WindowPos
}

type WindowInfo struct {
	CbSize          DWORD
	RcWindow        Rect
	RcClient        Rect
	DwStyle         DWORD
	DwExStyle       DWORD
	DwWindowStatus  DWORD
	CxWindowBorders UINT
	CyWindowBorders UINT
	AtomWindowType  ATOM
	WCreatorVersion WORD
}

type Bitmap struct {
	BmType       LONG
	BmWidth      LONG
	BmHeight     LONG
	BmWidthBytes LONG
	BmPlanes     WORD
	BmBitsPixel  WORD
	BmBits       unsafe.Pointer
}

type BitmapInfoHeader struct {
	BiSize          DWORD
	BiWidth         LONG
	BiHeight        LONG
	BiPlanes        WORD
	BiBitCount      WORD
	BiCompression   DWORD
	BiSizeImage     DWORD
	BiXPelsPerMeter LONG
	BiYPelsPerMeter LONG
	BiClrUsed       DWORD
	BiClrImportant  DWORD
}

// BitmapInfoFlat is a BITMAPINFOHEADER followed by room for a full 256-entry
// RGBQUAD colour table, so a DIB header can be passed without a second
// allocation.
type BitmapInfoFlat struct {
	BiSize          DWORD
	BiWidth         LONG
	BiHeight        LONG
	BiPlanes        WORD
	BiBitCount      WORD
	BiCompression   DWORD
	BiSizeImage     DWORD
	BiXPelsPerMeter LONG
	BiYPelsPerMeter LONG
	BiClrUsed       DWORD
	BiClrImportant  DWORD
	BmiColors       [256 * 4]BYTE
}

type HdItem struct {
	Mask       UINT
	Cxy        INT
	PszText    *WCHAR
	Hbm        HBITMAP
	CchTextMax INT
	Fmt        INT
	LParam     LPARAM
	IImage     INT
	IOrder     INT
	Type       UINT
	PvFilter   unsafe.Pointer
	State      UINT
}

type MemoryStatusEx struct {
	DwLength                DWORD
	DwMemoryLoad            DWORD
	UllTotalPhys            DWORDLONG
	UllAvailPhys            DWORDLONG
	UllTotalPageFile        DWORDLONG
	UllAvailPageFile        DWORDLONG
	UllTotalVirtual         DWORDLONG
	UllAvailVirtual         DWORDLONG
	UllAvailExtendedVirtual DWORDLONG
}

type OpenFileName struct {
	LStructSize       DWORD
	HwndOwner         HWND
	HInstance         HINSTANCE
	LpstrFilter       *WCHAR
	LpstrCustomFilter *WCHAR
	NMaxCustFilter    DWORD
	NFilterIndex      DWORD
	LpstrFile         *WCHAR
	NMaxFile          DWORD
	LpstrFileTitle    *WCHAR
	NMaxFileTitle     DWORD
	LpstrInitialDir   *WCHAR
	LpstrTitle        *WCHAR
	Flags             DWORD
	NFileOffset       WORD
	NFileExtension    WORD
	LpstrDefExt       *WCHAR
	LCustData         LPARAM
	LpfnHook          LPOFNHOOKPROC
	LpTemplateName    *WCHAR
	PvReserved        unsafe.Pointer
	DwReserved        DWORD
	FlagsEx           DWORD
}

// ShItemID and ItemIDList are byte-packed in the SDK. Go aligns ShItemID to
// two bytes, making it 4 bytes against the native 3, so only their members
// line up.
type ShItemID struct {
	Cb   USHORT
	AbID [1]BYTE
}

type ItemIDList struct {
	Mkid ShItemID
}

type BrowseInfo struct {
	HwndOwner      HWND
	PidlRoot       *ItemIDList
	PszDisplayName *WCHAR
	LpszTitle      *WCHAR
	UlFlags        UINT
	Lpfn           BFFCALLBACK
	LParam         LPARAM
	IImage         INT
}

type ShFileInfo struct {
	HIcon         HICON
	IIcon         INT
	DwAttributes  DWORD
	SzDisplayName [MAX_PATH]WCHAR
	SzTypeName    [80]WCHAR
}

type ShStockIconInfo struct {
	CbSize         DWORD
	HIcon          HICON
	ISysImageIndex INT
	IIcon          INT
	SzPath         [MAX_PATH]WCHAR
}

type DropDescription struct {
	Type      DROPIMAGETYPE
	SzMessage [MAX_PATH]WCHAR
	SzInsert  [MAX_PATH]WCHAR
}

type ShDragImage struct {
	SizeDragImage Size
	PtOffset      Point
	HbmpDragImage HBITMAP
	CrColorKey    COLORREF
}
