package bind

// DirectDraw surface headers as read from DDS files. They are declared for
// 32-bit Windows only: LpSurface is stored as a 32-bit value, so the Go
// layout diverges from ddraw.h on 64-bit targets.
//
// Each field that stands for an anonymous union in ddraw.h is named after the
// union's first member.

type DDSCaps2 struct {
	Caps  DWORD
	Caps2 DWORD
	Caps3 DWORD
	Caps4 DWORD
}

type DDColorKey struct {
	ColorSpaceLowValue  DWORD
	ColorSpaceHighValue DWORD
}

type DDPixelFormat struct {
	Size            DWORD
	Flags           DWORD
	FourCC          DWORD
	RGBBitCount     DWORD
	RBitMask        DWORD
	GBitMask        DWORD
	BBitMask        DWORD
	RGBAlphaBitMask DWORD
}

type DDSurfaceDesc2 struct {
	Size            DWORD
	Flags           DWORD
	Height          DWORD
	Width           DWORD
	Pitch           LONG
	BackBufferCount DWORD
	MipMapCount     DWORD
	AlphaBitDepth   DWORD
	Reserved        DWORD
	LpSurface       uint32
	CKDestOverlay   DDColorKey
	CKDestBlt       DDColorKey
	CKSrcOverlay    DDColorKey
	CKSrcBlt        DDColorKey
	PixelFormat     DDPixelFormat
	Caps            DDSCaps2
	TextureStage    DWORD
}
