package abi

import "math"

func SafeMul(a, b uintptr) (uintptr, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

func SafeAdd(a, b uintptr) (uintptr, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

func AlignTo(offset, align uintptr) uintptr {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Cap applies a #pragma pack limit; pack 0 leaves natural alignment.
func Cap(align, pack uintptr) uintptr {
	if pack != 0 && align > pack {
		return pack
	}
	return align
}
