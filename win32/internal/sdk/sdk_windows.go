//go:build windows && cgo

package sdk

/*
#define WIN32_LEAN_AND_MEAN
#define _WIN32_WINNT 0x0601
#include <windows.h>
#include <commctrl.h>
#include <commdlg.h>
#include <shellapi.h>
#include <shlobj.h>
*/
import "C"

import "unsafe"

// Layouts measures the SDK structures with the C compiler, keyed by
// native name.
func Layouts() map[string]Layout {
	var (
		pt   C.POINT
		rc   C.RECT
		msg  C.MSG
		mmi  C.MINMAXINFO
		sfi  C.SHFILEINFOW
		bi   C.BROWSEINFOW
		ms   C.MEMORYSTATUSEX
		bm   C.BITMAP
		bih  C.BITMAPINFOHEADER
		hdi  C.HDITEMW
		tme  C.TRACKMOUSEEVENT
		nm   C.NMHDR
		wp   C.WINDOWPOS
		nc   C.NCCALCSIZE_PARAMS
		wi   C.WINDOWINFO
		ofn  C.OPENFILENAMEW
		sdi  C.SHDRAGIMAGE
		item C.SHITEMID
	)
	return map[string]Layout{
		"POINT": {unsafe.Sizeof(pt), map[string]uintptr{
			"x": unsafe.Offsetof(pt.x), "y": unsafe.Offsetof(pt.y),
		}},
		"RECT": {unsafe.Sizeof(rc), map[string]uintptr{
			"left": unsafe.Offsetof(rc.left), "bottom": unsafe.Offsetof(rc.bottom),
		}},
		"MSG": {unsafe.Sizeof(msg), map[string]uintptr{
			"message": unsafe.Offsetof(msg.message), "wParam": unsafe.Offsetof(msg.wParam),
			"lParam": unsafe.Offsetof(msg.lParam), "time": unsafe.Offsetof(msg.time),
			"pt": unsafe.Offsetof(msg.pt),
		}},
		"MINMAXINFO": {unsafe.Sizeof(mmi), map[string]uintptr{
			"ptMaxTrackSize": unsafe.Offsetof(mmi.ptMaxTrackSize),
		}},
		"SHFILEINFOW": {unsafe.Sizeof(sfi), map[string]uintptr{
			"iIcon": unsafe.Offsetof(sfi.iIcon), "dwAttributes": unsafe.Offsetof(sfi.dwAttributes),
			"szDisplayName": unsafe.Offsetof(sfi.szDisplayName), "szTypeName": unsafe.Offsetof(sfi.szTypeName),
		}},
		"BROWSEINFOW": {unsafe.Sizeof(bi), map[string]uintptr{
			"ulFlags": unsafe.Offsetof(bi.ulFlags), "lpfn": unsafe.Offsetof(bi.lpfn),
			"iImage": unsafe.Offsetof(bi.iImage),
		}},
		"MEMORYSTATUSEX": {unsafe.Sizeof(ms), map[string]uintptr{
			"ullTotalPhys": unsafe.Offsetof(ms.ullTotalPhys),
			"ullAvailExtendedVirtual": unsafe.Offsetof(ms.ullAvailExtendedVirtual),
		}},
		"BITMAP": {unsafe.Sizeof(bm), map[string]uintptr{
			"bmPlanes": unsafe.Offsetof(bm.bmPlanes), "bmBits": unsafe.Offsetof(bm.bmBits),
		}},
		"BITMAPINFOHEADER": {unsafe.Sizeof(bih), map[string]uintptr{
			"biBitCount": unsafe.Offsetof(bih.biBitCount), "biClrImportant": unsafe.Offsetof(bih.biClrImportant),
		}},
		"HDITEMW": {unsafe.Sizeof(hdi), map[string]uintptr{
			"hbm": unsafe.Offsetof(hdi.hbm), "lParam": unsafe.Offsetof(hdi.lParam),
			"pvFilter": unsafe.Offsetof(hdi.pvFilter), "state": unsafe.Offsetof(hdi.state),
		}},
		"TRACKMOUSEEVENT": {unsafe.Sizeof(tme), map[string]uintptr{
			"hwndTrack": unsafe.Offsetof(tme.hwndTrack), "dwHoverTime": unsafe.Offsetof(tme.dwHoverTime),
		}},
		"NMHDR": {unsafe.Sizeof(nm), map[string]uintptr{
			"idFrom": unsafe.Offsetof(nm.idFrom), "code": unsafe.Offsetof(nm.code),
		}},
		"WINDOWPOS": {unsafe.Sizeof(wp), map[string]uintptr{
			"x": unsafe.Offsetof(wp.x), "flags": unsafe.Offsetof(wp.flags),
		}},
		"NCCALCSIZE_PARAMS": {unsafe.Sizeof(nc), map[string]uintptr{
			"lppos": unsafe.Offsetof(nc.lppos),
		}},
		"WINDOWINFO": {unsafe.Sizeof(wi), map[string]uintptr{
			"rcClient": unsafe.Offsetof(wi.rcClient), "atomWindowType": unsafe.Offsetof(wi.atomWindowType),
			"wCreatorVersion": unsafe.Offsetof(wi.wCreatorVersion),
		}},
		"OPENFILENAMEW": {unsafe.Sizeof(ofn), map[string]uintptr{
			"nFileOffset": unsafe.Offsetof(ofn.nFileOffset), "lpstrDefExt": unsafe.Offsetof(ofn.lpstrDefExt),
			"lpfnHook": unsafe.Offsetof(ofn.lpfnHook), "FlagsEx": unsafe.Offsetof(ofn.FlagsEx),
		}},
		"SHDRAGIMAGE": {unsafe.Sizeof(sdi), map[string]uintptr{
			"hbmpDragImage": unsafe.Offsetof(sdi.hbmpDragImage), "crColorKey": unsafe.Offsetof(sdi.crColorKey),
		}},
		"SHITEMID": {unsafe.Sizeof(item), map[string]uintptr{
			"abID": unsafe.Offsetof(item.abID),
		}},
	}
}
