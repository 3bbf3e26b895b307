//go:build windows

package bind

import (
	"testing"
	"unsafe"
)

func TestFindProc(t *testing.T) {
	for _, entry := range Default().Entries() {
		for _, imp := range Default().Overloads(entry) {
			if _, err := FindProc(imp); err != nil {
				t.Errorf("FindProc(%s): %v", imp, err)
			}
		}
	}
}

func TestFindProcMissing(t *testing.T) {
	if _, err := FindProc(ImportOf[SendMessageWFunc](User32, "SendMessageNowhere")); err == nil {
		t.Error("expected error for missing entry point")
	}
}

func TestGlobalMemoryStatusEx(t *testing.T) {
	var ms MemoryStatusEx
	ms.DwLength = DWORD(unsafe.Sizeof(ms))
	if GlobalMemoryStatusEx(&ms) == 0 {
		t.Fatal("GlobalMemoryStatusEx failed")
	}
	if ms.UllTotalPhys == 0 {
		t.Error("total physical memory reported as zero")
	}
}
