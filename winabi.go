package winabi

import (
	"fmt"
	"runtime"
)

// Arch is a Win32 target architecture.
type Arch string

const (
	Arch386   Arch = "386"
	ArchAMD64 Arch = "amd64"
	ArchARM64 Arch = "arm64"
)

// Arches lists every architecture the native model knows.
var Arches = []Arch{Arch386, ArchAMD64, ArchARM64}

// PtrSize returns the width of a pointer, handle, or pointer-sized integer.
func (a Arch) PtrSize() uintptr {
	if a == Arch386 {
		return 4
	}
	return 8
}

func (a Arch) String() string {
	return string(a)
}

// ParseArch accepts a GOARCH-style name.
func ParseArch(s string) (Arch, error) {
	switch s {
	case "386", "x86", "i386":
		return Arch386, nil
	case "amd64", "x64", "x86_64":
		return ArchAMD64, nil
	case "arm64", "aarch64":
		return ArchARM64, nil
	}
	return "", fmt.Errorf("unknown architecture %q", s)
}

// HostArch returns the architecture Go is compiling for. The second result is
// false when GOARCH has no Win32 ABI, in which case candidate layouts cannot be
// compared against anything.
func HostArch() (Arch, bool) {
	a, err := ParseArch(runtime.GOARCH)
	if err != nil {
		return "", false
	}
	return a, true
}

// TestingT is the subset of *testing.T the verifier reports through.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	Skipf(format string, args ...any)
}
