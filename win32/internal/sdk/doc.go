// Package sdk measures Windows SDK structures with cgo so the modeled
// catalog can be cross-checked on a Windows host with a C toolchain.
package sdk

// Layout is a structure as laid out by the C compiler.
type Layout struct {
	Size    uintptr
	Offsets map[string]uintptr
}
