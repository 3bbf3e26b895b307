// Package winabi verifies that Go declarations of Win32 structures and
// imported functions match their native counterparts byte for byte.
//
// This library lets a Go binding layer prove, at test time, that every struct
// it passes to Windows has the native size and field offsets and that every
// imported function takes and returns values of the native widths.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	winabi/              Root package with Arch and the TestingT interface
//	├── ctype/           Native type model (scalars, handles, enums, unions, packing)
//	│   └── layout/      MSVC layout rules: sizes, offsets, parameter widths
//	├── win32/           Catalog of modeled Win32 structures and prototypes
//	├── bind/            Go declarations under test and their import registry
//	├── verify/          Case table, Verifier, and concurrent Run
//	├── errors/          Structured error types for reporting mismatches
//	└── cmd/abicheck/    Command line front end
//
// # Quick Start
//
// Check the built-in table from a test:
//
//	func TestBindings(t *testing.T) {
//	    for _, c := range verify.Cases() {
//	        t.Run(c.Name, func(t *testing.T) { verify.CheckStruct(t, c) })
//	    }
//	    for _, c := range verify.FuncCases() {
//	        t.Run(c.Name, func(t *testing.T) { verify.CheckFunc(t, c) })
//	    }
//	}
//
// Or from the command line:
//
//	abicheck check --filter 'DD*'
//	abicheck layout NCCALCSIZE_PARAMS --arch 386
//
// check always targets the host; layout can describe any modeled architecture.
//
// # Architectures
//
// The native side is modeled for 386, amd64 and arm64 and can be laid out for
// any of them. The Go side is measured with reflect and therefore always
// describes the architecture the test binary was built for; a case is only
// compared when the two agree, and cases restricted to other architectures
// are skipped.
package winabi
