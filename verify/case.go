package verify

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wippyai/winabi"
	"github.com/wippyai/winabi/errors"
)

// FieldMap pairs a native member path with the candidate field that
// overlays it. Native paths may index arrays ("rgrc[1]") and name members
// of anonymous unions directly.
type FieldMap struct {
	Native    string
	Candidate string
}

// Map pairs a native member with a differently named candidate field.
func Map(native, candidate string) FieldMap {
	return FieldMap{Native: native, Candidate: candidate}
}

// Same maps each native member to the candidate field with the same name,
// capitalized.
func Same(names ...string) []FieldMap {
	fields := make([]FieldMap, len(names))
	for i, name := range names {
		fields[i] = FieldMap{Native: name, Candidate: exported(name)}
	}
	return fields
}

func exported(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[n:]
}

// StructCase declares that Candidate overlays the native struct Native.
type StructCase struct {
	Candidate reflect.Type
	Name      string
	Native    string
	Note      string
	Fields    []FieldMap
	Arches    []winabi.Arch

	// HeaderOnly skips the whole-size comparison for candidates that embed
	// the native type as a prefix or that Go cannot pack as tightly.
	HeaderOnly bool
}

// compares reports whether evaluating c checks anything at all.
func (c StructCase) compares() bool {
	return !c.HeaderOnly || len(c.Fields) > 0
}

func (c StructCase) emptyError() error {
	return errors.InvalidInput(errors.PhaseLayout, c.Name+" is header-only and maps no fields")
}

// FuncCase declares that the Go import of Entry taking Params matches the
// native prototype Native. Entry defaults to Native.
type FuncCase struct {
	Name   string
	Native string
	Entry  string
	Params []reflect.Type
	Arches []winabi.Arch
}

func (c FuncCase) entry() string {
	if c.Entry != "" {
		return c.Entry
	}
	return c.Native
}

func appliesTo(arches []winabi.Arch, arch winabi.Arch) bool {
	return len(arches) == 0 || slices.Contains(arches, arch)
}

func archList(arches []winabi.Arch) string {
	names := make([]string, len(arches))
	for i, a := range arches {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}

// Check is a single comparison. Expected is the native measurement and
// Actual the candidate's. Err is set when either side could not be
// measured.
type Check struct {
	Err      error
	Subject  string
	What     string
	GoType   string
	Expected uintptr
	Actual   uintptr
}

// Check subjects.
const (
	SubjectSize       = "size"
	SubjectOffset     = "offset"
	SubjectParamCount = "len(params)"
	SubjectParam      = "param"
	SubjectReturn     = "return"
)

// Passed reports whether both sides were measured and agree.
func (c Check) Passed() bool {
	return c.Err == nil && c.Expected == c.Actual
}

// Failure describes a failed check, or returns nil if it passed.
func (c Check) Failure() error {
	if c.Err != nil {
		return c.Err
	}
	if c.Expected == c.Actual {
		return nil
	}
	switch c.Subject {
	case SubjectOffset:
		return errors.OffsetMismatch([]string{c.What}, c.Expected, c.Actual)
	case SubjectSize:
		return errors.SizeMismatch(c.GoType, c.What, c.Expected, c.Actual)
	case SubjectParamCount:
		return errors.New(errors.PhaseSignature, errors.KindSizeMismatch).
			Path(c.Subject).
			Values(c.Expected, c.Actual).
			Detail("%d parameters, want %d", c.Actual, c.Expected).
			Build()
	}
	return errors.New(errors.PhaseSignature, errors.KindSizeMismatch).
		Path(c.Subject, c.What).
		Values(c.Expected, c.Actual).
		Detail("width %d, want %d", c.Actual, c.Expected).
		Build()
}

func (c Check) String() string {
	s := c.Subject
	if c.What != "" {
		s += " " + c.What
	}
	if c.Err != nil {
		return s + ": " + c.Err.Error()
	}
	return fmt.Sprintf("%s: got %d, want %d", s, c.Actual, c.Expected)
}

// Result is the outcome of evaluating one case on one architecture.
type Result struct {
	Err        error
	Case       string
	SkipReason string
	Arch       winabi.Arch
	Checks     []Check
	Skipped    bool
}

// Failed reports whether the case could not be evaluated or any check
// disagreed. Skipped cases never fail.
func (r Result) Failed() bool {
	if r.Skipped {
		return false
	}
	if r.Err != nil {
		return true
	}
	for _, c := range r.Checks {
		if !c.Passed() {
			return true
		}
	}
	return false
}

// Failures returns the checks that did not pass.
func (r Result) Failures() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Passed() {
			failed = append(failed, c)
		}
	}
	return failed
}
