package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in verification the error occurred
type Phase string

const (
	PhaseLayout     Phase = "layout"     // struct size/offset comparison
	PhaseSignature  Phase = "signature"  // function width comparison
	PhaseResolve    Phase = "resolve"    // import declaration lookup
	PhaseCatalog    Phase = "catalog"    // native declaration lookup
	PhaseIntrospect Phase = "introspect" // candidate reflection
	PhaseConfig     Phase = "config"     // CLI configuration
)

// Kind categorizes the error
type Kind string

const (
	KindSizeMismatch   Kind = "size_mismatch"
	KindOffsetMismatch Kind = "offset_mismatch"
	KindNotFound       Kind = "not_found"
	KindAmbiguous      Kind = "ambiguous"
	KindUnsupported    Kind = "unsupported"
	KindInvalidInput   Kind = "invalid_input"
	KindFieldMissing   Kind = "field_missing"
	KindDuplicate      Kind = "duplicate"
	KindArchSkipped    Kind = "arch_skipped"
)

// Error is the structured error type used throughout the verifier
type Error struct {
	Cause      error
	Phase      Phase
	Kind       Kind
	GoType     string
	NativeType string
	Detail     string
	Path       []string
	Expected   uintptr
	Actual     uintptr
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.NativeType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.NativeType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", native type ")
			b.WriteString(e.NativeType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("native type ")
			b.WriteString(e.NativeType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.NativeType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// NativeType sets the native type name
func (b *Builder) NativeType(t string) *Builder {
	b.err.NativeType = t
	return b
}

// Values records the expected and actual measurements
func (b *Builder) Values(expected, actual uintptr) *Builder {
	b.err.Expected = expected
	b.err.Actual = actual
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// SizeMismatch creates a whole-type size mismatch error
func SizeMismatch(goType, nativeType string, expected, actual uintptr) *Error {
	return &Error{
		Phase:      PhaseLayout,
		Kind:       KindSizeMismatch,
		GoType:     goType,
		NativeType: nativeType,
		Expected:   expected,
		Actual:     actual,
		Detail:     fmt.Sprintf("size %d, want %d", actual, expected),
	}
}

// OffsetMismatch creates a field offset mismatch error
func OffsetMismatch(path []string, expected, actual uintptr) *Error {
	return &Error{
		Phase:    PhaseLayout,
		Kind:     KindOffsetMismatch,
		Path:     path,
		Expected: expected,
		Actual:   actual,
		Detail:   fmt.Sprintf("offset %d, want %d", actual, expected),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Ambiguous creates an overload resolution error naming the candidate count
func Ambiguous(name string, matches int) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindAmbiguous,
		Detail: fmt.Sprintf("declaration %q matches %d overloads", name, matches),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, goType, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		GoType: goType,
		Detail: what,
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, path []string, typeName, fieldName string) *Error {
	e := &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("field %q not found", fieldName),
	}
	if phase == PhaseIntrospect {
		e.GoType = typeName
	} else {
		e.NativeType = typeName
	}
	return e
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Duplicate creates a duplicate registration error
func Duplicate(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicate,
		Detail: fmt.Sprintf("%s %q already registered", what, name),
	}
}

// ArchSkipped marks a case that does not apply to the target architecture
func ArchSkipped(name, arch string) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindArchSkipped,
		Detail: fmt.Sprintf("%s does not apply to %s", name, arch),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
