// Package errors provides structured error types for the winabi verifier.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/native type names, the
// expected and actual measurement, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLayout, errors.KindOffsetMismatch).
//		Path("MSG", "time").
//		GoType("bind.MSG").
//		NativeType("MSG").
//		Values(32, 36).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.SizeMismatch("bind.RECT", "RECT", 16, 20)
//	err := errors.NotFound(errors.PhaseResolve, "declaration", "SendMessageW")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
