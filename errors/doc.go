// Package errors provides structured error types for the pascal-host library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go type name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseHost, errors.KindTypeMismatch).
//		GoType("string").
//		Detail("unsupported parameter type").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidInput(errors.PhaseValidate, "row length must be non-negative")
//	err := errors.Overflow(errors.PhaseGenerate, 35, 17, "uint32")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
