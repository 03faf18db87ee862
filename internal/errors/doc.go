// Package apperrors defines structured application error types and maps them
// to process exit codes. Every type supports errors.Is and errors.As through
// Unwrap or Is methods, so callers can wrap freely with fmt.Errorf and %w.
package apperrors
