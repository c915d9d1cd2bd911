// Package errors provides coded, structured errors for signaled.
//
// Every error carries a unique code (e.g., "E101") registered with a
// category and a short message. Codes make errors comparable with the
// standard library's errors.Is regardless of the per-call detail attached
// to them:
//
//	err := errors.New(errors.CodeIndexOutOfRange).
//	    WithDetailf("index %d, length %d", 7, 3)
//
//	stderrors.Is(err, errors.New(errors.CodeIndexOutOfRange)) // true
//
// An *Error is a slog.LogValuer: passed as a log attribute it expands to
// its code, message, detail and hint.
//
// # Error Categories
//
//   - runtime: misuse of the reactive runtime (budgets, cycles)
//   - collection: invalid arguments to a collection operation
package errors
