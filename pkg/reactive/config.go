package reactive

import (
	"log/slog"
	"sync/atomic"
)

// DebugMode enables debug logging of transaction boundaries.
// This should be set at startup and not changed during runtime.
var DebugMode bool

var defaultLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used by package-level functions
// (Batch, TxNamed, effects and memos). nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	defaultLogger.Store(l)
}

func logger() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
