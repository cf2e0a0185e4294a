//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var (
	logger        atomic.Pointer[slog.Logger]
	discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// SetLogger sets the logger for uigo's lifecycle messages: initialization,
// shutdown, window teardown and event handler replacement. Everything is
// logged at debug level except teardown anomalies, which are warnings.
// Pass nil to discard log output, the default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discardLogger
}
