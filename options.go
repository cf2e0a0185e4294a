//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"log/slog"

	"github.com/obinnaokechukwu/uigo/internal/foreign"
)

// Option configures Init.
type Option func(*options)

type options struct {
	libPath     string
	threadCheck bool
	logger      *slog.Logger
	runtime     foreign.Runtime
}

// WithLibraryPath loads libui from path instead of searching for it.
// The library is only loaded once per process, so the path of the first
// successful Init wins.
func WithLibraryPath(path string) Option {
	return func(o *options) {
		o.libPath = path
	}
}

// WithThreadCheck makes UI operations panic when they are called from an OS
// thread other than the one that called Init. The caller must lock its
// goroutine to the thread with runtime.LockOSThread before Init.
//
// The check is a no-op on platforms where thread ids are unavailable.
func WithThreadCheck(enabled bool) Option {
	return func(o *options) {
		o.threadCheck = enabled
	}
}

// WithLogger sets the logger used for lifecycle messages. It is equivalent to
// calling SetLogger before Init.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// withRuntime replaces libui with another implementation of the foreign
// surface.
func withRuntime(rt foreign.Runtime) Option {
	return func(o *options) {
		o.runtime = rt
	}
}
