//go:build !ios && !android && (amd64 || arm64)

// Package uigo provides Go bindings to libui, a portable native GUI toolkit
// (Win32 on Windows, Cocoa on macOS, GTK+ elsewhere), without CGO using
// purego.
//
// The package is built around three pieces:
//
//   - Init returns a *UI, the only evidence that libui is running. Closing it
//     destroys every remaining window and shuts libui down.
//   - Handle is a copyable wrapper around a libui object pointer. Copies
//     alias the same object; Destroy invalidates all of them at once.
//   - Event handlers, queued callbacks and spawned tasks are Go closures kept
//     alive on the Go side and invoked by C trampolines on the UI thread.
//
// libui is single-threaded. Every call except (*UI).Queue, (*UI).Spawn and
// the Waker methods must happen on the goroutine that called Init, locked to
// its OS thread:
//
//	func init() { runtime.LockOSThread() }
//
// On macOS that thread must also be the process's main thread.
package uigo

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/obinnaokechukwu/uigo/internal/bindings"
	"github.com/obinnaokechukwu/uigo/internal/foreign"
	"github.com/obinnaokechukwu/uigo/internal/handles"
	"github.com/obinnaokechukwu/uigo/internal/osthread"
	"github.com/obinnaokechukwu/uigo/internal/platform"
)

var (
	initMu sync.Mutex
	active atomic.Pointer[UI]

	// queueMu is held shared while a callback is handed to libui and
	// exclusively while Close shuts libui down.
	queueMu sync.RWMutex
)

// UI is a live libui instance. At most one exists per process.
type UI struct {
	rt     foreign.Runtime
	thread int // OS thread id of Init, or osthread.Unknown when unchecked

	registry
	tasks atomic.Int64
}

// Init loads libui and starts it, returning the process's UI.
//
// Only one UI can be live at once; Init returns ErrAlreadyInitialized until
// the current one is closed. If libui cannot hook into the platform's GUI
// APIs, Init returns an *InitError carrying libui's message.
func Init(opts ...Option) (*UI, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		SetLogger(o.logger)
	}

	initMu.Lock()
	defer initMu.Unlock()

	if active.Load() != nil {
		return nil, ErrAlreadyInitialized
	}

	rt := o.runtime
	if rt == nil {
		lib, err := bindings.New(o.libPath)
		if err != nil {
			return nil, err
		}
		rt = lib
		log().Debug("uigo: loaded libui", "path", bindings.Path())
	}

	if err := rt.Init(); err != nil {
		return nil, &InitError{Message: err.Error()}
	}

	u := &UI{rt: rt, thread: osthread.Unknown}
	if o.threadCheck {
		u.thread = osthread.ID()
	}
	active.Store(u)

	log().Debug("uigo: initialized",
		"threadCheck", u.thread != osthread.Unknown,
		"mainThreadBound", platform.MainThreadBound())
	return u, nil
}

// IsInitialized reports whether a UI is live.
func IsInitialized() bool {
	return active.Load() != nil
}

// Close destroys every window still registered, releases every event
// handler and shuts libui down. Afterwards Init may be called again.
//
// Closing a UI that is not the live one is a programming error and panics:
// libui would be shut down without having been started.
func (u *UI) Close() {
	initMu.Lock()
	defer initMu.Unlock()

	if active.Load() != u {
		panic("uigo: Close called on a UI that is not initialized")
	}
	u.checkThread("Close")

	destroyed := u.destroyAllWindows()

	queueMu.Lock()
	boxes := handles.Drain()
	u.rt.Uninit()
	active.Store(nil)
	queueMu.Unlock()

	for _, box := range boxes {
		if p, ok := box.(taskPoll); ok {
			p.t.release()
		}
	}

	log().Debug("uigo: uninitialized",
		"windowsDestroyed", destroyed,
		"callbacksReleased", len(boxes),
		"liveTasks", u.tasks.Load())
}

// Quit makes the running event loop return. It may be called from an event
// handler.
func (u *UI) Quit() {
	u.checkThread("Quit")
	u.rt.Quit()
}

// checkThread panics if thread checking is on and the caller is on another
// OS thread than Init.
func (u *UI) checkThread(op string) {
	if u.thread == osthread.Unknown {
		return
	}
	if id := osthread.ID(); id != u.thread {
		panic(fmt.Sprintf("uigo: %s called on thread %d, UI thread is %d", op, id, u.thread))
	}
}

// current returns the live UI for a UI-thread operation, panicking with
// ErrNotInitialized if there is none.
func current(op string) *UI {
	u := active.Load()
	if u == nil {
		panic(ErrNotInitialized)
	}
	u.checkThread(op)
	return u
}
