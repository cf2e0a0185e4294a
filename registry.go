//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"sync"
	"sync/atomic"

	"github.com/obinnaokechukwu/uigo/internal/handles"
)

// registry tracks the top-level windows of a UI so they can be destroyed
// before libui shuts down, and whether the menu bar may still change.
//
// libui builds the menu bar from the menus that exist when the first window
// is created, so menus are finalized from that point on.
type registry struct {
	mu             sync.Mutex
	windows        []Window
	menusFinalized atomic.Bool
}

func (r *registry) addWindow(w Window) {
	r.mu.Lock()
	r.windows = append(r.windows, w)
	r.mu.Unlock()
	r.menusFinalized.Store(true)
}

// removeWindow drops the window with pointer raw and reports whether it was
// registered.
func (r *registry) removeWindow(raw uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, w := range r.windows {
		if w.raw == raw {
			r.windows = append(r.windows[:i:i], r.windows[i+1:]...)
			return true
		}
	}
	return false
}

func (r *registry) drain() []Window {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws := r.windows
	r.windows = nil
	return ws
}

// Windows returns the windows that have been created and not destroyed, in
// creation order.
func (r *registry) Windows() []Window {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Window(nil), r.windows...)
}

// MenusFinalized reports whether menus can no longer be created or changed.
func (r *registry) MenusFinalized() bool {
	return r.menusFinalized.Load()
}

// destroyAllWindows destroys every registered window and returns how many
// there were.
func (u *UI) destroyAllWindows() int {
	ws := u.drain()
	for _, w := range ws {
		u.rt.ControlDestroy(w.raw)
		handles.Release(w.raw)
	}
	if len(ws) > 0 {
		log().Debug("uigo: destroyed remaining windows", "count", len(ws))
	}
	return len(ws)
}
