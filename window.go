//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/handles"
)

// WindowType selects whether a window shows the application menu bar.
type WindowType int

const (
	HasMenubar WindowType = iota
	NoMenubar
)

// Window is a top-level window.
//
// Creating the first window finalizes the menus. Windows still open when the
// UI is closed are destroyed by Close.
type Window struct {
	Handle
}

// NewWindow creates a hidden window with the given title and content size.
func (u *UI) NewWindow(title string, width, height int, t WindowType) Window {
	u.checkThread("NewWindow")
	w := Window{Handle{raw: u.rt.NewWindow(title, int32(width), int32(height), t == HasMenubar)}}
	u.addWindow(w)
	return w
}

func wrapWindow(raw uintptr) Window {
	return Window{Handle{raw: raw}}
}

// Title returns the window title.
func (w Window) Title() string {
	return current("Title").rt.WindowTitle(w.raw)
}

// SetTitle sets the window title.
func (w Window) SetTitle(title string) {
	current("SetTitle").rt.WindowSetTitle(w.raw, title)
}

// SetChild makes child the content of the window, replacing any previous
// content.
func (w Window) SetChild(child Control) {
	current("SetChild").rt.WindowSetChild(w.raw, child.Raw())
}

// Margined reports whether the content has a margin around it.
func (w Window) Margined() bool {
	return current("Margined").rt.WindowMargined(w.raw)
}

// SetMargined sets whether the content has a margin around it.
func (w Window) SetMargined(margined bool) {
	current("SetMargined").rt.WindowSetMargined(w.raw, margined)
}

// OnClosing sets the function called when the user tries to close the
// window. Returning true lets libui destroy the window; the window is then
// removed from the UI's registry and its handlers are released. Returning
// false keeps it open.
func (w Window) OnClosing(fn func(Window) bool) {
	u := current("OnClosing")
	onEventBool(w.raw, slotClosing, wrapWindow, func(win Window) bool {
		if !fn(win) {
			return false
		}
		u.removeWindow(win.raw)
		handles.Release(win.raw)
		return true
	}, u.rt.WindowOnClosing)
}

// OnContentSizeChanged sets the function called after the window is resized.
func (w Window) OnContentSizeChanged(fn func(Window)) {
	u := current("OnContentSizeChanged")
	onEvent(w.raw, slotContentSizeChanged, wrapWindow, fn, u.rt.WindowOnContentSizeChanged)
}
