//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"fmt"

	"github.com/obinnaokechukwu/uigo/internal/handles"
)

// Handle is a reference to a libui control.
//
// libui owns the object; a Handle carries nothing but its pointer. Copying a
// Handle aliases the same object and two Handles are equal exactly when they
// point at the same object. Nothing is reference counted: after Destroy every
// copy is stale, and using a stale Handle is undefined behavior, exactly as
// in C.
type Handle struct {
	raw uintptr
}

// Control is implemented by Handle and every widget type embedding it.
type Control interface {
	Raw() uintptr
	control()
}

// FromRaw wraps a libui control pointer obtained from C.
//
// The pointer is not checked. It must be a live uiControl; anything else is
// undefined behavior on first use.
func FromRaw(raw uintptr) Handle {
	return Handle{raw: raw}
}

// Raw returns the libui pointer for passing to C.
func (h Handle) Raw() uintptr {
	return h.raw
}

// IsZero reports whether h refers to no object.
func (h Handle) IsZero() bool {
	return h.raw == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("uigo.Handle(%#x)", h.raw)
}

func (Handle) control() {}

// Parent returns the control containing h, if any.
func (h Handle) Parent() (Handle, bool) {
	p := current("Parent").rt.ControlParent(h.raw)
	return Handle{raw: p}, p != 0
}

// SetParent records parent as the container of h. It is meant for container
// implementations; applications attach children with Box.Append and
// Window.SetChild. A zero parent detaches h.
func (h Handle) SetParent(parent Control) {
	var p uintptr
	if parent != nil {
		p = parent.Raw()
	}
	current("SetParent").rt.ControlSetParent(h.raw, p)
}

// Show makes the control visible.
func (h Handle) Show() {
	current("Show").rt.ControlShow(h.raw)
}

// Hide hides the control.
func (h Handle) Hide() {
	current("Hide").rt.ControlHide(h.raw)
}

// Enable allows the control to receive input.
func (h Handle) Enable() {
	current("Enable").rt.ControlEnable(h.raw)
}

// Disable prevents the control from receiving input and greys it out.
func (h Handle) Disable() {
	current("Disable").rt.ControlDisable(h.raw)
}

// Visible reports whether the control is shown.
func (h Handle) Visible() bool {
	return current("Visible").rt.ControlVisible(h.raw)
}

// Enabled reports whether the control accepts input.
func (h Handle) Enabled() bool {
	return current("Enabled").rt.ControlEnabled(h.raw)
}

// Destroy destroys the control and its children and releases the event
// handlers registered on it.
//
// Every copy of h becomes stale. The control must not have a parent; detach
// it first (for example with Box.Delete). Handlers registered on children
// are released when the UI is closed.
func (h Handle) Destroy() {
	u := current("Destroy")
	u.rt.ControlDestroy(h.raw)
	handles.Release(h.raw)
	u.removeWindow(h.raw)
}
