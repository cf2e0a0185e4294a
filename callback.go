//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/foreign"
	"github.com/obinnaokechukwu/uigo/internal/handles"
)

// Event slot names. A control has at most one handler per slot.
const (
	slotClicked            = "clicked"
	slotClosing            = "closing"
	slotContentSizeChanged = "contentsizechanged"
	slotShouldQuit         = "shouldquit"
)

// Closure shapes stored in the handle registry, one per trampoline.
type (
	dataFunc    func()
	dataIntFunc func() bool
	selfFunc    func(self uintptr)
	selfIntFunc func(self uintptr) bool
	selfArgFunc func(self, arg uintptr)
)

// Trampolines, one per C callback signature. purego can only create a
// limited number of callbacks, so these are shared by every registration and
// find their closure through the opaque data value. A missing closure means
// the handler was replaced or released while libui still held the old data
// value; such calls are ignored.
var (
	// queueTrampoline runs a one-shot box and drops it.
	queueTrampoline = foreign.NewDataTrampoline(func(data uintptr) {
		switch box := handles.Take(data).(type) {
		case dataFunc:
			box()
		case taskPoll:
			box.t.poll()
		}
	})

	dataIntTrampoline = foreign.NewDataIntTrampoline(func(data uintptr) int32 {
		if fn, ok := handles.Lookup(data).(dataIntFunc); ok && fn() {
			return 1
		}
		return 0
	})

	selfTrampoline = foreign.NewSelfTrampoline(func(self, data uintptr) {
		if fn, ok := handles.Lookup(data).(selfFunc); ok {
			fn(self)
		}
	})

	selfIntTrampoline = foreign.NewSelfIntTrampoline(func(self, data uintptr) int32 {
		if fn, ok := handles.Lookup(data).(selfIntFunc); ok && fn(self) {
			return 1
		}
		return 0
	})

	selfArgTrampoline = foreign.NewSelfArgTrampoline(func(self, arg, data uintptr) {
		if fn, ok := handles.Lookup(data).(selfArgFunc); ok {
			fn(self, arg)
		}
	})
)

// registerFunc is the shape of libui's "uiXOnY(self, fn, data)" calls.
type registerFunc func(self uintptr, t *foreign.Trampoline, data uintptr)

// bind stores box as the handler for slot on owner and hands the
// trampoline to libui. A previous handler for the slot is released.
func bind(owner uintptr, slot string, box any, t *foreign.Trampoline, register registerFunc) {
	id, replaced := handles.Bind(owner, slot, box)
	if replaced != 0 {
		log().Debug("uigo: replaced event handler", "owner", owner, "slot", slot)
	}
	register(owner, t, id)
}

// onEvent registers fn for a void (*)(T *self, void *data) event. wrap
// rebuilds the typed value around the pointer libui passes back, so the
// handler sees the object the event fired on rather than the value it was
// registered through.
func onEvent[T any](owner uintptr, slot string, wrap func(uintptr) T, fn func(T), register registerFunc) {
	bind(owner, slot, selfFunc(func(self uintptr) {
		fn(wrap(self))
	}), selfTrampoline, register)
}

// onEventBool registers fn for an int (*)(T *self, void *data) event.
func onEventBool[T any](owner uintptr, slot string, wrap func(uintptr) T, fn func(T) bool, register registerFunc) {
	bind(owner, slot, selfIntFunc(func(self uintptr) bool {
		return fn(wrap(self))
	}), selfIntTrampoline, register)
}

// onEvent2 registers fn for a void (*)(T *self, U *arg, void *data) event.
func onEvent2[T, U any](owner uintptr, slot string, wrapT func(uintptr) T, wrapU func(uintptr) U, fn func(T, U), register registerFunc) {
	bind(owner, slot, selfArgFunc(func(self, arg uintptr) {
		fn(wrapT(self), wrapU(arg))
	}), selfArgTrampoline, register)
}

// CallbackCount returns the number of Go closures currently held for libui:
// event handlers plus queued callbacks that have not run yet.
func CallbackCount() int {
	return handles.Count()
}
