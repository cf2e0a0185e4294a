//go:build !ios && !android && (amd64 || arm64)

package foreign

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
)

// Shape identifies the C signature of a trampoline.
type Shape int

const (
	// ShapeData is void (*)(void *data).
	ShapeData Shape = iota
	// ShapeDataInt is int (*)(void *data).
	ShapeDataInt
	// ShapeSelf is void (*)(T *self, void *data).
	ShapeSelf
	// ShapeSelfInt is int (*)(T *self, void *data).
	ShapeSelfInt
	// ShapeSelfArg is void (*)(T *self, U *arg, void *data).
	ShapeSelfArg
)

// String returns the C signature of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeData:
		return "void(void*)"
	case ShapeDataInt:
		return "int(void*)"
	case ShapeSelf:
		return "void(T*, void*)"
	case ShapeSelfInt:
		return "int(T*, void*)"
	case ShapeSelfArg:
		return "void(T*, U*, void*)"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Trampoline is a Go function with a C callback signature.
//
// The C function pointer is created lazily on first use because purego can
// only allocate a fixed number of callbacks per process and never frees them.
// Trampolines are therefore package-level values shared by every
// registration of the same shape; they tell registrations apart by the opaque
// data argument.
type Trampoline struct {
	shape Shape
	fn    any

	once sync.Once
	ptr  uintptr
}

// NewDataTrampoline creates a void (*)(void *data) trampoline.
func NewDataTrampoline(fn func(data uintptr)) *Trampoline {
	return &Trampoline{shape: ShapeData, fn: fn}
}

// NewDataIntTrampoline creates an int (*)(void *data) trampoline.
func NewDataIntTrampoline(fn func(data uintptr) int32) *Trampoline {
	return &Trampoline{shape: ShapeDataInt, fn: fn}
}

// NewSelfTrampoline creates a void (*)(T *self, void *data) trampoline.
func NewSelfTrampoline(fn func(self, data uintptr)) *Trampoline {
	return &Trampoline{shape: ShapeSelf, fn: fn}
}

// NewSelfIntTrampoline creates an int (*)(T *self, void *data) trampoline.
func NewSelfIntTrampoline(fn func(self, data uintptr) int32) *Trampoline {
	return &Trampoline{shape: ShapeSelfInt, fn: fn}
}

// NewSelfArgTrampoline creates a void (*)(T *self, U *arg, void *data) trampoline.
func NewSelfArgTrampoline(fn func(self, arg, data uintptr)) *Trampoline {
	return &Trampoline{shape: ShapeSelfArg, fn: fn}
}

// Shape returns the C signature of the trampoline.
func (t *Trampoline) Shape() Shape {
	return t.shape
}

// Pointer returns the C function pointer, creating it on first call.
func (t *Trampoline) Pointer() uintptr {
	t.once.Do(func() {
		t.ptr = purego.NewCallback(t.fn)
	})
	return t.ptr
}

// CallData invokes a ShapeData or ShapeDataInt trampoline from Go.
// It returns the callback's result, or 0 for void callbacks.
func (t *Trampoline) CallData(data uintptr) int32 {
	switch fn := t.fn.(type) {
	case func(uintptr):
		fn(data)
		return 0
	case func(uintptr) int32:
		return fn(data)
	}
	panic(fmt.Sprintf("foreign: CallData on %s trampoline", t.shape))
}

// CallSelf invokes a ShapeSelf or ShapeSelfInt trampoline from Go.
func (t *Trampoline) CallSelf(self, data uintptr) int32 {
	switch fn := t.fn.(type) {
	case func(uintptr, uintptr):
		fn(self, data)
		return 0
	case func(uintptr, uintptr) int32:
		return fn(self, data)
	}
	panic(fmt.Sprintf("foreign: CallSelf on %s trampoline", t.shape))
}

// CallSelfArg invokes a ShapeSelfArg trampoline from Go.
func (t *Trampoline) CallSelfArg(self, arg, data uintptr) {
	fn, ok := t.fn.(func(uintptr, uintptr, uintptr))
	if !ok {
		panic(fmt.Sprintf("foreign: CallSelfArg on %s trampoline", t.shape))
	}
	fn(self, arg, data)
}
