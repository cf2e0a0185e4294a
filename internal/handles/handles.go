// Package handles keeps Go closures alive while C code holds a reference to
// them.
//
// C memory cannot hold Go pointers, so every closure handed to the foreign
// runtime is registered here and the runtime is given the returned id as its
// opaque "void *data" value. Trampolines turn the id back into the closure
// with Lookup.
//
// Event handlers are additionally keyed by the pointer of the object that
// owns them and an event slot name. Binding a second handler to the same
// (owner, slot) pair releases the first one, and Release drops every handler
// of an owner once the foreign object is destroyed.
package handles

import (
	"sync"
)

type slotKey struct {
	owner uintptr
	slot  string
}

var (
	mu      sync.RWMutex
	handles         = make(map[uintptr]any)
	slots           = make(map[slotKey]uintptr)
	owners          = make(map[uintptr][]string)
	nextID  uintptr = 1
)

// Register stores a Go object and returns a handle ID.
// The handle can be safely stored in C memory (as uintptr or void*).
// The object will remain accessible until Unregister is called.
//
// Thread-safe.
func Register(v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	return registerLocked(v)
}

func registerLocked(v any) uintptr {
	id := nextID
	nextID++
	handles[id] = v
	return id
}

// Lookup retrieves a Go object by its handle ID.
// Returns nil if the handle is not registered.
//
// Thread-safe.
func Lookup(id uintptr) any {
	mu.RLock()
	defer mu.RUnlock()
	return handles[id]
}

// Take retrieves a Go object and unregisters it in one step.
// It is used for one-shot callbacks. Returns nil if the handle is not
// registered.
//
// Thread-safe.
func Take(id uintptr) any {
	mu.Lock()
	defer mu.Unlock()
	v, ok := handles[id]
	if !ok {
		return nil
	}
	delete(handles, id)
	return v
}

// Unregister removes a handle and allows the Go object to be garbage collected.
// Should be called when the C code no longer needs the reference.
//
// Thread-safe.
func Unregister(id uintptr) {
	mu.Lock()
	defer mu.Unlock()
	delete(handles, id)
}

// Bind registers v as the handler for the given slot of owner and returns its
// handle ID. If the slot already had a handler, that handler is unregistered
// and its ID returned as replaced (0 otherwise).
//
// Thread-safe.
func Bind(owner uintptr, slot string, v any) (id, replaced uintptr) {
	mu.Lock()
	defer mu.Unlock()

	key := slotKey{owner, slot}
	if old, ok := slots[key]; ok {
		delete(handles, old)
		replaced = old
	} else {
		owners[owner] = append(owners[owner], slot)
	}
	id = registerLocked(v)
	slots[key] = id
	return id, replaced
}

// Slot returns the handle ID bound to the given slot of owner, or 0.
//
// Thread-safe.
func Slot(owner uintptr, slot string) uintptr {
	mu.RLock()
	defer mu.RUnlock()
	return slots[slotKey{owner, slot}]
}

// Release unregisters every handler bound to owner and returns how many were
// dropped.
//
// Thread-safe.
func Release(owner uintptr) int {
	mu.Lock()
	defer mu.Unlock()

	names := owners[owner]
	for _, slot := range names {
		key := slotKey{owner, slot}
		delete(handles, slots[key])
		delete(slots, key)
	}
	delete(owners, owner)
	return len(names)
}

// Count returns the number of currently registered handles.
// Useful for debugging and testing memory leaks.
//
// Thread-safe.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(handles)
}

// Drain drops every registered handle and returns the values that were
// registered. The foreign runtime must no longer hold any of the IDs.
//
// Thread-safe.
func Drain() []any {
	mu.Lock()
	defer mu.Unlock()
	vs := make([]any, 0, len(handles))
	for _, v := range handles {
		vs = append(vs, v)
	}
	handles = make(map[uintptr]any)
	slots = make(map[slotKey]uintptr)
	owners = make(map[uintptr][]string)
	return vs
}
