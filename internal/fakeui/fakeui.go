//go:build !ios && !android && (amd64 || arm64)

// Package fakeui is an in-memory implementation of foreign.Runtime.
//
// It mimics the parts of libui the bridge depends on: opaque object pointers,
// the containment tree, one registration per event slot, a FIFO main queue
// that can be fed from any goroutine, and the quit flag seen by MainStep.
// Tests drive it directly with Fire, FireClosing and FireMenuItem to simulate
// user input.
//
// Misuse that would crash real libui (double destroy, calls on destroyed
// objects, MainStep before MainSteps) panics here.
package fakeui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/obinnaokechukwu/uigo/internal/foreign"
)

// Kind is the type of a fake UI object.
type Kind int

const (
	KindWindow Kind = iota + 1
	KindButton
	KindBox
	KindMenu
	KindMenuItem
)

func (k Kind) String() string {
	switch k {
	case KindWindow:
		return "window"
	case KindButton:
		return "button"
	case KindBox:
		return "box"
	case KindMenu:
		return "menu"
	case KindMenuItem:
		return "menuitem"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event slot names used by Fire.
const (
	SlotClicked            = "clicked"
	SlotClosing            = "closing"
	SlotContentSizeChanged = "contentsizechanged"
)

type object struct {
	kind      Kind
	text      string
	parent    uintptr
	children  []uintptr
	visible   bool
	enabled   bool
	margined  bool
	padded    bool
	checked   bool
	checkable bool
	destroyed bool
}

type registration struct {
	t    *foreign.Trampoline
	data uintptr
}

type queued struct {
	t    *foreign.Trampoline
	data uintptr
}

type eventKey struct {
	ptr  uintptr
	slot string
}

// Runtime is a fake libui. The zero value is not usable; call New.
type Runtime struct {
	mu   sync.Mutex
	cond *sync.Cond

	initErr     string
	initialized bool
	stepsReady  bool
	quit        bool

	inits, uninits int

	objects map[uintptr]*object
	nextPtr uintptr
	events  map[eventKey]registration
	queue   []queued

	shouldQuit *registration

	destroyed map[uintptr]int
}

// New returns an uninitialized fake runtime.
func New() *Runtime {
	r := &Runtime{
		objects:   make(map[uintptr]*object),
		nextPtr:   0x1000,
		events:    make(map[eventKey]registration),
		destroyed: make(map[uintptr]int),
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// FailInit makes the next Init calls fail with msg. An empty msg clears the
// failure.
func (r *Runtime) FailInit(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initErr = msg
}

func (r *Runtime) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initErr != "" {
		return errors.New(r.initErr)
	}
	if r.initialized {
		panic("fakeui: Init while initialized")
	}
	r.initialized = true
	r.quit = false
	r.stepsReady = false
	r.inits++
	return nil
}

func (r *Runtime) Uninit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.initialized {
		panic("fakeui: Uninit while not initialized")
	}
	r.initialized = false
	r.uninits++
	r.queue = nil
	r.shouldQuit = nil
}

// Initialized reports whether Init succeeded without a matching Uninit.
func (r *Runtime) Initialized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initialized
}

// Inits returns the number of successful Init calls.
func (r *Runtime) Inits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inits
}

// Uninits returns the number of Uninit calls.
func (r *Runtime) Uninits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uninits
}

func (r *Runtime) MainSteps() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stepsReady = true
}

// MainStep runs at most one queued callback. With wait set it blocks until a
// callback is queued or Quit is called. It returns false once Quit was called.
func (r *Runtime) MainStep(wait bool) bool {
	r.mu.Lock()
	if !r.stepsReady {
		r.mu.Unlock()
		panic("fakeui: MainStep before MainSteps")
	}
	for wait && len(r.queue) == 0 && !r.quit {
		r.cond.Wait()
	}
	var next *queued
	if len(r.queue) > 0 {
		q := r.queue[0]
		r.queue = r.queue[1:]
		next = &q
	}
	r.mu.Unlock()

	if next != nil {
		next.t.CallData(next.data)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.quit
}

func (r *Runtime) Main() {
	r.MainSteps()
	for r.MainStep(true) {
	}
}

func (r *Runtime) Quit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quit = true
	r.cond.Broadcast()
}

// QueueMain may be called from any goroutine.
func (r *Runtime) QueueMain(t *foreign.Trampoline, data uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, queued{t, data})
	r.cond.Broadcast()
}

// Pending returns the number of queued callbacks.
func (r *Runtime) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

func (r *Runtime) OnShouldQuit(t *foreign.Trampoline, data uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shouldQuit = &registration{t, data}
}

// ShouldQuit simulates the platform asking the application to quit (for
// example the macOS application menu). It calls the registered handler and
// calls Quit if the handler returns non-zero.
func (r *Runtime) ShouldQuit() bool {
	r.mu.Lock()
	reg := r.shouldQuit
	r.mu.Unlock()
	if reg == nil {
		return false
	}
	if reg.t.CallData(reg.data) == 0 {
		return false
	}
	r.Quit()
	return true
}

func (r *Runtime) newObject(o *object) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.initialized {
		panic("fakeui: object created while not initialized")
	}
	ptr := r.nextPtr
	r.nextPtr += 0x10
	r.objects[ptr] = o
	return ptr
}

// live returns the object for ptr. r.mu must be held.
func (r *Runtime) live(ptr uintptr) *object {
	o, ok := r.objects[ptr]
	if !ok {
		panic(fmt.Sprintf("fakeui: unknown object %#x", ptr))
	}
	if o.destroyed {
		panic(fmt.Sprintf("fakeui: use of destroyed %s %#x", o.kind, ptr))
	}
	return o
}

// destroyLocked destroys ptr and its children, like uiControlDestroy.
func (r *Runtime) destroyLocked(ptr uintptr) {
	o := r.live(ptr)
	for _, c := range o.children {
		r.destroyLocked(c)
	}
	o.destroyed = true
	o.children = nil
	r.destroyed[ptr]++
	for k := range r.events {
		if k.ptr == ptr {
			delete(r.events, k)
		}
	}
}

func (r *Runtime) ControlDestroy(c uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.objects[c]
	if ok && o.destroyed {
		panic(fmt.Sprintf("fakeui: double destroy of %s %#x", o.kind, c))
	}
	if ok && o.parent != 0 {
		panic(fmt.Sprintf("fakeui: destroy of %s %#x that still has a parent", o.kind, c))
	}
	r.destroyLocked(c)
}

// Destroyed returns how many times ptr was destroyed.
func (r *Runtime) Destroyed(ptr uintptr) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.destroyed[ptr]
}

// IsDestroyed reports whether ptr was destroyed.
func (r *Runtime) IsDestroyed(ptr uintptr) bool {
	return r.Destroyed(ptr) > 0
}

// Live returns the number of objects of kind k that have not been destroyed.
func (r *Runtime) Live(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, o := range r.objects {
		if o.kind == k && !o.destroyed {
			n++
		}
	}
	return n
}

func (r *Runtime) ControlParent(c uintptr) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live(c).parent
}

func (r *Runtime) ControlSetParent(c, parent uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := r.live(c)
	if o.parent != 0 {
		if p, ok := r.objects[o.parent]; ok {
			p.children = removePtr(p.children, c)
		}
	}
	o.parent = parent
	if parent != 0 {
		p := r.live(parent)
		p.children = append(p.children, c)
	}
}

func (r *Runtime) ControlShow(c uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(c).visible = true
}

func (r *Runtime) ControlHide(c uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(c).visible = false
}

func (r *Runtime) ControlEnable(c uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(c).enabled = true
}

func (r *Runtime) ControlDisable(c uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(c).enabled = false
}

func (r *Runtime) ControlVisible(c uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live(c).visible
}

func (r *Runtime) ControlEnabled(c uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live(c).enabled
}

func (r *Runtime) NewWindow(title string, width, height int32, hasMenubar bool) uintptr {
	return r.newObject(&object{kind: KindWindow, text: title, enabled: true})
}

func (r *Runtime) WindowTitle(w uintptr) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live(w).text
}

func (r *Runtime) WindowSetTitle(w uintptr, title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(w).text = title
}

func (r *Runtime) WindowSetChild(w, child uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	win := r.live(w)
	for _, c := range win.children {
		r.live(c).parent = 0
	}
	win.children = nil
	if child != 0 {
		r.live(child).parent = w
		win.children = []uintptr{child}
	}
}

func (r *Runtime) WindowMargined(w uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live(w).margined
}

func (r *Runtime) WindowSetMargined(w uintptr, margined bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(w).margined = margined
}

func (r *Runtime) register(ptr uintptr, slot string, t *foreign.Trampoline, data uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(ptr)
	r.events[eventKey{ptr, slot}] = registration{t, data}
}

// Registration returns the opaque data value registered for the given slot of
// ptr, or 0.
func (r *Runtime) Registration(ptr uintptr, slot string) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[eventKey{ptr, slot}].data
}

func (r *Runtime) WindowOnClosing(w uintptr, t *foreign.Trampoline, data uintptr) {
	r.register(w, SlotClosing, t, data)
}

func (r *Runtime) WindowOnContentSizeChanged(w uintptr, t *foreign.Trampoline, data uintptr) {
	r.register(w, SlotContentSizeChanged, t, data)
}

func (r *Runtime) NewButton(text string) uintptr {
	return r.newObject(&object{kind: KindButton, text: text, visible: true, enabled: true})
}

func (r *Runtime) ButtonText(b uintptr) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live(b).text
}

func (r *Runtime) ButtonSetText(b uintptr, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(b).text = text
}

func (r *Runtime) ButtonOnClicked(b uintptr, t *foreign.Trampoline, data uintptr) {
	r.register(b, SlotClicked, t, data)
}

func (r *Runtime) NewVerticalBox() uintptr {
	return r.newObject(&object{kind: KindBox, visible: true, enabled: true})
}

func (r *Runtime) NewHorizontalBox() uintptr {
	return r.newObject(&object{kind: KindBox, visible: true, enabled: true})
}

func (r *Runtime) BoxAppend(b, child uintptr, stretchy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	box := r.live(b)
	c := r.live(child)
	if c.parent != 0 {
		panic(fmt.Sprintf("fakeui: %s %#x already has a parent", c.kind, child))
	}
	c.parent = b
	box.children = append(box.children, child)
}

func (r *Runtime) BoxNumChildren(b uintptr) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int32(len(r.live(b).children))
}

func (r *Runtime) BoxDelete(b uintptr, index int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	box := r.live(b)
	if index < 0 || int(index) >= len(box.children) {
		panic(fmt.Sprintf("fakeui: box index %d out of range", index))
	}
	child := box.children[index]
	box.children = append(box.children[:index:index], box.children[index+1:]...)
	r.live(child).parent = 0
}

func (r *Runtime) BoxPadded(b uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live(b).padded
}

func (r *Runtime) BoxSetPadded(b uintptr, padded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(b).padded = padded
}

func (r *Runtime) NewMenu(name string) uintptr {
	return r.newObject(&object{kind: KindMenu, text: name, enabled: true})
}

func (r *Runtime) appendItem(m uintptr, name string, checkable bool) uintptr {
	r.mu.Lock()
	r.live(m)
	r.mu.Unlock()

	item := r.newObject(&object{kind: KindMenuItem, text: name, enabled: true, checkable: checkable})

	r.mu.Lock()
	defer r.mu.Unlock()
	menu := r.live(m)
	menu.children = append(menu.children, item)
	r.objects[item].parent = m
	return item
}

func (r *Runtime) MenuAppendItem(m uintptr, name string) uintptr {
	return r.appendItem(m, name, false)
}

func (r *Runtime) MenuAppendCheckItem(m uintptr, name string) uintptr {
	return r.appendItem(m, name, true)
}

func (r *Runtime) MenuAppendQuitItem(m uintptr) uintptr {
	return r.appendItem(m, "Quit", false)
}

func (r *Runtime) MenuAppendPreferencesItem(m uintptr) uintptr {
	return r.appendItem(m, "Preferences", false)
}

func (r *Runtime) MenuAppendAboutItem(m uintptr) uintptr {
	return r.appendItem(m, "About", false)
}

func (r *Runtime) MenuAppendSeparator(m uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(m)
}

// MenuItems returns the names of the items appended to menu m, in order.
func (r *Runtime) MenuItems(m uintptr) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for _, c := range r.live(m).children {
		names = append(names, r.objects[c].text)
	}
	return names
}

func (r *Runtime) MenuItemEnable(i uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(i).enabled = true
}

func (r *Runtime) MenuItemDisable(i uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(i).enabled = false
}

func (r *Runtime) MenuItemChecked(i uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live(i).checked
}

func (r *Runtime) MenuItemSetChecked(i uintptr, checked bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := r.live(i)
	if o.checkable {
		o.checked = checked
	}
}

func (r *Runtime) MenuItemOnClicked(i uintptr, t *foreign.Trampoline, data uintptr) {
	r.register(i, SlotClicked, t, data)
}

// MenuItemEnabled reports whether menu item i is enabled.
func (r *Runtime) MenuItemEnabled(i uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live(i).enabled
}

func (r *Runtime) lookupEvent(ptr uintptr, slot string) (registration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live(ptr)
	reg, ok := r.events[eventKey{ptr, slot}]
	return reg, ok
}

// Fire raises a void (*)(T*, void*) event on ptr. It reports whether a
// handler was registered.
func (r *Runtime) Fire(ptr uintptr, slot string) bool {
	reg, ok := r.lookupEvent(ptr, slot)
	if !ok {
		return false
	}
	reg.t.CallSelf(ptr, reg.data)
	return true
}

// FireClosing raises the closing event of window w. Like libui, a non-zero
// handler result destroys the window. It reports whether the window was
// destroyed.
func (r *Runtime) FireClosing(w uintptr) bool {
	reg, ok := r.lookupEvent(w, SlotClosing)
	if !ok {
		return false
	}
	if reg.t.CallSelf(w, reg.data) == 0 {
		return false
	}
	r.ControlDestroy(w)
	return true
}

// FireMenuItem raises the clicked event of menu item i as if it were chosen
// from window w. Checkable items toggle before the handler runs.
func (r *Runtime) FireMenuItem(i, w uintptr) bool {
	reg, ok := r.lookupEvent(i, SlotClicked)
	if !ok {
		return false
	}
	r.mu.Lock()
	if o := r.objects[i]; o.checkable {
		o.checked = !o.checked
	}
	r.mu.Unlock()
	reg.t.CallSelfArg(i, w, reg.data)
	return true
}

func removePtr(s []uintptr, p uintptr) []uintptr {
	for i, v := range s {
		if v == p {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

var _ foreign.Runtime = (*Runtime)(nil)
