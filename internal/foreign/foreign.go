//go:build !ios && !android && (amd64 || arm64)

// Package foreign describes the C-shaped surface of libui that uigo consumes.
//
// Every UI object is an opaque pointer carried as a uintptr. Event
// registration takes a Trampoline plus an opaque data value, exactly like the
// C "uiXOnY(self, fn, data)" calls. The production implementation lives in
// internal/bindings; internal/fakeui provides an in-memory runtime for tests.
package foreign

// Runtime is the method-call surface of the foreign UI library.
//
// Apart from QueueMain, every method must be called on the UI thread.
type Runtime interface {
	// Init starts the toolkit. A non-nil error carries the toolkit's own
	// message verbatim.
	Init() error
	Uninit()

	MainSteps()
	MainStep(wait bool) bool
	Main()
	Quit()
	QueueMain(t *Trampoline, data uintptr)
	OnShouldQuit(t *Trampoline, data uintptr)

	ControlDestroy(c uintptr)
	ControlParent(c uintptr) uintptr
	ControlSetParent(c, parent uintptr)
	ControlShow(c uintptr)
	ControlHide(c uintptr)
	ControlEnable(c uintptr)
	ControlDisable(c uintptr)
	ControlVisible(c uintptr) bool
	ControlEnabled(c uintptr) bool

	NewWindow(title string, width, height int32, hasMenubar bool) uintptr
	WindowTitle(w uintptr) string
	WindowSetTitle(w uintptr, title string)
	WindowSetChild(w, child uintptr)
	WindowMargined(w uintptr) bool
	WindowSetMargined(w uintptr, margined bool)
	WindowOnClosing(w uintptr, t *Trampoline, data uintptr)
	WindowOnContentSizeChanged(w uintptr, t *Trampoline, data uintptr)

	NewButton(text string) uintptr
	ButtonText(b uintptr) string
	ButtonSetText(b uintptr, text string)
	ButtonOnClicked(b uintptr, t *Trampoline, data uintptr)

	NewVerticalBox() uintptr
	NewHorizontalBox() uintptr
	BoxAppend(b, child uintptr, stretchy bool)
	BoxNumChildren(b uintptr) int32
	BoxDelete(b uintptr, index int32)
	BoxPadded(b uintptr) bool
	BoxSetPadded(b uintptr, padded bool)

	NewMenu(name string) uintptr
	MenuAppendItem(m uintptr, name string) uintptr
	MenuAppendCheckItem(m uintptr, name string) uintptr
	MenuAppendQuitItem(m uintptr) uintptr
	MenuAppendPreferencesItem(m uintptr) uintptr
	MenuAppendAboutItem(m uintptr) uintptr
	MenuAppendSeparator(m uintptr)
	MenuItemEnable(i uintptr)
	MenuItemDisable(i uintptr)
	MenuItemChecked(i uintptr) bool
	MenuItemSetChecked(i uintptr, checked bool)
	MenuItemOnClicked(i uintptr, t *Trampoline, data uintptr)
}
