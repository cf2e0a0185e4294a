//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"errors"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/uigo/internal/foreign"
)

// uiInitOptions mirrors the C struct; libui checks Size against its own.
type uiInitOptions struct {
	Size uintptr
}

// Function bindings. C ints stand in for booleans, as in libui's headers.
var (
	uiInit          func(options unsafe.Pointer) unsafe.Pointer
	uiUninit        func()
	uiFreeInitError func(err unsafe.Pointer)
	uiFreeText      func(text unsafe.Pointer)

	uiMainSteps    func()
	uiMainStep     func(wait int32) int32
	uiMain         func()
	uiQuit         func()
	uiQueueMain    func(fn, data uintptr)
	uiOnShouldQuit func(fn, data uintptr)

	uiControlDestroy   func(c uintptr)
	uiControlParent    func(c uintptr) uintptr
	uiControlSetParent func(c, parent uintptr)
	uiControlShow      func(c uintptr)
	uiControlHide      func(c uintptr)
	uiControlEnable    func(c uintptr)
	uiControlDisable   func(c uintptr)
	uiControlVisible   func(c uintptr) int32
	uiControlEnabled   func(c uintptr) int32

	uiNewWindow                  func(title string, width, height, hasMenubar int32) uintptr
	uiWindowTitle                func(w uintptr) unsafe.Pointer
	uiWindowSetTitle             func(w uintptr, title string)
	uiWindowSetChild             func(w, child uintptr)
	uiWindowMargined             func(w uintptr) int32
	uiWindowSetMargined          func(w uintptr, margined int32)
	uiWindowOnClosing            func(w, fn, data uintptr)
	uiWindowOnContentSizeChanged func(w, fn, data uintptr)

	uiNewButton       func(text string) uintptr
	uiButtonText      func(b uintptr) unsafe.Pointer
	uiButtonSetText   func(b uintptr, text string)
	uiButtonOnClicked func(b, fn, data uintptr)

	uiNewVerticalBox   func() uintptr
	uiNewHorizontalBox func() uintptr
	uiBoxAppend        func(b, child uintptr, stretchy int32)
	uiBoxNumChildren   func(b uintptr) int32
	uiBoxDelete        func(b uintptr, index int32)
	uiBoxPadded        func(b uintptr) int32
	uiBoxSetPadded     func(b uintptr, padded int32)

	uiNewMenu                   func(name string) uintptr
	uiMenuAppendItem            func(m uintptr, name string) uintptr
	uiMenuAppendCheckItem       func(m uintptr, name string) uintptr
	uiMenuAppendQuitItem        func(m uintptr) uintptr
	uiMenuAppendPreferencesItem func(m uintptr) uintptr
	uiMenuAppendAboutItem       func(m uintptr) uintptr
	uiMenuAppendSeparator       func(m uintptr)
	uiMenuItemEnable            func(i uintptr)
	uiMenuItemDisable           func(i uintptr)
	uiMenuItemChecked           func(i uintptr) int32
	uiMenuItemSetChecked        func(i uintptr, checked int32)
	uiMenuItemOnClicked         func(i, fn, data uintptr)
)

func registerFuncs(lib uintptr) {
	purego.RegisterLibFunc(&uiInit, lib, "uiInit")
	purego.RegisterLibFunc(&uiUninit, lib, "uiUninit")
	purego.RegisterLibFunc(&uiFreeInitError, lib, "uiFreeInitError")
	purego.RegisterLibFunc(&uiFreeText, lib, "uiFreeText")

	purego.RegisterLibFunc(&uiMainSteps, lib, "uiMainSteps")
	purego.RegisterLibFunc(&uiMainStep, lib, "uiMainStep")
	purego.RegisterLibFunc(&uiMain, lib, "uiMain")
	purego.RegisterLibFunc(&uiQuit, lib, "uiQuit")
	purego.RegisterLibFunc(&uiQueueMain, lib, "uiQueueMain")
	purego.RegisterLibFunc(&uiOnShouldQuit, lib, "uiOnShouldQuit")

	purego.RegisterLibFunc(&uiControlDestroy, lib, "uiControlDestroy")
	purego.RegisterLibFunc(&uiControlParent, lib, "uiControlParent")
	purego.RegisterLibFunc(&uiControlSetParent, lib, "uiControlSetParent")
	purego.RegisterLibFunc(&uiControlShow, lib, "uiControlShow")
	purego.RegisterLibFunc(&uiControlHide, lib, "uiControlHide")
	purego.RegisterLibFunc(&uiControlEnable, lib, "uiControlEnable")
	purego.RegisterLibFunc(&uiControlDisable, lib, "uiControlDisable")
	purego.RegisterLibFunc(&uiControlVisible, lib, "uiControlVisible")
	purego.RegisterLibFunc(&uiControlEnabled, lib, "uiControlEnabled")

	purego.RegisterLibFunc(&uiNewWindow, lib, "uiNewWindow")
	purego.RegisterLibFunc(&uiWindowTitle, lib, "uiWindowTitle")
	purego.RegisterLibFunc(&uiWindowSetTitle, lib, "uiWindowSetTitle")
	purego.RegisterLibFunc(&uiWindowSetChild, lib, "uiWindowSetChild")
	purego.RegisterLibFunc(&uiWindowMargined, lib, "uiWindowMargined")
	purego.RegisterLibFunc(&uiWindowSetMargined, lib, "uiWindowSetMargined")
	purego.RegisterLibFunc(&uiWindowOnClosing, lib, "uiWindowOnClosing")
	purego.RegisterLibFunc(&uiWindowOnContentSizeChanged, lib, "uiWindowOnContentSizeChanged")

	purego.RegisterLibFunc(&uiNewButton, lib, "uiNewButton")
	purego.RegisterLibFunc(&uiButtonText, lib, "uiButtonText")
	purego.RegisterLibFunc(&uiButtonSetText, lib, "uiButtonSetText")
	purego.RegisterLibFunc(&uiButtonOnClicked, lib, "uiButtonOnClicked")

	purego.RegisterLibFunc(&uiNewVerticalBox, lib, "uiNewVerticalBox")
	purego.RegisterLibFunc(&uiNewHorizontalBox, lib, "uiNewHorizontalBox")
	purego.RegisterLibFunc(&uiBoxAppend, lib, "uiBoxAppend")
	purego.RegisterLibFunc(&uiBoxNumChildren, lib, "uiBoxNumChildren")
	purego.RegisterLibFunc(&uiBoxDelete, lib, "uiBoxDelete")
	purego.RegisterLibFunc(&uiBoxPadded, lib, "uiBoxPadded")
	purego.RegisterLibFunc(&uiBoxSetPadded, lib, "uiBoxSetPadded")

	purego.RegisterLibFunc(&uiNewMenu, lib, "uiNewMenu")
	purego.RegisterLibFunc(&uiMenuAppendItem, lib, "uiMenuAppendItem")
	purego.RegisterLibFunc(&uiMenuAppendCheckItem, lib, "uiMenuAppendCheckItem")
	purego.RegisterLibFunc(&uiMenuAppendQuitItem, lib, "uiMenuAppendQuitItem")
	purego.RegisterLibFunc(&uiMenuAppendPreferencesItem, lib, "uiMenuAppendPreferencesItem")
	purego.RegisterLibFunc(&uiMenuAppendAboutItem, lib, "uiMenuAppendAboutItem")
	purego.RegisterLibFunc(&uiMenuAppendSeparator, lib, "uiMenuAppendSeparator")
	purego.RegisterLibFunc(&uiMenuItemEnable, lib, "uiMenuItemEnable")
	purego.RegisterLibFunc(&uiMenuItemDisable, lib, "uiMenuItemDisable")
	purego.RegisterLibFunc(&uiMenuItemChecked, lib, "uiMenuItemChecked")
	purego.RegisterLibFunc(&uiMenuItemSetChecked, lib, "uiMenuItemSetChecked")
	purego.RegisterLibFunc(&uiMenuItemOnClicked, lib, "uiMenuItemOnClicked")
}

// Runtime is the foreign.Runtime backed by the loaded libui library.
// Load must have succeeded before any method is called.
type Runtime struct{}

// New returns the libui runtime, loading the library if needed.
// libPath overrides the search when non-empty.
func New(libPath string) (*Runtime, error) {
	if err := Load(libPath); err != nil {
		return nil, err
	}
	return &Runtime{}, nil
}

func (Runtime) Init() error {
	opts := uiInitOptions{Size: unsafe.Sizeof(uiInitOptions{})}
	msg := uiInit(unsafe.Pointer(&opts))
	if msg == nil {
		return nil
	}
	text := goString(msg)
	uiFreeInitError(msg)
	return errors.New(text)
}

func (Runtime) Uninit()                 { uiUninit() }
func (Runtime) MainSteps()              { uiMainSteps() }
func (Runtime) MainStep(wait bool) bool { return uiMainStep(cBool(wait)) != 0 }
func (Runtime) Main()                   { uiMain() }
func (Runtime) Quit()                   { uiQuit() }

func (Runtime) QueueMain(t *foreign.Trampoline, data uintptr) {
	uiQueueMain(t.Pointer(), data)
}

func (Runtime) OnShouldQuit(t *foreign.Trampoline, data uintptr) {
	uiOnShouldQuit(t.Pointer(), data)
}

func (Runtime) ControlDestroy(c uintptr)           { uiControlDestroy(c) }
func (Runtime) ControlParent(c uintptr) uintptr    { return uiControlParent(c) }
func (Runtime) ControlSetParent(c, parent uintptr) { uiControlSetParent(c, parent) }
func (Runtime) ControlShow(c uintptr)              { uiControlShow(c) }
func (Runtime) ControlHide(c uintptr)              { uiControlHide(c) }
func (Runtime) ControlEnable(c uintptr)            { uiControlEnable(c) }
func (Runtime) ControlDisable(c uintptr)           { uiControlDisable(c) }
func (Runtime) ControlVisible(c uintptr) bool      { return uiControlVisible(c) != 0 }
func (Runtime) ControlEnabled(c uintptr) bool      { return uiControlEnabled(c) != 0 }

func (Runtime) NewWindow(title string, width, height int32, hasMenubar bool) uintptr {
	return uiNewWindow(title, width, height, cBool(hasMenubar))
}

func (Runtime) WindowTitle(w uintptr) string {
	return takeText(uiWindowTitle(w))
}

func (Runtime) WindowSetTitle(w uintptr, title string) { uiWindowSetTitle(w, title) }
func (Runtime) WindowSetChild(w, child uintptr)        { uiWindowSetChild(w, child) }
func (Runtime) WindowMargined(w uintptr) bool          { return uiWindowMargined(w) != 0 }

func (Runtime) WindowSetMargined(w uintptr, margined bool) {
	uiWindowSetMargined(w, cBool(margined))
}

func (Runtime) WindowOnClosing(w uintptr, t *foreign.Trampoline, data uintptr) {
	uiWindowOnClosing(w, t.Pointer(), data)
}

func (Runtime) WindowOnContentSizeChanged(w uintptr, t *foreign.Trampoline, data uintptr) {
	uiWindowOnContentSizeChanged(w, t.Pointer(), data)
}

func (Runtime) NewButton(text string) uintptr { return uiNewButton(text) }

func (Runtime) ButtonText(b uintptr) string {
	return takeText(uiButtonText(b))
}

func (Runtime) ButtonSetText(b uintptr, text string) { uiButtonSetText(b, text) }

func (Runtime) ButtonOnClicked(b uintptr, t *foreign.Trampoline, data uintptr) {
	uiButtonOnClicked(b, t.Pointer(), data)
}

func (Runtime) NewVerticalBox() uintptr   { return uiNewVerticalBox() }
func (Runtime) NewHorizontalBox() uintptr { return uiNewHorizontalBox() }

func (Runtime) BoxAppend(b, child uintptr, stretchy bool) {
	uiBoxAppend(b, child, cBool(stretchy))
}

func (Runtime) BoxNumChildren(b uintptr) int32      { return uiBoxNumChildren(b) }
func (Runtime) BoxDelete(b uintptr, index int32)    { uiBoxDelete(b, index) }
func (Runtime) BoxPadded(b uintptr) bool            { return uiBoxPadded(b) != 0 }
func (Runtime) BoxSetPadded(b uintptr, padded bool) { uiBoxSetPadded(b, cBool(padded)) }

func (Runtime) NewMenu(name string) uintptr { return uiNewMenu(name) }

func (Runtime) MenuAppendItem(m uintptr, name string) uintptr {
	return uiMenuAppendItem(m, name)
}

func (Runtime) MenuAppendCheckItem(m uintptr, name string) uintptr {
	return uiMenuAppendCheckItem(m, name)
}

func (Runtime) MenuAppendQuitItem(m uintptr) uintptr        { return uiMenuAppendQuitItem(m) }
func (Runtime) MenuAppendPreferencesItem(m uintptr) uintptr { return uiMenuAppendPreferencesItem(m) }
func (Runtime) MenuAppendAboutItem(m uintptr) uintptr       { return uiMenuAppendAboutItem(m) }
func (Runtime) MenuAppendSeparator(m uintptr)               { uiMenuAppendSeparator(m) }
func (Runtime) MenuItemEnable(i uintptr)                    { uiMenuItemEnable(i) }
func (Runtime) MenuItemDisable(i uintptr)                   { uiMenuItemDisable(i) }
func (Runtime) MenuItemChecked(i uintptr) bool              { return uiMenuItemChecked(i) != 0 }

func (Runtime) MenuItemSetChecked(i uintptr, checked bool) {
	uiMenuItemSetChecked(i, cBool(checked))
}

func (Runtime) MenuItemOnClicked(i uintptr, t *foreign.Trampoline, data uintptr) {
	uiMenuItemOnClicked(i, t.Pointer(), data)
}

func cBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// takeText copies a libui-allocated string and frees it with uiFreeText.
func takeText(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	s := goString(p)
	uiFreeText(p)
	return s
}

// goString copies a NUL-terminated C string.
func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

var _ foreign.Runtime = Runtime{}
