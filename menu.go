//go:build !ios && !android && (amd64 || arm64)

package uigo

import "fmt"

// Menu is one of the menus in the application menu bar.
//
// libui builds the menu bar when the first window is created. From then on
// menus are finalized: NewMenu and the Append methods report false and leave
// the menu bar untouched.
type Menu struct {
	raw uintptr
}

// MenuItem is an entry in a Menu. Its text cannot change after creation.
type MenuItem struct {
	raw uintptr
}

// NewMenu creates a menu named name. It reports false once menus are
// finalized.
func (u *UI) NewMenu(name string) (Menu, bool) {
	u.checkThread("NewMenu")
	if u.MenusFinalized() {
		return Menu{}, false
	}
	return Menu{raw: u.rt.NewMenu(name)}, true
}

// Raw returns the libui pointer for passing to C.
func (m Menu) Raw() uintptr {
	return m.raw
}

func (m Menu) String() string {
	return fmt.Sprintf("uigo.Menu(%#x)", m.raw)
}

// appendItem runs add unless menus are finalized.
func (m Menu) appendItem(op string, add func(u *UI) uintptr) (MenuItem, bool) {
	u := current(op)
	if u.MenusFinalized() {
		return MenuItem{}, false
	}
	return MenuItem{raw: add(u)}, true
}

// AppendItem adds an item labelled name.
func (m Menu) AppendItem(name string) (MenuItem, bool) {
	return m.appendItem("AppendItem", func(u *UI) uintptr {
		return u.rt.MenuAppendItem(m.raw, name)
	})
}

// AppendCheckItem adds an item labelled name that toggles a check mark when
// chosen.
func (m Menu) AppendCheckItem(name string) (MenuItem, bool) {
	return m.appendItem("AppendCheckItem", func(u *UI) uintptr {
		return u.rt.MenuAppendCheckItem(m.raw, name)
	})
}

// AppendQuitItem adds the platform's Quit item. Choosing it triggers the
// OnShouldQuit function.
func (m Menu) AppendQuitItem() (MenuItem, bool) {
	return m.appendItem("AppendQuitItem", func(u *UI) uintptr {
		return u.rt.MenuAppendQuitItem(m.raw)
	})
}

// AppendPreferencesItem adds the platform's Preferences item.
func (m Menu) AppendPreferencesItem() (MenuItem, bool) {
	return m.appendItem("AppendPreferencesItem", func(u *UI) uintptr {
		return u.rt.MenuAppendPreferencesItem(m.raw)
	})
}

// AppendAboutItem adds the platform's About item.
func (m Menu) AppendAboutItem() (MenuItem, bool) {
	return m.appendItem("AppendAboutItem", func(u *UI) uintptr {
		return u.rt.MenuAppendAboutItem(m.raw)
	})
}

// AppendSeparator adds a separator line. It reports false once menus are
// finalized.
func (m Menu) AppendSeparator() bool {
	u := current("AppendSeparator")
	if u.MenusFinalized() {
		return false
	}
	u.rt.MenuAppendSeparator(m.raw)
	return true
}

// Raw returns the libui pointer for passing to C.
func (i MenuItem) Raw() uintptr {
	return i.raw
}

func (i MenuItem) String() string {
	return fmt.Sprintf("uigo.MenuItem(%#x)", i.raw)
}

func wrapMenuItem(raw uintptr) MenuItem {
	return MenuItem{raw: raw}
}

// Enable makes the item selectable. Items start enabled.
func (i MenuItem) Enable() {
	current("Enable").rt.MenuItemEnable(i.raw)
}

// Disable greys the item out.
func (i MenuItem) Disable() {
	current("Disable").rt.MenuItemDisable(i.raw)
}

// Checked reports whether a check item is checked. It is false for plain
// items.
func (i MenuItem) Checked() bool {
	return current("Checked").rt.MenuItemChecked(i.raw)
}

// SetChecked checks or unchecks a check item. It has no effect on plain
// items.
func (i MenuItem) SetChecked(checked bool) {
	current("SetChecked").rt.MenuItemSetChecked(i.raw, checked)
}

// OnClicked sets the function called when the item is chosen. The window is
// the one whose menu bar was used; it is the zero Window on platforms with a
// single application-wide menu bar when no window is focused.
func (i MenuItem) OnClicked(fn func(MenuItem, Window)) {
	u := current("OnClicked")
	onEvent2(i.raw, slotClicked, wrapMenuItem, wrapWindow, fn, u.rt.MenuItemOnClicked)
}
