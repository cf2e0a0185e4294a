//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/obinnaokechukwu/uigo/internal/fakeui"
)

func TestMenusFinalizedByFirstWindow(t *testing.T) {
	u, rt := newTestUI(t)

	if u.MenusFinalized() {
		t.Fatal("menus finalized before any window exists")
	}
	m, ok := u.NewMenu("File")
	if !ok {
		t.Fatal("NewMenu failed before any window exists")
	}
	if _, ok := m.AppendItem("Open"); !ok {
		t.Fatal("AppendItem failed before any window exists")
	}
	if !m.AppendSeparator() {
		t.Fatal("AppendSeparator failed before any window exists")
	}
	if _, ok := m.AppendQuitItem(); !ok {
		t.Fatal("AppendQuitItem failed before any window exists")
	}

	u.NewWindow("main", 640, 480, HasMenubar)

	if !u.MenusFinalized() {
		t.Error("menus not finalized after the first window")
	}
	if item, ok := m.AppendItem("Save"); ok || item != (MenuItem{}) {
		t.Errorf("AppendItem after finalization = %v, %v; want zero, false", item, ok)
	}
	if _, ok := m.AppendCheckItem("Autosave"); ok {
		t.Error("AppendCheckItem succeeded after finalization")
	}
	if _, ok := m.AppendAboutItem(); ok {
		t.Error("AppendAboutItem succeeded after finalization")
	}
	if _, ok := m.AppendPreferencesItem(); ok {
		t.Error("AppendPreferencesItem succeeded after finalization")
	}
	if m.AppendSeparator() {
		t.Error("AppendSeparator succeeded after finalization")
	}
	if _, ok := u.NewMenu("Edit"); ok {
		t.Error("NewMenu succeeded after finalization")
	}

	if diff := cmp.Diff([]string{"Open", "Quit"}, rt.MenuItems(m.Raw())); diff != "" {
		t.Errorf("menu contents mismatch (-want +got):\n%s", diff)
	}
}

func TestMenusFinalizedStaysAfterWindowDestroyed(t *testing.T) {
	u, _ := newTestUI(t)
	m, _ := u.NewMenu("File")

	w := u.NewWindow("main", 640, 480, HasMenubar)
	w.Destroy()

	if _, ok := m.AppendItem("Open"); ok {
		t.Error("menus became mutable again after the window was destroyed")
	}
}

func TestMenusResetOnReinit(t *testing.T) {
	u, _ := newTestUI(t)
	u.NewWindow("main", 640, 480, HasMenubar)
	u.Close()

	u2, _ := newTestUI(t)
	if u2.MenusFinalized() {
		t.Error("new UI starts with finalized menus")
	}
}

func TestMenuItemState(t *testing.T) {
	u, rt := newTestUI(t)
	m, _ := u.NewMenu("View")
	plain, _ := m.AppendItem("Refresh")
	check, _ := m.AppendCheckItem("Wrap")

	plain.Disable()
	if rt.MenuItemEnabled(plain.Raw()) {
		t.Error("item enabled after Disable")
	}
	plain.Enable()
	if !rt.MenuItemEnabled(plain.Raw()) {
		t.Error("item disabled after Enable")
	}

	check.SetChecked(true)
	if !check.Checked() {
		t.Error("check item not checked")
	}
	plain.SetChecked(true)
	if plain.Checked() {
		t.Error("plain item became checked")
	}
}

func TestCloseDestroysRemainingWindowsOnce(t *testing.T) {
	u, rt := newTestUI(t)

	w1 := u.NewWindow("one", 100, 100, NoMenubar)
	w2 := u.NewWindow("two", 100, 100, NoMenubar)

	if diff := cmp.Diff([]Window{w1, w2}, u.Windows(), cmp.Comparer(func(a, b Window) bool { return a == b })); diff != "" {
		t.Errorf("registry mismatch (-want +got):\n%s", diff)
	}

	w1.Destroy()
	if got := u.Windows(); len(got) != 1 || got[0] != w2 {
		t.Fatalf("registry after Destroy = %v, want [%v]", got, w2)
	}

	u.Close()

	if n := rt.Destroyed(w1.Raw()); n != 1 {
		t.Errorf("window one destroyed %d times, want 1", n)
	}
	if n := rt.Destroyed(w2.Raw()); n != 1 {
		t.Errorf("window two destroyed %d times, want 1", n)
	}
	if n := rt.Live(fakeui.KindWindow); n != 0 {
		t.Errorf("%d windows outlived Close", n)
	}
	if len(u.Windows()) != 0 {
		t.Error("registry not drained")
	}
}

func TestCloseDestroysWindowContent(t *testing.T) {
	u, rt := newTestUI(t)

	w := u.NewWindow("main", 100, 100, NoMenubar)
	box := u.NewVerticalBox()
	b := u.NewButton("ok")
	box.Append(b, false)
	w.SetChild(box)

	u.Close()

	if !rt.IsDestroyed(box.Raw()) || !rt.IsDestroyed(b.Raw()) {
		t.Error("window content not destroyed with the window")
	}
}
