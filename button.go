//go:build !ios && !android && (amd64 || arm64)

package uigo

// Button is a push button with a text label.
type Button struct {
	Handle
}

// NewButton creates a button labelled text.
func (u *UI) NewButton(text string) Button {
	u.checkThread("NewButton")
	return Button{Handle{raw: u.rt.NewButton(text)}}
}

func wrapButton(raw uintptr) Button {
	return Button{Handle{raw: raw}}
}

// Text returns the button label.
func (b Button) Text() string {
	return current("Text").rt.ButtonText(b.raw)
}

// SetText sets the button label.
func (b Button) SetText(text string) {
	current("SetText").rt.ButtonSetText(b.raw, text)
}

// OnClicked sets the function called when the button is clicked, replacing
// any previous one.
func (b Button) OnClicked(fn func(Button)) {
	u := current("OnClicked")
	onEvent(b.raw, slotClicked, wrapButton, fn, u.rt.ButtonOnClicked)
}
