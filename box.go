//go:build !ios && !android && (amd64 || arm64)

package uigo

// Box lays its children out in a single row or column.
type Box struct {
	Handle
}

// NewVerticalBox creates a box stacking children top to bottom.
func (u *UI) NewVerticalBox() Box {
	u.checkThread("NewVerticalBox")
	return Box{Handle{raw: u.rt.NewVerticalBox()}}
}

// NewHorizontalBox creates a box placing children left to right.
func (u *UI) NewHorizontalBox() Box {
	u.checkThread("NewHorizontalBox")
	return Box{Handle{raw: u.rt.NewHorizontalBox()}}
}

// Append adds child at the end of the box. Stretchy children share the
// space left over by the others.
func (b Box) Append(child Control, stretchy bool) {
	current("Append").rt.BoxAppend(b.raw, child.Raw(), stretchy)
}

// NumChildren returns the number of children.
func (b Box) NumChildren() int {
	return int(current("NumChildren").rt.BoxNumChildren(b.raw))
}

// Delete removes the child at index without destroying it.
func (b Box) Delete(index int) {
	current("Delete").rt.BoxDelete(b.raw, int32(index))
}

// Padded reports whether children are spaced apart.
func (b Box) Padded() bool {
	return current("Padded").rt.BoxPadded(b.raw)
}

// SetPadded sets whether children are spaced apart.
func (b Box) SetPadded(padded bool) {
	current("SetPadded").rt.BoxSetPadded(b.raw, padded)
}
