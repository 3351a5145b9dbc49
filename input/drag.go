package input

// dragThreshold is how far the pointer must travel from the press point,
// on either axis, before a held press counts as a drag.
const dragThreshold = 3

// Drag tracks the item currently being dragged with the mouse. A drag starts
// when a widget calls Start on a button press, but only becomes active once the
// pointer has moved past the threshold, so plain clicks are never drags.
type Drag struct {
	tag            uint32
	startX, startY int
	oldX, oldY     int
	callback       func()
	mouse          func() (int, int)
}

// NewDrag returns a drag tracker reading the pointer through mouse.
func NewDrag(mouse func() (int, int)) *Drag {
	return &Drag{oldX: -1, oldY: -1, mouse: mouse}
}

// Tag returns the tag of the dragged item, or 0.
func (d *Drag) Tag() uint32 { return d.tag }

// Start begins tracking a drag of tag from x, y. Any callback from a previous
// drag is cleared.
func (d *Drag) Start(tag uint32, x, y int) {
	d.oldX, d.oldY = -1, -1
	d.tag = tag
	d.startX, d.startY = x, y
	d.callback = nil
}

// SetCallback sets the function run when an active drag is released outside
// of any widget that consumed the release.
func (d *Drag) SetCallback(fn func()) { d.callback = fn }

// Stop ends the drag without running the callback.
func (d *Drag) Stop() { d.tag = 0 }

// Check reports whether a drag is active: a tag is set and the pointer has
// left the threshold box around the start point.
func (d *Drag) Check() bool {
	if d.tag == 0 {
		return false
	}
	x, y := d.mouse()
	return abs(d.startX-x) >= dragThreshold || abs(d.startY-y) >= dragThreshold
}

// NeedRedraw reports whether the dragged icon moved since the last call.
func (d *Drag) NeedRedraw() bool {
	if !d.Check() {
		return false
	}
	x, y := d.mouse()
	if x != d.oldX || y != d.oldY {
		d.oldX, d.oldY = x, y
		return true
	}
	return false
}

// release stops the drag, running the callback first if the drag was active.
func (d *Drag) release() {
	if d.Check() && d.callback != nil {
		d.callback()
	}
	d.Stop()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
