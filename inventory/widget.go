package inventory

import (
	"image"
	"time"

	"goatrinik/input"
	"goatrinik/widget"
)

// IconSize is the size of one inventory slot in pixels.
const IconSize = 32

// Display selects what an inventory widget shows.
type Display int

const (
	DisplayNone Display = iota
	DisplayMain
	DisplayBelow
)

// Widget is one inventory grid: either the player's own inventory or the
// floor below the player. X, Y, W and H place the whole widget on screen;
// the item grid sits inside it at an offset that depends on Display.
type Widget struct {
	ID      string
	Display Display

	X, Y, W, H int
	Hidden     bool
	Redraw     bool

	// grid origin and size relative to the widget
	gx, gy, gw, gh int

	selected    int
	scroll      widget.Scrollbar
	lastClicked time.Time

	m *Manager
}

func newWidget(m *Manager, id string) *Widget {
	w := &Widget{ID: id, m: m, Redraw: true}
	switch id {
	case IDMain:
		w.Display = DisplayMain
		w.gx, w.gy = 3, 44
	case IDBelow:
		w.Display = DisplayBelow
		w.gx, w.gy = 5, 19
	}
	return w
}

// Rect returns the widget bounds in screen coordinates.
func (w *Widget) Rect() image.Rectangle {
	return image.Rect(w.X, w.Y, w.X+w.W, w.Y+w.H)
}

// GridRect returns the item grid bounds in screen coordinates.
func (w *Widget) GridRect() image.Rectangle {
	w.layout()
	return image.Rect(w.X+w.gx, w.Y+w.gy, w.X+w.gx+w.gw, w.Y+w.gy+w.gh)
}

// Focused reports whether the widget has keyboard focus.
func (w *Widget) Focused() bool { return w.m.Player.Focus == w }

func (w *Widget) cols() int { return w.gw / IconSize }
func (w *Widget) rows() int { return w.gh / IconSize }

// layout sizes the grid from the widget size and rebuilds the scrollbar
// when the grid size changed.
func (w *Widget) layout() {
	gw := max(w.W-w.gx*2-widget.ScrollbarWidth, IconSize)
	gh := max(w.H-w.gy-w.gx, IconSize)
	if gw == w.gw && gh == w.gh {
		return
	}
	w.gw, w.gh = gw, gh
	offset, lines := w.scroll.Offset, w.scroll.NumLines
	w.scroll = widget.NewScrollbar(w.gh, w.rows())
	w.scroll.Offset, w.scroll.NumLines = offset, lines
	w.scroll.X, w.scroll.Y = w.gx+w.gw, w.gy
}

// where returns the object whose contents the widget lists.
func (w *Widget) where() *Object {
	if w.Display == DisplayBelow {
		return w.m.Player.Below
	}
	return w.m.Player.Ob
}

// each calls fn with the display index of every visible object, stopping
// early when fn returns false. The open container's contents follow the
// container itself.
func (w *Widget) each(fn func(i int, ob *Object) bool) {
	env := w.where()
	if env == nil {
		return
	}
	p, f := w.m.Player, w.m.Filter
	i := 0
	for _, ob := range env.Inv {
		if !matches(p, ob, f) {
			continue
		}
		if !fn(i, ob) {
			return
		}
		i++
		if ob != p.Sack {
			continue
		}
		for _, in := range ob.Inv {
			if !matches(p, in, f) {
				continue
			}
			if !fn(i, in) {
				return
			}
			i++
		}
	}
}

// NumItems returns how many objects the widget shows.
func (w *Widget) NumItems() int {
	n := 0
	w.each(func(int, *Object) bool {
		n++
		return true
	})
	return n
}

// SelectedIndex returns the display index of the selection.
func (w *Widget) SelectedIndex() int { return w.selected }

// Selected returns the selected object, or nil when the widget is empty.
func (w *Widget) Selected() *Object {
	var found *Object
	w.each(func(i int, ob *Object) bool {
		if i == w.selected {
			found = ob
			return false
		}
		return true
	})
	return found
}

// ScrollOffset returns the first visible row.
func (w *Widget) ScrollOffset() int { return w.scroll.Offset }

// Scrollbar returns a copy of the scrollbar state.
func (w *Widget) Scrollbar() widget.Scrollbar { return w.scroll }

// HandleArrowKey moves the selection one row or column in the direction of
// key, clamps it to the list and scrolls it into view. Any other key only
// revalidates the selection, which is how changes to the list are absorbed.
func (w *Widget) HandleArrowKey(key input.Key) {
	w.layout()
	cols := w.cols()
	if cols == 0 {
		return
	}

	selected := w.selected
	switch key {
	case input.KeyArrowUp:
		selected -= cols
	case input.KeyArrowDown:
		selected += cols
	case input.KeyArrowLeft:
		selected--
	case input.KeyArrowRight:
		selected++
	}

	num := w.NumItems()
	if selected > num-1 {
		selected = num - 1
	}
	if selected < 0 {
		selected = 0
	}
	if selected != w.selected {
		w.selected = selected
		w.Redraw = true
	}

	row := selected / cols
	if w.scroll.Offset > row {
		w.scroll.Offset = row
	} else if row >= w.scroll.MaxLines+w.scroll.Offset {
		w.scroll.Offset = row - w.scroll.MaxLines + 1
	}
	w.scroll.NumLines = (num + cols - 1) / cols
	w.scroll.ScrollAdjust(0)
	w.scroll.Redraw = false
}

// SetSize resizes the widget.
func (w *Widget) SetSize(width, height int) {
	if width != w.W || height != w.H {
		w.W, w.H = width, height
		w.Redraw = true
	}
}

// cellRect returns the slot for display index i, relative to the widget,
// and whether that slot is within the visible rows.
func (w *Widget) cellRect(i int) (image.Rectangle, bool) {
	cols := w.cols()
	if cols == 0 {
		return image.Rectangle{}, false
	}
	row := i / cols
	if row < w.scroll.Offset || row >= w.scroll.Offset+w.rows() {
		return image.Rectangle{}, false
	}
	r := i - w.scroll.Offset*cols
	x := w.gx + (r%cols)*IconSize
	y := w.gy + (r/cols)*IconSize
	return image.Rect(x, y, x+IconSize, y+IconSize), true
}

// ObjectAt returns the object under screen position x, y and its index.
func (w *Widget) ObjectAt(x, y int) (*Object, int) {
	w.layout()
	pt := image.Pt(x-w.X, y-w.Y)
	var found *Object
	idx := -1
	w.each(func(i int, ob *Object) bool {
		r, ok := w.cellRect(i)
		if ok && pt.In(r) {
			found, idx = ob, i
			return false
		}
		return true
	})
	return found, idx
}
