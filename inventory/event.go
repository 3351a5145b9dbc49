package inventory

import (
	"time"

	"goatrinik/input"
)

// HandleEvent handles a pointer event over the widget and reports whether it
// was consumed.
func (w *Widget) HandleEvent(ev input.Event) bool {
	w.layout()

	if w.scroll.HandleEvent(ev, w.X, w.Y) {
		w.Redraw = true
		if w.scroll.Redraw {
			w.selected = w.scroll.Offset * w.cols()
			w.scroll.Redraw = false
		}
		return true
	}

	if ev.Kind == input.MouseButtonDown {
		switch ev.Button {
		case input.ButtonWheelUp:
			w.HandleArrowKey(input.KeyArrowUp)
			return true
		case input.ButtonWheelDown:
			w.HandleArrowKey(input.KeyArrowDown)
			return true
		}
	}

	if ev.Kind != input.MouseButtonDown && ev.Kind != input.MouseButtonUp {
		return false
	}
	if ev.Button != input.ButtonLeft && ev.Button != input.ButtonRight {
		return false
	}

	if w.m.drag.Check() {
		w.dropHere()
		w.m.drag.Stop()
		return true
	}

	found, i := w.ObjectAt(ev.X, ev.Y)
	if found == nil {
		return false
	}

	if ev.Kind == input.MouseButtonDown {
		if ev.Button == input.ButtonLeft {
			w.m.drag.Start(uint32(found.Tag), ev.X, ev.Y)
			w.m.drag.SetCallback(w.m.dragReleased)
		}
	} else {
		now := w.m.Now()
		if !w.lastClicked.IsZero() && now.Sub(w.lastClicked) < w.m.opts.DoubleClickDelay() {
			w.m.Apply(w)
			w.lastClicked = time.Time{}
		} else {
			w.lastClicked = now
		}
	}

	if w.selected != i {
		w.selected = i
		w.lastClicked = time.Time{}
	}
	w.Redraw = true
	return true
}

// dropHere resolves an active drag released over this widget.
func (w *Widget) dropHere() {
	m := w.m
	p := m.Player
	dragging := p.Find(Tag(m.drag.Tag()))
	if dragging == nil {
		return
	}

	target := p.Ob
	if w.Display == DisplayBelow {
		target = p.Below
	}

	switch {
	case p.Sack != nil && dragging != p.Sack && (dragging.Env == p.Sack || dragging.Env == p.Sack.Env):
		// Moving in or out of the open container.
		if p.Sack.Env == p.Ob && target == p.Below {
			m.Drop(m.Main)
		} else if p.Sack.Env == p.Below {
			m.Get(m.Below)
		} else {
			m.Get(m.Main)
		}
	case dragging.Env == target:
		if target == p.Below {
			m.Get(m.Below)
		}
	case target == p.Below:
		m.Drop(m.Main)
	case target == p.Ob:
		m.Get(m.Below)
	}
}
