// Package widget holds the small pieces of the widget toolkit the inventory
// builds on: a vertical scrollbar and popup menus. They keep geometry and
// state only; drawing is left to the caller.
package widget

import (
	"image"

	"goatrinik/input"
)

// ScrollbarWidth is the width of a vertical scrollbar in pixels.
const ScrollbarWidth = 9

// Scrollbar is a vertical scrollbar over a list of lines, of which MaxLines
// fit on screen at once. X and Y are relative to the owning widget.
type Scrollbar struct {
	Offset   int
	NumLines int
	MaxLines int

	X, Y int
	W, H int

	// Redraw is set whenever the offset changes through HandleEvent so the
	// owner can resync anything derived from it.
	Redraw bool
}

// NewScrollbar returns a scrollbar h pixels tall showing maxLines lines.
func NewScrollbar(h, maxLines int) Scrollbar {
	return Scrollbar{W: ScrollbarWidth, H: h, MaxLines: maxLines}
}

func (s *Scrollbar) maxOffset() int {
	if m := s.NumLines - s.MaxLines; m > 0 {
		return m
	}
	return 0
}

// ScrollAdjust moves the offset by delta lines and clamps it to the valid
// range. It reports whether the offset changed.
func (s *Scrollbar) ScrollAdjust(delta int) bool {
	old := s.Offset
	s.Offset += delta
	if m := s.maxOffset(); s.Offset > m {
		s.Offset = m
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
	return s.Offset != old
}

// Rect returns the scrollbar bounds relative to its owner.
func (s *Scrollbar) Rect() image.Rectangle {
	return image.Rect(s.X, s.Y, s.X+s.W, s.Y+s.H)
}

func (s *Scrollbar) track() image.Rectangle {
	r := s.Rect()
	r.Min.Y += s.W
	r.Max.Y -= s.W
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// SliderRect returns the bounds of the slider inside the track.
func (s *Scrollbar) SliderRect() image.Rectangle {
	t := s.track()
	th := t.Dy()
	if s.NumLines <= s.MaxLines || s.NumLines == 0 {
		return t
	}
	h := th * s.MaxLines / s.NumLines
	if h < 4 {
		h = 4
	}
	y := t.Min.Y + (th-h)*s.Offset/s.maxOffset()
	return image.Rect(t.Min.X, y, t.Max.X, y+h)
}

// HandleEvent handles a left press on the arrows or the track. ox and oy are
// the owner's screen origin. It reports whether the event was consumed.
func (s *Scrollbar) HandleEvent(ev input.Event, ox, oy int) bool {
	if ev.Kind != input.MouseButtonDown || ev.Button != input.ButtonLeft {
		return false
	}
	p := image.Pt(ev.X-ox, ev.Y-oy)
	r := s.Rect()
	if !p.In(r) {
		return false
	}
	var delta int
	switch {
	case p.Y < r.Min.Y+s.W:
		delta = -1
	case p.Y >= r.Max.Y-s.W:
		delta = 1
	default:
		slider := s.SliderRect()
		if p.Y < slider.Min.Y {
			delta = -s.MaxLines
		} else if p.Y >= slider.Max.Y {
			delta = s.MaxLines
		}
	}
	if delta != 0 && s.ScrollAdjust(delta) {
		s.Redraw = true
	}
	return true
}
