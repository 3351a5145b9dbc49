package widget

import (
	"testing"

	"goatrinik/input"
)

func TestScrollAdjustClamps(t *testing.T) {
	s := NewScrollbar(96, 3)
	s.NumLines = 5
	if !s.ScrollAdjust(10) || s.Offset != 2 {
		t.Fatalf("expected offset clamped to 2, got %d", s.Offset)
	}
	if !s.ScrollAdjust(-10) || s.Offset != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", s.Offset)
	}
	if s.ScrollAdjust(-1) {
		t.Fatalf("offset at 0 should not change")
	}
	s.NumLines = 2
	s.Offset = 4
	s.ScrollAdjust(0)
	if s.Offset != 0 {
		t.Fatalf("short list should reset offset, got %d", s.Offset)
	}
}

func TestScrollbarArrows(t *testing.T) {
	s := NewScrollbar(100, 2)
	s.X, s.Y = 50, 10
	s.NumLines = 10

	down := input.ButtonEvent(input.MouseButtonDown, input.ButtonLeft, 200+52, 300+10+100-2)
	if !s.HandleEvent(down, 200, 300) {
		t.Fatalf("down arrow not consumed")
	}
	if s.Offset != 1 || !s.Redraw {
		t.Fatalf("expected offset 1 with redraw, got %d %v", s.Offset, s.Redraw)
	}
	s.Redraw = false

	up := input.ButtonEvent(input.MouseButtonDown, input.ButtonLeft, 200+52, 300+12)
	s.HandleEvent(up, 200, 300)
	if s.Offset != 0 || !s.Redraw {
		t.Fatalf("expected offset 0 with redraw, got %d", s.Offset)
	}

	outside := input.ButtonEvent(input.MouseButtonDown, input.ButtonLeft, 10, 10)
	if s.HandleEvent(outside, 200, 300) {
		t.Fatalf("click outside consumed")
	}
}

func TestScrollbarTrackPages(t *testing.T) {
	s := NewScrollbar(100, 2)
	s.NumLines = 10
	ev := input.ButtonEvent(input.MouseButtonDown, input.ButtonLeft, 4, 80)
	s.HandleEvent(ev, 0, 0)
	if s.Offset != 2 {
		t.Fatalf("expected a page down, got %d", s.Offset)
	}
}

func TestMenuActivate(t *testing.T) {
	m := NewMenu(10, 10)
	var got string
	m.Add("Drop", ItemNormal, false, func(it *MenuItem, _ input.Event) { got = it.Label })
	m.Add("Get", ItemNormal, false, func(it *MenuItem, _ input.Event) { got = it.Label })

	consumed, closed := m.HandleEvent(input.ButtonEvent(input.MouseButtonDown, input.ButtonLeft, 15, 10+MenuItemHeight+2))
	if !consumed || !closed || got != "Get" {
		t.Fatalf("consumed=%v closed=%v got=%q", consumed, closed, got)
	}

	consumed, closed = m.HandleEvent(input.ButtonEvent(input.MouseButtonDown, input.ButtonLeft, 500, 500))
	if consumed || !closed {
		t.Fatalf("outside click: consumed=%v closed=%v", consumed, closed)
	}
}

func TestSubmenuOpensOnHover(t *testing.T) {
	m := NewMenu(0, 0)
	built := 0
	m.AddSubmenu("More  >", func(sub *Menu) {
		built++
		sub.Add("Mark", ItemNormal, false, nil)
	})
	m.HandleEvent(input.MotionEvent(5, 5))
	m.HandleEvent(input.MotionEvent(6, 6))
	if m.Sub == nil || built != 1 {
		t.Fatalf("submenu built %d times", built)
	}
	if m.Sub.X != m.Width() {
		t.Fatalf("submenu should open to the right, x=%d", m.Sub.X)
	}
	if labels := m.Sub.Labels(); len(labels) != 1 || labels[0] != "Mark" {
		t.Fatalf("unexpected submenu %v", labels)
	}
}

func TestMenuFinalize(t *testing.T) {
	m := NewMenu(780, 590)
	m.Add("Examine", ItemNormal, false, nil)
	m.Finalize(800, 600)
	r := m.Rect()
	if r.Max.X > 800 || r.Max.Y > 600 {
		t.Fatalf("menu off screen: %v", r)
	}
}

func TestMenuWidthCountsCheckboxMark(t *testing.T) {
	m := NewMenu(0, 0)
	m.Add("Unidentified", ItemNormal, false, nil)
	if w := m.Width(); w != 100 {
		t.Fatalf("plain width = %d, want 100", w)
	}

	it := m.Add("Unidentified", ItemCheckbox, false, nil)
	if it.Text() != "[ ] Unidentified" {
		t.Fatalf("text = %q", it.Text())
	}
	// 16 runes at 7px plus padding
	if w := m.Width(); w != 128 {
		t.Fatalf("checkbox width = %d, want 128", w)
	}
	it.Checked = true
	if it.Text() != "[x] Unidentified" || m.Width() != 128 {
		t.Fatalf("checked text = %q width %d", it.Text(), m.Width())
	}
}
