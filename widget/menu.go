package widget

import (
	"image"
	"unicode/utf8"

	"goatrinik/input"
)

// Menu geometry in pixels.
const (
	MenuItemHeight = 16
	menuCharWidth  = 7
	menuPadding    = 16
	menuMinWidth   = 100
)

// ItemKind selects how a menu item behaves when activated.
type ItemKind int

const (
	ItemNormal ItemKind = iota
	ItemSubmenu
	ItemCheckbox
)

// MenuItem is one row of a Menu.
type MenuItem struct {
	Label   string
	Kind    ItemKind
	Checked bool

	// Action runs when a normal or checkbox item is activated.
	Action func(item *MenuItem, ev input.Event)
	// Build fills the child menu of a submenu item.
	Build func(sub *Menu)
}

// Menu is a popup menu anchored at X, Y in screen coordinates.
type Menu struct {
	X, Y  int
	Items []*MenuItem

	// Sub is the open child menu, if any, and subItem the row that opened it.
	Sub     *Menu
	subItem int
}

// NewMenu returns an empty menu at x, y.
func NewMenu(x, y int) *Menu {
	return &Menu{X: x, Y: y, subItem: -1}
}

// Add appends a normal or checkbox item.
func (m *Menu) Add(label string, kind ItemKind, checked bool, action func(*MenuItem, input.Event)) *MenuItem {
	it := &MenuItem{Label: label, Kind: kind, Checked: checked, Action: action}
	m.Items = append(m.Items, it)
	return it
}

// AddSubmenu appends an item that opens a child menu filled by build.
func (m *Menu) AddSubmenu(label string, build func(sub *Menu)) *MenuItem {
	it := &MenuItem{Label: label, Kind: ItemSubmenu, Build: build}
	m.Items = append(m.Items, it)
	return it
}

// Find returns the first item labelled label.
func (m *Menu) Find(label string) *MenuItem {
	for _, it := range m.Items {
		if it.Label == label {
			return it
		}
	}
	return nil
}

// Labels returns the item labels in order.
func (m *Menu) Labels() []string {
	out := make([]string, len(m.Items))
	for i, it := range m.Items {
		out[i] = it.Label
	}
	return out
}

// Text is the row as drawn: checkbox items carry a "[x] " or "[ ] " mark.
func (it *MenuItem) Text() string {
	if it.Kind != ItemCheckbox {
		return it.Label
	}
	if it.Checked {
		return "[x] " + it.Label
	}
	return "[ ] " + it.Label
}

// Width is the menu width, sized to the longest row.
func (m *Menu) Width() int {
	w := menuMinWidth
	for _, it := range m.Items {
		if n := utf8.RuneCountInString(it.Text())*menuCharWidth + menuPadding; n > w {
			w = n
		}
	}
	return w
}

// Rect returns the menu bounds in screen coordinates.
func (m *Menu) Rect() image.Rectangle {
	return image.Rect(m.X, m.Y, m.X+m.Width(), m.Y+len(m.Items)*MenuItemHeight)
}

// Finalize moves the menu so it fits inside a screen of the given size.
func (m *Menu) Finalize(screenW, screenH int) {
	r := m.Rect()
	if r.Max.X > screenW {
		m.X -= r.Max.X - screenW
	}
	if r.Max.Y > screenH {
		m.Y -= r.Max.Y - screenH
	}
	if m.X < 0 {
		m.X = 0
	}
	if m.Y < 0 {
		m.Y = 0
	}
}

// ItemAt returns the index of the item under x, y, or -1.
func (m *Menu) ItemAt(x, y int) int {
	if !image.Pt(x, y).In(m.Rect()) {
		return -1
	}
	return (y - m.Y) / MenuItemHeight
}

func (m *Menu) openSub(i int) {
	if m.subItem == i && m.Sub != nil {
		return
	}
	it := m.Items[i]
	sub := NewMenu(m.X+m.Width(), m.Y+i*MenuItemHeight)
	if it.Build != nil {
		it.Build(sub)
	}
	m.Sub = sub
	m.subItem = i
}

// Open builds and opens the submenu of the item labelled label. It returns
// the child menu, or nil if no such submenu item exists.
func (m *Menu) Open(label string) *Menu {
	for i, it := range m.Items {
		if it.Label == label && it.Kind == ItemSubmenu {
			m.openSub(i)
			return m.Sub
		}
	}
	return nil
}

func (m *Menu) contains(x, y int) bool {
	if image.Pt(x, y).In(m.Rect()) {
		return true
	}
	return m.Sub != nil && m.Sub.contains(x, y)
}

// HandleEvent routes an event to the menu. consumed reports whether the menu
// used the event and closed whether the menu should now be dismissed.
func (m *Menu) HandleEvent(ev input.Event) (consumed, closed bool) {
	switch ev.Kind {
	case input.KeyDown:
		if ev.Key == input.KeyEscape {
			return true, true
		}
		return false, false
	case input.MouseMotion:
		if m.Sub != nil && m.Sub.contains(ev.X, ev.Y) {
			return m.Sub.HandleEvent(ev)
		}
		if i := m.ItemAt(ev.X, ev.Y); i >= 0 {
			if m.Items[i].Kind == ItemSubmenu {
				m.openSub(i)
			}
			return true, false
		}
		return false, false
	case input.MouseButtonDown:
		if !m.contains(ev.X, ev.Y) {
			return false, true
		}
		if m.Sub != nil && m.Sub.contains(ev.X, ev.Y) {
			return m.Sub.HandleEvent(ev)
		}
		i := m.ItemAt(ev.X, ev.Y)
		it := m.Items[i]
		if it.Kind == ItemSubmenu {
			m.openSub(i)
			return true, false
		}
		if it.Action != nil {
			it.Action(it, ev)
		}
		return true, true
	case input.MouseButtonUp:
		return m.contains(ev.X, ev.Y), false
	}
	return false, false
}
