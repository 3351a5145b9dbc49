package inventory

import (
	"image"
	"log"
	"time"

	"goatrinik/input"
	"goatrinik/widget"
)

// Widget IDs.
const (
	IDMain  = "main"
	IDBelow = "below"
)

// Color selects the color of an info message.
type Color int

const (
	ColorWhite Color = iota
	ColorGreen
	ColorDGold
	ColorHGold
	ColorRed
)

// Conn is the connection to the game server. Each call sends one intent;
// results arrive later as inventory updates.
type Conn interface {
	// Move moves nrof of tag into loc; nrof 0 moves the whole stack.
	Move(loc, tag Tag, nrof uint32)
	Apply(tag Tag)
	Examine(tag Tag)
	Mark(tag Tag)
	Lock(tag Tag)
	Command(cmd string)
}

// QuantityPrompt asks the player how many of a stack to move. The entered
// number is appended to Prepend and sent as a command.
type QuantityPrompt struct {
	Title   string
	Prepend string
	Default string
}

// UI is the rest of the client the inventory talks to.
type UI interface {
	Info(c Color, msg string)
	EditConsole(text string)
	PromptQuantity(p QuantityPrompt)
	ShowMenu(m *widget.Menu)
	PlaySound(name string, volume int)
}

// Options are the player settings the inventory consults.
type Options interface {
	// CollectMode bit 1 picks up whole stacks, bit 2 drops whole stacks.
	CollectMode() int
	Operator() bool
	DoubleClickDelay() time.Duration
}

// Dragger tracks a drag gesture; input.Drag implements it.
type Dragger interface {
	Check() bool
	Start(tag uint32, x, y int)
	SetCallback(fn func())
	Stop()
	Tag() uint32
}

// Manager owns the two inventory widgets and the state they share.
type Manager struct {
	Player *Player
	Filter Filter

	Main  *Widget
	Below *Widget

	conn Conn
	ui   UI
	opts Options
	drag Dragger

	// Now is the clock used for double clicks.
	Now func() time.Time
	// StandardItems adds the generic widget entries to a menu opened
	// outside the item grid.
	StandardItems func(w *Widget, m *widget.Menu)
	// ScreenSize bounds popup menus.
	ScreenSize func() (int, int)
}

// NewManager returns a manager with the main and below widgets created.
func NewManager(p *Player, conn Conn, ui UI, opts Options, drag Dragger) *Manager {
	m := &Manager{
		Player: p,
		conn:   conn,
		ui:     ui,
		opts:   opts,
		drag:   drag,
		Now:    time.Now,
	}
	m.Main = newWidget(m, IDMain)
	m.Below = newWidget(m, IDBelow)
	if p.Focus == nil {
		p.Focus = m.Main
	}
	return m
}

// Widget returns the widget with the given id, or nil.
func (m *Manager) Widget(id string) *Widget {
	switch id {
	case IDMain:
		return m.Main
	case IDBelow:
		return m.Below
	}
	log.Printf("inventory: no widget %q", id)
	return nil
}

// Widgets returns both widgets, main first.
func (m *Manager) Widgets() []*Widget { return []*Widget{m.Main, m.Below} }

func (m *Manager) widgetAt(x, y int) *Widget {
	pt := image.Pt(x, y)
	for _, w := range m.Widgets() {
		if !w.Hidden && pt.In(w.Rect()) {
			return w
		}
	}
	return nil
}

func (m *Manager) filterChanged() {
	m.Main.HandleArrowKey(input.KeyUnknown)
	m.Main.Redraw = true
	m.ui.Info(ColorGreen, "Inventory filter changed.")
}

// FilterSet replaces the active filter.
func (m *Manager) FilterSet(f Filter) {
	m.Filter = f
	m.filterChanged()
}

// FilterToggle flips the filter bits in f.
func (m *Manager) FilterToggle(f Filter) {
	if m.Filter&f != 0 {
		m.Filter &^= f
	} else {
		m.Filter |= f
	}
	m.filterChanged()
}

// FilterSetNames sets the filter from space separated names.
func (m *Manager) FilterSetNames(names string) {
	m.Filter = ParseFilter(names)
	m.filterChanged()
}

// HandleEvent routes a pointer event to the widget under it. A right press
// opens that widget's context menu. It reports whether the event was used.
func (m *Manager) HandleEvent(ev input.Event) bool {
	if !ev.Kind.IsMouse() {
		return false
	}
	w := m.widgetAt(ev.X, ev.Y)
	if w == nil {
		return false
	}
	if ev.Kind == input.MouseButtonDown {
		m.Player.Focus = w
	}
	if ev.Kind == input.MouseButtonDown && ev.Button == input.ButtonRight && !m.drag.Check() {
		menu := w.OpenMenu(ev)
		if m.ScreenSize != nil {
			menu.Finalize(m.ScreenSize())
		}
		m.ui.ShowMenu(menu)
		return true
	}
	return w.HandleEvent(ev)
}

// HandleKey drives the focused widget from the keyboard: arrows move the
// selection, Enter applies and Tab switches focus. Hidden widgets take no
// keys and Tab never lands on one.
func (m *Manager) HandleKey(ev input.Event) bool {
	if ev.Kind != input.KeyDown {
		return false
	}
	w := m.Player.Focus
	if w == nil || w.Hidden {
		return false
	}
	switch ev.Key {
	case input.KeyArrowUp, input.KeyArrowDown, input.KeyArrowLeft, input.KeyArrowRight:
		w.HandleArrowKey(ev.Key)
	case input.KeyEnter:
		m.Apply(w)
	case input.KeyTab:
		next := m.Main
		if w == m.Main {
			next = m.Below
		}
		if !next.Hidden {
			m.Player.Focus = next
		}
		m.Main.Redraw = true
		m.Below.Redraw = true
	default:
		return false
	}
	return true
}

// dragReleased runs when a drag started in an inventory is released
// somewhere no widget handled: carried items are dropped, others picked up.
func (m *Manager) dragReleased() {
	p := m.Player
	dragging := p.Find(Tag(m.drag.Tag()))
	if dragging == nil {
		log.Printf("inventory: drag released without a dragged object")
		return
	}
	if dragging.Env == p.Ob || (p.Sack != nil && p.Sack.Env == p.Ob) {
		m.Drop(m.Main)
	} else {
		m.Get(m.Below)
	}
}
