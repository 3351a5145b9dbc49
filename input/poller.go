package input

import (
	"time"

	"golang.org/x/time/rate"
)

// Default key repeat timings.
const (
	DefaultRepeatDelay    = 175 * time.Millisecond
	DefaultRepeatInterval = 35 * time.Millisecond

	// repeatSlack shortens every repeat interval slightly so a frame landing
	// right on the boundary still fires.
	repeatSlack = 5 * time.Millisecond

	mouseFireInterval = 125 * time.Millisecond
)

// GameState is the coarse connection state of the client. States are
// ordered, so comparisons like state <= WaitForPlay are meaningful.
type GameState int

const (
	StateInit GameState = iota
	StateConnect
	StateWaitForPlay
	StatePlay
)

// Source delivers raw window events. Poll returns false once the queue for
// the current frame is empty.
type Source interface {
	Poll() (Event, bool)
	MouseState() (x, y int)
	ModState() Mod
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Handlers are the collaborators events are routed to. Every field is
// optional. Handlers returning bool report whether they consumed the event.
type Handlers struct {
	Popup   func(Event) bool
	Intro   func(Event) bool
	Widgets func(Event) bool
	Key     func(Event)

	Screenshot     func()
	Resize         func(w, h int)
	TooltipDismiss func()

	// MapFire runs the held-button fire gesture on the map and reports
	// whether anything fired. MapOwnsMouse reports whether the map widget
	// currently owns the mouse.
	MapFire      func() bool
	MapOwnsMouse func() bool
}

// Config holds the key repeat timings.
type Config struct {
	RepeatDelay    time.Duration
	RepeatInterval time.Duration
}

type keyState struct {
	pressed  bool
	repeated bool
	due      time.Time
}

// Poller runs one pass of the input loop per frame.
type Poller struct {
	src      Source
	clock    Clock
	handlers Handlers
	state    func() GameState
	cfg      Config

	keys    [keyLast]keyState
	pushed  []Event
	drag    *Drag
	fire    *rate.Limiter
	cursorX int
	cursorY int
}

// NewPoller returns a poller reading from src. state reports the current game
// state and is consulted for every event.
func NewPoller(src Source, clock Clock, state func() GameState, h Handlers, cfg Config) *Poller {
	if clock == nil {
		clock = SystemClock{}
	}
	if cfg.RepeatDelay <= 0 {
		cfg.RepeatDelay = DefaultRepeatDelay
	}
	if cfg.RepeatInterval <= repeatSlack {
		cfg.RepeatInterval = DefaultRepeatInterval
	}
	p := &Poller{
		src:      src,
		clock:    clock,
		handlers: h,
		state:    state,
		cfg:      cfg,
		fire:     rate.NewLimiter(rate.Every(mouseFireInterval), 1),
	}
	p.drag = NewDrag(src.MouseState)
	return p
}

// Drag returns the drag tracker shared with widgets.
func (p *Poller) Drag() *Drag { return p.drag }

// Cursor returns the last pointer position seen in a motion event.
func (p *Poller) Cursor() (int, int) { return p.cursorX, p.cursorY }

// SetRepeat changes the key repeat timings.
func (p *Poller) SetRepeat(cfg Config) {
	if cfg.RepeatDelay > 0 {
		p.cfg.RepeatDelay = cfg.RepeatDelay
	}
	if cfg.RepeatInterval > repeatSlack {
		p.cfg.RepeatInterval = cfg.RepeatInterval
	}
}

// Pressed reports whether key is held down.
func (p *Poller) Pressed(key Key) bool {
	if key <= KeyUnknown || key >= keyLast {
		return false
	}
	return p.keys[key].pressed
}

// Repeated reports whether key has started auto repeating.
func (p *Poller) Repeated(key Key) bool {
	if key <= KeyUnknown || key >= keyLast {
		return false
	}
	return p.keys[key].repeated
}

// PushKey queues a synthetic key event. It is delivered on the next Poll,
// ahead of any new window events.
func (p *Poller) PushKey(kind Kind, key Key, mod Mod) {
	p.pushed = append(p.pushed, KeyEvent(kind, key, mod))
}

// PushKeyOnce queues a full press and release of key.
func (p *Poller) PushKeyOnce(key Key, mod Mod) {
	p.PushKey(KeyDown, key, mod)
	p.PushKey(KeyUp, key, mod)
}

func (p *Poller) gameState() GameState {
	if p.state == nil {
		return StatePlay
	}
	return p.state()
}

// Poll drains pending events and dispatches them. It returns true when the
// window asked to quit.
func (p *Poller) Poll() bool {
	now := p.clock.Now()
	p.mouseFire(now)

	queue := p.pushed
	p.pushed = nil
	for {
		ev, ok := p.src.Poll()
		if !ok {
			break
		}
		queue = append(queue, ev)
	}

	done := false
	for _, ev := range queue {
		if p.dispatch(ev, now) {
			done = true
		}
	}

	p.repeatKeys(now)
	return done
}

func (p *Poller) mouseFire(now time.Time) {
	if p.fire.TokensAt(now) < 1 {
		return
	}
	if p.gameState() < StatePlay {
		return
	}
	h := p.handlers
	if h.MapFire == nil || h.MapOwnsMouse == nil || !h.MapOwnsMouse() {
		return
	}
	if h.MapFire() {
		p.fire.AllowN(now, 1)
	}
}

func (p *Poller) dispatch(ev Event, now time.Time) (quit bool) {
	h := p.handlers

	switch ev.Kind {
	case KeyDown:
		if ev.Key > KeyUnknown && ev.Key < keyLast && !p.keys[ev.Key].pressed {
			p.keys[ev.Key] = keyState{pressed: true, due: now.Add(p.cfg.RepeatDelay)}
		}
	case KeyUp:
		if ev.Key > KeyUnknown && ev.Key < keyLast {
			p.keys[ev.Key].pressed = false
		}
	case MouseMotion:
		if h.TooltipDismiss != nil {
			h.TooltipDismiss()
		}
	}

	if ev.Kind == KeyDown && ev.Key == KeyPrint {
		if h.Screenshot != nil {
			h.Screenshot()
		}
		return false
	}

	switch ev.Kind {
	case Resize:
		if h.Resize != nil {
			h.Resize(ev.W, ev.H)
		}
	case MouseButtonDown, MouseButtonUp, MouseMotion, KeyUp, KeyDown:
		p.route(ev)
	case Quit:
		quit = true
	}

	if ev.Kind == MouseButtonUp {
		p.drag.release()
	}
	return quit
}

func (p *Poller) route(ev Event) {
	h := p.handlers
	if ev.Kind == MouseMotion {
		p.cursorX, p.cursorY = ev.X, ev.Y
	}
	if h.Popup != nil && h.Popup(ev) {
		return
	}
	if p.drag.Check() && ev.Kind != MouseButtonUp {
		return
	}
	state := p.gameState()
	if state <= StateWaitForPlay {
		if h.Intro != nil && h.Intro(ev) {
			return
		}
	} else if state == StatePlay {
		if h.Widgets != nil && h.Widgets(ev) {
			return
		}
	}
	if state == StatePlay && ev.Kind.IsKey() && h.Key != nil {
		h.Key(ev)
	}
}

func (p *Poller) repeatKeys(now time.Time) {
	step := p.cfg.RepeatInterval - repeatSlack
	for k := KeyUnknown + 1; k < keyLast; k++ {
		if k.IsModifier() {
			continue
		}
		ks := &p.keys[k]
		if ks.pressed && ks.due.Add(step).Before(now) {
			ks.due = now.Add(step)
			ks.repeated = true
			p.PushKey(KeyDown, k, p.src.ModState())
		}
	}
}
