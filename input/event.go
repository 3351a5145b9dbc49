// Package input implements the client's poll-and-dispatch loop: it drains
// window events, tracks held keys for auto repeat and follows drag gestures
// started by widgets.
package input

import "fmt"

// Kind identifies the type of an Event.
type Kind int

const (
	KeyDown Kind = iota + 1
	KeyUp
	MouseMotion
	MouseButtonDown
	MouseButtonUp
	Resize
	Quit
)

var kindNames = map[Kind]string{
	KeyDown:         "KeyDown",
	KeyUp:           "KeyUp",
	MouseMotion:     "MouseMotion",
	MouseButtonDown: "MouseButtonDown",
	MouseButtonUp:   "MouseButtonUp",
	Resize:          "Resize",
	Quit:            "Quit",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsMouse reports whether k is a pointer event.
func (k Kind) IsMouse() bool {
	return k == MouseMotion || k == MouseButtonDown || k == MouseButtonUp
}

// IsKey reports whether k is a keyboard event.
func (k Kind) IsKey() bool {
	return k == KeyDown || k == KeyUp
}

// Button is a mouse button. The wheel is reported as the two pseudo buttons
// WheelUp and WheelDown.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// Mod is a bitmask of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

const ModNone Mod = 0

// Event is a single input event. Which fields are meaningful depends on Kind:
// key events carry Key, Mod and Unicode; mouse events carry X, Y and Button;
// Resize carries W and H.
type Event struct {
	Kind    Kind
	Key     Key
	Mod     Mod
	Unicode rune
	Button  Button
	X, Y    int
	W, H    int
}

func (e Event) String() string {
	switch {
	case e.Kind.IsKey():
		return fmt.Sprintf("%v key=%v mod=%#x", e.Kind, e.Key, uint8(e.Mod))
	case e.Kind.IsMouse():
		return fmt.Sprintf("%v (%d,%d) button=%d", e.Kind, e.X, e.Y, e.Button)
	case e.Kind == Resize:
		return fmt.Sprintf("%v %dx%d", e.Kind, e.W, e.H)
	}
	return e.Kind.String()
}

// KeyEvent builds a keyboard event for key.
func KeyEvent(kind Kind, key Key, mod Mod) Event {
	return Event{Kind: kind, Key: key, Mod: mod, Unicode: key.Rune()}
}

// ButtonEvent builds a mouse button event at x, y.
func ButtonEvent(kind Kind, b Button, x, y int) Event {
	return Event{Kind: kind, Button: b, X: x, Y: y}
}

// MotionEvent builds a mouse motion event at x, y.
func MotionEvent(x, y int) Event {
	return Event{Kind: MouseMotion, X: x, Y: y}
}
