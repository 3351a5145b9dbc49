package main

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"goatrinik/input"
)

// ebitenKeys maps ebiten keys to the client's symbolic keys.
var ebitenKeys = func() map[ebiten.Key]input.Key {
	m := map[ebiten.Key]input.Key{
		ebiten.KeySpace:        input.KeySpace,
		ebiten.KeyEnter:        input.KeyEnter,
		ebiten.KeyNumpadEnter:  input.KeyEnter,
		ebiten.KeyEscape:       input.KeyEscape,
		ebiten.KeyTab:          input.KeyTab,
		ebiten.KeyBackspace:    input.KeyBackspace,
		ebiten.KeyDelete:       input.KeyDelete,
		ebiten.KeyArrowUp:      input.KeyArrowUp,
		ebiten.KeyArrowDown:    input.KeyArrowDown,
		ebiten.KeyArrowLeft:    input.KeyArrowLeft,
		ebiten.KeyArrowRight:   input.KeyArrowRight,
		ebiten.KeyHome:         input.KeyHome,
		ebiten.KeyEnd:          input.KeyEnd,
		ebiten.KeyPageUp:       input.KeyPageUp,
		ebiten.KeyPageDown:     input.KeyPageDown,
		ebiten.KeyPrintScreen:  input.KeyPrint,
		ebiten.KeyShiftLeft:    input.KeyLeftShift,
		ebiten.KeyShiftRight:   input.KeyRightShift,
		ebiten.KeyControlLeft:  input.KeyLeftCtrl,
		ebiten.KeyControlRight: input.KeyRightCtrl,
		ebiten.KeyAltLeft:      input.KeyLeftAlt,
		ebiten.KeyAltRight:     input.KeyRightAlt,
		ebiten.KeyMetaLeft:     input.KeyLeftMeta,
		ebiten.KeyMetaRight:    input.KeyRightMeta,
		ebiten.KeyNumLock:      input.KeyNumLock,
		ebiten.KeyCapsLock:     input.KeyCapsLock,
		ebiten.KeyScrollLock:   input.KeyScrollLock,
	}
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		m[k] = input.KeyA + input.Key(i)
	}
	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, k := range digits {
		m[k] = input.Key0 + input.Key(i)
	}
	fkeys := []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
	for i, k := range fkeys {
		m[k] = input.KeyF1 + input.Key(i)
	}
	return m
}()

var ebitenButtons = []struct {
	from ebiten.MouseButton
	to   input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
	{ebiten.MouseButtonRight, input.ButtonRight},
}

// modState builds the modifier mask from a key state reader.
func modState(pressed func(ebiten.Key) bool) input.Mod {
	var m input.Mod
	if pressed(ebiten.KeyShift) {
		m |= input.ModShift
	}
	if pressed(ebiten.KeyControl) {
		m |= input.ModCtrl
	}
	if pressed(ebiten.KeyAlt) {
		m |= input.ModAlt
	}
	if pressed(ebiten.KeyMeta) {
		m |= input.ModMeta
	}
	return m
}

// keyUnicode is the character a key press produces, honoring shift.
func keyUnicode(k input.Key, mod input.Mod) rune {
	r := k.Rune()
	if mod&input.ModShift != 0 {
		r = unicode.ToUpper(r)
	}
	return r
}

// ebitenSource turns ebiten's per-frame input state into discrete events.
// collect runs once per Update before the poller drains the queue.
type ebitenSource struct {
	queue  []input.Event
	mouseX int
	mouseY int
	width  int
	height int
}

func newEbitenSource() *ebitenSource {
	return &ebitenSource{mouseX: -1, mouseY: -1}
}

func (s *ebitenSource) collect() {
	if ebiten.IsWindowBeingClosed() {
		s.queue = append(s.queue, input.Event{Kind: input.Quit})
	}

	mod := s.ModState()
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, ok := ebitenKeys[k]; ok {
			ev := input.KeyEvent(input.KeyDown, key, mod)
			ev.Unicode = keyUnicode(key, mod)
			s.queue = append(s.queue, ev)
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if key, ok := ebitenKeys[k]; ok {
			s.queue = append(s.queue, input.KeyEvent(input.KeyUp, key, mod))
		}
	}

	x, y := ebiten.CursorPosition()
	if x != s.mouseX || y != s.mouseY {
		s.mouseX, s.mouseY = x, y
		s.queue = append(s.queue, input.MotionEvent(x, y))
	}
	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.from) {
			s.queue = append(s.queue, input.ButtonEvent(input.MouseButtonDown, b.to, x, y))
		}
		if inpututil.IsMouseButtonJustReleased(b.from) {
			s.queue = append(s.queue, input.ButtonEvent(input.MouseButtonUp, b.to, x, y))
		}
	}

	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		s.queue = append(s.queue, input.ButtonEvent(input.MouseButtonDown, input.ButtonWheelUp, x, y))
	case dy < 0:
		s.queue = append(s.queue, input.ButtonEvent(input.MouseButtonDown, input.ButtonWheelDown, x, y))
	}
}

// resize queues a Resize event when the window size changed.
func (s *ebitenSource) resize(w, h int) {
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.queue = append(s.queue, input.Event{Kind: input.Resize, W: w, H: h})
}

func (s *ebitenSource) Poll() (input.Event, bool) {
	if len(s.queue) == 0 {
		return input.Event{}, false
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, true
}

func (s *ebitenSource) MouseState() (int, int) { return ebiten.CursorPosition() }

func (s *ebitenSource) ModState() input.Mod { return modState(ebiten.IsKeyPressed) }
