package input

import "fmt"

// Key is a symbolic key independent of the windowing backend.
type Key int

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyPrint

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftMeta
	KeyRightMeta
	KeyLeftSuper
	KeyRightSuper
	KeyNumLock
	KeyCapsLock
	KeyScrollLock

	keyLast
)

var keyNames = map[Key]string{
	KeySpace:      "Space",
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyDelete:     "Delete",
	KeyArrowUp:    "Up",
	KeyArrowDown:  "Down",
	KeyArrowLeft:  "Left",
	KeyArrowRight: "Right",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyPrint:      "Print",
	KeyLeftShift:  "LeftShift",
	KeyRightShift: "RightShift",
	KeyLeftCtrl:   "LeftCtrl",
	KeyRightCtrl:  "RightCtrl",
	KeyLeftAlt:    "LeftAlt",
	KeyRightAlt:   "RightAlt",
	KeyLeftMeta:   "LeftMeta",
	KeyRightMeta:  "RightMeta",
	KeyLeftSuper:  "LeftSuper",
	KeyRightSuper: "RightSuper",
	KeyNumLock:    "NumLock",
	KeyCapsLock:   "CapsLock",
	KeyScrollLock: "ScrollLock",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ, k >= Key0 && k <= Key9:
		return string(k.Rune())
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Rune returns the character a key produces without modifiers, or 0.
func (k Key) Rune() rune {
	switch {
	case k >= KeyA && k <= KeyZ:
		return 'a' + rune(k-KeyA)
	case k >= Key0 && k <= Key9:
		return '0' + rune(k-Key0)
	case k == KeySpace:
		return ' '
	case k == KeyEnter:
		return '\r'
	case k == KeyTab:
		return '\t'
	case k == KeyBackspace:
		return '\b'
	case k == KeyEscape:
		return 0x1b
	}
	return 0
}

// IsModifier reports whether k is a modifier or lock key. Modifiers never
// auto repeat.
func (k Key) IsModifier() bool {
	return k >= KeyLeftShift && k <= KeyScrollLock
}

// KeyForRune maps a letter or digit to its key. Other runes map to KeyUnknown.
func KeyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	return KeyUnknown
}
