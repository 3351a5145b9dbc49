package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"goatrinik/input"
)

func TestEbitenKeyMapping(t *testing.T) {
	cases := []struct {
		from ebiten.Key
		want input.Key
	}{
		{ebiten.KeyA, input.KeyA},
		{ebiten.KeyZ, input.KeyZ},
		{ebiten.KeyDigit0, input.Key0},
		{ebiten.KeyDigit7, input.Key7},
		{ebiten.KeyF12, input.KeyF12},
		{ebiten.KeyArrowLeft, input.KeyArrowLeft},
		{ebiten.KeyNumpadEnter, input.KeyEnter},
		{ebiten.KeyPrintScreen, input.KeyPrint},
		{ebiten.KeyControlRight, input.KeyRightCtrl},
	}
	for _, c := range cases {
		if got := ebitenKeys[c.from]; got != c.want {
			t.Errorf("ebitenKeys[%v] = %v, want %v", c.from, got, c.want)
		}
	}
}

func TestModState(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyShift: true, ebiten.KeyAlt: true}
	m := modState(func(k ebiten.Key) bool { return held[k] })
	if m != input.ModShift|input.ModAlt {
		t.Fatalf("modState = %v", m)
	}
	if modState(func(ebiten.Key) bool { return false }) != input.ModNone {
		t.Fatalf("modState with nothing held is not empty")
	}
}

func TestKeyUnicode(t *testing.T) {
	if r := keyUnicode(input.KeyA, input.ModNone); r != 'a' {
		t.Fatalf("a = %q", r)
	}
	if r := keyUnicode(input.KeyA, input.ModShift); r != 'A' {
		t.Fatalf("shift a = %q", r)
	}
	if r := keyUnicode(input.Key4, input.ModShift); r != '4' {
		t.Fatalf("shift 4 = %q", r)
	}
}

func TestEbitenSourceQueue(t *testing.T) {
	s := newEbitenSource()
	s.resize(800, 600)
	s.resize(800, 600)
	s.queue = append(s.queue, input.MotionEvent(3, 4))

	ev, ok := s.Poll()
	if !ok || ev.Kind != input.Resize || ev.W != 800 || ev.H != 600 {
		t.Fatalf("first event = %v", ev)
	}
	ev, ok = s.Poll()
	if !ok || ev.Kind != input.MouseMotion {
		t.Fatalf("second event = %v", ev)
	}
	if _, ok := s.Poll(); ok {
		t.Fatalf("queue not drained")
	}
}
