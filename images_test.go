package main

import (
	"bytes"
	"testing"
)

func TestRenderFaceDeterministic(t *testing.T) {
	a := renderFace("sword.101")
	b := renderFace("sword.101")
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("same face rendered differently")
	}
	if c := renderFace("shield.111"); bytes.Equal(a.Pix, c.Pix) {
		t.Fatalf("different faces rendered the same")
	}
	if a.At(0, 0) != a.At(31, 31) || a.RGBAAt(0, 0).A != 0 {
		t.Fatalf("padding not transparent")
	}
}

func TestCollectFacesDistinct(t *testing.T) {
	w := newTestWorld(t)
	faces := collectFaces(w.player)
	seen := map[string]bool{}
	for _, f := range faces {
		if seen[f] {
			t.Fatalf("face %q listed twice", f)
		}
		seen[f] = true
	}
	if sack := named(w.player.Ob, "sack"); sack != nil && !seen[sack.Face] {
		t.Fatalf("sack face %q missing", sack.Face)
	}
}

func TestWarmIcons(t *testing.T) {
	w := newTestWorld(t)
	warmIcons(w.player)
	imageMu.Lock()
	defer imageMu.Unlock()
	for _, f := range collectFaces(w.player) {
		if faceImages[f] == nil {
			t.Fatalf("icon for %q not rendered", f)
		}
	}
}
