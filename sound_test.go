package main

import (
	"bytes"
	"testing"
)

func TestSoundVolume(t *testing.T) {
	resetClient(t)
	gs.SoundVolume = 0.5
	if v := soundVolume(100); v != 0.5 {
		t.Fatalf("soundVolume(100) = %v", v)
	}
	if v := soundVolume(-20); v != 0 {
		t.Fatalf("soundVolume(-20) = %v", v)
	}
	gs.SoundVolume = 4
	if v := soundVolume(50); v != 1 {
		t.Fatalf("soundVolume not clamped: %v", v)
	}
}

func TestClickPCM(t *testing.T) {
	pcm := clickPCM()
	if len(pcm) != 1764*4 {
		t.Fatalf("len = %d", len(pcm))
	}
	// both channels carry the same sample
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}
}

func TestLoadSoundFallback(t *testing.T) {
	resetClient(t)
	soundMu.Lock()
	delete(pcmCache, "missing.ogg")
	soundMu.Unlock()

	pcm := loadSound("missing.ogg")
	if !bytes.Equal(pcm, clickPCM()) {
		t.Fatalf("missing sound did not fall back to the click")
	}
	soundMu.Lock()
	_, cached := pcmCache["missing.ogg"]
	soundMu.Unlock()
	if !cached {
		t.Fatalf("fallback not cached")
	}
}

func TestPlaySoundDisabled(t *testing.T) {
	resetClient(t)
	gs.GameSound = false
	playSound("drop.ogg", 100)
	soundMu.Lock()
	n := len(soundPlayers)
	soundMu.Unlock()
	if n != 0 {
		t.Fatalf("players = %d with sound off", n)
	}
}
