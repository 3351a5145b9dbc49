package main

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const (
	sampleRate = 44100
	maxSounds  = 16
)

var (
	soundMu      sync.Mutex
	pcmCache     = make(map[string][]byte)
	soundPlayers = make(map[*audio.Player]struct{})

	audioContext *audio.Context
)

// initSoundContext initializes the global audio context.
func initSoundContext() {
	audioContext = audio.NewContext(sampleRate)
}

// playSound plays a named effect from the sound directory at volume
// percent of the configured sound volume. Missing files fall back to a
// short generated click so every action is still audible.
func playSound(name string, volume int) {
	if !gs.GameSound || audioContext == nil || gs.SoundVolume <= 0 {
		return
	}
	go func() {
		pcm := loadSound(name)
		if pcm == nil {
			return
		}
		p := audioContext.NewPlayerFromBytes(pcm)
		p.SetVolume(soundVolume(volume))

		soundMu.Lock()
		for sp := range soundPlayers {
			if !sp.IsPlaying() {
				sp.Close()
				delete(soundPlayers, sp)
			}
		}
		if len(soundPlayers) >= maxSounds {
			soundMu.Unlock()
			logDebug("playSound too many sound players (%d)", len(soundPlayers))
			p.Close()
			return
		}
		soundPlayers[p] = struct{}{}
		soundMu.Unlock()

		p.Play()
	}()
}

// soundVolume scales a 0-100 request by the settings volume.
func soundVolume(volume int) float64 {
	v := float64(volume) / 100 * gs.SoundVolume
	return math.Max(0, math.Min(1, v))
}

// loadSound returns decoded 16-bit stereo PCM for name, caching the result.
func loadSound(name string) []byte {
	soundMu.Lock()
	pcm, ok := pcmCache[name]
	soundMu.Unlock()
	if ok {
		return pcm
	}

	path := filepath.Join(dataDirPath, "sound", name)
	pcm, err := decodeOgg(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logWarn("sound %v: %v", name, err)
		}
		pcm = clickPCM()
	}

	soundMu.Lock()
	pcmCache[name] = pcm
	soundMu.Unlock()
	return pcm
}

func decodeOgg(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// clickPCM renders a 40ms decaying 880Hz tone.
func clickPCM() []byte {
	const (
		freq = 880.0
		dur  = 0.04
	)
	n := int(sampleRate * dur)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*t) * env * 0.3 * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			out[i*4+ch*2] = byte(v)
			out[i*4+ch*2+1] = byte(uint16(v) >> 8)
		}
	}
	return out
}
