package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"goatrinik/input"
	"goatrinik/inventory"
)

const SETTINGS_VERSION = 1

const settingsFile = "settings.json"

var gs settings = defaultSettings()

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool

// settingsDirty marks unsaved changes; the game loop saves at most once a
// second.
var settingsDirty bool

var gsdef settings = settings{
	Version: SETTINGS_VERSION,

	WindowWidth:  1024,
	WindowHeight: 768,

	KeyRepeatDelay:    int(input.DefaultRepeatDelay / time.Millisecond),
	KeyRepeatInterval: int(input.DefaultRepeatInterval / time.Millisecond),
	DoubleClickDelay:  500,

	SoundVolume:   1.0,
	GameSound:     true,
	Notifications: true,

	Widgets: map[string]WidgetState{
		inventory.IDMain:  {Position: WindowPoint{X: 8, Y: 8}, Size: WindowPoint{X: 271, Y: 175}},
		inventory.IDBelow: {Position: WindowPoint{X: 8, Y: 190}, Size: WindowPoint{X: 275, Y: 88}},
	},
}

type settings struct {
	Version int

	WindowWidth  int
	WindowHeight int
	Fullscreen   bool
	// OffscreenWidgets lets widgets stay partly outside the window after
	// a resize.
	OffscreenWidgets bool

	// CollectMode bit 1 picks up whole stacks, bit 2 drops them.
	CollectMode int
	Operator    bool

	// Delays in milliseconds.
	KeyRepeatDelay    int
	KeyRepeatInterval int
	DoubleClickDelay  int

	InventoryFilter []string

	SoundVolume   float64
	GameSound     bool
	Notifications bool
	Theme         string

	Widgets map[string]WidgetState
}

type WindowPoint struct {
	X int
	Y int
}

// WidgetState is the saved placement of a widget.
type WidgetState struct {
	Position WindowPoint
	Size     WindowPoint
	Hidden   bool
}

func settingsPath() string {
	return filepath.Join(dataDirPath, settingsFile)
}

func loadSettings() bool {
	data, err := os.ReadFile(settingsPath())
	if err != nil {
		gs = defaultSettings()
		settingsLoaded = false
		return false
	}

	tmp := defaultSettings()
	if err := json.Unmarshal(data, &tmp); err != nil {
		logWarn("load settings: %v", err)
		gs = defaultSettings()
		settingsLoaded = false
		return false
	}
	if tmp.Version != SETTINGS_VERSION {
		gs = defaultSettings()
		settingsLoaded = false
		return false
	}
	gs = tmp
	settingsLoaded = true

	if gs.KeyRepeatDelay <= 0 {
		gs.KeyRepeatDelay = gsdef.KeyRepeatDelay
	}
	if gs.KeyRepeatInterval <= 5 {
		gs.KeyRepeatInterval = gsdef.KeyRepeatInterval
	}
	if gs.DoubleClickDelay <= 0 {
		gs.DoubleClickDelay = gsdef.DoubleClickDelay
	}
	if gs.SoundVolume < 0 || gs.SoundVolume > 1 {
		gs.SoundVolume = gsdef.SoundVolume
	}
	if gs.CollectMode < 0 || gs.CollectMode > inventory.CollectGetAll|inventory.CollectDropAll {
		gs.CollectMode = 0
	}
	if gs.Widgets == nil {
		gs.Widgets = map[string]WidgetState{}
	}
	for id, st := range gsdef.Widgets {
		if _, ok := gs.Widgets[id]; !ok {
			gs.Widgets[id] = st
		}
	}
	return settingsLoaded
}

// defaultSettings returns gsdef with its own copy of the widget map.
func defaultSettings() settings {
	s := gsdef
	s.Widgets = make(map[string]WidgetState, len(gsdef.Widgets))
	for id, st := range gsdef.Widgets {
		s.Widgets[id] = st
	}
	return s
}

func saveSettings() {
	if err := writeSettings(); err != nil {
		logError("save settings: %v", err)
	}
}

func writeSettings() error {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDirPath, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	path := settingsPath()
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		return err
	}
	return os.Rename(path+".tmp", path)
}

// repeatConfig returns the key repeat timings from the settings.
func repeatConfig() input.Config {
	return input.Config{
		RepeatDelay:    time.Duration(gs.KeyRepeatDelay) * time.Millisecond,
		RepeatInterval: time.Duration(gs.KeyRepeatInterval) * time.Millisecond,
	}
}

// clientOptions exposes the settings the inventory consults.
type clientOptions struct{}

func (clientOptions) CollectMode() int { return gs.CollectMode }
func (clientOptions) Operator() bool   { return gs.Operator }
func (clientOptions) DoubleClickDelay() time.Duration {
	return time.Duration(gs.DoubleClickDelay) * time.Millisecond
}

// applyWidgetSettings places the inventory widgets from the saved state.
func applyWidgetSettings(m *inventory.Manager) {
	for _, w := range m.Widgets() {
		st, ok := gs.Widgets[w.ID]
		if !ok {
			continue
		}
		w.X, w.Y = st.Position.X, st.Position.Y
		w.SetSize(st.Size.X, st.Size.Y)
		w.Hidden = st.Hidden
	}
}

// syncWidgetSettings copies widget placement back into the settings and
// reports whether anything changed.
func syncWidgetSettings(m *inventory.Manager) bool {
	changed := false
	for _, w := range m.Widgets() {
		st := WidgetState{
			Position: WindowPoint{X: w.X, Y: w.Y},
			Size:     WindowPoint{X: w.W, Y: w.H},
			Hidden:   w.Hidden,
		}
		if gs.Widgets[w.ID] != st {
			gs.Widgets[w.ID] = st
			changed = true
		}
	}
	return changed
}

// syncFilterSettings copies the active inventory filter into the settings
// and reports whether it changed.
func syncFilterSettings(m *inventory.Manager) bool {
	names := m.Filter.Names()
	if slices.Equal(names, gs.InventoryFilter) {
		return false
	}
	gs.InventoryFilter = names
	return true
}
