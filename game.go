package main

import (
	"context"
	"image"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"

	"goatrinik/input"
	"goatrinik/inventory"
	"goatrinik/widget"
)

const (
	initialWindowW = 1024
	initialWindowH = 768

	// introDelay is how long the intro stays up in fake mode before play
	// starts on its own.
	introDelay = 2 * time.Second
)

var (
	gameCtx context.Context
	once    sync.Once

	invManager *inventory.Manager
	player     *inventory.Player
	poller     *input.Poller
	source     *ebitenSource
	world      *fakeWorld

	activeMenu *widget.Menu
	gameState  input.GameState

	screenW, screenH    int
	screenshotRequested bool
	introStart          time.Time
	tooltipSince        time.Time
	lastSettingsSave    time.Time

	// fake runs against a local world instead of a server.
	fake bool
)

type Game struct{}

func (g *Game) Update() error {
	now := time.Now()
	select {
	case <-gameCtx.Done():
		return ebiten.Termination
	default:
	}
	once.Do(initGame)

	// Characters typed this frame belong to the entry line only if it was
	// already open, so the key that opens it is not typed into it.
	if entry.Active() {
		entry.Type(ebiten.AppendInputChars(nil))
	}

	source.collect()
	if poller.Poll() {
		return ebiten.Termination
	}
	advanceState(now)
	processCommands()

	if invManager != nil {
		if syncWidgetSettings(invManager) {
			settingsDirty = true
		}
		if syncFilterSettings(invManager) {
			settingsDirty = true
		}
	}
	if now.Sub(lastSettingsSave) >= time.Second {
		if settingsDirty {
			saveSettings()
			settingsDirty = false
		}
		lastSettingsSave = now
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if source != nil {
		source.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// processCommands hands every queued command to the local world. Without
// one there is nobody to send them to.
func processCommands() {
	for cmd := takeCommand(); cmd != ""; cmd = takeCommand() {
		if world == nil {
			logDebug("offline, dropped %q", cmd)
			continue
		}
		world.handle(cmd)
	}
	if world != nil && invManager != nil {
		for _, w := range invManager.Widgets() {
			w.Redraw = true
		}
	}
}

func newPlayer() *inventory.Player {
	return &inventory.Player{
		Ob:     &inventory.Object{Tag: 1, Name: "player", Nrof: 1},
		Below:  &inventory.Object{Tag: 2, Name: "floor", Nrof: 1},
		Skills: map[inventory.Tag]int{},
	}
}

func initGame() {
	ebiten.SetWindowTitle("goatrinik")
	initFont()
	loadTheme()
	loadFilterChecker()

	player = newPlayer()
	source = newEbitenSource()
	poller = input.NewPoller(source, nil, func() input.GameState { return gameState }, input.Handlers{
		Popup:          handlePopup,
		Intro:          handleIntro,
		Widgets:        handleWidgets,
		Key:            handleKey,
		Screenshot:     func() { screenshotRequested = true },
		Resize:         handleResize,
		TooltipDismiss: func() { tooltipSince = time.Now() },
	}, repeatConfig())

	invManager = inventory.NewManager(player, clientConn{}, clientUI{}, clientOptions{}, poller.Drag())
	invManager.StandardItems = standardMenuItems
	invManager.ScreenSize = func() (int, int) { return screenW, screenH }
	applyWidgetSettings(invManager)

	if len(gs.InventoryFilter) > 0 {
		known, problems := checkFilterNames(gs.InventoryFilter)
		for _, p := range problems {
			logWarn("settings: %s", p)
		}
		invManager.Filter = inventory.ParseFilter(strings.Join(known, " "))
	}

	if fake {
		world = newFakeWorld(player)
		world.populate()
	}
	warmIcons(player)
	introStart = time.Now()
	gameState = input.StateInit
}

// standardMenuItems are the entries every widget menu offers outside the
// item grid.
func standardMenuItems(w *inventory.Widget, m *widget.Menu) {
	m.Add("Reset position", widget.ItemNormal, false, func(*widget.MenuItem, input.Event) {
		resetWidget(w)
	})
	m.Add("Hide", widget.ItemNormal, false, func(*widget.MenuItem, input.Event) {
		w.Hidden = true
		consoleMessage("Press I to show the inventory again.")
	})
}

func resetWidget(w *inventory.Widget) {
	def, ok := gsdef.Widgets[w.ID]
	if !ok {
		return
	}
	w.X, w.Y = def.Position.X, def.Position.Y
	w.SetSize(def.Size.X, def.Size.Y)
	w.Hidden = false
}

// advanceState walks the connection states. Without a local world there is
// no transport, so the client waits in Connect.
func advanceState(now time.Time) {
	switch gameState {
	case input.StateInit:
		gameState = input.StateConnect
	case input.StateConnect:
		if world != nil {
			gameState = input.StateWaitForPlay
		}
	case input.StateWaitForPlay:
		if now.Sub(introStart) >= introDelay {
			gameState = input.StatePlay
		}
	}
}

func handlePopup(ev input.Event) bool {
	if activeMenu == nil {
		return false
	}
	consumed, closed := activeMenu.HandleEvent(ev)
	if closed {
		activeMenu = nil
	}
	return consumed
}

// handleIntro lets any key or click skip the intro once the world is ready.
func handleIntro(ev input.Event) bool {
	if gameState != input.StateWaitForPlay {
		return false
	}
	if ev.Kind == input.KeyDown || ev.Kind == input.MouseButtonDown {
		gameState = input.StatePlay
		return true
	}
	return false
}

func handleWidgets(ev input.Event) bool {
	if invManager == nil {
		return false
	}
	return invManager.HandleEvent(ev)
}

func handleResize(w, h int) {
	screenW, screenH = w, h
	if w > 512 && h > 384 && (gs.WindowWidth != w || gs.WindowHeight != h) {
		gs.WindowWidth, gs.WindowHeight = w, h
		settingsDirty = true
	}
	if !gs.OffscreenWidgets && w > 100 && h > 100 {
		ensureWidgetsOnscreen(w, h)
	}
}

// ensureWidgetsOnscreen pulls every inventory widget back inside a w by h
// window.
func ensureWidgetsOnscreen(w, h int) {
	if invManager == nil {
		return
	}
	screen := image.Rect(0, 0, w, h)
	for _, wd := range invManager.Widgets() {
		r := wd.Rect()
		if r.In(screen) {
			continue
		}
		if r.Max.X > screen.Max.X {
			wd.X -= r.Max.X - screen.Max.X
		}
		if r.Max.Y > screen.Max.Y {
			wd.Y -= r.Max.Y - screen.Max.Y
		}
		if wd.X < 0 {
			wd.X = 0
		}
		if wd.Y < 0 {
			wd.Y = 0
		}
		wd.Redraw = true
	}
}

func runGame(ctx context.Context) {
	gameCtx = ctx

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if gs.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(&Game{}); err != nil {
		logError("ebiten: %v", err)
		dialog.Message("The client stopped unexpectedly:\n%v", err).Title("goatrinik").Error()
	}
	saveSettings()
}
