package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	open "github.com/skratchdot/open-golang/open"

	"goatrinik/inventory"
	"goatrinik/widget"
)

var (
	pendingCommand string
	commandQueue   []string
)

func enqueueCommand(cmd string) {
	if cmd != "" {
		commandQueue = append(commandQueue, cmd)
	}
}

func nextCommand() {
	if pendingCommand == "" && len(commandQueue) > 0 {
		pendingCommand = commandQueue[0]
		commandQueue = commandQueue[1:]
	}
}

// takeCommand returns the pending command and clears it.
func takeCommand() string {
	nextCommand()
	cmd := pendingCommand
	pendingCommand = ""
	return cmd
}

// clientConn turns inventory intents into server commands.
type clientConn struct{}

func (clientConn) Move(loc, tag inventory.Tag, nrof uint32) {
	enqueueCommand(fmt.Sprintf("/move %d %d %d", loc, tag, nrof))
}
func (clientConn) Apply(tag inventory.Tag)   { enqueueCommand(fmt.Sprintf("/apply %d", tag)) }
func (clientConn) Examine(tag inventory.Tag) { enqueueCommand(fmt.Sprintf("/examine %d", tag)) }
func (clientConn) Mark(tag inventory.Tag)    { enqueueCommand(fmt.Sprintf("/mark %d", tag)) }
func (clientConn) Lock(tag inventory.Tag)    { enqueueCommand(fmt.Sprintf("/lock %d", tag)) }
func (clientConn) Command(cmd string)        { enqueueCommand(cmd) }

// windowFocused is swapped out in tests.
var windowFocused = ebiten.IsFocused

// clientUI connects the inventory to the console, prompts, menus and sound.
type clientUI struct{}

func (clientUI) Info(c inventory.Color, msg string) { infoMessage(c, msg) }
func (clientUI) EditConsole(text string)            { entry.Open(entryConsole, "", "", text) }
func (clientUI) ShowMenu(m *widget.Menu)            { activeMenu = m }
func (clientUI) PlaySound(name string, volume int)  { playSound(name, volume) }

func (clientUI) PromptQuantity(p inventory.QuantityPrompt) {
	entry.Open(entryQuantity, p.Title, p.Prepend, p.Default)
	if gs.Notifications && !windowFocused() {
		notifyDesktop("goatrinik", p.Title)
	}
}

// runConsoleCommand handles the commands the client answers itself and
// sends everything else to the server.
func runConsoleCommand(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "/invfilter":
		setInventoryFilter(fields[1:])
	case "/collect":
		if len(fields) < 2 {
			consoleMessage(fmt.Sprintf("collect mode is %d", gs.CollectMode))
			return
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 || n > inventory.CollectGetAll|inventory.CollectDropAll {
			logWarn("collect mode must be 0 to 3, got %q", fields[1])
			return
		}
		gs.CollectMode = n
		settingsDirty = true
		consoleMessage(fmt.Sprintf("collect mode set to %d", n))
	case "/screenshots":
		dir := filepath.Join(dataDirPath, "Screenshots")
		if err := open.Run(dir); err != nil {
			logError("open %v: %v", dir, err)
		}
	default:
		enqueueCommand(line)
	}
}

// setInventoryFilter applies filter names typed on the console. With no
// names it reports the active filter.
func setInventoryFilter(words []string) {
	if invManager == nil {
		return
	}
	if len(words) == 0 {
		consoleMessage("inventory filter: " + invManager.Filter.Label())
		return
	}
	if len(words) == 1 && strings.EqualFold(words[0], "all") {
		invManager.FilterSet(inventory.FilterAll)
		gs.InventoryFilter = nil
		settingsDirty = true
		return
	}
	known, problems := checkFilterNames(words)
	for _, p := range problems {
		logWarn("%s", p)
	}
	if len(known) == 0 && len(problems) > 0 {
		return
	}
	invManager.FilterSetNames(strings.Join(known, " "))
	gs.InventoryFilter = invManager.Filter.Names()
	settingsDirty = true
}
