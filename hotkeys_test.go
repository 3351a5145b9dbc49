package main

import (
	"fmt"
	"reflect"
	"testing"

	"goatrinik/input"
	"goatrinik/inventory"
)

func hotkeyClient(t *testing.T) *inventory.Manager {
	t.Helper()
	w := newTestWorld(t)
	drag := input.NewDrag(func() (int, int) { return 0, 0 })
	invManager = inventory.NewManager(w.player, clientConn{}, clientUI{}, clientOptions{}, drag)
	invManager.StandardItems = standardMenuItems
	applyWidgetSettings(invManager)
	return invManager
}

func TestHotkeyLocksSelection(t *testing.T) {
	m := hotkeyClient(t)
	ob := m.Main.Selected()
	if ob == nil {
		t.Fatalf("nothing selected in a populated inventory")
	}
	handleKey(key(input.KeyL))
	want := []string{fmt.Sprintf("/lock %d", ob.Tag)}
	if got := queuedCommands(); !reflect.DeepEqual(got, want) {
		t.Fatalf("commands = %q, want %q", got, want)
	}
}

func TestHotkeyIgnoredWithModifier(t *testing.T) {
	hotkeyClient(t)
	handleKey(input.KeyEvent(input.KeyDown, input.KeyE, input.ModAlt))
	if got := queuedCommands(); len(got) != 0 {
		t.Fatalf("commands = %q", got)
	}
}

func TestHotkeyHiddenWidget(t *testing.T) {
	m := hotkeyClient(t)
	m.Main.Hidden = true
	handleKey(key(input.KeyE))
	if got := queuedCommands(); len(got) != 0 {
		t.Fatalf("hidden widget acted on: %q", got)
	}

	handleKey(key(input.KeyI))
	if m.Main.Hidden || m.Below.Hidden {
		t.Fatalf("I did not unhide the widgets")
	}
}

func TestHotkeyOpensConsole(t *testing.T) {
	hotkeyClient(t)
	handleKey(key(input.KeyT))
	if !entry.Active() {
		t.Fatalf("T did not open the console")
	}
	// typing into the open entry must not reach the inventory
	handleKey(key(input.KeyL))
	if got := queuedCommands(); len(got) != 0 {
		t.Fatalf("entry let a hotkey through: %q", got)
	}
}

func TestHotkeyTabSwitchesFocus(t *testing.T) {
	m := hotkeyClient(t)
	handleKey(key(input.KeyTab))
	if m.Player.Focus != m.Below {
		t.Fatalf("focus = %v, want below", m.Player.Focus.ID)
	}
}

func TestCopyWithoutClipboard(t *testing.T) {
	hotkeyClient(t)
	old := clipboardReady
	clipboardReady = false
	defer func() { clipboardReady = old }()
	handleKey(input.KeyEvent(input.KeyDown, input.KeyC, input.ModCtrl))
	if len(consoleTexts()) != 0 {
		t.Fatalf("console = %q", consoleTexts())
	}
}
