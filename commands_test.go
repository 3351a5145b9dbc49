package main

import (
	"reflect"
	"strings"
	"testing"

	"goatrinik/inventory"
)

func TestClientConnCommands(t *testing.T) {
	resetClient(t)
	var c clientConn
	c.Move(2, 1005, 10)
	c.Apply(7)
	c.Examine(8)
	c.Mark(9)
	c.Lock(10)
	c.Command("/drop all")
	c.Command("")

	want := []string{"/move 2 1005 10", "/apply 7", "/examine 8", "/mark 9", "/lock 10", "/drop all"}
	if got := queuedCommands(); !reflect.DeepEqual(got, want) {
		t.Fatalf("commands = %q, want %q", got, want)
	}
}

func TestNextCommandKeepsPending(t *testing.T) {
	resetClient(t)
	enqueueCommand("/a")
	enqueueCommand("/b")
	nextCommand()
	nextCommand()
	if pendingCommand != "/a" || len(commandQueue) != 1 {
		t.Fatalf("pending %q queue %q", pendingCommand, commandQueue)
	}
}

func TestRunConsoleCommandCollect(t *testing.T) {
	resetClient(t)
	runConsoleCommand("/collect 3")
	if gs.CollectMode != 3 || !settingsDirty {
		t.Fatalf("collect mode %d dirty %v", gs.CollectMode, settingsDirty)
	}

	settingsDirty = false
	runConsoleCommand("/collect 7")
	if gs.CollectMode != 3 || settingsDirty {
		t.Fatalf("out of range collect mode was applied")
	}

	runConsoleCommand("/COLLECT")
	if !consoleHas("collect mode is 3") {
		t.Fatalf("console = %q", consoleTexts())
	}
	if len(queuedCommands()) != 0 {
		t.Fatalf("local command reached the server queue")
	}
}

func TestRunConsoleCommandForwards(t *testing.T) {
	resetClient(t)
	runConsoleCommand("  /say hello  ")
	runConsoleCommand("   ")
	if got := queuedCommands(); !reflect.DeepEqual(got, []string{"/say hello"}) {
		t.Fatalf("commands = %q", got)
	}
}

func TestInvFilterCommand(t *testing.T) {
	resetClient(t)
	loadFilterChecker()
	m := newTestManager(t)

	runConsoleCommand("/invfilter Cursed locked")
	if m.Filter != inventory.FilterCursed|inventory.FilterLocked {
		t.Fatalf("filter = %v", m.Filter)
	}
	if !reflect.DeepEqual(gs.InventoryFilter, []string{"cursed", "locked"}) || !settingsDirty {
		t.Fatalf("settings filter %v dirty %v", gs.InventoryFilter, settingsDirty)
	}
	if !consoleHas("Inventory filter changed.") {
		t.Fatalf("console = %q", consoleTexts())
	}

	consoleLog.Clear()
	runConsoleCommand("/invfilter")
	if !consoleHas("inventory filter: cursed, ...") {
		t.Fatalf("console = %q", consoleTexts())
	}

	runConsoleCommand("/invfilter all")
	if m.Filter != inventory.FilterAll || gs.InventoryFilter != nil {
		t.Fatalf("filter %v settings %v after all", m.Filter, gs.InventoryFilter)
	}
}

func TestInvFilterCommandUnknownOnly(t *testing.T) {
	resetClient(t)
	m := newTestManager(t)
	m.Filter = inventory.FilterMagical
	runConsoleCommand("/invfilter shiny")
	if m.Filter != inventory.FilterMagical {
		t.Fatalf("unknown name changed the filter to %v", m.Filter)
	}
}

func TestPromptQuantityOpensEntry(t *testing.T) {
	resetClient(t)
	old := windowFocused
	windowFocused = func() bool { return true }
	defer func() { windowFocused = old }()

	clientUI{}.PromptQuantity(inventory.QuantityPrompt{Title: "Drop how many?", Prepend: "/droptag 2 10 ", Default: "20"})
	if entry.mode != entryQuantity || entry.Text() != "20" || !strings.HasPrefix(entry.prepend, "/droptag") {
		t.Fatalf("entry = %+v", entry)
	}
}
