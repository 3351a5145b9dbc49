package main

import (
	clipboard "golang.design/x/clipboard"

	"goatrinik/input"
	"goatrinik/inventory"
)

// clipboardReady is set once clipboard.Init succeeded.
var clipboardReady bool

// inventoryHotkeys act on the focused inventory widget.
var inventoryHotkeys = map[input.Key]func(m *inventory.Manager, w *inventory.Widget){
	input.KeyD: (*inventory.Manager).Drop,
	input.KeyG: (*inventory.Manager).Get,
	input.KeyE: (*inventory.Manager).Examine,
	input.KeyM: (*inventory.Manager).Mark,
	input.KeyL: (*inventory.Manager).Lock,
	input.KeyA: (*inventory.Manager).Apply,
}

// handleKey gets key events no widget or popup consumed.
func handleKey(ev input.Event) {
	if ev.Kind == input.KeyDown && ev.Mod&input.ModCtrl != 0 {
		switch ev.Key {
		case input.KeyV:
			if entry.Active() {
				pasteIntoEntry()
			}
			return
		case input.KeyC:
			copySelectedName()
			return
		}
	}
	if entry.HandleKey(ev) {
		return
	}
	if ev.Kind != input.KeyDown || invManager == nil {
		return
	}
	if invManager.HandleKey(ev) {
		return
	}
	if ev.Mod&(input.ModCtrl|input.ModAlt|input.ModMeta) != 0 {
		return
	}

	switch ev.Key {
	case input.KeyT:
		entry.Open(entryConsole, "", "", "")
		return
	case input.KeyI:
		for _, w := range invManager.Widgets() {
			w.Hidden = false
			w.Redraw = true
		}
		return
	}
	if fn, ok := inventoryHotkeys[ev.Key]; ok {
		if w := player.Focus; w != nil && !w.Hidden {
			fn(invManager, w)
		}
	}
}

func pasteIntoEntry() {
	if !clipboardReady {
		return
	}
	if b := clipboard.Read(clipboard.FmtText); len(b) > 0 {
		entry.Type([]rune(string(b)))
	}
}

// copySelectedName puts the name of the focused selection on the clipboard.
func copySelectedName() {
	if !clipboardReady || player == nil || player.Focus == nil {
		return
	}
	ob := player.Focus.Selected()
	if ob == nil {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(ob.Name))
	infoMessage(inventory.ColorGreen, "Copied "+ob.Name+".")
}
