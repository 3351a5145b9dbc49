package inventory

import (
	"fmt"
	"log"
)

// Collect mode bits.
const (
	CollectGetAll  = 1
	CollectDropAll = 2
)

// Drop drops the item selected in the main inventory onto the floor, or
// into a container open on the floor.
func (m *Manager) Drop(w *Widget) {
	if w == nil || w.Display != DisplayMain {
		return
	}
	ob := w.Selected()
	if ob == nil {
		return
	}
	if ob.HasAny(FlagLocked) {
		m.ui.Info(ColorDGold, "That item is locked.")
		return
	}

	p := m.Player
	var loc Tag
	if p.Sack != nil && p.Sack.Env == p.Below {
		loc = p.Sack.Tag
	} else if p.Below != nil {
		loc = p.Below.Tag
	}

	m.move("Drop", "drop", "/droptag", CollectDropAll, loc, ob, "drop.ogg")
}

// Get moves the selected item: from the floor into the inventory (or a
// container open on the floor), or between the inventory and the open
// container.
func (m *Manager) Get(w *Widget) {
	if w == nil {
		return
	}
	ob := w.Selected()
	if ob == nil {
		return
	}

	p := m.Player
	var loc Tag
	if w.Display == DisplayMain {
		switch {
		case p.Sack == nil:
			m.ui.Info(ColorDGold, "You have no open container to put it in.")
			return
		case p.Sack.Env != p.Ob:
			m.ui.Info(ColorDGold, "You already have it.")
			return
		case ob.Env == p.Sack:
			loc = p.Ob.Tag
		default:
			loc = p.Sack.Tag
		}
	} else {
		if p.Sack != nil && p.Sack.Env == p.Below && p.Sack.Tag != ob.Tag && ob.Env != p.Sack {
			loc = p.Sack.Tag
		} else if p.Ob != nil {
			loc = p.Ob.Tag
		}
	}

	m.move("Take", "get", "/gettag", CollectGetAll, loc, ob, "get.ogg")
}

// move sends a move of ob into loc. Whole single items send nrof 0. Stacks
// prompt for a quantity unless the collect mode bit says to move them whole.
func (m *Manager) move(verb, info, cmd string, collect int, loc Tag, ob *Object, sound string) {
	nrof := ob.Nrof
	if nrof == 1 {
		nrof = 0
	} else if m.opts.CollectMode()&collect == 0 {
		m.ui.PromptQuantity(QuantityPrompt{
			Title:   fmt.Sprintf("%s how many from %d %s?", verb, nrof, ob.Name),
			Prepend: fmt.Sprintf("%s %d %d ", cmd, loc, ob.Tag),
			Default: fmt.Sprint(nrof),
		})
		return
	}
	m.ui.Info(ColorDGold, fmt.Sprintf("%s %s", info, ob.Name))
	m.conn.Move(loc, ob.Tag, nrof)
	m.ui.PlaySound(sound, 100)
}

// DropAll drops everything droppable.
func (m *Manager) DropAll(*Widget) { m.conn.Command("/drop all") }

// GetAll picks up everything below.
func (m *Manager) GetAll(*Widget) { m.conn.Command("/take all") }

// Examine asks the server to describe the selected item.
func (m *Manager) Examine(w *Widget) {
	ob := w.Selected()
	if ob == nil {
		return
	}
	m.ui.Info(ColorDGold, "examine "+ob.Name)
	m.conn.Examine(ob.Tag)
}

// LoadToConsole loads the selected item into the server's script console.
func (m *Manager) LoadToConsole(w *Widget) {
	ob := w.Selected()
	if ob == nil {
		return
	}
	m.conn.Command(fmt.Sprintf("/console noinf::obj = find_obj(me, count = %d)", ob.Tag))
}

// Patch opens the console with a patch command for the selected item.
func (m *Manager) Patch(w *Widget) {
	ob := w.Selected()
	if ob == nil {
		return
	}
	m.ui.EditConsole(fmt.Sprintf("/patch #%d ", ob.Tag))
}

// Mark toggles the marked item.
func (m *Manager) Mark(w *Widget) {
	ob := w.Selected()
	if ob == nil {
		return
	}
	if ob.Tag == m.Player.MarkCount {
		m.ui.Info(ColorDGold, "unmark "+ob.Name)
	} else {
		m.ui.Info(ColorDGold, "mark "+ob.Name)
	}
	m.conn.Mark(ob.Tag)
}

// Lock toggles the locked state of the selected item.
func (m *Manager) Lock(w *Widget) {
	ob := w.Selected()
	if ob == nil {
		return
	}
	if ob.HasAny(FlagLocked) {
		m.ui.Info(ColorDGold, "unlock "+ob.Name)
	} else {
		m.ui.Info(ColorDGold, "lock "+ob.Name)
	}
	m.conn.Lock(ob.Tag)
}

// DragSelected starts dragging the selected item from x, y.
func (m *Manager) DragSelected(w *Widget, x, y int) {
	ob := w.Selected()
	if ob == nil {
		return
	}
	m.drag.Start(uint32(ob.Tag), x, y)
	m.drag.SetCallback(m.dragReleased)
}

// Apply applies the selected item.
func (m *Manager) Apply(w *Widget) {
	if w == nil {
		log.Printf("inventory: apply without a widget")
		return
	}
	ob := w.Selected()
	if ob == nil {
		return
	}
	m.ui.Info(ColorDGold, "apply "+ob.Name)
	m.conn.Apply(ob.Tag)
}
