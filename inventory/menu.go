package inventory

import (
	"image"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"goatrinik/input"
	"goatrinik/widget"
)

var (
	titleCaser = cases.Title(language.AmericanEnglish)
	foldCaser  = cases.Fold()
)

// Menu labels.
const (
	LabelDrop          = "Drop"
	LabelGet           = "Get"
	LabelGetAll        = "Get all"
	LabelExamine       = "Examine"
	LabelPatch         = "Patch"
	LabelLoadToConsole = "Load to console"
	LabelMore          = "More  >"
	LabelFilters       = "Inventory Filters  >"
	LabelDropAll       = "Drop all"
	LabelMark          = "Mark"
	LabelLock          = "Lock"
	LabelDrag          = "Drag"
	LabelFilterAll     = "All"
)

func (m *Manager) action(w *Widget, fn func(*Widget)) func(*widget.MenuItem, input.Event) {
	return func(*widget.MenuItem, input.Event) { fn(w) }
}

// OpenMenu builds the context menu for a right click at ev. Over the item
// grid it offers item actions and selects the clicked item; elsewhere it
// offers the widget entries and, in the main inventory, the filters.
func (w *Widget) OpenMenu(ev input.Event) *widget.Menu {
	m := w.m
	menu := widget.NewMenu(ev.X, ev.Y)

	if !image.Pt(ev.X, ev.Y).In(w.GridRect()) {
		if m.StandardItems != nil {
			m.StandardItems(w, menu)
		}
		if w.Display == DisplayMain {
			menu.AddSubmenu(LabelFilters, m.buildFilterMenu)
		}
		return menu
	}

	if w.Display == DisplayMain {
		menu.Add(LabelDrop, widget.ItemNormal, false, m.action(w, m.Drop))
	}
	menu.Add(LabelGet, widget.ItemNormal, false, m.action(w, m.Get))
	if w.Display == DisplayBelow {
		menu.Add(LabelGetAll, widget.ItemNormal, false, m.action(w, m.GetAll))
	}
	menu.Add(LabelExamine, widget.ItemNormal, false, m.action(w, m.Examine))
	if m.opts.Operator() {
		menu.Add(LabelPatch, widget.ItemNormal, false, m.action(w, m.Patch))
		menu.Add(LabelLoadToConsole, widget.ItemNormal, false, m.action(w, m.LoadToConsole))
	}
	if w.Display == DisplayMain {
		menu.AddSubmenu(LabelMore, func(sub *widget.Menu) { m.buildMoreMenu(w, sub) })
	}

	// Let the click select the item the menu is for.
	w.HandleEvent(ev)
	return menu
}

func (m *Manager) buildMoreMenu(w *Widget, sub *widget.Menu) {
	sub.Add(LabelDropAll, widget.ItemNormal, false, m.action(w, m.DropAll))
	sub.Add(LabelMark, widget.ItemNormal, false, m.action(w, m.Mark))
	sub.Add(LabelLock, widget.ItemNormal, false, m.action(w, m.Lock))
	sub.Add(LabelDrag, widget.ItemNormal, false, func(_ *widget.MenuItem, ev input.Event) {
		m.DragSelected(w, ev.X, ev.Y)
	})
}

func (m *Manager) buildFilterMenu(sub *widget.Menu) {
	sub.Add(LabelFilterAll, widget.ItemCheckbox, m.Filter == FilterAll, m.filterItem)
	for i, name := range FilterNames {
		sub.Add(titleCaser.String(name), widget.ItemCheckbox, m.Filter&(1<<i) != 0, m.filterItem)
	}
}

// filterItem applies the filter named by a filter menu entry.
func (m *Manager) filterItem(it *widget.MenuItem, _ input.Event) {
	label := foldCaser.String(it.Label)
	if label == foldCaser.String(LabelFilterAll) {
		m.FilterSet(FilterAll)
		return
	}
	for i, name := range FilterNames {
		if label == foldCaser.String(name) {
			m.FilterToggle(1 << i)
			return
		}
	}
}
