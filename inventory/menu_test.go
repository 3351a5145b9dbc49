package inventory

import (
	"reflect"
	"testing"

	"goatrinik/input"
	"goatrinik/widget"
)

func TestItemMenuMain(t *testing.T) {
	f := newFixture(3, 0)
	x, y := cellCenter(f.m.Main, 1)
	if !f.m.HandleEvent(press(input.ButtonRight, x, y)) {
		t.Fatalf("right click not consumed")
	}
	if f.ui.menu == nil {
		t.Fatalf("no menu shown")
	}
	want := []string{LabelDrop, LabelGet, LabelExamine, LabelMore}
	if got := f.ui.menu.Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("labels %q, want %q", got, want)
	}
	if f.m.Main.SelectedIndex() != 1 {
		t.Fatalf("right click should select the item, got %d", f.m.Main.SelectedIndex())
	}
	if f.drag.Tag() != 0 {
		t.Fatalf("right click started a drag")
	}

	more := f.ui.menu.Open(LabelMore)
	want = []string{LabelDropAll, LabelMark, LabelLock, LabelDrag}
	if got := more.Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("more labels %q", got)
	}
}

func TestItemMenuOperator(t *testing.T) {
	f := newFixture(0, 2)
	f.opts.operator = true
	x, y := cellCenter(f.m.Below, 0)
	f.m.HandleEvent(press(input.ButtonRight, x, y))
	want := []string{LabelGet, LabelGetAll, LabelExamine, LabelPatch, LabelLoadToConsole}
	if got := f.ui.menu.Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("labels %q, want %q", got, want)
	}
}

func TestMenuActionsRun(t *testing.T) {
	f := newFixture(3, 0)
	f.opts.operator = true
	x, y := cellCenter(f.m.Main, 2)
	menu := f.m.Main.OpenMenu(press(input.ButtonRight, x, y))

	menu.Find(LabelExamine).Action(nil, input.Event{})
	if got := f.conn.last(); got.op != "examine" || got.tag != 12 {
		t.Fatalf("examine sent %+v", got)
	}
	menu.Find(LabelPatch).Action(nil, input.Event{})
	if f.ui.console != "/patch #12 " {
		t.Fatalf("console %q", f.ui.console)
	}
	menu.Find(LabelLoadToConsole).Action(nil, input.Event{})
	if got := f.conn.commands[len(f.conn.commands)-1]; got != "/console noinf::obj = find_obj(me, count = 12)" {
		t.Fatalf("command %q", got)
	}

	more := menu.Open(LabelMore)
	more.Find(LabelDrag).Action(nil, input.Event{X: 40, Y: 50})
	if f.drag.Tag() != 12 || f.drag.x != 40 || f.drag.y != 50 || f.drag.callback == nil {
		t.Fatalf("drag from menu: %+v", f.drag)
	}
}

func TestBackgroundMenu(t *testing.T) {
	f := newFixture(3, 1)
	f.m.StandardItems = func(w *Widget, m *widget.Menu) {
		m.Add("Move", widget.ItemNormal, false, nil)
	}
	f.m.ScreenSize = func() (int, int) { return 800, 600 }

	f.m.HandleEvent(press(input.ButtonRight, 20, 10))
	want := []string{"Move", LabelFilters}
	if got := f.ui.menu.Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("labels %q, want %q", got, want)
	}

	f.m.HandleEvent(press(input.ButtonRight, 140, 302))
	if got := f.ui.menu.Labels(); !reflect.DeepEqual(got, []string{"Move"}) {
		t.Fatalf("below background labels %q", got)
	}
}

func TestFilterMenu(t *testing.T) {
	f := newFixture(3, 0)
	f.p.Ob.Inv[0].Flags = FlagMagical
	f.m.Filter = FilterCursed

	menu := f.m.Main.OpenMenu(press(input.ButtonRight, 20, 10))
	sub := menu.Open(LabelFilters)
	want := []string{"All", "Applied", "Container", "Magical", "Cursed", "Unidentified", "Unapplied", "Locked"}
	if got := sub.Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("filter labels %q", got)
	}
	if sub.Find("All").Checked || !sub.Find("Cursed").Checked || sub.Find("Magical").Checked {
		t.Fatalf("checkbox state does not follow the filter")
	}

	it := sub.Find("Magical")
	it.Action(it, input.Event{})
	if f.m.Filter != FilterCursed|FilterMagical {
		t.Fatalf("filter %b", f.m.Filter)
	}
	if f.m.Main.NumItems() != 1 {
		t.Fatalf("filtered items %d", f.m.Main.NumItems())
	}

	all := sub.Find("All")
	all.Action(all, input.Event{})
	if f.m.Filter != FilterAll {
		t.Fatalf("all did not reset: %b", f.m.Filter)
	}
}

func TestMenuNotOpenedDuringDrag(t *testing.T) {
	f := newFixture(3, 0)
	x, y := cellCenter(f.m.Main, 0)
	f.m.HandleEvent(press(input.ButtonLeft, x, y))
	f.drag.mx += 10
	f.m.HandleEvent(press(input.ButtonRight, x+10, y))
	if f.ui.menu != nil {
		t.Fatalf("menu opened while dragging")
	}
}
