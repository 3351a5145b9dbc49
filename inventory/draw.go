package inventory

import (
	"fmt"
	"image"

	"github.com/dustin/go-humanize"

	"goatrinik/input"
	"goatrinik/widget"
)

// Anchor places an overlay icon within an inventory slot.
type Anchor int

const (
	AnchorFill Anchor = iota
	AnchorBottomLeft
	AnchorBottomRight
	AnchorTopRight
	AnchorCenter
)

// Overlay textures drawn on top of item icons.
const (
	TexSlotFocused   = "invslot"
	TexSlotUnfocused = "invslot_u"
	TexSlotMarked    = "invslot_marked"
	TexSackStart     = "cmark_start"
	TexSackMiddle    = "cmark_middle"
	TexSackEnd       = "cmark_end"
	TexApplied       = "apply"
	TexUnpaid        = "unpaid"
	TexLocked        = "lock"
	TexMagic         = "magic"
	TexCursed        = "cursed"
	TexDamned        = "damned"
	TexTrapped       = "trapped"
)

// Overlay is a texture drawn over a slot at an anchor.
type Overlay struct {
	Texture string
	Anchor  Anchor
}

// Cell is one rendered slot. Rect is relative to the widget.
type Cell struct {
	Index    int
	Rect     image.Rectangle
	Object   *Object
	Count    string
	Overlays []Overlay
}

// Span is a run of text; Warn runs are drawn in red.
type Span struct {
	Text string
	Warn bool
}

// Line is one line of the selection description. Centered lines use only
// Left; otherwise Right is drawn flush right.
type Line struct {
	Centered bool
	Left     []Span
	Right    string
}

// Info describes the selected object above the grid.
type Info struct {
	Alpha uint8
	Box   image.Rectangle
	Lines []Line
}

// Text flattens the info into plain lines.
func (in *Info) Text() []string {
	out := make([]string, 0, len(in.Lines))
	for _, l := range in.Lines {
		s := ""
		for _, sp := range l.Left {
			s += sp.Text
		}
		if l.Right != "" {
			s += " | " + l.Right
		}
		out = append(out, s)
	}
	return out
}

// Frame is everything needed to draw an inventory widget.
type Frame struct {
	Rect       image.Rectangle
	Background image.Rectangle
	Focused    bool
	Cells      []Cell
	Info       *Info
	Scrollbar  widget.Scrollbar
}

// countText is the stack size drawn under an icon, or "" for single items.
func countText(nrof uint32) string {
	switch {
	case nrof <= 1:
		return ""
	case nrof > 9999:
		return "many"
	}
	return fmt.Sprint(nrof)
}

func kg(v float64) string {
	return humanize.FormatFloat("#,###.###", v) + " kg"
}

// objectOverlays returns the state icons for an item in draw order.
func objectOverlays(ob *Object) []Overlay {
	var out []Overlay
	if ob.HasAny(FlagApplied) {
		out = append(out, Overlay{TexApplied, AnchorFill})
	} else if ob.HasAny(FlagUnpaid) {
		out = append(out, Overlay{TexUnpaid, AnchorFill})
	}
	if ob.HasAny(FlagLocked) {
		out = append(out, Overlay{TexLocked, AnchorBottomLeft})
	}
	if ob.HasAny(FlagMagical) {
		out = append(out, Overlay{TexMagic, AnchorBottomRight})
	}
	if ob.HasAny(FlagDamned) {
		out = append(out, Overlay{TexDamned, AnchorTopRight})
	} else if ob.HasAny(FlagCursed) {
		out = append(out, Overlay{TexCursed, AnchorTopRight})
	}
	if ob.HasAny(FlagTrapped) {
		out = append(out, Overlay{TexTrapped, AnchorCenter})
	}
	return out
}

// Draw lays the widget out and returns what to draw. In the main inventory
// it also recomputes the carried weight of the shown items.
func (w *Widget) Draw() Frame {
	w.layout()
	p := w.m.Player

	if w.Display == DisplayMain && p.Ob != nil {
		p.RealWeight = 0
		for _, ob := range p.Ob.Inv {
			if matches(p, ob, w.m.Filter) {
				p.RealWeight += ob.TotalWeight()
			}
		}
	}

	w.HandleArrowKey(input.KeyUnknown)

	fr := Frame{
		Rect:       w.Rect(),
		Background: image.Rect(w.gx-1, w.gy-1, w.gx-1+w.gw+2+w.scroll.W, w.gy-1+w.gh+2),
		Focused:    w.Focused(),
		Scrollbar:  w.scroll,
	}

	w.each(func(i int, ob *Object) bool {
		r, ok := w.cellRect(i)
		if !ok {
			return true
		}
		c := Cell{Index: i, Rect: r, Object: ob, Count: countText(ob.Nrof)}
		c.Overlays = objectOverlays(ob)
		if i == w.selected {
			tex := TexSlotUnfocused
			if fr.Focused {
				tex = TexSlotFocused
			}
			c.Overlays = append(c.Overlays, Overlay{tex, AnchorFill})
		}
		if ob.Tag != 0 && ob.Tag == p.MarkCount {
			c.Overlays = append(c.Overlays, Overlay{TexSlotMarked, AnchorFill})
		}
		if ob == p.Sack {
			c.Overlays = append(c.Overlays, Overlay{TexSackStart, AnchorFill})
		} else if p.Sack != nil && ob.Env == p.Sack {
			if ob.last() {
				c.Overlays = append(c.Overlays, Overlay{TexSackEnd, AnchorFill})
			} else {
				c.Overlays = append(c.Overlays, Overlay{TexSackMiddle, AnchorFill})
			}
		}
		fr.Cells = append(fr.Cells, c)
		if i == w.selected {
			fr.Info = w.info(ob, fr.Focused)
		}
		return true
	})

	w.Redraw = false
	return fr
}

// info builds the description of the selected object.
func (w *Widget) info(ob *Object, focused bool) *Info {
	p := w.m.Player
	in := &Info{
		Alpha: 255,
		Box:   image.Rect(4, 2, 4+w.W-4*2, 2+w.H-w.gh-2*2),
	}
	if !focused {
		in.Alpha /= 2
	}

	name := ob.Name
	if ob.Nrof > 1 {
		name = fmt.Sprintf("%d %s", ob.Nrof, ob.Name)
	}
	in.Lines = append(in.Lines, Line{Centered: true, Left: []Span{{Text: name}}})

	if w.Display != DisplayMain {
		return in
	}

	var detail []Span
	if !ob.Identified() {
		detail = append(detail, Span{Text: "not identified", Warn: true})
	} else {
		detail = append(detail, Span{Text: fmt.Sprintf("Con: %d/%d", ob.Condition, ob.Quality)})
		if ob.Level != 0 {
			level, req := p.requiredLevel(ob)
			detail = append(detail, Span{Text: " "}, Span{Text: req, Warn: ob.Level > level})
		}
	}
	in.Lines = append(in.Lines,
		Line{Left: detail, Right: kg(ob.TotalWeight())},
		Line{
			Left:  []Span{{Text: "Showing: " + w.m.Filter.Label()}},
			Right: fmt.Sprintf("Carrying: %s/%s", humanize.FormatFloat("#,###.###", p.RealWeight), kg(p.WeightLimit)),
		},
	)
	return in
}
