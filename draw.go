package main

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	dark "github.com/thiagokokada/dark-mode-go"

	"goatrinik/input"
	"goatrinik/inventory"
	"goatrinik/widget"
)

const (
	consoleLines  = 8
	lineHeight    = 15
	tooltipDelay  = 500 * time.Millisecond
	badgeSize     = 10
	overlayStroke = 2
)

type palette struct {
	background color.RGBA
	panel      color.RGBA
	grid       color.RGBA
	border     color.RGBA
	focus      color.RGBA
	text       color.RGBA
	warn       color.RGBA
	menu       color.RGBA
	menuText   color.RGBA
}

var darkPalette = palette{
	background: color.RGBA{0x18, 0x18, 0x1c, 0xff},
	panel:      color.RGBA{0x2a, 0x2a, 0x30, 0xff},
	grid:       color.RGBA{0x20, 0x20, 0x24, 0xff},
	border:     color.RGBA{0x50, 0x50, 0x58, 0xff},
	focus:      color.RGBA{0xd8, 0xb0, 0x40, 0xff},
	text:       color.RGBA{0xe8, 0xe8, 0xe8, 0xff},
	warn:       color.RGBA{0xf0, 0x40, 0x40, 0xff},
	menu:       color.RGBA{0x30, 0x30, 0x38, 0xff},
	menuText:   color.RGBA{0xf0, 0xf0, 0xf0, 0xff},
}

var lightPalette = palette{
	background: color.RGBA{0xe4, 0xe2, 0xdc, 0xff},
	panel:      color.RGBA{0xf6, 0xf4, 0xee, 0xff},
	grid:       color.RGBA{0xd8, 0xd6, 0xd0, 0xff},
	border:     color.RGBA{0x90, 0x8c, 0x84, 0xff},
	focus:      color.RGBA{0xb0, 0x70, 0x10, 0xff},
	text:       color.RGBA{0x18, 0x18, 0x18, 0xff},
	warn:       color.RGBA{0xc0, 0x10, 0x10, 0xff},
	menu:       color.RGBA{0xff, 0xff, 0xff, 0xff},
	menuText:   color.RGBA{0x10, 0x10, 0x10, 0xff},
}

var colors = darkPalette

// loadTheme picks the palette from the settings, following the desktop
// when no theme is set.
func loadTheme() {
	theme := gs.Theme
	if theme == "" {
		if isDark, err := dark.IsDarkMode(); err == nil && !isDark {
			theme = "light"
		} else {
			theme = "dark"
		}
	}
	if theme == "light" {
		colors = lightPalette
	} else {
		colors = darkPalette
	}
}

// messageColor maps console colors onto the palette.
func messageColor(c inventory.Color) color.Color {
	switch c {
	case inventory.ColorGreen:
		return color.RGBA{0x40, 0xc0, 0x40, 0xff}
	case inventory.ColorDGold:
		return color.RGBA{0xb8, 0x86, 0x0b, 0xff}
	case inventory.ColorHGold:
		return color.RGBA{0xff, 0xd7, 0x00, 0xff}
	case inventory.ColorRed:
		return colors.warn
	}
	return colors.text
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colors.background)
	if invManager == nil {
		return
	}
	if gameState < input.StatePlay {
		drawIntro(screen)
	} else {
		for _, w := range invManager.Widgets() {
			if !w.Hidden {
				drawInventory(screen, w)
			}
		}
		drawDragged(screen)
		drawTooltip(screen)
	}
	drawConsole(screen)
	if activeMenu != nil {
		drawMenu(screen, activeMenu)
	}

	if screenshotRequested {
		screenshotRequested = false
		saveScreenshot(screen)
	}
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, clr, false)
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(uint16(c.A) * uint16(a) / 0xff)}
}

func drawInventory(screen *ebiten.Image, w *inventory.Widget) {
	fr := w.Draw()
	origin := fr.Rect.Min

	fillRect(screen, fr.Rect, colors.panel)
	border := colors.border
	if fr.Focused {
		border = colors.focus
	}
	strokeRect(screen, fr.Rect, 1, border)
	fillRect(screen, fr.Background.Add(origin), colors.grid)

	for _, c := range fr.Cells {
		r := c.Rect.Add(origin)
		if c.Object != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
			screen.DrawImage(faceImage(c.Object.Face), op)
		}
		for _, ov := range c.Overlays {
			drawOverlay(screen, ov, r)
		}
		if c.Count != "" {
			drawText(screen, c.Count, smallFont, r.Min.X+2, r.Max.Y-smallFontSize-2, colors.text)
		}
	}

	drawScrollbar(screen, fr.Scrollbar, origin)
	if fr.Info != nil {
		drawInfo(screen, fr.Info, origin)
	}
}

// overlayColors are the badge colors of the state overlays.
var overlayColors = map[string]color.RGBA{
	inventory.TexApplied: {0x40, 0xc0, 0x40, 0xff},
	inventory.TexUnpaid:  {0xe0, 0xa0, 0x20, 0xff},
	inventory.TexLocked:  {0x80, 0x80, 0x90, 0xff},
	inventory.TexMagic:   {0x60, 0x80, 0xff, 0xff},
	inventory.TexCursed:  {0xc0, 0x30, 0xc0, 0xff},
	inventory.TexDamned:  {0xff, 0x20, 0x20, 0xff},
	inventory.TexTrapped: {0xff, 0x80, 0x00, 0xff},
}

// drawOverlay draws slot markers as borders and item states as small
// badges at their anchors.
func drawOverlay(screen *ebiten.Image, ov inventory.Overlay, r image.Rectangle) {
	switch ov.Texture {
	case inventory.TexSlotFocused:
		strokeRect(screen, r, overlayStroke, colors.focus)
		return
	case inventory.TexSlotUnfocused:
		strokeRect(screen, r, overlayStroke, colors.border)
		return
	case inventory.TexSlotMarked:
		strokeRect(screen, r.Inset(3), 1, colors.warn)
		return
	case inventory.TexSackStart, inventory.TexSackMiddle, inventory.TexSackEnd:
		drawSackMarker(screen, ov.Texture, r)
		return
	}

	clr, ok := overlayColors[ov.Texture]
	if !ok {
		return
	}
	var b image.Rectangle
	switch ov.Anchor {
	case inventory.AnchorFill:
		strokeRect(screen, r.Inset(1), 1, clr)
		return
	case inventory.AnchorBottomLeft:
		b = image.Rect(r.Min.X, r.Max.Y-badgeSize, r.Min.X+badgeSize, r.Max.Y)
	case inventory.AnchorBottomRight:
		b = image.Rect(r.Max.X-badgeSize, r.Max.Y-badgeSize, r.Max.X, r.Max.Y)
	case inventory.AnchorTopRight:
		b = image.Rect(r.Max.X-badgeSize, r.Min.Y, r.Max.X, r.Min.Y+badgeSize)
	case inventory.AnchorCenter:
		c := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
		b = image.Rect(c.X-badgeSize/2, c.Y-badgeSize/2, c.X+badgeSize/2, c.Y+badgeSize/2)
	}
	fillRect(screen, b, clr)
}

// drawSackMarker brackets the open container and its contents along the
// top and bottom slot edges.
func drawSackMarker(screen *ebiten.Image, tex string, r image.Rectangle) {
	clr := colors.focus
	fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), clr)
	fillRect(screen, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), clr)
	switch tex {
	case inventory.TexSackStart:
		fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), clr)
	case inventory.TexSackEnd:
		fillRect(screen, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), clr)
	}
}

func drawScrollbar(screen *ebiten.Image, sb widget.Scrollbar, origin image.Point) {
	r := sb.Rect().Add(origin)
	fillRect(screen, r, colors.background)
	up := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+sb.W)
	down := image.Rect(r.Min.X, r.Max.Y-sb.W, r.Max.X, r.Max.Y)
	fillRect(screen, up, colors.border)
	fillRect(screen, down, colors.border)
	fillRect(screen, sb.SliderRect().Add(origin).Inset(1), colors.border)
}

func drawInfo(screen *ebiten.Image, in *inventory.Info, origin image.Point) {
	box := in.Box.Add(origin)
	for i, l := range in.Lines {
		y := box.Min.Y + i*lineHeight
		if l.Centered {
			s := ""
			for _, sp := range l.Left {
				s += sp.Text
			}
			x := box.Min.X + (box.Dx()-textWidth(mainFontBold, s))/2
			drawText(screen, s, mainFontBold, x, y, withAlpha(colors.text, in.Alpha))
			continue
		}
		x := box.Min.X
		for _, sp := range l.Left {
			clr := colors.text
			if sp.Warn {
				clr = colors.warn
			}
			drawText(screen, sp.Text, smallFont, x, y, withAlpha(clr, in.Alpha))
			x += textWidth(smallFont, sp.Text)
		}
		if l.Right != "" {
			rx := box.Max.X - textWidth(smallFont, l.Right)
			drawText(screen, l.Right, smallFont, rx, y, withAlpha(colors.text, in.Alpha))
		}
	}
}

// drawDragged draws the dragged item's icon under the pointer.
func drawDragged(screen *ebiten.Image) {
	d := poller.Drag()
	if !d.Check() {
		return
	}
	ob := player.Find(inventory.Tag(d.Tag()))
	if ob == nil {
		return
	}
	x, y := ebiten.CursorPosition()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x-inventory.IconSize/2), float64(y-inventory.IconSize/2))
	op.ColorScale.ScaleAlpha(0.75)
	screen.DrawImage(faceImage(ob.Face), op)
}

// drawTooltip names the item under a pointer that has rested on it.
func drawTooltip(screen *ebiten.Image) {
	if activeMenu != nil || time.Since(tooltipSince) < tooltipDelay {
		return
	}
	x, y := poller.Cursor()
	for _, w := range invManager.Widgets() {
		if w.Hidden || !image.Pt(x, y).In(w.Rect()) {
			continue
		}
		ob, _ := w.ObjectAt(x, y)
		if ob == nil {
			return
		}
		label := ob.Name
		if ob.Nrof > 1 {
			label = fmt.Sprintf("%d %s", ob.Nrof, ob.Name)
		}
		tw := textWidth(mainFont, label)
		r := image.Rect(x+12, y+12, x+12+tw+8, y+12+lineHeight+4)
		fillRect(screen, r, colors.menu)
		strokeRect(screen, r, 1, colors.border)
		drawText(screen, label, mainFont, r.Min.X+4, r.Min.Y+2, colors.menuText)
		return
	}
}

func drawConsole(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	rows := consoleRows(consoleLog.Last(consoleLines), float64(w-16))
	y := h - 6 - (consoleLines+1)*lineHeight
	for _, row := range rows {
		drawText(screen, row.Text, mainFont, 8, y, messageColor(row.Color))
		y += lineHeight
	}
	if !entry.Active() {
		return
	}
	line := "> " + entry.Text() + "_"
	if entry.mode == entryQuantity {
		line = entry.title + " " + entry.Text() + "_"
	}
	r := image.Rect(4, h-lineHeight-8, w-4, h-4)
	fillRect(screen, r, colors.panel)
	strokeRect(screen, r, 1, colors.focus)
	drawText(screen, line, mainFont, r.Min.X+4, r.Min.Y+2, colors.text)
}

// consoleRows wraps messages to width and keeps the newest consoleLines
// rows.
func consoleRows(msgs []timedMessage, width float64) []timedMessage {
	var rows []timedMessage
	for _, m := range msgs {
		for _, l := range wrapText(m.Text, mainFont, width) {
			rows = append(rows, timedMessage{Text: l, Color: m.Color, Time: m.Time})
		}
	}
	if len(rows) > consoleLines {
		rows = rows[len(rows)-consoleLines:]
	}
	return rows
}

func drawMenu(screen *ebiten.Image, m *widget.Menu) {
	r := m.Rect()
	fillRect(screen, r, colors.menu)
	strokeRect(screen, r, 1, colors.border)
	x, y := poller.Cursor()
	hover := m.ItemAt(x, y)
	for i, it := range m.Items {
		row := image.Rect(r.Min.X, r.Min.Y+i*widget.MenuItemHeight, r.Max.X, r.Min.Y+(i+1)*widget.MenuItemHeight)
		if i == hover {
			fillRect(screen, row, withAlpha(colors.focus, 0x60))
		}
		drawText(screen, it.Text(), mainFont, row.Min.X+6, row.Min.Y+1, colors.menuText)
	}
	if m.Sub != nil {
		drawMenu(screen, m.Sub)
	}
}

func drawIntro(screen *ebiten.Image) {
	b := screen.Bounds()
	msg := "Connecting..."
	switch {
	case gameState == input.StateConnect && world == nil:
		msg = "No server transport is available. Start with -fake to use the local world."
	case gameState == input.StateWaitForPlay:
		msg = "Press any key to start."
	}
	x := (b.Dx() - textWidth(mainFontBold, "goatrinik")) / 2
	drawText(screen, "goatrinik", mainFontBold, x, b.Dy()/2-lineHeight*2, colors.focus)
	x = (b.Dx() - textWidth(mainFont, msg)) / 2
	drawText(screen, msg, mainFont, x, b.Dy()/2, colors.text)
}
