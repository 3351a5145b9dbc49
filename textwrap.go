package main

import (
	"strings"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

func measureWidth(s string, face text.Face) float64 {
	w, _ := text.Measure(s, face, 0)
	return w
}

// wrapText breaks s into lines no wider than maxWidth. Words stay whole
// unless a single word is too wide, and runs of spaces are kept.
func wrapText(s string, face text.Face, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var cur strings.Builder
		width := 0.0
		flush := func() {
			lines = append(lines, cur.String())
			cur.Reset()
			width = 0
		}
		for _, tok := range strings.SplitAfter(para, " ") {
			if tok == "" {
				continue
			}
			w := measureWidth(tok, face)
			if width+w <= maxWidth {
				cur.WriteString(tok)
				width += w
				continue
			}
			if cur.Len() > 0 {
				flush()
			}
			if w <= maxWidth {
				cur.WriteString(tok)
				width = w
				continue
			}
			for _, r := range tok {
				rw := measureWidth(string(r), face)
				if width+rw > maxWidth && cur.Len() > 0 {
					flush()
				}
				cur.WriteRune(r)
				width += rw
			}
		}
		lines = append(lines, cur.String())
	}
	return lines
}
