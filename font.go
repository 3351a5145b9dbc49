package main

import (
	"bytes"
	"log"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	mainFontSize  = 12
	smallFontSize = 10
)

var mainFont, mainFontBold, smallFont text.Face

func initFont() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	mainFont = &text.GoTextFace{Source: regular, Size: mainFontSize}
	smallFont = &text.GoTextFace{Source: regular, Size: smallFontSize}

	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	mainFontBold = &text.GoTextFace{Source: bold, Size: mainFontSize}
}

// textWidth is the advance of s in face, rounded down to whole pixels.
func textWidth(face text.Face, s string) int {
	w, _ := text.Measure(s, face, 0)
	return int(w)
}
