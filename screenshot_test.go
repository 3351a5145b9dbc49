package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTakeScreenshot(t *testing.T) {
	resetClient(t)
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})

	fn, err := takeScreenshot(img)
	if err != nil {
		t.Fatalf("takeScreenshot: %v", err)
	}
	if filepath.Dir(fn) != filepath.Join(dataDirPath, "Screenshots") {
		t.Fatalf("written to %v", fn)
	}
	if !strings.HasPrefix(filepath.Base(fn), "goatrinik__") || filepath.Ext(fn) != ".png" {
		t.Fatalf("name = %v", filepath.Base(fn))
	}

	f, err := os.Open(fn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if r, _, _, _ := got.At(1, 1).RGBA(); r != 0xffff {
		t.Fatalf("pixel not preserved")
	}
}

func TestSaveScreenshotReports(t *testing.T) {
	resetClient(t)
	saveScreenshot(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	texts := consoleTexts()
	if len(texts) != 1 || !strings.HasPrefix(texts[0], "snapshot taken: goatrinik__") {
		t.Fatalf("console = %q", texts)
	}
}
