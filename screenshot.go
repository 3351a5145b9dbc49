package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// takeScreenshot writes img as a PNG into the Screenshots directory and
// returns the file path.
func takeScreenshot(img image.Image) (string, error) {
	dir := filepath.Join(dataDirPath, "Screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %v: %w", dir, err)
	}
	ts := time.Now().Format("2006-01-02-15-04-05")
	fn := filepath.Join(dir, fmt.Sprintf("goatrinik__%s.png", ts))
	f, err := os.Create(fn)
	if err != nil {
		return "", fmt.Errorf("create %v: %w", fn, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode %v: %w", fn, err)
	}
	return fn, nil
}

// saveScreenshot is the Print key path: errors go to the log, success to
// the console.
func saveScreenshot(img image.Image) {
	fn, err := takeScreenshot(img)
	if err != nil {
		logError("screenshot: %v", err)
		return
	}
	consoleMessage(fmt.Sprintf("snapshot taken: %s", filepath.Base(fn)))
}
