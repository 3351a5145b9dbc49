package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// dataDirPath holds the directory with settings, sounds and screenshots. On
// macOS it lives in the user's Library; elsewhere it sits next to the
// executable so the client works regardless of the current directory. The
// -data flag overrides it.
var dataDirPath = func() string {
	if runtime.GOOS == "darwin" {
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, "Library", "Application Support", "goatrinik")
			_ = os.MkdirAll(dir, 0o755)
			return dir
		}
	}
	if exe, err := os.Executable(); err == nil {
		if dir, err := filepath.Abs(filepath.Dir(exe)); err == nil {
			return filepath.Join(dir, "data")
		}
	}
	return "data"
}()

// useDataDir points dataDirPath at dir, as given to -data, creating it if
// needed.
func useDataDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("data dir %v: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("data dir %v: %w", abs, err)
	}
	dataDirPath = abs
	return nil
}
