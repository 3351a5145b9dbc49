package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDataDirPathRelativeToExecutable(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("dataDirPath uses user home on darwin")
	}
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}
	want := filepath.Join(filepath.Dir(exe), "data")
	if dataDirPath != want {
		t.Fatalf("dataDirPath = %q, want %q", dataDirPath, want)
	}
}

func TestUseDataDirOverride(t *testing.T) {
	orig := dataDirPath
	defer func() { dataDirPath = orig }()

	dir := filepath.Join(t.TempDir(), "custom", "data")
	if err := useDataDir(dir); err != nil {
		t.Fatalf("useDataDir: %v", err)
	}
	if dataDirPath != dir {
		t.Fatalf("dataDirPath = %q, want %q", dataDirPath, dir)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("data dir not created: %v", err)
	}
}

func TestUseDataDirRelative(t *testing.T) {
	orig := dataDirPath
	defer func() { dataDirPath = orig }()

	t.Chdir(t.TempDir())
	if err := useDataDir("rel"); err != nil {
		t.Fatalf("useDataDir: %v", err)
	}
	if !filepath.IsAbs(dataDirPath) || filepath.Base(dataDirPath) != "rel" {
		t.Fatalf("dataDirPath = %q, want an absolute path ending in rel", dataDirPath)
	}
}

func TestUseDataDirBlockedByFile(t *testing.T) {
	orig := dataDirPath
	defer func() { dataDirPath = orig }()

	file := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := useDataDir(filepath.Join(file, "data")); err == nil {
		t.Fatalf("data dir under a file accepted")
	}
	if dataDirPath != orig {
		t.Fatalf("dataDirPath changed on failure: %q", dataDirPath)
	}
}
