package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src-tauri", "icons")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "icon.png")

	var stdout bytes.Buffer
	if err := run(out, &stdout); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := stdout.String(), "Created 512x512 pgshift icon\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}

	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(first))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 512 || cfg.Height != 512 {
		t.Errorf("size = %dx%d, want 512x512", cfg.Width, cfg.Height)
	}

	if err := run(out, &stdout); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two runs produced different files")
	}
}

func TestRunMissingDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "src-tauri", "icons", "icon.png")

	var stdout bytes.Buffer
	err := run(out, &stdout)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing on failure", stdout.String())
	}
}
