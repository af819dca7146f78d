// icongen - Renders the pgshift application icon.
//
// Usage:
//
//	icongen
//
// Run from the repository root. Writes a 512×512 RGBA PNG to
// src-tauri/icons/icon.png; the directory must already exist.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pgshift/icongen/pkg/generator"
	"github.com/pgshift/icongen/pkg/icon"
)

const outputPath = "src-tauri/icons/icon.png"

func main() {
	generator.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(outputPath, os.Stdout); err != nil {
		fatal(err)
	}
}

func run(output string, stdout io.Writer) error {
	img := icon.Synthesize(icon.Size)
	if err := generator.Generate(output, img); err != nil {
		return fmt.Errorf("generate icon: %w", err)
	}
	fmt.Fprintf(stdout, "Created %dx%d pgshift icon\n", icon.Size, icon.Size)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
