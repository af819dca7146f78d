// Package generator encodes rendered images as PNG files.
//
// The encoder writes the stream by hand: an 8-byte signature followed by
// IHDR, a single IDAT holding the zlib-compressed unfiltered scanlines, and
// IEND. Pixels are stored as 8-bit non-premultiplied RGBA, so the bytes in
// the file are exactly the bytes of the source *image.NRGBA.
package generator

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
)

// Generate encodes img and writes it to output. The format is inferred from
// the file extension; only ".png" is supported.
//
// The whole stream is encoded in memory before the file is touched. The
// parent directory must already exist.
func Generate(output string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return writePNG(output, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png", ext)
	}
}

// GenerateToWriter writes the encoded image to w. The format is specified by
// ext and, as with Generate, must be ".png".
func GenerateToWriter(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		data, err := EncodePNG(img)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write PNG: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use .png", ext)
	}
}
