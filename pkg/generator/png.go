// png.go - PNG stream encoder and file writer.
package generator

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/klauspost/compress/zlib"
)

// IHDR constants. Compression, filter and interlace methods are all 0.
const (
	bitDepth      = 8
	colorTypeRGBA = 6
	filterNone    = 0
)

// compressionLevel is the zlib effort for the IDAT stream.
const compressionLevel = zlib.BestCompression

// writePNG encodes img to a PNG file at the given path.
func writePNG(output string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	Logger().Info("wrote PNG", "path", output, "bytes", len(data))
	return nil
}

// EncodePNG returns the complete PNG byte stream for img: signature, IHDR,
// IDAT and IEND. The output depends only on the pixels, so encoding the same
// image twice yields identical bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("encode PNG: nil image")
	}
	src := toNRGBA(img)

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("encode PNG: invalid dimensions %dx%d", w, h)
	}

	raw := scanlines(src)
	idat, err := deflate(raw)
	if err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(pngSignature) + 3*chunkOverhead + ihdrLen + len(idat))
	buf.Write(pngSignature)
	writeChunk(&buf, "IHDR", ihdr(w, h))
	writeChunk(&buf, "IDAT", idat)
	writeChunk(&buf, "IEND", nil)

	Logger().Debug("encoded PNG",
		"width", w, "height", h,
		"raw", len(raw), "idat", len(idat), "total", buf.Len())
	return buf.Bytes(), nil
}

const ihdrLen = 13

// ihdr builds the 13-byte header payload for 8-bit truecolor with alpha.
func ihdr(w, h int) []byte {
	p := make([]byte, ihdrLen)
	binary.BigEndian.PutUint32(p[0:4], uint32(w))
	binary.BigEndian.PutUint32(p[4:8], uint32(h))
	p[8] = bitDepth
	p[9] = colorTypeRGBA
	return p
}

// scanlines lays out each row as a filter-type byte (always none) followed
// by the row's RGBA bytes.
func scanlines(img *image.NRGBA) []byte {
	b := img.Bounds()
	rowLen := 4 * b.Dx()
	raw := make([]byte, 0, (1+rowLen)*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		raw = append(raw, filterNone)
		raw = append(raw, img.Pix[off:off+rowLen]...)
	}
	return raw
}

// deflate compresses raw into a zlib stream at compressionLevel.
func deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, compressionLevel)
	if err != nil {
		return nil, fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, fmt.Errorf("deflate scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flush zlib stream: %w", err)
	}
	return buf.Bytes(), nil
}
