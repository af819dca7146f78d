// color.go - Conversion of arbitrary images to non-premultiplied RGBA.
package generator

import "image"

// toNRGBA returns img as *image.NRGBA, converting through color.NRGBAModel
// when it is some other image type. An *image.NRGBA is returned as is.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}

	b := img.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, img.At(x, y))
		}
	}
	return dst
}
