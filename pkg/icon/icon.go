// Package icon synthesizes the pgshift application icon: two stacked
// cylinders with a red arrow between them, drawn on a round gradient badge
// whose rim fades out to transparency.
//
// Rendering is a closed-form function of each pixel's coordinates. Shapes are
// tested with hard boolean comparisons in a fixed order and the last shape to
// match wins; nothing is blended or antialiased except the rim fade.
package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// Size is the side length of the application icon in pixels.
const Size = 512

// Badge radii in normalized units.
const (
	badgeRadius = 0.85
	fadeRadius  = 0.9
	rimWidth    = fadeRadius - badgeRadius
)

// Synthesize renders a size×size icon. Two calls with the same size return
// identical pixels.
func Synthesize(size int) *image.NRGBA {
	size = max(size, 0)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, Pixel(x, y, size))
		}
	}
	return img
}

// Pixel computes the color of pixel (x, y) on a size×size canvas.
// The result is non-premultiplied: rim pixels carry scaled color and alpha.
func Pixel(x, y, size int) color.NRGBA {
	p := normalize(x, y, size)
	d := dist(p)

	switch {
	case d >= fadeRadius:
		return color.NRGBA{}
	case d >= badgeRadius:
		return rim(d)
	}
	return interior(p, gradient(y, size))
}

// normalize maps pixel coordinates onto [-1, 1) around the canvas center.
func normalize(x, y, size int) f64.Vec2 {
	half := float64(size) / 2
	return f64.Vec2{
		(float64(x) - half) / half,
		(float64(y) - half) / half,
	}
}

// dist is the distance of p from the canvas center.
func dist(p f64.Vec2) float64 {
	// Explicit float64 conversions keep the compiler from fusing the
	// multiply-add, so every GOARCH rounds identically.
	return math.Sqrt(float64(p[0]*p[0]) + float64(p[1]*p[1]))
}

// rim shades the fading ring between badgeRadius and fadeRadius.
// Color and alpha both scale with the fade factor.
func rim(d float64) color.NRGBA {
	af := (fadeRadius - d) / rimWidth
	return scaled(rimColor, af, channel(255*af))
}

// gradient is the badge background for row y: a vertical ramp from dark
// indigo at the top to violet at the bottom.
func gradient(y, size int) color.NRGBA {
	g := float64(y) / float64(size)
	return color.NRGBA{
		R: channel(30 + float64(g*40)),
		G: channel(20 + float64(g*30)),
		B: channel(80 + float64(g*80)),
		A: 255,
	}
}
