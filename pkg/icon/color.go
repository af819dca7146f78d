// color.go - Icon palette and channel arithmetic.
package icon

import (
	"image/color"

	"golang.org/x/image/math/f64"
)

// Shaded colors are kept as float triples and scaled per pixel.
var (
	rimColor        = f64.Vec3{100, 80, 180}
	topBodyColor    = f64.Vec3{40, 180, 100}
	bottomBodyColor = f64.Vec3{60, 140, 220}
)

// Flat colors.
var (
	topCapColor    = color.NRGBA{R: 60, G: 220, B: 130, A: 255}
	bottomCapColor = color.NRGBA{R: 80, G: 170, B: 255, A: 255}
	arrowColor     = color.NRGBA{R: 255, G: 100, B: 100, A: 255}
)

// scaled multiplies each channel of c by f and attaches alpha a.
func scaled(c f64.Vec3, f float64, a uint8) color.NRGBA {
	return color.NRGBA{
		R: channel(c[0] * f),
		G: channel(c[1] * f),
		B: channel(c[2] * f),
		A: a,
	}
}

// channel truncates v toward zero and clamps it to a byte.
func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
