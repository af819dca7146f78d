// shapes.go - Cylinder, connector and arrow membership tests.
package icon

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// cylinder is a rectangle body closed by an elliptical cap on its upper and
// lower edge. All lengths are in normalized units.
type cylinder struct {
	center f64.Vec2
	halfW  float64 // body half-width and cap semi-major axis
	halfH  float64 // body half-height
	capH   float64 // cap semi-minor axis
}

// shadeDepth is how much a cylinder darkens from its axis to its edge.
const shadeDepth = 0.3

var (
	topCylinder    = cylinder{center: f64.Vec2{0, -0.25}, halfW: 0.5, halfH: 0.25, capH: 0.08}
	bottomCylinder = cylinder{center: f64.Vec2{0, 0.25}, halfW: 0.5, halfH: 0.25, capH: 0.08}
)

// Connector and arrow geometry.
const (
	connectorHalfW = 0.08
	connectorGap   = 0.05

	arrowDrop     = 0.08 // anchor height above the bottom cylinder's body
	arrowRise     = 0.08 // band extends this far above the anchor
	arrowReach    = 0.05 // and this far below it
	arrowSpan     = arrowRise + arrowReach
	arrowHalfBase = 0.15
)

func (c cylinder) body(p f64.Vec2) bool {
	return math.Abs(p[0]-c.center[0]) < c.halfW && math.Abs(p[1]-c.center[1]) < c.halfH
}

func (c cylinder) upperCap(p f64.Vec2) bool {
	return c.inEllipse(p[0]-c.center[0], p[1]-c.center[1]+c.halfH)
}

func (c cylinder) lowerCap(p f64.Vec2) bool {
	return c.inEllipse(p[0]-c.center[0], p[1]-c.center[1]-c.halfH)
}

// inEllipse reports whether offset (dx, dy) from a cap center lies inside
// the cap.
func (c cylinder) inEllipse(dx, dy float64) bool {
	ex := dx / c.halfW
	ey := dy / c.capH
	return float64(ex*ex)+float64(ey*ey) < 1
}

func (c cylinder) contains(p f64.Vec2) bool {
	return c.body(p) || c.upperCap(p) || c.lowerCap(p)
}

// shade is 1 on the cylinder's axis and falls linearly to 1-shadeDepth at
// its sides.
func (c cylinder) shade(p f64.Vec2) float64 {
	return 1 - float64(math.Abs(p[0]-c.center[0])/c.halfW*shadeDepth)
}

// interior paints the shapes over base. The order is fixed: top cylinder,
// bottom cylinder, connector, arrow. A later match overwrites an earlier one.
func interior(p f64.Vec2, base color.NRGBA) color.NRGBA {
	c := base

	if topCylinder.contains(p) {
		c = scaled(topBodyColor, topCylinder.shade(p), 255)
		if topCylinder.upperCap(p) {
			c = topCapColor
		}
	}

	if bottomCylinder.contains(p) {
		c = scaled(bottomBodyColor, bottomCylinder.shade(p), 255)
		if bottomCylinder.upperCap(p) {
			c = bottomCapColor
		}
	}

	if inConnector(p) {
		c = arrowColor
	}
	if inArrow(p) {
		c = arrowColor
	}
	return c
}

// inConnector tests the vertical bar spanning the gap between the cylinders'
// facing edges. With the stock geometry the edges touch, the lower bound
// exceeds the upper one, and the bar is empty.
func inConnector(p f64.Vec2) bool {
	lo := topCylinder.center[1] + topCylinder.halfH + connectorGap
	hi := bottomCylinder.center[1] - bottomCylinder.halfH - connectorGap
	return math.Abs(p[0]) < connectorHalfW && p[1] > lo && p[1] < hi
}

// inArrow tests the downward-pointing arrowhead above the bottom cylinder.
// Its half-width tapers linearly from arrowHalfBase to zero across the band.
func inArrow(p f64.Vec2) bool {
	anchor := bottomCylinder.center[1] - bottomCylinder.halfH - arrowDrop
	if p[1] <= anchor-arrowRise || p[1] >= anchor+arrowReach {
		return false
	}
	w := arrowHalfBase * (1 - (p[1]-anchor+arrowRise)/arrowSpan)
	return math.Abs(p[0]) < w
}
