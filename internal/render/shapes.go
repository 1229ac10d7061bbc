package render

import (
	"image/color"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/paint/internal/scene"
)

// Antialiased fills go through rasterx. Path coordinates address pixel
// centers, matching how points and rectangles are placed: vertex (x, y) maps
// to (x+0.5, y+0.5) in raster space.
func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6((x + 0.5) * 64),
		Y: fixed.Int26_6((y + 0.5) * 64),
	}
}

// fillPath runs addPath against a cleared filler and fills the result with
// the non-zero winding rule, blending edge pixels by coverage.
func (c *Canvas) fillPath(col color.RGBA, addPath func()) {
	c.filler.Clear()
	c.filler.SetWinding(true)
	addPath()
	c.filler.SetColor(col)
	c.filler.Draw()
}

// addPolygon closes the outline through the given vertices. Fewer than three
// vertices enclose no area, so nothing is filled.
func (c *Canvas) addPolygon(points []scene.Pos) {
	if len(points) < 3 {
		return
	}
	c.filler.Start(toFixed(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		c.filler.Line(toFixed(p.X, p.Y))
	}
	c.filler.Stop(true)
}

// addCircle approximates the circle inscribed in the box
// (cx-r, cy-r)-(cx+r, cy+r) with a polygon fine enough that the error stays
// below a tenth of a pixel.
func (c *Canvas) addCircle(center scene.Pos, radius float64) {
	if radius <= 0 {
		return
	}
	segments := MinCircleSegments
	if n := int(math.Ceil(math.Pi / math.Acos(1-0.1/math.Max(radius, 0.1)))); n > segments {
		segments = n
	}

	c.filler.Start(toFixed(center.X+radius, center.Y))
	for i := 1; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c.filler.Line(toFixed(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle)))
	}
	c.filler.Stop(true)
}
