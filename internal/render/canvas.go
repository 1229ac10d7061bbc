// Package render rasterizes resolved scene figures onto an RGBA canvas and
// encodes or displays the result.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"

	"github.com/rook-computer/paint/internal/render/layout"
	"github.com/rook-computer/paint/internal/scene"
)

var ErrUnsupportedShape = errors.New("unsupported shape")

// Canvas owns the pixel buffer of one scene. It is not safe for concurrent
// use; figures are drawn one at a time in document order.
type Canvas struct {
	img       *image.RGBA
	filler    *rasterx.Filler
	fonts     *fontCache
	antialias bool
}

// NewCanvas allocates a width x height canvas filled with background.
func NewCanvas(width, height int, background color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Canvas{
		img:    img,
		filler: rasterx.NewFiller(width, height, scanner),
		fonts:  newFontCache(FontAccess{}),
	}
}

// SetAntialias switches polygon and circle fills to coverage-based
// antialiasing. Off by default: every covered pixel gets exactly the figure
// color.
func (c *Canvas) SetAntialias(on bool) { c.antialias = on }

// SetFontAccess restricts the font files text figures may load and drops
// fonts cached under the previous policy.
func (c *Canvas) SetFontAccess(access FontAccess) { c.fonts = newFontCache(access) }

// Image returns the underlying buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width int, height int) {
	return c.img.Rect.Dx(), c.img.Rect.Dy()
}

// Draw paints one resolved figure. The color is decoded first; on error
// nothing is painted.
func (c *Canvas) Draw(fig scene.Resolved) error {
	col, err := fig.Value.RGBA()
	if err != nil {
		return err
	}

	switch s := fig.Shape.(type) {
	case scene.Point:
		c.drawPoint(s, col)
	case scene.Polygon:
		if c.antialias {
			c.fillPath(col, func() { c.addPolygon(s.Points) })
		} else {
			c.fillPolygon(s.Points, col)
		}
	case scene.Rectangle:
		c.drawRectangle(s, col)
	case scene.Square:
		c.drawRectangle(s.Rectangle(), col)
	case scene.Circle:
		if c.antialias {
			c.fillPath(col, func() { c.addCircle(s.Center, s.Radius) })
		} else {
			c.fillCircle(s.Center, s.Radius, col)
		}
	case scene.Text:
		return c.drawText(s, col)
	case scene.QRCode:
		return c.drawQRCode(s, col)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedShape, fig.Shape)
	}
	return nil
}

func (c *Canvas) drawPoint(p scene.Point, col color.RGBA) {
	x, y := int(math.Floor(p.At.X)), int(math.Floor(p.At.Y))
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	blend(c.img, x, y, col)
}

// drawRectangle fills exactly Width x Height pixels starting at
// Center - floor(size/2) on each axis.
func (c *Canvas) drawRectangle(r scene.Rectangle, col color.RGBA) {
	rect := layout.CenteredBox(r.Center.X, r.Center.Y, r.Width, r.Height).Intersect(c.img.Rect)
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, &image.Uniform{C: col}, image.Point{}, opFor(col))
}

// opFor replaces pixels for opaque colors and composites translucent ones.
func opFor(col color.RGBA) draw.Op {
	if col.A == 0xFF {
		return draw.Src
	}
	return draw.Over
}

func blend(img *image.RGBA, x, y int, col color.RGBA) {
	if col.A == 0xFF {
		img.SetRGBA(x, y, col)
		return
	}
	draw.Draw(img, image.Rect(x, y, x+1, y+1), &image.Uniform{C: col}, image.Point{}, draw.Over)
}
