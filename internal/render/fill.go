package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"github.com/rook-computer/paint/internal/scene"
)

// Aliased fills. A pixel (x, y) belongs to a shape when the point (x, y)
// lies inside it or on its outline, so a circle of radius r around an
// integer center reaches exactly r pixels in each direction.

const edgeEps = 1e-9

// span is an inclusive run of pixel columns.
type span struct{ x0, x1 int }

// pixelSpan returns the columns whose x lies in [xa, xb].
func pixelSpan(xa, xb float64) span {
	return span{x0: int(math.Ceil(xa - edgeEps)), x1: int(math.Floor(xb + edgeEps))}
}

// rowRange returns the rows whose y lies in [ya, yb], clipped to the canvas.
func (c *Canvas) rowRange(ya, yb float64) (int, int) {
	y0 := max(int(math.Ceil(ya-edgeEps)), c.img.Rect.Min.Y)
	y1 := min(int(math.Floor(yb+edgeEps)), c.img.Rect.Max.Y-1)
	return y0, y1
}

// paintRow merges spans so translucent colors are composited once per pixel.
func (c *Canvas) paintRow(y int, spans []span, col color.RGBA) {
	sort.Slice(spans, func(i, j int) bool { return spans[i].x0 < spans[j].x0 })
	src := &image.Uniform{C: col}
	op := opFor(col)
	flush := func(s span) {
		r := image.Rect(s.x0, y, s.x1+1, y+1).Intersect(c.img.Rect)
		if !r.Empty() {
			draw.Draw(c.img, r, src, image.Point{}, op)
		}
	}

	var cur span
	open := false
	for _, s := range spans {
		if s.x0 > s.x1 {
			continue
		}
		switch {
		case !open:
			cur, open = s, true
		case s.x0 <= cur.x1+1:
			cur.x1 = max(cur.x1, s.x1)
		default:
			flush(cur)
			cur = s
		}
	}
	if open {
		flush(cur)
	}
}

func (c *Canvas) fillCircle(center scene.Pos, radius float64, col color.RGBA) {
	if radius < 0 {
		return
	}
	y0, y1 := c.rowRange(center.Y-radius, center.Y+radius)
	row := make([]span, 1)
	for y := y0; y <= y1; y++ {
		dy := float64(y) - center.Y
		d2 := radius*radius - dy*dy
		if d2 < 0 {
			d2 = 0
		}
		dx := math.Sqrt(d2)
		row[0] = pixelSpan(center.X-dx, center.X+dx)
		c.paintRow(y, row, col)
	}
}

type crossing struct {
	x   float64
	dir int
}

// fillPolygon fills with the non-zero winding rule, outline included.
// Fewer than three vertices enclose no area, so nothing is filled.
func (c *Canvas) fillPolygon(points []scene.Pos, col color.RGBA) {
	if len(points) < 3 {
		return
	}
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	var (
		xs    []crossing
		spans []span
	)
	y0, y1 := c.rowRange(minY, maxY)
	for y := y0; y <= y1; y++ {
		fy := float64(y)
		xs, spans = xs[:0], spans[:0]
		for i := range points {
			a, b := points[i], points[(i+1)%len(points)]
			if a.Y == b.Y {
				if math.Abs(fy-a.Y) <= edgeEps {
					spans = append(spans, pixelSpan(math.Min(a.X, b.X), math.Max(a.X, b.X)))
				}
				continue
			}
			lo, hi, dir := a.Y, b.Y, 1
			if lo > hi {
				lo, hi, dir = hi, lo, -1
			}
			if fy < lo-edgeEps || fy > hi+edgeEps {
				continue
			}
			x := a.X + (fy-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			// the outline pixel itself, when the edge passes through a center
			spans = append(spans, pixelSpan(x, x))
			if fy >= lo && fy < hi {
				xs = append(xs, crossing{x: x, dir: dir})
			}
		}

		sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })
		winding := 0
		for i := 0; i+1 < len(xs); i++ {
			winding += xs[i].dir
			if winding != 0 {
				spans = append(spans, pixelSpan(xs[i].x, xs[i+1].x))
			}
		}
		c.paintRow(y, spans, col)
	}
}
