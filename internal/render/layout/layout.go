package layout

import (
	"image"
	"math"
)

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenteredBox returns the pixel box of size (w,h) centered on (cx,cy).
// The half sizes are floored, so odd sizes put the extra pixel after the
// center and the box always spans exactly round(w) x round(h) pixels.
func CenteredBox(cx, cy, w, h float64) image.Rectangle {
	width := int(math.Round(math.Abs(w)))
	height := int(math.Round(math.Abs(h)))
	minX := int(math.Floor(cx)) - width/2
	minY := int(math.Floor(cy)) - height/2
	return Normalize(image.Rect(minX, minY, minX+width, minY+height))
}

// CenteredAt places a rectangle of the given size so its center is (cx,cy),
// using the same rounding as CenteredBox.
func CenteredAt(cx, cy float64, size image.Point) image.Rectangle {
	return CenteredBox(cx, cy, float64(size.X), float64(size.Y))
}

// FitInto returns the largest rectangle with src's aspect ratio that fits
// into dst, centered in it.
func FitInto(dst image.Rectangle, src image.Point) image.Rectangle {
	dst = Normalize(dst)
	if src.X <= 0 || src.Y <= 0 || dst.Empty() {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}
	width := dst.Dx()
	height := src.Y * width / src.X
	if height > dst.Dy() {
		height = dst.Dy()
		width = src.X * height / src.Y
	}
	minX := dst.Min.X + (dst.Dx()-width)/2
	minY := dst.Min.Y + (dst.Dy()-height)/2
	return image.Rect(minX, minY, minX+width, minY+height)
}
