package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenteredBox(t *testing.T) {
	for _, tc := range []struct {
		name         string
		cx, cy, w, h float64
		expected     image.Rectangle
	}{
		{"even", 10, 10, 4, 6, image.Rect(8, 7, 12, 13)},
		{"odd", 10, 10, 5, 3, image.Rect(8, 9, 13, 12)},
		{"at origin", 0, 0, 20, 20, image.Rect(-10, -10, 10, 10)},
		{"fractional center", 10.7, 10.2, 2, 2, image.Rect(9, 9, 11, 11)},
		{"empty", 3, 3, 0, 0, image.Rect(3, 3, 3, 3)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredBox(tc.cx, tc.cy, tc.w, tc.h)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, int(tc.w), got.Dx())
			assert.Equal(t, int(tc.h), got.Dy())
		})
	}
}

func TestFitInto(t *testing.T) {
	assert.Equal(t, image.Rect(0, 60, 800, 540), FitInto(image.Rect(0, 0, 800, 600), image.Pt(640, 384)))
	assert.Equal(t, image.Rect(80, 0, 720, 480), FitInto(image.Rect(0, 0, 800, 480), image.Pt(640, 480)))
	assert.True(t, FitInto(image.Rect(0, 0, 10, 10), image.Pt(0, 5)).Empty())
}

func TestNormalize(t *testing.T) {
	r := Normalize(image.Rectangle{Min: image.Pt(5, 9), Max: image.Pt(1, 2)})
	assert.Equal(t, image.Rect(1, 2, 5, 9), r)
}
