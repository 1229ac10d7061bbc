package render

// Global render configuration for text and generated images.
var (
	// DefaultTextSize is used for text figures without a size, in points.
	DefaultTextSize = 16.0
	// TextDPI maps points to canvas pixels; 72 makes one point one pixel.
	TextDPI = 72.0

	// MinCircleSegments bounds the polygon used to approximate small circles.
	MinCircleSegments = 32
)
