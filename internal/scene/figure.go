package scene

import (
	"fmt"

	"github.com/rook-computer/paint/internal/colors"
)

// Kind names a figure variant as written in the document's "type" field.
type Kind string

const (
	KindPoint     Kind = "point"
	KindPolygon   Kind = "polygon"
	KindRectangle Kind = "rectangle"
	KindSquare    Kind = "square"
	KindCircle    Kind = "circle"
	KindText      Kind = "text"
	KindQRCode    Kind = "qrcode"
)

// Pos is a position in canvas pixels.
type Pos struct{ X, Y float64 }

// Shape is the closed set of drawable variants. Only types in this package
// implement it; renderers switch over the concrete types.
type Shape interface {
	Kind() Kind
	shape()
}

type Point struct {
	At Pos
}

type Polygon struct {
	Points []Pos
}

// Rectangle is a box of Width x Height centered on Center.
type Rectangle struct {
	Center        Pos
	Width, Height float64
}

type Square struct {
	Center Pos
	Side   float64
}

// Rectangle returns the equivalent rectangle.
func (s Square) Rectangle() Rectangle {
	return Rectangle{Center: s.Center, Width: s.Side, Height: s.Side}
}

type Circle struct {
	Center Pos
	Radius float64
}

// Text draws Content with its baseline starting at At. Size is in points;
// zero means the renderer default. Font optionally names an OpenType or
// TrueType file.
type Text struct {
	At      Pos
	Content string
	Size    float64
	Font    string
}

// QRCode draws a Size x Size pixel QR code encoding Data, centered on Center.
type QRCode struct {
	Center Pos
	Size   int
	Data   string
}

func (Point) Kind() Kind     { return KindPoint }
func (Polygon) Kind() Kind   { return KindPolygon }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Square) Kind() Kind    { return KindSquare }
func (Circle) Kind() Kind    { return KindCircle }
func (Text) Kind() Kind      { return KindText }
func (QRCode) Kind() Kind    { return KindQRCode }

func (Point) shape()     {}
func (Polygon) shape()   {}
func (Rectangle) shape() {}
func (Square) shape()    {}
func (Circle) shape()    {}
func (Text) shape()      {}
func (QRCode) shape()    {}

// Figure is one successfully parsed document entry with its color still
// unresolved.
type Figure struct {
	Index int
	Shape Shape
	Color colors.Token
	Raw   map[string]any
}

func (f Figure) String() string {
	return fmt.Sprintf("#%d %s %s", f.Index, f.Shape.Kind(), f.Color)
}

// Resolved is a figure paired with its concrete color.
type Resolved struct {
	Figure
	Value colors.Value
}
