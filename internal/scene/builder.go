// Package scene turns decoded scene documents into screen parameters, a
// palette and an ordered list of figures, and resolves figure colors.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rook-computer/paint/internal/colors"
)

// Scene is the result of building a document. Figures keep document order,
// which is also paint order.
type Scene struct {
	Name        string
	Screen      ScreenConfig
	Palette     colors.Palette
	Figures     []Figure
	Diagnostics []Diagnostic

	// Skipped holds entries whose type is not a known figure kind. They are
	// dropped without being reported as errors.
	Skipped []Diagnostic
}

// Build interprets doc. Per-figure problems are recorded in Diagnostics and
// the figure is skipped; screen and palette problems are fatal.
func Build(doc *Document) (*Scene, error) {
	screen, err := parseScreen(doc.Screen)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: Screen.%v", ErrDocument, doc.Name, err)
	}

	palette := make(colors.Palette, len(doc.Palette))
	names := make([]string, 0, len(doc.Palette))
	for name := range doc.Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v, err := colors.PaletteValue(doc.Palette[name])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: Palette.%s: %v", ErrDocument, doc.Name, name, err)
		}
		palette[name] = v
	}

	s := &Scene{Name: doc.Name, Screen: screen, Palette: palette}
	for i, raw := range doc.Figures {
		fig, diag, ok := parseFigure(doc.Name, i, raw)
		if !ok {
			if diag.Problem == UnknownType {
				s.Skipped = append(s.Skipped, diag)
			} else {
				s.Diagnostics = append(s.Diagnostics, diag)
			}
			continue
		}
		s.Figures = append(s.Figures, fig)
	}
	return s, nil
}

func parseFigure(source string, index int, raw any) (Figure, Diagnostic, bool) {
	diag := Diagnostic{Index: index, Source: source, Raw: raw}

	entry, ok := raw.(map[string]any)
	if !ok {
		diag.Problem = InvalidField
		diag.Err = fmt.Errorf("figure must be a mapping, got %T", raw)
		return Figure{}, diag, false
	}

	token := colors.Foreground
	if v, ok := entry["color"]; ok && v != nil {
		tok, err := colors.FromDocument(v)
		if err != nil {
			diag.Problem, diag.Field, diag.Err = InvalidColor, "color", err
			return Figure{}, diag, false
		}
		token = tok
	}

	shape, err := parseShape(fields(entry))
	if err != nil {
		var fe *fieldError
		var ute *unknownTypeError
		switch {
		case errors.As(err, &fe):
			diag.Field = fe.field
			diag.Problem = InvalidField
			if fe.missing {
				diag.Problem = MissingField
			}
		case errors.As(err, &ute):
			diag.Field = "type"
			diag.Problem = UnknownType
		default:
			diag.Problem = InvalidField
		}
		diag.Err = err
		return Figure{}, diag, false
	}

	return Figure{Index: index, Shape: shape, Color: token, Raw: entry}, diag, true
}

// Figure size limits; a figure above them is reported and skipped.
const (
	MaxTextSize   = 1024
	MaxQRCodeSize = 4096
)

type unknownTypeError struct{ kind string }

func (e *unknownTypeError) Error() string { return fmt.Sprintf("unrecognized figure type %q", e.kind) }

func parseShape(f fields) (Shape, error) {
	kind, err := f.str("type")
	if err != nil {
		return nil, err
	}

	switch Kind(kind) {
	case KindPoint:
		at, err := f.pos()
		if err != nil {
			return nil, err
		}
		return Point{At: at}, nil

	case KindPolygon:
		points, err := f.points("points")
		if err != nil {
			return nil, err
		}
		return Polygon{Points: points}, nil

	case KindRectangle:
		center, err := f.pos()
		if err != nil {
			return nil, err
		}
		w, err := f.size("width")
		if err != nil {
			return nil, err
		}
		h, err := f.size("height")
		if err != nil {
			return nil, err
		}
		return Rectangle{Center: center, Width: w, Height: h}, nil

	case KindSquare:
		center, err := f.pos()
		if err != nil {
			return nil, err
		}
		side, err := f.size("size")
		if err != nil {
			return nil, err
		}
		return Square{Center: center, Side: side}, nil

	case KindCircle:
		center, err := f.pos()
		if err != nil {
			return nil, err
		}
		radius, err := f.size("radius")
		if err != nil {
			return nil, err
		}
		return Circle{Center: center, Radius: radius}, nil

	case KindText:
		at, err := f.pos()
		if err != nil {
			return nil, err
		}
		content, err := f.str("text")
		if err != nil {
			return nil, err
		}
		t := Text{At: at, Content: content}
		if f.has("size") {
			if t.Size, err = f.size("size"); err != nil {
				return nil, err
			}
			if t.Size > MaxTextSize {
				return nil, &fieldError{field: "size", reason: fmt.Sprintf("must be at most %d", MaxTextSize)}
			}
		}
		if f.has("font") {
			if t.Font, err = f.str("font"); err != nil {
				return nil, err
			}
		}
		return t, nil

	case KindQRCode:
		center, err := f.pos()
		if err != nil {
			return nil, err
		}
		size, err := f.size("size")
		if err != nil {
			return nil, err
		}
		if size < 1 || size != float64(int(size)) {
			return nil, &fieldError{field: "size", reason: "must be a positive integer"}
		}
		if size > MaxQRCodeSize {
			return nil, &fieldError{field: "size", reason: fmt.Sprintf("must be at most %d", MaxQRCodeSize)}
		}
		data, err := f.str("data")
		if err != nil {
			return nil, err
		}
		if data == "" {
			return nil, &fieldError{field: "data", reason: "must not be empty"}
		}
		return QRCode{Center: center, Size: int(size), Data: data}, nil

	default:
		return nil, &unknownTypeError{kind: kind}
	}
}
