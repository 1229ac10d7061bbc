// Package colors resolves the color tokens written in scene documents into
// concrete colors.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Token is a color reference as written in a document: a palette name, a hex
// string, a literal tuple such as "(255, 0, 0)" or the Foreground sentinel.
type Token string

// Foreground means "use the screen's foreground color".
const Foreground Token = "fg_color"

var (
	ErrInvalidToken = errors.New("invalid color token")
	ErrUnknownColor = errors.New("unknown color")
)

// Value is a resolved color. Either it carries an RGBA literal, or Text holds
// a color the backend decodes later (a hex string or a color name).
type Value struct {
	Text    string
	Literal color.RGBA
	literal bool
}

func Text(s string) Value { return Value{Text: s} }

func RGB(r, g, b uint8) Value {
	return Value{Literal: color.RGBA{R: r, G: g, B: b, A: 0xFF}, literal: true}
}

func RGBALiteral(c color.RGBA) Value { return Value{Literal: c, literal: true} }

// IsLiteral reports whether v holds an RGBA literal rather than text.
func (v Value) IsLiteral() bool { return v.literal }

func (v Value) String() string {
	if v.literal {
		c := v.Literal
		if c.A == 0xFF {
			return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
		}
		return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
	}
	return v.Text
}

// RGBA decodes v for drawing. Text values are hex strings or
// case-insensitive SVG color names.
func (v Value) RGBA() (color.RGBA, error) {
	if v.literal {
		return v.Literal, nil
	}
	if strings.HasPrefix(v.Text, "#") {
		return ParseHex(v.Text)
	}
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(v.Text))]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, v.Text)
}

// Palette maps color names to concrete values scoped to one document.
type Palette map[string]Value

// Resolve turns a token into a concrete value. Rules apply in order:
// hex tokens pass through untouched, tuple tokens are parsed strictly,
// palette names are replaced by their (not re-resolved) palette value and
// anything else is returned as text for the backend.
func Resolve(token Token, palette Palette) (Value, error) {
	s := string(token)
	switch {
	case strings.HasPrefix(s, "#"):
		return Text(s), nil
	case strings.HasPrefix(s, "("):
		c, err := ParseTuple(s)
		if err != nil {
			return Value{}, err
		}
		return RGBALiteral(c), nil
	}
	if v, ok := palette[s]; ok {
		return v, nil
	}
	return Text(s), nil
}
