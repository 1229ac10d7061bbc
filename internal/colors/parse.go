package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseTuple parses a literal tuple token like "(255, 0, 0)" or
// "(0,0,0,128)". Only parentheses, digits, commas and whitespace are
// accepted; a single trailing comma is allowed.
func ParseTuple(s string) (color.RGBA, error) {
	fail := func(reason string) (color.RGBA, error) {
		return color.RGBA{}, fmt.Errorf("%w %q: %s", ErrInvalidToken, s, reason)
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '(', r == ')', r == ',':
		case r == ' ', r == '\t', r == '\n', r == '\r':
		default:
			return fail(fmt.Sprintf("unexpected character %q", r))
		}
	}

	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return fail("must be enclosed in parentheses")
	}
	body = body[1 : len(body)-1]
	if strings.ContainsAny(body, "()") {
		return fail("nested parentheses")
	}

	parts := strings.Split(body, ",")
	if len(parts) > 1 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 3 && len(parts) != 4 {
		return fail(fmt.Sprintf("expected 3 or 4 components, got %d", len(parts)))
	}

	var channels [4]uint8
	channels[3] = 0xFF
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return fail(fmt.Sprintf("component %d is empty", i))
		}
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return fail(fmt.Sprintf("component %d out of range 0..255", i))
		}
		channels[i] = uint8(n)
	}
	return premultiply(channels[0], channels[1], channels[2], channels[3]), nil
}

// premultiply converts straight alpha, as written in documents, into the
// alpha-premultiplied form of color.RGBA.
func premultiply(r, g, b, a uint8) color.RGBA {
	if a == 0xFF {
		return color.RGBA{R: r, G: g, B: b, A: a}
	}
	return color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: a}).(color.RGBA)
}

// ParseHex decodes "#rgb", "#rgba", "#rrggbb" and "#rrggbbaa".
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == len(s) {
		return color.RGBA{}, fmt.Errorf("%w: %q is not a hex color", ErrUnknownColor, s)
	}

	var digits []uint8
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%w: invalid hex digit in %q", ErrUnknownColor, s)
			}
			digits = append(digits, uint8(v)*0x11)
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%w: invalid hex digit in %q", ErrUnknownColor, s)
			}
			digits = append(digits, uint8(v))
		}
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q has %d hex digits", ErrUnknownColor, s, len(hex))
	}

	alpha := uint8(0xFF)
	if len(digits) == 4 {
		alpha = digits[3]
	}
	return premultiply(digits[0], digits[1], digits[2], alpha), nil
}

// FromDocument converts a decoded document value (a string or a numeric
// array) into a token. Arrays become tuple tokens.
func FromDocument(raw any) (Token, error) {
	switch v := raw.(type) {
	case string:
		return Token(v), nil
	case []any:
		parts := make([]string, 0, len(v))
		for i, item := range v {
			n, ok := toInt(item)
			if !ok {
				return "", fmt.Errorf("%w: component %d of %v is not an integer", ErrInvalidToken, i, v)
			}
			parts = append(parts, strconv.Itoa(n))
		}
		return Token("(" + strings.Join(parts, ", ") + ")"), nil
	default:
		return "", fmt.Errorf("%w: %v (%T)", ErrInvalidToken, raw, raw)
	}
}

// PaletteValue converts a document palette entry into a concrete value.
// Strings are stored verbatim; arrays must be valid literal tuples.
func PaletteValue(raw any) (Value, error) {
	if s, ok := raw.(string); ok {
		return Text(s), nil
	}
	tok, err := FromDocument(raw)
	if err != nil {
		return Value{}, err
	}
	c, err := ParseTuple(string(tok))
	if err != nil {
		return Value{}, err
	}
	return RGBALiteral(c), nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
