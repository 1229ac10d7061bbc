package scene

import (
	"fmt"

	"github.com/rook-computer/paint/internal/colors"
)

// Background resolves the screen background color.
func (s *Scene) Background() (colors.Value, error) {
	v, err := colors.Resolve(s.Screen.Background, s.Palette)
	if err != nil {
		return colors.Value{}, fmt.Errorf("%w: %s: Screen.bg_color: %v", ErrDocument, s.Name, err)
	}
	return v, nil
}

// Foreground resolves the screen foreground color.
func (s *Scene) Foreground() (colors.Value, error) {
	v, err := colors.Resolve(s.Screen.Foreground, s.Palette)
	if err != nil {
		return colors.Value{}, fmt.Errorf("%w: %s: Screen.fg_color: %v", ErrDocument, s.Name, err)
	}
	return v, nil
}

// Resolve is the color normalization pass. It returns a new list with every
// figure's color made concrete, in document order, without touching s.
// Figures using the foreground sentinel get the resolved screen foreground.
// Figures whose color cannot be resolved are dropped with a diagnostic; an
// unresolvable foreground fails the whole pass.
func (s *Scene) Resolve() ([]Resolved, []Diagnostic, error) {
	fg, err := s.Foreground()
	if err != nil {
		return nil, nil, err
	}

	out := make([]Resolved, 0, len(s.Figures))
	var diags []Diagnostic
	for _, fig := range s.Figures {
		var (
			v   colors.Value
			err error
		)
		if fig.Color == colors.Foreground {
			v = fg
		} else {
			v, err = colors.Resolve(fig.Color, s.Palette)
		}
		if err != nil {
			diags = append(diags, Diagnostic{
				Index:   fig.Index,
				Source:  s.Name,
				Raw:     fig.Raw,
				Field:   "color",
				Problem: InvalidColor,
				Err:     err,
			})
			continue
		}
		out = append(out, Resolved{Figure: fig, Value: v})
	}
	return out, diags, nil
}
