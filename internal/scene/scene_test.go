package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/paint/internal/colors"
)

func build(t *testing.T, name string, format Format, src string) *Scene {
	t.Helper()
	doc, err := Decode(name, format, []byte(src))
	require.NoError(t, err)
	s, err := Build(doc)
	require.NoError(t, err)
	return s
}

func TestBuild_figures(t *testing.T) {
	s := build(t, "scene.json", FormatJSON, `{
		"Figures": [
			{"type": "point", "x": 1, "y": 2},
			{"type": "polygon", "points": [[0, 0], [10, 0], [5, 8]], "color": "red"},
			{"type": "rectangle", "x": 20, "y": 30, "width": 10, "height": 4, "color": "#00ff00"},
			{"type": "square", "x": 0, "y": 0, "size": 20, "color": [1, 2, 3]},
			{"type": "circle", "x": 50, "y": 50, "radius": 10},
			{"type": "text", "x": 5, "y": 40, "text": "hi", "size": 12},
			{"type": "qrcode", "x": 100, "y": 100, "size": 64, "data": "paint"}
		],
		"Palette": {"red": "#ff0000"},
		"Screen": {"width": 200, "height": 100}
	}`)

	assert.Empty(t, s.Diagnostics)
	require.Len(t, s.Figures, 7)

	assert.Equal(t, Point{At: Pos{1, 2}}, s.Figures[0].Shape)
	assert.Equal(t, colors.Foreground, s.Figures[0].Color)
	assert.Equal(t, Polygon{Points: []Pos{{0, 0}, {10, 0}, {5, 8}}}, s.Figures[1].Shape)
	assert.Equal(t, colors.Token("red"), s.Figures[1].Color)
	assert.Equal(t, Rectangle{Center: Pos{20, 30}, Width: 10, Height: 4}, s.Figures[2].Shape)
	assert.Equal(t, Square{Center: Pos{0, 0}, Side: 20}, s.Figures[3].Shape)
	assert.Equal(t, colors.Token("(1, 2, 3)"), s.Figures[3].Color)
	assert.Equal(t, Circle{Center: Pos{50, 50}, Radius: 10}, s.Figures[4].Shape)
	assert.Equal(t, Text{At: Pos{5, 40}, Content: "hi", Size: 12}, s.Figures[5].Shape)
	assert.Equal(t, QRCode{Center: Pos{100, 100}, Size: 64, Data: "paint"}, s.Figures[6].Shape)

	for i, fig := range s.Figures {
		assert.Equal(t, i, fig.Index)
	}
	assert.Equal(t, 200, s.Screen.Width)
	assert.Equal(t, 100, s.Screen.Height)
	assert.Equal(t, colors.Palette{"red": colors.Text("#ff0000")}, s.Palette)
}

func TestBuild_missingFieldIsRecovered(t *testing.T) {
	s := build(t, "broken.json", FormatJSON, `{
		"Figures": [
			{"type": "point", "x": 1, "y": 1},
			{"type": "circle", "x": 5, "y": 5},
			{"type": "square", "x": 3, "y": 3, "size": 2}
		],
		"Palette": {},
		"Screen": {}
	}`)

	require.Len(t, s.Diagnostics, 1)
	d := s.Diagnostics[0]
	assert.Equal(t, 1, d.Index)
	assert.Equal(t, "broken.json", d.Source)
	assert.Equal(t, "radius", d.Field)
	assert.Equal(t, MissingField, d.Problem)
	assert.Equal(t, map[string]any{"type": "circle", "x": float64(5), "y": float64(5)}, d.Raw)
	assert.Contains(t, d.String(), "figure 1 of broken.json")
	assert.Contains(t, d.String(), `"radius"`)

	require.Len(t, s.Figures, 2)
	assert.Equal(t, 0, s.Figures[0].Index)
	assert.Equal(t, 2, s.Figures[1].Index)
}

func TestBuild_figureProblems(t *testing.T) {
	for _, tc := range []struct {
		name    string
		figure  string
		field   string
		problem Problem
	}{
		{"missing type", `{"x": 1, "y": 1}`, "type", MissingField},
		{"not a mapping", `[1, 2]`, "", InvalidField},
		{"string coordinate", `{"type": "point", "x": "1", "y": 1}`, "x", InvalidField},
		{"negative radius", `{"type": "circle", "x": 1, "y": 1, "radius": -3}`, "radius", InvalidField},
		{"empty polygon", `{"type": "polygon", "points": []}`, "points", InvalidField},
		{"bad pair", `{"type": "polygon", "points": [[1, 2, 3]]}`, "points", InvalidField},
		{"bad color", `{"type": "point", "x": 1, "y": 1, "color": true}`, "color", InvalidColor},
		{"fractional qr size", `{"type": "qrcode", "x": 1, "y": 1, "size": 2.5, "data": "x"}`, "size", InvalidField},
		{"missing text", `{"type": "text", "x": 1, "y": 1}`, "text", MissingField},
		{"huge qr size", `{"type": "qrcode", "x": 1, "y": 1, "size": 100000, "data": "x"}`, "size", InvalidField},
		{"huge text size", `{"type": "text", "x": 1, "y": 1, "text": "x", "size": 5000}`, "size", InvalidField},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := build(t, "f.json", FormatJSON, `{"Figures": [`+tc.figure+`], "Palette": {}}`)
			assert.Empty(t, s.Figures)
			require.Len(t, s.Diagnostics, 1)
			assert.Equal(t, 0, s.Diagnostics[0].Index)
			assert.Equal(t, tc.field, s.Diagnostics[0].Field)
			assert.Equal(t, tc.problem, s.Diagnostics[0].Problem)
		})
	}
}

func TestBuild_unknownTypeSkipped(t *testing.T) {
	s := build(t, "f.json", FormatJSON, `{"Figures": [{"type": "hexagon", "x": 1}, {"type": "point", "x": 1, "y": 1}], "Palette": {}}`)
	assert.Empty(t, s.Diagnostics)
	require.Len(t, s.Figures, 1)
	assert.Equal(t, 1, s.Figures[0].Index)
	require.Len(t, s.Skipped, 1)
	assert.Equal(t, 0, s.Skipped[0].Index)
	assert.Equal(t, UnknownType, s.Skipped[0].Problem)
}

func TestBuild_screenDefaults(t *testing.T) {
	for _, tc := range []struct {
		name     string
		src      string
		expected ScreenConfig
	}{
		{
			name:     "screen omitted",
			src:      `{"Figures": [], "Palette": {}}`,
			expected: DefaultScreen(),
		},
		{
			name:     "screen null",
			src:      `{"Figures": [], "Palette": null, "Screen": null}`,
			expected: DefaultScreen(),
		},
		{
			name: "partial screen",
			src:  `{"Figures": [], "Palette": {}, "Screen": {"fg_color": "navy", "height": 10}}`,
			expected: ScreenConfig{
				Background: DefaultBackground,
				Foreground: "navy",
				Width:      DefaultWidth,
				Height:     10,
			},
		},
		{
			name: "tuple arrays",
			src:  `{"Figures": [], "Palette": {}, "Screen": {"bg_color": [0, 0, 0], "fg_color": [255, 255, 255], "width": 8}}`,
			expected: ScreenConfig{
				Background: "(0, 0, 0)",
				Foreground: "(255, 255, 255)",
				Width:      8,
				Height:     DefaultHeight,
			},
		},
		{
			name: "antialias",
			src:  `{"Figures": [], "Palette": {}, "Screen": {"antialias": true}}`,
			expected: ScreenConfig{
				Background: DefaultBackground,
				Foreground: DefaultForeground,
				Width:      DefaultWidth,
				Height:     DefaultHeight,
				Antialias:  true,
			},
		},
		{
			name: "largest canvas",
			src:  `{"Figures": [], "Palette": {}, "Screen": {"width": 4096, "height": 4096}}`,
			expected: ScreenConfig{
				Background: DefaultBackground,
				Foreground: DefaultForeground,
				Width:      4096,
				Height:     4096,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := build(t, "s.json", FormatJSON, tc.src)
			assert.Equal(t, tc.expected, s.Screen)
		})
	}
}

func TestDecode_documentErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
	}{
		{"invalid json", `{"Figures": [`},
		{"missing figures", `{"Palette": {}, "Screen": {}}`},
		{"figures not a list", `{"Figures": {}, "Palette": {}}`},
		{"missing palette", `{"Figures": [], "Screen": {}}`},
		{"palette not a mapping", `{"Figures": [], "Palette": []}`},
		{"screen not a mapping", `{"Figures": [], "Palette": {}, "Screen": 3}`},
		{"root not a mapping", `[]`},
		{"null document", `null`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode("bad.json", FormatJSON, []byte(tc.src))
			assert.ErrorIs(t, err, ErrDocument)
		})
	}
}

func TestBuild_documentErrors(t *testing.T) {
	for _, src := range []string{
		`{"Figures": [], "Palette": {}, "Screen": {"width": 0}}`,
		`{"Figures": [], "Palette": {}, "Screen": {"height": 10.5}}`,
		`{"Figures": [], "Palette": {}, "Screen": {"fg_color": {}}}`,
		`{"Figures": [], "Palette": {}, "Screen": {"width": 100000000}}`,
		`{"Figures": [], "Palette": {}, "Screen": {"height": 8193}}`,
		`{"Figures": [], "Palette": {}, "Screen": {"width": 8192, "height": 8192}}`,
		`{"Figures": [], "Palette": {}, "Screen": {"antialias": "yes"}}`,
		`{"Figures": [], "Palette": {"red": [300, 0, 0]}}`,
	} {
		doc, err := Decode("bad.json", FormatJSON, []byte(src))
		require.NoError(t, err)
		_, err = Build(doc)
		assert.ErrorIs(t, err, ErrDocument, src)
	}
}

func TestDecode_yaml(t *testing.T) {
	s := build(t, "scene.yaml", FormatFor("scene.yaml"), `
Figures:
  - type: circle
    x: 10
    y: 12
    radius: 3
    color: accent
  - type: polygon
    points: [[0, 0], [4, 0], [4, 4]]
Palette:
  accent: [10, 20, 30]
Screen:
  width: 32
  height: 24
`)
	assert.Empty(t, s.Diagnostics)
	require.Len(t, s.Figures, 2)
	assert.Equal(t, Circle{Center: Pos{10, 12}, Radius: 3}, s.Figures[0].Shape)
	assert.Equal(t, Polygon{Points: []Pos{{0, 0}, {4, 0}, {4, 4}}}, s.Figures[1].Shape)
	assert.Equal(t, colors.RGB(10, 20, 30), s.Palette["accent"])
	assert.Equal(t, 32, s.Screen.Width)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("a.YML"))
	assert.Equal(t, FormatYAML, FormatFor("dir/a.yaml"))
	assert.Equal(t, FormatJSON, FormatFor("a.json"))
	assert.Equal(t, FormatJSON, FormatFor("a"))
}
