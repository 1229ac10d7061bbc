package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/paint/internal/scene"
)

// ErrFontDenied is returned for font files the canvas may not read.
var ErrFontDenied = errors.New("font file not allowed")

// FontAccess limits which files text figures may load as fonts. The zero
// value allows any path.
type FontAccess struct {
	// Deny refuses every font file; only the embedded font is available.
	Deny bool
	// Dir confines fonts to plain file names inside this directory.
	Dir string
}

func (a FontAccess) open(name string) (string, error) {
	if a.Deny {
		return "", fmt.Errorf("%w: %s", ErrFontDenied, name)
	}
	if a.Dir == "" {
		return name, nil
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %s is not a file name in the font directory", ErrFontDenied, name)
	}
	return filepath.Join(a.Dir, name), nil
}

type faceKey struct {
	path string
	size float64
}

// fontCache keeps parsed fonts and sized faces for one canvas.
type fontCache struct {
	builtin    *truetype.Font
	builtinErr error
	access     FontAccess
	files      map[string]*opentype.Font
	faces      map[faceKey]font.Face
}

func newFontCache(access FontAccess) *fontCache {
	return &fontCache{
		access: access,
		files: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// face returns a face for the font file at path, or for the embedded Go
// Regular font when path is empty. If the embedded font cannot be parsed the
// fixed-size basicfont face is used instead. Files outside the cache's
// FontAccess are never opened.
func (fc *fontCache) face(path string, size float64) (font.Face, error) {
	key := faceKey{path: path, size: size}
	if f, ok := fc.faces[key]; ok {
		return f, nil
	}

	var face font.Face
	if path == "" {
		if fc.builtin == nil && fc.builtinErr == nil {
			fc.builtin, fc.builtinErr = truetype.Parse(goregular.TTF)
		}
		if fc.builtinErr != nil {
			face = basicfont.Face7x13
		} else {
			face = truetype.NewFace(fc.builtin, &truetype.Options{Size: size, DPI: TextDPI, Hinting: font.HintingFull})
		}
	} else {
		fnt, ok := fc.files[path]
		if !ok {
			file, err := fc.access.open(path)
			if err != nil {
				return nil, err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("font %s: %w", path, err)
			}
			fnt, err = opentype.Parse(data)
			if err != nil {
				return nil, fmt.Errorf("font %s: %w", path, err)
			}
			fc.files[path] = fnt
		}
		var err error
		face, err = opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: TextDPI, Hinting: font.HintingFull})
		if err != nil {
			return nil, fmt.Errorf("font %s: %w", path, err)
		}
	}

	fc.faces[key] = face
	return face, nil
}

// drawText draws the text with its baseline starting at the figure position.
func (c *Canvas) drawText(t scene.Text, col color.RGBA) error {
	size := t.Size
	if size <= 0 {
		size = DefaultTextSize
	}
	face, err := c.fonts.face(t.Font, size)
	if err != nil {
		return err
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(t.At.X * 64), Y: fixed.Int26_6(t.At.Y * 64)},
	}
	drawer.DrawString(t.Content)
	return nil
}
