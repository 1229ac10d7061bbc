package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrDocument marks fatal, document-level problems: the whole run aborts.
var ErrDocument = errors.New("malformed scene document")

// Top-level document keys.
const (
	keyFigures = "Figures"
	keyPalette = "Palette"
	keyScreen  = "Screen"
)

// Document is the decoded, not yet interpreted input.
type Document struct {
	Name    string
	Figures []any
	Palette map[string]any
	Screen  map[string]any
}

// Format selects the document syntax.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the syntax from a file name's extension.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadFile loads and decodes a document from disk.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDocument, path, err)
	}
	return Decode(path, FormatFor(path), data)
}

// Decode parses data and checks the top-level shape. Figures and Palette
// are mandatory, though either may be null; a missing or null Screen is
// treated as empty.
func Decode(name string, format Format, data []byte) (*Document, error) {
	var root map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: %s: yaml: %v", ErrDocument, name, err)
		}
	default:
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: %s: json: %v", ErrDocument, name, err)
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: %s: document is empty", ErrDocument, name)
	}

	doc := &Document{Name: name}

	rawFigures, ok := root[keyFigures]
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing %q", ErrDocument, name, keyFigures)
	}
	switch figs := rawFigures.(type) {
	case []any:
		doc.Figures = figs
	case nil:
		doc.Figures = nil
	default:
		return nil, fmt.Errorf("%w: %s: %q must be a list, got %T", ErrDocument, name, keyFigures, rawFigures)
	}

	if _, ok := root[keyPalette]; !ok {
		return nil, fmt.Errorf("%w: %s: missing %q", ErrDocument, name, keyPalette)
	}

	var err error
	if doc.Palette, err = mapping(root, keyPalette); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocument, name, err)
	}
	if doc.Screen, err = mapping(root, keyScreen); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocument, name, err)
	}
	return doc, nil
}

func mapping(root map[string]any, key string) (map[string]any, error) {
	raw, ok := root[key]
	if !ok || raw == nil {
		return map[string]any{}, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%q must be a mapping, got %T", key, raw)
	}
	return m, nil
}
