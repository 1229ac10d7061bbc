package scene

import (
	"fmt"

	"github.com/rook-computer/paint/internal/colors"
)

// Screen defaults, applied independently per missing field.
const (
	DefaultBackground colors.Token = "(255, 255, 255)"
	DefaultForeground colors.Token = "(0, 0, 0)"
	DefaultWidth                   = 640
	DefaultHeight                  = 480
)

// Canvas limits. Larger documents are rejected before any buffer is
// allocated.
const (
	MaxDimension = 8192
	MaxPixels    = 1 << 24
)

// ScreenConfig holds the canvas parameters of a scene.
type ScreenConfig struct {
	Background colors.Token
	Foreground colors.Token
	Width      int
	Height     int

	// Antialias blends figure edges into the background instead of
	// painting every covered pixel with the exact figure color.
	Antialias bool
}

// DefaultScreen returns the configuration used for an empty Screen entry.
func DefaultScreen() ScreenConfig {
	return ScreenConfig{
		Background: DefaultBackground,
		Foreground: DefaultForeground,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}
}

func parseScreen(raw map[string]any) (ScreenConfig, error) {
	cfg := DefaultScreen()

	if v, ok := raw["bg_color"]; ok && v != nil {
		tok, err := colors.FromDocument(v)
		if err != nil {
			return cfg, fmt.Errorf("bg_color: %w", err)
		}
		cfg.Background = tok
	}
	if v, ok := raw["fg_color"]; ok && v != nil {
		tok, err := colors.FromDocument(v)
		if err != nil {
			return cfg, fmt.Errorf("fg_color: %w", err)
		}
		cfg.Foreground = tok
	}
	if v, ok := raw["width"]; ok && v != nil {
		n, err := dimension(v)
		if err != nil {
			return cfg, fmt.Errorf("width: %w", err)
		}
		cfg.Width = n
	}
	if v, ok := raw["height"]; ok && v != nil {
		n, err := dimension(v)
		if err != nil {
			return cfg, fmt.Errorf("height: %w", err)
		}
		cfg.Height = n
	}
	if cfg.Width*cfg.Height > MaxPixels {
		return cfg, fmt.Errorf("width x height: %dx%d exceeds %d pixels", cfg.Width, cfg.Height, MaxPixels)
	}
	if v, ok := raw["antialias"]; ok && v != nil {
		on, ok := v.(bool)
		if !ok {
			return cfg, fmt.Errorf("antialias: must be a boolean, got %v", v)
		}
		cfg.Antialias = on
	}
	return cfg, nil
}

func dimension(v any) (int, error) {
	f, ok := number(v)
	if !ok || f != float64(int(f)) {
		return 0, fmt.Errorf("must be an integer, got %v", v)
	}
	if f <= 0 {
		return 0, fmt.Errorf("must be positive, got %v", v)
	}
	if f > MaxDimension {
		return 0, fmt.Errorf("must be at most %d, got %v", MaxDimension, v)
	}
	return int(f), nil
}
