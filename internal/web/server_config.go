package web

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rook-computer/paint/internal/render"
)

const (
	EnvListenAddr = "PAINT_LISTEN"
	EnvDevMode    = "PAINT_DEV"
	EnvMaxBody    = "PAINT_MAX_BODY"
	EnvFontDir    = "PAINT_FONT_DIR"

	// DefaultMaxBodyBytes caps scene documents posted to the API.
	DefaultMaxBodyBytes int64 = 4 << 20
)

// ServerConfig contains settings for running the preview server.
type ServerConfig struct {
	ListenAddr   string
	DevMode      bool
	MaxBodyBytes int64

	// FontDir holds the only font files posted documents may name, by
	// file name. Empty refuses every font file.
	FontDir string
}

// FontAccess is the font policy for documents received over HTTP.
func (c ServerConfig) FontAccess() render.FontAccess {
	if c.FontDir == "" {
		return render.FontAccess{Deny: true}
	}
	return render.FontAccess{Dir: c.FontDir}
}

func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	maxBody := DefaultMaxBodyBytes
	if raw := os.Getenv(EnvMaxBody); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return ServerConfig{}, fmt.Errorf("%s must be a positive byte count (got %q)", EnvMaxBody, raw)
		}
		maxBody = parsed
	}

	return ServerConfig{
		ListenAddr:   listenAddr,
		DevMode:      devMode,
		MaxBodyBytes: maxBody,
		FontDir:      os.Getenv(EnvFontDir),
	}, nil
}
