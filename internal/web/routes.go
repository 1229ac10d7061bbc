package web

import (
	"context"
	"net/http"

	"github.com/rook-computer/paint/internal/app"
	"github.com/rook-computer/paint/internal/scene"
	"github.com/rook-computer/paint/internal/state"
)

// RenderFunc renders one scene document; *app.App.Render satisfies it.
type RenderFunc func(ctx context.Context, name string, format scene.Format, data []byte) (*app.Result, error)

type APIV1Config struct {
	Render RenderFunc
	// Status reports the render pipeline state; typically Store.Snapshot.
	Status       func() state.State
	MaxBodyBytes int64
	Logger       logger
}

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, cfg APIV1Config) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(cfg)))
}

// NewDefaultMux builds the mux used by the preview binary.
func NewDefaultMux(cfg APIV1Config) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, cfg)
	return mux
}
