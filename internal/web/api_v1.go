package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rook-computer/paint/internal/app"
	"github.com/rook-computer/paint/internal/render"
	"github.com/rook-computer/paint/internal/scene"
)

// HeaderDiagnostics carries the number of figures dropped from a render.
const HeaderDiagnostics = "X-Paint-Diagnostics"

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type diagnosticResponse struct {
	Index   int    `json:"index"`
	Field   string `json:"field,omitempty"`
	Problem string `json:"problem"`
	Message string `json:"message"`
	Figure  any    `json:"figure"`
}

type checkResponse struct {
	Width       int                  `json:"width"`
	Height      int                  `json:"height"`
	Drawn       int                  `json:"drawn"`
	Diagnostics []diagnosticResponse `json:"diagnostics"`
}

type lastRenderResponse struct {
	Source      string    `json:"source"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Figures     int       `json:"figures"`
	Drawn       int       `json:"drawn"`
	Diagnostics int       `json:"diagnostics"`
	Error       string    `json:"error,omitempty"`
	Finished    time.Time `json:"finished"`
}

type statusResponse struct {
	Phase   string              `json:"phase"`
	Renders int64               `json:"renders"`
	Last    *lastRenderResponse `json:"last,omitempty"`
}

func apiV1Router(cfg APIV1Config) http.Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/render", func(w http.ResponseWriter, r *http.Request) { handleRender(w, r, cfg) })
	mux.HandleFunc("/check", func(w http.ResponseWriter, r *http.Request) { handleCheck(w, r, cfg) })
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, cfg) })
	return mux
}

// handleRender answers POST /render?format= with the encoded image.
func handleRender(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "unknown_format", err.Error())
		return
	}
	res, ok := renderRequest(w, r, cfg)
	if !ok {
		return
	}

	// Encode fully before writing so a failure can still become a 500.
	var buf bytes.Buffer
	if err := render.Encode(&buf, res.Canvas.Image(), format); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", "scene"+format.Ext()))
	w.Header().Set(HeaderDiagnostics, strconv.Itoa(len(res.Diagnostics)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleCheck renders like handleRender but answers with the diagnostics
// instead of the image.
func handleCheck(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	res, ok := renderRequest(w, r, cfg)
	if !ok {
		return
	}
	out := checkResponse{
		Width:       res.Scene.Screen.Width,
		Height:      res.Scene.Screen.Height,
		Drawn:       res.Drawn,
		Diagnostics: make([]diagnosticResponse, 0, len(res.Diagnostics)),
	}
	for _, d := range res.Diagnostics {
		msg := d.Problem.String()
		if d.Err != nil {
			msg = d.Err.Error()
		}
		out.Diagnostics = append(out.Diagnostics, diagnosticResponse{
			Index:   d.Index,
			Field:   d.Field,
			Problem: d.Problem.String(),
			Message: msg,
			Figure:  d.Raw,
		})
	}
	w.Header().Set(HeaderDiagnostics, strconv.Itoa(len(res.Diagnostics)))
	writeJSON(w, http.StatusOK, out)
}

func handleStatus(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if cfg.Status == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "status not configured")
		return
	}
	snap := cfg.Status()
	out := statusResponse{Phase: snap.Phase.String(), Renders: snap.Renders}
	if snap.Renders > 0 {
		last := snap.Last
		out.Last = &lastRenderResponse{
			Source:      last.Source,
			Width:       last.Width,
			Height:      last.Height,
			Figures:     last.Figures,
			Drawn:       last.Drawn,
			Diagnostics: last.Diagnostics,
			Error:       last.Err,
			Finished:    last.Finished,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// renderRequest reads the posted document and runs the pipeline. On failure
// it has already written the error response.
func renderRequest(w http.ResponseWriter, r *http.Request, cfg APIV1Config) (*app.Result, bool) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return nil, false
	}
	if cfg.Render == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "render not configured")
		return nil, false
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeAPIError(w, http.StatusRequestEntityTooLarge, "too_large", fmt.Sprintf("document exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		writeAPIError(w, http.StatusBadRequest, "read_failed", err.Error())
		return nil, false
	}

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		name = "request"
	}
	res, err := cfg.Render(r.Context(), name, documentFormat(r), data)
	if err != nil {
		switch {
		case errors.Is(err, scene.ErrDocument):
			writeAPIError(w, http.StatusBadRequest, "invalid_document", err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			writeAPIError(w, http.StatusServiceUnavailable, "canceled", err.Error())
		default:
			if cfg.Logger != nil {
				cfg.Logger.Errorf("web", "render %s: %v", name, err)
			}
			writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		}
		return nil, false
	}
	return res, true
}

// documentFormat picks YAML when the request says so, JSON otherwise.
func documentFormat(r *http.Request) scene.Format {
	if strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "yaml") {
		return scene.FormatYAML
	}
	return scene.FormatJSON
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
