// Package app runs the paint pipeline: decode, build, resolve, then draw
// every figure onto a canvas in document order.
package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/rook-computer/paint/internal/render"
	"github.com/rook-computer/paint/internal/scene"
	"github.com/rook-computer/paint/internal/state"
)

type App struct {
	Store  *state.Store
	Logger Logger

	// Fonts limits the font files text figures may load. The zero value
	// allows any path.
	Fonts render.FontAccess
}

func New(store *state.Store) *App {
	if store == nil {
		store = state.NewStore()
	}
	return &App{Store: store, Logger: NoopLogger{}}
}

// Result is a finished render. Diagnostics lists every figure that was
// dropped, whatever stage dropped it.
type Result struct {
	Scene       *scene.Scene
	Canvas      *render.Canvas
	Diagnostics []scene.Diagnostic
	Drawn       int
}

// RenderFile reads the document at path, choosing the decoder by extension.
func (app *App) RenderFile(ctx context.Context, path string) (*Result, error) {
	app.Store.SetPhase(state.PARSING)
	doc, err := scene.ReadFile(path)
	if err != nil {
		app.fail(path, err)
		return nil, err
	}
	return app.RenderDocument(ctx, doc)
}

// Render decodes data as a document called name.
func (app *App) Render(ctx context.Context, name string, format scene.Format, data []byte) (*Result, error) {
	app.Store.SetPhase(state.PARSING)
	doc, err := scene.Decode(name, format, data)
	if err != nil {
		app.fail(name, err)
		return nil, err
	}
	return app.RenderDocument(ctx, doc)
}

func (app *App) RenderDocument(ctx context.Context, doc *scene.Document) (*Result, error) {
	app.Store.SetPhase(state.PARSING)
	sc, err := scene.Build(doc)
	if err != nil {
		app.fail(doc.Name, err)
		return nil, err
	}
	for _, d := range sc.Skipped {
		app.Logger.Infof("scene", "%s", d)
	}
	res := &Result{Scene: sc, Diagnostics: append([]scene.Diagnostic(nil), sc.Diagnostics...)}

	app.Store.SetPhase(state.RESOLVING)
	bgValue, err := sc.Background()
	if err != nil {
		app.fail(doc.Name, err)
		return nil, err
	}
	bg, err := bgValue.RGBA()
	if err != nil {
		err = fmt.Errorf("%w: %s: Screen.bg_color: %v", scene.ErrDocument, doc.Name, err)
		app.fail(doc.Name, err)
		return nil, err
	}
	fgValue, err := sc.Foreground()
	if err != nil {
		app.fail(doc.Name, err)
		return nil, err
	}
	if _, err := fgValue.RGBA(); err != nil {
		err = fmt.Errorf("%w: %s: Screen.fg_color: %v", scene.ErrDocument, doc.Name, err)
		app.fail(doc.Name, err)
		return nil, err
	}
	figures, diags, err := sc.Resolve()
	if err != nil {
		app.fail(doc.Name, err)
		return nil, err
	}
	res.Diagnostics = append(res.Diagnostics, diags...)

	app.Store.SetPhase(state.DRAWING)
	res.Canvas = render.NewCanvas(sc.Screen.Width, sc.Screen.Height, bg)
	res.Canvas.SetAntialias(sc.Screen.Antialias)
	res.Canvas.SetFontAccess(app.Fonts)
	app.Logger.Infof("app", "%s: drawing %d figures on %dx%d", doc.Name, len(figures), sc.Screen.Width, sc.Screen.Height)
	for _, fig := range figures {
		if err := ctx.Err(); err != nil {
			app.fail(doc.Name, err)
			return nil, err
		}
		if err := res.Canvas.Draw(fig); err != nil {
			res.Diagnostics = append(res.Diagnostics, scene.Diagnostic{
				Index:   fig.Index,
				Source:  doc.Name,
				Raw:     fig.Raw,
				Problem: scene.DrawFailed,
				Err:     err,
			})
			continue
		}
		app.Logger.Debugf("render", "%s: figure %d: %s", doc.Name, fig.Index, fig.Shape.Kind())
		res.Drawn++
	}

	// Report in document order whatever stage dropped the figure.
	sort.SliceStable(res.Diagnostics, func(i, j int) bool {
		return res.Diagnostics[i].Index < res.Diagnostics[j].Index
	})
	for _, d := range res.Diagnostics {
		app.Logger.Warnf("scene", "%s", d)
	}
	app.Store.Finish(state.RenderInfo{
		Source:      doc.Name,
		Width:       sc.Screen.Width,
		Height:      sc.Screen.Height,
		Figures:     len(doc.Figures),
		Drawn:       res.Drawn,
		Diagnostics: len(res.Diagnostics),
	})
	return res, nil
}

func (app *App) fail(source string, err error) {
	app.Logger.Errorf("app", "%s: %v", source, err)
	app.Store.Finish(state.RenderInfo{Source: source, Err: err.Error()})
}
