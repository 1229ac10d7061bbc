package app

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"github.com/rook-computer/paint/internal/render"
	"github.com/rook-computer/paint/internal/system"
)

// OutputPath appends the format's extension to base.
func OutputPath(base string, format render.Format) string {
	return base + format.Ext()
}

// Save writes the canvas to base plus the format extension and returns the
// path written.
func (app *App) Save(res *Result, base string, format render.Format) (string, error) {
	path := OutputPath(base, format)
	if err := render.Save(path, res.Canvas.Image(), format); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	app.Logger.Infof("app", "saved %s", path)
	return path, nil
}

// ShowViewer writes a temporary PNG and hands it to the host image viewer.
// The file is left in place; the viewer may still be reading it when the
// process exits.
func (app *App) ShowViewer(ctx context.Context, res *Result, runner system.Runner) (string, error) {
	f, err := os.CreateTemp("", "paint-*.png")
	if err != nil {
		return "", err
	}
	path := f.Name()
	if err := render.Encode(f, res.Canvas.Image(), render.FormatPNG); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	app.Logger.Infof("viewer", "opening %s", path)
	return path, system.OpenViewer(ctx, runner, path)
}

// ShowFramebuffer displays the canvas on device until an exit key is pressed
// or ctx is done.
func (app *App) ShowFramebuffer(ctx context.Context, res *Result, device string) error {
	d := render.NewFBDisplay(device)
	d.Logger = app.Logger
	if err := d.Open(); err != nil {
		return fmt.Errorf("framebuffer %s: %w", d.Device, err)
	}
	defer d.Close()

	restore := system.EnterGraphics(app.Logger)
	defer restore()

	d.Show(res.Canvas.Image(), color.Black)

	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	system.StartExitOnKeys(waitCtx, app.Logger, system.ExitKeys, cancel)
	<-waitCtx.Done()
	return nil
}
