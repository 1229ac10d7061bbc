package render

import (
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/paint/internal/render/layout"
)

// DefaultFramebuffer is the device opened when none is configured.
const DefaultFramebuffer = "/dev/fb0"

// FBDisplay shows a finished canvas on a Linux framebuffer device.
type FBDisplay struct {
	Device string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	fbDev *fb.Device
}

func NewFBDisplay(device string) *FBDisplay {
	if device == "" {
		device = DefaultFramebuffer
	}
	return &FBDisplay{Device: device}
}

func (d *FBDisplay) Open() error {
	dev, err := fb.Open(d.Device)
	if err != nil {
		return err
	}
	d.fbDev = dev
	if d.Logger != nil {
		bounds := dev.Bounds()
		d.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", d.Device, bounds.Dx(), bounds.Dy())
	}
	return nil
}

// Close releases the device; it is safe to call on a display that was never
// opened.
func (d *FBDisplay) Close() {
	if d.fbDev == nil {
		return
	}
	d.fbDev.Close()
	d.fbDev = nil
}

// Show letterboxes img onto the framebuffer, keeping its aspect ratio.
func (d *FBDisplay) Show(img *image.RGBA, letterbox color.Color) {
	if d.fbDev == nil {
		return
	}
	bounds := d.fbDev.Bounds()
	frame := image.NewRGBA(bounds)
	draw.Draw(frame, bounds, &image.Uniform{C: letterbox}, image.Point{}, draw.Src)
	Scale(frame, layout.FitInto(bounds, img.Bounds().Size()), img)
	blitToFB(d.fbDev, frame)
	if d.Logger != nil {
		d.Logger.Infof("fb", "frame shown, canvas=%dx%d", img.Rect.Dx(), img.Rect.Dy())
	}
}

// Scale draws src into rect of dst with nearest-neighbor sampling, so
// pixel-art scenes stay crisp.
func Scale(dst draw.Image, rect image.Rectangle, src image.Image) {
	if rect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(dst, rect, src, src.Bounds(), xdraw.Src, nil)
}

// blitToFB copies frame to the device pixel by pixel with opaque alpha.
func blitToFB(dev draw.Image, frame *image.RGBA) {
	bounds := dev.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := frame.RGBAAt(x, y)
			dev.Set(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
