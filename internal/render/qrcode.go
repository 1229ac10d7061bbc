package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/skip2/go-qrcode"

	"github.com/rook-computer/paint/internal/render/layout"
	"github.com/rook-computer/paint/internal/scene"
)

// GenerateQRCodeImage returns a QR code for payload with dark modules in fg
// and transparent light modules. The image is at least sizePx wide; the
// encoder grows it when sizePx is below one pixel per module.
func GenerateQRCodeImage(payload string, sizePx int, fg color.Color) (image.Image, error) {
	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qrCode.ForegroundColor = fg
	qrCode.BackgroundColor = color.Transparent

	return qrCode.Image(sizePx), nil
}

func (c *Canvas) drawQRCode(q scene.QRCode, col color.RGBA) error {
	img, err := GenerateQRCodeImage(q.Data, q.Size, col)
	if err != nil {
		return err
	}
	dst := layout.CenteredAt(q.Center.X, q.Center.Y, img.Bounds().Size())
	draw.Draw(c.img, dst, img, img.Bounds().Min, draw.Over)
	return nil
}
