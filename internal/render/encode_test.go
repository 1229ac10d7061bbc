package render

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	c := NewCanvas(32, 16, white)
	c.Image().SetRGBA(3, 5, red)
	return c.Image()
}

func TestEncode(t *testing.T) {
	img := testImage()
	for _, tc := range []struct {
		format Format
		decode func(*bytes.Reader) (image.Image, error)
	}{
		{FormatPNG, func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) }},
		{FormatTIFF, func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) }},
		{FormatBMP, func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) }},
	} {
		t.Run(string(tc.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, img, tc.format))
			got, err := tc.decode(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), got.Bounds())

			r, g, b, _ := got.At(3, 5).RGBA()
			assert.Equal(t, [3]uint32{0xFFFF, 0, 0}, [3]uint32{r, g, b})
		})
	}
}

func TestEncode_pdf(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(), FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestEncode_unknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, testImage(), Format("gif"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for in, expected := range map[string]Format{
		"":     FormatPNG,
		"PNG":  FormatPNG,
		"tif":  FormatTIFF,
		"tiff": FormatTIFF,
		"bmp":  FormatBMP,
		" pdf": FormatPDF,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, got, in)
	}
	_, err := ParseFormat("jpeg")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, Save(path, testImage(), FormatPNG))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, red)
	src.SetRGBA(1, 0, blue)
	dst := image.NewRGBA(image.Rect(0, 0, 8, 4))
	Scale(dst, image.Rect(0, 0, 8, 4), src)
	assert.Equal(t, red, dst.RGBAAt(1, 2))
	assert.Equal(t, blue, dst.RGBAAt(6, 3))
}

func TestBlitToFB(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 3, 3))
	frame.SetRGBA(1, 1, red)
	dev := image.NewRGBA(image.Rect(0, 0, 3, 3))
	blitToFB(dev, frame)
	assert.Equal(t, red, dev.RGBAAt(1, 1))
	assert.Equal(t, uint8(0xFF), dev.RGBAAt(0, 0).A)
}

func TestFBDisplay_unopened(t *testing.T) {
	d := NewFBDisplay("")
	assert.Equal(t, DefaultFramebuffer, d.Device)
	d.Show(testImage(), black)
	d.Close()
	d.Close()
}
