package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/ericlevine/linecode"
	"github.com/ericlevine/linecode/bitutil"
)

// maxRasterPixels bounds the size of a rendered matrix.
const maxRasterPixels = 1 << 28

// Raster scales the pattern into a BitMatrix of XDim pixels per module and
// Height rows, with Margin quiet modules on both sides.
func Raster(p linecode.Pattern, opts ...Option) (*bitutil.BitMatrix, error) {
	cfg, err := newConfig(defaultRasterHeight, defaultOneDMargin, opts)
	if err != nil {
		return nil, err
	}
	return rasterize(p, cfg)
}

func rasterize(p linecode.Pattern, cfg *Config) (*bitutil.BitMatrix, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("render: empty pattern: %w", linecode.ErrGenerate)
	}
	modules := len(p) + 2*cfg.Margin
	if uint64(modules)*uint64(cfg.XDim)*uint64(cfg.Height) > maxRasterPixels {
		return nil, fmt.Errorf("render: %d modules at xdim %d and height %d are too large to rasterize: %w",
			modules, cfg.XDim, cfg.Height, linecode.ErrConversion)
	}
	width := modules * cfg.XDim

	row := bitutil.NewBitArray(width)
	for i, m := range p {
		if m != 0 {
			x := (cfg.Margin + i) * cfg.XDim
			row.SetRange(x, x+cfg.XDim)
		}
	}
	output := bitutil.NewBitMatrix(width, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		output.SetRow(y, row)
	}
	return output, nil
}

// Image adapts a BitMatrix to image.Image. Set bits are black.
type Image struct {
	m *bitutil.BitMatrix
}

// NewImage wraps m.
func NewImage(m *bitutil.BitMatrix) *Image {
	return &Image{m: m}
}

func (img *Image) ColorModel() color.Model {
	return color.GrayModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.m.Width(), img.m.Height())
}

func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return color.White
	}
	if img.m.Get(x, y) {
		return color.Black
	}
	return color.White
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// WriteBMP encodes img as BMP.
func WriteBMP(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode bmp: %w", err)
	}
	return nil
}
