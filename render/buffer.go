package render

import (
	"image"

	"github.com/echoflaresat/spherecast/colors"
)

// PixelBuffer holds unclamped colours row-major, len(Pix) = Width*Height.
// A fresh buffer is black.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []colors.RGB
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]colors.RGB, width*height),
	}
}

// At returns the colour at (col, row).
func (b *PixelBuffer) At(col, row int) colors.RGB {
	return b.Pix[row*b.Width+col]
}

// Set stores c at (col, row).
func (b *PixelBuffer) Set(col, row int, c colors.RGB) {
	b.Pix[row*b.Width+col] = c
}

// Row returns the slice backing one row.
func (b *PixelBuffer) Row(row int) []colors.RGB {
	return b.Pix[row*b.Width : (row+1)*b.Width]
}

// Image converts the buffer to 8-bit NRGBA, clamping and rounding channels
// and mapping non-finite values to the nearest bound (NaN to 0).
func (b *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x, c := range b.Row(y) {
			img.SetNRGBA(x, y, c.ToNRGBA())
		}
	}
	return img
}
