package imagefile

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/echoflaresat/tiff"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Load decodes the image at path, choosing the decoder from its extension.
// TGA has no magic number, so formats are never sniffed.
func Load(path string) (image.Image, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var img image.Image
	switch format {
	case TIFF:
		img, err = decodeTIFF(f)
	case TGA:
		img, err = tga.Decode(f)
	case PNG:
		img, err = png.Decode(f)
	case JPEG:
		img, err = jpeg.Decode(f)
	default:
		return nil, fmt.Errorf("%w: cannot read %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// decodeTIFF reads uncompressed strips straight from f and leaves every
// other layout to the generic decoder inside tiff.Decode. Strip images read
// pixels lazily, so the result is copied before f is closed.
func decodeTIFF(f *os.File) (image.Image, error) {
	img, err := tiff.Decode(f)
	if err != nil {
		return nil, err
	}
	return toNRGBA(img), nil
}

// toNRGBA returns src as an NRGBA image whose bounds start at the origin,
// copying only when needed.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
