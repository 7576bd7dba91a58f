package imagefile

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"os"
	"testing"

	"github.com/echoflaresat/tiff"
	xtiff "golang.org/x/image/tiff"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 60), B: 200, A: 255})
		}
	}
	return img
}

func imagesEqual(t *testing.T, a, b image.Image) {
	t.Helper()
	if a.Bounds().Dx() != b.Bounds().Dx() || a.Bounds().Dy() != b.Bounds().Dy() {
		t.Fatalf("bounds differ: %v vs %v", a.Bounds(), b.Bounds())
	}
	ab, bb := a.Bounds(), b.Bounds()
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ca := color.NRGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y))
			cb := color.NRGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y))
			if ca != cb {
				t.Fatalf("pixel (%d,%d): %v vs %v", x, y, ca, cb)
			}
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"out.png":      PNG,
		"out.JPG":      JPEG,
		"a/b/out.jpeg": JPEG,
		"out.tif":      TIFF,
		"out.tiff":     TIFF,
		"out.bmp":      BMP,
		"out.webp":     WebP,
		"ray.ppm":      PPM,
		"tile.tga":     TGA,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	for _, path := range []string{"out.gif", "noext", "out.tgax"} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) err = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestWriteLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := gradient(5, 4)
	if err := Write(path, src); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	imagesEqual(t, src, got)
}

func TestEncodeHeaders(t *testing.T) {
	cases := []struct {
		format Format
		magic  string
	}{
		{PNG, "\x89PNG"},
		{JPEG, "\xff\xd8"},
		{TIFF, "II*\x00"},
		{BMP, "BM"},
		{WebP, "RIFF"},
		{PPM, "P3\n"},
		{TGA, "\x00\x00\x02"},
	}
	for _, c := range cases {
		t.Run(string(c.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, c.format, gradient(3, 3)); err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(buf.String(), c.magic) {
				t.Fatalf("output starts with %q, want %q", buf.Bytes()[:4], c.magic)
			}
		})
	}
}

func TestEncodeTIFFRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	src := gradient(6, 2)
	if err := Encode(&buf, TIFF, src); err != nil {
		t.Fatal(err)
	}
	got, err := xtiff.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	imagesEqual(t, src, got)
}

func TestEncodePPM(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 128, B: 7, A: 255})

	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		t.Fatal(err)
	}
	want := "P3\n2 1\n255\n255 0 0\n0 128 7\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteUnsupported(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "out.gif"), gradient(1, 1))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestTileRectsAndMerge(t *testing.T) {
	src := gradient(7, 5)
	rects, err := TileRects(7, 5, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rects) != 6 {
		t.Fatalf("got %d tiles", len(rects))
	}
	if rects[2] != image.Rect(4, 0, 7, 2) || rects[5] != image.Rect(4, 2, 7, 5) {
		t.Fatalf("uneven tiles not absorbed by last column/row: %v", rects)
	}

	tiles := make([]image.Image, len(rects))
	for i, r := range rects {
		tiles[i] = src.SubImage(r)
	}
	merged, err := Merge(3, 2, tiles)
	if err != nil {
		t.Fatal(err)
	}
	imagesEqual(t, src, merged)
}

func TestMergeRejectsMismatch(t *testing.T) {
	tiles := []image.Image{gradient(2, 2), gradient(3, 2)}
	if _, err := Merge(1, 2, tiles); !errors.Is(err, ErrTileMismatch) {
		t.Fatalf("err = %v, want ErrTileMismatch", err)
	}
	if _, err := Merge(2, 2, tiles); err == nil {
		t.Fatal("expected error for wrong tile count")
	}
}

func TestTileRectsInvalid(t *testing.T) {
	for _, c := range [][4]int{{10, 10, 0, 1}, {10, 10, 11, 1}, {4, 4, 2, -1}} {
		if _, err := TileRects(c[0], c[1], c[2], c[3]); err == nil {
			t.Errorf("TileRects%v: expected error", c)
		}
	}
}

func TestParseLayout(t *testing.T) {
	cols, rows, err := ParseLayout("3x2")
	if err != nil || cols != 3 || rows != 2 {
		t.Fatalf("ParseLayout(3x2) = %d, %d, %v", cols, rows, err)
	}
	for _, s := range []string{"", "3", "ax2", "3x", "0x1", "2x2x2"} {
		if _, _, err := ParseLayout(s); err == nil {
			t.Errorf("ParseLayout(%q): expected error", s)
		}
	}
}

func TestLoadUncompressedTIFFStrips(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 6, 3))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 13)
	}
	path := filepath.Join(t.TempDir(), "strips.tif")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := xtiff.Encode(f, src, &xtiff.Options{Compression: xtiff.Uncompressed}); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	// The strip reader returns its own image type; the generic decoder
	// would hand back *image.Gray.
	f, err = os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := tiff.Decode(f)
	f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := direct.(*image.Gray); ok {
		t.Fatal("uncompressed strips were not read by the strip reader")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(*image.NRGBA); !ok {
		t.Fatalf("Load returned %T, want a copied *image.NRGBA", got)
	}
	imagesEqual(t, src, got)
}

func TestWriteLoadCompressedTIFF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tiff")
	src := gradient(9, 4)
	if err := Write(path, src); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	imagesEqual(t, src, got)
}

func TestWriteLoadTGA(t *testing.T) {
	dir := t.TempDir()
	src := gradient(5, 4)

	full := filepath.Join(dir, "full.tga")
	if err := Write(full, src); err != nil {
		t.Fatal(err)
	}
	got, err := Load(full)
	if err != nil {
		t.Fatal(err)
	}
	imagesEqual(t, src, got)

	// Tiles cut from a larger image do not start at the origin.
	part := src.SubImage(image.Rect(2, 1, 5, 4))
	tile := filepath.Join(dir, "tile.tga")
	if err := Write(tile, part); err != nil {
		t.Fatal(err)
	}
	got, err = Load(tile)
	if err != nil {
		t.Fatal(err)
	}
	imagesEqual(t, part, got)
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bmp")
	if err := Write(path, gradient(2, 2)); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}
