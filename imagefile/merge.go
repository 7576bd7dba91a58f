package imagefile

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

var ErrTileMismatch = errors.New("tile size mismatch")

// TileRects splits a width×height image into cols×rows rectangles, listed
// row-major. Leftover pixels go to the last column and row.
func TileRects(width, height, cols, rows int) ([]image.Rectangle, error) {
	if cols <= 0 || rows <= 0 || cols > width || rows > height {
		return nil, fmt.Errorf("cannot split %dx%d into %dx%d tiles", width, height, cols, rows)
	}
	tileW, tileH := width/cols, height/rows

	rects := make([]image.Rectangle, 0, cols*rows)
	for r := 0; r < rows; r++ {
		y0, y1 := r*tileH, (r+1)*tileH
		if r == rows-1 {
			y1 = height
		}
		for c := 0; c < cols; c++ {
			x0, x1 := c*tileW, (c+1)*tileW
			if c == cols-1 {
				x1 = width
			}
			rects = append(rects, image.Rect(x0, y0, x1, y1))
		}
	}
	return rects, nil
}

// Merge stitches cols×rows tiles, given row-major, into one image. Column
// widths come from the first row and row heights from the first column;
// every other tile must agree with them.
func Merge(cols, rows int, tiles []image.Image) (*image.NRGBA, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid tile layout %dx%d", cols, rows)
	}
	if len(tiles) != cols*rows {
		return nil, fmt.Errorf("expected %d tiles, got %d", cols*rows, len(tiles))
	}

	colX := make([]int, cols+1)
	for c := 0; c < cols; c++ {
		colX[c+1] = colX[c] + tiles[c].Bounds().Dx()
	}
	rowY := make([]int, rows+1)
	for r := 0; r < rows; r++ {
		rowY[r+1] = rowY[r] + tiles[r*cols].Bounds().Dy()
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, colX[cols], rowY[rows]))
	for idx, tile := range tiles {
		col, row := idx%cols, idx/cols
		dst := image.Rect(colX[col], rowY[row], colX[col+1], rowY[row+1])
		if tile.Bounds().Dx() != dst.Dx() || tile.Bounds().Dy() != dst.Dy() {
			return nil, fmt.Errorf("%w: tile %d is %dx%d, expected %dx%d",
				ErrTileMismatch, idx, tile.Bounds().Dx(), tile.Bounds().Dy(), dst.Dx(), dst.Dy())
		}
		draw.Draw(canvas, dst, tile, tile.Bounds().Min, draw.Src)
	}
	return canvas, nil
}

// ParseLayout parses a "<cols>x<rows>" tile layout such as "3x2".
func ParseLayout(s string) (cols, rows int, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid tile layout %q (expected NxM)", s)
	}
	cols, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cols in %q: %w", s, err)
	}
	rows, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid rows in %q: %w", s, err)
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("invalid tile layout %q", s)
	}
	return cols, rows, nil
}
