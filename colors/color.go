package colors

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is a linear colour with float64 channels nominally in [0,1].
// Arithmetic never clamps; only the 8-bit conversions do.
type RGB struct {
	R, G, B float64
}

func New(r, g, b float64) RGB {
	return RGB{R: r, G: g, B: b}
}

// FromSlice builds a colour from exactly three channel values.
func FromSlice(v []float64) (RGB, error) {
	if len(v) != 3 {
		return RGB{}, fmt.Errorf("colour needs 3 channels, got %d", len(v))
	}
	return RGB{R: v[0], G: v[1], B: v[2]}, nil
}

func Red() RGB {
	return RGB{R: 1, G: 0, B: 0}
}

func Black() RGB {
	return RGB{}
}

// Scale returns c * s (scalar).
func (c RGB) Scale(s float64) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Clamp01 clamps each channel into [0,1]. NaN becomes 0.
func (c RGB) Clamp01() RGB {
	return RGB{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

// ToNRGBA clamps, scales to 0..255 and rounds to nearest.
func (c RGB) ToNRGBA() color.NRGBA {
	cc := c.Clamp01()
	return color.NRGBA{
		R: to8bit(cc.R),
		G: to8bit(cc.G),
		B: to8bit(cc.B),
		A: 255,
	}
}

// --- helpers ---

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8bit(x float64) uint8 {
	return uint8(math.Round(255.0 * x))
}
