package pixel

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Shading factors shared by the icon renderers.
const (
	LightFactor    = 1.3
	DarkFactor     = 0.7
	VeryDarkFactor = 0.5
)

// RGB builds an opaque color.
func RGB(r, g, b uint8) color.NRGBA {
	return color.NRGBA{r, g, b, 255}
}

// Hex builds an opaque color from 0xRRGGBB.
func Hex(v uint32) color.NRGBA {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// Lighten multiplies each channel by f, rounding and clamping at 255.
// Alpha is kept.
func Lighten(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: clamp8(math.Round(float64(c.R) * f)),
		G: clamp8(math.Round(float64(c.G) * f)),
		B: clamp8(math.Round(float64(c.B) * f)),
		A: c.A,
	}
}

// Darken multiplies each channel by f and floors the result. Alpha is kept.
func Darken(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: clamp8(math.Floor(float64(c.R) * f)),
		G: clamp8(math.Floor(float64(c.G) * f)),
		B: clamp8(math.Floor(float64(c.B) * f)),
		A: c.A,
	}
}

// HexString formats the color channels as #rrggbb.
func HexString(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
