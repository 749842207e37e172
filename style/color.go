package style

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with float channels, conventionally in [0,1].
// Values outside that range are stored as given.
type Color [4]float32

// NewColor returns a color from four float channels.
func NewColor(r, g, b, a float32) Color { return Color{r, g, b, a} }

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

// RGBA implements color.Color. Channels are clamped to [0,1] for the
// conversion only; the stored value is not modified.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToNRGBA().RGBA()
}

// ToNRGBA converts to a non-premultiplied 8-bit color.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel8(c[0]),
		G: channel8(c[1]),
		B: channel8(c[2]),
		A: channel8(c[3]),
	}
}

// Hex formats the RGB channels as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Hex()
}

func channel8(v float32) uint8 {
	if math.IsNaN(float64(v)) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a two component vector used by spacing and padding metrics.
type Vec2 struct {
	X, Y float32
}
