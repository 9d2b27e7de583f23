package shade

import (
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/shade/internal/blend"
)

// Color is a packed 32-bit ARGB value.
//
// Byte layout from most to least significant: alpha, red, green, blue.
// Color is not premultiplied.
type Color uint32

// Common colors.
var (
	Transparent = Pack(0, 0, 0, 0)
	Black       = Pack(0, 0, 0, 255)
	White       = Pack(255, 255, 255, 255)
	Red         = Pack(255, 0, 0, 255)
	Green       = Pack(0, 255, 0, 255)
	Blue        = Pack(0, 0, 255, 255)
)

// Pack builds a Color from 8-bit channels.
func Pack(r, g, b, a uint8) Color {
	return Color(uint32(a)<<blend.ShiftA | uint32(r)<<blend.ShiftR | uint32(g)<<blend.ShiftG | uint32(b))
}

// PackInt builds a Color from integer channels, clamping each to [0, 255].
func PackInt(r, g, b, a int) Color {
	return Color(blend.Clamp255(a)<<blend.ShiftA |
		blend.Clamp255(r)<<blend.ShiftR |
		blend.Clamp255(g)<<blend.ShiftG |
		blend.Clamp255(b))
}

// PackFloat builds a Color from channels in [0, 1], clamping and rounding
// each to the nearest byte.
func PackFloat(r, g, b, a float64) Color {
	return PackInt(round255(r), round255(g), round255(b), round255(a))
}

func round255(v float64) int {
	return int(v*255 + 0.5)
}

// Hex reinterprets an AARRGGBB word as a Color without repacking.
func Hex(argb uint32) Color {
	return Color(argb)
}

// RandomColor returns an opaque color with random RGB channels.
func RandomColor() Color {
	v := rand.Uint32()
	return Color(v | 0xFF000000)
}

// Unpack returns the 8-bit channels of c.
func (c Color) Unpack() (r, g, b, a uint8) {
	return uint8(c >> blend.ShiftR), uint8(c >> blend.ShiftG), uint8(c), uint8(c >> blend.ShiftA)
}

// UnpackNormalized returns the channels of c in [0, 1].
func (c Color) UnpackNormalized() (r, g, b, a float64) {
	r8, g8, b8, a8 := c.Unpack()
	return float64(r8) / 255, float64(g8) / 255, float64(b8) / 255, float64(a8) / 255
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> blend.ShiftR) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> blend.ShiftG) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> blend.ShiftA) }

// WithRed returns c with the red channel replaced.
func (c Color) WithRed(v uint8) Color { return c.withByte(blend.ShiftR, v) }

// WithGreen returns c with the green channel replaced.
func (c Color) WithGreen(v uint8) Color { return c.withByte(blend.ShiftG, v) }

// WithBlue returns c with the blue channel replaced.
func (c Color) WithBlue(v uint8) Color { return c.withByte(blend.ShiftB, v) }

// WithAlpha returns c with the alpha channel replaced.
func (c Color) WithAlpha(v uint8) Color { return c.withByte(blend.ShiftA, v) }

func (c Color) withByte(shift uint, v uint8) Color {
	mask := Color(0xFF) << shift
	return c&^mask | Color(v)<<shift
}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// and scaled to [0, 0xFFFF].
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// ColorModel converts any color.Color to a Color.
var ColorModel = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.R, n.G, n.B, n.A)
}
