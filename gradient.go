package shade

import (
	"math"

	"github.com/gogpu/shade/internal/span"
)

// GradientAxis selects the direction of a linear gradient.
type GradientAxis int

const (
	// GradientHorizontal paints horizontal bands: every row is one color and
	// the color runs from start at the top row to end at the bottom row.
	GradientHorizontal GradientAxis = iota

	// GradientVertical paints vertical bands: every column is one color and
	// the color runs from start at the left column to end at the right column.
	GradientVertical
)

// String returns the axis name.
func (a GradientAxis) String() string {
	switch a {
	case GradientHorizontal:
		return "Horizontal"
	case GradientVertical:
		return "Vertical"
	default:
		return unknownMode
	}
}

// LinearGradient creates an image filled with a two-color linear gradient.
//
// The first band is exactly start and the last band is exactly end; bands in
// between are rounded to the nearest channel value, so every channel moves
// monotonically. An axis one pixel long holds only start.
func LinearGradient(width, height int, start, end Color, axis GradientAxis, opts ...ImageOption) (*Image, error) {
	img, err := NewImage(width, height, opts...)
	if err != nil {
		return nil, err
	}

	steps := height
	if axis == GradientVertical {
		steps = width
	}
	ramp := gradientRamp(start, end, steps)

	switch axis {
	case GradientVertical:
		// Columns are not contiguous, so build the first row and copy it down.
		first := img.pix[:width]
		copy(first, ramp)
		for y := 1; y < height; y++ {
			copy(img.pix[y*width:(y+1)*width], first)
		}
	default:
		for y, c := range ramp {
			span.Fill(img.pix[y*width:(y+1)*width], c)
		}
	}
	return img, nil
}

// gradientRamp returns n colors stepping from start to end.
func gradientRamp(start, end Color, n int) []Color {
	ramp := make([]Color, n)
	if n == 1 {
		ramp[0] = start
		return ramp
	}

	r0, g0, b0, a0 := start.Unpack()
	r1, g1, b1, a1 := end.Unpack()
	steps := float64(n - 1)
	dr := (float64(r1) - float64(r0)) / steps
	dg := (float64(g1) - float64(g0)) / steps
	db := (float64(b1) - float64(b0)) / steps
	da := (float64(a1) - float64(a0)) / steps

	for i := range ramp {
		t := float64(i)
		ramp[i] = PackInt(
			channelAt(r0, dr, t),
			channelAt(g0, dg, t),
			channelAt(b0, db, t),
			channelAt(a0, da, t),
		)
	}
	return ramp
}

func channelAt(c0 uint8, delta, t float64) int {
	return int(math.Round(float64(c0) + delta*t))
}
