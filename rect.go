package shade

import "github.com/gogpu/shade/internal/span"

// clipSpan clips [start, start+extent) to [0, limit).
// The result is empty (lo == hi) when nothing remains. The end saturates at
// limit, so extents up to math.MaxInt do not overflow.
func clipSpan(start, extent, limit int) (lo, hi int) {
	lo = max(0, min(limit, start))
	end := start
	switch {
	case extent <= 0:
	case start < 0 || extent <= limit-start:
		end = start + extent
	default:
		end = limit
	}
	hi = max(lo, min(limit, end))
	return lo, hi
}

// DrawRect fills the rectangle with top-left (x, y) and the given size.
//
// The rectangle is clipped to the image. Opaque colors are written one
// scanline at a time with a bulk fill; translucent colors go through
// PixelOver for every covered pixel; fully transparent colors draw nothing.
func (img *Image) DrawRect(x, y, width, height int, c Color) {
	x0, x1 := clipSpan(x, width, img.width)
	y0, y1 := clipSpan(y, height, img.height)
	if x0 == x1 || y0 == y1 {
		return
	}

	switch c.A() {
	case 0:
		return
	case 255:
		for row := y0; row < y1; row++ {
			off := row * img.width
			span.Fill(img.pix[off+x0:off+x1], c)
		}
	default:
		for row := y0; row < y1; row++ {
			for col := x0; col < x1; col++ {
				img.PixelOver(col, row, c)
			}
		}
	}
}

// DrawRectV is like DrawRect with the position rounded from pos.
func (img *Image) DrawRectV(pos Vector2, width, height int, c Color) {
	x, y := pos.Round()
	img.DrawRect(x, y, width, height, c)
}
