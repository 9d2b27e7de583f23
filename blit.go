package shade

import "github.com/gogpu/shade/internal/blend"

// DrawBitmap composites src onto img with src's top-left corner at (x, y).
//
// The source rectangle is clipped to the destination. Per source pixel:
// alpha 0 is skipped, alpha 255 is copied, anything else is blended with
// PixelOver.
func (img *Image) DrawBitmap(src *Image, x, y int) {
	if src == nil {
		return
	}
	x0, x1 := clipSpan(x, src.width, img.width)
	y0, y1 := clipSpan(y, src.height, img.height)
	if x0 == x1 || y0 == y1 {
		return
	}

	for row := y0; row < y1; row++ {
		srcRow := src.pix[(row-y)*src.width : (row-y+1)*src.width]
		dstOff := row * img.width
		for col := x0; col < x1; col++ {
			c := srcRow[col-x]
			switch blend.Alpha(uint32(c)) {
			case 0:
			case 255:
				img.pix[dstOff+col] = c
			default:
				img.PixelOver(col, row, c)
			}
		}
	}
}

// DrawBitmapV is like DrawBitmap with the position rounded from pos.
func (img *Image) DrawBitmapV(src *Image, pos Vector2) {
	x, y := pos.Round()
	img.DrawBitmap(src, x, y)
}
