package shade

import (
	"math"

	"github.com/gogpu/shade/internal/blend"
)

// PixelOver composites c over the pixel at (x, y).
//
// Coordinates outside the image, and with EdgeLegacy also row 0 and
// column 0, are ignored. Alpha 0 leaves the pixel untouched, alpha 255
// replaces it, anything else blends with the "over" law in
// internal/blend.
func (img *Image) PixelOver(x, y int, c Color) {
	if !img.writable(x, y) {
		return
	}
	i := y*img.width + x
	img.pix[i] = Color(blend.Over(uint32(img.pix[i]), uint32(c)))
}

// writable reports whether the compositing path may touch (x, y).
func (img *Image) writable(x, y int) bool {
	if img.opts.edge == EdgeLegacy {
		return x > 0 && y > 0 && x < img.width && y < img.height
	}
	return img.inBounds(x, y)
}

// PlotAA splats c at the sub-pixel position (x, y).
//
// The color is distributed over the four pixels around the position with
// bilinear weights; each weight scales the source alpha before compositing.
func (img *Image) PlotAA(x, y float64, c Color) {
	fx := math.Floor(x)
	fy := math.Floor(y)
	tx := x - fx
	ty := y - fy
	ix := int(fx)
	iy := int(fy)

	img.plotCoverage(ix, iy, (1-tx)*(1-ty), c)
	img.plotCoverage(ix+1, iy, tx*(1-ty), c)
	img.plotCoverage(ix, iy+1, (1-tx)*ty, c)
	img.plotCoverage(ix+1, iy+1, tx*ty, c)
}

func (img *Image) plotCoverage(x, y int, weight float64, c Color) {
	cov := uint32(weight*255 + 0.5)
	if cov == 0 {
		return
	}
	img.PixelOver(x, y, Color(blend.ScaleAlpha(uint32(c), cov)))
}
