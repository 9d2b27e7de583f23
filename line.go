package shade

import "math"

// fixedShift is the number of fractional bits in the line accumulator.
const fixedShift = 16

// DrawLine draws a one-pixel line from start to end, both inclusive.
// The rasterizer is chosen by the image's LineMode.
//
// Pixels outside the image are dropped by PixelOver, so lines are clipped
// implicitly.
func (img *Image) DrawLine(start, end Vector2, c Color) {
	if img.opts.lineMode == LineAntialiased {
		img.DrawLineAA(start, end, c)
		return
	}
	img.DrawLineFast(start, end, c)
}

// DrawLineFast draws a line with 16.16 fixed-point stepping.
//
// Endpoints are truncated to integers. The loop walks the dominant axis one
// pixel at a time and advances the minor axis by a constant fixed-point
// delta. The accumulator starts at one half so the minor coordinate is
// rounded, which makes the last pixel land exactly on end for lines shorter
// than 32768 pixels. A zero-length line plots the start pixel.
func (img *Image) DrawLineFast(start, end Vector2, c Color) {
	x, y := start.Trunc()
	x2, y2 := end.Trunc()

	longLen := x2 - x
	shortLen := y2 - y
	yLonger := abs(shortLen) > abs(longLen)
	if yLonger {
		longLen, shortLen = shortLen, longLen
	}

	var dec int
	if longLen != 0 {
		dec = (shortLen << fixedShift) / abs(longLen)
	}
	step := 1
	if longLen < 0 {
		step = -1
	}

	// Only steps whose major coordinate lands inside the image can plot.
	base, dim := x, img.width
	if yLonger {
		base, dim = y, img.height
	}
	lo, hi := 0, abs(longLen)
	if step > 0 {
		lo = max(lo, -base)
		hi = min(hi, dim-1-base)
	} else {
		lo = max(lo, base-dim+1)
		hi = min(hi, base)
	}

	j := 1<<(fixedShift-1) + lo*dec
	for i := lo; i <= hi; i++ {
		minor := j >> fixedShift
		if yLonger {
			img.PixelOver(x+minor, y+i*step, c)
		} else {
			img.PixelOver(x+i*step, y+minor, c)
		}
		j += dec
	}
}

// DrawLineAA draws an antialiased line by stepping along the dominant axis
// in unit increments and splatting each sub-pixel position with PlotAA.
func (img *Image) DrawLineAA(start, end Vector2, c Color) {
	d := end.Sub(start)
	n := int(math.Ceil(max(math.Abs(d.X), math.Abs(d.Y))))
	if n == 0 {
		img.PlotAA(start.X, start.Y, c)
		return
	}
	inc := d.Mul(1 / float64(n))
	p := start
	for range n {
		img.PlotAA(p.X, p.Y, c)
		p = p.Add(inc)
	}
	img.PlotAA(end.X, end.Y, c)
}

// DrawPolyline draws connected segments through points.
// Shared vertices are plotted once per segment; translucent colors therefore
// compound at the joins.
func (img *Image) DrawPolyline(points []Vector2, c Color) {
	if len(points) == 1 {
		img.DrawLine(points[0], points[0], c)
		return
	}
	for i := 1; i < len(points); i++ {
		img.DrawLine(points[i-1], points[i], c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
