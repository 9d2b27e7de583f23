package shade

import (
	"testing"
)

func TestPixelOverIdentity(t *testing.T) {
	bg := Pack(10, 20, 30, 255)

	img := newTestImage(t, 4, 4, bg)
	img.PixelOver(2, 2, Pack(200, 200, 200, 0))
	assertPixel(t, img, 2, 2, bg)

	src := Pack(1, 2, 3, 255)
	img.PixelOver(2, 2, src)
	assertPixel(t, img, 2, 2, src)
}

func TestPixelOverMonotonic(t *testing.T) {
	bgs := []Color{Black, White, Pack(30, 200, 90, 255), Pack(255, 0, 128, 255)}
	srcs := []Color{Pack(255, 255, 255, 128), Pack(0, 0, 0, 128), Pack(12, 240, 77, 128)}

	for _, bg := range bgs {
		for _, src := range srcs {
			img := newTestImage(t, 2, 2, bg)
			img.PixelOver(1, 1, src)
			got := img.Get(1, 1)

			chans := [][3]uint8{
				{got.R(), src.R(), bg.R()},
				{got.G(), src.G(), bg.G()},
				{got.B(), src.B(), bg.B()},
			}
			for _, ch := range chans {
				lo, hi := min(ch[1], ch[2]), max(ch[1], ch[2])
				if ch[0] < lo || ch[0] > hi {
					t.Errorf("src %08x over %08x = %08x: channel %d outside [%d, %d]",
						uint32(src), uint32(bg), uint32(got), ch[0], lo, hi)
				}
			}
		}
	}
}

func TestPixelOverOutOfBounds(t *testing.T) {
	img := newTestImage(t, 3, 3, Black)
	for _, p := range [][2]int{{-1, 1}, {1, -1}, {3, 1}, {1, 3}, {100, 100}} {
		img.PixelOver(p[0], p[1], Red)
	}
	for i, c := range img.Pix() {
		if c != Black {
			t.Errorf("pix[%d] modified", i)
		}
	}
}

func TestPixelOverEdgePolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy EdgePolicy
		want   Color
	}{
		{"strict writes origin", EdgeStrict, Red},
		{"legacy skips origin", EdgeLegacy, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newTestImage(t, 3, 3, Black, WithEdgePolicy(tt.policy))
			img.PixelOver(0, 0, Red)
			img.PixelOver(0, 2, Red)
			img.PixelOver(2, 0, Red)
			img.PixelOver(1, 1, Red)

			assertPixel(t, img, 0, 0, tt.want)
			assertPixel(t, img, 0, 2, tt.want)
			assertPixel(t, img, 2, 0, tt.want)
			assertPixel(t, img, 1, 1, Red)
		})
	}
}

func TestPlotAAIntegerPosition(t *testing.T) {
	img := newTestImage(t, 4, 4, Black)
	img.PlotAA(1, 2, White)

	assertPixel(t, img, 1, 2, White)
	assertPixel(t, img, 2, 2, Black)
	assertPixel(t, img, 1, 3, Black)
}

func TestPlotAASplitsCoverage(t *testing.T) {
	img := newTestImage(t, 4, 4, Black)
	img.PlotAA(1.5, 1.5, White)

	// Each of the four pixels receives a quarter of the coverage.
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		got := img.Get(p[0], p[1])
		if got.R() == 0 || got.R() > 70 {
			t.Errorf("pixel %v = %08x, want a dim gray", p, uint32(got))
		}
		if got.R() != got.G() || got.G() != got.B() {
			t.Errorf("pixel %v = %08x, want gray", p, uint32(got))
		}
	}
	assertPixel(t, img, 0, 0, Black)
	assertPixel(t, img, 3, 3, Black)
}
