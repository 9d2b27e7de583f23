package shade

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestClipSpan(t *testing.T) {
	tests := []struct {
		name                 string
		start, extent, limit int
		lo, hi               int
	}{
		{"inside", 2, 3, 10, 2, 5},
		{"left overhang", -3, 5, 10, 0, 2},
		{"right overhang", 8, 5, 10, 8, 10},
		{"covers all", -5, 50, 10, 0, 10},
		{"fully left", -10, 5, 10, 0, 0},
		{"fully right", 12, 5, 10, 10, 10},
		{"at limit", 10, 1, 10, 10, 10},
		{"zero extent", 4, 0, 10, 4, 4},
		{"negative extent", 4, -3, 10, 4, 4},
		{"max extent", 3, math.MaxInt, 10, 3, 10},
		{"max extent from left", -5, math.MaxInt, 10, 0, 10},
		{"min start", math.MinInt, math.MaxInt, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := clipSpan(tt.start, tt.extent, tt.limit)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("clipSpan(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.start, tt.extent, tt.limit, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestDrawRectHugeExtent(t *testing.T) {
	img := newTestImage(t, 5, 4, Transparent)
	img.DrawRect(-2, 1, math.MaxInt, math.MaxInt, Red)
	for y := range 4 {
		for x := range 5 {
			want := Red
			if y == 0 {
				want = Transparent
			}
			assertPixel(t, img, x, y, want)
		}
	}
}

// TestDrawRectScenario fills a 2x2 opaque red square in a 4x4 transparent image.
func TestDrawRectScenario(t *testing.T) {
	img, err := NewImage(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	img.DrawRect(1, 1, 2, 2, Red)

	for y := range 4 {
		for x := range 4 {
			want := Transparent
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				want = Red
			}
			assertPixel(t, img, x, y, want)
		}
	}
}

func TestDrawRectV(t *testing.T) {
	img := newTestImage(t, 4, 4, Black)
	img.DrawRectV(V2(0.6, 1.4), 1, 1, Red)
	assertPixel(t, img, 1, 1, Red)
}

func TestDrawRectTranslucent(t *testing.T) {
	img := newTestImage(t, 4, 4, Black)
	half := Pack(255, 255, 255, 128)
	img.DrawRect(0, 0, 2, 1, half)

	want := Pack(128, 128, 128, 255)
	assertPixel(t, img, 0, 0, want)
	assertPixel(t, img, 1, 0, want)
	assertPixel(t, img, 2, 0, Black)
}

func TestDrawRectTransparent(t *testing.T) {
	img := newTestImage(t, 4, 4, Black)
	img.DrawRect(0, 0, 4, 4, Pack(255, 255, 255, 0))
	for i, c := range img.Pix() {
		if c != Black {
			t.Fatalf("pix[%d] modified by transparent rect", i)
		}
	}
}

// TestDrawRectClippingSafety draws random rectangles that straddle or miss a
// 10x10 target and checks that nothing outside the requested area changes.
func TestDrawRectClippingSafety(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	colors := []Color{Red, Pack(0, 255, 0, 100)}

	for i := range 2000 {
		img := newTestImage(t, 10, 10, Black)
		x, y := rng.IntN(40)-20, rng.IntN(40)-20
		w, h := rng.IntN(30)-5, rng.IntN(30)-5
		c := colors[i%len(colors)]

		img.DrawRect(x, y, w, h, c)

		for py := range 10 {
			for px := range 10 {
				inside := px >= x && px < x+w && py >= y && py < y+h
				got := img.Get(px, py)
				if !inside && got != Black {
					t.Fatalf("rect (%d,%d %dx%d) wrote outside at (%d,%d)", x, y, w, h, px, py)
				}
				if inside && got == Black {
					t.Fatalf("rect (%d,%d %dx%d) missed (%d,%d)", x, y, w, h, px, py)
				}
			}
		}
	}
}

func BenchmarkDrawRectOpaque(b *testing.B) {
	img := newTestImage(b, 1920, 1200, Black)
	for b.Loop() {
		img.DrawRect(0, 0, 1920, 700, Hex(0xFF333333))
	}
}

func BenchmarkDrawRectTranslucent(b *testing.B) {
	img := newTestImage(b, 1920, 1200, Black)
	for b.Loop() {
		img.DrawRect(0, 0, 400, 700, Hex(0x80A08563))
	}
}
