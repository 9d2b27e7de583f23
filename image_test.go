package shade

import (
	"errors"
	"testing"
)

// newTestImage creates an image or fails the test.
func newTestImage(t testing.TB, w, h int, c Color, opts ...ImageOption) *Image {
	t.Helper()
	img, err := NewImageColor(w, h, c, opts...)
	if err != nil {
		t.Fatalf("NewImageColor(%d, %d) error = %v", w, h, err)
	}
	return img
}

// assertPixel fails if the pixel at (x, y) is not want.
func assertPixel(t *testing.T, img *Image, x, y int, want Color) {
	t.Helper()
	if got := img.Get(x, y); got != want {
		t.Errorf("pixel (%d, %d) = %08x, want %08x", x, y, uint32(got), uint32(want))
	}
}

func TestNewImage(t *testing.T) {
	img, err := NewImage(3, 2)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	if img.Width() != 3 || img.Height() != 2 || len(img.Pix()) != 6 {
		t.Fatalf("got %dx%d with %d pixels", img.Width(), img.Height(), len(img.Pix()))
	}
	for i, c := range img.Pix() {
		if c != Transparent {
			t.Errorf("pix[%d] = %08x, want transparent", i, uint32(c))
		}
	}
}

func TestNewImageInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("error = %v, want ErrInvalidDimensions", err)
			}
			if img != nil {
				t.Error("expected nil image on error")
			}
			if _, err := NewImageColor(tt.w, tt.h, Red); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewImageColor error = %v, want ErrInvalidDimensions", err)
			}
			if _, err := NewImageFromData(tt.w, tt.h, nil); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewImageFromData error = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestNewImageColor(t *testing.T) {
	img := newTestImage(t, 4, 4, Blue)
	for i, c := range img.Pix() {
		if c != Blue {
			t.Fatalf("pix[%d] = %08x, want blue", i, uint32(c))
		}
	}
}

func TestNewImageFromData(t *testing.T) {
	data := []Color{Red, Green, Blue, White}
	img, err := NewImageFromData(2, 2, data)
	if err != nil {
		t.Fatalf("NewImageFromData() error = %v", err)
	}
	assertPixel(t, img, 1, 0, Green)
	assertPixel(t, img, 0, 1, Blue)

	// The image wraps the slice without copying.
	data[3] = Black
	assertPixel(t, img, 1, 1, Black)

	if _, err := NewImageFromData(2, 2, data[:3]); !errors.Is(err, ErrDataSize) {
		t.Errorf("short data error = %v, want ErrDataSize", err)
	}
}

func TestFillIdempotent(t *testing.T) {
	c := Hex(0xFF161616)
	img := newTestImage(t, 7, 5, Red)
	img.Fill(c)
	once := append([]Color(nil), img.Pix()...)
	img.Fill(c)

	for i := range once {
		if once[i] != c || img.Pix()[i] != c {
			t.Fatalf("pix[%d] = %08x after fill, want %08x", i, uint32(img.Pix()[i]), uint32(c))
		}
	}
}

func TestClear(t *testing.T) {
	img := newTestImage(t, 3, 3, White)
	img.Clear()
	for i, c := range img.Pix() {
		if c != Transparent {
			t.Fatalf("pix[%d] = %08x, want transparent", i, uint32(c))
		}
	}
}

func TestGetSetOutOfBounds(t *testing.T) {
	img := newTestImage(t, 2, 2, Black)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		img.Set(p[0], p[1], Red)
		if got := img.Get(p[0], p[1]); got != Transparent {
			t.Errorf("Get(%d, %d) = %08x, want transparent", p[0], p[1], uint32(got))
		}
	}
	for i, c := range img.Pix() {
		if c != Black {
			t.Errorf("pix[%d] modified by out-of-bounds Set", i)
		}
	}
}

func TestRow(t *testing.T) {
	img := newTestImage(t, 3, 2, Black)
	img.Set(1, 1, Red)
	row := img.Row(1)
	if len(row) != 3 || row[1] != Red {
		t.Errorf("Row(1) = %v", row)
	}
	if img.Row(2) != nil || img.Row(-1) != nil {
		t.Error("Row out of range should be nil")
	}
}

func TestClone(t *testing.T) {
	img := newTestImage(t, 2, 2, Red, WithLineMode(LineAntialiased))
	c := img.Clone()
	c.Set(0, 0, Blue)

	assertPixel(t, img, 0, 0, Red)
	assertPixel(t, c, 0, 0, Blue)
	if c.opts.lineMode != LineAntialiased {
		t.Error("Clone did not keep options")
	}
}

func TestImageInterface(t *testing.T) {
	img := newTestImage(t, 5, 4, Green)
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 4 {
		t.Errorf("Bounds() = %v", b)
	}
	if img.At(1, 1) != Green {
		t.Errorf("At(1, 1) = %v", img.At(1, 1))
	}
	if img.ColorModel() != ColorModel {
		t.Error("ColorModel() mismatch")
	}
}

func BenchmarkFill(b *testing.B) {
	img := newTestImage(b, 1920, 1200, Black)
	for b.Loop() {
		img.Fill(Hex(0xFF161616))
	}
}
