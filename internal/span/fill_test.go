package span

import (
	"testing"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"one", 1},
		{"two", 2},
		{"odd", 7},
		{"power of two", 64},
		{"row", 1920},
		{"large odd", 4097},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]uint32, tt.n)
			Fill(buf, 0xFF336699)
			for i, v := range buf {
				if v != 0xFF336699 {
					t.Fatalf("buf[%d] = %08x, want ff336699", i, v)
				}
			}
		})
	}
}

func TestFillSubslice(t *testing.T) {
	buf := make([]uint32, 10)
	Fill(buf[3:7], 1)
	want := []uint32{0, 0, 0, 1, 1, 1, 1, 0, 0, 0}
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func BenchmarkFill(b *testing.B) {
	buf := make([]uint32, 1920*1080)
	for b.Loop() {
		Fill(buf, 0xFF161616)
	}
}

func BenchmarkFillLoop(b *testing.B) {
	buf := make([]uint32, 1920*1080)
	for b.Loop() {
		for i := range buf {
			buf[i] = 0xFF161616
		}
	}
}
