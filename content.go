package shade

import (
	"errors"
	"image"
)

// Content produces the pixels of a sprite.
//
// Each sprite kind carries the data it needs and regenerates itself through
// Render; the sprite decides when to call it.
type Content interface {
	Render(width, height int, opts ...ImageOption) (*Image, error)
}

// FillContent renders a uniform color.
type FillContent struct {
	Color Color
}

// Render implements Content.
func (f FillContent) Render(width, height int, opts ...ImageOption) (*Image, error) {
	return NewImageColor(width, height, f.Color, opts...)
}

// GradientContent renders a two-color linear gradient.
type GradientContent struct {
	Start, End Color
	Axis       GradientAxis
}

// Render implements Content.
func (g GradientContent) Render(width, height int, opts ...ImageOption) (*Image, error) {
	return LinearGradient(width, height, g.Start, g.End, g.Axis, opts...)
}

// WaveformContent renders a scrolling window of a waveform.
type WaveformContent struct {
	Wave   *Waveform
	Start  int
	Range  int
	Color  Color
	Smooth bool
}

// ErrNoWaveform is returned when a WaveformContent has no waveform attached.
var ErrNoWaveform = errors.New("shade: no waveform")

// Render implements Content.
func (w *WaveformContent) Render(width, height int, opts ...ImageOption) (*Image, error) {
	if w.Wave == nil {
		return nil, ErrNoWaveform
	}
	return RenderWaveform(width, height, w.Wave, w.Start, w.Range, w.Color, &WaveformOptions{
		Smooth: w.Smooth,
		Image:  opts,
	})
}

// Scroll moves the window by delta samples, keeping it inside the waveform.
// It reports whether the window moved.
func (w *WaveformContent) Scroll(delta int) bool {
	limit := max(0, w.Wave.SampleCount()-w.Range)
	next := min(limit, max(0, w.Start+delta))
	if next == w.Start {
		return false
	}
	w.Start = next
	return true
}

// BitmapContent renders a source image resampled to the sprite size.
type BitmapContent struct {
	Source image.Image
	Scaler Scaler
}

// Render implements Content. The source is copied as-is when it already has
// the requested size.
func (b BitmapContent) Render(width, height int, opts ...ImageOption) (*Image, error) {
	if b.Source == nil {
		return NewImage(width, height, opts...)
	}
	bounds := b.Source.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return FromImage(b.Source, opts...)
	}
	return Scale(b.Source, width, height, b.Scaler, opts...)
}
