package shade

// Waveform is an immutable sequence of audio samples prepared for drawing.
//
// Samples are roughly in [-1, 1]. Points[i] is (i/len(Samples), Samples[i]).
// Construct it with NewWaveform; the waveform package provides synthesizers
// and decoders.
type Waveform struct {
	Samples    []float64
	SampleRate float64
	Points     []Vector2
}

// NewWaveform takes ownership of samples and precomputes the normalized
// points.
func NewWaveform(samples []float64, sampleRate float64) *Waveform {
	pts := make([]Vector2, len(samples))
	n := float64(len(samples))
	for i, s := range samples {
		pts[i] = Vector2{X: float64(i) / n, Y: s}
	}
	return &Waveform{
		Samples:    samples,
		SampleRate: sampleRate,
		Points:     pts,
	}
}

// SampleCount returns the number of samples.
func (w *Waveform) SampleCount() int {
	if w == nil {
		return 0
	}
	return len(w.Samples)
}

// WaveformOptions control RenderWaveform.
type WaveformOptions struct {
	// Smooth passes the mapped points through CatmullRom before drawing.
	// Useful when the window holds fewer samples than the image is wide.
	Smooth bool

	// Segments and Tension are forwarded to CatmullRom when Smooth is set.
	// Zero values select DefaultSplineSegments and DefaultSplineTension.
	Segments int
	Tension  float64

	// Image configures the returned image.
	Image []ImageOption
}

// RenderWaveform draws the sample window [start, start+length) of w as a
// polyline into a new transparent image of the given size.
//
// Sample i maps to x = (i-start)/length*width and
// y = height/2 + sample*height/2. A window reaching past the last sample is
// cut short and the trace ends early; keeping start < count-length is the
// caller's job.
func RenderWaveform(width, height int, w *Waveform, start, length int, c Color, opts *WaveformOptions) (*Image, error) {
	if opts == nil {
		opts = &WaveformOptions{}
	}
	img, err := NewImage(width, height, opts.Image...)
	if err != nil {
		return nil, err
	}

	pts := waveformPoints(width, height, w, start, length)
	if len(pts) == 0 {
		return img, nil
	}
	if opts.Smooth {
		tension := opts.Tension
		if tension == 0 {
			tension = DefaultSplineTension
		}
		pts = CatmullRom(pts, opts.Segments, tension)
	}
	img.DrawPolyline(pts, c)
	return img, nil
}

// waveformPoints maps the visible samples to image coordinates.
func waveformPoints(width, height int, w *Waveform, start, length int) []Vector2 {
	count := w.SampleCount()
	if length <= 0 || count == 0 {
		return nil
	}
	start = max(0, start)
	end := count
	if length <= count-start {
		end = start + length
	} else {
		Logger().Debug("waveform window clamped",
			"start", start, "length", length, "samples", count)
	}
	if end <= start {
		return nil
	}

	center := float64(height) / 2
	halfHeight := float64(height) / 2
	scaleX := float64(width) / float64(length)

	pts := make([]Vector2, 0, end-start)
	for i := start; i < end; i++ {
		pts = append(pts, Vector2{
			X: float64(i-start) * scaleX,
			Y: center + w.Samples[i]*halfHeight,
		})
	}
	return pts
}
