package waveform

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/shade"
)

// oscGain keeps the oscillator just below full scale.
const oscGain = 0.99

// Sine returns count samples of sin(2*pi*frequency*i/sampleRate).
func Sine(frequency float64, count int, sampleRate float64) *shade.Waveform {
	samples := make([]float64, count)
	for i := range samples {
		samples[i] = math.Sin(frequency * 2 * math.Pi * float64(i) / sampleRate)
	}
	return shade.NewWaveform(samples, sampleRate)
}

// Osc returns count samples of a phase-accumulating cosine oscillator
// scaled by 0.99.
func Osc(frequency float64, count int, sampleRate float64) *shade.Waveform {
	samples := make([]float64, count)
	inc := 2 * math.Pi * frequency / sampleRate
	phase := 0.0
	for i := range samples {
		samples[i] = math.Cos(phase) * oscGain
		phase += inc
	}
	return shade.NewWaveform(samples, sampleRate)
}

// Noise returns count samples of pink noise with peaks normalized to 0.99.
// A nil rng uses a randomly seeded generator.
func Noise(count int, sampleRate float64, rng *rand.Rand) *shade.Waveform {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var p pinkFilter
	samples := make([]float64, count)
	peak := 0.0
	for i := range samples {
		s := p.next(rng.Float64()*2 - 1)
		samples[i] = s
		peak = max(peak, math.Abs(s))
	}
	if peak > 0 {
		gain := oscGain / peak
		for i := range samples {
			samples[i] *= gain
		}
	}
	return shade.NewWaveform(samples, sampleRate)
}

// pinkFilter is Paul Kellet's economy pink noise filter: three one-pole
// low-pass stages summed with a share of the white input.
type pinkFilter struct {
	b0, b1, b2 float64
}

func (p *pinkFilter) next(white float64) float64 {
	p.b0 = 0.99765*p.b0 + white*0.0990460
	p.b1 = 0.96300*p.b1 + white*0.2965164
	p.b2 = 0.57000*p.b2 + white*1.0526913
	return p.b0 + p.b1 + p.b2 + white*0.1848
}
