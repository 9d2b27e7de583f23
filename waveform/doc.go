// Package waveform builds shade.Waveform values.
//
// Synthesizers (Noise, Sine, Osc) generate test signals; DecodeWAV and
// DecodeMP3 read the first channel of an audio stream and normalize it to
// [-1, 1]. Load picks a decoder from the file extension.
//
// The returned waveforms are never modified afterwards and can be shared by
// any number of renderers.
package waveform
