package waveform

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/gogpu/shade"
)

// Decoding errors.
var (
	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("waveform: unsupported format")

	// ErrInvalidWAV is returned when a stream is not a PCM WAV file.
	ErrInvalidWAV = errors.New("waveform: not a valid wav file")
)

// wavFormatPCM is the fmt chunk tag of integer PCM.
const wavFormatPCM = 1

// Load decodes the audio file at path. The format is chosen by extension:
// .wav or .mp3.
func Load(path string) (*shade.Waveform, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("waveform: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			shade.Logger().Warn("could not close audio file", "file", path, "error", cerr)
		}
	}()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return DecodeWAV(f)
	case ".mp3":
		return DecodeMP3(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// DecodeWAV reads a PCM WAV stream and keeps the first channel.
func DecodeWAV(r io.ReadSeeker) (*shade.Waveform, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: audio format %d is not integer PCM", ErrInvalidWAV, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("waveform: wav: %w", err)
	}

	chans := max(1, int(dec.NumChans))
	depth := int(dec.BitDepth)
	if depth <= 0 || depth > 32 {
		return nil, fmt.Errorf("%w: bit depth %d", ErrInvalidWAV, depth)
	}

	// 8-bit PCM is unsigned, wider depths are signed.
	var bias int
	if depth == 8 {
		bias = 128
	}
	scale := float64(int64(1) << (depth - 1))

	samples := make([]float64, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		samples = append(samples, float64(buf.Data[i]-bias)/scale)
	}

	shade.Logger().Info("waveform decoded", "format", "wav",
		"samples", len(samples), "rate", dec.SampleRate, "channels", chans, "bits", depth)
	return shade.NewWaveform(samples, float64(dec.SampleRate)), nil
}

// DecodeMP3 reads an MP3 stream and keeps the left channel.
func DecodeMP3(r io.Reader) (*shade.Waveform, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("waveform: mp3: %w", err)
	}

	// The decoder always produces 16-bit little endian stereo.
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("waveform: mp3: %w", err)
	}

	const frameSize = 4
	samples := make([]float64, 0, len(pcm)/frameSize)
	for i := 0; i+1 < len(pcm); i += frameSize {
		v := int16(binary.LittleEndian.Uint16(pcm[i:]))
		samples = append(samples, float64(v)/32768)
	}

	shade.Logger().Info("waveform decoded", "format", "mp3",
		"samples", len(samples), "rate", dec.SampleRate())
	return shade.NewWaveform(samples, float64(dec.SampleRate())), nil
}
