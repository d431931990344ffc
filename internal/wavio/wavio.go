// Package wavio reads and writes PCM WAV files as planar float32 channels.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-tape/dsp/core"
)

// ErrInvalidFile is returned when the input is not a PCM WAV file.
var ErrInvalidFile = errors.New("wavio: invalid wav file")

// Audio is decoded PCM audio. Channels are planar and equally long,
// with samples in [-1, 1].
type Audio struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float32
}

// New allocates silent audio.
func New(sampleRate, bitDepth, channels, frames int) *Audio {
	a := &Audio{SampleRate: sampleRate, BitDepth: bitDepth, Channels: make([][]float32, channels)}
	for ch := range a.Channels {
		a.Channels[ch] = make([]float32, frames)
	}
	return a
}

// Frames returns the number of sample frames.
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}
	return len(a.Channels[0])
}

// Duration returns the length in seconds.
func (a *Audio) Duration() float64 {
	if a.SampleRate <= 0 {
		return 0
	}
	return float64(a.Frames()) / float64(a.SampleRate)
}

// Read decodes a whole WAV stream.
func Read(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode: %w", err)
	}

	channels := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)
	if channels <= 0 || bitDepth <= 0 {
		return nil, fmt.Errorf("%w: %d channels, %d bits", ErrInvalidFile, channels, bitDepth)
	}

	frames := len(buf.Data) / channels
	a := New(int(dec.SampleRate), bitDepth, channels, frames)
	scale := 1 / math.Pow(2, float64(bitDepth-1))
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			a.Channels[ch][i] = float32(float64(buf.Data[i*channels+ch]) * scale)
		}
	}
	return a, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Write encodes a as integer PCM. Samples outside [-1, 1] are clipped.
func Write(w io.WriteSeeker, a *Audio) error {
	switch a.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("wavio: unsupported bit depth %d", a.BitDepth)
	}
	if len(a.Channels) == 0 || a.SampleRate <= 0 {
		return fmt.Errorf("wavio: nothing to write: %d channels at %d Hz", len(a.Channels), a.SampleRate)
	}

	channels := len(a.Channels)
	frames := a.Frames()
	for ch, data := range a.Channels {
		if len(data) != frames {
			return fmt.Errorf("wavio: channel %d has %d frames, want %d", ch, len(data), frames)
		}
	}

	full := math.Pow(2, float64(a.BitDepth-1)) - 1
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  a.SampleRate,
		},
		Data:           make([]int, frames*channels),
		SourceBitDepth: a.BitDepth,
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			v := core.Clamp(float64(a.Channels[ch][i]), -1, 1)
			buf.Data[i*channels+ch] = int(math.Round(v * full))
		}
	}

	enc := wav.NewEncoder(w, a.SampleRate, a.BitDepth, channels, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}
	return enc.Close()
}

// WriteFile encodes a into a new file at path.
func WriteFile(path string, a *Audio) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, a); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
