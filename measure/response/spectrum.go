package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-tape/dsp/core"
)

// Spectrum is a one-sided power spectrum of a windowed, zero-padded signal.
type Spectrum struct {
	SampleRate float64
	FFTSize    int
	Window     Window

	// Power holds |X[k]|^2 for bins 0..FFTSize/2.
	Power []float64

	// windowEnergy is sum(w[n]^2) over the analyzed samples.
	windowEnergy float64
}

// PowerSpectrum windows x, zero-pads it to the next power of two and
// returns its one-sided power spectrum.
func PowerSpectrum(x []float64, sampleRate float64, w Window) (Spectrum, error) {
	if len(x) < 2 {
		return Spectrum{}, fmt.Errorf("spectrum needs at least 2 samples: %d", len(x))
	}
	if !core.ValidSampleRate(sampleRate) {
		return Spectrum{}, fmt.Errorf("sample rate must be > 0 and finite: %f", sampleRate)
	}

	coeffs := w.coefficients(len(x))
	windowed := make([]float64, len(x))
	vecmath.MulBlock(windowed, x, coeffs)

	energy := 0.0
	for _, c := range coeffs {
		energy += c * c
	}

	size := nextPowerOf2(len(x))
	in := make([]complex128, size)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Spectrum{}, fmt.Errorf("fft plan %d: %w", size, err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("fft forward: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return Spectrum{
		SampleRate:   sampleRate,
		FFTSize:      size,
		Window:       w,
		Power:        power,
		windowEnergy: energy,
	}, nil
}

// BinHz returns the bin spacing in Hz.
func (s Spectrum) BinHz() float64 {
	if s.FFTSize == 0 {
		return 0
	}
	return s.SampleRate / float64(s.FFTSize)
}

// Bin returns the bin nearest to freq, clamped to the spectrum.
func (s Spectrum) Bin(freq float64) int {
	if len(s.Power) == 0 {
		return 0
	}
	return clampInt(int(math.Round(freq/s.BinHz())), 0, len(s.Power)-1)
}

// Frequency returns the center frequency of bin k.
func (s Spectrum) Frequency(k int) float64 {
	return float64(k) * s.BinHz()
}

// BandRMS returns the RMS level of the content between lo and hi Hz,
// compensated for the window so a sine fully inside the band reads its
// own RMS.
func (s Spectrum) BandRMS(lo, hi float64) float64 {
	if len(s.Power) == 0 || hi < lo {
		return 0
	}
	return s.levelOf(s.Bin(lo), s.Bin(hi))
}

// Peak returns the bin with the most power between lo and hi Hz.
func (s Spectrum) Peak(lo, hi float64) int {
	if len(s.Power) == 0 {
		return 0
	}

	first := max(s.Bin(lo), 1)
	last := s.Bin(hi)
	best := first
	for k := first; k <= last; k++ {
		if s.Power[k] > s.Power[best] {
			best = k
		}
	}
	return best
}

// ToneRMS returns the RMS level of a sine whose energy is centered on bin k.
func (s Spectrum) ToneRMS(k int) float64 {
	lobe := s.Window.lobeBins()
	return s.levelOf(k-lobe, k+lobe)
}

func (s Spectrum) levelOf(first, last int) float64 {
	first = clampInt(first, 0, len(s.Power)-1)
	last = clampInt(last, first, len(s.Power)-1)
	if s.windowEnergy == 0 {
		return 0
	}

	energy := 0.0
	for k := first; k <= last; k++ {
		energy += s.Power[k]
	}
	return math.Sqrt(2 * energy / (float64(s.FFTSize) * s.windowEnergy))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
