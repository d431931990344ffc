// Package resonant provides a stereo two-pole/two-zero resonator used for
// tape head-bump shaping.
//
// Both channels share one coefficient set but keep fully independent
// feedback state.
package resonant

import (
	"math"

	"github.com/cwbudde/algo-tape/dsp/core"
	"github.com/cwbudde/algo-tape/dsp/filter/biquad"
)

// Channels is the number of independent state sets a [Filter] carries.
const Channels = 2

// Design returns resonator coefficients for a center frequency (Hz) and
// resonance (Q) at sampleRate. The response peaks at unity gain at freq
// and falls off on both sides.
func Design(freq, resonance, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * (freq / sampleRate))
	norm := 1.0 / (1.0 + k/resonance + k*k)
	b0 := k / resonance * norm

	return biquad.Coefficients{
		B0: b0,
		B1: 0.0,
		B2: -b0,
		A1: 2.0 * (k*k - 1.0) * norm,
		A2: (1.0 - k/resonance + k*k) * norm,
	}
}

// Filter is a resonator with one state set per stereo channel.
type Filter struct {
	channels [Channels]biquad.Section

	designed   bool
	freq       float64
	resonance  float64
	sampleRate float64
}

// SetCoefficients redesigns the filter. Channel state is kept. Calls that
// repeat the previous design are skipped.
func (f *Filter) SetCoefficients(freq, resonance, sampleRate float64) {
	if f.designed &&
		core.NearlyEqual(freq, f.freq, 0) &&
		core.NearlyEqual(resonance, f.resonance, 0) &&
		core.NearlyEqual(sampleRate, f.sampleRate, 0) {
		return
	}

	c := Design(freq, resonance, sampleRate)
	for i := range f.channels {
		f.channels[i].Coefficients = c
	}
	f.designed = true
	f.freq, f.resonance, f.sampleRate = freq, resonance, sampleRate
}

// Coefficients returns the current coefficient set.
func (f *Filter) Coefficients() biquad.Coefficients {
	return f.channels[0].Coefficients
}

// ProcessChannel filters one sample through channel ch (0 = left, 1 = right).
func (f *Filter) ProcessChannel(ch int, x float64) float64 {
	return f.channels[ch].ProcessSample(x)
}

// Reset clears the state of both channels.
func (f *Filter) Reset() {
	for i := range f.channels {
		f.channels[i].Reset()
	}
}
