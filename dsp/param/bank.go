package param

import (
	"github.com/cwbudde/algo-tape/dsp/core"
	"github.com/cwbudde/algo-tape/dsp/effects/tape"
)

// RampDuration is the time in seconds a [Bank] takes to reach a new target.
const RampDuration = 0.02

// Bank holds one [Linear] ramp per tape control and the bypass flag.
// It implements tape.ControlSource and belongs to the audio thread.
type Bank struct {
	ramps  [tape.NumControls]Linear
	bypass bool
}

var _ tape.ControlSource = (*Bank)(nil)

// NewBank returns a bank whose ramps last [RampDuration] at sampleRate and
// that starts at values.
func NewBank(sampleRate float64, values tape.Values) *Bank {
	b := &Bank{}
	b.Prepare(sampleRate)
	b.Reset(values)
	return b
}

// RampSteps returns the ramp length in samples at sampleRate.
func RampSteps(sampleRate float64) int {
	if !core.ValidSampleRate(sampleRate) {
		return 0
	}
	return int(sampleRate * RampDuration)
}

// Prepare sets every ramp length for sampleRate. Current values are kept
// and in-flight ramps are completed.
func (b *Bank) Prepare(sampleRate float64) {
	steps := RampSteps(sampleRate)
	for i := range b.ramps {
		b.ramps[i].Reset(steps)
	}
}

// Reset jumps every control to values without ramping.
func (b *Bank) Reset(values tape.Values) {
	for i := range b.ramps {
		b.ramps[i].SetCurrentAndTarget(values[i])
	}
}

// Update sets new targets and latches the bypass flag. Call it once per
// block before processing.
func (b *Bank) Update(values tape.Values, bypass bool) {
	for i := range b.ramps {
		b.ramps[i].SetTarget(values[i])
	}
	b.bypass = bypass
}

// Targets returns the values every control is heading to.
func (b *Bank) Targets() tape.Values {
	var v tape.Values
	for i := range b.ramps {
		v[i] = b.ramps[i].Target()
	}
	return v
}

// IsSmoothing reports whether any control is mid-ramp.
func (b *Bank) IsSmoothing() bool {
	for i := range b.ramps {
		if b.ramps[i].IsSmoothing() {
			return true
		}
	}
	return false
}

// Peek implements tape.ControlSource.
func (b *Bank) Peek(c tape.Control) float64 {
	if !c.Valid() {
		return 0
	}
	return b.ramps[c].Peek()
}

// Next implements tape.ControlSource.
func (b *Bank) Next(c tape.Control) float64 {
	if !c.Valid() {
		return 0
	}
	return b.ramps[c].Next()
}

// Skip implements tape.ControlSource.
func (b *Bank) Skip(c tape.Control, n int) {
	if c.Valid() {
		b.ramps[c].Skip(n)
	}
}

// Bypassed implements tape.ControlSource.
func (b *Bank) Bypassed() bool { return b.bypass }
