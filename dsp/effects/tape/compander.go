package tape

import "math"

// CompanderMode selects the encode (pre-emphasis) or decode (de-emphasis)
// constants of a [Compander].
type CompanderMode int

const (
	CompanderEncode CompanderMode = iota
	CompanderDecode
)

const (
	encodeHighFactor    = 2.848
	encodeAverageFactor = 1.152
	decodeHighFactor    = 2.628
	decodeAverageFactor = 1.372

	companderCurveSpan = 255.0
	companderCurveNorm = 2.40823996531
)

// Compander is one channel of a noise-reduction style high-band compander.
//
// It tracks a one-pole low-pass of its input, detects the high residual with
// a one-sample rolling average, maps the detection through a logarithmic
// curve and adds the gain-scaled residual back onto the input.
type Compander struct {
	lowpass float64
	gain    float64
	average float64
}

// NewCompander returns a compander in its neutral state.
func NewCompander() Compander {
	return Compander{gain: 1.0}
}

// Process runs one sample. freq is the normalized one-pole coefficient used
// for both the low-pass tracker and the gain smoother; amount scales the
// residual that is added back (negative values subtract).
func (c *Compander) Process(x, amount, freq float64, mode CompanderMode) float64 {
	c.lowpass = (c.lowpass * (1.0 - freq)) + (x * freq)

	highFactor, averageFactor := encodeHighFactor, encodeAverageFactor
	if mode == CompanderDecode {
		highFactor, averageFactor = decodeHighFactor, decodeAverageFactor
	}

	residual := x - c.lowpass
	highPart := residual*highFactor + c.average
	c.average = residual * averageFactor

	if highPart > 1.0 {
		highPart = 1.0
	}
	if highPart < -1.0 {
		highPart = -1.0
	}

	absHigh := math.Abs(highPart)
	if absHigh > 0.0 {
		adjust := math.Log(1.0+(companderCurveSpan*absHigh)) / companderCurveNorm
		if adjust > 0.0 {
			absHigh /= adjust
		}

		c.gain = (c.gain * (1.0 - freq)) + (absHigh * freq)
		x += (highPart * c.gain) * amount
	}

	return x
}

// Gain returns the smoothed compansion gain.
func (c *Compander) Gain() float64 { return c.gain }

// Lowpass returns the tracker's low-pass state.
func (c *Compander) Lowpass() float64 { return c.lowpass }

// Reset returns the compander to its neutral state.
func (c *Compander) Reset() {
	*c = NewCompander()
}
