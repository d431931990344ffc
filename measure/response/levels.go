package response

import (
	"math"

	"github.com/cwbudde/algo-tape/dsp/core"
)

// Levels holds time-domain statistics of a signal.
type Levels struct {
	RMS  float64
	Peak float64
	DC   float64
}

// RMSdB returns the RMS level in dBFS.
func (l Levels) RMSdB() float64 { return core.LinearToDB(l.RMS) }

// PeakdB returns the peak level in dBFS.
func (l Levels) PeakdB() float64 { return core.LinearToDB(l.Peak) }

// CrestFactor returns Peak/RMS, or 0 for silence.
func (l Levels) CrestFactor() float64 {
	if l.RMS == 0 {
		return 0
	}
	return l.Peak / l.RMS
}

// Measure computes RMS, absolute peak and mean of x.
func Measure[T core.Sample](x []T) Levels {
	if len(x) == 0 {
		return Levels{}
	}

	var sum, sumSquares, peak float64
	for _, s := range x {
		v := float64(s)
		sum += v
		sumSquares += v * v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	n := float64(len(x))
	return Levels{
		RMS:  math.Sqrt(sumSquares / n),
		Peak: peak,
		DC:   sum / n,
	}
}

// GainDB returns the RMS level change from in to out in dB.
func GainDB[T core.Sample](in, out []T) float64 {
	return Measure(out).RMSdB() - Measure(in).RMSdB()
}
