package response

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tape/dsp/core"
)

const (
	defaultHarmonics = 9
	searchSpanRatio  = 0.1
)

// Config controls [Analyze].
type Config struct {
	SampleRate float64

	// Fundamental is the expected tone frequency. The strongest bin within
	// ±10% of it is taken as the fundamental.
	Fundamental float64

	// Harmonics is the number of harmonics above the fundamental included
	// in THD. Zero selects 9.
	Harmonics int

	Window Window
}

// Report describes a test tone after processing.
type Report struct {
	Levels

	FundamentalFreq  float64
	FundamentalLevel float64

	// Harmonics holds the RMS level of harmonics 2, 3, ... below Nyquist.
	Harmonics []float64

	THD   float64
	THDdB float64
}

// Analyze measures levels, fundamental and total harmonic distortion of a
// signal carrying a single test tone.
func Analyze(x []float64, cfg Config) (Report, error) {
	if cfg.Fundamental <= 0 || math.IsNaN(cfg.Fundamental) {
		return Report{}, fmt.Errorf("fundamental must be > 0: %f", cfg.Fundamental)
	}
	harmonics := cfg.Harmonics
	if harmonics <= 0 {
		harmonics = defaultHarmonics
	}

	ps, err := PowerSpectrum(x, cfg.SampleRate, cfg.Window)
	if err != nil {
		return Report{}, err
	}

	span := cfg.Fundamental * searchSpanRatio
	fundBin := ps.Peak(cfg.Fundamental-span, cfg.Fundamental+span)
	fundLevel := ps.ToneRMS(fundBin)

	rep := Report{
		Levels:           Measure(x),
		FundamentalFreq:  ps.Frequency(fundBin),
		FundamentalLevel: fundLevel,
	}

	nyquist := len(ps.Power) - 1
	lobe := ps.Window.lobeBins()
	sumSquares := 0.0
	for h := 2; h <= harmonics+1; h++ {
		center := fundBin * h
		if center+lobe > nyquist {
			break
		}
		level := ps.ToneRMS(center)
		rep.Harmonics = append(rep.Harmonics, level)
		sumSquares += level * level
	}

	if fundLevel > 0 {
		rep.THD = math.Sqrt(sumSquares) / fundLevel
		rep.THDdB = core.LinearToDB(rep.THD)
	}
	return rep, nil
}
