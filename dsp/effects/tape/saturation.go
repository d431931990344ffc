package tape

import (
	"math"

	"github.com/cwbudde/algo-tape/dsp/filter/resonant"
)

const saturationHalfPi = 1.570796

// saturator is the per-channel split-band saturation stage: a one-pole
// crossover, optional sub-band removal, sine saturation of the lows,
// cosine thinning of the highs and the head-bump accumulator.
type saturator struct {
	midRoller float64
	lowCutoff float64
	bumpAcc   float64
}

func (s *saturator) process(x float64, p *Snapshot, ch int, bumpA, bumpB *resonant.Filter) float64 {
	s.midRoller = (s.midRoller * (1.0 - p.MidFreq)) + (x * p.MidFreq)
	highs := x - s.midRoller
	lows := s.midRoller

	if p.SubFreq > 0.0 {
		s.lowCutoff = (s.lowCutoff * (1.0 - p.SubFreq)) + (lows * p.SubFreq)
		lows -= s.lowCutoff
	}

	if lows > saturationHalfPi {
		lows = saturationHalfPi
	}
	if lows < -saturationHalfPi {
		lows = -saturationHalfPi
	}
	lows = math.Sin(lows)

	thinned := math.Abs(highs) * saturationHalfPi
	if thinned > saturationHalfPi {
		thinned = saturationHalfPi
	}
	thinned = 1.0 - math.Cos(thinned)
	if highs < 0 {
		thinned = -thinned
	}
	highs -= thinned

	if p.BumpMix <= 0.0 {
		return lows + highs
	}

	s.bumpAcc += lows * p.BumpDrive
	s.bumpAcc -= (s.bumpAcc * s.bumpAcc * s.bumpAcc) * p.BumpCubic

	bump := bumpA.ProcessChannel(ch, s.bumpAcc)
	bump = bumpB.ProcessChannel(ch, bump)

	return lows + highs + (bump * p.BumpMix)
}

func (s *saturator) reset() {
	*s = saturator{}
}
