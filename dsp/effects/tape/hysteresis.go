package tape

import (
	"math"

	"github.com/cwbudde/algo-tape/dsp/core"
)

const (
	// HysteresisStages is the depth of the slew-limiter cascade.
	HysteresisStages = 9

	// GoldenRatio is the threshold ratio between adjacent stages.
	GoldenRatio = 1.61803398875

	hysteresisDecay  = 0.975
	biasNeutralBand  = 0.001
	overBiasPosSlope = 0.75
	underBiasScale   = 0.25
)

type hysteresisStage struct {
	memory    [2]float64
	threshold float64
}

// Hysteresis is a cascaded stereo slew-rate limiter modeling bias-dependent
// magnetization lag.
//
// Positive bias (above 0.5) tightens the per-stage slew ceiling. Negative
// bias pins the ceiling and adds a sticky zone that pulls the signal toward
// each stage's remembered value. Stages run strictly in index order, each
// feeding the next.
type Hysteresis struct {
	stages [HysteresisStages]hysteresisStage
}

// UpdateThresholds recomputes the per-stage slew ceilings from bias in
// [0, 1]. The last stage gets the base ceiling and every earlier stage is
// GoldenRatio times wider than its successor.
func (h *Hysteresis) UpdateThresholds(bias, sampleRate float64) {
	overallscale := core.OverallScale(sampleRate)
	formattedBias := (bias * 2.0) - 1.0

	shaped := formattedBias
	if formattedBias > 0.0 {
		shaped = formattedBias * overBiasPosSlope
	}
	overBias := math.Pow(1.0-shaped, 3) / overallscale
	if formattedBias < 0.0 {
		overBias = 1.0 / overallscale
	}

	for i := HysteresisStages - 1; i >= 0; i-- {
		h.stages[i].threshold = overBias
		overBias *= GoldenRatio
	}
}

// Threshold returns the slew ceiling of stage i.
func (h *Hysteresis) Threshold(i int) float64 {
	return h.stages[i].threshold
}

// Process runs one stereo frame through the cascade. Within the neutral
// band around bias 0.5 the frame passes through untouched and stage memory
// is left as is.
func (h *Hysteresis) Process(l, r, bias, sampleRate float64) (float64, float64) {
	overallscale := core.OverallScale(sampleRate)
	formattedBias := (bias * 2.0) - 1.0

	if math.Abs(formattedBias) <= biasNeutralBand {
		return l, r
	}

	underBias := (math.Pow(formattedBias, 4) * underBiasScale) / overallscale
	if formattedBias > 0.0 {
		underBias = 0.0
	}

	for i := range h.stages {
		st := &h.stages[i]
		l = st.process(0, l, underBias)
		r = st.process(1, r, underBias)
	}

	return l, r
}

func (st *hysteresisStage) process(ch int, x, underBias float64) float64 {
	mem := st.memory[ch]

	if underBias > 0.0 {
		anchor := mem / hysteresisDecay
		stuck := math.Abs(x-anchor) / underBias
		if stuck < 1.0 {
			x = (x * stuck) + (anchor * (1.0 - stuck))
		}
	}

	diff := x - mem
	if diff > st.threshold {
		x = mem + st.threshold
	} else if -diff > st.threshold {
		x = mem - st.threshold
	}

	st.memory[ch] = x * hysteresisDecay
	return x
}

// Reset clears stage memory and thresholds.
func (h *Hysteresis) Reset() {
	h.stages = [HysteresisStages]hysteresisStage{}
}
