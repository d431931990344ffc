package tape

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tape/dsp/core"
)

// Control identifies one of the engine's nine smoothed inputs.
type Control int

const (
	ControlInput Control = iota
	ControlTilt
	ControlShape
	ControlBias
	ControlFlutter
	ControlFlutterSpeed
	ControlBumpHead
	ControlBumpHz
	ControlOutput

	// NumControls is the number of defined controls.
	NumControls
)

var controlNames = [NumControls]string{
	"Input", "Tilt", "Shape", "Bias", "Flutter", "FlutterSpeed", "BumpHead", "BumpHz", "Output",
}

// String returns the control name.
func (c Control) String() string {
	if c >= 0 && c < NumControls {
		return controlNames[c]
	}
	return fmt.Sprintf("Control(%d)", int(c))
}

// Valid reports whether c is a known control.
func (c Control) Valid() bool {
	return c >= 0 && c < NumControls
}

// ControlSource supplies smoothed control values to the engine.
//
// Peek returns the current value without advancing. Next advances the
// control by one frame and returns the new value. Skip advances by n frames.
// Bypassed is read once per block.
//
// Gains are linear multipliers, BumpHz is in Hz, everything else is
// normalized to [0, 1].
type ControlSource interface {
	Peek(c Control) float64
	Next(c Control) float64
	Skip(c Control, n int)
	Bypassed() bool
}

// Values holds one value per control, indexed by [Control].
type Values [NumControls]float64

// Settings is a fixed, unsmoothed [ControlSource].
type Settings struct {
	Input        float64
	Tilt         float64
	Shape        float64
	Bias         float64
	Flutter      float64
	FlutterSpeed float64
	BumpHead     float64
	BumpHz       float64
	Output       float64
	Bypass       bool
}

// NeutralSettings returns unity gains, centered tilt/shape/bias and no
// flutter or head bump.
func NeutralSettings() Settings {
	return Settings{
		Input:  1,
		Tilt:   0.5,
		Shape:  0.5,
		Bias:   0.5,
		BumpHz: 50,
		Output: 1,
	}
}

// Values returns s as a control-indexed array.
func (s Settings) Values() Values {
	return Values{
		ControlInput:        s.Input,
		ControlTilt:         s.Tilt,
		ControlShape:        s.Shape,
		ControlBias:         s.Bias,
		ControlFlutter:      s.Flutter,
		ControlFlutterSpeed: s.FlutterSpeed,
		ControlBumpHead:     s.BumpHead,
		ControlBumpHz:       s.BumpHz,
		ControlOutput:       s.Output,
	}
}

// Peek implements [ControlSource].
func (s Settings) Peek(c Control) float64 {
	if !c.Valid() {
		return 0
	}
	return s.Values()[c]
}

// Next implements [ControlSource]. Fixed settings never change.
func (s Settings) Next(c Control) float64 { return s.Peek(c) }

// Skip implements [ControlSource].
func (s Settings) Skip(Control, int) {}

// Bypassed implements [ControlSource].
func (s Settings) Bypassed() bool { return s.Bypass }

// Snapshot holds the per-block coefficients derived from control values.
type Snapshot struct {
	InputGain  float64
	OutputGain float64

	EncodeAmount float64
	DecodeAmount float64
	EncodeFreq   float64
	DecodeFreq   float64
	MidFreq      float64

	FlutterDepth float64
	FlutterSpeed float64

	BumpMix   float64
	BumpDrive float64
	BumpFreq  float64
	SubFreq   float64
	BumpCubic float64

	Bias float64
}

const (
	maxFlutterDepth = 498.0
	minBumpFreq     = 1.0
	bumpResonance   = 0.618033988
	bumpDetune      = 0.9375
	bumpCubicScale  = 0.0618
)

// DeriveSnapshot maps raw control values to per-block coefficients at
// sampleRate.
func DeriveSnapshot(v Values, sampleRate float64) Snapshot {
	overallscale := core.OverallScale(sampleRate)

	input := v[ControlInput] * 0.5 * 2.0
	tilt := v[ControlTilt]
	shape := v[ControlShape]
	bump := v[ControlBumpHead]

	s := Snapshot{
		InputGain:    input * input,
		OutputGain:   v[ControlOutput],
		EncodeAmount: tilt * 2.0,
		DecodeAmount: (1.0 - tilt) * -2.0,
		EncodeFreq:   (1.0 - shape) / overallscale,
		DecodeFreq:   shape / overallscale,
		MidFreq:      ((shape * 0.618) + 0.382) / overallscale,
		FlutterDepth: math.Pow(v[ControlFlutter], 6) * overallscale * 50.0,
		FlutterSpeed: (0.02 * math.Pow(v[ControlFlutterSpeed], 3)) / overallscale,
		BumpMix:      bump * 0.5,
		BumpDrive:    (bump * 0.1) / overallscale,
		BumpFreq:     v[ControlBumpHz],
		SubFreq:      (math.Sin(bump*math.Pi) * 0.008) / overallscale,
		BumpCubic:    bumpCubicScale / math.Sqrt(overallscale),
		Bias:         v[ControlBias],
	}

	if s.DecodeAmount < -1.0 {
		s.DecodeAmount = -1.0
	}
	if s.FlutterDepth > maxFlutterDepth {
		s.FlutterDepth = maxFlutterDepth
	}
	if s.BumpFreq < minBumpFreq {
		s.BumpFreq = minBumpFreq
	}

	return s
}
