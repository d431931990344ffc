package tape

import (
	"fmt"

	"github.com/cwbudde/algo-tape/dsp/core"
	"github.com/cwbudde/algo-tape/dsp/filter/resonant"
	"github.com/cwbudde/algo-tape/dsp/noise"
)

// Engine is a stereo tape machine emulation.
//
// An Engine is owned by a single audio thread. It performs no locking and
// must not be shared between goroutines without external synchronization.
type Engine struct {
	sampleRate   float64
	maxBlockSize int
	seeds        [2]uint32

	rng        [2]noise.Xorshift32
	encode     [2]Compander
	decode     [2]Compander
	flutter    *flutter
	hysteresis Hysteresis
	saturators [2]saturator
	bumpA      resonant.Filter
	bumpB      resonant.Filter
	clippers   [2]SoftClipper

	snap Snapshot
}

// New creates an engine prepared at the configured sample rate and block
// size.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	e := &Engine{seeds: cfg.seeds}
	if err := e.Prepare(cfg.processor.SampleRate, cfg.processor.BlockSize); err != nil {
		return nil, err
	}
	return e, nil
}

// Prepare sets the sample rate and maximum block size, allocates the delay
// lines if needed and resets all state.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize int) error {
	cfg := core.ProcessorConfig{SampleRate: sampleRate, BlockSize: maxBlockSize}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("tape prepare: %w", err)
	}

	if e.flutter == nil {
		f, err := newFlutter()
		if err != nil {
			return err
		}
		e.flutter = f
	}

	e.sampleRate = sampleRate
	e.maxBlockSize = maxBlockSize
	e.Reset()
	return nil
}

// Reset clears delay lines, filter memory, compander trackers, hysteresis
// memory and clipper state, and rewinds both noise sources to their seeds.
// It does not allocate.
func (e *Engine) Reset() {
	e.rng[0].Seed(e.seeds[0])
	if e.seeds[1] == 0 {
		e.rng[1].Seed(noise.AlternateSeed)
	} else {
		e.rng[1].Seed(e.seeds[1])
	}

	for ch := 0; ch < 2; ch++ {
		e.encode[ch].Reset()
		e.decode[ch].Reset()
		e.saturators[ch].reset()
		e.clippers[ch].Reset()
	}

	if e.flutter != nil {
		e.flutter.reset()
	}
	e.hysteresis.Reset()
	e.bumpA.Reset()
	e.bumpB.Reset()
	e.snap = Snapshot{}
}

// SampleRate returns the prepared sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// MaxBlockSize returns the prepared maximum block size.
func (e *Engine) MaxBlockSize() int { return e.maxBlockSize }

// Seeds returns the left and right noise seeds.
func (e *Engine) Seeds() (left, right uint32) { return e.seeds[0], e.seeds[1] }

// Snapshot returns the coefficients derived for the most recent block.
func (e *Engine) Snapshot() Snapshot { return e.snap }

// Process transforms left and right in place. n is clamped to the shorter
// buffer; n == 0 is a no-op.
func (e *Engine) Process(left, right []float32, n int, src ControlSource) {
	e.ProcessTo(left, right, left, right, n, src)
}

// ProcessTo reads srcL/srcR and writes dstL/dstR. Destination and source
// slices may alias each other, including srcR aliasing srcL for mono input.
// In bypass the input is copied unchanged and every control is skipped by n
// so ramps stay in step with the audio.
func (e *Engine) ProcessTo(dstL, dstR, srcL, srcR []float32, n int, src ControlSource) {
	n = min(n, len(dstL), len(dstR), len(srcL), len(srcR))
	if n <= 0 {
		return
	}

	if src.Bypassed() {
		for c := Control(0); c < NumControls; c++ {
			src.Skip(c, n)
		}
		for i := 0; i < n; i++ {
			l, r := srcL[i], srcR[i]
			dstL[i], dstR[i] = l, r
		}
		return
	}

	e.beginBlock(src, n)
	p := &e.snap

	for i := 0; i < n; i++ {
		l := float64(srcL[i])
		r := float64(srcR[i])

		if core.IsDenormalProne(l) {
			l = e.rng[0].Next() * core.DenormalDitherAmplitude
		}
		if core.IsDenormalProne(r) {
			r = e.rng[1].Next() * core.DenormalDitherAmplitude
		}

		l *= p.InputGain
		r *= p.InputGain

		l = e.encode[0].Process(l, p.EncodeAmount, p.EncodeFreq, CompanderEncode)
		r = e.encode[1].Process(r, p.EncodeAmount, p.EncodeFreq, CompanderEncode)

		if p.FlutterDepth > 0.0 {
			l, r = e.flutter.process(l, r, p.FlutterDepth, p.FlutterSpeed, &e.rng)
		}

		l, r = e.hysteresis.Process(l, r, src.Next(ControlBias), e.sampleRate)

		l = e.saturators[0].process(l, p, 0, &e.bumpA, &e.bumpB)
		r = e.saturators[1].process(r, p, 1, &e.bumpA, &e.bumpB)

		l = e.decode[0].Process(l, p.DecodeAmount, p.DecodeFreq, CompanderDecode)
		r = e.decode[1].Process(r, p.DecodeAmount, p.DecodeFreq, CompanderDecode)

		l *= p.OutputGain
		r *= p.OutputGain

		dstL[i] = float32(e.clippers[0].Process(l))
		dstR[i] = float32(e.clippers[1].Process(r))
	}
}

// beginBlock samples the block-rate controls, skips their cursors to the
// end of the block and refreshes filter and hysteresis coefficients. Bias
// is only peeked here; the sample loop advances it once per frame.
func (e *Engine) beginBlock(src ControlSource, n int) {
	var v Values
	for c := Control(0); c < NumControls; c++ {
		if c == ControlBias {
			v[c] = src.Peek(c)
			continue
		}
		v[c] = src.Next(c)
		if n > 1 {
			src.Skip(c, n-1)
		}
	}

	e.snap = DeriveSnapshot(v, e.sampleRate)

	if e.snap.BumpMix > 0.0 {
		e.bumpA.SetCoefficients(e.snap.BumpFreq, bumpResonance, e.sampleRate)
		e.bumpB.SetCoefficients(e.snap.BumpFreq*bumpDetune, bumpResonance, e.sampleRate)
	}

	e.hysteresis.UpdateThresholds(v[ControlBias], e.sampleRate)
}
