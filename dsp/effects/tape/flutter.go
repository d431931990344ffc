package tape

import (
	"math"

	"github.com/cwbudde/algo-tape/dsp/delay"
	"github.com/cwbudde/algo-tape/dsp/noise"
)

const (
	// FlutterLineLength is the ring size of each flutter delay line.
	FlutterLineLength = 1000

	flutterPhaseWrap    = 6.2831853
	flutterInitialPhase = 3.14159
	flutterInitialRate  = 0.5
	flutterRateMin      = 0.24
	flutterRateSpan     = 0.74
)

// flutter is the modulated transport: a sinusoidally swept fractional read
// from a per-channel ring buffer. Each channel picks a new random sweep rate
// on every phase wrap, preferring the candidate closest to the other
// channel's current position so the two sides jitter together.
type flutter struct {
	lines   [2]*delay.Line
	sweep   [2]float64
	nextMax [2]float64
}

func newFlutter() (*flutter, error) {
	f := &flutter{}
	for ch := range f.lines {
		line, err := delay.New(FlutterLineLength)
		if err != nil {
			return nil, err
		}
		f.lines[ch] = line
	}
	f.reset()
	return f, nil
}

// process writes the frame at the shared head, reads both channels at their
// modulated offsets and then advances the head.
func (f *flutter) process(l, r, depth, speed float64, rng *[2]noise.Xorshift32) (float64, float64) {
	f.lines[0].Store(l)
	f.lines[1].Store(r)

	l = f.read(0, depth, speed, &rng[0])
	r = f.read(1, depth, speed, &rng[1])

	f.lines[0].Advance()
	f.lines[1].Advance()
	return l, r
}

func (f *flutter) read(ch int, depth, speed float64, rng *noise.Xorshift32) float64 {
	other := 1 - ch

	offset := depth + (depth * math.Sin(f.sweep[ch]))
	f.sweep[ch] += f.nextMax[ch] * speed

	if f.sweep[ch] > flutterPhaseWrap {
		f.sweep[ch] -= flutterPhaseWrap

		a := flutterRateMin + (rng.Next() * flutterRateSpan)
		b := flutterRateMin + (rng.Next() * flutterRateSpan)
		target := math.Sin(f.sweep[other] + f.nextMax[other])
		if math.Abs(a-target) < math.Abs(b-target) {
			f.nextMax[ch] = a
		} else {
			f.nextMax[ch] = b
		}
	}

	return f.lines[ch].ReadLagrange(offset)
}

func (f *flutter) head() int {
	return f.lines[0].Head()
}

func (f *flutter) reset() {
	for ch := range f.lines {
		f.lines[ch].Reset()
		f.sweep[ch] = flutterInitialPhase
		f.nextMax[ch] = flutterInitialRate
	}
}
