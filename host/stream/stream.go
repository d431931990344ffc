// Package stream adapts a host.Processor to the gopxl/beep streaming
// pipeline.
package stream

import (
	"github.com/gopxl/beep/v2"

	"github.com/cwbudde/algo-tape/host"
)

// Tape is a beep.Streamer that runs samples from an inner streamer through
// a tape processor. It sits between a decoder and the speaker or a writer.
type Tape struct {
	s     beep.Streamer
	proc  *host.Processor
	left  []float32
	right []float32
	err   error
}

var _ beep.Streamer = (*Tape)(nil)

// New wraps s. The processor must be prepared; its block size bounds how
// many frames are converted per internal step.
func New(s beep.Streamer, proc *host.Processor) *Tape {
	block := proc.Config().BlockSize
	return &Tape{
		s:     s,
		proc:  proc,
		left:  make([]float32, block),
		right: make([]float32, block),
	}
}

// Stream pulls from the inner streamer and processes the frames in place.
func (t *Tape) Stream(samples [][2]float64) (int, bool) {
	if t.err != nil {
		return 0, false
	}

	n, ok := t.s.Stream(samples)
	block := len(t.left)
	for start := 0; start < n; start += block {
		end := min(start+block, n)
		frames := samples[start:end]
		l := t.left[:len(frames)]
		r := t.right[:len(frames)]

		for i, f := range frames {
			l[i] = float32(f[0])
			r[i] = float32(f[1])
		}
		if err := t.proc.Process([][]float32{l, r}); err != nil {
			t.err = err
			return start, start > 0
		}
		for i := range frames {
			frames[i][0] = float64(l[i])
			frames[i][1] = float64(r[i])
		}
	}
	return n, ok
}

// Err returns the first processing error, or the inner streamer's error.
func (t *Tape) Err() error {
	if t.err != nil {
		return t.err
	}
	return t.s.Err()
}
