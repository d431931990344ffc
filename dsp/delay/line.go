package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tape/dsp/interp"
)

// Line is a circular delay line with an explicit write head.
//
// Unlike a write-and-advance FIFO, the head stays put after [Line.Store] so
// that reads relative to the just-written slot can happen before
// [Line.Advance]. All tap addressing goes through [Line.Wrap], so every
// index resolves into [0, Len()).
type Line struct {
	buffer []float64
	head   int
}

// New returns a delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Head returns the current write index.
func (d *Line) Head() int {
	return d.head
}

// Wrap maps any integer index onto [0, Len()).
func (d *Line) Wrap(i int) int {
	n := len(d.buffer)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Store writes one sample at the head without advancing it.
func (d *Line) Store(sample float64) {
	d.buffer[d.head] = sample
}

// Advance moves the head forward by one slot.
func (d *Line) Advance() {
	d.head++
	if d.head >= len(d.buffer) {
		d.head = 0
	}
}

// Write stores one sample and advances the head.
func (d *Line) Write(sample float64) {
	d.Store(sample)
	d.Advance()
}

// Read returns the sample written delay writes before the most recent one.
func (d *Line) Read(delay int) float64 {
	return d.buffer[d.Wrap(d.head-1-delay)]
}

// At returns the sample stored at head+offset.
func (d *Line) At(offset int) float64 {
	return d.buffer[d.Wrap(d.head+offset)]
}

// ReadLagrange reads at head+offset with 6-tap Lagrange interpolation.
// Taps sit at floor(offset)-2 .. floor(offset)+3 relative to the head.
func (d *Line) ReadLagrange(offset float64) float64 {
	fl := math.Floor(offset)
	base := d.head + int(fl)
	taps := [6]float64{
		d.buffer[d.Wrap(base-2)],
		d.buffer[d.Wrap(base-1)],
		d.buffer[d.Wrap(base)],
		d.buffer[d.Wrap(base+1)],
		d.buffer[d.Wrap(base+2)],
		d.buffer[d.Wrap(base+3)],
	}
	return interp.Lagrange6(offset-fl, taps)
}

// Reset clears line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.head = 0
}
