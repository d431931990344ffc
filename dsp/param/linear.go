package param

// Linear is a linearly ramped value. A new target is reached in exactly
// the configured number of steps; with zero steps targets apply at once.
//
// The zero value holds 0 and does not ramp.
type Linear struct {
	current   float64
	target    float64
	step      float64
	steps     int
	countdown int
}

// NewLinear returns a ramp of the given length holding value.
func NewLinear(value float64, steps int) Linear {
	var l Linear
	l.Reset(steps)
	l.SetCurrentAndTarget(value)
	return l
}

// Reset sets the ramp length and jumps to the current target.
func (l *Linear) Reset(steps int) {
	if steps < 0 {
		steps = 0
	}
	l.steps = steps
	l.SetCurrentAndTarget(l.target)
}

// Steps returns the configured ramp length.
func (l *Linear) Steps() int { return l.steps }

// SetCurrentAndTarget jumps to value without ramping.
func (l *Linear) SetCurrentAndTarget(value float64) {
	l.current = value
	l.target = value
	l.step = 0
	l.countdown = 0
}

// SetTarget starts a ramp from the current value toward target. Setting the
// value already targeted leaves any ramp in progress untouched.
func (l *Linear) SetTarget(target float64) {
	if target == l.target {
		return
	}
	if l.steps <= 0 {
		l.SetCurrentAndTarget(target)
		return
	}

	l.target = target
	l.countdown = l.steps
	l.step = (l.target - l.current) / float64(l.countdown)
}

// Next advances one step and returns the new value.
func (l *Linear) Next() float64 {
	if l.countdown <= 0 {
		return l.target
	}

	l.countdown--
	if l.countdown > 0 {
		l.current += l.step
	} else {
		l.current = l.target
	}
	return l.current
}

// Skip advances n steps and returns the resulting value.
func (l *Linear) Skip(n int) float64 {
	if n <= 0 {
		return l.current
	}
	if n >= l.countdown {
		l.SetCurrentAndTarget(l.target)
		return l.target
	}

	l.current += l.step * float64(n)
	l.countdown -= n
	return l.current
}

// Peek returns the current value without advancing.
func (l *Linear) Peek() float64 { return l.current }

// Target returns the value being ramped toward.
func (l *Linear) Target() float64 { return l.target }

// IsSmoothing reports whether a ramp is in progress.
func (l *Linear) IsSmoothing() bool { return l.countdown > 0 }
