package tape

const (
	clipHardLimit = 4.0
	clipThreshold = 0.9549925859
	clipHeldBase  = 0.7058208
	clipHeldSlope = 0.2609148
	clipDecayBase = 0.2491717
	clipDecayKeep = 0.7390851
)

// SoftClipper is a one-sample-latency soft clipper.
//
// Samples are hard limited to ±4 first. Crossing ±0.9549925859 enters a
// held state in which the remembered sample is smoothed toward the knee,
// and every call returns the previous call's (possibly reshaped) sample.
type SoftClipper struct {
	last    float64
	heldPos bool
	heldNeg bool
}

// Process runs one sample and returns the delayed output.
func (c *SoftClipper) Process(x float64) float64 {
	if x > clipHardLimit {
		x = clipHardLimit
	}
	if x < -clipHardLimit {
		x = -clipHardLimit
	}

	if c.heldPos {
		if x < c.last {
			c.last = clipHeldBase + (x * clipHeldSlope)
		} else {
			c.last = clipDecayBase + (c.last * clipDecayKeep)
		}
	}
	c.heldPos = false

	if x > clipThreshold {
		c.heldPos = true
		x = clipHeldBase + (c.last * clipHeldSlope)
	}

	if c.heldNeg {
		if x > c.last {
			c.last = -clipHeldBase + (x * clipHeldSlope)
		} else {
			c.last = -clipDecayBase + (c.last * clipDecayKeep)
		}
	}
	c.heldNeg = false

	if x < -clipThreshold {
		c.heldNeg = true
		x = -clipHeldBase + (c.last * clipHeldSlope)
	}

	out := c.last
	c.last = x
	return out
}

// Held reports the sticky clip flags.
func (c *SoftClipper) Held() (positive, negative bool) {
	return c.heldPos, c.heldNeg
}

// Reset clears the remembered sample and both flags.
func (c *SoftClipper) Reset() {
	*c = SoftClipper{}
}
