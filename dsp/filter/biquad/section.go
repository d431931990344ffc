package biquad

import "math"

// Coefficients is a normalized second-order transfer function
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// Section runs one set of [Coefficients] in transposed direct form II.
// The zero value is a silent section with cleared state.
type Section struct {
	Coefficients

	z [2]float64
}

// NewSection returns a Section with coefficients c and cleared state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := x*s.B0 + s.z[0]
	s.z[0] = x*s.B1 - y*s.A1 + s.z[1]
	s.z[1] = x*s.B2 - y*s.A2
	return y
}

// Reset clears the feedback state. Coefficients are kept.
func (s *Section) Reset() {
	s.z = [2]float64{}
}

// Idle reports whether the feedback state is exactly zero.
func (s *Section) Idle() bool {
	return s.z == [2]float64{}
}
