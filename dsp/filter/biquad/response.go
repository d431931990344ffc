package biquad

import "math"

// Response evaluates H at freq (Hz) for sampleRate and returns it as a
// complex number.
func (c Coefficients) Response(freq, sampleRate float64) complex128 {
	w := 2 * math.Pi * freq / sampleRate
	cos1, sin1 := math.Cos(w), math.Sin(w)
	cos2, sin2 := math.Cos(2*w), math.Sin(2*w)

	num := complex(c.B0+c.B1*cos1+c.B2*cos2, -(c.B1*sin1 + c.B2*sin2))
	den := complex(1+c.A1*cos1+c.A2*cos2, -(c.A1*sin1 + c.A2*sin2))
	return num / den
}

// MagnitudeDB returns the gain at freq in decibels.
func (c Coefficients) MagnitudeDB(freq, sampleRate float64) float64 {
	h := c.Response(freq, sampleRate)
	return 10 * math.Log10(real(h)*real(h)+imag(h)*imag(h))
}
