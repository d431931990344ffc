package interp

// Lagrange6Weights returns the six tap weights for positions -2..3 evaluated
// at frac. The weights sum to one for any frac.
func Lagrange6Weights(frac float64) [6]float64 {
	dm2 := frac + 2.0
	dm1 := frac + 1.0
	d0 := frac
	d1 := frac - 1.0
	d2 := frac - 2.0
	d3 := frac - 3.0

	return [6]float64{
		(dm1 * d0 * d1 * d2 * d3) * -0.00833333333333333,
		(dm2 * d0 * d1 * d2 * d3) * 0.04166666666666667,
		(dm2 * dm1 * d1 * d2 * d3) * -0.08333333333333333,
		(dm2 * dm1 * d0 * d2 * d3) * 0.08333333333333333,
		(dm2 * dm1 * d0 * d1 * d3) * -0.04166666666666667,
		(dm2 * dm1 * d0 * d1 * d2) * 0.00833333333333333,
	}
}

// Lagrange6 interpolates taps at positions -2..3 at fractional position frac.
// taps[2] is the sample at position 0.
func Lagrange6(frac float64, taps [6]float64) float64 {
	w := Lagrange6Weights(frac)
	return (taps[0] * w[0]) +
		(taps[1] * w[1]) +
		(taps[2] * w[2]) +
		(taps[3] * w[3]) +
		(taps[4] * w[4]) +
		(taps[5] * w[5])
}
