package core

import "math"

const defaultEpsilon = 1e-12

// ReferenceSampleRate is the rate all time-constant-derived coefficients are
// tuned against. See [OverallScale].
const ReferenceSampleRate = 44100.0

// DenormalThreshold is the magnitude below which a sample is treated as
// denormal-prone and replaced with sub-audible dither.
const DenormalThreshold = 1.18e-23

// DenormalDitherAmplitude scales the uniform dither injected in place of a
// denormal-prone sample.
const DenormalDitherAmplitude = 1.18e-17

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// OverallScale returns sampleRate relative to [ReferenceSampleRate].
// Coefficients expressed per reference sample are divided by it, delays in
// samples are multiplied by it.
func OverallScale(sampleRate float64) float64 {
	return sampleRate / ReferenceSampleRate
}

// IsDenormalProne reports whether |x| is below [DenormalThreshold].
func IsDenormalProne(x float64) bool {
	return math.Abs(x) < DenormalThreshold
}

// ValidSampleRate reports whether sampleRate is positive and finite.
func ValidSampleRate(sampleRate float64) bool {
	return sampleRate > 0 && !math.IsNaN(sampleRate) && !math.IsInf(sampleRate, 0)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
