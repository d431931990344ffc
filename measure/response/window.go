package response

import "math"

// Window selects the analysis window applied before the FFT.
type Window int

const (
	WindowHann Window = iota
	WindowBlackmanHarris
	WindowRectangular
)

// String returns the window name.
func (w Window) String() string {
	switch w {
	case WindowHann:
		return "hann"
	case WindowBlackmanHarris:
		return "blackman-harris"
	case WindowRectangular:
		return "rectangular"
	default:
		return "unknown"
	}
}

// lobeBins is the half-width of the main lobe in bins.
func (w Window) lobeBins() int {
	switch w {
	case WindowBlackmanHarris:
		return 4
	case WindowRectangular:
		return 1
	default:
		return 2
	}
}

// coefficients returns the periodic window of length n.
func (w Window) coefficients(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		x := 2 * math.Pi * float64(i) / float64(n)
		switch w {
		case WindowRectangular:
			out[i] = 1
		case WindowBlackmanHarris:
			out[i] = 0.35875 - 0.48829*math.Cos(x) + 0.14128*math.Cos(2*x) - 0.01168*math.Cos(3*x)
		default:
			out[i] = 0.5 - 0.5*math.Cos(x)
		}
	}
	return out
}
