package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-tape/dsp/filter/biquad"
)

func ExampleCoefficients_MagnitudeDB() {
	// One-pole smoother written as a biquad.
	c := biquad.Coefficients{B0: 0.1, A1: -0.9}

	fmt.Println(c.Stable())
	fmt.Printf("%.1f dB\n", c.MagnitudeDB(0, 48000))
	// Output:
	// true
	// 0.0 dB
}
