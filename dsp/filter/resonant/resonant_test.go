package resonant

import (
	"math"
	"testing"
)

func TestDesignPeaksAtCenter(t *testing.T) {
	const sr = 48000.0
	for _, freq := range []float64{20, 50, 75, 150} {
		c := Design(freq, 0.618033988, sr)
		if got := c.MagnitudeDB(freq, sr); math.Abs(got) > 1e-6 {
			t.Fatalf("freq=%v: center gain %v dB, want 0", freq, got)
		}
		if got := c.MagnitudeDB(freq*10, sr); got > -10 {
			t.Fatalf("freq=%v: decade above %v dB, want < -10", freq, got)
		}
		if got := c.MagnitudeDB(freq/10, sr); got > -10 {
			t.Fatalf("freq=%v: decade below %v dB, want < -10", freq, got)
		}
	}
}

func TestDesignZeros(t *testing.T) {
	c := Design(100, 0.618033988, 44100)
	if c.B1 != 0 || c.B2 != -c.B0 {
		t.Fatalf("unexpected zero placement: %+v", c)
	}
	for _, freq := range []float64{1, 75, 150, 20000} {
		if c := Design(freq, 0.618033988, 44100); !c.Stable() {
			t.Fatalf("freq=%v: unstable design %+v", freq, c)
		}
	}
}

func TestChannelsAreIndependent(t *testing.T) {
	var f Filter
	f.SetCoefficients(60, 0.618033988, 44100)

	// Drive only the left channel; the right must stay silent.
	for i := 0; i < 256; i++ {
		x := 0.0
		if i == 0 {
			x = 1
		}
		f.ProcessChannel(0, x)
		if y := f.ProcessChannel(1, 0); y != 0 {
			t.Fatalf("right channel leaked %v at %d", y, i)
		}
	}
}

func TestSetCoefficientsKeepsState(t *testing.T) {
	var a, b Filter
	a.SetCoefficients(60, 0.618033988, 44100)
	b.SetCoefficients(60, 0.618033988, 44100)

	a.ProcessChannel(0, 1)
	b.ProcessChannel(0, 1)
	b.SetCoefficients(60, 0.618033988, 44100)

	if ya, yb := a.ProcessChannel(0, 0), b.ProcessChannel(0, 0); ya != yb {
		t.Fatalf("redesign with same params changed output: %v vs %v", ya, yb)
	}
}

func TestReset(t *testing.T) {
	var f Filter
	f.SetCoefficients(60, 0.618033988, 44100)
	f.ProcessChannel(0, 1)
	f.ProcessChannel(1, 1)
	f.Reset()
	if f.ProcessChannel(0, 0) != 0 || f.ProcessChannel(1, 0) != 0 {
		t.Fatal("state survived Reset")
	}
}

func TestSetCoefficientsRedesignsOnChange(t *testing.T) {
	var f Filter
	f.SetCoefficients(60, 0.618033988, 44100)
	first := f.Coefficients()

	f.SetCoefficients(60, 0.618033988, 44100)
	if f.Coefficients() != first {
		t.Fatal("repeated design changed coefficients")
	}

	f.SetCoefficients(120, 0.618033988, 44100)
	if f.Coefficients() == Design(60, 0.618033988, 44100) {
		t.Fatal("frequency change did not redesign")
	}
	if f.Coefficients() != Design(120, 0.618033988, 44100) {
		t.Fatal("redesign does not match Design")
	}
}
