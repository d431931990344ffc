package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	// 1 kHz at 48 kHz peaks at sample 12.
	if math.Abs(s[12]-1) > 1e-12 {
		t.Fatalf("s[12] = %v, want 1", s[12])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 256)
	b := DeterministicNoise(42, 0.5, 256)
	c := DeterministicNoise(43, 0.5, 256)

	RequireSliceNearlyEqual(t, a, b, 0)
	if d, _ := MaxAbsDiff(a, c); d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
	RequireBounded(t, a, 0.5)
}

func TestImpulseAndDC(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}
	for i, v := range Impulse(4, 10) {
		if v != 0 {
			t.Fatalf("out-of-range impulse[%d] = %v", i, v)
		}
	}
	for i, v := range DC(0.5, 4) {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestFloatConversions(t *testing.T) {
	x := []float64{0.25, -0.5, 1}
	l, r := Stereo(x)
	r[0] = 9

	if l[0] != 0.25 {
		t.Fatal("Stereo should return independent buffers")
	}
	RequireSliceNearlyEqual(t, Float64(l), x, 0)
}
