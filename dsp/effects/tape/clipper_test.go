package tape

import (
	"math"
	"testing"
)

func TestSoftClipperDelaysBelowThreshold(t *testing.T) {
	var c SoftClipper
	in := []float64{0.1, -0.5, 0.9, -0.95, 0.3}

	prev := 0.0
	for i, x := range in {
		if got := c.Process(x); got != prev {
			t.Fatalf("sample %d: got %v want %v", i, got, prev)
		}
		prev = x
	}
}

func TestSoftClipperConvergesToKnee(t *testing.T) {
	for _, level := range []float64{4, 10, -4, -10} {
		var c SoftClipper
		var got float64
		for i := 0; i < 200; i++ {
			got = c.Process(level)
			if math.Abs(got) > clipThreshold {
				t.Fatalf("level=%v sample %d: |%v| above knee", level, i, got)
			}
		}

		want := math.Copysign(clipThreshold, level)
		if math.Abs(got-want) > 1e-5 {
			t.Fatalf("level=%v: settled at %v want %v", level, got, want)
		}
	}
}

func TestSoftClipperBounded(t *testing.T) {
	var c SoftClipper
	for i := 0; i < 4096; i++ {
		x := 12 * math.Sin(float64(i)*0.37) * math.Cos(float64(i)*0.011)
		if got := c.Process(x); math.Abs(got) > clipHardLimit {
			t.Fatalf("sample %d: %v outside ±%v", i, got, clipHardLimit)
		}
	}
}

func TestSoftClipperHeldFlags(t *testing.T) {
	var c SoftClipper
	c.Process(2)
	if pos, neg := c.Held(); !pos || neg {
		t.Fatalf("after positive overload: held=(%v, %v)", pos, neg)
	}

	c.Process(-2)
	if pos, neg := c.Held(); pos || !neg {
		t.Fatalf("after negative overload: held=(%v, %v)", pos, neg)
	}

	c.Reset()
	if pos, neg := c.Held(); pos || neg {
		t.Fatal("Reset should clear held flags")
	}
	if got := c.Process(0.2); got != 0 {
		t.Fatalf("first sample after Reset: got %v want 0", got)
	}
}
