package stream

import (
	"math"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-tape/dsp/core"
	"github.com/cwbudde/algo-tape/dsp/effects/tape"
	"github.com/cwbudde/algo-tape/host"
)

func sine(freq float64, sampleRate int, n int) beep.Streamer {
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		count := 0
		for j := range samples {
			if i >= n {
				break
			}
			v := 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
			samples[j] = [2]float64{v, v}
			i++
			count++
		}
		return count, true
	})
}

func newProcessor(t *testing.T, params *host.Parameters, block int) *host.Processor {
	t.Helper()

	proc, err := host.NewProcessor(params, tape.WithSeed(1, 2))
	require.NoError(t, err)
	require.NoError(t, proc.Prepare(core.ProcessorConfig{SampleRate: 44100, BlockSize: block}))
	return proc
}

func TestTapeStreamsAllFrames(t *testing.T) {
	s := New(sine(1000, 44100, 5000), newProcessor(t, host.NewParameters(), 100))

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			require.False(t, math.IsNaN(buf[i][0]) || math.IsNaN(buf[i][1]), "frame %d", total-n+i)
			require.LessOrEqual(t, math.Abs(buf[i][0]), 4.0)
		}
		if !ok {
			break
		}
	}

	assert.Equal(t, 5000, total)
	assert.NoError(t, s.Err())
}

func TestTapeBypassIsTransparent(t *testing.T) {
	params := host.NewParameters()
	params.SetBypass(true)

	s := New(sine(440, 44100, 1000), newProcessor(t, params, 64))
	ref := sine(440, 44100, 1000)

	got := make([][2]float64, 1000)
	want := make([][2]float64, 1000)
	n, _ := s.Stream(got)
	m, _ := ref.Stream(want)
	require.Equal(t, m, n)

	for i := 0; i < n; i++ {
		// Only the float32 round trip separates the two.
		require.InDelta(t, want[i][0], got[i][0], 1e-7)
		require.InDelta(t, want[i][1], got[i][1], 1e-7)
	}
}

func TestTapeStreamCollectsWithBeep(t *testing.T) {
	params := host.NewParameters()
	s := New(sine(200, 44100, 2048), newProcessor(t, params, 256))

	var frames int
	ctrl := beep.Seq(s, beep.Callback(func() {}))
	buf := make([][2]float64, 300)
	for {
		n, ok := ctrl.Stream(buf)
		frames += n
		if !ok {
			break
		}
	}
	assert.Equal(t, 2048, frames)
}

func TestTapeReportsProcessorError(t *testing.T) {
	proc, err := host.NewProcessor(nil, tape.WithMaxBlockSize(32))
	require.NoError(t, err)

	s := New(sine(440, 44100, 100), proc)
	n, ok := s.Stream(make([][2]float64, 64))

	assert.Zero(t, n)
	assert.False(t, ok)
	assert.ErrorIs(t, s.Err(), host.ErrNotPrepared)
}
