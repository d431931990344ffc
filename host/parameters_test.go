package host

import (
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-tape/dsp/effects/tape"
)

func TestParametersDefaults(t *testing.T) {
	p := NewParameters()

	assert.Equal(t, 0.0, p.Get(tape.ControlInput))
	assert.Equal(t, 50.0, p.Get(tape.ControlBias))
	assert.Equal(t, 75.0, p.Get(tape.ControlBumpHz))
	assert.False(t, p.Bypassed())

	v := p.EngineValues()
	assert.InDelta(t, 1.0, v[tape.ControlInput], 1e-12)
	assert.InDelta(t, 1.0, v[tape.ControlOutput], 1e-12)
	assert.InDelta(t, 0.5, v[tape.ControlBias], 1e-12)
	assert.InDelta(t, 0.0, v[tape.ControlTilt], 1e-12)
	assert.InDelta(t, 75.0, v[tape.ControlBumpHz], 1e-12)
}

func TestParametersSetValidatesRange(t *testing.T) {
	p := NewParameters()

	require.NoError(t, p.Set(tape.ControlInput, -6))
	assert.InDelta(t, 0.501187, p.EngineValues()[tape.ControlInput], 1e-6)

	assert.Error(t, p.Set(tape.ControlInput, 12.5))
	assert.Error(t, p.Set(tape.ControlBumpHz, 0.5))
	assert.Error(t, p.Set(tape.ControlFlutter, math.NaN()))
	assert.Error(t, p.Set(tape.NumControls, 1))
	assert.Equal(t, -6.0, p.Get(tape.ControlInput), "failed Set must not modify the value")
}

func TestParametersStrings(t *testing.T) {
	p := NewParameters()

	require.NoError(t, p.SetString(tape.ControlOutput, "-3dB"))
	require.NoError(t, p.SetString(tape.ControlFlutter, "25%"))
	require.NoError(t, p.SetString(tape.ControlBumpHz, "110Hz"))

	assert.Equal(t, "-3.0dB", p.Format(tape.ControlOutput))
	assert.Equal(t, "25%", p.Format(tape.ControlFlutter))
	assert.Equal(t, "110Hz", p.Format(tape.ControlBumpHz))

	assert.Error(t, p.SetString(tape.ControlBias, "lots"))
	assert.Error(t, p.SetString(tape.ControlBias, "120%"))
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("bumpHz")
	require.True(t, ok)
	assert.Equal(t, tape.ControlBumpHz, d.Control)
	assert.Equal(t, UnitHertz, d.Unit)

	_, ok = Lookup("wow")
	assert.False(t, ok)

	defs := Definitions()
	require.Len(t, defs, int(tape.NumControls))
	for i, d := range defs {
		assert.Equal(t, tape.Control(i), d.Control)
		assert.GreaterOrEqual(t, d.Default, d.Min, d.Key)
		assert.LessOrEqual(t, d.Default, d.Max, d.Key)
	}
}

func TestParametersStateRoundTrip(t *testing.T) {
	p := NewParameters()
	require.NoError(t, p.Set(tape.ControlTilt, 30))
	require.NoError(t, p.Set(tape.ControlOutput, -2.5))
	p.SetBypass(true)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	q := NewParameters()
	require.NoError(t, json.Unmarshal(data, q))
	assert.Equal(t, p.EngineValues(), q.EngineValues())
	assert.True(t, q.Bypassed())
}

func TestParametersStateMissingAndUnknownKeys(t *testing.T) {
	p := NewParameters()
	require.NoError(t, p.Set(tape.ControlShape, 80))

	require.NoError(t, json.Unmarshal([]byte(`{"version":1,"params":{"bias":10,"hiss":3}}`), p))
	assert.Equal(t, 10.0, p.Get(tape.ControlBias))
	assert.Equal(t, 0.0, p.Get(tape.ControlShape), "missing keys fall back to defaults")
}

func TestParametersStateRejectsBadInput(t *testing.T) {
	p := NewParameters()
	require.NoError(t, p.Set(tape.ControlBias, 20))

	assert.Error(t, json.Unmarshal([]byte(`{"version":1,"params":{"bias":500}}`), p))
	assert.Error(t, json.Unmarshal([]byte(`{"version":99}`), p))
	assert.Error(t, json.Unmarshal([]byte(`{nope`), p))
	assert.Equal(t, 20.0, p.Get(tape.ControlBias))
}

func TestParametersConcurrentAccess(t *testing.T) {
	p := NewParameters()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = p.Set(tape.ControlFlutter, float64((i+w)%100))
				_ = p.EngineValues()
				p.SetBypass(i%2 == 0)
			}
		}(w)
	}
	wg.Wait()

	v := p.Get(tape.ControlFlutter)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 100.0)
}
