package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-tape/dsp/effects/tape"
	"github.com/cwbudde/algo-tape/host"
	"github.com/cwbudde/algo-tape/internal/testutil"
	"github.com/cwbudde/algo-tape/internal/wavio"
)

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.ErrorIs(t, run(nil, &stdout, &stderr), flag.ErrHelp)
	assert.Contains(t, stderr.String(), "render")

	assert.Error(t, run([]string{"rewind"}, &stdout, &stderr))
}

func TestParamsSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	preset := filepath.Join(dir, "preset.json")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"params", "-bias", "80%", "-output", "-3dB", "-save", preset}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "80%")
	assert.Contains(t, stdout.String(), "-3.0dB")

	data, err := os.ReadFile(preset)
	require.NoError(t, err)
	p := host.NewParameters()
	require.NoError(t, json.Unmarshal(data, p))
	assert.Equal(t, 80.0, p.Get(tape.ControlBias))

	stdout.Reset()
	require.NoError(t, run([]string{"params", "-state", preset, "-flutter", "10"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "80%")
	assert.Contains(t, stdout.String(), "10%")

	assert.Error(t, run([]string{"params", "-bias", "180%"}, &stdout, &stderr))
}

func TestToneReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := filepath.Join(t.TempDir(), "tone.wav")

	err := run([]string{"tone", "-length", "100ms", "-freq", "1000", "-seed", "7", "-out", out}, &stdout, &stderr)
	require.NoError(t, err)

	report := stdout.String()
	assert.Contains(t, report, "Fundamental")
	assert.Contains(t, report, "THD")
	assert.Contains(t, report, "Out RMS")

	a, err := wavio.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 4800, a.Frames())

	assert.Error(t, run([]string{"tone", "-freq", "30000"}, &stdout, &stderr))
}

func TestRenderBypassCopiesAudio(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")

	src := wavio.New(44100, 16, 2, 0)
	src.Channels[0], src.Channels[1] = testutil.Stereo(testutil.DeterministicSine(220, 44100, 0.4, 3000))
	require.NoError(t, wavio.WriteFile(in, src))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"render", "-in", in, "-out", out, "-bypass", "-block", "256"}, &stdout, &stderr))

	a, err := wavio.ReadFile(in)
	require.NoError(t, err)
	b, err := wavio.ReadFile(out)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, b.Channels[0], a.Channels[0], 1e-6)
	testutil.RequireSliceNearlyEqual(t, b.Channels[1], a.Channels[1], 1e-6)
	assert.Contains(t, stderr.String(), "rendered")

	assert.Error(t, run([]string{"render", "-in", in}, &stdout, &stderr))
	assert.Error(t, run([]string{"render", "-in", in, "-out", out, "-block", "0"}, &stdout, &stderr))
}
