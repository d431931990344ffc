package tape

import (
	"fmt"

	"github.com/cwbudde/algo-tape/dsp/core"
	"github.com/cwbudde/algo-tape/dsp/noise"
)

// Option mutates construction-time parameters.
type Option func(*engineConfig) error

type engineConfig struct {
	processor core.ProcessorConfig
	seeds     [2]uint32
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		processor: core.DefaultProcessorConfig(),
		seeds:     [2]uint32{noise.EntropySeed(), noise.EntropySeed()},
	}
}

// WithSeed fixes the left and right noise seeds for reproducible output.
// A zero seed selects that channel's built-in fallback.
func WithSeed(left, right uint32) Option {
	return func(cfg *engineConfig) error {
		cfg.seeds = [2]uint32{left, right}
		return nil
	}
}

// WithSampleRate sets the initial sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *engineConfig) error {
		if !core.ValidSampleRate(sampleRate) {
			return fmt.Errorf("tape sample rate must be > 0 and finite: %f", sampleRate)
		}
		cfg.processor.SampleRate = sampleRate
		return nil
	}
}

// WithMaxBlockSize sets the initial maximum block size in samples.
func WithMaxBlockSize(n int) Option {
	return func(cfg *engineConfig) error {
		if n <= 0 {
			return fmt.Errorf("tape max block size must be > 0: %d", n)
		}
		cfg.processor.BlockSize = n
		return nil
	}
}
