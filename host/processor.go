package host

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tape/dsp/core"
	"github.com/cwbudde/algo-tape/dsp/effects/tape"
	"github.com/cwbudde/algo-tape/dsp/param"
)

var (
	// ErrNotPrepared is returned by Process before Prepare succeeded.
	ErrNotPrepared = errors.New("host: processor not prepared")

	// ErrUnsupportedChannels is returned for more than two channels.
	ErrUnsupportedChannels = errors.New("host: unsupported channel count")
)

// Processor runs the tape engine over host buffers. It owns the smoothing
// bank, the engine and a scratch channel for mono input.
type Processor struct {
	params  *Parameters
	bank    *param.Bank
	engine  *tape.Engine
	scratch []float32

	cfg      core.ProcessorConfig
	prepared bool
}

// NewProcessor creates a processor reading from params. Engine options such
// as tape.WithSeed are passed through.
func NewProcessor(params *Parameters, opts ...tape.Option) (*Processor, error) {
	if params == nil {
		params = NewParameters()
	}

	engine, err := tape.New(opts...)
	if err != nil {
		return nil, err
	}

	cfg := core.ProcessorConfig{SampleRate: engine.SampleRate(), BlockSize: engine.MaxBlockSize()}
	return &Processor{
		params: params,
		bank:   param.NewBank(cfg.SampleRate, params.EngineValues()),
		engine: engine,
		cfg:    cfg,
	}, nil
}

// Prepare configures sample rate and maximum block size, allocates the mono
// scratch buffer and snaps every control to its current parameter value.
func (p *Processor) Prepare(cfg core.ProcessorConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("host prepare: %w", err)
	}
	if err := p.engine.Prepare(cfg.SampleRate, cfg.BlockSize); err != nil {
		return err
	}

	p.scratch = core.EnsureLen(p.scratch, cfg.BlockSize)
	p.bank.Prepare(cfg.SampleRate)
	p.bank.Reset(p.params.EngineValues())
	p.cfg = cfg
	p.prepared = true
	return nil
}

// Reset clears engine state and snaps controls to the current parameters.
func (p *Processor) Reset() {
	p.engine.Reset()
	core.Zero(p.scratch)
	p.bank.Reset(p.params.EngineValues())
}

// Config returns the prepared configuration.
func (p *Processor) Config() core.ProcessorConfig { return p.cfg }

// Parameters returns the parameter store.
func (p *Processor) Parameters() *Parameters { return p.params }

// Engine returns the underlying engine.
func (p *Processor) Engine() *tape.Engine { return p.engine }

// Latency returns the processing delay in samples.
func (p *Processor) Latency() int { return 1 }

// Process transforms one or two channels in place. Stereo channels are
// processed up to the shorter length. A single channel runs through the
// left path with the right path reading the same input into scratch.
// Buffers longer than the prepared block size are processed in chunks.
func (p *Processor) Process(channels [][]float32) error {
	if !p.prepared {
		return ErrNotPrepared
	}

	switch len(channels) {
	case 0:
		return nil
	case 1, 2:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, len(channels))
	}

	p.bank.Update(p.params.EngineValues(), p.params.Bypassed())

	if len(channels) == 1 {
		p.processMono(channels[0])
		return nil
	}

	left, right := channels[0], channels[1]
	n := min(len(left), len(right))
	block := p.cfg.BlockSize
	for start := 0; start < n; start += block {
		end := min(start+block, n)
		p.engine.Process(left[start:end], right[start:end], end-start, p.bank)
	}
	return nil
}

func (p *Processor) processMono(mono []float32) {
	block := p.cfg.BlockSize
	for start := 0; start < len(mono); start += block {
		end := min(start+block, len(mono))
		chunk := mono[start:end]
		p.engine.ProcessTo(chunk, p.scratch[:len(chunk)], chunk, chunk, len(chunk), p.bank)
	}
}
