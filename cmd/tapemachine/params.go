package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"log/slog"
	"text/tabwriter"

	"github.com/cwbudde/algo-tape/dsp/core"
	"github.com/cwbudde/algo-tape/dsp/effects/tape"
	"github.com/cwbudde/algo-tape/host"
)

// paramFlags binds the host parameter table to a flag set.
type paramFlags struct {
	values  [tape.NumControls]string
	bypass  bool
	state   string
	seed    uint
	block   int
	verbose bool
}

func bindParamFlags(fs *flag.FlagSet) *paramFlags {
	pf := &paramFlags{}
	for _, d := range host.Definitions() {
		fs.StringVar(&pf.values[d.Control], d.Key, "",
			fmt.Sprintf("%s in [%s, %s] (default %s)", d.Name, d.Format(d.Min), d.Format(d.Max), d.Format(d.Default)))
	}
	fs.BoolVar(&pf.bypass, "bypass", false, "pass audio through unchanged")
	fs.StringVar(&pf.state, "state", "", "load parameters from a JSON state file first")
	fs.UintVar(&pf.seed, "seed", 0, "noise seed (0 picks a random seed)")
	fs.IntVar(&pf.block, "block", core.DefaultProcessorConfig().BlockSize, "processing block size in samples")
	fs.BoolVar(&pf.verbose, "v", false, "verbose logging")
	return pf
}

// parameters builds the store: defaults, then the state file, then flags.
func (pf *paramFlags) parameters() (*host.Parameters, error) {
	p := host.NewParameters()

	if pf.state != "" {
		data, err := os.ReadFile(pf.state)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("%s: %w", pf.state, err)
		}
	}

	for c, s := range pf.values {
		if s == "" {
			continue
		}
		if err := p.SetString(tape.Control(c), s); err != nil {
			return nil, err
		}
	}
	if pf.bypass {
		p.SetBypass(true)
	}
	return p, nil
}

// processor builds a prepared processor at sampleRate.
func (pf *paramFlags) processor(sampleRate float64) (*host.Processor, *host.Parameters, error) {
	params, err := pf.parameters()
	if err != nil {
		return nil, nil, err
	}

	var opts []tape.Option
	if pf.seed != 0 {
		seed := uint32(pf.seed)
		opts = append(opts, tape.WithSeed(seed, seed^0x9e3779b9))
	}

	proc, err := host.NewProcessor(params, opts...)
	if err != nil {
		return nil, nil, err
	}

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(sampleRate), core.WithBlockSize(pf.block))
	if cfg.SampleRate != sampleRate || cfg.BlockSize != pf.block {
		return nil, nil, fmt.Errorf("invalid processing setup: %g Hz, block %d", sampleRate, pf.block)
	}
	if err := proc.Prepare(cfg); err != nil {
		return nil, nil, err
	}
	return proc, params, nil
}

func printParams(w io.Writer, p *host.Parameters) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Parameter\tKey\tValue\tRange\tDefault")
	fmt.Fprintln(tw, "---------\t---\t-----\t-----\t-------")
	for _, d := range host.Definitions() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s .. %s\t%s\n",
			d.Name, d.Key, p.Format(d.Control), d.Format(d.Min), d.Format(d.Max), d.Format(d.Default))
	}
	fmt.Fprintf(tw, "Bypass\tbypass\t%t\t\tfalse\n", p.Bypassed())
	return tw.Flush()
}

func runParams(args []string, stdout io.Writer, _ *slog.Logger) error {
	fs := flag.NewFlagSet("params", flag.ContinueOnError)
	pf := bindParamFlags(fs)
	save := fs.String("save", "", "write the resulting parameters to a JSON state file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := pf.parameters()
	if err != nil {
		return err
	}

	if *save != "" {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(*save, append(data, '\n'), 0o644); err != nil {
			return err
		}
	}
	return printParams(stdout, p)
}
