package host

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-tape/dsp/core"
	"github.com/cwbudde/algo-tape/dsp/effects/tape"
	"github.com/cwbudde/algo-tape/dsp/param"
)

// Unit is the display unit of a parameter.
type Unit int

const (
	UnitDecibels Unit = iota
	UnitPercent
	UnitHertz
)

// Definition describes one continuous parameter in plain units.
type Definition struct {
	Control tape.Control
	Key     string
	Name    string
	Unit    Unit
	Min     float64
	Max     float64
	Default float64
}

// Format renders value in the definition's unit.
func (d Definition) Format(value float64) string {
	switch d.Unit {
	case UnitDecibels:
		return param.FormatDecibels(value)
	case UnitHertz:
		return param.FormatHz(value)
	default:
		return param.FormatPercent(value)
	}
}

// Parse reads a display string in the definition's unit.
func (d Definition) Parse(s string) (float64, error) {
	switch d.Unit {
	case UnitDecibels:
		return param.ParseDecibels(s)
	case UnitHertz:
		return param.ParseHz(s)
	default:
		return param.ParsePercent(s)
	}
}

// ToEngine converts a plain value to the engine's control unit: dB become
// linear gain, percentages become 0..1, hertz pass through.
func (d Definition) ToEngine(value float64) float64 {
	switch d.Unit {
	case UnitDecibels:
		return core.DBToLinear(value)
	case UnitHertz:
		return value
	default:
		return value * 0.01
	}
}

var definitions = [tape.NumControls]Definition{
	{Control: tape.ControlInput, Key: "input", Name: "Input", Unit: UnitDecibels, Min: -12, Max: 12, Default: 0},
	{Control: tape.ControlTilt, Key: "tilt", Name: "Tilt", Unit: UnitPercent, Min: 0, Max: 100, Default: 0},
	{Control: tape.ControlShape, Key: "shape", Name: "Shape", Unit: UnitPercent, Min: 0, Max: 100, Default: 0},
	{Control: tape.ControlBias, Key: "bias", Name: "Bias", Unit: UnitPercent, Min: 0, Max: 100, Default: 50},
	{Control: tape.ControlFlutter, Key: "flutter", Name: "Flutter", Unit: UnitPercent, Min: 0, Max: 100, Default: 50},
	{Control: tape.ControlFlutterSpeed, Key: "speed", Name: "Flutter Speed", Unit: UnitPercent, Min: 0, Max: 100, Default: 50},
	{Control: tape.ControlBumpHead, Key: "bump", Name: "Bump Head", Unit: UnitPercent, Min: 0, Max: 100, Default: 50},
	{Control: tape.ControlBumpHz, Key: "bumpHz", Name: "Bump Freq", Unit: UnitHertz, Min: 1, Max: 150, Default: 75},
	{Control: tape.ControlOutput, Key: "output", Name: "Output", Unit: UnitDecibels, Min: -12, Max: 12, Default: 0},
}

// Definitions returns the parameter table in control order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions[:])
	return out
}

// Lookup finds a definition by key.
func Lookup(key string) (Definition, bool) {
	for _, d := range definitions {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// Parameters is a lock-free store of plain parameter values and the bypass
// flag. Values are kept as float64 bits in atomics so the audio goroutine
// can read them while a UI or CLI writes.
type Parameters struct {
	values [tape.NumControls]atomic.Uint64
	bypass atomic.Bool
}

// NewParameters returns a store holding every default.
func NewParameters() *Parameters {
	p := &Parameters{}
	p.ResetDefaults()
	return p
}

// ResetDefaults restores every parameter default and clears bypass.
func (p *Parameters) ResetDefaults() {
	for i, d := range definitions {
		p.values[i].Store(math.Float64bits(d.Default))
	}
	p.bypass.Store(false)
}

// Get returns the plain value of c.
func (p *Parameters) Get(c tape.Control) float64 {
	if !c.Valid() {
		return 0
	}
	return math.Float64frombits(p.values[c].Load())
}

// Set stores a plain value after validating it against the range.
func (p *Parameters) Set(c tape.Control, value float64) error {
	if !c.Valid() {
		return fmt.Errorf("unknown parameter: %v", c)
	}
	d := definitions[c]
	if math.IsNaN(value) || value < d.Min || value > d.Max {
		return fmt.Errorf("%s must be in [%g, %g]: %g", d.Key, d.Min, d.Max, value)
	}
	p.values[c].Store(math.Float64bits(value))
	return nil
}

// SetString parses s in the parameter's unit and stores it.
func (p *Parameters) SetString(c tape.Control, s string) error {
	if !c.Valid() {
		return fmt.Errorf("unknown parameter: %v", c)
	}
	v, err := definitions[c].Parse(s)
	if err != nil {
		return err
	}
	return p.Set(c, v)
}

// Format renders the current value of c for display.
func (p *Parameters) Format(c tape.Control) string {
	if !c.Valid() {
		return ""
	}
	return definitions[c].Format(p.Get(c))
}

// SetBypass sets the bypass flag.
func (p *Parameters) SetBypass(bypass bool) { p.bypass.Store(bypass) }

// Bypassed reports the bypass flag.
func (p *Parameters) Bypassed() bool { return p.bypass.Load() }

// EngineValues converts every parameter to engine control units.
func (p *Parameters) EngineValues() tape.Values {
	var v tape.Values
	for i, d := range definitions {
		v[i] = d.ToEngine(math.Float64frombits(p.values[i].Load()))
	}
	return v
}
