package host

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/algo-tape/dsp/effects/tape"
)

// StateVersion is written into saved state and checked on load.
const StateVersion = 1

type stateDoc struct {
	Version int                `json:"version"`
	Params  map[string]float64 `json:"params"`
	Bypass  bool               `json:"bypass"`
}

// MarshalJSON saves every parameter by key together with the bypass flag.
func (p *Parameters) MarshalJSON() ([]byte, error) {
	doc := stateDoc{
		Version: StateVersion,
		Params:  make(map[string]float64, len(definitions)),
		Bypass:  p.Bypassed(),
	}
	for _, d := range definitions {
		doc.Params[d.Key] = p.Get(d.Control)
	}
	return json.Marshal(doc)
}

// UnmarshalJSON restores state saved by MarshalJSON. Missing keys fall back
// to defaults, unknown keys are ignored and out-of-range values are
// rejected without modifying p.
func (p *Parameters) UnmarshalJSON(data []byte) error {
	var doc stateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode state: %w", err)
	}
	if doc.Version > StateVersion {
		return fmt.Errorf("state version %d is newer than supported %d", doc.Version, StateVersion)
	}

	staged := NewParameters()
	for key, v := range doc.Params {
		d, ok := Lookup(key)
		if !ok {
			continue
		}
		if err := staged.Set(d.Control, v); err != nil {
			return fmt.Errorf("decode state: %w", err)
		}
	}

	for c := tape.Control(0); c < tape.NumControls; c++ {
		p.values[c].Store(staged.values[c].Load())
	}
	p.SetBypass(doc.Bypass)
	return nil
}
