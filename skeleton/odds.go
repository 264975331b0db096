package skeleton

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/boneyard/common"
)

// Odds yields the probability of taking ethereal form at a health fraction.
type Odds interface {
	Probability(healthFraction float64) float64
}

// FixedOdds ignores the health fraction.
type FixedOdds float64

func (o FixedOdds) Probability(float64) float64 {
	return float64(o)
}

// ScriptOdds evaluates a tengo script that reads `health_fraction` and
// assigns `odds`.
type ScriptOdds struct {
	compiled *tengo.Compiled
	fallback float64
}

// CompileOdds compiles src once. fallback is returned whenever a run fails.
func CompileOdds(src []byte, fallback float64) (*ScriptOdds, error) {
	script := tengo.NewScript(src)
	if err := script.Add("health_fraction", 1.0); err != nil {
		return nil, fmt.Errorf("odds: add health_fraction: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("odds: compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("odds: run: %w", err)
	}
	if !compiled.IsDefined("odds") {
		return nil, fmt.Errorf("odds: script does not define odds")
	}
	return &ScriptOdds{compiled: compiled, fallback: fallback}, nil
}

func (o *ScriptOdds) Probability(healthFraction float64) float64 {
	if o == nil || o.compiled == nil {
		return 0
	}
	if err := o.compiled.Set("health_fraction", healthFraction); err != nil {
		return o.fallback
	}
	if err := o.compiled.Run(); err != nil {
		return o.fallback
	}
	return common.Clamp(o.compiled.Get("odds").Float(), 0, 1)
}
