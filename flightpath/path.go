// Package flightpath generates erratic but deterministic 2D offsets for
// flying enemies.
package flightpath

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/common"
)

const defaultPeriod = 4000.0

// Path is a continuous offset trajectory around an origin. All randomness is
// drawn once, at construction.
type Path struct {
	origin    cp.Vector
	amplitude float64
	period    float64
	wobble    float64

	// phase and frequency ratios for the primary and wobble waves per axis
	phaseX, phaseY [2]float64
	ratioX, ratioY [2]float64
	baseX, baseY   float64
	boundX, boundY float64
}

// New builds a path around origin. amplitude scales the main sweep in
// pixels, period is the main sweep length in ms and wobble is the amplitude
// of a faster secondary wave layered on top.
func New(origin cp.Vector, amplitude, period, wobble float64) *Path {
	if period <= 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		period = defaultPeriod
	}
	amplitude = finite(amplitude)
	wobble = finite(wobble)

	seed := common.StringSeed(fmt.Sprintf("%g:%g:%g", amplitude, period, wobble))
	rng := common.NewMulberry32(seed())

	p := &Path{
		origin:    origin,
		amplitude: amplitude,
		period:    period,
		wobble:    wobble,
	}
	for i := 0; i < 2; i++ {
		p.phaseX[i] = rng.Float64() * 2 * math.Pi
		p.phaseY[i] = rng.Float64() * 2 * math.Pi
	}
	// Non-integer ratios so the axes never settle into a closed loop.
	p.ratioX = [2]float64{1, 2.3 + rng.Float64()*0.9}
	p.ratioY = [2]float64{1.6 + rng.Float64()*0.5, 3.1 + rng.Float64()*1.3}

	p.baseX = p.rawX(0)
	p.baseY = p.rawY(0)
	p.boundX = 2 * (math.Abs(amplitude) + math.Abs(wobble))
	p.boundY = 2 * (math.Abs(amplitude)/2 + math.Abs(wobble))
	return p
}

// Next returns the offset from the origin after elapsedMs since the path
// began. It is a pure function of elapsedMs; Next(0) is the zero vector.
func (p *Path) Next(elapsedMs float64) cp.Vector {
	if p == nil {
		return cp.Vector{}
	}
	elapsedMs = finite(elapsedMs)
	return cp.Vector{
		X: p.rawX(elapsedMs) - p.baseX,
		Y: p.rawY(elapsedMs) - p.baseY,
	}
}

func (p *Path) Origin() cp.Vector {
	if p == nil {
		return cp.Vector{}
	}
	return p.origin
}

// Bound is the largest offset magnitude Next can return on each axis.
func (p *Path) Bound() cp.Vector {
	if p == nil {
		return cp.Vector{}
	}
	return cp.Vector{X: p.boundX, Y: p.boundY}
}

func (p *Path) rawX(t float64) float64 {
	w := 2 * math.Pi * t / p.period
	return p.amplitude*math.Sin(w*p.ratioX[0]+p.phaseX[0]) +
		p.wobble*math.Sin(w*p.ratioX[1]+p.phaseX[1])
}

func (p *Path) rawY(t float64) float64 {
	w := 2 * math.Pi * t / p.period
	return p.amplitude/2*math.Sin(w*p.ratioY[0]+p.phaseY[0]) +
		p.wobble*math.Sin(w*p.ratioY[1]+p.phaseY[1])
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
