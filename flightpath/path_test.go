package flightpath

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDeterministic(t *testing.T) {
	origin := cp.Vector{X: 120, Y: 40}
	a := New(origin, 80, 3000, 25)
	b := New(origin, 80, 3000, 25)

	for _, ms := range []float64{0, 16, 500, 1234.5, 60000} {
		require.Equal(t, a.Next(ms), b.Next(ms), "t=%v", ms)
		require.Equal(t, a.Next(ms), a.Next(ms), "repeat t=%v", ms)
	}
}

func TestNextStartsAtOrigin(t *testing.T) {
	p := New(cp.Vector{}, 80, 3000, 25)
	off := p.Next(0)
	assert.InDelta(t, 0, off.X, 1e-9)
	assert.InDelta(t, 0, off.Y, 1e-9)
}

func TestNextBoundedAndContinuous(t *testing.T) {
	p := New(cp.Vector{X: 10, Y: 10}, 60, 2500, 20)
	bound := p.Bound()

	prev := p.Next(0)
	for ms := 1.0; ms <= 20000; ms++ {
		cur := p.Next(ms)
		require.False(t, math.IsNaN(cur.X) || math.IsNaN(cur.Y))
		require.LessOrEqual(t, math.Abs(cur.X), bound.X+1e-9)
		require.LessOrEqual(t, math.Abs(cur.Y), bound.Y+1e-9)
		// one millisecond never moves more than a couple of pixels
		require.Less(t, cur.Sub(prev).Length(), 2.0, "jump at t=%v", ms)
		prev = cur
	}
}

func TestParametersChangeShape(t *testing.T) {
	a := New(cp.Vector{}, 80, 3000, 25)
	b := New(cp.Vector{}, 80, 3000, 26)
	assert.NotEqual(t, a.Next(1000), b.Next(1000))
}

func TestDegenerateInputs(t *testing.T) {
	p := New(cp.Vector{}, math.NaN(), 0, math.Inf(1))
	off := p.Next(math.Inf(1))
	assert.False(t, math.IsNaN(off.X) || math.IsInf(off.X, 0))
	assert.Equal(t, cp.Vector{}, (*Path)(nil).Next(10))
	assert.Equal(t, cp.Vector{X: 0, Y: 0}, p.Origin())
}
