package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -3, 0, 1, 0},
		{"above", 7, 0, 1, 1},
		{"on_edge", 1, 0, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Clamp(c.v, c.lo, c.hi))
		})
	}
}

func TestClampLow(t *testing.T) {
	assert.Equal(t, 0.0, ClampLow(-5, 0))
	assert.Equal(t, 3.0, ClampLow(3, 0))
}

func TestNormalizeRoundTrip(t *testing.T) {
	ranges := [][2]float64{{0, 1}, {-10, 10}, {250, 750}, {3, -3}}
	for _, r := range ranges {
		for i := 0; i <= 20; i++ {
			x := float64(i) / 20
			got := Normalize(Denormalize(x, r[0], r[1]), r[0], r[1])
			assert.InDelta(t, x, got, 1e-12, "range %v x=%v", r, x)
		}
	}
}

func TestNormalizeDegenerateRange(t *testing.T) {
	assert.Equal(t, 0.0, Normalize(5, 2, 2))
}

func TestSignAndLerp(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.01))
	assert.Equal(t, -1.0, Sign(-4))
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
}
