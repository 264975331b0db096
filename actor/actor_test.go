package actor

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

type testConfig struct{ Speed float64 }
type testRuntime struct{ Ticks int }
type testFlags struct{ Dead bool }

func TestActorDamageFloorsAtZero(t *testing.T) {
	a := New[testConfig, testRuntime, testFlags](testConfig{Speed: 2}, 10, cp.Vector{X: 1})
	assert.Equal(t, 10.0, a.Health)
	assert.Equal(t, 6.0, a.Damage(4))
	assert.InDelta(t, 0.6, a.HealthFraction(), 1e-12)
	assert.Equal(t, 0.0, a.Damage(100))
	assert.Equal(t, 0.0, a.HealthFraction())
	assert.Equal(t, 2.0, a.Config.Speed)
}

func TestActorDamageCapsAtMaxHealth(t *testing.T) {
	a := New[testConfig, testRuntime, testFlags](testConfig{}, 100, cp.Vector{})
	a.Damage(30)
	assert.Equal(t, 100.0, a.Damage(-50))
	assert.Equal(t, 1.0, a.HealthFraction())
}

func TestActorFacing(t *testing.T) {
	a := New[testConfig, testRuntime, testFlags](testConfig{}, 0, cp.Vector{})
	assert.Equal(t, 1.0, a.MaxHealth)
	assert.Equal(t, 1, a.Direction)

	a.Face(-3)
	assert.Equal(t, -1, a.Direction)
	a.Face(0)
	assert.Equal(t, -1, a.Direction)
	a.Flip()
	assert.Equal(t, 1, a.Direction)
}
