package scene

import (
	"testing"

	"github.com/milk9111/boneyard/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromPrefabs(t *testing.T) {
	s, err := Build(Options{Skeletons: 4, Seed: 42, Log: logger.Discard()})
	require.NoError(t, err)

	st := s.Stats()
	assert.Equal(t, 4, st.Skeletons)
	assert.True(t, st.GlobalLight)
	assert.Empty(t, st.Flying)
	assert.Equal(t, 100.0, st.PlayerHealth)

	w, h := s.Bounds()
	assert.Greater(t, w, 0.0)
	assert.Greater(t, h, 0.0)
}

func TestSceneRuns(t *testing.T) {
	s, err := Build(Options{Skeletons: 3, Seed: 9, Log: logger.Discard()})
	require.NoError(t, err)

	for i := 0; i < 600; i++ {
		s.Update()
		st := s.Stats()
		for _, id := range st.Flying {
			require.True(t, id >= 1 && id <= 3, "tick %d: flying id %d", i, id)
		}
		require.GreaterOrEqual(t, st.PlayerHealth, 0.0)
		require.LessOrEqual(t, st.Skeletons, 3)
	}
	st := s.Stats()
	assert.Equal(t, uint64(600), st.Frames)
	assert.InDelta(t, 10000, st.Now, 1e-6)

	total := 0
	for _, name := range st.StateNames() {
		total += st.States[name]
	}
	assert.Equal(t, st.Skeletons, total)
}
