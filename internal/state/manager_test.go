package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pigeonwatch/internal/model"
)

func TestNewManager_FreshState(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bot_state.json")

	m, err := NewManager(file, "2026-08-30")
	require.NoError(t, err)

	st := m.Snapshot()
	assert.Equal(t, 0, st.DayCount)
	assert.Equal(t, "2026-08-30", st.StartDate)
	assert.Empty(t, st.LastPostDate)
	assert.False(t, st.ReachedTarget)

	// File is written on first run.
	_, err = os.Stat(file)
	assert.NoError(t, err)
}

func TestManager_CommitPostRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bot_state.json")

	m, err := NewManager(file, "2026-08-01")
	require.NoError(t, err)

	require.NoError(t, m.CommitPost("2026-08-30", model.DailyUpdate{
		Kind:     model.UpdateBelowTarget,
		DayCount: 1,
	}))
	assert.True(t, m.PostedOn("2026-08-30"))
	assert.False(t, m.PostedOn("2026-08-31"))

	// A fresh manager sees the committed state; start date survives.
	m2, err := NewManager(file, "2026-08-31")
	require.NoError(t, err)
	st := m2.Snapshot()
	assert.Equal(t, 1, st.DayCount)
	assert.Equal(t, "2026-08-01", st.StartDate)
	assert.Equal(t, "2026-08-30", st.LastPostDate)
}

func TestManager_ReachedTargetIrreversible(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bot_state.json")

	m, err := NewManager(file, "2026-08-01")
	require.NoError(t, err)

	require.NoError(t, m.CommitPost("2026-08-30", model.DailyUpdate{
		Kind:          model.UpdateTargetReached,
		DayCount:      5,
		ReachedTarget: true,
	}))
	// A later update that doesn't set the flag must not clear it.
	require.NoError(t, m.CommitPost("2026-08-31", model.DailyUpdate{
		Kind:     model.UpdateBelowTarget,
		DayCount: 6,
	}))

	assert.True(t, m.Snapshot().ReachedTarget)
}

func TestLoad_MissingFileReturnsZeroState(t *testing.T) {
	st, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, &model.BotState{}, st)
}

func TestLoad_CorruptFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bot_state.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0644))

	_, err := Load(file)
	assert.Error(t, err)
}
