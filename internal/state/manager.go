package state

import (
	"sync"

	"github.com/rs/zerolog/log"

	"pigeonwatch/internal/model"
)

// Manager guards the persisted bot state. The cron goroutine and the
// Telegram command handler both read it, so access goes through a mutex.
type Manager struct {
	mu       sync.Mutex
	state    *model.BotState
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk.
// startDate is recorded once, on the very first run.
func NewManager(filePath, startDate string) (*Manager, error) {
	st, err := Load(filePath)
	if err != nil {
		return nil, err
	}

	if st.StartDate == "" {
		st.StartDate = startDate
	}

	m := &Manager{state: st, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// Snapshot returns a copy of the current bot state.
func (m *Manager) Snapshot() model.BotState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.state
}

// PostedOn reports whether a post was already made on the given date.
func (m *Manager) PostedOn(date string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.PostedOn(date)
}

// CommitPost applies a daily update after a successful post and marks the
// date as posted. The reached_target flag never transitions back to false.
func (m *Manager) CommitPost(date string, u model.DailyUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.DayCount = u.DayCount
	if u.ReachedTarget {
		m.state.ReachedTarget = true
	}
	m.state.LastPostDate = date

	if err := m.save(); err != nil {
		log.Error().Err(err).Str("file", m.filePath).Msg("failed to save bot state")
		return err
	}
	return nil
}

func (m *Manager) save() error {
	return Save(m.filePath, m.state)
}
