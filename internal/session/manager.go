// Package session keeps the games played through the server in memory.
package session

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/engine"
	"github.com/lgbarn/fenboard/internal/errors"
)

// Manager is a registry of games keyed by UUID.
type Manager struct {
	startFEN string
	log      zerolog.Logger

	mu    sync.RWMutex
	games map[string]*Game
}

// NewManager creates a manager whose games start from startFEN, or from
// the standard initial position when startFEN is empty.
func NewManager(startFEN string, log zerolog.Logger) *Manager {
	return &Manager{
		startFEN: startFEN,
		log:      log,
		games:    make(map[string]*Game),
	}
}

// Create starts a new game from fen, or from the start position when fen is
// empty.
func (m *Manager) Create(fen string) (*Game, error) {
	pos, err := m.decode(fen)
	if err != nil {
		return nil, err
	}

	g := newGame(uuid.New().String(), pos)

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()

	m.log.Info().Str("game", g.ID).Str("fen", g.history[0]).Msg("game created")
	return g, nil
}

func (m *Manager) decode(fen string) (*chess.Position, error) {
	if fen == "" {
		fen = m.startFEN
	}
	if fen == "" {
		return engine.NewInitialPosition(), nil
	}
	return engine.NewPositionFromFEN(fen)
}

// Get returns the game with the given ID.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	return g, nil
}

// Delete removes a game and closes its subscriber channels.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	g, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	g.close()
	m.log.Info().Str("game", id).Msg("game deleted")
	return nil
}

// List returns the IDs of all games in sorted order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
