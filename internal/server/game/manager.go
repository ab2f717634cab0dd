package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"xiangqi/internal/xiangqi"
)

var ErrNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := &GameState{
		ID:        id,
		Game:      xiangqi.NewGame(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.games[id] = g
	return g
}

// Add 托管一个已经构造好的对局（导入存档时用）
func (m *Manager) Add(g *xiangqi.Game) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	gs := &GameState{
		ID:        id,
		Game:      g,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.games[id] = gs
	return gs
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

func (m *Manager) Touch(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.games[id]; ok {
		g.UpdatedAt = time.Now()
	}
}
