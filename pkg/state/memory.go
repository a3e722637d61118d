package state

import (
	"context"
	"fmt"
	"sync"

	gametypes "github.com/cbodonnell/simon/pkg/game/types"
)

type InMemoryStateManager struct {
	lock sync.RWMutex
	game *gametypes.Game
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*gametypes.Game, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.game == nil {
		return nil, ErrNoSnapshot
	}
	return m.game.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, game *gametypes.Game) error {
	if game == nil {
		return fmt.Errorf("game is nil")
	}

	copy := game.Copy()
	m.lock.Lock()
	defer m.lock.Unlock()
	m.game = copy
	return nil
}
