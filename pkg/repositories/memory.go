package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/cbodonnell/simon/pkg/repositories/models"
)

// InMemoryRepository keeps the high score for the lifetime of the process.
type InMemoryRepository struct {
	lock      sync.RWMutex
	highScore *models.HighScore
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) SaveHighScore(ctx context.Context, score int) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.highScore = &models.HighScore{
		Score:     score,
		UpdatedAt: time.Now().UnixMilli(),
	}
	return nil
}

func (r *InMemoryRepository) LoadHighScore(ctx context.Context) (*models.HighScore, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if r.highScore == nil {
		return nil, &ErrNotFound{}
	}
	copy := *r.highScore
	return &copy, nil
}
