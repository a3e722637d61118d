package state

import (
	"context"
	"errors"

	gametypes "github.com/cbodonnell/simon/pkg/game/types"
)

// ErrNoSnapshot is returned by Get before the first game was published.
var ErrNoSnapshot = errors.New("no game snapshot")

// StateManager provides shared read access to the live game.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the latest game snapshot.
	Get(ctx context.Context) (*gametypes.Game, error)
	// Set replaces the latest game snapshot.
	Set(ctx context.Context, game *gametypes.Game) error
}
