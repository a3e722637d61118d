package objects

import "github.com/hajimehoshi/ebiten/v2"

// Lifecycle is driven by the scene that owns the object tree.
type Lifecycle interface {
	Init() error
	Destroy() error
	// Update runs once per ebiten tick, after the session was updated
	Update() error
	Draw(screen *ebiten.Image)
}
