package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/cbodonnell/simon/pkg/game/types"
)

// ColorSource produces the colors appended to a sequence.
type ColorSource interface {
	Next() types.Color
}

// RandomColorSource draws colors uniformly from the palette.
type RandomColorSource struct {
	lock sync.Mutex
	rng  *rand.Rand
}

func NewRandomColorSource(seed int64) *RandomColorSource {
	return &RandomColorSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewTimeSeededColorSource seeds the source from the wall clock.
func NewTimeSeededColorSource() *RandomColorSource {
	return NewRandomColorSource(time.Now().UnixNano())
}

func (s *RandomColorSource) Next() types.Color {
	s.lock.Lock()
	defer s.lock.Unlock()
	return types.Palette[s.rng.Intn(len(types.Palette))]
}

// CycleColorSource returns the given colors in a repeating order.
type CycleColorSource struct {
	colors []types.Color
	next   int
}

func NewCycleColorSource(colors ...types.Color) *CycleColorSource {
	if len(colors) == 0 {
		colors = types.Palette[:]
	}
	return &CycleColorSource{
		colors: colors,
	}
}

func (s *CycleColorSource) Next() types.Color {
	c := s.colors[s.next]
	s.next = (s.next + 1) % len(s.colors)
	return c
}
