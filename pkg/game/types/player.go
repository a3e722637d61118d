package types

// Player is the person playing the current game.
type Player struct {
	// Name is the display name of the player
	Name string `json:"name"`
	// CurrentScore only grows during a game and restarts at 0 with a new one
	CurrentScore int `json:"currentScore"`
}

func NewPlayer(name string) *Player {
	return &Player{
		Name:         name,
		CurrentScore: 0,
	}
}

// AddPoints adds a non-negative award to the current score.
func (p *Player) AddPoints(points int) {
	if points < 0 {
		return
	}
	p.CurrentScore += points
}

func (p *Player) Copy() *Player {
	return &Player{
		Name:         p.Name,
		CurrentScore: p.CurrentScore,
	}
}
