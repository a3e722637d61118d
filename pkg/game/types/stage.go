package types

// Stage is the current level and the color sequence shown on it.
// The sequence always holds LevelNumber+1 colors and is only ever appended to.
type Stage struct {
	LevelNumber int     `json:"levelNumber"`
	sequence    []Color // unexported so callers cannot truncate or reorder it
}

// NewStage creates a level 1 stage from the initial colors.
func NewStage(initial ...Color) *Stage {
	sequence := make([]Color, len(initial))
	copy(sequence, initial)
	return &Stage{
		LevelNumber: len(initial) - 1,
		sequence:    sequence,
	}
}

// Extend appends one color and moves to the next level.
func (s *Stage) Extend(c Color) {
	s.sequence = append(s.sequence, c)
	s.LevelNumber++
}

// Len returns the length of the sequence.
func (s *Stage) Len() int {
	return len(s.sequence)
}

// At returns the color at index i. The caller checks bounds.
func (s *Stage) At(i int) Color {
	return s.sequence[i]
}

// Sequence returns a copy of the color sequence.
func (s *Stage) Sequence() []Color {
	sequence := make([]Color, len(s.sequence))
	copy(sequence, s.sequence)
	return sequence
}

func (s *Stage) Copy() *Stage {
	return &Stage{
		LevelNumber: s.LevelNumber,
		sequence:    s.Sequence(),
	}
}
