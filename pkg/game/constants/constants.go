package constants

import "time"

const (
	// PaletteSize is the number of distinct signal colors
	PaletteSize int = 4
	// InitialLevel is the level number of a new game
	InitialLevel int = 1
	// InitialSequenceLength is the number of colors shown on the first level
	InitialSequenceLength int = 2
	// PointsPerHit is the award for each correctly repeated color
	PointsPerHit int = 1

	// EasyStepDelay is the playback interval between colors on easy
	EasyStepDelay time.Duration = 2000 * time.Millisecond
	// MediumStepDelay is the playback interval between colors on medium
	MediumStepDelay time.Duration = 1500 * time.Millisecond
	// HardStepDelay is the playback interval between colors on hard
	HardStepDelay time.Duration = 1000 * time.Millisecond

	// FlashDuration is how long a highlighted button stays lit
	FlashDuration time.Duration = 500 * time.Millisecond

	// SessionLoopInterval is the default tick of the session loop (~60 ticks per second)
	SessionLoopInterval time.Duration = 16 * time.Millisecond
	// CommandQueueSize is the capacity of the session command queue
	CommandQueueSize int = 1024
	// SaveHighScoreChannelSize is the capacity of the background save channel
	SaveHighScoreChannelSize int = 100
)
