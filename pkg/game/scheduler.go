package game

import (
	"time"

	"github.com/cbodonnell/simon/pkg/game/types"
)

// PlaybackHandler receives the events of one playback run.
// Every event carries the generation the run was started with.
type PlaybackHandler interface {
	Highlight(generation uint64, index int, color types.Color)
	PlaybackComplete(generation uint64)
}

// SequenceScheduler plays one sequence back. It never blocks: the owner
// calls Tick with the current time and due events are emitted in order.
// Element i is highlighted at Start + (i+1)*Delay and stays lit for
// FlashDuration. Playback completes when the last flash ends.
type SequenceScheduler struct {
	generation    uint64
	sequence      []types.Color
	delay         time.Duration
	flashDuration time.Duration
	start         time.Time

	next      int
	flash     types.FlashState
	cancelled bool
	done      bool
}

type NewSequenceSchedulerOptions struct {
	Generation uint64
	Sequence   []types.Color
	// Delay is buffered here so a later difficulty change does not touch this run
	Delay         time.Duration
	FlashDuration time.Duration
	Start         time.Time
}

func NewSequenceScheduler(opts NewSequenceSchedulerOptions) *SequenceScheduler {
	sequence := make([]types.Color, len(opts.Sequence))
	copy(sequence, opts.Sequence)
	return &SequenceScheduler{
		generation:    opts.Generation,
		sequence:      sequence,
		delay:         opts.Delay,
		flashDuration: opts.FlashDuration,
		start:         opts.Start,
		flash:         types.FlashIdle,
	}
}

// Tick emits every event due at now. Late ticks catch up in sequence order.
func (s *SequenceScheduler) Tick(now time.Time, handler PlaybackHandler) {
	if s.cancelled || s.done {
		return
	}

	for s.next < len(s.sequence) && !now.Before(s.highlightAt(s.next)) {
		handler.Highlight(s.generation, s.next, s.sequence[s.next])
		s.next++
		if s.cancelled {
			return
		}
	}

	s.flash = types.FlashIdle
	if s.next > 0 {
		last := s.next - 1
		if now.Before(s.highlightAt(last).Add(s.flashDuration)) {
			s.flash = types.Flashing(last)
		}
	}

	if s.next == len(s.sequence) && !now.Before(s.completeAt()) {
		s.done = true
		s.flash = types.FlashIdle
		handler.PlaybackComplete(s.generation)
	}
}

// Cancel stops the run. No further events are emitted.
func (s *SequenceScheduler) Cancel() {
	s.cancelled = true
	s.flash = types.FlashIdle
}

// Flash returns which sequence element is lit as of the last tick.
func (s *SequenceScheduler) Flash() types.FlashState {
	return s.flash
}

// Done reports whether playbackComplete was emitted.
func (s *SequenceScheduler) Done() bool {
	return s.done
}

func (s *SequenceScheduler) Cancelled() bool {
	return s.cancelled
}

func (s *SequenceScheduler) Generation() uint64 {
	return s.generation
}

func (s *SequenceScheduler) highlightAt(i int) time.Time {
	return s.start.Add(time.Duration(i+1) * s.delay)
}

func (s *SequenceScheduler) completeAt() time.Time {
	if len(s.sequence) == 0 {
		return s.start
	}
	return s.highlightAt(len(s.sequence) - 1).Add(s.flashDuration)
}
