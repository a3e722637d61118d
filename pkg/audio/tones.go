package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	// SampleRate is the rate every tone is rendered at
	SampleRate = beep.SampleRate(44100)

	toneAttack  = 10 * time.Millisecond
	toneRelease = 80 * time.Millisecond
	toneVolume  = 0.4
)

// colorNotes maps each color to a MIDI note number.
var colorNotes = map[types.Color]int{
	types.ColorRed:    69, // A4
	types.ColorBlue:   64, // E4
	types.ColorYellow: 73, // C#5
	types.ColorGreen:  76, // E5
}

// NoteFrequency converts a MIDI note number to Hz (A4 = 69 = 440 Hz).
func NoteFrequency(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// ColorNote returns the MIDI note played for c.
func ColorNote(c types.Color) (int, error) {
	note, ok := colorNotes[c]
	if !ok {
		return 0, fmt.Errorf("no note for color %d", c)
	}
	return note, nil
}

// NewTone renders the tone of c for duration.
func NewTone(c types.Color, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	note, err := ColorNote(c)
	if err != nil {
		return nil, err
	}
	sine, err := generators.SineTone(rate, NoteFrequency(note))
	if err != nil {
		return nil, fmt.Errorf("failed to create sine tone: %v", err)
	}
	shaped := newEnvelope(beep.Take(rate.N(duration), sine), duration, toneAttack, toneRelease, rate)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(toneVolume)}, nil
}

// envelope fades a stream in and out to avoid clicks.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Max(0, float64(remaining)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
