package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteFrequency(t *testing.T) {
	tests := []struct {
		note int
		want float64
	}{
		{note: 69, want: 440},
		{note: 81, want: 880},
		{note: 57, want: 220},
		{note: 64, want: 329.63},
		{note: 76, want: 659.26},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NoteFrequency(tt.note), 0.01, "note %d", tt.note)
	}
}

func TestColorNote(t *testing.T) {
	seen := map[int]bool{}
	for _, c := range types.Palette {
		note, err := ColorNote(c)
		require.NoError(t, err)
		assert.False(t, seen[note], "%s shares a note", c)
		seen[note] = true
	}

	_, err := ColorNote(types.Color(9))
	assert.Error(t, err)
}

func TestNewTone(t *testing.T) {
	duration := 100 * time.Millisecond
	tone, err := NewTone(types.ColorYellow, duration, SampleRate)
	require.NoError(t, err)

	total := 0
	samples := make([][2]float64, 512)
	for {
		n, ok := tone.Stream(samples)
		for i := 0; i < n; i++ {
			require.LessOrEqual(t, samples[i][0], 1.0)
			require.GreaterOrEqual(t, samples[i][0], -1.0)
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, SampleRate.N(duration), total)
	assert.NoError(t, tone.Err())
}

type recordingPlayer struct {
	played []types.Color
}

func (p *recordingPlayer) Play(c types.Color) {
	p.played = append(p.played, c)
}

func TestToneDisplay(t *testing.T) {
	player := &recordingPlayer{}
	display := NewToneDisplay(player)

	display.OnFlash(0, types.ColorRed)
	display.OnInputEnabled()
	display.OnFlash(1, types.ColorGreen)
	display.OnGameOver(2, true)

	assert.Equal(t, []types.Color{types.ColorRed, types.ColorGreen}, player.played)
}

func TestTonePlayer_UninitializedIsSilent(t *testing.T) {
	player := NewTonePlayer(NewTonePlayerOptions{
		Duration: 50 * time.Millisecond,
		OpenSpeaker: func(*beep.Mixer) error {
			return errors.New("no audio device")
		},
	})
	player.Play(types.ColorBlue)
	assert.Equal(t, 0, player.mixer.Len())
	player.Close()

	assert.False(t, player.Muted())
	assert.True(t, player.ToggleMuted())
	player.SetMuted(false)
	assert.False(t, player.Muted())
	assert.False(t, player.Initialized())

	player.Play(types.ColorBlue)
	assert.Equal(t, 0, player.mixer.Len())
}

func TestTonePlayer_UnmuteOpensSpeaker(t *testing.T) {
	tests := []struct {
		name   string
		unmute func(p *TonePlayer)
	}{
		{name: "toggle", unmute: func(p *TonePlayer) { p.ToggleMuted() }},
		{name: "set", unmute: func(p *TonePlayer) { p.SetMuted(false) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opened := 0
			player := NewTonePlayer(NewTonePlayerOptions{
				Duration: 50 * time.Millisecond,
				Muted:    true,
				OpenSpeaker: func(*beep.Mixer) error {
					opened++
					return nil
				},
			})

			player.Play(types.ColorRed)
			assert.Equal(t, 0, opened, "a muted player leaves the speaker closed")
			assert.Equal(t, 0, player.mixer.Len())

			tt.unmute(player)
			assert.Equal(t, 1, opened)
			assert.True(t, player.Initialized())
			assert.False(t, player.Muted())

			player.Play(types.ColorRed)
			assert.Equal(t, 1, player.mixer.Len())

			player.SetMuted(true)
			player.SetMuted(false)
			assert.Equal(t, 1, opened, "the speaker is opened once")
		})
	}
}
