package audio

import (
	"sync"
	"time"

	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// TonePlayer plays the tone of a color on the system speaker.
type TonePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	duration    time.Duration
	muted       bool
	initialized bool
	openSpeaker func(mixer *beep.Mixer) error
}

type NewTonePlayerOptions struct {
	// Duration of each tone
	Duration time.Duration
	Muted    bool
	// OpenSpeaker starts playing mixer on an output device. Defaults to the system speaker.
	OpenSpeaker func(mixer *beep.Mixer) error
}

func NewTonePlayer(opts NewTonePlayerOptions) *TonePlayer {
	p := &TonePlayer{
		mixer:       &beep.Mixer{},
		duration:    opts.Duration,
		muted:       opts.Muted,
		openSpeaker: opts.OpenSpeaker,
	}
	if p.openSpeaker == nil {
		p.openSpeaker = openSystemSpeaker
	}
	return p
}

func openSystemSpeaker(mixer *beep.Mixer) error {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

// Init opens the speaker. On failure the player stays silent and the game
// runs without sound. A muted player opens it on the first unmute instead.
func (p *TonePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.init()
}

func (p *TonePlayer) init() error {
	if p.initialized {
		return nil
	}
	if err := p.openSpeaker(p.mixer); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Initialized reports whether the speaker is open.
func (p *TonePlayer) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play starts the tone of c. It returns immediately.
func (p *TonePlayer) Play(c types.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	tone, err := NewTone(c, p.duration, SampleRate)
	if err != nil {
		log.Warn("Failed to create tone for %s: %v", c, err)
		return
	}
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

func (p *TonePlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setMuted(muted)
}

func (p *TonePlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// ToggleMuted flips the mute switch and returns the new state.
func (p *TonePlayer) ToggleMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setMuted(!p.muted)
	return p.muted
}

func (p *TonePlayer) setMuted(muted bool) {
	p.muted = muted
	if muted {
		return
	}
	if err := p.init(); err != nil {
		log.Warn("Failed to open speaker, playing without sound: %v", err)
	}
}

// Close silences anything still playing.
func (p *TonePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
