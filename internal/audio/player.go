package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flip-frenzy/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes event cues into the speaker. A Player that was never
// initialized is silent, so callers need no separate "sound off" path.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a silent player. volume is clamped to [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Init opens the speaker. Failure leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Handle queues one cue per distinct event kind of a tick.
func (p *Player) Handle(events []core.Event) {
	if len(events) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.volume <= 0 {
		return
	}
	var queued []beep.Streamer
	for _, kind := range distinctKinds(events) {
		if s := CueFor(kind, sampleRate, p.volume); s != nil {
			queued = append(queued, s)
		}
	}
	if len(queued) == 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(queued...)
	speaker.Unlock()
}

// Close silences all pending cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
