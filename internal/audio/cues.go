package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flip-frenzy/internal/core"
)

// note is one tone of a cue. Notes of a cue play back to back.
type note struct {
	freq    float64
	dur     time.Duration
	wave    WaveType
	attack  time.Duration
	release time.Duration
}

// cue is the sound for one event kind.
type cue struct {
	notes  []note
	volume float64
}

func blip(freq float64, dur time.Duration, wave WaveType) note {
	return note{freq: freq, dur: dur, wave: wave, attack: 3 * time.Millisecond, release: dur / 2}
}

var cues = map[core.EventKind]cue{
	core.EventJump: {
		notes:  []note{blip(440, 40*time.Millisecond, WaveSine)},
		volume: 0.25,
	},
	core.EventFlip: {
		notes: []note{
			blip(660, 50*time.Millisecond, WaveSquare),
			blip(880, 70*time.Millisecond, WaveSquare),
		},
		volume: 0.35,
	},
	core.EventDamage: {
		notes:  []note{blip(220, 80*time.Millisecond, WaveSaw)},
		volume: 0.4,
	},
	// B5 then E6
	core.EventKill: {
		notes: []note{
			blip(987.77, 80*time.Millisecond, WaveSquare),
			{freq: 1318.51, dur: 280 * time.Millisecond, wave: WaveSquare, attack: 5 * time.Millisecond, release: 200 * time.Millisecond},
		},
		volume: 0.35,
	},
	core.EventDeath: {
		notes: []note{
			blip(330, 100*time.Millisecond, WaveSaw),
			blip(247, 100*time.Millisecond, WaveSaw),
			blip(165, 200*time.Millisecond, WaveSaw),
		},
		volume: 0.45,
	},
	core.EventExplosion: {
		notes:  []note{{freq: 0, dur: 300 * time.Millisecond, wave: WaveNoise, attack: 5 * time.Millisecond, release: 250 * time.Millisecond}},
		volume: 0.5,
	},
	core.EventFreeze: {
		notes: []note{
			{freq: 1760, dur: 400 * time.Millisecond, wave: WaveSine, attack: 5 * time.Millisecond, release: 350 * time.Millisecond},
		},
		volume: 0.3,
	},
	core.EventExtraLife: {
		notes: []note{
			blip(523.25, 60*time.Millisecond, WaveSquare),
			blip(659.25, 60*time.Millisecond, WaveSquare),
			blip(783.99, 60*time.Millisecond, WaveSquare),
			blip(1046.5, 160*time.Millisecond, WaveSquare),
		},
		volume: 0.35,
	},
	core.EventLevelClear: {
		notes: []note{
			blip(523.25, 90*time.Millisecond, WaveSine),
			blip(783.99, 90*time.Millisecond, WaveSine),
			blip(1046.5, 300*time.Millisecond, WaveSine),
		},
		volume: 0.4,
	},
	core.EventGameOver: {
		notes: []note{
			blip(392, 250*time.Millisecond, WaveSquare),
			blip(311.13, 250*time.Millisecond, WaveSquare),
			blip(261.63, 500*time.Millisecond, WaveSquare),
		},
		volume: 0.35,
	},
}

// duration is the total length of the cue.
func (c cue) duration() time.Duration {
	var d time.Duration
	for _, n := range c.notes {
		d += n.dur
	}
	return d
}

// streamer builds a fresh one-shot stream for the cue.
func (c cue) streamer(rate beep.SampleRate, master float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(c.notes))
	for _, n := range c.notes {
		osc := NewOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.dur, n.attack, n.release, rate))
	}
	return newVolume(beep.Seq(parts...), c.volume*master)
}

// CueFor returns the stream for an event kind, or nil when it has no sound.
func CueFor(kind core.EventKind, rate beep.SampleRate, master float64) beep.Streamer {
	c, ok := cues[kind]
	if !ok {
		return nil
	}
	return c.streamer(rate, master)
}

// distinctKinds returns each event kind once, in first-seen order. A block
// explosion that flips ten enemies plays one cue, not ten.
func distinctKinds(events []core.Event) []core.EventKind {
	var kinds []core.EventKind
	seen := make(map[core.EventKind]bool, len(events))
	for _, ev := range events {
		if seen[ev.Kind] {
			continue
		}
		seen[ev.Kind] = true
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}
