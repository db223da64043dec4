package input

import (
	"time"

	"github.com/vovakirdan/flip-frenzy/internal/core"
)

const (
	// DefaultHoldTimeout keeps a key down after its last press. Terminal
	// autorepeat refreshes it while the key is physically held.
	DefaultHoldTimeout = 150 * time.Millisecond

	// EdgeHoldTimeout covers the gap before autorepeat starts (about
	// 500ms on most terminals), so a long press of an edge-triggered
	// action never reads as release and press again.
	EdgeHoldTimeout = 600 * time.Millisecond
)

// edgeActions fire once per down-edge in the game.
var edgeActions = []core.Action{core.ActionConfirm, core.ActionPause}

// Held tracks the last press of every binding.
type Held struct {
	keymap    Keymap
	timeout   time.Duration
	timeouts  map[core.Action]time.Duration
	lastPress map[Binding]time.Time
}

// NewHeld creates a tracker. A zero timeout uses DefaultHoldTimeout.
// Confirm and pause are held for at least EdgeHoldTimeout.
func NewHeld(km Keymap, timeout time.Duration) *Held {
	if km == nil {
		km = DefaultKeymap()
	}
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	h := &Held{
		keymap:    km,
		timeout:   timeout,
		timeouts:  make(map[core.Action]time.Duration, len(edgeActions)),
		lastPress: make(map[Binding]time.Time),
	}
	for _, a := range edgeActions {
		h.timeouts[a] = max(timeout, EdgeHoldTimeout)
	}
	return h
}

// SetTimeout overrides the hold window of one action. Zero restores the
// tracker's default.
func (h *Held) SetTimeout(a core.Action, d time.Duration) {
	if d <= 0 {
		delete(h.timeouts, a)
		return
	}
	h.timeouts[a] = d
}

// Timeout returns the hold window of a.
func (h *Held) Timeout(a core.Action) time.Duration {
	if d, ok := h.timeouts[a]; ok {
		return d
	}
	return h.timeout
}

// Press records a press of key at now. It reports whether key is bound.
func (h *Held) Press(key string, now time.Time) bool {
	bindings := h.keymap.Lookup(key)
	for _, b := range bindings {
		h.lastPress[b] = now
	}
	return len(bindings) > 0
}

// Frame returns every binding pressed within its action's hold window
// before now. Expired presses are forgotten.
func (h *Held) Frame(now time.Time) core.MultiInputFrame {
	frame := core.NewMultiInputFrame()
	for b, at := range h.lastPress {
		if now.Sub(at) >= h.Timeout(b.Action) {
			delete(h.lastPress, b)
			continue
		}
		frame.Press(b.Player, b.Action)
	}
	return frame
}

// Reset releases every key.
func (h *Held) Reset() {
	clear(h.lastPress)
}
