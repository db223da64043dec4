package core

// EventKind classifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventFlip EventKind = iota
	EventDamage
	EventKill
	EventDeath
	EventExplosion
	EventFreeze
	EventExtraLife
	EventLevelClear
	EventGameOver
	EventJump
)

func (k EventKind) String() string {
	switch k {
	case EventFlip:
		return "flip"
	case EventDamage:
		return "damage"
	case EventKill:
		return "kill"
	case EventDeath:
		return "death"
	case EventExplosion:
		return "explosion"
	case EventFreeze:
		return "freeze"
	case EventExtraLife:
		return "extra_life"
	case EventLevelClear:
		return "level_clear"
	case EventGameOver:
		return "game_over"
	case EventJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step for sound and UI side effects.
// Player is zero when the event is not tied to one player.
type Event struct {
	Kind   EventKind
	Player PlayerID
	X, Y   float64
	Points int
}
