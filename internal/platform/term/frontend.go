package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flip-frenzy/internal/core"
	"github.com/vovakirdan/flip-frenzy/internal/games/flipfrenzy"
	"github.com/vovakirdan/flip-frenzy/internal/platform/input"
	"github.com/vovakirdan/flip-frenzy/internal/registry"
	"github.com/vovakirdan/flip-frenzy/internal/storage"
)

// EventSink receives the events of every tick.
type EventSink interface {
	Handle(events []core.Event)
}

// Options are the collaborators of a run. Every field is optional.
type Options struct {
	Store  *storage.Store
	Sound  EventSink
	Logger *log.Logger
	Keymap input.Keymap
}

// Frontend drives one game on a tcell screen. All methods run on the loop
// goroutine.
type Frontend struct {
	screen    tcell.Screen
	game      registry.Game
	buf       *core.Screen
	readout   *Readout
	held      *input.Held
	opts      Options
	config    core.RuntimeConfig
	state     core.GameState
	lastMatch string
}

// New creates a frontend on an initialized screen and resets the game.
func New(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts Options) *Frontend {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Keymap == nil {
		opts.Keymap = input.DefaultKeymap()
	}

	w, h := screen.Size()
	f := &Frontend{
		screen:  screen,
		game:    game,
		buf:     core.NewScreen(w, max(h-1, 1)),
		readout: NewReadout(),
		held:    input.NewHeld(opts.Keymap, input.DefaultHoldTimeout),
		opts:    opts,
		config:  cfg,
	}

	if g, ok := game.(interface{ SetLogger(*log.Logger) }); ok {
		g.SetLogger(opts.Logger)
	}
	if g, ok := game.(interface {
		SetHighScoreStore(flipfrenzy.HighScoreStore)
	}); ok && opts.Store != nil {
		g.SetHighScoreStore(storage.NewHighScoreKeeper(opts.Store, game.ID()))
	}
	if g, ok := game.(interface{ SetReadout(flipfrenzy.Readout) }); ok {
		g.SetReadout(f.readout)
	}

	game.Reset(cfg)
	return f
}

// HandleEvent processes one tcell event. It reports whether to quit.
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.HandleKey(KeyName(ev.Key(), ev.Rune()), now)
	case *tcell.EventResize:
		w, h := ev.Size()
		f.buf.Resize(w, max(h-1, 1))
		f.screen.Sync()
	}
	return false
}

// HandleKey records a press of the named key. It reports whether to quit.
func (f *Frontend) HandleKey(name string, now time.Time) bool {
	if input.IsQuit(name) {
		return true
	}
	f.held.Press(name, now)
	return false
}

// Tick advances the game one step with the keys held at now.
func (f *Frontend) Tick(now time.Time) {
	result := f.game.Step(f.held.Frame(now))
	wasOver := f.state.GameOver
	f.state = result.State

	if f.opts.Sound != nil {
		f.opts.Sound.Handle(result.Events)
	}
	if f.state.GameOver && !wasOver {
		f.saveMatch()
	}
}

func (f *Frontend) saveMatch() {
	if f.opts.Store == nil || f.state.Score <= 0 {
		return
	}
	g, ok := f.game.(interface {
		PlayerScores() map[core.PlayerID]int
	})
	if !ok {
		return
	}
	id, err := f.opts.Store.SaveMatch(storage.MatchResult{
		GameID: f.game.ID(),
		Level:  f.state.Level,
		Scores: g.PlayerScores(),
	})
	if err != nil {
		f.opts.Logger.Warn("save match", "game", f.game.ID(), "err", err)
		return
	}
	f.lastMatch = id
	f.opts.Logger.Info("match saved", "game", f.game.ID(), "match", id, "score", f.state.Score)
}

// Draw renders the readout and the playfield and shows the frame.
func (f *Frontend) Draw() {
	w, _ := f.screen.Size()
	f.game.Render(f.buf)

	f.readout.draw(f.screen, w)
	for y := range f.buf.Height() {
		for x := range f.buf.Width() {
			cell := f.buf.GetCell(x, y)
			f.screen.SetContent(x, y+1, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	f.screen.Show()
}

// State returns the game state after the last tick.
func (f *Frontend) State() core.GameState {
	return f.state
}

// Loop ticks at the configured rate until ctx ends or the player quits.
// Events are read on their own goroutine and handed to the loop.
func (f *Frontend) Loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(f.config.TickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || f.HandleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			f.Tick(now)
			f.Draw()
		}
	}
}

// Run opens the terminal, plays game until the player quits, and restores
// the terminal.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	New(screen, game, cfg, opts).Loop(ctx)
	return nil
}
