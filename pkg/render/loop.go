package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-shooter/pkg/engine"
	"github.com/opd-ai/go-shooter/pkg/physics"
)

// Terminal loop defaults
const (
	DefaultFPS        = 60
	DefaultHoldWindow = 500 * time.Millisecond
)

// TerminalOptions configures RunTerminal
type TerminalOptions struct {
	// FPS is the frame rate of the loop
	FPS int
	// HoldWindow is how long a key counts as held after its last press or
	// repeat. Terminals never report key releases, and it must cover the
	// gap between the first press and the first auto-repeat (usually
	// 250ms to 500ms) or a held key stutters.
	HoldWindow time.Duration
}

func (o TerminalOptions) withDefaults() TerminalOptions {
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	if o.HoldWindow <= 0 {
		o.HoldWindow = DefaultHoldWindow
	}
	return o
}

// KeyState turns terminal key presses into held cursor keys. It implements
// engine.InputSource.
type KeyState struct {
	hold time.Duration
	seen map[physics.Direction]time.Time
	now  time.Time
}

// NewKeyState creates a key state with the given hold window
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold: hold,
		seen: make(map[physics.Direction]time.Time),
	}
}

// Press records a press or repeat of dir at t
func (k *KeyState) Press(dir physics.Direction, t time.Time) {
	k.seen[dir] = t
}

// Advance sets the time Cursors is evaluated at
func (k *KeyState) Advance(t time.Time) {
	k.now = t
}

// Cursors returns the directions pressed within the hold window
func (k *KeyState) Cursors() engine.InputState {
	return engine.InputState{
		Left:  k.held(physics.Left),
		Right: k.held(physics.Right),
		Up:    k.held(physics.Up),
		Down:  k.held(physics.Down),
	}
}

func (k *KeyState) held(dir physics.Direction) bool {
	t, ok := k.seen[dir]
	return ok && k.now.Sub(t) <= k.hold
}

// cursorDirection maps the tcell arrow keys to directions
func cursorDirection(key tcell.Key) (physics.Direction, bool) {
	switch key {
	case tcell.KeyLeft:
		return physics.Left, true
	case tcell.KeyRight:
		return physics.Right, true
	case tcell.KeyUp:
		return physics.Up, true
	case tcell.KeyDown:
		return physics.Down, true
	}
	return 0, false
}

// handleEvent applies one terminal event and reports whether the loop
// should quit
func handleEvent(screen tcell.Screen, keys *KeyState, ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
		if dir, ok := cursorDirection(ev.Key()); ok {
			keys.Press(dir, now)
		}

	case *tcell.EventResize:
		screen.Sync()
	}

	return false
}

// RunTerminal runs the game on an initialized tcell screen until the player
// quits or ctx is cancelled. The caller owns the screen and finalizes it.
func RunTerminal(ctx context.Context, game *engine.Game, screen tcell.Screen, opts TerminalOptions) error {
	opts = opts.withDefaults()

	width, height := float64(game.Config.Window.Width), float64(game.Config.Window.Height)
	renderer := NewTerminalRenderer(screen, width, height)
	keys := NewKeyState(opts.HoldWindow)

	game.Start(ctx, 0, 0)
	defer game.Stop()
	game.Render(renderer)

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(opts.FPS))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if handleEvent(screen, keys, ev, time.Now()) {
				return nil
			}

		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now

			keys.Advance(now)
			game.Poll(float64(delta)/float64(time.Millisecond), keys)
			game.Render(renderer)
		}
	}
}
