// Package engine provides unit tests for game.go
package engine

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/opd-ai/go-shooter/pkg/config"
	"github.com/opd-ai/go-shooter/pkg/entity"
	"github.com/opd-ai/go-shooter/pkg/event"
	"github.com/opd-ai/go-shooter/pkg/logging"
	"github.com/opd-ai/go-shooter/pkg/physics"
)

func newTestGame(t *testing.T) (*Game, *event.Bus) {
	t.Helper()
	bus := event.NewEventBus()
	game := NewGame(config.DefaultConfig(), bus, logging.NewLoggerWithWriter(io.Discard))
	return game, bus
}

// recordingRenderer captures render calls in order
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) RenderBackground(b *entity.Background) { r.calls = append(r.calls, "background") }
func (r *recordingRenderer) RenderShip(s *entity.Ship)             { r.calls = append(r.calls, "ship") }
func (r *recordingRenderer) Clear()                                { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) Present()                              { r.calls = append(r.calls, "present") }

// staticInput is an InputSource returning a fixed state
type staticInput InputState

func (s staticInput) Cursors() InputState { return InputState(s) }

func TestNewGame_DerivesSpeedOnce(t *testing.T) {
	game, _ := newTestGame(t)

	if game.Controller.Speed() != 0.5 {
		t.Errorf("expected speed 0.5 px/ms, got %v", game.Controller.Speed())
	}
	if game.Status != GameStatusWaiting {
		t.Errorf("expected waiting status, got %v", game.Status)
	}
	if game.Ship != nil {
		t.Error("ship should not exist before Start")
	}
}

func TestGame_Start_PlacesShip(t *testing.T) {
	game, bus := newTestGame(t)
	var created []string
	bus.Subscribe(event.SceneCreated, func(e event.Event) {
		created = append(created, e.(*event.SceneEvent).Scene)
	})

	game.Start(context.Background(), 64, 48)

	if game.Status != GameStatusActive {
		t.Errorf("expected active status, got %v", game.Status)
	}
	if game.Ship == nil || game.Background == nil {
		t.Fatal("Start did not create the scene entities")
	}
	if game.Ship.Position.X != 256 || math.Abs(game.Ship.Position.Y-460.8) > 1e-9 {
		t.Errorf("expected ship at (256,460.8), got %v", game.Ship.Position)
	}
	if game.Ship.Width != 64 || game.Ship.Height != 48 {
		t.Errorf("expected ship size 64x48, got %vx%v", game.Ship.Width, game.Ship.Height)
	}
	if game.Background.Width != 512 || game.Background.Height != 512 {
		t.Errorf("expected background to cover 512x512, got %vx%v", game.Background.Width, game.Background.Height)
	}
	if len(created) != 1 || created[0] != SceneName {
		t.Errorf("expected one SceneCreated event for %q, got %v", SceneName, created)
	}
}

func TestGame_Start_FallbackSize(t *testing.T) {
	game, _ := newTestGame(t)

	game.Start(context.Background(), 0, 0)

	if game.Ship.Width != 64 || game.Ship.Height != 64 {
		t.Errorf("expected fallback size 64x64, got %vx%v", game.Ship.Width, game.Ship.Height)
	}
}

func TestGame_Update_NoKeysHeld(t *testing.T) {
	game, bus := newTestGame(t)
	game.Start(context.Background(), 64, 64)
	start := game.Ship.Position

	moved := 0
	bus.Subscribe(event.ShipMoved, func(e event.Event) { moved++ })

	game.Update(16, InputState{})

	if game.Ship.Position != start {
		t.Errorf("expected position %v unchanged, got %v", start, game.Ship.Position)
	}
	if moved != 0 {
		t.Errorf("expected no ShipMoved events, got %d", moved)
	}
	if game.CurrentTick != 1 {
		t.Errorf("expected tick 1, got %d", game.CurrentTick)
	}
}

func TestGame_Update_TableDriven(t *testing.T) {
	tests := []struct {
		name     string
		input    InputState
		deltaMs  float64
		expected physics.Vector2D
	}{
		{"right", InputState{Right: true}, 100, physics.Vector2D{X: 306, Y: 256}},
		{"left", InputState{Left: true}, 100, physics.Vector2D{X: 206, Y: 256}},
		{"up_left_diagonal", InputState{Up: true, Left: true}, 20, physics.Vector2D{X: 246, Y: 246}},
		{"opposite_keys_cancel", InputState{Left: true, Right: true}, 40, physics.Vector2D{X: 256, Y: 256}},
		{"all_keys", InputState{Left: true, Right: true, Up: true, Down: true}, 40, physics.Vector2D{X: 256, Y: 256}},
		{"negative_delta_treated_as_zero", InputState{Down: true}, -50, physics.Vector2D{X: 256, Y: 256}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, _ := newTestGame(t)
			game.Start(context.Background(), 64, 64)
			game.Ship.Position = physics.Vector2D{X: 256, Y: 256}

			game.Update(tt.deltaMs, tt.input)

			if !nearlyEqual(game.Ship.Position, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, game.Ship.Position)
			}
		})
	}
}

func TestGame_Update_DiagonalClampsPerAxis(t *testing.T) {
	game, bus := newTestGame(t)
	game.Start(context.Background(), 64, 64)
	game.Ship.Position = physics.Vector2D{X: 40, Y: 256}

	var boundary []physics.Direction
	bus.Subscribe(event.BoundaryReached, func(e event.Event) {
		boundary = append(boundary, e.(*event.ShipEvent).Direction)
	})

	game.Update(100, InputState{Left: true, Down: true})

	expected := physics.Vector2D{X: 32, Y: 306}
	if game.Ship.Position != expected {
		t.Errorf("expected %v, got %v", expected, game.Ship.Position)
	}
	if len(boundary) != 1 || boundary[0] != physics.Left {
		t.Errorf("expected a single boundary event for left, got %v", boundary)
	}
}

func TestGame_Update_PublishesBoundaryReached(t *testing.T) {
	tests := []struct {
		name     string
		input    InputState
		expected physics.Direction
		to       physics.Vector2D
	}{
		{"left", InputState{Left: true}, physics.Left, physics.Vector2D{X: 32, Y: 256}},
		{"right", InputState{Right: true}, physics.Right, physics.Vector2D{X: 480, Y: 256}},
		{"up", InputState{Up: true}, physics.Up, physics.Vector2D{X: 256, Y: 32}},
		{"down", InputState{Down: true}, physics.Down, physics.Vector2D{X: 256, Y: 480}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, bus := newTestGame(t)
			game.Start(context.Background(), 64, 64)
			game.Ship.Position = physics.Vector2D{X: 256, Y: 256}

			var events []*event.ShipEvent
			bus.Subscribe(event.BoundaryReached, func(e event.Event) {
				events = append(events, e.(*event.ShipEvent))
			})

			// 100ms moves 50px and stays inside
			game.Update(100, tt.input)
			if len(events) != 0 {
				t.Fatalf("expected no boundary event away from the edge, got %d", len(events))
			}

			// 1000ms would move 500px, past any edge
			game.Update(1000, tt.input)
			if len(events) != 1 {
				t.Fatalf("expected 1 BoundaryReached event, got %d", len(events))
			}
			ev := events[0]
			if ev.Direction != tt.expected || ev.To != tt.to || ev.GetSource() != game {
				t.Errorf("unexpected event %+v", ev)
			}
		})
	}
}

func TestGame_StartStop_PublishesSceneEvents(t *testing.T) {
	game, bus := newTestGame(t)

	var seen []event.Type
	record := func(e event.Event) {
		if se, ok := e.(*event.SceneEvent); !ok || se.Scene != SceneName || se.GetSource() != game {
			t.Errorf("unexpected scene event %+v", e)
		}
		seen = append(seen, e.GetType())
	}
	bus.Subscribe(event.SceneCreated, record)
	bus.Subscribe(event.SceneExited, record)

	game.Start(context.Background(), 64, 64)
	game.Stop()

	if len(seen) != 2 || seen[0] != event.SceneCreated || seen[1] != event.SceneExited {
		t.Errorf("expected SceneCreated then SceneExited, got %v", seen)
	}
}

func TestGame_Update_PublishesShipMoved(t *testing.T) {
	game, bus := newTestGame(t)
	game.Start(context.Background(), 64, 64)

	var events []*event.ShipEvent
	bus.Subscribe(event.ShipMoved, func(e event.Event) {
		events = append(events, e.(*event.ShipEvent))
	})

	from := game.Ship.Position
	game.Update(10, InputState{Right: true})

	if len(events) != 1 {
		t.Fatalf("expected 1 ShipMoved event, got %d", len(events))
	}
	ev := events[0]
	if ev.ShipID != uint64(ShipID) || ev.Direction != physics.Right {
		t.Errorf("unexpected event %+v", ev)
	}
	if ev.From != from || ev.To != game.Ship.Position {
		t.Errorf("expected %v -> %v, got %v -> %v", from, game.Ship.Position, ev.From, ev.To)
	}
}

func TestGame_Update_IgnoredWhenNotActive(t *testing.T) {
	game, _ := newTestGame(t)

	// Before Start there is no ship; Update must not touch it.
	game.Update(16, InputState{Right: true})
	if game.CurrentTick != 0 {
		t.Errorf("expected no ticks before start, got %d", game.CurrentTick)
	}

	game.Start(context.Background(), 64, 64)
	game.Stop()
	pos := game.Ship.Position
	game.Update(16, InputState{Right: true})
	if game.Ship.Position != pos {
		t.Error("ship moved after Stop")
	}
}

func TestGame_StartStop_Transitions(t *testing.T) {
	game, bus := newTestGame(t)
	exited := 0
	bus.Subscribe(event.SceneExited, func(e event.Event) { exited++ })

	game.Start(context.Background(), 64, 64)
	game.Update(16, InputState{})
	game.Update(16, InputState{})
	game.Stop()
	game.Stop()

	if game.Status != GameStatusEnded {
		t.Errorf("expected ended status, got %v", game.Status)
	}
	if exited != 1 {
		t.Errorf("expected exactly one SceneExited event, got %d", exited)
	}
	if game.ElapsedMs != 32 {
		t.Errorf("expected 32ms elapsed, got %v", game.ElapsedMs)
	}
}

func TestGame_Poll_ReadsInputSource(t *testing.T) {
	game, _ := newTestGame(t)
	game.Start(context.Background(), 64, 64)
	game.Ship.Position = physics.Vector2D{X: 256, Y: 256}

	game.Poll(100, staticInput{Up: true})

	if game.Ship.Position != (physics.Vector2D{X: 256, Y: 206}) {
		t.Errorf("expected (256,206), got %v", game.Ship.Position)
	}
}

func TestGame_Render_Order(t *testing.T) {
	game, _ := newTestGame(t)
	game.Start(context.Background(), 64, 64)
	r := &recordingRenderer{}

	game.Render(r)

	expected := []string{"clear", "background", "ship", "present"}
	if len(r.calls) != len(expected) {
		t.Fatalf("expected calls %v, got %v", expected, r.calls)
	}
	for i := range expected {
		if r.calls[i] != expected[i] {
			t.Errorf("call %d: expected %q, got %q", i, expected[i], r.calls[i])
		}
	}
}

func TestInputState_Held(t *testing.T) {
	in := InputState{Left: true, Down: true}

	tests := []struct {
		dir      physics.Direction
		expected bool
	}{
		{physics.Left, true},
		{physics.Right, false},
		{physics.Up, false},
		{physics.Down, true},
		{physics.Direction(-1), false},
	}
	for _, tt := range tests {
		if got := in.Held(tt.dir); got != tt.expected {
			t.Errorf("Held(%v) = %v, expected %v", tt.dir, got, tt.expected)
		}
	}
}
