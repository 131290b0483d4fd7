package main

import (
	"context"

	"github.com/opd-ai/go-shooter/pkg/engine"
	"github.com/opd-ai/go-shooter/pkg/event"
	"github.com/opd-ai/go-shooter/pkg/logging"
)

// subscribeEventLog logs scene transitions and edge hits from bus. ShipMoved
// fires every frame a key is held and is not logged.
func subscribeEventLog(ctx context.Context, bus *event.Bus, logger *logging.Logger) []*event.Subscription {
	return []*event.Subscription{
		bus.Subscribe(event.SceneCreated, func(e event.Event) {
			args := []any{"scene", sceneName(e)}
			if game, ok := e.GetSource().(*engine.Game); ok && game.Ship != nil {
				args = append(args,
					"ship_width", game.Ship.Width,
					"ship_height", game.Ship.Height,
					"speed_px_per_ms", game.Controller.Speed(),
				)
			}
			logger.Info(ctx, "scene created", args...)
		}),
		bus.Subscribe(event.SceneExited, func(e event.Event) {
			args := []any{"scene", sceneName(e)}
			if game, ok := e.GetSource().(*engine.Game); ok {
				args = append(args, "ticks", game.CurrentTick, "elapsed_ms", game.ElapsedMs)
			}
			logger.Info(ctx, "scene exited", args...)
		}),
		bus.Subscribe(event.BoundaryReached, func(e event.Event) {
			if ev, ok := e.(*event.ShipEvent); ok {
				logger.Debug(ctx, "ship clamped to screen edge",
					"direction", ev.Direction.String(), "x", ev.To.X, "y", ev.To.Y)
			}
		}),
	}
}

func sceneName(e event.Event) string {
	if ev, ok := e.(*event.SceneEvent); ok {
		return ev.Scene
	}
	return ""
}

// edgeCounter counts BoundaryReached events for the headless summary
type edgeCounter struct {
	hits int
}

func (c *edgeCounter) subscribe(bus *event.Bus) *event.Subscription {
	return bus.Subscribe(event.BoundaryReached, func(event.Event) {
		c.hits++
	})
}
