// pkg/engine/game.go
package engine

import (
	"context"

	"github.com/opd-ai/go-shooter/pkg/config"
	"github.com/opd-ai/go-shooter/pkg/entity"
	"github.com/opd-ai/go-shooter/pkg/event"
	"github.com/opd-ai/go-shooter/pkg/logging"
	"github.com/opd-ai/go-shooter/pkg/physics"
)

// SceneName is the name of the only scene the game runs
const SceneName = "ShooterScene"

// Entity IDs are fixed since the scene holds exactly one of each
const (
	BackgroundID entity.ID = 1
	ShipID       entity.ID = 2
)

// GameStatus tracks the scene lifecycle
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

// Game is the frame driver. It owns the ship and feeds the per-frame input
// to the movement controller. It is driven by a single frame loop and is
// not safe for concurrent use.
type Game struct {
	Config      *config.GameConfig
	Ship        *entity.Ship
	Background  *entity.Background
	Controller  *MovementController
	EventBus    *event.Bus
	Status      GameStatus
	CurrentTick uint64
	ElapsedMs   float64

	logger *logging.Logger
}

// NewGame creates a game for cfg. The ship speed is derived here, once, and
// stays constant for the lifetime of the game.
func NewGame(cfg *config.GameConfig, bus *event.Bus, logger *logging.Logger) *Game {
	speed := physics.GetSpeed(cfg.Ship.SpeedPixels, cfg.Ship.SpeedSeconds)
	width, height := float64(cfg.Window.Width), float64(cfg.Window.Height)

	return &Game{
		Config:     cfg,
		Controller: NewMovementController(speed, width, height),
		EventBus:   bus,
		Status:     GameStatusWaiting,
		logger:     logger,
	}
}

// Start creates the background and the ship for the scene. The ship is
// placed at the configured fraction of the screen (centered horizontally,
// near the bottom by default). Non-positive sizes fall back to the
// configured sprite size.
func (g *Game) Start(ctx context.Context, shipWidth, shipHeight float64) {
	if shipWidth <= 0 || shipHeight <= 0 {
		shipWidth, shipHeight = g.Config.Ship.FallbackWidth, g.Config.Ship.FallbackHeight
	}

	width, height := float64(g.Config.Window.Width), float64(g.Config.Window.Height)
	start := physics.Vector2D{
		X: width * g.Config.Ship.StartXRatio,
		Y: height * g.Config.Ship.StartYRatio,
	}

	g.Background = entity.NewBackground(BackgroundID, entity.AssetSpace, width, height)
	g.Ship = entity.NewShip(ShipID, start, shipWidth, shipHeight)
	g.Status = GameStatusActive
	g.CurrentTick = 0
	g.ElapsedMs = 0

	if !g.Controller.PlayableArea(g.Ship).Contains(start) {
		// Clamped on the first move, not here.
		g.logger.Debug(ctx, "ship starts outside playable area",
			"x", start.X, "y", start.Y)
	}

	g.EventBus.Publish(event.NewSceneEvent(event.SceneCreated, g, SceneName))
}

// Stop ends the scene
func (g *Game) Stop() {
	if g.Status != GameStatusActive {
		return
	}
	g.Status = GameStatusEnded
	g.EventBus.Publish(event.NewSceneEvent(event.SceneExited, g, SceneName))
}

// Update advances the scene by one frame. Each held key moves the ship
// independently, in the order left, right, up, down, so holding two keys
// moves diagonally. With no key held the ship does not move.
func (g *Game) Update(deltaMs float64, in InputState) {
	if g.Status != GameStatusActive {
		return
	}
	if deltaMs < 0 {
		deltaMs = 0
	}

	g.CurrentTick++
	g.ElapsedMs += deltaMs

	for _, dir := range physics.Directions {
		if in.Held(dir) {
			g.move(deltaMs, dir)
		}
	}
}

// Poll reads the input source and advances one frame
func (g *Game) Poll(deltaMs float64, src InputSource) {
	g.Update(deltaMs, src.Cursors())
}

func (g *Game) move(deltaMs float64, dir physics.Direction) {
	from := g.Ship.Position
	clamped := g.Controller.Move(g.Ship, deltaMs, dir)
	to := g.Ship.Position

	if to != from {
		g.EventBus.Publish(event.NewShipEvent(event.ShipMoved, g, uint64(g.Ship.ID), dir, from, to))
	}
	if clamped {
		g.EventBus.Publish(event.NewShipEvent(event.BoundaryReached, g, uint64(g.Ship.ID), dir, from, to))
	}
}

// Render draws the scene through r
func (g *Game) Render(r entity.Renderer) {
	r.Clear()
	if g.Background != nil {
		g.Background.Render(r)
	}
	if g.Ship != nil {
		g.Ship.Render(r)
	}
	r.Present()
}
