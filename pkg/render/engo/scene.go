// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-shooter/pkg/config"
	"github.com/opd-ai/go-shooter/pkg/engine"
	"github.com/opd-ai/go-shooter/pkg/entity"
	"github.com/opd-ai/go-shooter/pkg/event"
	"github.com/opd-ai/go-shooter/pkg/logging"
)

// ShooterScene is the single engo scene of the game. It owns the game,
// which owns the ship; nothing is kept in package-level state.
type ShooterScene struct {
	world *ecs.World
	ctx   context.Context

	config   *config.GameConfig
	eventBus *event.Bus
	logger   *logging.Logger

	game     *engine.Game
	assets   *AssetManager
	renderer *EngoRenderer
	control  *ControlSystem
}

// NewShooterScene creates a new shooter scene
func NewShooterScene(ctx context.Context, cfg *config.GameConfig, eventBus *event.Bus, logger *logging.Logger) *ShooterScene {
	return &ShooterScene{
		ctx:      ctx,
		config:   cfg,
		eventBus: eventBus,
		logger:   logger,
		world:    &ecs.World{},
		assets:   NewAssetManager(cfg, logger),
	}
}

// Type returns the scene type (required by Engo)
func (scene *ShooterScene) Type() string {
	return engine.SceneName
}

// Preload requests the scene images and derives the ship speed (required by Engo)
func (scene *ShooterScene) Preload() {
	scene.assets.Preload(scene.ctx)
	scene.game = engine.NewGame(scene.config, scene.eventBus, scene.logger)
}

// Setup is called when the scene starts (required by Engo)
func (scene *ShooterScene) Setup(u engo.Updater) {
	if world, ok := u.(*ecs.World); ok {
		scene.world = world
	}
	if scene.game == nil {
		scene.Preload()
	}

	renderSystem := &common.RenderSystem{}
	collisionSystem := &common.CollisionSystem{Solids: shipCollisionGroup}
	scene.world.AddSystem(renderSystem)
	scene.world.AddSystem(collisionSystem)

	SetupInputBindings()

	scene.renderer = NewEngoRenderer(renderSystem, collisionSystem, scene.assets)

	width, height := scene.shipSize()
	scene.game.Start(scene.ctx, width, height)
	scene.game.Render(scene.renderer)

	scene.control = NewControlSystem(scene.game, NewCursorKeys(), scene.renderer)
	scene.world.AddSystem(scene.control)
}

// shipSize returns the loaded ship image size, or zero when the image
// failed so the game uses its configured fallback size.
func (scene *ShooterScene) shipSize() (float64, float64) {
	ship := scene.assets.Sprite(entity.AssetShip)
	if scene.assets.Failed(entity.AssetShip) {
		return 0, 0
	}
	return float64(ship.Width()), float64(ship.Height())
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *ShooterScene) Exit() {
	if scene.game != nil {
		scene.game.Stop()
	}
}

// Game returns the game driven by the scene, nil before Preload
func (scene *ShooterScene) Game() *engine.Game {
	return scene.game
}

// RunOptions builds engo's run options from the configuration: a fixed,
// non-resizable canvas with the configured asset root.
func RunOptions(cfg *config.GameConfig) engo.RunOptions {
	return engo.RunOptions{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		VSync:        cfg.Window.VSync,
		NotResizable: true,
		AssetsRoot:   cfg.Assets.Root,
	}
}
