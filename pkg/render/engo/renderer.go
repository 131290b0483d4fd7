// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-shooter/pkg/entity"
	"github.com/opd-ai/go-shooter/pkg/physics"
)

// Collision groups for the physics stub. The ship is the only body; the
// group exists so the collision system tracks it.
const shipCollisionGroup common.CollisionGroup = 1

// Z indices keep the background behind the ship
const (
	backgroundZ float32 = 0
	shipZ       float32 = 1
)

// spriteEntity is an ecs entity carrying the components engo's render and
// collision systems read
type spriteEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
	common.CollisionComponent
}

// EngoRenderer implements entity.Renderer on top of engo's render system.
// Entities are created the first time they are rendered; afterwards only
// their space component is updated.
type EngoRenderer struct {
	renderSystem    *common.RenderSystem
	collisionSystem *common.CollisionSystem

	backgroundTiles []*spriteEntity
	ships           map[entity.ID]*spriteEntity

	assets *AssetManager
}

// NewEngoRenderer creates a new engo-based renderer
func NewEngoRenderer(renderSystem *common.RenderSystem, collisionSystem *common.CollisionSystem, assets *AssetManager) *EngoRenderer {
	return &EngoRenderer{
		renderSystem:    renderSystem,
		collisionSystem: collisionSystem,
		ships:           make(map[entity.ID]*spriteEntity),
		assets:          assets,
	}
}

// RenderBackground implements entity.Renderer. The background image is
// repeated until it covers the whole canvas.
func (r *EngoRenderer) RenderBackground(background *entity.Background) {
	if r.backgroundTiles != nil {
		return
	}

	sprite := r.assets.Sprite(background.Asset)
	origins := tileOrigins(float32(background.Width), float32(background.Height), sprite.Width(), sprite.Height())
	for _, origin := range origins {
		tile := &spriteEntity{BasicEntity: ecs.NewBasic()}
		tile.RenderComponent = common.RenderComponent{
			Drawable: sprite,
			Scale:    engo.Point{X: 1, Y: 1},
			Color:    color.White,
		}
		tile.RenderComponent.SetZIndex(backgroundZ)
		tile.SpaceComponent = common.SpaceComponent{
			Position: origin,
			Width:    sprite.Width(),
			Height:   sprite.Height(),
		}
		r.renderSystem.Add(&tile.BasicEntity, &tile.RenderComponent, &tile.SpaceComponent)
		r.backgroundTiles = append(r.backgroundTiles, tile)
	}
}

// RenderShip implements entity.Renderer
func (r *EngoRenderer) RenderShip(ship *entity.Ship) {
	e := r.getOrCreateShipEntity(ship)
	e.SpaceComponent.Position = toPoint(ship.TopLeft())
}

// Clear implements entity.Renderer. Engo clears the frame itself.
func (r *EngoRenderer) Clear() {}

// Present implements entity.Renderer. Engo presents the frame itself.
func (r *EngoRenderer) Present() {}

// getOrCreateShipEntity gets an existing ship entity or creates a new one
// and attaches it to the render and collision systems
func (r *EngoRenderer) getOrCreateShipEntity(ship *entity.Ship) *spriteEntity {
	if e, exists := r.ships[ship.GetID()]; exists {
		return e
	}

	e := &spriteEntity{BasicEntity: ecs.NewBasic()}
	e.RenderComponent = common.RenderComponent{
		Drawable: r.assets.Sprite(entity.AssetShip),
		Scale:    shipScale(r.assets.Sprite(entity.AssetShip), ship),
		Color:    color.White,
	}
	e.RenderComponent.SetZIndex(shipZ)
	e.SpaceComponent = common.SpaceComponent{
		Position: toPoint(ship.TopLeft()),
		Width:    float32(ship.Width),
		Height:   float32(ship.Height),
	}
	e.CollisionComponent = common.CollisionComponent{
		Main:  shipCollisionGroup,
		Group: shipCollisionGroup,
	}

	r.renderSystem.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
	r.collisionSystem.Add(&e.BasicEntity, &e.CollisionComponent, &e.SpaceComponent)
	r.ships[ship.GetID()] = e

	return e
}

// tileOrigins returns the top-left corners of the tiles needed to cover a
// canvas of the given size with tiles of the given size
func tileOrigins(canvasW, canvasH, tileW, tileH float32) []engo.Point {
	if tileW <= 0 || tileH <= 0 {
		return nil
	}

	cols := int(math.Ceil(float64(canvasW / tileW)))
	rows := int(math.Ceil(float64(canvasH / tileH)))
	origins := make([]engo.Point, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			origins = append(origins, engo.Point{X: float32(col) * tileW, Y: float32(row) * tileH})
		}
	}
	return origins
}

// shipScale stretches the sprite to the ship's size; 1 when they match
func shipScale(sprite common.Drawable, ship *entity.Ship) engo.Point {
	if sprite.Width() <= 0 || sprite.Height() <= 0 {
		return engo.Point{X: 1, Y: 1}
	}
	return engo.Point{
		X: float32(ship.Width) / sprite.Width(),
		Y: float32(ship.Height) / sprite.Height(),
	}
}

// toPoint converts a physics vector to an engo point
func toPoint(v physics.Vector2D) engo.Point {
	return engo.Point{X: float32(v.X), Y: float32(v.Y)}
}
