// pkg/engine/movement.go
package engine

import (
	"github.com/opd-ai/go-shooter/pkg/entity"
	"github.com/opd-ai/go-shooter/pkg/physics"
)

// MovementController moves a ship along one axis-aligned direction at a
// constant speed and keeps its sprite fully on screen.
type MovementController struct {
	speed  float64 // pixels per millisecond
	screen physics.Rect
}

// NewMovementController creates a controller for a screen of the given size.
// speed is in pixels per millisecond and is fixed for the controller's lifetime.
func NewMovementController(speed, screenWidth, screenHeight float64) *MovementController {
	return &MovementController{
		speed:  speed,
		screen: physics.NewScreenRect(screenWidth, screenHeight),
	}
}

// Speed returns the controller's speed in pixels per millisecond
func (mc *MovementController) Speed() float64 {
	return mc.speed
}

// PlayableArea returns the region the ship's center is confined to
func (mc *MovementController) PlayableArea(ship *entity.Ship) physics.Rect {
	hw, hh := ship.HalfExtents()
	return mc.screen.Inset(hw, hh)
}

// Move advances ship by speed*deltaMs along dir. The x axis is moved and
// clamped to [halfW, screenW-halfW] first, then the y axis to
// [halfH, screenH-halfH]. deltaMs must not be negative. Move reports
// whether either clamp changed the moved coordinate.
func (mc *MovementController) Move(ship *entity.Ship, deltaMs float64, dir physics.Direction) bool {
	step := dir.Vector().Scale(mc.speed * deltaMs)
	hw, hh := ship.HalfExtents()
	lo, hi := mc.screen.Min(), mc.screen.Max()

	raw := ship.Position.Add(step)
	x := physics.Clamp(raw.X, lo.X+hw, hi.X-hw)
	y := physics.Clamp(raw.Y, lo.Y+hh, hi.Y-hh)

	ship.Position = physics.Vector2D{X: x, Y: y}
	return x != raw.X || y != raw.Y
}
