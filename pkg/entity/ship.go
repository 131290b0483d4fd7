// pkg/entity/ship.go
package entity

import (
	"github.com/opd-ai/go-shooter/pkg/physics"
)

// Ship is the player's spaceship. Position is the center of the sprite in
// screen pixels; Width and Height are the sprite size and never change
// after creation.
type Ship struct {
	BaseEntity
	Width  float64
	Height float64
}

// NewShip creates an active ship centered on position
func NewShip(id ID, position physics.Vector2D, width, height float64) *Ship {
	return &Ship{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Active:   true,
		},
		Width:  width,
		Height: height,
	}
}

// HalfExtents returns half the sprite width and height
func (s *Ship) HalfExtents() (float64, float64) {
	return s.Width / 2, s.Height / 2
}

// TopLeft returns the sprite's top-left corner, as used by renderers that
// anchor drawables at their origin.
func (s *Ship) TopLeft() physics.Vector2D {
	hw, hh := s.HalfExtents()
	return physics.Vector2D{X: s.Position.X - hw, Y: s.Position.Y - hh}
}
