// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-shooter/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all scene objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	Render(r Renderer)
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Active   bool
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// Render does nothing for the base entity; concrete types draw themselves.
func (e *BaseEntity) Render(r Renderer) {}

func (s *Ship) Render(r Renderer) {
	r.RenderShip(s)
}

func (b *Background) Render(r Renderer) {
	r.RenderBackground(b)
}
