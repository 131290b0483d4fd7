// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-shooter/pkg/physics"
)

// Type represents the type of event
type Type string

// Scene and ship event types
const (
	SceneCreated    Type = "scene_created"
	SceneExited     Type = "scene_exited"
	ShipMoved       Type = "ship_moved"
	BoundaryReached Type = "boundary_reached"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it from the
// bus; calling Cancel more than once is a no-op.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registeredHandler struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]registeredHandler
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registeredHandler),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registeredHandler{id: id, handler: handler})

	return &Subscription{
		ID: id,
		Cancel: func() {
			b.unsubscribe(eventType, id)
		},
	}
}

// unsubscribe removes the handler with the given subscription ID
func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.handlers[eventType]
	for i, h := range handlers {
		if h.id == id {
			b.handlers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, h := range handlers {
		h.handler(event)
	}
}

// ShipEvent describes a change to the ship's position
type ShipEvent struct {
	BaseEvent
	ShipID    uint64
	Direction physics.Direction
	From      physics.Vector2D
	To        physics.Vector2D
}

// NewShipEvent creates a new ship event
func NewShipEvent(eventType Type, source interface{}, shipID uint64, dir physics.Direction, from, to physics.Vector2D) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ShipID:    shipID,
		Direction: dir,
		From:      from,
		To:        to,
	}
}

// SceneEvent marks a scene lifecycle transition
type SceneEvent struct {
	BaseEvent
	Scene string
}

// NewSceneEvent creates a new scene event
func NewSceneEvent(eventType Type, source interface{}, scene string) *SceneEvent {
	return &SceneEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Scene: scene,
	}
}
