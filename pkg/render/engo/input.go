// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-shooter/pkg/engine"
	"github.com/opd-ai/go-shooter/pkg/entity"
)

// Button names registered with engo's input manager
const (
	ButtonLeft  = "left"
	ButtonRight = "right"
	ButtonUp    = "up"
	ButtonDown  = "down"
)

// SetupInputBindings registers the cursor keys
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonLeft, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonRight, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonUp, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonDown, engo.KeyArrowDown)
}

// CursorKeys reads the four cursor buttons. It implements engine.InputSource.
type CursorKeys struct {
	isDown func(button string) bool
}

// NewCursorKeys creates a cursor key handle backed by engo's input manager
func NewCursorKeys() *CursorKeys {
	return &CursorKeys{
		isDown: func(button string) bool {
			return engo.Input.Button(button).Down()
		},
	}
}

// Cursors returns which cursor keys are down this frame
func (c *CursorKeys) Cursors() engine.InputState {
	return engine.InputState{
		Left:  c.isDown(ButtonLeft),
		Right: c.isDown(ButtonRight),
		Up:    c.isDown(ButtonUp),
		Down:  c.isDown(ButtonDown),
	}
}

// ControlSystem is the ecs system that drives the game once per engo frame
// and pushes the resulting ship position to the renderer.
type ControlSystem struct {
	game     *engine.Game
	input    engine.InputSource
	renderer entity.Renderer
}

// NewControlSystem creates a new control system
func NewControlSystem(game *engine.Game, input engine.InputSource, renderer entity.Renderer) *ControlSystem {
	return &ControlSystem{
		game:     game,
		input:    input,
		renderer: renderer,
	}
}

// Remove satisfies the ecs.System interface
func (cs *ControlSystem) Remove(basic ecs.BasicEntity) {
	// Not used for control system
}

// Update advances the game by dt seconds. Engo reports frame time in
// seconds; the game works in milliseconds.
func (cs *ControlSystem) Update(dt float32) {
	cs.game.Poll(float64(dt)*1000, cs.input)
	cs.game.Render(cs.renderer)
}
