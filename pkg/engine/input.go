// pkg/engine/input.go
package engine

import "github.com/opd-ai/go-shooter/pkg/physics"

// InputState holds which cursor keys are down for the current frame
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Held reports whether the key for dir is down
func (s InputState) Held(dir physics.Direction) bool {
	switch dir {
	case physics.Left:
		return s.Left
	case physics.Right:
		return s.Right
	case physics.Up:
		return s.Up
	case physics.Down:
		return s.Down
	default:
		return false
	}
}

// InputSource provides the cursor key state once per frame
type InputSource interface {
	Cursors() InputState
}
