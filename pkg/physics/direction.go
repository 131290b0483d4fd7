// pkg/physics/direction.go
package physics

// Direction is one of the four axis-aligned movement directions
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in the order input is applied each frame
var Directions = [...]Direction{Left, Right, Up, Down}

// Vector returns the unit vector for the direction. Screen y grows downward,
// so Up is (0,-1). Values outside the enumeration map to the zero vector.
func (d Direction) Vector() Vector2D {
	switch d {
	case Left:
		return Vector2D{X: -1, Y: 0}
	case Right:
		return Vector2D{X: 1, Y: 0}
	case Up:
		return Vector2D{X: 0, Y: -1}
	case Down:
		return Vector2D{X: 0, Y: 1}
	default:
		return Vector2D{}
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// GetSpeed converts a distance covered over a number of seconds into
// pixels per millisecond. GetSpeed(500, 1) is 0.5.
func GetSpeed(distance, seconds float64) float64 {
	return distance / seconds / 1000
}
