// pkg/physics/bounds.go
package physics

// Rect represents a rectangular area described by its center and size
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// NewScreenRect returns the rect covering a screen of the given size,
// with its top-left corner at the origin.
func NewScreenRect(width, height float64) Rect {
	return Rect{
		Center: Vector2D{X: width / 2, Y: height / 2},
		Width:  width,
		Height: height,
	}
}

// Min returns the top-left corner
func (r Rect) Min() Vector2D {
	return Vector2D{X: r.Center.X - r.Width/2, Y: r.Center.Y - r.Height/2}
}

// Max returns the bottom-right corner
func (r Rect) Max() Vector2D {
	return Vector2D{X: r.Center.X + r.Width/2, Y: r.Center.Y + r.Height/2}
}

// Contains reports whether point lies inside the closed rect.
func (r Rect) Contains(point Vector2D) bool {
	lo, hi := r.Min(), r.Max()
	return point.X >= lo.X && point.X <= hi.X &&
		point.Y >= lo.Y && point.Y <= hi.Y
}

// Inset shrinks the rect by dx on the left and right and by dy on the top
// and bottom. A rect inset past its own size collapses onto its center.
func (r Rect) Inset(dx, dy float64) Rect {
	w := r.Width - 2*dx
	h := r.Height - 2*dy
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{Center: r.Center, Width: w, Height: h}
}

// Clamp constrains value to the closed interval [lo, hi].
// When lo > hi the result is lo.
func Clamp(value, lo, hi float64) float64 {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}
