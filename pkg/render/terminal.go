package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-shooter/pkg/entity"
	"github.com/opd-ai/go-shooter/pkg/physics"
)

// Glyphs used by the terminal renderer
const (
	starGlyph = '.'
	shipGlyph = 'A'
	blankCell = ' '
)

var (
	starStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	shipStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// TerminalRenderer draws the scene on a tcell screen. The world is scaled
// to fill the whole terminal grid.
type TerminalRenderer struct {
	screen tcell.Screen
	world  physics.Rect

	width  int
	height int
	buffer [][]rune
	styles [][]tcell.Style
}

// NewTerminalRenderer creates a terminal renderer for a world of the given
// size in pixels
func NewTerminalRenderer(screen tcell.Screen, worldWidth, worldHeight float64) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		world:  physics.NewScreenRect(worldWidth, worldHeight),
	}
	r.resize()
	return r
}

// resize reallocates the buffer when the terminal size changed
func (r *TerminalRenderer) resize() {
	w, h := r.screen.Size()
	if w == r.width && h == r.height && r.buffer != nil {
		return
	}

	r.width, r.height = w, h
	r.buffer = make([][]rune, h)
	r.styles = make([][]tcell.Style, h)
	for y := range r.buffer {
		r.buffer[y] = make([]rune, w)
		r.styles[y] = make([]tcell.Style, w)
	}
}

// worldToScreen converts world coordinates to a terminal cell. Points on the
// far edge map to the last cell.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	origin := r.world.Min()
	x := int((pos.X - origin.X) / r.world.Width * float64(r.width))
	y := int((pos.Y - origin.Y) / r.world.Height * float64(r.height))
	return clampCell(x, r.width), clampCell(y, r.height)
}

func clampCell(v, size int) int {
	return int(physics.Clamp(float64(v), 0, float64(size-1)))
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	r.resize()
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = blankCell
			r.styles[y][x] = tcell.StyleDefault
		}
	}
}

// RenderBackground implements entity.Renderer with a fixed star pattern
func (r *TerminalRenderer) RenderBackground(background *entity.Background) {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			if isStar(x, y) {
				r.buffer[y][x] = starGlyph
				r.styles[y][x] = starStyle
			}
		}
	}
}

func isStar(x, y int) bool {
	return (x*7+y*13)%23 == 0
}

// RenderShip implements entity.Renderer. The ship fills every cell its
// bounding box covers, at least one.
func (r *TerminalRenderer) RenderShip(ship *entity.Ship) {
	if r.width == 0 || r.height == 0 {
		return
	}

	hw, hh := ship.HalfExtents()
	x0, y0 := r.worldToScreen(physics.Vector2D{X: ship.Position.X - hw, Y: ship.Position.Y - hh})
	x1, y1 := r.worldToScreen(physics.Vector2D{X: ship.Position.X + hw, Y: ship.Position.Y + hh})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.buffer[y][x] = shipGlyph
			r.styles[y][x] = shipStyle
		}
	}
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.screen.SetContent(x, y, r.buffer[y][x], nil, r.styles[y][x])
		}
	}
	r.screen.Show()
}

// Cell returns the glyph last drawn at a terminal cell
func (r *TerminalRenderer) Cell(x, y int) rune {
	if y < 0 || y >= len(r.buffer) || x < 0 || x >= len(r.buffer[y]) {
		return 0
	}
	return r.buffer[y][x]
}
