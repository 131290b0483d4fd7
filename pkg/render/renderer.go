// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-shooter/pkg/entity"
	"github.com/opd-ai/go-shooter/pkg/logging"
)

// NullRenderer is an entity.Renderer that draws nothing and logs each call
// at debug level. It backs the headless run mode.
type NullRenderer struct {
	logger *logging.Logger
	frames uint64
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	return &NullRenderer{
		logger: logger,
	}
}

// Frames returns how many frames have been presented
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	ctx := context.Background()
	d.frames++
	d.logger.Debug(ctx, "Present called", "frame", d.frames)
}

// RenderBackground implements entity.Renderer.
func (d *NullRenderer) RenderBackground(background *entity.Background) {
	ctx := context.Background()
	if background == nil {
		d.logger.Debug(ctx, "RenderBackground called with nil background")
		return
	}
	d.logger.Debug(ctx, "RenderBackground called",
		"background_id", background.ID,
		"asset", background.Asset,
	)
}

// RenderShip implements entity.Renderer.
func (d *NullRenderer) RenderShip(ship *entity.Ship) {
	ctx := context.Background()
	if ship == nil {
		d.logger.Debug(ctx, "RenderShip called with nil ship")
		return
	}
	d.logger.Debug(ctx, "RenderShip called",
		"ship_id", ship.ID,
		"x", ship.Position.X,
		"y", ship.Position.Y,
	)
}
