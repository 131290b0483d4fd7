// pkg/render/engo/assets.go
package engo

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-shooter/pkg/config"
	"github.com/opd-ai/go-shooter/pkg/entity"
	"github.com/opd-ai/go-shooter/pkg/logging"
)

// AssetManager loads the scene images by logical name. Images that fail to
// load are replaced by generated placeholder sprites so the scene can still
// run.
type AssetManager struct {
	config  *config.GameConfig
	sprites map[string]common.Drawable
	failed  map[string]error
	logger  *logging.Logger
}

// NewAssetManager creates an asset manager for the configured images
func NewAssetManager(cfg *config.GameConfig, logger *logging.Logger) *AssetManager {
	return &AssetManager{
		config:  cfg,
		sprites: make(map[string]common.Drawable),
		failed:  make(map[string]error),
		logger:  logger,
	}
}

// Preload requests every configured image from engo's file loader. Paths
// are relative to the run options' asset root. Failures are logged and
// remembered; they never stop the scene.
func (am *AssetManager) Preload(ctx context.Context) {
	for _, img := range am.config.Assets.Images {
		path, _ := am.config.ImagePath(img.Name)
		if err := engo.Files.Load(path); err != nil {
			am.failed[img.Name] = err
			am.logger.Warn(ctx, "image failed to load, using placeholder",
				"asset", img.Name, "path", path, "error", err.Error())
			continue
		}
		am.logger.Debug(ctx, "image loaded", "asset", img.Name, "path", path)
	}
}

// Sprite returns the drawable for a logical image name, building it on
// first use. Requires a GL context.
func (am *AssetManager) Sprite(name string) common.Drawable {
	if sprite, ok := am.sprites[name]; ok {
		return sprite
	}

	var sprite common.Drawable
	if path, ok := am.config.ImagePath(name); ok && am.failed[name] == nil {
		if tex, err := common.LoadedSprite(path); err == nil {
			sprite = tex
		} else {
			am.failed[name] = err
		}
	}
	if sprite == nil {
		sprite = am.placeholder(name)
	}

	am.sprites[name] = sprite
	return sprite
}

// Failed reports whether the named image could not be loaded
func (am *AssetManager) Failed(name string) bool {
	return am.failed[name] != nil
}

// placeholder creates a generated sprite for an image that is missing
func (am *AssetManager) placeholder(name string) common.Drawable {
	pattern := placeholderPattern(name)
	return am.createSprite(len(pattern[0]), len(pattern), pattern)
}

// placeholderPattern returns the pixel mask used in place of a named image
func placeholderPattern(name string) [][]int {
	switch name {
	case entity.AssetShip:
		return shipPattern
	case entity.AssetBullet:
		return [][]int{
			{1, 1},
			{1, 1},
			{1, 1},
			{1, 1},
		}
	case entity.AssetMeteor:
		return [][]int{
			{0, 1, 1, 0},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{0, 1, 1, 0},
		}
	default:
		return starfieldPattern(64)
	}
}

// shipPattern is a 16x16 upward-pointing ship
var shipPattern = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
	{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1},
	{1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1},
	{1, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0},
}

// starfieldPattern scatters stars over a size x size tile
func starfieldPattern(size int) [][]int {
	pattern := make([][]int, size)
	for y := range pattern {
		pattern[y] = make([]int, size)
		if y%8 == 0 && (y/8)%3 == 0 {
			pattern[y][(y*7+3)%size] = 1
		}
		if y%5 == 2 {
			pattern[y][(y*13+11)%size] = 1
		}
	}
	return pattern
}

// createSprite creates a sprite from a 2D pattern
func (am *AssetManager) createSprite(width, height int, pattern [][]int) common.Drawable {
	img := am.createBaseImage(width, height)
	am.drawPatternOnImage(img, pattern, width, height)
	return am.convertToEngoTexture(img)
}

// createBaseImage creates a transparent RGBA image with the specified dimensions.
func (am *AssetManager) createBaseImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// drawPatternOnImage draws a 2D pixel pattern onto the provided RGBA image.
func (am *AssetManager) drawPatternOnImage(img *image.RGBA, pattern [][]int, width, height int) {
	for y, row := range pattern {
		if y >= height {
			break
		}
		for x, pixel := range row {
			if x >= width {
				break
			}
			if pixel == 1 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	draw.Draw(nrgbaImg, bounds, img, bounds.Min, draw.Src)

	texture := common.NewTextureSingle(common.NewImageObject(nrgbaImg))
	return texture
}
