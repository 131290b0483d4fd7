// pkg/entity/assets.go
package entity

// Logical names of the images the scene preloads. Only AssetSpace and
// AssetShip are drawn; the others are loaded for later use.
const (
	AssetSpace  = "space"
	AssetBullet = "bullet"
	AssetShip   = "ship"
	AssetMeteor = "meteor"
)

// Background is the tiled backdrop covering the whole canvas
type Background struct {
	BaseEntity
	Asset  string
	Width  float64
	Height float64
}

// NewBackground creates a background anchored at the origin
func NewBackground(id ID, asset string, width, height float64) *Background {
	return &Background{
		BaseEntity: BaseEntity{ID: id, Active: true},
		Asset:      asset,
		Width:      width,
		Height:     height,
	}
}
