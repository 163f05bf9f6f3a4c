package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Tile represents a band of full image rows rendered as one unit of work
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1), row 0 is the top of the image
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a new tile with the specified bounds and a generator seeded from seed+id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: core.NewRandom(seed + int64(id)),
	}
}

// NewTileGrid splits the image into bands of rowsPerTile rows, top to bottom.
// The last band may be shorter.
func NewTileGrid(width, height, rowsPerTile int, seed int64) []*Tile {
	if rowsPerTile <= 0 {
		rowsPerTile = 1
	}

	tilesY := (height + rowsPerTile - 1) / rowsPerTile // Ceiling division
	tiles := make([]*Tile, 0, tilesY)

	for tileY := 0; tileY < tilesY; tileY++ {
		y0 := tileY * rowsPerTile
		y1 := min(y0+rowsPerTile, height) // Don't exceed image bounds

		tiles = append(tiles, NewTile(tileY, image.Rect(0, y0, width, y1), seed))
	}

	return tiles
}
