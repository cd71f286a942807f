package tile

import (
	"math"

	"github.com/younwookim/tilecore/internal/domain/geometry"
)

// Map holds the collision data of a loaded level.
// It is immutable while actors tick.
type Map struct {
	Width      int
	Height     int
	TileWidth  float64
	TileHeight float64
	Cells      [][]Collision
}

// NewMap creates an all-passable map
func NewMap(width, height int, tileW, tileH float64) *Map {
	cells := make([][]Collision, height)
	for y := range cells {
		cells[y] = make([]Collision, width)
	}
	return &Map{
		Width:      width,
		Height:     height,
		TileWidth:  tileW,
		TileHeight: tileH,
		Cells:      cells,
	}
}

// GetCollision returns the collision at tile coordinates.
// Coordinates outside the map are impassable so actors cannot leave it.
func (m *Map) GetCollision(x, y int) Collision {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return Impassable
	}
	return m.Cells[y][x]
}

// Set changes a single cell. Must not be called while actors tick.
func (m *Map) Set(x, y int, c Collision) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Cells[y][x] = c
}

// TileSize returns the world size of a single tile
func (m *Map) TileSize() (w, h float64) {
	return m.TileWidth, m.TileHeight
}

// PixelWidth returns the level width in world units
func (m *Map) PixelWidth() float64 {
	return float64(m.Width) * m.TileWidth
}

// PixelHeight returns the level height in world units
func (m *Map) PixelHeight() float64 {
	return float64(m.Height) * m.TileHeight
}

// CellAt returns the tile coordinates containing a world point
func (m *Map) CellAt(p geometry.Vector) (x, y int) {
	return int(math.Floor(p.X / m.TileWidth)), int(math.Floor(p.Y / m.TileHeight))
}

// Range returns the inclusive tile range overlapped by r.
// Edges lying exactly on a tile boundary do not reach into the next tile.
func Range(g Grid, r geometry.Rect) (left, top, right, bottom int) {
	w, h := g.TileSize()
	left = int(math.Floor(r.Left() / w))
	top = int(math.Floor(r.Top() / h))
	right = int(math.Ceil(r.Right()/w)) - 1
	bottom = int(math.Ceil(r.Bottom()/h)) - 1
	return left, top, right, bottom
}
