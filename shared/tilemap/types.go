// Package tilemap provides the static farm map: tile ids, collision and spawn.
// It has no dependencies on ebitengine, donburi or resolv.
package tilemap

import (
	"errors"
	"image"
)

// DefaultTilesetColumns is used when a map document omits tilesetCols.
const DefaultTilesetColumns = 8

// DefaultTilledID is the tileset id of tilled soil.
const DefaultTilledID = 4

// ErrMalformedMap is wrapped by every map loading failure.
var ErrMalformedMap = errors.New("malformed map")

// Spawn is an initial player position in tile units.
type Spawn struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Document is the on-disk JSON map format.
type Document struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Tiles       [][]int `json:"tiles"`
	Collision   [][]int `json:"collision,omitempty"`
	TilesetCols int     `json:"tilesetCols,omitempty"`
	Spawn       *Spawn  `json:"spawn,omitempty"`
}

// Grid is the immutable tile world. Coordinates outside [0,Width)x[0,Height)
// are blocked and empty.
type Grid struct {
	Width          int
	Height         int
	TileIDs        [][]int
	Collision      [][]bool
	TilesetColumns int
	TilledID       int
	Spawn          *Spawn
}

// InBounds reports whether the cell lies on the map.
func (g *Grid) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < g.Width && ty < g.Height
}

// IsBlocked reports whether the cell cannot be walked on.
func (g *Grid) IsBlocked(tx, ty int) bool {
	if !g.InBounds(tx, ty) {
		return true
	}
	return g.Collision[ty][tx]
}

// TileIDAt returns the tile id of a cell, or 0 off the map.
func (g *Grid) TileIDAt(tx, ty int) int {
	if !g.InBounds(tx, ty) {
		return 0
	}
	return g.TileIDs[ty][tx]
}

// IsTillable reports whether the cell is tilled soil.
func (g *Grid) IsTillable(tx, ty int) bool {
	return g.TileIDAt(tx, ty) == g.TilledID
}

// Cell is a tile coordinate.
type Cell struct {
	X, Y int
}

// BlockedCells lists every blocked in-bounds cell in row-major order.
func (g *Grid) BlockedCells() []Cell {
	var cells []Cell
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Collision[y][x] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// SourceRect returns the tileset sub-image holding tile id.
func (g *Grid) SourceRect(id, tileSize int) image.Rectangle {
	cols := g.TilesetColumns
	if cols <= 0 {
		cols = DefaultTilesetColumns
	}
	sx := (id % cols) * tileSize
	sy := (id / cols) * tileSize
	return image.Rect(sx, sy, sx+tileSize, sy+tileSize)
}
