package tilemap

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX layer and object group names.
const (
	tmxTileLayer      = "tiles"
	tmxCollisionLayer = "collision"
	tmxSpawnGroup     = "PlayerSpawn"
)

// Parse decodes a JSON map document. Missing collision rows or cells are
// treated as unblocked.
func Parse(raw []byte) (*Grid, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}
	return FromDocument(&doc)
}

// FromDocument builds a Grid from a decoded document.
func FromDocument(doc *Document) (*Grid, error) {
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrMalformedMap, doc.Width, doc.Height)
	}
	if len(doc.Tiles) != doc.Height {
		return nil, fmt.Errorf("%w: tiles has %d rows, want %d", ErrMalformedMap, len(doc.Tiles), doc.Height)
	}

	g := &Grid{
		Width:          doc.Width,
		Height:         doc.Height,
		TileIDs:        make([][]int, doc.Height),
		Collision:      make([][]bool, doc.Height),
		TilesetColumns: doc.TilesetCols,
		TilledID:       DefaultTilledID,
		Spawn:          doc.Spawn,
	}
	if g.TilesetColumns <= 0 {
		g.TilesetColumns = DefaultTilesetColumns
	}

	for y, row := range doc.Tiles {
		if len(row) != doc.Width {
			return nil, fmt.Errorf("%w: tiles row %d has %d cells, want %d", ErrMalformedMap, y, len(row), doc.Width)
		}
		g.TileIDs[y] = append([]int(nil), row...)

		g.Collision[y] = make([]bool, doc.Width)
		if y >= len(doc.Collision) {
			continue
		}
		for x, v := range doc.Collision[y] {
			if x >= doc.Width {
				break
			}
			g.Collision[y][x] = v == 1
		}
	}

	return g, nil
}

// LoadJSON reads and parses a JSON map from fsys.
func LoadJSON(fsys fs.FS, name string) (*Grid, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", name, err)
	}
	g, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", name, err)
	}
	return g, nil
}

// LoadTMX parses a Tiled map. Tile ids come from the "tiles" layer, any tile
// on the "collision" layer blocks its cell, and the first object of the
// "PlayerSpawn" group sets the spawn.
func LoadTMX(fsys fs.FS, tmxPath string) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w: %v", tmxPath, ErrMalformedMap, err)
	}

	doc := &Document{
		Width:  levelMap.Width,
		Height: levelMap.Height,
		Tiles:  make([][]int, levelMap.Height),
	}
	if len(levelMap.Tilesets) > 0 {
		doc.TilesetCols = levelMap.Tilesets[0].Columns
	}
	for y := range doc.Tiles {
		doc.Tiles[y] = make([]int, levelMap.Width)
	}

	foundTiles := false
	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case tmxTileLayer:
			foundTiles = true
			forEachTile(layer, levelMap.Width, levelMap.Height, func(x, y int, id int) {
				doc.Tiles[y][x] = id
			})
		case tmxCollisionLayer:
			doc.Collision = make([][]int, levelMap.Height)
			for y := range doc.Collision {
				doc.Collision[y] = make([]int, levelMap.Width)
			}
			forEachTile(layer, levelMap.Width, levelMap.Height, func(x, y int, _ int) {
				doc.Collision[y][x] = 1
			})
		}
	}
	if !foundTiles {
		return nil, fmt.Errorf("load TMX %s: %w: no %q layer", tmxPath, ErrMalformedMap, tmxTileLayer)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != tmxSpawnGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		doc.Spawn = &Spawn{X: o.X / tileW, Y: o.Y / tileH}
		break
	}

	return FromDocument(doc)
}

func forEachTile(layer *tiled.Layer, width, height int, fn func(x, y, id int)) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			if i >= len(layer.Tiles) {
				return
			}
			tile := layer.Tiles[i]
			if tile == nil || tile.IsNil() {
				continue
			}
			fn(x, y, int(tile.ID))
		}
	}
}

// Load reads a map, picking the format from the file extension.
func Load(fsys fs.FS, name string) (*Grid, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return LoadTMX(fsys, name)
	case ".json":
		return LoadJSON(fsys, name)
	default:
		return nil, fmt.Errorf("map %s: %w: unsupported extension", name, ErrMalformedMap)
	}
}
