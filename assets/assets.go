package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DefaultMap is the embedded farm used when no map path is given.
const DefaultMap = "maps/farm.json"

var (
	//go:embed all:maps
	mapFS embed.FS
)

// LoadMap reads a map from disk. An empty path returns the embedded farm.
// Tiled maps resolve their tilesets relative to the map's directory. The
// tilled soil id comes from config.Farm.
func LoadMap(mapPath string) (*tilemap.Grid, error) {
	var (
		grid *tilemap.Grid
		err  error
	)
	if mapPath == "" {
		grid, err = tilemap.Load(mapFS, DefaultMap)
	} else {
		dir, name := filepath.Split(mapPath)
		if dir == "" {
			dir = "."
		}
		grid, err = tilemap.Load(os.DirFS(dir), name)
	}
	if err != nil {
		return nil, err
	}
	grid.TilledID = config.Farm.TilledTileID
	return grid, nil
}

// LoadTileset reads the tileset sheet. An empty path means no sheet and the
// level is drawn with flat colors.
func LoadTileset(imagePath string) (*ebiten.Image, error) {
	if imagePath == "" {
		return nil, nil
	}
	img, _, err := ebitenutil.NewImageFromFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("load tileset %s: %w", imagePath, err)
	}
	return img, nil
}
