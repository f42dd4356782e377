package assets

import (
	"path/filepath"
	"testing"

	"github.com/automoto/tilefarm/config"
)

func TestLoadMapEmbedded(t *testing.T) {
	grid, err := LoadMap("")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if grid.Width != 40 || grid.Height != 40 {
		t.Fatalf("size = %dx%d, want 40x40", grid.Width, grid.Height)
	}
	if grid.Spawn == nil {
		t.Fatal("embedded farm has no spawn")
	}
	sx, sy := int(grid.Spawn.X), int(grid.Spawn.Y)
	if grid.IsBlocked(sx, sy) {
		t.Errorf("spawn cell (%d,%d) is blocked", sx, sy)
	}

	tilled := 0
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.IsTillable(x, y) {
				tilled++
			}
		}
	}
	if tilled == 0 {
		t.Error("embedded farm has no tilled soil")
	}
	if !grid.IsBlocked(0, 0) {
		t.Error("fence corner should be blocked")
	}
}

func TestLoadMapMissingFile(t *testing.T) {
	if _, err := LoadMap(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for a missing map")
	}
}

func TestLoadTilesetEmptyPath(t *testing.T) {
	img, err := LoadTileset("")
	if err != nil || img != nil {
		t.Fatalf("LoadTileset(\"\") = %v, %v; want nil, nil", img, err)
	}
}

func TestLoadMapTilledOverride(t *testing.T) {
	prev := config.Farm.TilledTileID
	t.Cleanup(func() { config.Farm.TilledTileID = prev })

	config.Farm.TilledTileID = 2 // paths
	grid, err := LoadMap("")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}

	var path, soil bool
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			switch grid.TileIDAt(x, y) {
			case 2:
				path = true
				if !grid.IsTillable(x, y) {
					t.Fatalf("path tile (%d,%d) not tillable with tilled id 2", x, y)
				}
			case 4:
				soil = true
				if grid.IsTillable(x, y) {
					t.Fatalf("id 4 tile (%d,%d) still tillable after override", x, y)
				}
			}
		}
	}
	if !path || !soil {
		t.Fatalf("embedded farm lacks path (%v) or soil (%v) tiles", path, soil)
	}
}
