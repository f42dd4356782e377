package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Placeholder colors per tile id, used when no tileset image is loaded.
var tilePalette = map[int]color.RGBA{
	0: {R: 86, G: 160, B: 74, A: 255},   // grass
	1: {R: 96, G: 172, B: 80, A: 255},   // flowers
	2: {R: 196, G: 170, B: 118, A: 255}, // path
	3: {R: 58, G: 120, B: 200, A: 255},  // water
	4: {R: 122, G: 84, B: 52, A: 255},   // tilled soil
	5: {R: 140, G: 104, B: 64, A: 255},  // fence
	6: {R: 40, G: 96, B: 44, A: 255},    // tree
}

var levelDrawOp = &ebiten.DrawImageOptions{}

// DrawLevel draws the tiles under the viewport.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	grid := level.Grid
	if grid == nil {
		return
	}

	px := cfg.Tile.WorldPx()
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	firstX := int(math.Floor(camera.Position.X / float64(px)))
	firstY := int(math.Floor(camera.Position.Y / float64(px)))
	across := width/px + 2
	down := height/px + 2

	for ty := firstY; ty < firstY+down; ty++ {
		for tx := firstX; tx < firstX+across; tx++ {
			if !grid.InBounds(tx, ty) {
				continue
			}
			id := grid.TileIDAt(tx, ty)
			sx := math.Floor(float64(tx*px) - camera.Position.X)
			sy := math.Floor(float64(ty*px) - camera.Position.Y)

			if level.Tileset != nil {
				src := level.Tileset.SubImage(grid.SourceRect(id, cfg.Tile.Size)).(*ebiten.Image)
				levelDrawOp.GeoM.Reset()
				levelDrawOp.GeoM.Scale(float64(cfg.Tile.Scale), float64(cfg.Tile.Scale))
				levelDrawOp.GeoM.Translate(sx, sy)
				screen.DrawImage(src, levelDrawOp)
				continue
			}

			c, ok := tilePalette[id]
			if !ok {
				c = tilePalette[0]
			}
			vector.FillRect(screen, float32(sx), float32(sy), float32(px), float32(px), c, false)
			if id == grid.TilledID {
				drawFurrows(screen, float32(sx), float32(sy), float32(px))
			}
		}
	}

	// Border
	vector.StrokeRect(screen, 0.5, 0.5, float32(width)-1, float32(height)-1, 1, cfg.HUD.BorderColor, false)
}

func drawFurrows(screen *ebiten.Image, x, y, size float32) {
	furrow := color.RGBA{R: 98, G: 66, B: 40, A: 255}
	for i := float32(1); i < 4; i++ {
		vector.FillRect(screen, x+4, y+size*i/4-2, size-8, 3, furrow, false)
	}
}
