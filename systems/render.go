package systems

import (
	"image/color"

	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/farm"
	"github.com/automoto/tilefarm/shared/gamemath"
	"github.com/automoto/tilefarm/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	leafDark    = color.RGBA{R: 47, G: 207, B: 98, A: 255}
	leafLight   = color.RGBA{R: 124, G: 255, B: 176, A: 255}
	carrotLeaf  = color.RGBA{R: 54, G: 216, B: 108, A: 255}
	carrotRoot  = color.RGBA{R: 255, G: 122, B: 47, A: 255}
	carrotTip   = color.RGBA{R: 216, G: 94, B: 34, A: 255}
	seedColor   = color.RGBA{R: 43, G: 29, B: 20, A: 255}
	readyGlow   = color.RGBA{R: 124, G: 245, B: 182, A: 90}
	plotShade   = color.RGBA{R: 0, G: 0, B: 0, A: 20}
	shadowColor = color.RGBA{R: 0, G: 0, B: 0, A: 64}
	skinColor   = color.RGBA{R: 241, G: 199, B: 166, A: 255}
	hairColor   = color.RGBA{R: 42, G: 31, B: 26, A: 255}
	shirtColor  = color.RGBA{R: 58, G: 160, B: 255, A: 255}
	pantsColor  = color.RGBA{R: 43, G: 58, B: 85, A: 255}
	noseColor   = color.RGBA{R: 230, G: 180, B: 147, A: 255}
)

// screenRect fills a rectangle given in 64px sprite units relative to a
// tile's screen origin, so sprites scale with the tile size.
func screenRect(screen *ebiten.Image, ox, oy float64, x, y, w, h float64, c color.Color) {
	k := float64(cfg.Tile.WorldPx()) / 64
	vector.FillRect(screen, float32(ox+x*k), float32(oy+y*k), float32(w*k), float32(h*k), c, false)
}

// DrawPlots draws the crop on every visible planted tile.
func DrawPlots(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	farmEntry, ok := components.Farm.First(ecs.World)
	if !ok {
		return
	}
	plots := components.Farm.Get(farmEntry).Plots

	px := float64(cfg.Tile.WorldPx())
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	plots.Each(func(k farm.Key, p *farm.Plot) {
		if !tileOnScreen(k.X, k.Y, camera.Position.X, camera.Position.Y, width, height) {
			return
		}
		ox, oy := gamemath.WorldToScreen(float64(k.X)*px, float64(k.Y)*px, camera.Position.X, camera.Position.Y)
		drawCrop(screen, ox, oy, p.Stage)
	})
}

func drawCrop(screen *ebiten.Image, ox, oy float64, stage farm.Stage) {
	screenRect(screen, ox, oy, 6, 6, 52, 52, plotShade)

	switch stage {
	case farm.StageSeed:
		screenRect(screen, ox, oy, 30, 44, 8, 6, seedColor)
	case farm.StageSprout:
		screenRect(screen, ox, oy, 32, 38, 6, 10, leafDark)
		screenRect(screen, ox, oy, 31, 36, 8, 3, leafLight)
	case farm.StageGrowing:
		screenRect(screen, ox, oy, 26, 30, 20, 18, leafDark)
		screenRect(screen, ox, oy, 28, 28, 16, 4, leafLight)
	case farm.StageReady:
		screenRect(screen, ox, oy, 26, 24, 20, 10, carrotLeaf)
		screenRect(screen, ox, oy, 32, 34, 8, 22, carrotRoot)
		screenRect(screen, ox, oy, 32, 52, 8, 4, carrotTip)
		screenRect(screen, ox, oy, 10, 10, 10, 10, readyGlow)
	}
}

// DrawPlayer draws the placeholder farmer with a nose showing facing.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	pose := components.Player.Get(playerEntry).Pose

	px := float64(cfg.Tile.WorldPx())
	ox, oy := gamemath.WorldToScreen(pose.X*px, pose.Y*px, camera.Position.X, camera.Position.Y)

	screenRect(screen, ox, oy, 12, 44, 40, 10, shadowColor)
	screenRect(screen, ox, oy, 22, 12, 20, 20, skinColor)
	screenRect(screen, ox, oy, 22, 10, 20, 6, hairColor)
	screenRect(screen, ox, oy, 18, 32, 28, 20, shirtColor)
	screenRect(screen, ox, oy, 18, 52, 28, 12, pantsColor)

	switch pose.Facing {
	case gamemath.FacingLeft:
		screenRect(screen, ox, oy, 18, 24, 4, 4, noseColor)
	case gamemath.FacingRight:
		screenRect(screen, ox, oy, 42, 24, 4, 4, noseColor)
	case gamemath.FacingUp:
		screenRect(screen, ox, oy, 30, 12, 4, 4, noseColor)
	default:
		screenRect(screen, ox, oy, 30, 32, 4, 4, noseColor)
	}
}

// tileOnScreen reports whether any part of tile (tx, ty) is visible.
func tileOnScreen(tx, ty int, camX, camY float64, width, height int) bool {
	px := float64(cfg.Tile.WorldPx())
	x := float64(tx)*px - camX
	y := float64(ty)*px - camY
	return x+px > 0 && y+px > 0 && x < float64(width) && y < float64(height)
}
