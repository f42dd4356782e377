package systems

import (
	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hintPadX   = 9
	hintHeight = 30
)

// DrawHint shows what a click would do on the nearest tilled tile in reach.
func DrawHint(ecs *ecs.ECS, screen *ebiten.Image) {
	farmEntry, ok := components.Farm.First(ecs.World)
	if !ok {
		return
	}
	f := components.Farm.Get(farmEntry)
	if !f.HasHint {
		return
	}

	face := fonts.Body.Get()
	msg := f.Hint.Text
	bounds := text.BoundString(face, msg)

	x := float32(cfg.HUD.Margin)
	y := float32(cfg.HUD.Margin)
	vector.FillRect(screen, x, y, float32(bounds.Dx()+2*hintPadX), hintHeight, cfg.HUD.HintBgColor, false)
	text.Draw(screen, msg, face, int(x)+hintPadX, int(y)+22, cfg.HUD.HintTextColor)
}
