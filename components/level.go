package components

import (
	"github.com/automoto/tilefarm/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Grid    *tilemap.Grid
	Tileset *ebiten.Image // nil draws the placeholder palette
}

var Level = donburi.NewComponentType[LevelData]()
