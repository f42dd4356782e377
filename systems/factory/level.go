package factory

import (
	"github.com/automoto/tilefarm/archetypes"
	"github.com/automoto/tilefarm/components"
	"github.com/automoto/tilefarm/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the loaded map. The grid is never modified afterwards.
func CreateLevel(ecs *ecs.ECS, grid *tilemap.Grid, tileset *ebiten.Image) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Grid:    grid,
		Tileset: tileset,
	})
	return level
}
