package factory

import (
	"github.com/automoto/tilefarm/archetypes"
	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/tilemap"
	"github.com/automoto/tilefarm/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space for grid with one cell per tile and
// fills it with a wall for every blocked tile.
func CreateSpace(ecs *ecs.ECS, grid *tilemap.Grid) *donburi.Entry {
	px := cfg.Tile.WorldPx()

	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(grid.Width*px, grid.Height*px, px, px)
	components.Space.Set(space, spaceData)

	// A one pixel probe is moved to the centre of any tile being queried.
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	spaceData.Add(probe)

	for _, c := range grid.BlockedCells() {
		CreateWall(ecs, c.X, c.Y)
	}
	return space
}
