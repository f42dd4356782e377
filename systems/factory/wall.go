package factory

import (
	"github.com/automoto/tilefarm/archetypes"
	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid tile at (tx, ty).
func CreateWall(ecs *ecs.ECS, tx, ty int) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	size := float64(cfg.Tile.WorldPx())
	obj := resolv.NewObject(float64(tx)*size, float64(ty)*size, size, size, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
