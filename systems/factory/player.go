package factory

import (
	"github.com/automoto/tilefarm/archetypes"
	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/gamemath"
	"github.com/automoto/tilefarm/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the farmer at pose (tile units).
func CreatePlayer(ecs *ecs.ECS, pose gamemath.Pose) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := PlayerBodySize()
	x, y := PlayerBodyPosition(pose)
	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{Pose: pose})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return player
}

// PlayerBodySize is the collision box in world pixels.
func PlayerBodySize() (float64, float64) {
	px := float64(cfg.Tile.WorldPx())
	return cfg.Player.HitboxW * px, cfg.Player.HitboxH * px
}

// PlayerBodyPosition centres the body inside the tile-sized sprite drawn at
// pose.
func PlayerBodyPosition(pose gamemath.Pose) (float64, float64) {
	px := float64(cfg.Tile.WorldPx())
	w, h := PlayerBodySize()
	return pose.X*px + (px-w)/2, pose.Y*px + (px-h)/2
}
