package systems

import (
	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/gamemath"
	"github.com/automoto/tilefarm/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteraction turns this frame's click into a plant or harvest. The
// click is mapped to a tile with the camera of the frame it was seen on,
// which is the previous frame's offset since UpdateCamera runs later.
func UpdateInteraction(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	click := input.Click
	if click == nil {
		return
	}
	input.Click = nil

	farmEntry, ok := components.Farm.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	f := components.Farm.Get(farmEntry)
	pose := components.Player.Get(playerEntry).Pose
	camera := components.Camera.Get(cameraEntry)

	tx, ty := gamemath.ScreenToTile(float64(click.X), float64(click.Y), camera.Position.X, camera.Position.Y, cfg.Tile.WorldPx())
	outcome := f.Resolver.Resolve(f.Plots, &f.Inventory, pose, tx, ty, GetClock(ecs).NowMs())
	if outcome.Changed() {
		SaveFarm(ecs)
	}
}
