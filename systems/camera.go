package systems

import (
	"github.com/automoto/tilefarm/components"
	"github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/gamemath"
	"github.com/automoto/tilefarm/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the viewport on the player, clamped to the map. It
// keeps no history: the offset is rebuilt from scratch every frame.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pose := components.Player.Get(playerEntry).Pose

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	grid := components.Level.Get(levelEntry).Grid
	if grid == nil {
		return
	}

	camera.Position.X, camera.Position.Y = gamemath.CameraOffset(
		pose.X, pose.Y,
		grid.Width, grid.Height,
		config.Tile.WorldPx(),
		config.C.Width, config.C.Height,
	)
}
