package systems

import (
	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/farm"
	"github.com/automoto/tilefarm/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrowth recomputes every plot's stage from the frame time.
func UpdateGrowth(ecs *ecs.ECS) {
	farmEntry, ok := components.Farm.First(ecs.World)
	if !ok {
		return
	}
	f := components.Farm.Get(farmEntry)
	farm.Advance(f.Plots, f.Crop, GetClock(ecs).NowMs())
}

// UpdateHint refreshes what a click near the player would do.
func UpdateHint(ecs *ecs.ECS) {
	farmEntry, ok := components.Farm.First(ecs.World)
	if !ok {
		return
	}
	f := components.Farm.Get(farmEntry)
	f.HasHint = false

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	pose := components.Player.Get(playerEntry).Pose
	f.Hint, f.HasHint = farm.Hint(f.Resolver.Grid, f.Plots, pose, cfg.Farm.InteractRange, cfg.Farm.HintScan)
}

// GetFarm returns the farm state, if the scene has one.
func GetFarm(ecs *ecs.ECS) (*components.FarmData, bool) {
	farmEntry, ok := components.Farm.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Farm.Get(farmEntry), true
}
