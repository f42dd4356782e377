package systems

import (
	"math"

	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/gamemath"
	"github.com/automoto/tilefarm/tags"
	"github.com/yohamta/donburi/ecs"
)

// maxMoveDt caps the seconds of movement applied in one frame. Frames after
// a suspend can be hours long.
const maxMoveDt = 0.25

// PlayerMover builds the movement controller from config.
func PlayerMover() gamemath.Mover {
	return gamemath.Mover{
		Speed:     cfg.Player.Speed,
		Margin:    cfg.Player.Margin,
		FarMargin: cfg.Player.FarMargin,
	}
}

// UpdatePlayer applies the held movement keys to the player for this
// frame's dt. Walls stop each axis separately so the player slides along
// them.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	collider := NewSpaceCollider(ecs)
	if collider == nil {
		return
	}
	clock := GetClock(ecs)
	input := getOrCreateInput(ecs)

	dx, dy := MoveIntent(input)
	player.Moving = dx != 0 || dy != 0
	if !player.Moving {
		return
	}

	grid := collider.Grid
	PlayerMover().Advance(collider, &player.Pose, dx, dy, math.Min(clock.Dt, maxMoveDt), grid.Width, grid.Height)
}
