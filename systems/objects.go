package systems

import (
	"github.com/automoto/tilefarm/components"
	"github.com/automoto/tilefarm/systems/factory"
	"github.com/automoto/tilefarm/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves the player's collision body to its pose. Walls never
// move, so only player bodies are re-celled.
func UpdateObjects(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)
		obj.X, obj.Y = factory.PlayerBodyPosition(player.Pose)
		obj.Update()
	})
}
