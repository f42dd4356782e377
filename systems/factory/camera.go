package factory

import (
	"github.com/automoto/tilefarm/archetypes"
	"github.com/automoto/tilefarm/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
