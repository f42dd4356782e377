package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a body in the collision space, in world pixels.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the level's collision space. Blocked tiles live here as solid
// objects one cell each.
var Space = donburi.NewComponentType[resolv.Space]()
