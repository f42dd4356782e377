package components

import (
	"github.com/automoto/tilefarm/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Pose   gamemath.Pose // tile units
	Moving bool          // movement was requested this frame
}

var Player = donburi.NewComponentType[PlayerData]()
