package components

import (
	"github.com/automoto/tilefarm/shared/farm"
	"github.com/yohamta/donburi"
)

// FarmData is the mutable farm: planted tiles and the player's inventory.
type FarmData struct {
	Plots     *farm.Registry
	Inventory farm.Inventory
	Crop      farm.Crop
	Resolver  farm.Resolver

	// Hint is what a click near the player would do, refreshed each frame.
	Hint    farm.HintInfo
	HasHint bool
}

var Farm = donburi.NewComponentType[FarmData]()
