// Package savedata encodes and decodes the farm save record and manages the
// keyed store it lives in.
package savedata

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/automoto/tilefarm/shared/farm"
	"github.com/automoto/tilefarm/shared/gamemath"
)

// State is everything a save record carries.
type State struct {
	Inventory farm.Inventory
	Player    gamemath.Pose
	Plots     *farm.Registry
}

// DefaultState is a fresh farm with the player at spawn.
func DefaultState(spawnX, spawnY float64) State {
	return State{
		Player: gamemath.Pose{X: spawnX, Y: spawnY, Facing: gamemath.FacingDown},
		Plots:  farm.NewRegistry(),
	}
}

type invRecord struct {
	Coins  int `json:"coins"`
	Carrot int `json:"carrot"`
}

type playerRecord struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Dir string  `json:"dir"`
}

type plotRecord struct {
	PlantedAt int64 `json:"plantedAt"`
	Stage     int   `json:"stage"`
}

type record struct {
	Inv    invRecord    `json:"inv"`
	Player playerRecord `json:"player"`
	Plots  [][2]any     `json:"plots"`
}

// Encode renders s in the save record format. Plots are written in row-major
// key order so identical states encode identically.
func Encode(s State) ([]byte, error) {
	if math.IsNaN(s.Player.X) || math.IsInf(s.Player.X, 0) || math.IsNaN(s.Player.Y) || math.IsInf(s.Player.Y, 0) {
		return nil, fmt.Errorf("encode save: player position (%v,%v) is not finite", s.Player.X, s.Player.Y)
	}

	rec := record{
		Inv:    invRecord{Coins: s.Inventory.Coins, Carrot: s.Inventory.Carrots},
		Player: playerRecord{X: s.Player.X, Y: s.Player.Y, Dir: s.Player.Facing.String()},
		Plots:  [][2]any{},
	}
	if s.Plots != nil {
		s.Plots.Each(func(k farm.Key, p *farm.Plot) {
			rec.Plots = append(rec.Plots, [2]any{k.String(), plotRecord{PlantedAt: p.PlantedAt, Stage: int(p.Stage)}})
		})
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}
