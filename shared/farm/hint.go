package farm

import (
	"math"

	"github.com/automoto/tilefarm/shared/gamemath"
)

const (
	HintPlant   = "Click: plant"
	HintHarvest = "Click: harvest"
	HintGrowing = "Growing..."
)

// HintInfo describes the nearest interactive tile.
type HintInfo struct {
	Key  Key
	Text string
}

// Hint finds the closest tillable tile within reach of the player, scanning
// scan tiles around the player's cell, and describes what a click on it
// would do.
func Hint(grid TileQuery, reg *Registry, player gamemath.Pose, radius float64, scan int) (HintInfo, bool) {
	if radius <= 0 {
		radius = DefaultRadius
	}
	cx, cy := player.Tile()

	best := math.Inf(1)
	var found HintInfo
	ok := false
	for y := cy - scan; y <= cy+scan; y++ {
		for x := cx - scan; x <= cx+scan; x++ {
			if !grid.IsTillable(x, y) || !InRange(player.X, player.Y, x, y, radius) {
				continue
			}
			d := gamemath.Distance(player.X+0.5, player.Y+0.5, float64(x)+0.5, float64(y)+0.5)
			if d >= best {
				continue
			}
			best = d
			found = HintInfo{Key: Key{X: x, Y: y}, Text: hintText(reg.Get(Key{X: x, Y: y}))}
			ok = true
		}
	}
	return found, ok
}

func hintText(p *Plot) string {
	switch {
	case p == nil:
		return HintPlant
	case p.Stage >= StageReady:
		return HintHarvest
	default:
		return HintGrowing
	}
}
