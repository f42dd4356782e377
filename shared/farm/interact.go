package farm

import "github.com/automoto/tilefarm/shared/gamemath"

// DefaultRadius is the interaction reach in tiles.
const DefaultRadius = 2.2

// TileQuery is the part of the map the resolver reads.
type TileQuery interface {
	IsTillable(tx, ty int) bool
}

// Outcome is what a click did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlanted
	OutcomeHarvested
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlanted:
		return "planted"
	case OutcomeHarvested:
		return "harvested"
	}
	return "none"
}

// Changed reports whether the outcome mutated world state.
func (o Outcome) Changed() bool {
	return o != OutcomeNone
}

// InRange reports whether tile (tx, ty) is within radius of a player at
// (px, py). Both points are measured from their tile centres.
func InRange(px, py float64, tx, ty int, radius float64) bool {
	d := gamemath.Distance(px+0.5, py+0.5, float64(tx)+0.5, float64(ty)+0.5)
	return d <= radius
}

// Resolver applies plant and harvest clicks.
type Resolver struct {
	Grid   TileQuery
	Crop   Crop
	Radius float64
}

func (r Resolver) radius() float64 {
	if r.Radius <= 0 {
		return DefaultRadius
	}
	return r.Radius
}

// Resolve handles a click on tile (tx, ty). Untilled tiles, tiles out of
// reach and plots still growing are ignored. Callers should persist when the
// outcome is not OutcomeNone.
func (r Resolver) Resolve(reg *Registry, inv *Inventory, player gamemath.Pose, tx, ty int, nowMs int64) Outcome {
	if !r.Grid.IsTillable(tx, ty) {
		return OutcomeNone
	}
	if !InRange(player.X, player.Y, tx, ty, r.radius()) {
		return OutcomeNone
	}

	k := Key{X: tx, Y: ty}
	p := reg.Get(k)
	switch {
	case p == nil:
		reg.Plant(k, nowMs)
		return OutcomePlanted
	case p.Stage >= StageReady:
		inv.AddHarvest(r.Crop)
		reg.Remove(k)
		return OutcomeHarvested
	}
	return OutcomeNone
}
