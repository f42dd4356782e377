package systems

import (
	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/tilemap"
	"github.com/automoto/tilefarm/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// SpaceCollider answers tile collision queries from the resolv space. Cells
// off the map are always blocked.
type SpaceCollider struct {
	Grid  *tilemap.Grid
	Probe *resolv.Object
	Size  float64 // world pixels per tile
}

// IsBlocked reports whether a solid object occupies tile (tx, ty).
func (c *SpaceCollider) IsBlocked(tx, ty int) bool {
	if !c.Grid.InBounds(tx, ty) {
		return true
	}
	c.Probe.X = (float64(tx) + 0.5) * c.Size
	c.Probe.Y = (float64(ty) + 0.5) * c.Size
	c.Probe.Update()
	return c.Probe.Check(0, 0, tags.ResolvSolid) != nil
}

// NewSpaceCollider finds the level grid and the collision probe. It returns
// nil until both exist.
func NewSpaceCollider(ecs *ecs.ECS) *SpaceCollider {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvProbe) {
			return &SpaceCollider{
				Grid:  components.Level.Get(levelEntry).Grid,
				Probe: obj,
				Size:  float64(cfg.Tile.WorldPx()),
			}
		}
	}
	return nil
}
