package gamemath

import "math"

// maxStep is the longest distance, in tiles, covered by one collision test.
// Keeping it under one tile stops long frames from skipping over walls.
const maxStep = 0.5

// Facing is the direction the player looks at.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// ParseFacing converts a saved direction name. Unknown names report false.
func ParseFacing(s string) (Facing, bool) {
	switch s {
	case "down":
		return FacingDown, true
	case "up":
		return FacingUp, true
	case "left":
		return FacingLeft, true
	case "right":
		return FacingRight, true
	}
	return FacingDown, false
}

// DominantFacing picks the facing for a movement intent. The larger axis
// wins and ties go to the horizontal axis. A zero vector reports false.
func DominantFacing(dx, dy float64) (Facing, bool) {
	switch {
	case dx == 0 && dy == 0:
		return FacingDown, false
	case math.Abs(dx) >= math.Abs(dy):
		if dx < 0 {
			return FacingLeft, true
		}
		return FacingRight, true
	case dy < 0:
		return FacingUp, true
	default:
		return FacingDown, true
	}
}

// Pose is the player's continuous position in tile units plus facing.
type Pose struct {
	X, Y   float64
	Facing Facing
}

// Tile returns the cell the pose occupies.
func (p Pose) Tile() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// Collider answers whether a tile cell can be entered.
type Collider interface {
	IsBlocked(tx, ty int) bool
}

// Mover integrates player movement against a tile collider.
type Mover struct {
	Speed     float64 // tiles per second
	Margin    float64 // lowest allowed coordinate
	FarMargin float64 // distance kept from the far edge
}

// Advance moves p along the direction (dx, dy) for dt seconds. The direction
// is normalised first so diagonals are as fast as straight moves. Each axis
// is resolved on its own, X first, which lets the player slide along walls.
// Facing changes even when both axes are blocked.
func (m Mover) Advance(c Collider, p *Pose, dx, dy, dt float64, worldW, worldH int) {
	f, ok := DominantFacing(dx, dy)
	if !ok {
		return
	}
	p.Facing = f

	l := math.Hypot(dx, dy)
	dx, dy = dx/l, dy/l
	if dt <= 0 {
		return
	}

	steps := int(math.Ceil(m.Speed * dt / maxStep))
	if steps < 1 {
		steps = 1
	}
	stepDt := dt / float64(steps)
	for i := 0; i < steps; i++ {
		m.step(c, p, dx, dy, stepDt, worldW, worldH)
	}
}

func (m Mover) step(c Collider, p *Pose, dx, dy, dt float64, worldW, worldH int) {
	loX, hiX := m.bounds(worldW)
	loY, hiY := m.bounds(worldH)

	nx := Clamp(p.X+dx*m.Speed*dt, loX, hiX)
	ny := Clamp(p.Y+dy*m.Speed*dt, loY, hiY)

	if !c.IsBlocked(int(math.Floor(nx)), int(math.Floor(p.Y))) {
		p.X = nx
	}
	if !c.IsBlocked(int(math.Floor(p.X)), int(math.Floor(ny))) {
		p.Y = ny
	}

	p.X = Clamp(p.X, loX, hiX)
	p.Y = Clamp(p.Y, loY, hiY)
}

// Place clamps p into the walkable area and reports whether it stands on a
// free tile.
func (m Mover) Place(c Collider, p Pose, worldW, worldH int) (Pose, bool) {
	loX, hiX := m.bounds(worldW)
	loY, hiY := m.bounds(worldH)
	p.X = Clamp(p.X, loX, hiX)
	p.Y = Clamp(p.Y, loY, hiY)
	return p, !c.IsBlocked(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// NearestFree moves p onto the closest free tile, searching square rings
// around its tile. The result sits on the tile origin and keeps p's facing.
// ok is false when the whole world is blocked.
func (m Mover) NearestFree(c Collider, p Pose, worldW, worldH int) (Pose, bool) {
	cx, cy := int(math.Floor(p.X)), int(math.Floor(p.Y))
	maxR := worldW
	if worldH > maxR {
		maxR = worldH
	}
	for r := 0; r <= maxR; r++ {
		best, found := Pose{}, false
		bestDist := math.Inf(1)
		for ty := cy - r; ty <= cy+r; ty++ {
			for tx := cx - r; tx <= cx+r; tx++ {
				if tx != cx-r && tx != cx+r && ty != cy-r && ty != cy+r {
					continue
				}
				cand, ok := m.Place(c, Pose{X: float64(tx), Y: float64(ty), Facing: p.Facing}, worldW, worldH)
				if !ok || math.Floor(cand.X) != float64(tx) || math.Floor(cand.Y) != float64(ty) {
					continue
				}
				if d := Distance(p.X, p.Y, cand.X, cand.Y); d < bestDist {
					best, bestDist, found = cand, d, true
				}
			}
		}
		if found {
			return best, true
		}
	}
	return p, false
}

func (m Mover) bounds(size int) (float64, float64) {
	lo := m.Margin
	hi := float64(size) - m.FarMargin
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Distance returns the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}
