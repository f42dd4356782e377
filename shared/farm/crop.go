// Package farm holds the crop state machine, the plot registry and the
// plant/harvest rules. Times are Unix milliseconds.
package farm

// Stage is a plot's growth phase. An empty tile has no plot at all.
type Stage int

const (
	StageSeed Stage = iota + 1
	StageSprout
	StageGrowing
	StageReady
)

func (s Stage) String() string {
	switch s {
	case StageSeed:
		return "seed"
	case StageSprout:
		return "sprout"
	case StageGrowing:
		return "growing"
	case StageReady:
		return "ready"
	}
	return "unknown"
}

// Valid reports whether s is one of the four growth stages.
func (s Stage) Valid() bool {
	return s >= StageSeed && s <= StageReady
}

// Crop is a species definition.
type Crop struct {
	Name string
	// StageMs[i] is how long stage i lasts before the next one. [0] is unused.
	StageMs      [4]int64
	YieldCarrots int
	YieldCoins   int
}

// ReadyAfter is the elapsed time at which a plot becomes harvestable.
func (c Crop) ReadyAfter() int64 {
	return c.StageMs[1] + c.StageMs[2] + c.StageMs[3]
}

// StageAt returns the stage reached after elapsedMs. It is monotonic in
// elapsedMs and saturates at StageReady.
func (c Crop) StageAt(elapsedMs int64) Stage {
	t1 := c.StageMs[1]
	t2 := t1 + c.StageMs[2]
	t3 := t2 + c.StageMs[3]

	switch {
	case elapsedMs < t1:
		return StageSeed
	case elapsedMs < t2:
		return StageSprout
	case elapsedMs < t3:
		return StageGrowing
	default:
		return StageReady
	}
}
