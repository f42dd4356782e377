package farm

// Advance recomputes every growing plot's stage from the wall clock. Stages
// are derived from elapsed time rather than incremented, so a long pause
// fast-forwards correctly and repeated calls with the same now are no-ops.
// A stage never moves backwards, even if the clock does.
func Advance(r *Registry, crop Crop, nowMs int64) {
	for _, p := range r.plots {
		if p.Stage >= StageReady {
			continue
		}
		if s := crop.StageAt(nowMs - p.PlantedAt); s > p.Stage {
			p.Stage = s
		}
	}
}
