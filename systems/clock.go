package systems

import (
	"time"

	"github.com/automoto/tilefarm/components"
	"github.com/automoto/tilefarm/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock samples the wall clock once per frame. Every later system in
// the frame sees the same time.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	clock.Frame = clock.Now()
	dt := clock.Frame.Sub(clock.Last).Seconds()
	if dt < 0 {
		dt = 0
	}
	clock.Dt = dt
	clock.Last = clock.Frame
}

// GetClock returns the frame clock, creating one on the wall clock if the
// scene did not.
func GetClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = factory.CreateClock(ecs, time.Now)
	}
	return components.Clock.Get(entry)
}
