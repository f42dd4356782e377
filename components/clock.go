package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the frame clock. Now is swapped out in tests.
type ClockData struct {
	Now  func() time.Time
	Last time.Time

	// Current frame
	Frame time.Time
	Dt    float64 // seconds since the previous frame
}

// NowMs returns the frame time in Unix milliseconds.
func (c *ClockData) NowMs() int64 {
	return c.Frame.UnixMilli()
}

var Clock = donburi.NewComponentType[ClockData]()
