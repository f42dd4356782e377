package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SaveStatusData tracks autosave timing and the HUD save indicator.
type SaveStatusData struct {
	LastSave time.Time
	Text     string // "OK" or "ERR"
	Failed   bool

	// Flash fades the indicator after each save; nil when idle.
	Flash      *gween.Tween
	FlashAlpha float32

	// ResetRequested is set by the HUD button and consumed by UpdateReset.
	ResetRequested bool
}

var SaveStatus = donburi.NewComponentType[SaveStatusData]()
