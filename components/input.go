package components

import (
	cfg "github.com/automoto/tilefarm/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerClick is a left click in screen pixels.
type PointerClick struct {
	X, Y int
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	// Click is set for the frame the left button went down.
	Click *PointerClick
	// PointerBlocked reports screen points owned by an overlay, such as the
	// HUD. Clicks there never reach the farm.
	PointerBlocked func(x, y int) bool
}

var Input = donburi.NewComponentType[InputData]()
