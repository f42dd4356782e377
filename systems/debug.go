package systems

import (
	"image/color"

	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Hitboxes})
	}
	return components.Settings.Get(entry)
}

// UpdateDebug toggles the collision overlay.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	viewX, viewY := camera.Position.X, camera.Position.Y
	viewW, viewH := float64(width), float64(height)

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
			continue
		}

		x := obj.X - viewX
		y := obj.Y - viewY

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}

	// Hint target
	farmEntry, ok := components.Farm.First(ecs.World)
	if !ok {
		return
	}
	f := components.Farm.Get(farmEntry)
	if f.HasHint {
		px := float64(cfg.Tile.WorldPx())
		hx := float64(f.Hint.Key.X)*px - viewX
		hy := float64(f.Hint.Key.Y)*px - viewY
		vector.StrokeRect(screen, float32(hx), float32(hy), float32(px), float32(px), 2, color.RGBA{255, 255, 0, 255}, false)
	}
}
