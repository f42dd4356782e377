package gamemath

import "math"

// CameraOffset returns the top-left pixel of the viewport. The viewport is
// centred on the player's tile and clamped so it never shows outside the
// world; a world smaller than the viewport pins the offset at 0.
func CameraOffset(px, py float64, worldW, worldH, tilePx, viewW, viewH int) (float64, float64) {
	t := float64(tilePx)
	targetX := px*t - float64(viewW)/2 + t/2
	targetY := py*t - float64(viewH)/2 + t/2

	x := Clamp(targetX, 0, math.Max(0, float64(worldW*tilePx-viewW)))
	y := Clamp(targetY, 0, math.Max(0, float64(worldH*tilePx-viewH)))
	return x, y
}

// ScreenToTile converts a screen pixel to the tile under it.
func ScreenToTile(sx, sy, camX, camY float64, tilePx int) (int, int) {
	t := float64(tilePx)
	return int(math.Floor((sx + camX) / t)), int(math.Floor((sy + camY) / t))
}

// WorldToScreen converts a world pixel to a whole screen pixel.
func WorldToScreen(wx, wy, camX, camY float64) (float64, float64) {
	return math.Floor(wx - camX), math.Floor(wy - camY)
}
