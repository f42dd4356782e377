package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every scene.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 // tiles per second

	// Hitbox half-extents in tiles
	HitboxW float64
	HitboxH float64

	// Position clamp: [Margin, size-FarMargin] on both axes
	Margin    float64
	FarMargin float64

	// Spawn used when the map does not define one
	SpawnX float64
	SpawnY float64
}

// CropConfig describes the single crop species
type CropConfig struct {
	Name string

	// Milliseconds per transition, indexed by the stage being left:
	// [1] seed->sprout, [2] sprout->growing, [3] growing->ready. [0] is unused.
	StageMs [4]int64

	HarvestCarrots int
	HarvestCoins   int
}

// FarmConfig contains tile ids and interaction tuning
type FarmConfig struct {
	TilledTileID  int
	InteractRange float64 // tiles, player centre to target tile centre
	HintScan      int     // tiles scanned around the player for the hint
}

// SaveConfig contains persistence configuration
type SaveConfig struct {
	AppName          string
	Key              string
	AutosaveInterval time.Duration
	StatusFlash      time.Duration
}

// TileConfig describes the tileset and its on-screen scale
type TileConfig struct {
	Size  int // source tile size in pixels
	Scale int // world tile = Size * Scale
}

// WorldPx returns the on-screen size of a single tile
func (t TileConfig) WorldPx() int {
	return t.Size * t.Scale
}

// HUDConfig contains HUD colors and layout
type HUDConfig struct {
	Margin        float64
	HintBgColor   color.RGBA
	HintTextColor color.RGBA
	StatusOK      color.RGBA
	StatusErr     color.RGBA
	BorderColor   color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool // Skip menu and go directly to the farm
	Hitboxes  bool // Draw the collision space
	MapPath   string
	Tileset   string
	Overrides string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Crop CropConfig
var Farm FarmConfig
var Save SaveConfig
var Tile TileConfig
var HUD HUDConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 124, G: 245, B: 182, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Tile = TileConfig{
		Size:  16,
		Scale: 4, // chunky pixel look
	}

	Player = PlayerConfig{
		Speed:     4.0,
		HitboxW:   0.55,
		HitboxH:   0.55,
		Margin:    0.2,
		FarMargin: 1.2,
		SpawnX:    18,
		SpawnY:    35,
	}

	Crop = CropConfig{
		Name:           "carrot",
		StageMs:        [4]int64{0, 6000, 7000, 8000},
		HarvestCarrots: 1,
		HarvestCoins:   2,
	}

	Farm = FarmConfig{
		TilledTileID:  4,
		InteractRange: 2.2,
		HintScan:      2,
	}

	Save = SaveConfig{
		AppName:          "tilefarm",
		Key:              "stardew_like_save_v1",
		AutosaveInterval: 5 * time.Second,
		StatusFlash:      800 * time.Millisecond,
	}

	HUD = HUDConfig{
		Margin:        16,
		HintBgColor:   BlackOverlay,
		HintTextColor: color.RGBA{R: 233, G: 238, B: 255, A: 255},
		StatusOK:      LightGreen,
		StatusErr:     LightRed,
		BorderColor:   color.RGBA{R: 255, G: 255, B: 255, A: 20},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 22, G: 40, B: 24, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            200,
		MenuStartY:        280,
		MenuItemHeight:    40,
		MenuItemGap:       16,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Hitboxes: false,
	}
}
