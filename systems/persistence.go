package systems

import (
	"log"

	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/farm"
	"github.com/automoto/tilefarm/shared/gamemath"
	"github.com/automoto/tilefarm/shared/savedata"
	"github.com/automoto/tilefarm/shared/tilemap"
	"github.com/automoto/tilefarm/systems/factory"
	"github.com/automoto/tilefarm/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var farmSaves *savedata.Manager

// InitPersistence sets the store every farm save goes to.
func InitPersistence(store savedata.Store) {
	farmSaves = &savedata.Manager{Store: store, Key: cfg.Save.Key}
}

// Saves returns the save manager, or nil before InitPersistence.
func Saves() *savedata.Manager {
	return farmSaves
}

// HasSaveGame returns true if a farm save exists
func HasSaveGame() bool {
	return farmSaves != nil && farmSaves.Exists()
}

// ClearFarm erases the saved farm.
func ClearFarm() error {
	if farmSaves == nil {
		return nil
	}
	if err := farmSaves.Reset(); err != nil {
		log.Printf("Warning: Could not clear farm save: %v", err)
		return err
	}
	return nil
}

// SpawnPose is where a new farmer starts on grid. A spawn on a blocked tile
// moves to the nearest free one.
func SpawnPose(grid *tilemap.Grid) gamemath.Pose {
	p := gamemath.Pose{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY}
	if grid == nil {
		return p
	}
	if grid.Spawn != nil {
		p = gamemath.Pose{X: grid.Spawn.X, Y: grid.Spawn.Y}
	}

	mover := PlayerMover()
	placed, free := mover.Place(grid, p, grid.Width, grid.Height)
	if free {
		return placed
	}
	moved, ok := mover.NearestFree(grid, placed, grid.Width, grid.Height)
	if !ok {
		log.Printf("Warning: map has no free tile for the spawn at (%.2f,%.2f)", p.X, p.Y)
		return placed
	}
	log.Printf("Warning: spawn (%.2f,%.2f) is blocked, using (%.2f,%.2f)", p.X, p.Y, moved.X, moved.Y)
	return moved
}

// LoadFarm reads the saved farm, falling back to a fresh one at the map
// spawn. A saved position is clamped to the map, and one that lands on a
// blocked tile is replaced by the spawn.
func LoadFarm(grid *tilemap.Grid) savedata.State {
	spawn := SpawnPose(grid)
	defaults := savedata.DefaultState(spawn.X, spawn.Y)
	if farmSaves == nil {
		return defaults
	}
	s, _ := farmSaves.Load(defaults)
	if grid == nil {
		return s
	}

	placed, free := PlayerMover().Place(grid, s.Player, grid.Width, grid.Height)
	if !free {
		log.Printf("Warning: saved position (%.2f,%.2f) is blocked, moving the player to spawn", s.Player.X, s.Player.Y)
		placed = spawn
	}
	s.Player = placed
	return s
}

// CurrentState collects the farm's saveable state from the world.
func CurrentState(ecs *ecs.ECS) (savedata.State, bool) {
	farmEntry, ok := components.Farm.First(ecs.World)
	if !ok {
		return savedata.State{}, false
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return savedata.State{}, false
	}
	f := components.Farm.Get(farmEntry)
	return savedata.State{
		Inventory: f.Inventory,
		Player:    components.Player.Get(playerEntry).Pose,
		Plots:     f.Plots,
	}, true
}

// SaveFarm writes the farm now and flashes the status indicator. A failed
// write is reported on the HUD only; the next autosave retries.
func SaveFarm(ecs *ecs.ECS) {
	status := getOrCreateSaveStatus(ecs)
	status.LastSave = GetClock(ecs).Frame

	s, ok := CurrentState(ecs)
	if !ok || farmSaves == nil {
		return
	}
	if err := farmSaves.Save(s); err != nil {
		log.Printf("Warning: Could not save farm: %v", err)
		setSaveStatus(status, "ERR", true)
		return
	}
	setSaveStatus(status, "OK", false)
}

func setSaveStatus(status *components.SaveStatusData, text string, failed bool) {
	status.Text = text
	status.Failed = failed
	status.Flash = gween.New(1, 0, float32(cfg.Save.StatusFlash.Seconds()), ease.OutQuad)
	status.FlashAlpha = 1
}

// UpdateAutosave saves whenever the autosave interval has passed on the
// wall clock, however many frames that took.
func UpdateAutosave(ecs *ecs.ECS) {
	status := getOrCreateSaveStatus(ecs)
	now := GetClock(ecs).Frame
	if now.Sub(status.LastSave) < cfg.Save.AutosaveInterval {
		return
	}
	SaveFarm(ecs)
}

// UpdateSaveStatus fades the save flash. When it ends the indicator reads
// "OK" again, even after a failure.
func UpdateSaveStatus(ecs *ecs.ECS) {
	status := getOrCreateSaveStatus(ecs)
	if status.Flash == nil {
		return
	}
	alpha, finished := status.Flash.Update(float32(GetClock(ecs).Dt))
	status.FlashAlpha = alpha
	if finished {
		status.Flash = nil
		status.FlashAlpha = 0
		status.Text = "OK"
		status.Failed = false
	}
}

// RequestReset asks UpdateReset to wipe the farm on the next frame.
func RequestReset(ecs *ecs.ECS) {
	getOrCreateSaveStatus(ecs).ResetRequested = true
}

// UpdateReset wipes the farm when the reset key is pressed or the HUD asked
// for it.
func UpdateReset(ecs *ecs.ECS) {
	status := getOrCreateSaveStatus(ecs)
	input := getOrCreateInput(ecs)
	if !status.ResetRequested && !GetAction(input, cfg.ActionReset).JustPressed {
		return
	}
	status.ResetRequested = false
	ResetFarm(ecs)
}

// ResetFarm erases the save and puts the world back to a fresh farm: player
// at spawn, no plots, empty inventory. Resetting twice is the same as once.
func ResetFarm(ecs *ecs.ECS) {
	_ = ClearFarm()

	var grid *tilemap.Grid
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		grid = components.Level.Get(levelEntry).Grid
	}

	if farmEntry, ok := components.Farm.First(ecs.World); ok {
		f := components.Farm.Get(farmEntry)
		f.Plots.Clear()
		f.Inventory = farm.Inventory{}
		f.HasHint = false
	}
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		player.Pose = SpawnPose(grid)
		player.Moving = false
	}

	status := getOrCreateSaveStatus(ecs)
	status.LastSave = GetClock(ecs).Frame
	status.Text = "OK"
	status.Failed = false
	status.Flash = nil
	status.FlashAlpha = 0
}

func getOrCreateSaveStatus(ecs *ecs.ECS) *components.SaveStatusData {
	entry, ok := components.SaveStatus.First(ecs.World)
	if !ok {
		entry = factory.CreateSaveStatus(ecs, GetClock(ecs).Frame)
	}
	return components.SaveStatus.Get(entry)
}

// GetSaveStatus returns the save indicator state for the HUD.
func GetSaveStatus(ecs *ecs.ECS) *components.SaveStatusData {
	return getOrCreateSaveStatus(ecs)
}
