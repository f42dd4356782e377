package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/tilemap"
	"github.com/automoto/tilefarm/systems"
	"github.com/automoto/tilefarm/systems/factory"
	"github.com/automoto/tilefarm/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FarmScene runs the farm simulation on one map.
type FarmScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	grid         *tilemap.Grid
	tileset      *ebiten.Image
	hud          *ui.HudUI
	once         sync.Once
}

// NewFarmScene creates the farm scene. tileset may be nil.
func NewFarmScene(sc SceneChanger, grid *tilemap.Grid, tileset *ebiten.Image) *FarmScene {
	return &FarmScene{sceneChanger: sc, grid: grid, tileset: tileset}
}

func (fs *FarmScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()

	if f, ok := systems.GetFarm(fs.ecs); ok {
		status := systems.GetSaveStatus(fs.ecs)
		fs.hud.Refresh(f.Inventory.Coins, f.Inventory.Carrots, status.Text)
	}
	fs.hud.Update()
}

func (fs *FarmScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)

	status := systems.GetSaveStatus(fs.ecs)
	fs.hud.Draw(screen, status.FlashAlpha, status.Failed)
}

func (fs *FarmScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdateInteraction)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateGrowth)
	e.AddSystem(systems.UpdateHint)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateAutosave)
	e.AddSystem(systems.UpdateSaveStatus)
	e.AddSystem(systems.UpdateReset)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlots)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHint)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	fs.ecs = e
	fs.hud = ui.NewHudUI(func() {
		systems.RequestReset(fs.ecs)
	})

	BuildFarm(e, fs.grid, fs.tileset, time.Now)

	systems.GetInput(e).PointerBlocked = fs.hud.Contains
}

// BuildFarm creates the farm entities from the saved state and writes the
// first save. now is the wall clock the simulation reads.
func BuildFarm(e *ecs.ECS, grid *tilemap.Grid, tileset *ebiten.Image, now func() time.Time) {
	clock := factory.CreateClock(e, now)
	factory.CreateLevel(e, grid, tileset)
	factory.CreateSpace(e, grid)
	factory.CreateCamera(e)

	state := systems.LoadFarm(grid)
	factory.CreatePlayer(e, state.Player)
	factory.CreateFarm(e, grid, state.Plots, state.Inventory)
	factory.CreateSaveStatus(e, components.Clock.Get(clock).Frame)

	systems.UpdateGrowth(e)
	systems.UpdateCamera(e)
	systems.SaveFarm(e)
}

// Close writes a final save before the window goes away.
func (fs *FarmScene) Close() {
	if fs.ecs == nil {
		return
	}
	systems.SaveFarm(fs.ecs)
}
