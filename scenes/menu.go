package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/tilemap"
	"github.com/automoto/tilefarm/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	grid         *tilemap.Grid
	tileset      *ebiten.Image
	once         sync.Once
}

// NewMenuScene creates a new menu scene. The farm it starts is played on
// grid.
func NewMenuScene(sc SceneChanger, grid *tilemap.Grid, tileset *ebiten.Image) *MenuScene {
	return &MenuScene{sceneChanger: sc, grid: grid, tileset: tileset}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createFarmScene := func() interface{} {
		return NewFarmScene(ms.sceneChanger, ms.grid, ms.tileset)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createFarmScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
