package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tilefarm/assets"
	"github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/fonts"
	"github.com/automoto/tilefarm/scenes"
	"github.com/automoto/tilefarm/shared/savedata"
	"github.com/automoto/tilefarm/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// closer is implemented by scenes that hold state worth saving on exit.
type closer interface {
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	grid, err := assets.LoadMap(config.Debug.MapPath)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	tileset, err := assets.LoadTileset(config.Debug.Tileset)
	if err != nil {
		log.Printf("Warning: %v, drawing flat tiles", err)
		tileset = nil
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewFarmScene(g, grid, tileset)
	} else {
		g.scene = scenes.NewMenuScene(g, grid, tileset)
	}

	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if c, ok := g.scene.(closer); ok {
			c.Close()
		}
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	overrides := flag.String("config", "", "YAML file with tuning overrides")
	flag.StringVar(&config.Debug.MapPath, "map", "", "Map file (.json or .tmx); empty uses the built-in farm")
	flag.StringVar(&config.Debug.Tileset, "tileset", "", "Tileset image; empty draws flat colors")
	flag.BoolVar(&config.Debug.Hitboxes, "debug", false, "Draw the collision space")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Start on the farm")
	flag.Parse()

	config.Debug.Overrides = *overrides
	if err := config.LoadOverrides(*overrides); err != nil {
		log.Fatalf("Failed to load config overrides: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Tile Farm")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)

	systems.InitPersistence(savedata.OpenStore(config.Save.AppName))

	if err := ebiten.RunGame(NewGame()); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
