package factory

import (
	"time"

	"github.com/automoto/tilefarm/archetypes"
	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/farm"
	"github.com/automoto/tilefarm/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Crop builds the crop definition from config.
func Crop() farm.Crop {
	return farm.Crop{
		Name:         cfg.Crop.Name,
		StageMs:      cfg.Crop.StageMs,
		YieldCarrots: cfg.Crop.HarvestCarrots,
		YieldCoins:   cfg.Crop.HarvestCoins,
	}
}

// CreateFarm holds the plots and inventory. plots may be nil for a new farm.
func CreateFarm(ecs *ecs.ECS, grid *tilemap.Grid, plots *farm.Registry, inv farm.Inventory) *donburi.Entry {
	if plots == nil {
		plots = farm.NewRegistry()
	}
	crop := Crop()

	entry := archetypes.Farm.Spawn(ecs)
	components.Farm.SetValue(entry, components.FarmData{
		Plots:     plots,
		Inventory: inv,
		Crop:      crop,
		Resolver: farm.Resolver{
			Grid:   grid,
			Crop:   crop,
			Radius: cfg.Farm.InteractRange,
		},
	})
	return entry
}

// CreateSaveStatus starts the autosave timer at now.
func CreateSaveStatus(ecs *ecs.ECS, now time.Time) *donburi.Entry {
	entry := archetypes.SaveStatus.Spawn(ecs)
	components.SaveStatus.SetValue(entry, components.SaveStatusData{
		LastSave: now,
		Text:     "OK",
	})
	return entry
}

// CreateClock adds the frame clock. A nil now uses time.Now.
func CreateClock(ecs *ecs.ECS, now func() time.Time) *donburi.Entry {
	if now == nil {
		now = time.Now
	}
	t := now()

	entry := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(entry, components.ClockData{
		Now:   now,
		Last:  t,
		Frame: t,
	})
	return entry
}
