package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Overrides mirrors the tunable subset of the config. Only fields present in
// the file are applied.
type Overrides struct {
	Window *struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`

	Player *struct {
		Speed  *float64 `yaml:"speed"`
		SpawnX *float64 `yaml:"spawn_x"`
		SpawnY *float64 `yaml:"spawn_y"`
	} `yaml:"player"`

	Crop *struct {
		Name           string  `yaml:"name"`
		StageMs        []int64 `yaml:"stage_ms"`
		HarvestCarrots *int    `yaml:"harvest_carrots"`
		HarvestCoins   *int    `yaml:"harvest_coins"`
	} `yaml:"crop"`

	Farm *struct {
		TilledTileID  *int     `yaml:"tilled_tile_id"`
		InteractRange *float64 `yaml:"interact_range"`
	} `yaml:"farm"`

	Save *struct {
		AppName            string `yaml:"app_name"`
		Key                string `yaml:"key"`
		AutosaveIntervalMs int    `yaml:"autosave_interval_ms"`
	} `yaml:"save"`
}

// LoadOverrides reads a YAML tuning file and applies it on top of the
// defaults. A missing file leaves the defaults untouched.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: config overrides %s not found, using defaults", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read overrides %s: %w", path, err)
	}
	o, err := ParseOverrides(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	o.Apply()
	return nil
}

// ParseOverrides decodes and validates an overrides document.
func ParseOverrides(raw []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	if o.Crop != nil && o.Crop.StageMs != nil {
		if len(o.Crop.StageMs) != 4 {
			return nil, fmt.Errorf("crop.stage_ms: want 4 entries, got %d", len(o.Crop.StageMs))
		}
		for i, ms := range o.Crop.StageMs[1:] {
			if ms < 0 {
				return nil, fmt.Errorf("crop.stage_ms[%d]: negative duration %d", i+1, ms)
			}
		}
	}
	if o.Player != nil && o.Player.Speed != nil && *o.Player.Speed < 0 {
		return nil, fmt.Errorf("player.speed: negative speed")
	}
	if o.Farm != nil && o.Farm.TilledTileID != nil && *o.Farm.TilledTileID < 0 {
		return nil, fmt.Errorf("farm.tilled_tile_id: negative tile id")
	}
	if o.Farm != nil && o.Farm.InteractRange != nil && *o.Farm.InteractRange < 0 {
		return nil, fmt.Errorf("farm.interact_range: negative radius")
	}
	return &o, nil
}

// Apply writes the present fields into the global config vars.
func (o *Overrides) Apply() {
	if w := o.Window; w != nil {
		if w.Width > 0 {
			C.Width = w.Width
		}
		if w.Height > 0 {
			C.Height = w.Height
		}
	}
	if p := o.Player; p != nil {
		if p.Speed != nil {
			Player.Speed = *p.Speed
		}
		if p.SpawnX != nil {
			Player.SpawnX = *p.SpawnX
		}
		if p.SpawnY != nil {
			Player.SpawnY = *p.SpawnY
		}
	}
	if c := o.Crop; c != nil {
		if c.Name != "" {
			Crop.Name = c.Name
		}
		if len(c.StageMs) == 4 {
			copy(Crop.StageMs[:], c.StageMs)
		}
		if c.HarvestCarrots != nil {
			Crop.HarvestCarrots = *c.HarvestCarrots
		}
		if c.HarvestCoins != nil {
			Crop.HarvestCoins = *c.HarvestCoins
		}
	}
	if f := o.Farm; f != nil {
		if f.TilledTileID != nil {
			Farm.TilledTileID = *f.TilledTileID
		}
		if f.InteractRange != nil {
			Farm.InteractRange = *f.InteractRange
		}
	}
	if s := o.Save; s != nil {
		if s.AppName != "" {
			Save.AppName = s.AppName
		}
		if s.Key != "" {
			Save.Key = s.Key
		}
		if s.AutosaveIntervalMs > 0 {
			Save.AutosaveInterval = time.Duration(s.AutosaveIntervalMs) * time.Millisecond
		}
	}
}
