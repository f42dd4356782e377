package savedata

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/automoto/tilefarm/shared/farm"
	"github.com/automoto/tilefarm/shared/gamemath"
)

// Report lists what Decode had to repair.
type Report struct {
	// Unreadable is set when the record is not a JSON object at all.
	Unreadable bool
	// Defaulted names fields that were missing or invalid.
	Defaulted []string
	// SkippedPlots counts plot entries dropped for a bad key or timestamp.
	SkippedPlots int
}

// Clean reports whether the record decoded without repairs.
func (r Report) Clean() bool {
	return !r.Unreadable && len(r.Defaulted) == 0 && r.SkippedPlots == 0
}

func (r *Report) defaulted(field string) {
	r.Defaulted = append(r.Defaulted, field)
}

// Decode reads a save record. It never fails: every missing or malformed
// field falls back to its value in defaults, and bad plot entries are
// skipped one by one.
func Decode(data []byte, defaults State) (State, Report) {
	var rep Report
	out := State{
		Inventory: defaults.Inventory,
		Player:    defaults.Player,
		Plots:     farm.NewRegistry(),
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		rep.Unreadable = true
		if defaults.Plots != nil {
			out.Plots = defaults.Plots.Clone()
		}
		return out, rep
	}

	decodeInventory(top["inv"], &out.Inventory, &rep)
	decodePlayer(top["player"], &out.Player, &rep)
	decodePlots(top["plots"], out.Plots, &rep)
	return out, rep
}

func decodeInventory(raw json.RawMessage, inv *farm.Inventory, rep *Report) {
	fields, ok := object(raw)
	if !ok {
		rep.defaulted("inv")
		return
	}
	if n, ok := count(fields["coins"]); ok {
		inv.Coins = n
	} else {
		inv.Coins = 0
		rep.defaulted("inv.coins")
	}
	if n, ok := count(fields["carrot"]); ok {
		inv.Carrots = n
	} else {
		inv.Carrots = 0
		rep.defaulted("inv.carrot")
	}
}

func decodePlayer(raw json.RawMessage, p *gamemath.Pose, rep *Report) {
	fields, ok := object(raw)
	if !ok {
		rep.defaulted("player")
		return
	}
	if x, ok := number(fields["x"]); ok {
		p.X = x
	} else {
		rep.defaulted("player.x")
	}
	if y, ok := number(fields["y"]); ok {
		p.Y = y
	} else {
		rep.defaulted("player.y")
	}

	var dir string
	if err := json.Unmarshal(fields["dir"], &dir); err == nil {
		if f, ok := gamemath.ParseFacing(dir); ok {
			p.Facing = f
			return
		}
	}
	p.Facing = gamemath.FacingDown
	rep.defaulted("player.dir")
}

func decodePlots(raw json.RawMessage, reg *farm.Registry, rep *Report) {
	var entries []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil || entries == nil {
		rep.defaulted("plots")
		return
	}
	for _, e := range entries {
		k, p, err := decodePlot(e)
		if err != nil {
			rep.SkippedPlots++
			continue
		}
		reg.Set(k, p)
	}
}

func decodePlot(raw json.RawMessage) (farm.Key, farm.Plot, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return farm.Key{}, farm.Plot{}, err
	}
	if len(pair) != 2 {
		return farm.Key{}, farm.Plot{}, fmt.Errorf("plot entry has %d elements", len(pair))
	}

	var ks string
	if err := json.Unmarshal(pair[0], &ks); err != nil {
		return farm.Key{}, farm.Plot{}, fmt.Errorf("plot key: %w", err)
	}
	k, err := farm.ParseKey(ks)
	if err != nil {
		return farm.Key{}, farm.Plot{}, err
	}

	fields, ok := object(pair[1])
	if !ok {
		return farm.Key{}, farm.Plot{}, fmt.Errorf("plot %s: value is not an object", ks)
	}
	at, ok := number(fields["plantedAt"])
	if !ok {
		return farm.Key{}, farm.Plot{}, fmt.Errorf("plot %s: missing plantedAt", ks)
	}

	stage := farm.StageSeed
	if s, ok := number(fields["stage"]); ok && farm.Stage(s).Valid() {
		stage = farm.Stage(s)
	}
	return k, farm.Plot{PlantedAt: int64(at), Stage: stage}, nil
}

func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

func number(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		return 0, false
	}
	if math.IsNaN(*f) || math.IsInf(*f, 0) {
		return 0, false
	}
	return *f, true
}

// count reads a non-negative counter. Values past math.MaxInt saturate.
func count(raw json.RawMessage) (int, bool) {
	f, ok := number(raw)
	if !ok || f < 0 {
		return 0, false
	}
	if f >= math.MaxInt {
		return math.MaxInt, true
	}
	return int(f), true
}
