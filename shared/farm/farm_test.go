package farm

import (
	"testing"

	"github.com/automoto/tilefarm/shared/gamemath"
)

var carrot = Crop{
	Name:         "carrot",
	StageMs:      [4]int64{0, 6000, 7000, 8000},
	YieldCarrots: 1,
	YieldCoins:   2,
}

type tilled map[Key]bool

func (t tilled) IsTillable(tx, ty int) bool { return t[Key{X: tx, Y: ty}] }

func field(x0, y0, x1, y1 int) tilled {
	t := tilled{}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t[Key{X: x, Y: y}] = true
		}
	}
	return t
}

func TestStageAtSchedule(t *testing.T) {
	tests := []struct {
		elapsed int64
		want    Stage
	}{
		{0, StageSeed},
		{5000, StageSeed},
		{5999, StageSeed},
		{6000, StageSprout},
		{12000, StageSprout},
		{13000, StageGrowing},
		{15000, StageGrowing},
		{20999, StageGrowing},
		{21000, StageReady},
		{22000, StageReady},
		{1 << 40, StageReady},
	}
	for _, tt := range tests {
		if got := carrot.StageAt(tt.elapsed); got != tt.want {
			t.Errorf("StageAt(%d) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
	if carrot.ReadyAfter() != 21000 {
		t.Errorf("ReadyAfter = %d, want 21000", carrot.ReadyAfter())
	}
}

func TestStageAtMonotonic(t *testing.T) {
	prev := carrot.StageAt(0)
	for e := int64(0); e <= 30000; e += 37 {
		s := carrot.StageAt(e)
		if s < prev {
			t.Fatalf("stage went backwards at %d: %v -> %v", e, prev, s)
		}
		if !s.Valid() {
			t.Fatalf("invalid stage %v at %d", s, e)
		}
		prev = s
	}
}

func TestAdvance(t *testing.T) {
	reg := NewRegistry()
	k := Key{X: 3, Y: 4}
	reg.Plant(k, 0)

	for _, step := range []struct {
		now  int64
		want Stage
	}{
		{5000, StageSeed},
		{12000, StageSprout},
		{15000, StageGrowing},
		{22000, StageReady},
	} {
		Advance(reg, carrot, step.now)
		if got := reg.Get(k).Stage; got != step.want {
			t.Errorf("at %d stage = %v, want %v", step.now, got, step.want)
		}
	}
}

func TestAdvanceFastForwardsAndIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	k := Key{X: 1, Y: 1}
	reg.Plant(k, 1000)

	Advance(reg, carrot, 1000+15000)
	before := reg.Clone()
	Advance(reg, carrot, 1000+15000)
	if !reg.Equal(before) {
		t.Fatal("second tick with the same now changed state")
	}
	if reg.Get(k).Stage != StageGrowing {
		t.Errorf("stage = %v, want growing", reg.Get(k).Stage)
	}
}

func TestAdvanceNeverRegresses(t *testing.T) {
	reg := NewRegistry()
	k := Key{X: 0, Y: 0}
	reg.Set(k, Plot{PlantedAt: 0, Stage: StageGrowing})

	Advance(reg, carrot, 100)
	if reg.Get(k).Stage != StageGrowing {
		t.Errorf("stage = %v, want growing", reg.Get(k).Stage)
	}
}

func TestKeyRoundTrip(t *testing.T) {
	for _, k := range []Key{{0, 0}, {12, 7}, {-3, 40}} {
		got, err := ParseKey(k.String())
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKey(%q) = %v, want %v", k.String(), got, k)
		}
	}
	for _, bad := range []string{"", "3", "a,1", "1,b", "1;2"} {
		if _, err := ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) succeeded", bad)
		}
	}
}

func TestRegistryKeysRowMajor(t *testing.T) {
	reg := NewRegistry()
	reg.Plant(Key{X: 5, Y: 2}, 0)
	reg.Plant(Key{X: 1, Y: 3}, 0)
	reg.Plant(Key{X: 2, Y: 2}, 0)
	if reg.Plant(Key{X: 2, Y: 2}, 99) {
		t.Error("Plant on an occupied tile succeeded")
	}

	want := []Key{{2, 2}, {5, 2}, {1, 3}}
	got := reg.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if reg.Get(Key{X: 2, Y: 2}).PlantedAt != 0 {
		t.Error("occupied plot was overwritten")
	}
}

func TestResolve(t *testing.T) {
	grid := field(8, 8, 14, 14)
	player := gamemath.Pose{X: 10, Y: 10}
	res := Resolver{Grid: grid, Crop: carrot, Radius: DefaultRadius}

	tests := []struct {
		name    string
		tx, ty  int
		setup   *Plot
		want    Outcome
		plotted bool
		inv     Inventory
	}{
		{name: "plant in reach", tx: 11, ty: 10, want: OutcomePlanted, plotted: true},
		{name: "untilled tile", tx: 7, ty: 10, want: OutcomeNone},
		{name: "plant out of reach", tx: 13, ty: 10, want: OutcomeNone},
		{name: "diagonal just out of reach", tx: 11, ty: 12, want: OutcomeNone},
		{
			name: "harvest ready", tx: 12, ty: 10,
			setup: &Plot{Stage: StageReady}, want: OutcomeHarvested,
			inv: Inventory{Coins: 2, Carrots: 1},
		},
		{
			name: "harvest from three tiles away", tx: 13, ty: 10,
			setup: &Plot{Stage: StageReady}, want: OutcomeNone, plotted: true,
		},
		{
			name: "growing plot ignored", tx: 10, ty: 11,
			setup: &Plot{Stage: StageGrowing}, want: OutcomeNone, plotted: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			k := Key{X: tt.tx, Y: tt.ty}
			if tt.setup != nil {
				reg.Set(k, *tt.setup)
			}
			var inv Inventory

			got := res.Resolve(reg, &inv, player, tt.tx, tt.ty, 500)
			if got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
			if (reg.Get(k) != nil) != tt.plotted {
				t.Errorf("plot present = %v, want %v", reg.Get(k) != nil, tt.plotted)
			}
			if inv != tt.inv {
				t.Errorf("inventory = %+v, want %+v", inv, tt.inv)
			}
		})
	}
}

func TestResolvePlantsSeedAtNow(t *testing.T) {
	reg := NewRegistry()
	res := Resolver{Grid: field(0, 0, 3, 3), Crop: carrot}
	res.Resolve(reg, &Inventory{}, gamemath.Pose{X: 1, Y: 1}, 2, 2, 4242)

	p := reg.Get(Key{X: 2, Y: 2})
	if p == nil {
		t.Fatal("no plot created")
	}
	if p.Stage != StageSeed || p.PlantedAt != 4242 {
		t.Errorf("plot = %+v, want seed planted at 4242", *p)
	}
}

func TestHint(t *testing.T) {
	grid := field(11, 10, 12, 10)
	player := gamemath.Pose{X: 10, Y: 10}

	reg := NewRegistry()
	h, ok := Hint(grid, reg, player, DefaultRadius, 2)
	if !ok || h.Key != (Key{X: 11, Y: 10}) || h.Text != HintPlant {
		t.Errorf("Hint = %+v %v, want plant at 11,10", h, ok)
	}

	reg.Set(Key{X: 11, Y: 10}, Plot{Stage: StageSprout})
	if h, _ = Hint(grid, reg, player, DefaultRadius, 2); h.Text != HintGrowing {
		t.Errorf("Hint text = %q, want %q", h.Text, HintGrowing)
	}

	reg.Set(Key{X: 11, Y: 10}, Plot{Stage: StageReady})
	if h, _ = Hint(grid, reg, player, DefaultRadius, 2); h.Text != HintHarvest {
		t.Errorf("Hint text = %q, want %q", h.Text, HintHarvest)
	}

	far := gamemath.Pose{X: 2, Y: 2}
	if _, ok := Hint(grid, reg, far, DefaultRadius, 2); ok {
		t.Error("Hint found a tile out of reach")
	}
}
