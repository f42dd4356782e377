package systems

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/automoto/tilefarm/components"
	cfg "github.com/automoto/tilefarm/config"
	"github.com/automoto/tilefarm/shared/farm"
	"github.com/automoto/tilefarm/shared/gamemath"
	"github.com/automoto/tilefarm/shared/savedata"
	"github.com/automoto/tilefarm/shared/tilemap"
	"github.com/automoto/tilefarm/systems/factory"
	"github.com/automoto/tilefarm/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testStart = 1700000000000

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

// countingStore counts writes so tests can see when the farm was saved.
type countingStore struct {
	*savedata.MemoryStore
	writes int
}

func (s *countingStore) SaveItem(key string, data []byte) error {
	s.writes++
	return s.MemoryStore.SaveItem(key, data)
}

type testFarm struct {
	ecs   *ecs.ECS
	clock *fakeClock
	store *countingStore
	grid  *tilemap.Grid
}

// testGrid is a 12x10 field fenced on every side with one extra wall at
// (8,5). Tilled soil sits at (6,5), (5,7) and (9,2).
func testGrid(t *testing.T) *tilemap.Grid {
	t.Helper()
	const w, h = 12, 10
	doc := &tilemap.Document{
		Width:     w,
		Height:    h,
		Tiles:     make([][]int, h),
		Collision: make([][]int, h),
		Spawn:     &tilemap.Spawn{X: 5, Y: 5},
	}
	for y := 0; y < h; y++ {
		doc.Tiles[y] = make([]int, w)
		doc.Collision[y] = make([]int, w)
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				doc.Tiles[y][x] = 5
				doc.Collision[y][x] = 1
			}
		}
	}
	doc.Collision[5][8] = 1
	for _, c := range []tilemap.Cell{{X: 6, Y: 5}, {X: 5, Y: 7}, {X: 9, Y: 2}} {
		doc.Tiles[c.Y][c.X] = tilemap.DefaultTilledID
	}

	grid, err := tilemap.FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	return grid
}

// newTestFarm builds the farm world the way the farm scene does, over an
// optional pre-existing save record.
func newTestFarm(t *testing.T, saved []byte) *testFarm {
	t.Helper()

	mem := savedata.NewMemoryStore()
	if saved != nil {
		if err := mem.SaveItem(cfg.Save.Key, saved); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	store := &countingStore{MemoryStore: mem}
	InitPersistence(store)
	t.Cleanup(func() { farmSaves = nil })

	grid := testGrid(t)
	clock := &fakeClock{t: time.UnixMilli(testStart)}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e, clock.now)
	factory.CreateLevel(e, grid, nil)
	factory.CreateSpace(e, grid)
	factory.CreateCamera(e)

	state := LoadFarm(grid)
	factory.CreatePlayer(e, state.Player)
	factory.CreateFarm(e, grid, state.Plots, state.Inventory)
	factory.CreateSaveStatus(e, clock.t)

	UpdateGrowth(e)
	UpdateCamera(e)
	SaveFarm(e)

	return &testFarm{ecs: e, clock: clock, store: store, grid: grid}
}

// step advances the clock by dt and runs one frame of the simulation.
// Input is set directly by the tests, so UpdateInput is not run.
func (f *testFarm) step(dt time.Duration) {
	f.clock.t = f.clock.t.Add(dt)
	UpdateClock(f.ecs)
	UpdateInteraction(f.ecs)
	UpdatePlayer(f.ecs)
	UpdateObjects(f.ecs)
	UpdateGrowth(f.ecs)
	UpdateHint(f.ecs)
	UpdateCamera(f.ecs)
	UpdateAutosave(f.ecs)
	UpdateSaveStatus(f.ecs)
	UpdateReset(f.ecs)
}

func (f *testFarm) run(frames int, dt time.Duration) {
	for i := 0; i < frames; i++ {
		f.step(dt)
	}
}

func (f *testFarm) player() *components.PlayerData {
	entry, _ := tags.Player.First(f.ecs.World)
	return components.Player.Get(entry)
}

func (f *testFarm) farm() *components.FarmData {
	data, _ := GetFarm(f.ecs)
	return data
}

// click queues a left click on the centre of tile (tx, ty) as seen through
// the current camera.
func (f *testFarm) click(tx, ty int) {
	entry, _ := components.Camera.First(f.ecs.World)
	camera := components.Camera.Get(entry)
	px := float64(cfg.Tile.WorldPx())
	sx, sy := gamemath.WorldToScreen(float64(tx)*px+px/2, float64(ty)*px+px/2, camera.Position.X, camera.Position.Y)
	GetInput(f.ecs).Click = &components.PointerClick{X: int(sx), Y: int(sy)}
}

func (f *testFarm) hold(action cfg.ActionID, held bool) {
	input := GetInput(f.ecs)
	input.Previous = input.Current
	input.Current[action] = held
}

func (f *testFarm) savedState(t *testing.T) savedata.State {
	t.Helper()
	raw, err := Saves().Raw()
	if err != nil {
		t.Fatalf("Raw: %v", err)
	}
	s, rep := savedata.Decode(raw, savedata.DefaultState(0, 0))
	if !rep.Clean() {
		t.Fatalf("saved record needed repairs: %+v", rep)
	}
	return s
}

func TestSpaceColliderMatchesGrid(t *testing.T) {
	f := newTestFarm(t, nil)
	collider := NewSpaceCollider(f.ecs)
	if collider == nil {
		t.Fatal("NewSpaceCollider returned nil")
	}

	for ty := -1; ty <= f.grid.Height; ty++ {
		for tx := -1; tx <= f.grid.Width; tx++ {
			if got, want := collider.IsBlocked(tx, ty), f.grid.IsBlocked(tx, ty); got != want {
				t.Errorf("IsBlocked(%d, %d) = %v, want %v", tx, ty, got, want)
			}
		}
	}
}

func TestInitialSaveWritten(t *testing.T) {
	f := newTestFarm(t, nil)
	if f.store.writes != 1 {
		t.Fatalf("writes after start = %d, want 1", f.store.writes)
	}
	s := f.savedState(t)
	if s.Player.X != 5 || s.Player.Y != 5 {
		t.Errorf("saved player = %+v, want spawn (5,5)", s.Player)
	}
	if s.Plots.Len() != 0 {
		t.Errorf("saved plots = %d, want 0", s.Plots.Len())
	}
}

func TestUpdatePlayerStopsAtWall(t *testing.T) {
	f := newTestFarm(t, nil)

	f.hold(cfg.ActionMoveRight, true)
	f.run(20, 100*time.Millisecond)

	p := f.player().Pose
	if p.X < 7 || p.X >= 8 {
		t.Errorf("X = %v, want stopped in tile 7 before the wall at 8", p.X)
	}
	if p.Y != 5 {
		t.Errorf("Y = %v, want 5", p.Y)
	}
	if p.Facing != gamemath.FacingRight {
		t.Errorf("Facing = %v, want right", p.Facing)
	}
	if !f.player().Moving {
		t.Error("Moving = false while a direction is held")
	}

	// The collision body follows the pose.
	entry, _ := tags.Player.First(f.ecs.World)
	obj := components.Object.Get(entry)
	wantX, wantY := factory.PlayerBodyPosition(p)
	if obj.X != wantX || obj.Y != wantY {
		t.Errorf("body at (%v,%v), want (%v,%v)", obj.X, obj.Y, wantX, wantY)
	}
}

func TestUpdatePlayerSlidesAlongWall(t *testing.T) {
	f := newTestFarm(t, nil)
	f.player().Pose = gamemath.Pose{X: 7.5, Y: 5}

	f.hold(cfg.ActionMoveRight, true)
	f.hold(cfg.ActionMoveDown, true)
	f.run(5, 100*time.Millisecond)

	p := f.player().Pose
	if p.X >= 8 {
		t.Errorf("X = %v, walked into the wall", p.X)
	}
	if p.Y <= 5 {
		t.Errorf("Y = %v, want slide downwards", p.Y)
	}
}

func TestPlantAndHarvest(t *testing.T) {
	f := newTestFarm(t, nil)
	target := farm.Key{X: 6, Y: 5}

	f.click(target.X, target.Y)
	f.step(16 * time.Millisecond)

	plot := f.farm().Plots.Get(target)
	if plot == nil {
		t.Fatal("click on tilled soil did not plant")
	}
	plantedAt := f.clock.t.UnixMilli()
	if plot.PlantedAt != plantedAt || plot.Stage != farm.StageSeed {
		t.Errorf("plot = %+v, want seed planted at %d", *plot, plantedAt)
	}
	if f.store.writes != 2 {
		t.Errorf("writes after planting = %d, want 2", f.store.writes)
	}
	if got := f.savedState(t).Plots.Get(target); got == nil {
		t.Error("planted plot missing from the save")
	}

	// Clicking a growing plot does nothing.
	f.click(target.X, target.Y)
	f.step(time.Second)
	if f.farm().Inventory != (farm.Inventory{}) {
		t.Fatalf("inventory changed on an unripe plot: %+v", f.farm().Inventory)
	}

	f.run(25, time.Second)
	if got := f.farm().Plots.Get(target).Stage; got != farm.StageReady {
		t.Fatalf("stage after 26s = %v, want ready", got)
	}

	f.click(target.X, target.Y)
	f.step(16 * time.Millisecond)

	if f.farm().Plots.Get(target) != nil {
		t.Error("harvested plot still present")
	}
	want := farm.Inventory{Coins: cfg.Crop.HarvestCoins, Carrots: cfg.Crop.HarvestCarrots}
	if f.farm().Inventory != want {
		t.Errorf("inventory = %+v, want %+v", f.farm().Inventory, want)
	}
	if s := f.savedState(t); s.Inventory != want || s.Plots.Len() != 0 {
		t.Errorf("saved state = %+v, want harvest persisted", s)
	}
}

func TestClickIgnored(t *testing.T) {
	tests := []struct {
		name   string
		tx, ty int
	}{
		{"grass", 4, 4},
		{"tilled out of reach", 9, 2},
		{"fence", 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestFarm(t, nil)
			f.click(tc.tx, tc.ty)
			f.step(16 * time.Millisecond)

			if n := f.farm().Plots.Len(); n != 0 {
				t.Errorf("plots = %d, want 0", n)
			}
			if f.store.writes != 1 {
				t.Errorf("writes = %d, want only the initial save", f.store.writes)
			}
			if GetInput(f.ecs).Click != nil {
				t.Error("click was not consumed")
			}
		})
	}
}

func TestAutosaveInterval(t *testing.T) {
	f := newTestFarm(t, nil)

	f.run(49, 100*time.Millisecond)
	if f.store.writes != 1 {
		t.Fatalf("writes after 4.9s = %d, want 1", f.store.writes)
	}
	f.step(100 * time.Millisecond)
	if f.store.writes != 2 {
		t.Fatalf("writes after 5s = %d, want 2", f.store.writes)
	}

	// One long frame saves once, not once per missed interval.
	f.step(12 * time.Second)
	if f.store.writes != 3 {
		t.Errorf("writes after a 12s frame = %d, want 3", f.store.writes)
	}
}

func TestSaveFailureShowsError(t *testing.T) {
	f := newTestFarm(t, nil)
	f.store.FailWrites = errString("disk full")

	f.click(6, 5)
	f.step(100 * time.Millisecond)

	status := GetSaveStatus(f.ecs)
	if status.Text != "ERR" || !status.Failed {
		t.Fatalf("status = %q failed=%v, want ERR", status.Text, status.Failed)
	}
	if status.FlashAlpha <= 0 {
		t.Error("no flash after a failed save")
	}
	if f.farm().Plots.Len() != 1 {
		t.Error("failed save rolled back the planted plot")
	}

	f.run(10, 100*time.Millisecond)
	if status.Text != "OK" || status.Failed {
		t.Errorf("status after flash = %q failed=%v, want OK", status.Text, status.Failed)
	}
	if status.FlashAlpha != 0 {
		t.Errorf("FlashAlpha = %v after the flash ended", status.FlashAlpha)
	}
}

func TestResetFarm(t *testing.T) {
	f := newTestFarm(t, nil)

	f.click(6, 5)
	f.step(16 * time.Millisecond)
	f.hold(cfg.ActionMoveLeft, true)
	f.run(5, 100*time.Millisecond)
	f.hold(cfg.ActionMoveLeft, false)
	f.farm().Inventory = farm.Inventory{Coins: 9, Carrots: 4}

	RequestReset(f.ecs)
	f.step(16 * time.Millisecond)

	if Saves().Exists() {
		t.Error("save still present after reset")
	}
	if HasSaveGame() {
		t.Error("HasSaveGame after reset")
	}
	if f.farm().Plots.Len() != 0 {
		t.Errorf("plots = %d after reset", f.farm().Plots.Len())
	}
	if f.farm().Inventory != (farm.Inventory{}) {
		t.Errorf("inventory = %+v after reset", f.farm().Inventory)
	}
	if p := f.player().Pose; p != (gamemath.Pose{X: 5, Y: 5}) {
		t.Errorf("player = %+v, want spawn", p)
	}

	// The next autosave writes the fresh farm.
	f.run(50, 100*time.Millisecond)
	if !Saves().Exists() {
		t.Fatal("no save after the autosave interval")
	}
	if s := f.savedState(t); s.Plots.Len() != 0 || s.Inventory != (farm.Inventory{}) {
		t.Errorf("saved after reset = %+v", s)
	}
}

func TestLoadExistingSave(t *testing.T) {
	reg := farm.NewRegistry()
	reg.Set(farm.Key{X: 6, Y: 5}, farm.Plot{PlantedAt: testStart - 30000, Stage: farm.StageSeed})
	reg.Set(farm.Key{X: 5, Y: 7}, farm.Plot{PlantedAt: testStart - 1000, Stage: farm.StageSeed})
	raw, err := savedata.Encode(savedata.State{
		Inventory: farm.Inventory{Coins: 3, Carrots: 1},
		Player:    gamemath.Pose{X: 4.5, Y: 6, Facing: gamemath.FacingUp},
		Plots:     reg,
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	f := newTestFarm(t, raw)

	if p := f.player().Pose; p != (gamemath.Pose{X: 4.5, Y: 6, Facing: gamemath.FacingUp}) {
		t.Errorf("player = %+v", p)
	}
	if f.farm().Inventory != (farm.Inventory{Coins: 3, Carrots: 1}) {
		t.Errorf("inventory = %+v", f.farm().Inventory)
	}
	if got := f.farm().Plots.Get(farm.Key{X: 6, Y: 5}).Stage; got != farm.StageReady {
		t.Errorf("old plot stage = %v, want ready from offline growth", got)
	}
	if got := f.farm().Plots.Get(farm.Key{X: 5, Y: 7}).Stage; got != farm.StageSeed {
		t.Errorf("new plot stage = %v, want seed", got)
	}
}

func TestLoadSavedPositionOffTheWalkableArea(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   gamemath.Pose
	}{
		{"inside the fence", `{"player":{"x":0.5,"y":5,"dir":"left"}}`, gamemath.Pose{X: 5, Y: 5}},
		{"inside the wall", `{"player":{"x":8.5,"y":5.5,"dir":"up"}}`, gamemath.Pose{X: 5, Y: 5}},
		{"far off the map", `{"player":{"x":500,"y":-40,"dir":"down"}}`, gamemath.Pose{X: 5, Y: 5}},
		{"clamped onto grass", `{"player":{"x":3.5,"y":40,"dir":"right"}}`, gamemath.Pose{X: 3.5, Y: 8.8, Facing: gamemath.FacingRight}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestFarm(t, []byte(tc.record))

			p := f.player().Pose
			if f.grid.IsBlocked(int(p.X), int(p.Y)) {
				t.Fatalf("player loaded onto blocked tile (%d,%d)", int(p.X), int(p.Y))
			}
			if math.Abs(p.X-tc.want.X) > 1e-9 || math.Abs(p.Y-tc.want.Y) > 1e-9 || p.Facing != tc.want.Facing {
				t.Errorf("player = %+v, want %+v", p, tc.want)
			}
			if s := f.savedState(t); s.Player != p {
				t.Errorf("initial save wrote %+v, want %+v", s.Player, p)
			}
		})
	}
}

func TestSpawnPoseOnBlockedTile(t *testing.T) {
	grid := testGrid(t)
	grid.Spawn = &tilemap.Spawn{X: 0, Y: 5}

	p := SpawnPose(grid)
	if p != (gamemath.Pose{X: 1, Y: 5}) {
		t.Errorf("SpawnPose = %+v, want nearest free tile (1,5)", p)
	}
}

func TestUpdatePlayerLongFrame(t *testing.T) {
	f := newTestFarm(t, nil)

	f.hold(cfg.ActionMoveUp, true)
	f.step(10 * time.Minute)

	want := 5 - cfg.Player.Speed*maxMoveDt
	if p := f.player().Pose; math.Abs(p.Y-want) > 1e-9 {
		t.Errorf("Y after a long frame = %v, want %v", p.Y, want)
	}
}

func TestUpdateHint(t *testing.T) {
	f := newTestFarm(t, nil)
	f.step(16 * time.Millisecond)

	data := f.farm()
	if !data.HasHint {
		t.Fatal("no hint next to tilled soil")
	}
	if data.Hint.Key != (farm.Key{X: 6, Y: 5}) || data.Hint.Text != farm.HintPlant {
		t.Errorf("hint = %+v, want plant at 6,5", data.Hint)
	}

	f.player().Pose = gamemath.Pose{X: 2, Y: 8}
	f.step(16 * time.Millisecond)
	if f.farm().HasHint {
		t.Errorf("hint %+v shown with no soil in reach", f.farm().Hint)
	}
}

func TestMenuOptions(t *testing.T) {
	tests := []struct {
		hasSave bool
		want    []string
	}{
		{true, []string{"Continue", "New Farm", "Exit"}},
		{false, []string{"New Farm", "Exit"}},
	}
	for _, tc := range tests {
		var got []string
		for _, opt := range MenuOptions(tc.hasSave) {
			got = append(got, getOptionLabel(opt))
		}
		if strings.Join(got, ",") != strings.Join(tc.want, ",") {
			t.Errorf("MenuOptions(%v) = %v, want %v", tc.hasSave, got, tc.want)
		}
	}
}

type errString string

func (e errString) Error() string { return string(e) }
