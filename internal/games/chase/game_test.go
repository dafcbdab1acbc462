package chase

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
)

var _ registry.Game = (*Game)(nil)

func testRuntime(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func input(actions ...core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for _, a := range actions {
		in.SetFor(core.Player1, a)
	}
	return in
}

func TestChaseReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if g.score != 0 || g.gameOver || g.paused {
		t.Errorf("fresh game: score=%d gameOver=%v paused=%v", g.score, g.gameOver, g.paused)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, want %d", g.lives, g.cfg.Gameplay.Lives)
	}
	if len(g.fruits) != g.cfg.Fruits.Count {
		t.Errorf("fruits = %d, want %d", len(g.fruits), g.cfg.Fruits.Count)
	}
	if len(g.predators) != g.cfg.Predators.Count {
		t.Errorf("predators = %d, want %d", len(g.predators), g.cfg.Predators.Count)
	}

	want := core.Vec2{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height / 2}
	if g.player != want {
		t.Errorf("player spawn = %v, want center %v", g.player, want)
	}
}

func TestChasePredatorsSpawnAwayFromPlayer(t *testing.T) {
	g := New()
	for seed := int64(0); seed < 20; seed++ {
		g.Reset(testRuntime(seed))
		for i, p := range g.predators {
			if d := p.Pos.Dist(g.player); d < g.cfg.Predators.SpawnExclusion {
				t.Errorf("seed %d: predator %d spawned %.1f from player, want >= %.1f",
					seed, i, d, g.cfg.Predators.SpawnExclusion)
			}
		}
	}
}

func TestChasePlayerMovement(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	startX := g.player.X

	g.Step(input(core.ActionRight))

	wantX := startX + g.cfg.Player.Speed*g.dt
	if g.player.X != wantX {
		t.Errorf("player X after right = %.4f, want %.4f", g.player.X, wantX)
	}
}

func TestChasePlayerClampedToWorld(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	for i := 0; i < 600; i++ {
		g.Step(input(core.ActionLeft, core.ActionUp))
	}

	half := g.cfg.Player.Size / 2
	if g.player.X != half || g.player.Y != half {
		t.Errorf("player = %v after driving into corner, want (%.1f, %.1f)", g.player, half, half)
	}
}

func TestChaseFruitCollection(t *testing.T) {
	g := New()
	g.Reset(testRuntime(4))
	g.fruits[0] = Fruit{Pos: g.player, Special: false}
	g.graceTimer = 100 // Keep predators out of the picture

	res := g.Step(core.NewMultiInputFrame())

	if g.score != g.cfg.Fruits.Points {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Fruits.Points)
	}
	if len(g.fruits) != g.cfg.Fruits.Count {
		t.Errorf("fruit count = %d after respawn, want %d", len(g.fruits), g.cfg.Fruits.Count)
	}
	if !hasEvent(res.Events, core.EventFruitCollected) {
		t.Error("no fruit-collected event emitted")
	}
}

func TestChaseSpecialFruitScoresMore(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))
	g.fruits[0] = Fruit{Pos: g.player, Special: true}
	g.graceTimer = 100

	res := g.Step(core.NewMultiInputFrame())

	if g.score != g.cfg.Fruits.SpecialPoints {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Fruits.SpecialPoints)
	}
	if !hasEvent(res.Events, core.EventSpecialFruit) {
		t.Error("no special-fruit event emitted")
	}
}

func TestChaseCatchCostsLifeAndRespawns(t *testing.T) {
	g := New()
	g.Reset(testRuntime(6))
	livesBefore := g.lives
	g.predators[0].Pos = g.player

	res := g.Step(core.NewMultiInputFrame())

	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d after catch, want %d", g.lives, livesBefore-1)
	}
	if g.graceTimer <= 0 {
		t.Error("no grace period granted after catch")
	}
	if !hasEvent(res.Events, core.EventPlayerCaught) {
		t.Error("no player-caught event emitted")
	}

	center := core.Vec2{X: g.bounds.X / 2, Y: g.bounds.Y / 2}
	if g.player != center {
		t.Errorf("player = %v after catch, want respawn at %v", g.player, center)
	}
	for i, p := range g.predators {
		if d := p.Pos.Dist(g.player); d < g.cfg.Predators.SpawnExclusion {
			t.Errorf("predator %d still %.1f from respawned player", i, d)
		}
	}
}

func TestChaseGracePeriodBlocksCatches(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))
	g.graceTimer = 1.0
	g.predators[0].Pos = g.player
	livesBefore := g.lives

	g.Step(core.NewMultiInputFrame())

	if g.lives != livesBefore {
		t.Errorf("lives = %d during grace period, want %d", g.lives, livesBefore)
	}
}

func TestChaseGameOverWhenLivesExhausted(t *testing.T) {
	g := New()
	g.Reset(testRuntime(8))

	var events []core.Event
	for i := 0; i < 100 && !g.gameOver; i++ {
		g.graceTimer = 0
		g.predators[0].Pos = g.player
		res := g.Step(core.NewMultiInputFrame())
		events = append(events, res.Events...)
	}

	if !g.gameOver {
		t.Fatal("game did not end after repeated catches")
	}
	if g.lives != 0 {
		t.Errorf("lives = %d at game over, want 0", g.lives)
	}
	if !hasEvent(events, core.EventGameOver) {
		t.Error("no game-over event emitted")
	}

	// Steps after game over are no-ops.
	snap := g.Snapshot()
	g.Step(input(core.ActionRight))
	if !reflect.DeepEqual(g.Snapshot(), snap) {
		t.Error("state changed after game over")
	}
}

func TestChasePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(9))

	res := g.Step(input(core.ActionPause))
	if !g.paused {
		t.Fatal("pause action did not pause")
	}
	if !hasEvent(res.Events, core.EventPaused) {
		t.Error("no pause event emitted")
	}

	snap := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionRight))
	}
	if !reflect.DeepEqual(g.Snapshot(), snap) {
		t.Error("state advanced while paused")
	}

	g.Step(input(core.ActionPause))
	if g.paused {
		t.Error("second pause action did not resume")
	}
}

func TestChaseDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime(42))
		for i := 0; i < 600; i++ {
			var in core.MultiInputFrame
			switch (i / 60) % 4 {
			case 0:
				in = input(core.ActionRight)
			case 1:
				in = input(core.ActionDown)
			case 2:
				in = input(core.ActionLeft)
			default:
				in = input(core.ActionUp)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	a := run()
	b := run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}

func TestChaseDifferentSeedsDiverge(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := New()
		g.Reset(testRuntime(seed))
		for i := 0; i < 120; i++ {
			g.Step(core.NewMultiInputFrame())
		}
		return g.Snapshot()
	}

	if reflect.DeepEqual(run(1), run(2)) {
		t.Error("different seeds produced identical states")
	}
}

func TestChaseRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(10))
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD missing score")
	}
	if !strings.Contains(out, "Lives:") {
		t.Error("HUD missing lives")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not rendered")
	}
	if !strings.ContainsRune(out, PredatorChar) {
		t.Error("predators not rendered")
	}
}

func TestChaseRenderGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(11))
	g.gameOver = true
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay not rendered")
	}
}

func TestChaseRegistered(t *testing.T) {
	if !registry.Exists("chase") {
		t.Fatal("chase not registered")
	}
	info, ok := registry.Info("chase")
	if !ok {
		t.Fatal("no info for chase")
	}
	if info.Players != 1 {
		t.Errorf("players = %d, want 1", info.Players)
	}
}

func hasEvent(events []core.Event, e core.Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}
