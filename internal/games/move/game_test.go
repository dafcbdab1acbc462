package move

import (
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

func TestMoveReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if g.score != 0 || g.paused {
		t.Errorf("fresh game: score=%d paused=%v", g.score, g.paused)
	}
	want := core.Vec2{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height / 2}
	if g.player != want {
		t.Errorf("player spawn = %v, want %v", g.player, want)
	}
	if d := g.marker.Dist(g.player); d < g.cfg.Marker.MinPlayerDist {
		t.Errorf("marker spawned %.1f from player, want >= %.1f", d, g.cfg.Marker.MinPlayerDist)
	}
}

func TestMovePlayerSpeed(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	startY := g.player.Y

	g.Step(input(core.ActionDown))

	wantY := startY + g.cfg.Player.Speed*g.dt
	if g.player.Y != wantY {
		t.Errorf("player Y = %.4f, want %.4f", g.player.Y, wantY)
	}
}

func TestMoveClampsToBounds(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	for i := 0; i < 1000; i++ {
		g.Step(input(core.ActionRight, core.ActionDown))
	}

	half := g.cfg.Player.Size / 2
	if g.player.X != g.bounds.X-half || g.player.Y != g.bounds.Y-half {
		t.Errorf("player = %v, want clamped to far corner", g.player)
	}
}

func TestMoveMarkerPickup(t *testing.T) {
	g := New()
	g.Reset(testRuntime(4))
	g.marker = g.player

	res := g.Step(core.NewMultiInputFrame())

	if g.score != 1 {
		t.Errorf("score = %d after pickup, want 1", g.score)
	}
	if d := g.marker.Dist(g.player); d < g.cfg.Marker.MinPlayerDist {
		t.Errorf("marker relocated %.1f from player, want >= %.1f", d, g.cfg.Marker.MinPlayerDist)
	}
	if len(res.Events) == 0 || res.Events[0] != core.EventFruitCollected {
		t.Errorf("events = %v, want pickup event", res.Events)
	}
}

func TestMoveMarkerImpossibleDistance(t *testing.T) {
	g := New()
	g.Reset(testRuntime(6))

	// Larger than the world diagonal, so no candidate can ever satisfy it.
	g.cfg.Marker.MinPlayerDist = g.bounds.X + g.bounds.Y
	p := g.placeMarker()

	half := g.cfg.Marker.Size / 2
	if p.X < half || p.X > g.bounds.X-half || p.Y < half || p.Y > g.bounds.Y-half {
		t.Errorf("marker = %v, want inside %v", p, g.bounds)
	}
}

func TestMovePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	g.Step(input(core.ActionPause))
	if !g.paused {
		t.Fatal("pause action did not pause")
	}

	pos := g.player
	g.Step(input(core.ActionRight))
	if g.player != pos {
		t.Error("player moved while paused")
	}

	g.Step(input(core.ActionPause))
	if g.paused {
		t.Error("second pause action did not resume")
	}
}

func TestMoveDeterminism(t *testing.T) {
	run := func() (core.Vec2, int) {
		g := New()
		g.Reset(testRuntime(42))
		for i := 0; i < 300; i++ {
			g.Step(input(core.ActionRight, core.ActionDown))
		}
		return g.marker, g.score
	}

	m1, s1 := run()
	m2, s2 := run()
	if m1 != m2 || s1 != s2 {
		t.Errorf("runs diverged: (%v, %d) vs (%v, %d)", m1, s1, m2, s2)
	}
}

func TestMoveRegistered(t *testing.T) {
	if !registry.Exists("move") {
		t.Fatal("move not registered")
	}
}
