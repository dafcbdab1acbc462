package duo

import (
	"testing"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
)

var _ registry.Game = (*Game)(nil)

func testRuntime() core.RuntimeConfig {
	return core.DefaultConfig()
}

func inputFor(id core.PlayerID, actions ...core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for _, a := range actions {
		in.SetFor(id, a)
	}
	return in
}

func TestDuoReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if g.gameOver || g.paused {
		t.Errorf("fresh game: gameOver=%v paused=%v", g.gameOver, g.paused)
	}
	if p1, p2 := g.Scores(); p1 != 0 || p2 != 0 {
		t.Errorf("scores = %d/%d, want 0/0", p1, p2)
	}
	if g.It() != core.Player1 {
		t.Errorf("it = %v, want Player1", g.It())
	}
	if g.pos[core.Player1] == g.pos[core.Player2] {
		t.Error("players spawned on top of each other")
	}
}

func TestDuoPlayersMoveIndependently(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	start1 := g.pos[core.Player1]
	start2 := g.pos[core.Player2]

	in := core.NewMultiInputFrame()
	in.SetFor(core.Player1, core.ActionRight)
	in.SetFor(core.Player2, core.ActionUp)
	g.Step(in)

	step := g.cfg.Player.Speed * g.dt
	if got := g.pos[core.Player1]; got.X != start1.X+step || got.Y != start1.Y {
		t.Errorf("player1 = %v, want moved right from %v", got, start1)
	}
	if got := g.pos[core.Player2]; got.Y != start2.Y-step || got.X != start2.X {
		t.Errorf("player2 = %v, want moved up from %v", got, start2)
	}
}

func TestDuoTagSwapsRolesAndScores(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.pos[core.Player2] = g.pos[core.Player1]

	res := g.Step(core.NewMultiInputFrame())

	if p1, p2 := g.Scores(); p1 != 1 || p2 != 0 {
		t.Errorf("scores = %d/%d after player1 tag, want 1/0", p1, p2)
	}
	if g.It() != core.Player2 {
		t.Errorf("it = %v after tag, want Player2", g.It())
	}
	if g.cooldown <= 0 {
		t.Error("no cooldown after tag")
	}
	found := false
	for _, e := range res.Events {
		if e == core.EventPlayerCaught {
			found = true
		}
	}
	if !found {
		t.Error("no tag event emitted")
	}
}

func TestDuoCooldownBlocksImmediateRetag(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.pos[core.Player2] = g.pos[core.Player1]

	g.Step(core.NewMultiInputFrame())
	g.Step(core.NewMultiInputFrame()) // Still overlapping, still cooling down

	if p1, p2 := g.Scores(); p1+p2 != 1 {
		t.Errorf("total tags = %d during cooldown, want 1", p1+p2)
	}
}

func TestDuoRoundEndsOnTimer(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.timeLeft = 2 * g.dt

	g.Step(core.NewMultiInputFrame())
	if g.gameOver {
		t.Fatal("round ended early")
	}

	res := g.Step(core.NewMultiInputFrame())
	if !g.gameOver {
		t.Fatal("round did not end when timer expired")
	}
	found := false
	for _, e := range res.Events {
		if e == core.EventGameOver {
			found = true
		}
	}
	if !found {
		t.Error("no game-over event emitted")
	}
}

func TestDuoWinner(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if g.Winner() != 0 {
		t.Errorf("winner = %v at 0/0, want none", g.Winner())
	}

	g.scores[core.Player2] = 3
	if g.Winner() != core.Player2 {
		t.Errorf("winner = %v at 0/3, want Player2", g.Winner())
	}
}

func TestDuoPauseFromEitherPlayer(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	g.Step(inputFor(core.Player2, core.ActionPause))
	if !g.paused {
		t.Fatal("player2 pause did not pause")
	}

	g.Step(inputFor(core.Player1, core.ActionPause))
	if g.paused {
		t.Error("player1 pause did not resume")
	}
}

func TestDuoRegistered(t *testing.T) {
	info, ok := registry.Info("duo")
	if !ok {
		t.Fatal("duo not registered")
	}
	if info.Players != 2 {
		t.Errorf("players = %d, want 2", info.Players)
	}
}
