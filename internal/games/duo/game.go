// Package duo implements local two-player tag: one player is "it" and scores
// by tagging the other, then the roles swap. Player 1 moves on WASD, player 2
// on the arrow keys.
package duo

import (
	"fmt"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/config"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
)

// Visual characters for rendering
const (
	Player1Char = '█'
	Player2Char = '▓'
)

var configPath string

// SetConfigPath sets the config file path for the next created game.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements two-player tag.
type Game struct {
	cfg    config.DuoConfig
	dt     float64
	bounds core.Vec2

	pos    map[core.PlayerID]core.Vec2
	scores map[core.PlayerID]int

	it       core.PlayerID // The chasing player
	cooldown float64       // Seconds until the next tag can land
	timeLeft float64

	gameOver bool
	paused   bool
}

// New creates a new tag game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "duo"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tag Duel"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadDuo(configPath)
	if err != nil {
		cfg = config.DefaultDuoConfig()
	}
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.bounds = core.Vec2{X: cfg.World.Width, Y: cfg.World.Height}

	// Opposite corners, quarter-way in.
	g.pos = map[core.PlayerID]core.Vec2{
		core.Player1: {X: cfg.World.Width / 4, Y: cfg.World.Height / 2},
		core.Player2: {X: cfg.World.Width * 3 / 4, Y: cfg.World.Height / 2},
	}
	g.scores = map[core.PlayerID]int{core.Player1: 0, core.Player2: 0}

	g.it = core.Player1
	g.cooldown = 0
	g.timeLeft = cfg.RoundSeconds
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	if in.Player1().Has(core.ActionPause) || in.Player2().Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			events = append(events, core.EventPaused)
		}
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.movePlayer(core.Player1, in.Player1())
	g.movePlayer(core.Player2, in.Player2())

	if g.cooldown > 0 {
		g.cooldown -= g.dt
	}

	if g.cooldown <= 0 && g.pos[core.Player1].Dist(g.pos[core.Player2]) < g.cfg.Player.Size {
		g.scores[g.it]++
		g.it = other(g.it)
		g.cooldown = g.cfg.TagCooldown
		events = append(events, core.EventPlayerCaught)
	}

	g.timeLeft -= g.dt
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.gameOver = true
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// movePlayer applies one player's directional input.
func (g *Game) movePlayer(id core.PlayerID, in core.InputFrame) {
	p := g.pos[id]
	step := g.cfg.Player.Speed * g.dt
	if in.Has(core.ActionLeft) {
		p.X -= step
	}
	if in.Has(core.ActionRight) {
		p.X += step
	}
	if in.Has(core.ActionUp) {
		p.Y -= step
	}
	if in.Has(core.ActionDown) {
		p.Y += step
	}

	half := g.cfg.Player.Size / 2
	p.X = core.ClampF(p.X, half, g.bounds.X-half)
	p.Y = core.ClampF(p.Y, half, g.bounds.Y-half)
	g.pos[id] = p
}

// other returns the opposing player.
func other(id core.PlayerID) core.PlayerID {
	if id == core.Player1 {
		return core.Player2
	}
	return core.Player1
}

// Scores returns both players' tag counts.
func (g *Game) Scores() (p1, p2 int) {
	return g.scores[core.Player1], g.scores[core.Player2]
}

// Winner returns the leading player, or 0 on a tie.
func (g *Game) Winner() core.PlayerID {
	p1, p2 := g.Scores()
	switch {
	case p1 > p2:
		return core.Player1
	case p2 > p1:
		return core.Player2
	default:
		return 0
	}
}

// It returns the player currently chasing.
func (g *Game) It() core.PlayerID {
	return g.it
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	field := core.NewRect(0, 1, w, h-1)
	dst.DrawBox(field)

	p1, p2 := g.Scores()
	dst.DrawText(1, 0, fmt.Sprintf("P1: %d", p1))
	timer := fmt.Sprintf("%d:%02d", int(g.timeLeft)/60, int(g.timeLeft)%60)
	dst.DrawText((w-len(timer))/2, 0, timer)
	right := fmt.Sprintf("P2: %d", p2)
	dst.DrawText(w-len(right)-1, 0, right)

	x1, y1 := g.toScreen(g.pos[core.Player1], field)
	x2, y2 := g.toScreen(g.pos[core.Player2], field)
	dst.SetCell(x1, y1, Player1Char, g.playerColor(core.Player1))
	dst.SetCell(x2, y2, Player2Char, g.playerColor(core.Player2))

	if g.paused {
		dst.DrawTextCentered(h/2, "PAUSED")
	}
	if g.gameOver {
		msg := "DRAW"
		if w := g.Winner(); w == core.Player1 {
			msg = "PLAYER 1 WINS"
		} else if w == core.Player2 {
			msg = "PLAYER 2 WINS"
		}
		dst.DrawTextCentered(h/2, msg)
		dst.DrawTextCentered(h/2+2, "Press R to restart")
	}
}

// playerColor highlights whoever is "it".
func (g *Game) playerColor(id core.PlayerID) core.Color {
	if id == g.it {
		return core.ColorBrightRed
	}
	return core.ColorBrightCyan
}

// toScreen projects a world position into the playfield's inner cells.
func (g *Game) toScreen(p core.Vec2, field core.Rect) (int, int) {
	innerW := field.W - 2
	innerH := field.H - 2
	if innerW < 1 || innerH < 1 {
		return field.X + 1, field.Y + 1
	}
	x := field.X + 1 + int(p.X/g.bounds.X*float64(innerW))
	y := field.Y + 1 + int(p.Y/g.bounds.Y*float64(innerH))
	return core.Clamp(x, field.X+1, field.Right()-2), core.Clamp(y, field.Y+1, field.Bottom()-2)
}

// State returns the current game state. Score reports the leading tag count;
// the full per-player result goes to storage as a match record.
func (g *Game) State() core.GameState {
	p1, p2 := g.Scores()
	return core.GameState{
		Score:    core.Max(p1, p2),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("duo", 2, func() registry.Game {
		return New()
	})
}
