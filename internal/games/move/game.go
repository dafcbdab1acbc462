// Package move implements a single-player movement sandbox: steer a block
// around an open field and pick up a wandering marker.
package move

import (
	"fmt"
	"math/rand"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/config"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	MarkerChar = '◎'
)

var configPath string

// SetConfigPath sets the config file path for the next created game.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the movement sandbox.
type Game struct {
	cfg    config.MoveConfig
	rng    *rand.Rand
	dt     float64
	bounds core.Vec2

	player core.Vec2
	marker core.Vec2
	score  int
	paused bool
}

// New creates a new movement sandbox instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "move"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Move Sandbox"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadMove(configPath)
	if err != nil {
		cfg = config.DefaultMoveConfig()
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.bounds = core.Vec2{X: cfg.World.Width, Y: cfg.World.Height}
	g.player = core.Vec2{X: cfg.World.Width / 2, Y: cfg.World.Height / 2}
	g.marker = g.placeMarker()
	g.score = 0
	g.paused = false
}

// placeMarker picks a marker position away from the player. When the minimum
// distance cannot be satisfied in this world the last candidate wins, so a
// misconfigured distance degrades instead of hanging Reset.
func (g *Game) placeMarker() core.Vec2 {
	half := g.cfg.Marker.Size / 2
	var p core.Vec2
	for i := 0; i < 64; i++ {
		p = core.Vec2{
			X: half + g.rng.Float64()*(g.bounds.X-g.cfg.Marker.Size),
			Y: half + g.rng.Float64()*(g.bounds.Y-g.cfg.Marker.Size),
		}
		if p.Dist(g.player) >= g.cfg.Marker.MinPlayerDist {
			return p
		}
	}
	return p
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	var events []core.Event

	p1 := in.Player1()
	if p1.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			events = append(events, core.EventPaused)
		}
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	step := g.cfg.Player.Speed * g.dt
	if p1.Has(core.ActionLeft) {
		g.player.X -= step
	}
	if p1.Has(core.ActionRight) {
		g.player.X += step
	}
	if p1.Has(core.ActionUp) {
		g.player.Y -= step
	}
	if p1.Has(core.ActionDown) {
		g.player.Y += step
	}

	half := g.cfg.Player.Size / 2
	g.player.X = core.ClampF(g.player.X, half, g.bounds.X-half)
	g.player.Y = core.ClampF(g.player.Y, half, g.bounds.Y-half)

	if g.player.Dist(g.marker) < (g.cfg.Player.Size+g.cfg.Marker.Size)/2 {
		g.score++
		g.marker = g.placeMarker()
		events = append(events, core.EventFruitCollected)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	field := core.NewRect(0, 1, w, h-1)
	dst.DrawBox(field)

	dst.DrawText(1, 0, fmt.Sprintf("Picked up: %d", g.score))

	mx, my := g.toScreen(g.marker, field)
	dst.SetCell(mx, my, MarkerChar, core.ColorBrightYellow)

	px, py := g.toScreen(g.player, field)
	dst.SetCell(px, py, PlayerChar, core.ColorBrightCyan)

	if g.paused {
		dst.DrawTextCentered(h/2, "PAUSED")
	}
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

// State returns the current game state. The sandbox never ends on its own.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Paused: g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("move", 1, func() registry.Game {
		return New()
	})
}
