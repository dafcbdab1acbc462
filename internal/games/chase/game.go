// Package chase implements a Pac-Man-style chase game: the player collects
// fruits while AI predators hunt, intercept, or patrol with deliberately
// imperfect, human-like pursuit.
package chase

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/config"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar       = '█'
	FruitChar        = '●'
	SpecialFruitChar = '★'
	PredatorChar     = '◆'
	BorderChar       = '·'
)

// Package-level variables for config/difficulty, set by the CLI before the
// game instance is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path for the next created game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next created game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the Fruit Chase game logic.
type Game struct {
	cfg     config.ChaseConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	diff    *config.DifficultyManager

	dt     float64 // Seconds per simulation tick
	tick   uint64
	bounds core.Vec2

	player     core.Vec2
	score      int
	lives      int
	graceTimer float64 // Invulnerability countdown after a catch

	fruits    []Fruit
	predators []*Predator

	gameOver bool
	paused   bool
}

// New creates a new Fruit Chase game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "chase"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fruit Chase"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadChase(configPath)
	if err != nil {
		cfg = config.DefaultChaseConfig()
	}
	if difficultyPreset != "" {
		config.ApplyChasePreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}

	g.cfg = cfg
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.bounds = core.Vec2{X: cfg.World.Width, Y: cfg.World.Height}
	g.player = core.Vec2{X: cfg.World.Width / 2, Y: cfg.World.Height / 2}
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.graceTimer = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false

	g.fruits = g.fruits[:0]
	for len(g.fruits) < cfg.Fruits.Count {
		g.fruits = append(g.fruits, g.spawnFruit())
	}

	g.predators = g.predators[:0]
	for len(g.predators) < cfg.Predators.Count {
		g.predators = append(g.predators, g.spawnPredator())
	}
}

// spawnPredator creates a predator outside the exclusion zone around the player.
func (g *Game) spawnPredator() *Predator {
	pos := g.randomPointAwayFrom(g.player, g.cfg.Predators.SpawnExclusion)
	return NewPredator(pos, g.cfg.Predators.Size, g.cfg.Predators.MaxSpeed, g.cfg.Predators.Acceleration, g.rng)
}

// randomPointAwayFrom picks a uniform world position at least minDist from
// anchor, falling back to the farthest corner when the world is too small.
func (g *Game) randomPointAwayFrom(anchor core.Vec2, minDist float64) core.Vec2 {
	for i := 0; i < 64; i++ {
		p := core.Vec2{
			X: uniform(g.rng, g.cfg.Predators.Size/2, g.bounds.X-g.cfg.Predators.Size/2),
			Y: uniform(g.rng, g.cfg.Predators.Size/2, g.bounds.Y-g.cfg.Predators.Size/2),
		}
		if p.Dist(anchor) >= minDist {
			return p
		}
	}

	// Degenerate bounds: take the corner farthest from the anchor.
	corners := []core.Vec2{
		{X: 0, Y: 0},
		{X: g.bounds.X, Y: 0},
		{X: 0, Y: g.bounds.Y},
		{X: g.bounds.X, Y: g.bounds.Y},
	}
	best := corners[0]
	for _, c := range corners[1:] {
		if c.Dist(anchor) > best.Dist(anchor) {
			best = c
		}
	}
	return best
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

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

	g.tick++

	g.movePlayer(p1)
	g.scaleDifficulty()

	for _, p := range g.predators {
		p.Update(g.dt, g.player, g.bounds)
	}

	events = append(events, g.collectFruits()...)
	events = append(events, g.resolveCatches()...)

	return core.StepResult{State: g.State(), Events: events}
}

// movePlayer applies directional input, clamped to the world bounds.
// Axes are independent, so diagonal movement is faster.
func (g *Game) movePlayer(in core.InputFrame) {
	step := g.cfg.Player.Speed * g.dt
	if in.Has(core.ActionLeft) {
		g.player.X -= step
	}
	if in.Has(core.ActionRight) {
		g.player.X += step
	}
	if in.Has(core.ActionUp) {
		g.player.Y -= step
	}
	if in.Has(core.ActionDown) {
		g.player.Y += step
	}

	half := g.cfg.Player.Size / 2
	g.player.X = core.ClampF(g.player.X, half, g.bounds.X-half)
	g.player.Y = core.ClampF(g.player.Y, half, g.bounds.Y-half)

	if g.graceTimer > 0 {
		g.graceTimer -= g.dt
	}
}

// scaleDifficulty adjusts predator speed and count to the current level.
func (g *Game) scaleDifficulty() {
	speed := g.diff.Speed(g.cfg.Predators.MaxSpeed, g.score, int(g.tick))
	for _, p := range g.predators {
		p.MaxSpeed = speed
	}

	want := g.diff.PredatorCount(g.cfg.Predators.Count, g.cfg.Predators.MaxCount, g.score, int(g.tick))
	for len(g.predators) < want {
		p := g.spawnPredator()
		p.MaxSpeed = speed
		g.predators = append(g.predators, p)
	}
}

// collectFruits picks up fruits the player touches. Removal candidates are
// buffered and applied after iteration so the slice is never mutated while
// being walked.
func (g *Game) collectFruits() []core.Event {
	var events []core.Event
	var collected []int

	for i, f := range g.fruits {
		if g.player.Dist(f.Pos) < (g.cfg.Player.Size+g.cfg.Fruits.Size)/2 {
			collected = append(collected, i)
			if f.Special {
				g.score += g.cfg.Fruits.SpecialPoints
				events = append(events, core.EventSpecialFruit)
			} else {
				g.score += g.cfg.Fruits.Points
				events = append(events, core.EventFruitCollected)
			}
		}
	}

	for i := len(collected) - 1; i >= 0; i-- {
		idx := collected[i]
		g.fruits = append(g.fruits[:idx], g.fruits[idx+1:]...)
	}

	for len(g.fruits) < g.cfg.Fruits.Count {
		g.fruits = append(g.fruits, g.spawnFruit())
	}

	return events
}

// resolveCatches handles predator-player contact.
func (g *Game) resolveCatches() []core.Event {
	if g.graceTimer > 0 {
		return nil
	}

	caught := false
	for _, p := range g.predators {
		if p.CheckCollision(g.player, g.cfg.Player.Size) {
			caught = true
			break
		}
	}
	if !caught {
		return nil
	}

	events := []core.Event{core.EventPlayerCaught}
	g.lives--
	g.graceTimer = g.cfg.Gameplay.CatchGrace
	g.player = core.Vec2{X: g.bounds.X / 2, Y: g.bounds.Y / 2}

	// Push nearby predators back out so the round restarts fairly.
	for _, p := range g.predators {
		if p.Pos.Dist(g.player) < g.cfg.Gameplay.RespawnEdge {
			p.Pos = g.randomPointAwayFrom(g.player, g.cfg.Predators.SpawnExclusion)
			p.Vel = core.Vec2{}
		}
	}

	if g.lives <= 0 {
		g.gameOver = true
		events = append(events, core.EventGameOver)
	}

	return events
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()

	// Playfield border below the HUD row.
	field := core.NewRect(0, 1, w, h-1)
	dst.DrawBox(field)

	// HUD
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColor(w-len(lives)-1, 0, lives, core.ColorBrightRed)

	for _, f := range g.fruits {
		x, y := g.toScreen(f.Pos, field)
		if f.Special {
			dst.SetCell(x, y, SpecialFruitChar, core.ColorBrightYellow)
		} else {
			dst.SetCell(x, y, FruitChar, core.ColorGreen)
		}
	}

	for _, p := range g.predators {
		x, y := g.toScreen(p.Pos, field)
		dst.SetCell(x, y, PredatorChar, predatorColor(p))

		// Short directional indicator in the facing cell.
		dx, dy := headingCell(p.Rotation)
		dst.SetCell(x+dx, y+dy, headingChar(p.Rotation), core.ColorGray)
	}

	px, py := g.toScreen(g.player, field)
	playerColor := core.ColorBrightCyan
	if g.graceTimer > 0 && (g.tick/6)%2 == 0 { // Blink while invulnerable
		playerColor = core.ColorGray
	}
	dst.SetCell(px, py, PlayerChar, playerColor)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
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

// predatorColor maps behavior to a display color.
func predatorColor(p *Predator) core.Color {
	if p.IsHesitating() {
		return core.ColorGray
	}
	switch p.State {
	case StateHunting:
		return core.ColorBrightRed
	case StateIntercepting:
		return core.ColorOrange
	default:
		return core.ColorMagenta
	}
}

// headingCell returns the unit cell offset of the facing direction.
func headingCell(rotation float64) (int, int) {
	return int(math.Round(math.Cos(rotation))), int(math.Round(math.Sin(rotation)))
}

// headingChar maps a heading to one of eight arrow runes.
func headingChar(rotation float64) rune {
	arrows := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	// Normalize to [0, 2π) and quantize to 45° sectors.
	a := math.Mod(rotation+2*math.Pi, 2*math.Pi)
	sector := int(math.Round(a/(math.Pi/4))) % 8
	return arrows[sector]
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("chase", 1, func() registry.Game {
		return New()
	})
}
