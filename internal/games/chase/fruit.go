package chase

import "github.com/Marcelo-Flores-A/chase-arcade/internal/core"

// Fruit is a collectible item. Special fruits are rarer and worth more.
type Fruit struct {
	Pos     core.Vec2
	Special bool
}

// spawnFruit places a new fruit away from the player so pickups are never
// free. Roughly one in SpecialChance fruits is special.
func (g *Game) spawnFruit() Fruit {
	half := g.cfg.Fruits.Size / 2
	pos := core.Vec2{
		X: uniform(g.rng, half, g.bounds.X-half),
		Y: uniform(g.rng, half, g.bounds.Y-half),
	}
	for i := 0; i < 32 && pos.Dist(g.player) < g.cfg.Fruits.MinPlayerDist; i++ {
		pos = core.Vec2{
			X: uniform(g.rng, half, g.bounds.X-half),
			Y: uniform(g.rng, half, g.bounds.Y-half),
		}
	}

	special := false
	if g.cfg.Fruits.SpecialChance > 0 {
		special = g.rng.Intn(g.cfg.Fruits.SpecialChance) == 0
	}

	return Fruit{Pos: pos, Special: special}
}
