package chase

// PredatorSnapshot captures one predator's observable state for tests.
type PredatorSnapshot struct {
	X, Y  float64
	State string
}

// Snapshot captures the full observable game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Score     int
	Lives     int
	PlayerX   float64
	PlayerY   float64
	Fruits    int
	Predators []PredatorSnapshot
	GameOver  bool
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lives:    g.lives,
		PlayerX:  g.player.X,
		PlayerY:  g.player.Y,
		Fruits:   len(g.fruits),
		GameOver: g.gameOver,
	}
	for _, p := range g.predators {
		s.Predators = append(s.Predators, PredatorSnapshot{
			X:     p.Pos.X,
			Y:     p.Pos.Y,
			State: p.State.String(),
		})
	}
	return s
}
