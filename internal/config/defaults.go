package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

//go:embed defaults/move.yaml
var defaultMoveYAML []byte

//go:embed defaults/duo.yaml
var defaultDuoYAML []byte

// DefaultChaseConfig returns the default Fruit Chase configuration.
// The 960x540 world and 300 units/s player speed match the game's original
// window-pixel tuning, which the predator behavior constants assume.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		World: WorldConfig{
			Width:  960,
			Height: 540,
		},
		Player: PlayerConfig{
			Size:  32,
			Speed: 300,
		},
		Fruits: FruitConfig{
			Size:          16,
			Count:         5,
			Points:        10,
			SpecialPoints: 50,
			SpecialChance: 10,
			MinPlayerDist: 60,
		},
		Predators: PredatorConfig{
			Count:          2,
			MaxCount:       5,
			Size:           32,
			MaxSpeed:       260,
			Acceleration:   800,
			SpawnExclusion: 250,
		},
		Gameplay: ChaseGameplay{
			Lives:       3,
			CatchGrace:  2.0,
			RespawnEdge: 300,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
				ExtraPredators:  3,
			},
		},
	}
}

// DefaultMoveConfig returns the default movement sandbox configuration.
func DefaultMoveConfig() MoveConfig {
	return MoveConfig{
		World: WorldConfig{
			Width:  960,
			Height: 540,
		},
		Player: PlayerConfig{
			Size:  32,
			Speed: 300,
		},
		Marker: MarkerConfig{
			Size:          16,
			MinPlayerDist: 120,
		},
	}
}

// DefaultDuoConfig returns the default two-player tag configuration.
func DefaultDuoConfig() DuoConfig {
	return DuoConfig{
		World: WorldConfig{
			Width:  960,
			Height: 540,
		},
		Player: PlayerConfig{
			Size:  32,
			Speed: 300,
		},
		RoundSeconds: 60,
		TagCooldown:  1.5,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chase":
		return defaultChaseYAML
	case "move":
		return defaultMoveYAML
	case "duo":
		return defaultDuoYAML
	default:
		return nil
	}
}
