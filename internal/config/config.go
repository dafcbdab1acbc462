// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// WorldConfig defines the continuous simulation space a game runs in.
// Games simulate in world units and project to screen cells at render time.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player entity parameters shared by the games.
type PlayerConfig struct {
	Size  float64 `yaml:"size"`  // Collision diameter in world units
	Speed float64 `yaml:"speed"` // Movement speed in world units per second
}

// ChaseConfig contains all configuration for the Fruit Chase game.
type ChaseConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Fruits     FruitConfig      `yaml:"fruits"`
	Predators  PredatorConfig   `yaml:"predators"`
	Gameplay   ChaseGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FruitConfig defines fruit spawning and scoring rules.
type FruitConfig struct {
	Size          float64 `yaml:"size"`            // Collision diameter
	Count         int     `yaml:"count"`           // Fruits kept on the field
	Points        int     `yaml:"points"`          // Points per regular fruit
	SpecialPoints int     `yaml:"special_points"`  // Points per special fruit
	SpecialChance int     `yaml:"special_chance"`  // 1-in-N chance a spawn is special
	MinPlayerDist float64 `yaml:"min_player_dist"` // Minimum spawn distance from player
}

// PredatorConfig defines predator tunables.
type PredatorConfig struct {
	Count          int     `yaml:"count"`           // Predators at base difficulty
	MaxCount       int     `yaml:"max_count"`       // Predators at max difficulty
	Size           float64 `yaml:"size"`            // Collision diameter
	MaxSpeed       float64 `yaml:"max_speed"`       // Speed cap, world units/second
	Acceleration   float64 `yaml:"acceleration"`    // Steering acceleration cap, units/s^2
	SpawnExclusion float64 `yaml:"spawn_exclusion"` // Minimum spawn distance from player
}

// ChaseGameplay defines round rules for the chase game.
type ChaseGameplay struct {
	Lives       int     `yaml:"lives"`
	CatchGrace  float64 `yaml:"catch_grace"`  // Seconds of invulnerability after a catch
	RespawnEdge float64 `yaml:"respawn_edge"` // Distance predators back off to after a catch
}

// MoveConfig contains all configuration for the movement sandbox.
type MoveConfig struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Marker MarkerConfig `yaml:"marker"`
}

// MarkerConfig defines the pick-up marker in the movement sandbox.
type MarkerConfig struct {
	Size          float64 `yaml:"size"`
	MinPlayerDist float64 `yaml:"min_player_dist"`
}

// DuoConfig contains all configuration for the two-player tag game.
type DuoConfig struct {
	World        WorldConfig  `yaml:"world"`
	Player       PlayerConfig `yaml:"player"`
	RoundSeconds float64      `yaml:"round_seconds"` // Match length
	TagCooldown  float64      `yaml:"tag_cooldown"`  // Seconds between role swaps
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to predator speed at max difficulty
	ExtraPredators  int     `yaml:"extra_predators"`  // Predators added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
