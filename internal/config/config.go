// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

// FlapgateConfig contains all tunables for the flyer-and-gates simulation.
// Distances are in field units; durations are in ticks.
type FlapgateConfig struct {
	Field        FieldConfig         `yaml:"field"`
	Physics      PhysicsConfig       `yaml:"physics"`
	Flyer        FlyerConfig         `yaml:"flyer"`
	Gates        GatesConfig         `yaml:"gates"`
	Difficulty   DifficultyConfig    `yaml:"difficulty"`
	Achievements []AchievementConfig `yaml:"achievements"`
}

// FieldConfig defines the logical play-field size.
// Renderers scale this to whatever surface they draw on.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the flyer's vertical kinematics.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // Added to velocity every tick
	Lift    float64 `yaml:"lift"`    // Velocity set by a flap (negative = up)
}

// FlyerConfig defines the flyer's hitbox.
type FlyerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GatesConfig defines gate geometry and spawn cadence.
type GatesConfig struct {
	Width         float64 `yaml:"width"`
	SpawnInterval int     `yaml:"spawn_interval"`
}

// DifficultyConfig defines the speed step function.
// speed = base_speed + floor(score / score_step) * speed_increment
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	BaseSpeed      float64 `yaml:"base_speed"`
	ScoreStep      int     `yaml:"score_step"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// AchievementConfig maps a score threshold to the message shown when reached.
type AchievementConfig struct {
	Score int    `yaml:"score"`
	Label string `yaml:"label"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets returns the known presets in increasing order of challenge.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// IsValidPreset reports whether s names a known preset. Empty is valid and
// means "leave the loaded config alone".
func IsValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	default:
		return false
	}
}
