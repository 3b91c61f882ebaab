package config

import (
	_ "embed"
)

//go:embed defaults/flapgate.yaml
var defaultFlapgateYAML []byte

// Fallback values used when a config omits or zeroes a field.
const (
	DefaultFieldWidth     = 400.0
	DefaultFieldHeight    = 600.0
	DefaultGravity        = 0.25
	DefaultLift           = -5.0
	DefaultFlyerSize      = 30.0
	DefaultGateWidth      = 80.0
	DefaultSpawnInterval  = 120
	DefaultBaseSpeed      = 2.0
	DefaultScoreStep      = 5
	DefaultSpeedIncrement = 0.15
)

// DefaultFlapgateConfig returns the built-in configuration.
func DefaultFlapgateConfig() FlapgateConfig {
	return FlapgateConfig{
		Field: FieldConfig{
			Width:  DefaultFieldWidth,
			Height: DefaultFieldHeight,
		},
		Physics: PhysicsConfig{
			Gravity: DefaultGravity,
			Lift:    DefaultLift,
		},
		Flyer: FlyerConfig{
			Width:  DefaultFlyerSize,
			Height: DefaultFlyerSize,
		},
		Gates: GatesConfig{
			Width:         DefaultGateWidth,
			SpawnInterval: DefaultSpawnInterval,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			BaseSpeed:      DefaultBaseSpeed,
			ScoreStep:      DefaultScoreStep,
			SpeedIncrement: DefaultSpeedIncrement,
		},
		Achievements: []AchievementConfig{
			{Score: 5, Label: "Getting Started!"},
			{Score: 15, Label: "Nice Bouncing!"},
			{Score: 30, Label: "Pro Bouncer!"},
			{Score: 50, Label: "Unstoppable!"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlapgateYAML
}

// Sanitize replaces non-positive sizes and intervals with their defaults.
// Gravity and lift are left as configured; a zero gravity is a legal (if dull) game.
func (c *FlapgateConfig) Sanitize() {
	if c.Field.Width <= 0 {
		c.Field.Width = DefaultFieldWidth
	}
	if c.Field.Height <= 0 {
		c.Field.Height = DefaultFieldHeight
	}
	if c.Flyer.Width <= 0 {
		c.Flyer.Width = DefaultFlyerSize
	}
	if c.Flyer.Height <= 0 {
		c.Flyer.Height = DefaultFlyerSize
	}
	if c.Gates.Width <= 0 {
		c.Gates.Width = DefaultGateWidth
	}
	if c.Gates.SpawnInterval <= 0 {
		c.Gates.SpawnInterval = DefaultSpawnInterval
	}
	if c.Difficulty.BaseSpeed <= 0 {
		c.Difficulty.BaseSpeed = DefaultBaseSpeed
	}
	if c.Difficulty.ScoreStep <= 0 {
		c.Difficulty.ScoreStep = DefaultScoreStep
	}
	if c.Difficulty.SpeedIncrement < 0 {
		c.Difficulty.SpeedIncrement = 0
	}
}
