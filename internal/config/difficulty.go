package config

import "math"

// SpeedSchedule maps a score to the horizontal gate speed.
// Speed is a non-decreasing step function of score.
type SpeedSchedule struct {
	cfg DifficultyConfig
}

// NewSpeedSchedule creates a schedule from the difficulty config.
func NewSpeedSchedule(cfg DifficultyConfig) SpeedSchedule {
	return SpeedSchedule{cfg: cfg}
}

// Base returns the speed at score zero.
func (s SpeedSchedule) Base() float64 {
	return s.cfg.BaseSpeed
}

// IsEnabled returns whether the speed ramps with score.
func (s SpeedSchedule) IsEnabled() bool {
	return s.cfg.Enabled && s.cfg.ScoreStep > 0
}

// Level returns how many difficulty steps have been reached at score.
func (s SpeedSchedule) Level(score int) int {
	if !s.IsEnabled() || score <= 0 {
		return 0
	}
	return score / s.cfg.ScoreStep
}

// Speed returns base + floor(score/step) * increment.
func (s SpeedSchedule) Speed(score int) float64 {
	return s.cfg.BaseSpeed + float64(s.Level(score))*s.cfg.SpeedIncrement
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FlapgateConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = math.Max(1, cfg.Difficulty.BaseSpeed*0.8)
		cfg.Difficulty.SpeedIncrement = cfg.Difficulty.SpeedIncrement * 0.5
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = cfg.Difficulty.BaseSpeed * 1.25
		cfg.Difficulty.SpeedIncrement = cfg.Difficulty.SpeedIncrement * 2
		cfg.Gates.SpawnInterval = int(float64(cfg.Gates.SpawnInterval) * 0.85)
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}
