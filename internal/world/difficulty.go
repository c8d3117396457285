package world

import (
	"math"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// DifficultyManager tracks elapsed run time and derives the game scroll
// speed and the difficulty level fed to the platform generator. Both
// outputs are pure functions of elapsed time: speed is a clamped step
// function, level a clamped linear ramp.
type DifficultyManager struct {
	cfg     config.DifficultyConfig
	elapsed float64
}

// NewDifficultyManager creates a difficulty manager with zero elapsed time.
func NewDifficultyManager(cfg config.DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Update advances elapsed run time by dt seconds.
// Negative dt is clamped to zero rather than rejected.
func (d *DifficultyManager) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	d.elapsed += dt
}

// Elapsed returns the accumulated run time in seconds.
func (d *DifficultyManager) Elapsed() float64 {
	return d.elapsed
}

// Level returns the current difficulty level, ramping linearly from the
// initial level to the ceiling over RampSeconds per +1.0 level.
func (d *DifficultyManager) Level() float64 {
	initial := d.cfg.InitialLevel
	if !d.cfg.Enabled {
		return math.Min(initial, d.cfg.MaxLevel)
	}
	ramp := d.cfg.RampSeconds
	if ramp <= 0 {
		ramp = 1
	}
	return math.Min(initial+d.elapsed/ramp, d.cfg.MaxLevel)
}

// GameSpeed returns the current scroll speed: a step function that adds
// SpeedIncrement every SpeedInterval seconds, saturating at MaxSpeed.
func (d *DifficultyManager) GameSpeed() float64 {
	interval := d.cfg.SpeedInterval
	if interval <= 0 {
		interval = 1
	}
	steps := math.Floor(d.elapsed / interval)
	speed := d.cfg.BaseSpeed + steps*d.cfg.SpeedIncrement
	return math.Min(speed, d.cfg.MaxSpeed)
}

// Reset zeroes elapsed time, returning both outputs to their base
// values. Called once per run start, never mid-run.
func (d *DifficultyManager) Reset() {
	d.elapsed = 0
}
