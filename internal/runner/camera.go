package runner

import (
	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

// Camera follows the player horizontally with lerp smoothing. X only
// ever increases; the run never scrolls backwards. The renderer maps the
// full world height onto the screen, so there is no vertical component.
type Camera struct {
	X float64

	cfg *config.RunnerConfig
}

// NewCamera creates a camera at the world origin.
func NewCamera(cfg *config.RunnerConfig) *Camera {
	return &Camera{cfg: cfg}
}

// Reset snaps the camera to frame the given player position.
func (c *Camera) Reset(playerX float64) {
	c.X = playerX - c.cfg.World.Width*c.cfg.Camera.OffsetRatio
	if c.X < 0 {
		c.X = 0
	}
}

// Update eases the camera toward the player. The player sits at
// OffsetRatio of the screen width so most of the view shows what is ahead.
func (c *Camera) Update(playerX float64) {
	cam := &c.cfg.Camera

	targetX := playerX - c.cfg.World.Width*cam.OffsetRatio
	if targetX > c.X {
		c.X = core.Lerp(c.X, targetX, cam.Smoothing)
	}
}
