package runner

import (
	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/world"
)

// Landing tolerance in world pixels added below the platform top while
// the helicopter glide is active.
const heliLandingSlack = 12

// Physics integrates player motion and resolves one-way platform
// collisions. Platforms only collide from above while the player is
// falling; jumping up through a platform always passes.
type Physics struct {
	cfg *config.RunnerConfig
}

// NewPhysics creates a physics stepper over the shared tuning constants.
func NewPhysics(cfg *config.RunnerConfig) *Physics {
	return &Physics{cfg: cfg}
}

// Step integrates one fixed timestep and resolves collisions against the
// active platforms. Returns the platform landed on this frame, or nil.
func (ph *Physics) Step(p *Player, platforms []*world.Platform, dt float64) *world.Platform {
	prevBottom := p.Y + p.Height

	// Gravity, unless the helicopter pins fall speed
	if !p.HelicopterActive() {
		p.VelY += ph.cfg.Physics.Gravity * dt
		if p.VelY > ph.cfg.Physics.MaxFallSpeed {
			p.VelY = ph.cfg.Physics.MaxFallSpeed
		}
	}

	p.X += p.VelX * dt
	p.Y += p.VelY * dt

	if p.VelY < 0 {
		// Moving up: never collides, and leaves any platform underfoot
		if p.OnGround {
			p.Airborne()
		}
		return nil
	}

	landed := ph.findLanding(p, platforms, prevBottom)
	if landed == nil {
		if p.OnGround {
			// Ran off the edge, or the platform collapsed/vanished
			p.Airborne()
		}
		return nil
	}

	p.Y = landed.Y - p.Height
	p.VelY = 0
	p.Land(landed)
	landed.OnPlayerLand()

	// Spring and bouncy surfaces convert the landing into a launch
	if eff := landed.SurfaceEffect(); eff.Kind == world.EffectSpringLaunch {
		p.Launch(eff.Value)
	}
	return landed
}

// findLanding performs a swept one-way test: the player's bottom edge
// must cross the platform top during this step, with horizontal overlap.
// Invisible disappearing platforms are skipped entirely.
func (ph *Physics) findLanding(p *Player, platforms []*world.Platform, prevBottom float64) *world.Platform {
	bottom := p.Y + p.Height
	slack := 0.0
	if p.HelicopterActive() {
		slack = heliLandingSlack
	}

	for _, plat := range platforms {
		if !plat.Active || !plat.IsVisible() {
			continue
		}
		if p.X+p.Width <= plat.X || p.X >= plat.X+plat.Width {
			continue
		}
		// Crossed the top edge this frame (with glide slack)
		if prevBottom <= plat.Y+slack && bottom >= plat.Y {
			return plat
		}
		// Already resting on it (standing case, re-confirmed each frame)
		if p.OnGround && p.Current == plat && bottom >= plat.Y && bottom <= plat.Y+plat.Height {
			return plat
		}
	}
	return nil
}

// InWater reports whether the player has fallen below the waterline.
func (ph *Physics) InWater(p *Player) bool {
	return p.Y+p.Height >= ph.cfg.World.WaterLevel
}
