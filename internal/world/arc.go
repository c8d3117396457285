// Package world implements the procedural generation core of the runner:
// the jump-arc model, difficulty progression, platform generation and
// collectible spawning. It is pure simulation code with no rendering or
// terminal dependencies.
package world

import (
	"math"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// MaxJumpDistance returns the maximum horizontal distance covered by a
// jump launched at launchVelocity under constant gravity while moving
// forward at forwardSpeed. The projectile returns to launch height after
// 2*|v|/g seconds.
func MaxJumpDistance(forwardSpeed, launchVelocity, gravity float64) float64 {
	if gravity <= 0 {
		return 0
	}
	airTime := 2 * math.Abs(launchVelocity) / gravity
	return forwardSpeed * airTime
}

// JumpApexHeight returns the peak height of a jump launched at
// launchVelocity under constant gravity: v²/(2g).
func JumpApexHeight(launchVelocity, gravity float64) float64 {
	if gravity <= 0 {
		return 0
	}
	return (launchVelocity * launchVelocity) / (2 * gravity)
}

// Reach holds the three travel-distance bounds the generator spaces
// platforms against. All values are world pixels.
type Reach struct {
	SingleJump float64 // Plain jump at base run speed
	DoubleJump float64 // Double jump at boosted forward speed
	Glide      float64 // Extra distance from a full helicopter glide
	ApexHeight float64 // Peak height of a single jump
}

// ComputeReach evaluates the arc model against the configured movement
// constants. Pure: identical inputs always yield identical bounds, which
// is what makes platform spacing deterministic and testable.
func ComputeReach(phy config.PhysicsConfig, jump config.JumpConfig) Reach {
	return Reach{
		SingleJump: MaxJumpDistance(phy.RunSpeed, jump.JumpVelocity, phy.Gravity),
		DoubleJump: MaxJumpDistance(phy.RunSpeed+jump.BoostSpeed, jump.DoubleJumpVelocity, phy.Gravity),
		Glide:      phy.RunSpeed * jump.HelicopterDuration,
		ApexHeight: JumpApexHeight(jump.JumpVelocity, phy.Gravity),
	}
}

// MaxReachable returns the longest gap the player can clear: a single
// jump extended by a full glide. Double jump is available but not
// required for spacing, matching how the bands are tuned.
func (r Reach) MaxReachable() float64 {
	return r.SingleJump + r.Glide
}
