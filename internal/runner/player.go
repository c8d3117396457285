package runner

import (
	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/world"
)

// PlayerState labels the player animation/logic state.
type PlayerState int

const (
	StateRunning PlayerState = iota
	StateJumping
	StateDoubleJumping
	StateHelicopter
	StateFalling
	StateDead
)

// Player collision box in world pixels.
const (
	playerWidth  = 56
	playerHeight = 60
)

// Player is the auto-running character: single jump, double jump with a
// forward speed boost, and a Rayman-style helicopter glide, with coyote
// time, jump buffering and variable jump height.
type Player struct {
	X, Y   float64 // Top-left, world pixels
	VelX   float64
	VelY   float64
	Width  float64
	Height float64

	State    PlayerState
	OnGround bool
	Current  *world.Platform // Platform stood on, nil while airborne

	cfg *config.RunnerConfig

	jumpCount  int
	maxJumps   int
	extraJumps int // Granted by the ExtraJump power-up, consumed by use

	boostTimer float64 // Double-jump forward boost
	powerBoost float64 // SpeedBoost power-up contribution to forward speed

	heliActive bool
	heliTime   float64
	canHeli    bool

	coyoteTimer float64
	jumpBuffer  float64
}

// NewPlayer creates a player at the given world position.
func NewPlayer(cfg *config.RunnerConfig, x, y float64) *Player {
	p := &Player{cfg: cfg}
	p.Reset(x, y)
	return p
}

// Reset reinitializes the player for a new run.
func (p *Player) Reset(x, y float64) {
	p.X = x
	p.Y = y
	p.Width = playerWidth
	p.Height = playerHeight
	p.VelX = p.cfg.Physics.RunSpeed
	p.VelY = 0
	p.State = StateRunning
	p.OnGround = false
	p.Current = nil
	p.jumpCount = 0
	p.maxJumps = 2
	p.extraJumps = 0
	p.boostTimer = 0
	p.powerBoost = 0
	p.heliActive = false
	p.heliTime = 0
	p.canHeli = false
	p.coyoteTimer = 0
	p.jumpBuffer = 0
}

// Update advances the player by one fixed timestep. jumpPressed is a
// fresh press this frame; jumpReleased cuts an ongoing jump short.
func (p *Player) Update(dt float64, jumpPressed, jumpReleased bool) {
	jump := &p.cfg.Jump

	// Coyote time: grace period after walking off a platform
	if p.OnGround {
		p.coyoteTimer = jump.CoyoteTime
	} else {
		p.coyoteTimer -= dt
		// Falling off an edge past the grace window forfeits the ground
		// jump; the next press is the air jump
		if p.coyoteTimer <= 0 && p.jumpCount == 0 {
			p.jumpCount = 1
		}
	}
	if p.jumpBuffer > 0 {
		p.jumpBuffer -= dt
	}

	// Double-jump forward boost wears off
	if p.boostTimer > 0 {
		p.boostTimer -= dt
	}

	if jumpPressed {
		switch {
		case p.canHeli && !p.heliActive && !p.OnGround:
			p.activateHelicopter()
		case p.canJump():
			p.doJump()
		default:
			p.jumpBuffer = jump.JumpBufferTime
		}
	}

	// Variable jump height: releasing early cuts upward velocity
	if jumpReleased && p.VelY < 0 {
		p.VelY *= jump.VariableJumpFactor
	}

	if p.heliActive {
		p.heliTime += dt
		if p.heliTime >= jump.HelicopterDuration {
			p.deactivateHelicopter()
		} else {
			// Glide overrides gravity with a slow constant fall
			p.VelY = jump.HelicopterFallSpeed
		}
	}

	p.applySurfaceEffect(dt)
	p.updateState()
}

// forwardSpeed is the current horizontal speed including boosts.
func (p *Player) forwardSpeed() float64 {
	speed := p.cfg.Physics.RunSpeed + p.powerBoost
	if p.boostTimer > 0 {
		speed += p.cfg.Jump.BoostSpeed
	}
	return speed
}

// applySurfaceEffect resolves forward speed through the grounded
// platform's capability query. Most surfaces snap VelX to the target
// speed; ice keeps the previous frame's VelX and eases it toward the
// target, so boosts bleed off gradually instead of cutting out. A
// conveyor additionally pushes the player along the belt. Spring
// launches are resolved by the physics layer at landing time, not here.
func (p *Player) applySurfaceEffect(dt float64) {
	target := p.forwardSpeed()
	if !p.OnGround || p.Current == nil {
		p.VelX = target
		return
	}
	switch eff := p.Current.SurfaceEffect(); eff.Kind {
	case world.EffectConveyorPush:
		p.VelX = target
		p.X += eff.Value * dt
	case world.EffectFriction:
		p.VelX = core.Lerp(p.VelX, target, eff.Value)
	default:
		p.VelX = target
	}
}

// canJump reports whether a jump is available, counting coyote time and
// any power-up-granted extra jump.
func (p *Player) canJump() bool {
	if p.jumpCount == 0 {
		return p.OnGround || p.coyoteTimer > 0
	}
	return p.jumpCount < p.maxJumps+p.extraJumps
}

// doJump executes the next jump in the chain.
func (p *Player) doJump() {
	jump := &p.cfg.Jump
	switch p.jumpCount {
	case 0:
		p.VelY = jump.JumpVelocity
		p.State = StateJumping
		p.OnGround = false
		p.Current = nil
		p.jumpCount = 1
		p.coyoteTimer = 0
	default:
		// Double jump (or power-up extra jump): boosted forward speed,
		// enables the helicopter
		p.VelY = jump.DoubleJumpVelocity
		p.State = StateDoubleJumping
		p.jumpCount++
		p.canHeli = true
		p.boostTimer = jump.BoostDuration
		if p.jumpCount > p.maxJumps {
			p.extraJumps = 0 // Third jump consumed the power-up
		}
	}
}

func (p *Player) activateHelicopter() {
	p.heliActive = true
	p.heliTime = 0
	p.State = StateHelicopter
}

func (p *Player) deactivateHelicopter() {
	p.heliActive = false
	p.canHeli = false
}

// HelicopterActive reports whether the glide is running; the physics
// layer widens landing tolerance while it is.
func (p *Player) HelicopterActive() bool {
	return p.heliActive
}

// GrantExtraJump arms a third jump that lasts until used.
func (p *Player) GrantExtraJump() {
	p.extraJumps = 1
}

// SetPowerBoost sets the SpeedBoost power-up's speed contribution.
func (p *Player) SetPowerBoost(v float64) {
	p.powerBoost = v
}

// Land resets jump state after the physics layer resolves a landing.
func (p *Player) Land(platform *world.Platform) {
	p.OnGround = true
	p.Current = platform
	p.jumpCount = 0
	p.heliActive = false
	p.heliTime = 0
	p.canHeli = false
	p.State = StateRunning

	// Buffered jump fires immediately on touchdown
	if p.jumpBuffer > 0 {
		p.jumpBuffer = 0
		p.doJump()
	}
}

// Launch applies an upward velocity override (spring/bouncy landings).
// Counts as the first jump so the chain stays consistent.
func (p *Player) Launch(multiplier float64) {
	p.VelY = p.cfg.Jump.JumpVelocity * multiplier
	p.OnGround = false
	p.Current = nil
	p.jumpCount = 1
	p.State = StateJumping
}

// Airborne marks the player as having left the ground without jumping
// (platform crumbled or disappeared underfoot).
func (p *Player) Airborne() {
	p.OnGround = false
	p.Current = nil
}

// Rect returns the collision box in world pixels.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// updateState refreshes the animation state from velocity.
func (p *Player) updateState() {
	if p.State == StateDead {
		return
	}
	switch {
	case p.heliActive:
		p.State = StateHelicopter
	case p.OnGround:
		p.State = StateRunning
	case p.VelY > 0:
		p.State = StateFalling
	}
}
