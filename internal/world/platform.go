package world

import (
	"math"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

// PlatformType identifies a platform's behavior variant.
type PlatformType int

const (
	TypeStatic PlatformType = iota
	TypeMoving
	TypeSmall
	TypeCrumbling
	TypeBouncy
	TypeIce
	TypeConveyor
	TypeDisappearing
	TypeSpring
)

// String returns a human-readable name for the platform type.
func (t PlatformType) String() string {
	switch t {
	case TypeStatic:
		return "static"
	case TypeMoving:
		return "moving"
	case TypeSmall:
		return "small"
	case TypeCrumbling:
		return "crumbling"
	case TypeBouncy:
		return "bouncy"
	case TypeIce:
		return "ice"
	case TypeConveyor:
		return "conveyor"
	case TypeDisappearing:
		return "disappearing"
	case TypeSpring:
		return "spring"
	default:
		return "unknown"
	}
}

// EffectKind classifies the surface effect a platform exerts on a
// grounded player.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectFriction       // Value is a friction coefficient (ice)
	EffectConveyorPush   // Value is a signed belt speed in px/s
	EffectSpringLaunch   // Value is a launch velocity multiplier
)

// SurfaceEffect is the capability query the player/physics collaborator
// reads instead of branching on the platform type in multiple places.
type SurfaceEffect struct {
	Kind  EffectKind
	Value float64
}

// Squash-and-stretch bounds for the cosmetic landing animation.
const (
	minSquash    = 0.5
	maxSquash    = 1.5
	landedSquash = 0.6
)

// Platform is a recyclable landing surface. Instances live in the
// generator's pool; Reset reinitializes a pooled instance for reuse and
// is effectively construction.
type Platform struct {
	X, Y   float64 // Top-left, world pixels
	Width  float64
	Height float64
	Type   PlatformType
	Active bool // Pool liveness: inactive platforms neither collide nor render

	cfg *config.PlatformConfig

	// Moving: sine oscillation around the spawn x
	originX float64
	phase   float64

	// Crumbling: Stable -> Landed -> Collapsed, no way back
	landed       bool
	crumbleTimer float64

	// Disappearing: two-phase visible/invisible cycle
	cycleTime float64

	// Spring/Bouncy: decaying compression after a landing
	compression float64
	launchForce float64

	// Conveyor: signed belt speed
	beltSpeed float64

	// Cosmetic vertical scale, relaxing back to 1.0
	squash float64
}

// NewPlatform creates an inactive platform bound to the shared behavior
// constants. Pool slots are created once at startup.
func NewPlatform(cfg *config.PlatformConfig) *Platform {
	return &Platform{cfg: cfg, squash: 1.0}
}

// Reset reinitializes this platform for reuse from the pool.
// baseWidth is multiplied by the configured scale; beltDir (+1/-1) only
// matters for conveyor platforms.
func (p *Platform) Reset(x, y, baseWidth float64, typ PlatformType, beltDir float64) {
	p.X = x
	p.Y = y
	p.Width = baseWidth * p.cfg.Scale
	p.Height = p.cfg.Height * p.cfg.Scale
	p.Type = typ
	p.Active = true

	p.originX = x
	p.phase = 0

	p.landed = false
	p.crumbleTimer = 0

	p.cycleTime = 0

	p.compression = 0
	switch typ {
	case TypeSpring:
		p.launchForce = p.cfg.SpringForce
	case TypeBouncy:
		p.launchForce = p.cfg.BounceForce
	default:
		p.launchForce = 0
	}

	if beltDir >= 0 {
		p.beltSpeed = p.cfg.ConveyorSpeed
	} else {
		p.beltSpeed = -p.cfg.ConveyorSpeed
	}

	p.squash = 1.0
}

// Update advances this platform's behavior state by one fixed timestep.
func (p *Platform) Update(dt float64) {
	if !p.Active {
		return
	}

	switch p.Type {
	case TypeMoving:
		p.phase += dt
		p.X = p.originX + math.Sin(p.phase*p.cfg.MoveRate)*p.cfg.MoveAmplitude
	case TypeCrumbling:
		if p.landed {
			p.crumbleTimer += dt
			if p.crumbleTimer >= p.cfg.CrumbleDelay {
				// Collapsed: disappears and stops colliding
				p.Active = false
			}
		}
	case TypeDisappearing:
		p.cycleTime += dt
	case TypeSpring, TypeBouncy:
		p.compression *= math.Exp(-p.cfg.SquashDecayRate * dt)
	case TypeStatic, TypeSmall, TypeIce, TypeConveyor:
		// No per-tick behavior
	}

	// Generic squash-and-stretch relaxation, purely cosmetic
	p.squash = 1.0 + (p.squash-1.0)*math.Exp(-p.cfg.SquashDecayRate*dt)
	p.squash = core.ClampF(p.squash, minSquash, maxSquash)
}

// OnPlayerLand is the sole external trigger into platform behavior.
// Called by the physics collaborator after it resolves a landing.
func (p *Platform) OnPlayerLand() {
	switch p.Type {
	case TypeCrumbling:
		p.landed = true
	case TypeSpring, TypeBouncy:
		p.compression = 1.0
	case TypeStatic, TypeMoving, TypeSmall, TypeIce, TypeConveyor, TypeDisappearing:
		// No landing reaction beyond the squash below
	}
	p.squash = landedSquash
}

// IsVisible reports whether the platform is in its visible phase.
// Only disappearing platforms ever return false; the visible/invisible
// split is determined purely by elapsed cycle time, independent of the
// player. Invisible platforms stay Active - collision filtering is the
// physics collaborator's job.
func (p *Platform) IsVisible() bool {
	if p.Type != TypeDisappearing {
		return true
	}
	period := p.cfg.DisappearInterval + p.cfg.ReappearInterval
	if period <= 0 {
		return true
	}
	return math.Mod(p.cycleTime, period) < p.cfg.DisappearInterval
}

// SurfaceEffect returns the effect this platform exerts on a grounded
// player. Centralizes the player/platform contract so movement code
// never switches on the type enum.
func (p *Platform) SurfaceEffect() SurfaceEffect {
	switch p.Type {
	case TypeIce:
		return SurfaceEffect{Kind: EffectFriction, Value: p.cfg.IceFriction}
	case TypeConveyor:
		return SurfaceEffect{Kind: EffectConveyorPush, Value: p.beltSpeed}
	case TypeSpring, TypeBouncy:
		return SurfaceEffect{Kind: EffectSpringLaunch, Value: p.launchForce}
	case TypeStatic, TypeMoving, TypeSmall, TypeCrumbling, TypeDisappearing:
		return SurfaceEffect{Kind: EffectNone}
	default:
		return SurfaceEffect{Kind: EffectNone}
	}
}

// Rect returns the collision rectangle in world pixels.
func (p *Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Squash returns the cosmetic vertical scale factor for rendering.
func (p *Platform) Squash() float64 {
	return p.squash
}

// Compression returns the spring/bouncy compression for rendering,
// decaying from 1.0 after a landing.
func (p *Platform) Compression() float64 {
	return p.compression
}

// CrumbleProgress returns how far a landed crumbling platform is toward
// collapse, in [0, 1]. Zero for untouched or non-crumbling platforms.
func (p *Platform) CrumbleProgress() float64 {
	if p.Type != TypeCrumbling || !p.landed || p.cfg.CrumbleDelay <= 0 {
		return 0
	}
	return core.ClampF(p.crumbleTimer/p.cfg.CrumbleDelay, 0, 1)
}
