package world

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// CollectibleType identifies a pickup variant.
type CollectibleType int

const (
	CollectCoin CollectibleType = iota
	CollectSpeedBoost
	CollectShield
	CollectMagnet
	CollectDoublePoints
	CollectExtraJump
)

// String returns a human-readable name for the collectible type.
func (t CollectibleType) String() string {
	switch t {
	case CollectCoin:
		return "coin"
	case CollectSpeedBoost:
		return "speed_boost"
	case CollectShield:
		return "shield"
	case CollectMagnet:
		return "magnet"
	case CollectDoublePoints:
		return "double_points"
	case CollectExtraJump:
		return "extra_jump"
	default:
		return "unknown"
	}
}

// Duration returns how long the power-up effect lasts when collected.
// Zero means instant (coin) or until-consumed (shield, extra jump).
func (t CollectibleType) Duration() float64 {
	switch t {
	case CollectSpeedBoost:
		return 5.0
	case CollectMagnet:
		return 8.0
	case CollectDoublePoints:
		return 10.0
	default:
		return 0
	}
}

// powerupTable holds the non-coin spawn weights. Coins are rolled
// separately and dominate overall spawns.
var powerupTable = []struct {
	typ    CollectibleType
	weight int
}{
	{CollectSpeedBoost, 10},
	{CollectShield, 8},
	{CollectMagnet, 8},
	{CollectDoublePoints, 7},
	{CollectExtraJump, 7},
}

// Collectible is an ephemeral pickup floating above a platform.
type Collectible struct {
	X, Y      float64
	Type      CollectibleType
	Collected bool
	Alive     bool

	baseY    float64 // Anchor for the bob animation
	bobPhase float64
}

// CollectibleSpawner seeds pickups above generated platforms. It is
// reachability-agnostic: it piggybacks on already-valid platform
// placement and never writes back into platform state.
type CollectibleSpawner struct {
	cfg        *config.RunnerConfig
	rng        *rand.Rand
	items      []*Collectible
	lastSpawnX float64
}

// NewCollectibleSpawner creates a spawner drawing from the run's shared
// random stream.
func NewCollectibleSpawner(cfg *config.RunnerConfig, rng *rand.Rand) *CollectibleSpawner {
	return &CollectibleSpawner{cfg: cfg, rng: rng}
}

// Reset clears all collectibles for a new run.
func (s *CollectibleSpawner) Reset() {
	s.items = s.items[:0]
	s.lastSpawnX = 0
}

// Collectibles returns the live pickups.
func (s *CollectibleSpawner) Collectibles() []*Collectible {
	return s.items
}

// Update animates existing pickups, retires the ones behind the camera
// and probabilistically seeds new ones above newly visible platforms.
func (s *CollectibleSpawner) Update(dt, cameraX float64, platforms []*Platform, playerX, playerY float64, magnetActive bool) {
	cc := &s.cfg.Collectibles

	kept := s.items[:0]
	for _, c := range s.items {
		if !c.Alive || c.X < cameraX-s.cfg.Generation.RetireMargin {
			continue
		}

		c.bobPhase += cc.BobRate * dt
		c.Y = c.baseY + math.Sin(c.bobPhase)*cc.BobAmplitude

		if magnetActive {
			s.attract(c, playerX, playerY, dt)
		}

		kept = append(kept, c)
	}
	s.items = kept

	if s.liveCount() >= cc.MaxActive {
		return
	}

	// Seed above platforms entering the spawn window, left to right
	spawnEdge := cameraX + s.cfg.Generation.SpawnDistance
	for _, p := range platforms {
		if p.X <= s.lastSpawnX || p.X >= spawnEdge || p.X <= cameraX {
			continue
		}
		if p.X-s.lastSpawnX < cc.MinSpacing {
			continue
		}
		if s.liveCount() >= cc.MaxActive {
			break
		}

		if s.rng.Float64() < cc.CoinChance {
			s.spawnAbove(p, CollectCoin)
		} else if s.rng.Float64() < cc.PowerupChance && !s.hasLivePowerup() {
			s.spawnAbove(p, s.rollPowerup())
		}
		s.lastSpawnX = p.X
	}
}

// attract pulls a pickup toward the player while the magnet power-up is
// active and the pickup is inside the magnet radius.
func (s *CollectibleSpawner) attract(c *Collectible, playerX, playerY, dt float64) {
	cc := &s.cfg.Collectibles
	dx := playerX - c.X
	dy := playerY - c.Y
	dist := math.Hypot(dx, dy)
	if dist <= 0 || dist > cc.MagnetRadius {
		return
	}
	step := cc.MagnetSpeed * dt
	if step > dist {
		step = dist
	}
	c.X += dx / dist * step
	c.Y += dy / dist * step
	c.baseY = c.Y
}

func (s *CollectibleSpawner) spawnAbove(p *Platform, typ CollectibleType) {
	y := p.Y - s.cfg.Collectibles.SpawnHeight
	c := &Collectible{
		X:     p.X + p.Width/2,
		Y:     y,
		baseY: y,
		Type:  typ,
		Alive: true,
	}
	s.items = append(s.items, c)
}

// rollPowerup picks a non-coin type from the weighted table.
func (s *CollectibleSpawner) rollPowerup() CollectibleType {
	total := 0
	for _, pw := range powerupTable {
		total += pw.weight
	}
	roll := s.rng.Intn(total)
	for _, pw := range powerupTable {
		roll -= pw.weight
		if roll < 0 {
			return pw.typ
		}
	}
	return CollectCoin
}

func (s *CollectibleSpawner) liveCount() int {
	n := 0
	for _, c := range s.items {
		if c.Alive && !c.Collected {
			n++
		}
	}
	return n
}

// hasLivePowerup reports whether a non-coin pickup is already live.
// At most one power-up exists at a time to keep runs readable.
func (s *CollectibleSpawner) hasLivePowerup() bool {
	for _, c := range s.items {
		if c.Alive && !c.Collected && c.Type != CollectCoin {
			return true
		}
	}
	return false
}
