package world

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// Vertical drop of the starting platform below the world top.
const startPlatformDrop = 200

// typeWeight is one row of a weighted platform-type table.
type typeWeight struct {
	typ    PlatformType
	weight int
}

// earlyTypeTable applies below the type-gate score: only the gentle
// types are eligible.
var earlyTypeTable = []typeWeight{
	{TypeStatic, 70},
	{TypeMoving, 20},
	{TypeSmall, 10},
}

// fullTypeTable applies at or above the type-gate score. Static stays
// heaviest; the hazardous types are rarest.
var fullTypeTable = []typeWeight{
	{TypeStatic, 30},
	{TypeMoving, 15},
	{TypeSmall, 12},
	{TypeCrumbling, 10},
	{TypeBouncy, 8},
	{TypeIce, 8},
	{TypeConveyor, 8},
	{TypeDisappearing, 5},
	{TypeSpring, 4},
}

// PlatformGenerator maintains the frontier of platforms ahead of the
// camera. It owns the platform pool and the ordered active list; every
// gap it produces is reachable by construction (banded selection under
// a safety-scaled maximum reach), so there is no runtime failure path.
type PlatformGenerator struct {
	cfg   *config.RunnerConfig
	rng   *rand.Rand
	reach Reach
	dt    float64 // Fixed behavior timestep

	pool      []*Platform
	platforms []*Platform // Active platforms, spawn order = left-to-right

	lastX float64 // Frontier: right edge of the newest platform
	lastY float64
	level float64 // Difficulty level from the last Update
}

// NewPlatformGenerator creates a generator with a preallocated pool.
// The rng is the run's shared stream; a seeded rng reproduces an
// identical platform sequence.
func NewPlatformGenerator(cfg *config.RunnerConfig, rng *rand.Rand, tickRate int) *PlatformGenerator {
	if tickRate <= 0 {
		tickRate = 60
	}
	g := &PlatformGenerator{
		cfg:   cfg,
		rng:   rng,
		reach: ComputeReach(cfg.Physics, cfg.Jump),
		dt:    1.0 / float64(tickRate),
		level: cfg.Difficulty.InitialLevel,
	}
	g.pool = make([]*Platform, 0, cfg.Platforms.PoolSize)
	for i := 0; i < cfg.Platforms.PoolSize; i++ {
		g.pool = append(g.pool, NewPlatform(&cfg.Platforms))
	}
	g.resetFrontier()
	return g
}

// Reach exposes the arc-model bounds in effect, for tests and HUD.
func (g *PlatformGenerator) Reach() Reach {
	return g.reach
}

func (g *PlatformGenerator) resetFrontier() {
	g.lastX = 0
	g.lastY = g.cfg.World.Height - startPlatformDrop
}

// GenerateInitialPlatforms clears frontier state, places the fixed
// starting platform at the run origin and pre-populates a runway.
// Must be called exactly once per run, before the first Update.
func (g *PlatformGenerator) GenerateInitialPlatforms() {
	g.platforms = g.platforms[:0]
	g.resetFrontier()

	start := g.acquire()
	start.Reset(0, g.lastY, g.cfg.Platforms.StartWidth, TypeStatic, 1)
	g.platforms = append(g.platforms, start)
	g.lastX = start.Width

	for i := 0; i < g.cfg.Generation.InitialCount; i++ {
		g.spawnNext(0)
	}
}

// Update drives one frame of generation: retire platforms that scrolled
// behind the camera, extend the frontier up to the look-ahead distance,
// then advance every active platform's behavior state.
func (g *PlatformGenerator) Update(cameraX, level float64, score int) {
	g.level = level

	// Retire: right edge behind camera - margin goes back to the pool.
	// Platforms that deactivated themselves (crumbled) are dropped too.
	kept := g.platforms[:0]
	for _, p := range g.platforms {
		if !p.Active {
			continue
		}
		if p.X+p.Width <= cameraX-g.cfg.Generation.RetireMargin {
			p.Active = false
			continue
		}
		kept = append(kept, p)
	}
	g.platforms = kept

	// Extend the frontier ahead of the camera
	for g.lastX < cameraX+g.cfg.Generation.SpawnDistance {
		g.spawnNext(score)
	}

	// Advance behaviors by one fixed timestep
	for _, p := range g.platforms {
		p.Update(g.dt)
	}
}

// Platforms returns the active platforms in spawn order. This is the
// list the physics collaborator collides against and the renderer draws.
func (g *PlatformGenerator) Platforms() []*Platform {
	active := make([]*Platform, 0, len(g.platforms))
	for _, p := range g.platforms {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// Frontier returns the trailing spawn anchor (right edge of the newest
// platform and its y).
func (g *PlatformGenerator) Frontier() (x, y float64) {
	return g.lastX, g.lastY
}

// PoolSize returns the current pool capacity, including any growth.
func (g *PlatformGenerator) PoolSize() int {
	return len(g.pool)
}

// Reset deactivates the entire pool and clears frontier state, ready
// for the next GenerateInitialPlatforms call.
func (g *PlatformGenerator) Reset() {
	for _, p := range g.pool {
		p.Active = false
	}
	g.platforms = g.platforms[:0]
	g.resetFrontier()
	g.level = g.cfg.Difficulty.InitialLevel
}

// spawnNext performs one spawn step: pick a gap band, a platform type,
// a width and a vertical offset, then anchor a pooled platform at the
// frontier and advance it.
func (g *PlatformGenerator) spawnNext(score int) {
	gen := &g.cfg.Generation

	gap := g.chooseGap(gen)
	typ := g.chooseType(gen, score)

	var width float64
	if typ == TypeSmall {
		width = g.cfg.Platforms.SmallWidth
	} else {
		width = g.uniform(g.cfg.Platforms.MinWidth, g.cfg.Platforms.MaxWidth)
	}

	// Vertical offset biased toward descending (positive y = lower =
	// easier), bounded by the single-jump apex so the next platform is
	// never out of vertical reach.
	dy := g.uniform(-gen.AscendBias*g.reach.ApexHeight, gen.DescendBias*g.reach.ApexHeight)
	y := g.lastY + dy
	y = math.Max(g.cfg.World.MinPlatformY, math.Min(g.cfg.World.WaterLevel-g.cfg.World.WaterMargin, y))

	beltDir := 1.0
	if typ == TypeConveyor && g.rng.Float64() < 0.5 {
		beltDir = -1.0
	}

	x := g.lastX + gap
	p := g.acquire()
	p.Reset(x, y, width, typ, beltDir)
	g.platforms = append(g.platforms, p)

	g.lastX = x + p.Width
	g.lastY = y
}

// chooseGap rolls a difficulty-scaled gap from one of three overlapping
// bands: easy (plain jump), medium (double jump), hard (needs the
// glide). The band shares and overlap are tuned constants, preserved
// exactly - the overlap smooths the perceived transition between bands.
func (g *PlatformGenerator) chooseGap(gen *config.GenerationConfig) float64 {
	maxReach := g.reach.MaxReachable() * gen.SafetyFactor
	cappedMax := math.Min(gen.MaxGapBase+g.level*gen.GapGrowth, maxReach)

	var lo, hi float64
	switch roll := g.rng.Float64(); {
	case roll < gen.EasyShare:
		lo, hi = gen.MinGap, gen.EasyCap*g.reach.SingleJump
	case roll < gen.EasyShare+gen.MediumShare:
		lo, hi = gen.MediumLow*g.reach.SingleJump, gen.MediumHigh*g.reach.DoubleJump
	default:
		lo, hi = gen.HardLow*g.reach.DoubleJump, cappedMax
	}
	if hi < lo {
		hi = lo
	}

	gap := g.uniform(lo, hi)
	// Structural guarantee: never exceed the safety-scaled reach
	return math.Min(gap, maxReach)
}

// chooseType rolls a platform type from the score-gated weight table.
func (g *PlatformGenerator) chooseType(gen *config.GenerationConfig, score int) PlatformType {
	table := earlyTypeTable
	if score >= gen.TypeGateScore {
		table = fullTypeTable
	}

	total := 0
	for _, tw := range table {
		total += tw.weight
	}
	roll := g.rng.Intn(total)
	for _, tw := range table {
		roll -= tw.weight
		if roll < 0 {
			return tw.typ
		}
	}
	return TypeStatic
}

// acquire returns the first inactive pool slot, growing the pool only
// if every slot is live. Growth is an escape valve, not the steady state.
func (g *PlatformGenerator) acquire() *Platform {
	for _, p := range g.pool {
		if !p.Active {
			return p
		}
	}
	p := NewPlatform(&g.cfg.Platforms)
	g.pool = append(g.pool, p)
	return p
}

func (g *PlatformGenerator) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}
