// Package runner implements Sky Runner, a side-scrolling endless runner
// over water. The player auto-runs across procedurally generated
// platforms; every gap is reachable by construction, so a death is
// always a missed jump, never an impossible layout.
package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/registry"
	"github.com/vovakirdan/sky-runner/internal/world"
)

// Game implements the Sky Runner game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     *config.RunnerConfig
	rng     *rand.Rand

	difficulty *world.DifficultyManager
	generator  *world.PlatformGenerator
	spawner    *world.CollectibleSpawner
	physics    *Physics
	player     *Player
	camera     *Camera

	score    int
	coins    int
	gameOver bool
	paused   bool
	tick     int
	dt       float64

	lastScored *world.Platform // Last platform that awarded landing points

	// Power-up state
	shields     int
	speedTimer  float64
	magnetTimer float64
	doubleTimer float64
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Sky Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	g.cfg = &cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// One shared stream: generator and spawner draw from it in a fixed
	// order, so the same seed reproduces the same run
	g.rng = rand.New(rand.NewSource(seed))

	g.difficulty = world.NewDifficultyManager(cfg.Difficulty)
	g.generator = world.NewPlatformGenerator(g.cfg, g.rng, tickRate)
	g.spawner = world.NewCollectibleSpawner(g.cfg, g.rng)
	g.physics = NewPhysics(g.cfg)

	g.generator.GenerateInitialPlatforms()

	// Start standing on the starting platform
	startX, startY := 40.0, cfg.World.Height-200-playerHeight
	if g.player == nil {
		g.player = NewPlayer(g.cfg, startX, startY)
	} else {
		g.player.cfg = g.cfg
		g.player.Reset(startX, startY)
	}
	if g.camera == nil {
		g.camera = NewCamera(g.cfg)
	}
	g.camera.cfg = g.cfg
	g.camera.Reset(g.player.X)

	g.score = 0
	g.coins = 0
	g.gameOver = false
	g.paused = false
	g.tick = 0
	g.lastScored = nil
	g.shields = 0
	g.speedTimer = 0
	g.magnetTimer = 0
	g.doubleTimer = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := g.dt

	g.difficulty.Update(dt)
	g.updatePowerups(dt)

	// Player intent, then integration and collision
	g.player.Update(dt, in.Has(core.ActionJump), in.Has(core.ActionRelease))
	landed := g.physics.Step(g.player, g.generator.Platforms(), dt)
	if landed != nil && landed != g.lastScored {
		g.score += g.points(g.cfg.Scoring.PlatformPoints)
		g.lastScored = landed
	}

	g.camera.Update(g.player.X)

	// World generation trails the camera
	g.generator.Update(g.camera.X, g.difficulty.Level(), g.score)
	g.spawner.Update(dt, g.camera.X, g.generator.Platforms(),
		g.player.X+g.player.Width/2, g.player.Y+g.player.Height/2, g.magnetTimer > 0)

	g.collectPickups()

	if g.physics.InWater(g.player) {
		if g.shields > 0 {
			// Shield absorbs the fall: bounce back out of the water
			g.shields--
			g.player.Y = g.cfg.World.WaterLevel - g.player.Height
			g.player.Launch(1.0)
		} else {
			g.gameOver = true
			g.player.State = StateDead
		}
	}

	return core.StepResult{State: g.State()}
}

// points applies the double-points multiplier when active.
func (g *Game) points(base int) int {
	if g.doubleTimer > 0 {
		return base * 2
	}
	return base
}

// updatePowerups ticks down the timed effects.
func (g *Game) updatePowerups(dt float64) {
	if g.speedTimer > 0 {
		g.speedTimer -= dt
		if g.speedTimer <= 0 {
			g.player.SetPowerBoost(0)
		}
	}
	if g.magnetTimer > 0 {
		g.magnetTimer -= dt
	}
	if g.doubleTimer > 0 {
		g.doubleTimer -= dt
	}
}

// collectPickups resolves overlap between the player and live pickups.
func (g *Game) collectPickups() {
	pr := g.player.Rect()
	for _, c := range g.spawner.Collectibles() {
		if !c.Alive || c.Collected {
			continue
		}
		// Pickups are points with a small grab radius
		box := core.NewRectF(c.X-16, c.Y-16, 32, 32)
		if !pr.Intersects(box) {
			continue
		}
		c.Collected = true
		c.Alive = false
		g.applyPickup(c.Type)
	}
}

// applyPickup activates a collected pickup's effect.
func (g *Game) applyPickup(typ world.CollectibleType) {
	switch typ {
	case world.CollectCoin:
		g.coins++
		g.score += g.points(g.cfg.Scoring.CoinPoints)
	case world.CollectSpeedBoost:
		g.speedTimer = typ.Duration()
		g.player.SetPowerBoost(g.cfg.Jump.BoostSpeed)
	case world.CollectShield:
		g.shields++
	case world.CollectMagnet:
		g.magnetTimer = typ.Duration()
	case world.CollectDoublePoints:
		g.doubleTimer = typ.Duration()
	case world.CollectExtraJump:
		g.player.GrantExtraJump()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
