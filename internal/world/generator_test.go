package world

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/sky-runner/internal/config"
)

func newTestGenerator(seed int64) (*PlatformGenerator, *config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	g := NewPlatformGenerator(&cfg, rand.New(rand.NewSource(seed)), 60)
	return g, &cfg
}

func TestInitialPlatformLayout(t *testing.T) {
	g, cfg := newTestGenerator(42)
	g.GenerateInitialPlatforms()

	platforms := g.Platforms()
	want := 1 + cfg.Generation.InitialCount
	if len(platforms) != want {
		t.Fatalf("initial platform count = %d, want %d", len(platforms), want)
	}

	start := platforms[0]
	if start.X != 0 {
		t.Errorf("starting platform X = %f, want 0", start.X)
	}
	if start.Type != TypeStatic {
		t.Errorf("starting platform type = %s, want static", start.Type)
	}
	if !almostEqual(start.Width, cfg.Platforms.StartWidth*cfg.Platforms.Scale) {
		t.Errorf("starting platform width = %f, want %f", start.Width, cfg.Platforms.StartWidth*cfg.Platforms.Scale)
	}
}

func TestEveryGapIsReachable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		for _, level := range []float64{1.0, 2.0, 3.0} {
			g, cfg := newTestGenerator(seed)
			g.GenerateInitialPlatforms()
			g.level = level

			maxGap := g.reach.MaxReachable() * cfg.Generation.SafetyFactor

			prevRight := g.lastX
			for i := 0; i < 500; i++ {
				g.spawnNext(1000) // Full type table
				p := g.platforms[len(g.platforms)-1]

				gap := p.originX - prevRight
				if gap < cfg.Generation.MinGap-1e-9 {
					t.Fatalf("seed=%d level=%.0f: gap %f below minimum %f", seed, level, gap, cfg.Generation.MinGap)
				}
				if gap > maxGap+1e-9 {
					t.Fatalf("seed=%d level=%.0f: gap %f exceeds max reach %f", seed, level, gap, maxGap)
				}
				prevRight = p.originX + p.Width
			}
		}
	}
}

func TestPlatformVerticalBounds(t *testing.T) {
	g, cfg := newTestGenerator(7)
	g.GenerateInitialPlatforms()
	g.level = 3.0

	lowest := cfg.World.WaterLevel - cfg.World.WaterMargin
	// Each step may rise at most AscendBias and drop at most DescendBias
	// of the single-jump apex; the band clamp can only shrink a step
	maxRise := cfg.Generation.AscendBias * g.reach.ApexHeight
	maxDrop := cfg.Generation.DescendBias * g.reach.ApexHeight
	prevY := g.lastY
	for i := 0; i < 2000; i++ {
		g.spawnNext(1000)
		p := g.platforms[len(g.platforms)-1]
		if p.Y < cfg.World.MinPlatformY || p.Y > lowest {
			t.Fatalf("platform Y = %f outside [%f, %f]", p.Y, cfg.World.MinPlatformY, lowest)
		}
		dy := p.Y - prevY
		if dy < -maxRise-1e-9 || dy > maxDrop+1e-9 {
			t.Fatalf("vertical step %f outside [-%f, %f]", dy, maxRise, maxDrop)
		}
		prevY = p.Y
	}
}

func TestFrontierMonotonic(t *testing.T) {
	g, _ := newTestGenerator(99)
	g.GenerateInitialPlatforms()

	prev, _ := g.Frontier()
	for i := 0; i < 500; i++ {
		g.spawnNext(0)
		x, _ := g.Frontier()
		if x <= prev {
			t.Fatalf("frontier did not advance: %f -> %f", prev, x)
		}
		prev = x
	}
}

func TestPoolRecyclesUnderScroll(t *testing.T) {
	g, cfg := newTestGenerator(5)
	g.GenerateInitialPlatforms()

	// Scroll for 60 simulated seconds at a fast camera speed. Retired
	// platforms must cover new spawns without growing the pool.
	cameraX := 0.0
	for i := 0; i < 60*60; i++ {
		cameraX += 500.0 / 60.0
		g.Update(cameraX, 2.0, 1000)
	}

	if got := g.PoolSize(); got != cfg.Platforms.PoolSize {
		t.Errorf("pool grew to %d, want steady %d", got, cfg.Platforms.PoolSize)
	}

	// Active platforms stay within the camera window
	for _, p := range g.Platforms() {
		if p.originX+p.Width < cameraX-cfg.Generation.RetireMargin-cfg.Platforms.MoveAmplitude {
			t.Errorf("platform at %f left behind camera %f", p.originX, cameraX)
		}
	}
}

func TestGenerationDeterminism(t *testing.T) {
	run := func(seed int64) []float64 {
		g, _ := newTestGenerator(seed)
		g.GenerateInitialPlatforms()
		cameraX := 0.0
		for i := 0; i < 600; i++ {
			cameraX += 400.0 / 60.0
			g.Update(cameraX, 1.5, 500)
		}
		var xs []float64
		for _, p := range g.Platforms() {
			xs = append(xs, p.originX, p.Y, p.Width, float64(p.Type))
		}
		return xs
	}

	a := run(12345)
	b := run(12345)
	if len(a) != len(b) {
		t.Fatalf("layout lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("layouts diverge at %d: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestEarlyTypeGate(t *testing.T) {
	g, cfg := newTestGenerator(11)
	g.GenerateInitialPlatforms()

	// Below the gate only the gentle types may spawn
	for i := 0; i < 300; i++ {
		g.spawnNext(cfg.Generation.TypeGateScore - 1)
		p := g.platforms[len(g.platforms)-1]
		switch p.Type {
		case TypeStatic, TypeMoving, TypeSmall:
		default:
			t.Fatalf("type %s spawned below the gate score", p.Type)
		}
	}

	// At the gate the hazardous types become reachable
	seen := make(map[PlatformType]bool)
	for i := 0; i < 2000; i++ {
		g.spawnNext(cfg.Generation.TypeGateScore)
		seen[g.platforms[len(g.platforms)-1].Type] = true
	}
	for _, typ := range []PlatformType{TypeCrumbling, TypeBouncy, TypeIce, TypeConveyor, TypeDisappearing, TypeSpring} {
		if !seen[typ] {
			t.Errorf("type %s never spawned above the gate", typ)
		}
	}
}

func TestSmallPlatformWidth(t *testing.T) {
	g, cfg := newTestGenerator(3)
	g.GenerateInitialPlatforms()

	for i := 0; i < 1000; i++ {
		g.spawnNext(1000)
		p := g.platforms[len(g.platforms)-1]
		if p.Type == TypeSmall && !almostEqual(p.Width, cfg.Platforms.SmallWidth*cfg.Platforms.Scale) {
			t.Fatalf("small platform width = %f, want %f", p.Width, cfg.Platforms.SmallWidth*cfg.Platforms.Scale)
		}
	}
}

func TestGeneratorReset(t *testing.T) {
	g, cfg := newTestGenerator(21)
	g.GenerateInitialPlatforms()

	cameraX := 0.0
	for i := 0; i < 600; i++ {
		cameraX += 400.0 / 60.0
		g.Update(cameraX, 1.0, 0)
	}

	g.Reset()
	if len(g.Platforms()) != 0 {
		t.Fatal("reset should deactivate all platforms")
	}

	g.GenerateInitialPlatforms()
	platforms := g.Platforms()
	if len(platforms) != 1+cfg.Generation.InitialCount {
		t.Fatalf("regenerated count = %d, want %d", len(platforms), 1+cfg.Generation.InitialCount)
	}
	if platforms[0].X != 0 {
		t.Errorf("regenerated start platform X = %f, want 0", platforms[0].X)
	}
}
