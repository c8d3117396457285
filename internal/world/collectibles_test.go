package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// rowOfPlatforms builds static platforms at the given x positions.
func rowOfPlatforms(cfg *config.RunnerConfig, xs ...float64) []*Platform {
	platforms := make([]*Platform, 0, len(xs))
	for _, x := range xs {
		p := NewPlatform(&cfg.Platforms)
		p.Reset(x, 400, 100, TypeStatic, 1)
		platforms = append(platforms, p)
	}
	return platforms
}

func TestCollectiblesSpawnAbovePlatforms(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Collectibles.CoinChance = 1.0 // Force a spawn per platform

	s := NewCollectibleSpawner(&cfg, rand.New(rand.NewSource(1)))
	platforms := rowOfPlatforms(&cfg, 300, 600, 900, 1200)

	s.Update(testDt, 0, platforms, 0, 0, false)

	items := s.Collectibles()
	if len(items) != len(platforms) {
		t.Fatalf("spawned %d collectibles, want %d", len(items), len(platforms))
	}
	for i, c := range items {
		p := platforms[i]
		wantX := p.X + p.Width/2
		if !almostEqual(c.X, wantX) {
			t.Errorf("collectible %d at X=%f, want platform center %f", i, c.X, wantX)
		}
		if c.Y >= p.Y {
			t.Errorf("collectible %d at Y=%f, should float above platform top %f", i, c.Y, p.Y)
		}
		if c.Type != CollectCoin {
			t.Errorf("collectible %d type = %s, want coin", i, c.Type)
		}
	}
}

func TestCollectibleMinSpacing(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Collectibles.CoinChance = 1.0
	cfg.Collectibles.MinSpacing = 500

	s := NewCollectibleSpawner(&cfg, rand.New(rand.NewSource(1)))
	// Platforms packed closer than the spacing floor
	platforms := rowOfPlatforms(&cfg, 300, 450, 600, 750, 900)

	s.Update(testDt, 0, platforms, 0, 0, false)

	items := s.Collectibles()
	for i := 1; i < len(items); i++ {
		if items[i].X-items[i-1].X < cfg.Collectibles.MinSpacing {
			t.Errorf("collectibles %d and %d closer than %f", i-1, i, cfg.Collectibles.MinSpacing)
		}
	}
}

func TestCollectibleMaxActive(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Collectibles.CoinChance = 1.0
	cfg.Collectibles.MinSpacing = 1
	cfg.Collectibles.MaxActive = 3

	s := NewCollectibleSpawner(&cfg, rand.New(rand.NewSource(1)))
	platforms := rowOfPlatforms(&cfg, 100, 300, 500, 700, 900, 1100, 1300)

	s.Update(testDt, 0, platforms, 0, 0, false)

	if n := len(s.Collectibles()); n > cfg.Collectibles.MaxActive {
		t.Errorf("live collectibles = %d, cap is %d", n, cfg.Collectibles.MaxActive)
	}
}

func TestSinglePowerupAtATime(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Collectibles.CoinChance = 0
	cfg.Collectibles.PowerupChance = 1.0
	cfg.Collectibles.MinSpacing = 1

	s := NewCollectibleSpawner(&cfg, rand.New(rand.NewSource(1)))
	platforms := rowOfPlatforms(&cfg, 200, 400, 600, 800, 1000)

	s.Update(testDt, 0, platforms, 0, 0, false)

	powerups := 0
	for _, c := range s.Collectibles() {
		if c.Type != CollectCoin {
			powerups++
		}
	}
	if powerups != 1 {
		t.Errorf("live power-ups = %d, want exactly 1", powerups)
	}
}

func TestMagnetAttraction(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Collectibles.CoinChance = 1.0

	s := NewCollectibleSpawner(&cfg, rand.New(rand.NewSource(1)))
	platforms := rowOfPlatforms(&cfg, 400)
	s.Update(testDt, 0, platforms, 0, 0, false)

	c := s.Collectibles()[0]
	playerX, playerY := c.X+100, c.Y+50 // Inside the magnet radius

	before := math.Hypot(playerX-c.X, playerY-c.Y)
	s.Update(testDt, 0, nil, playerX, playerY, true)
	after := math.Hypot(playerX-c.X, playerY-c.Y)

	if after >= before {
		t.Errorf("magnet should pull the pickup closer: %f -> %f", before, after)
	}
}

func TestMagnetIgnoresDistantPickups(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Collectibles.CoinChance = 1.0

	s := NewCollectibleSpawner(&cfg, rand.New(rand.NewSource(1)))
	platforms := rowOfPlatforms(&cfg, 400)
	s.Update(testDt, 0, platforms, 0, 0, false)

	c := s.Collectibles()[0]
	playerX := c.X + cfg.Collectibles.MagnetRadius*3

	xBefore := c.X
	s.Update(testDt, 0, nil, playerX, c.Y, true)

	if math.Abs(c.X-xBefore) > 1e-9 {
		t.Errorf("out-of-radius pickup moved: %f -> %f", xBefore, c.X)
	}
}

func TestCollectiblesRetireBehindCamera(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Collectibles.CoinChance = 1.0

	s := NewCollectibleSpawner(&cfg, rand.New(rand.NewSource(1)))
	platforms := rowOfPlatforms(&cfg, 300)
	s.Update(testDt, 0, platforms, 0, 0, false)

	if len(s.Collectibles()) != 1 {
		t.Fatal("expected one spawned collectible")
	}

	// Camera far past the pickup plus the retire margin
	s.Update(testDt, 2000, nil, 0, 0, false)
	if len(s.Collectibles()) != 0 {
		t.Errorf("pickup behind the camera should be dropped, %d remain", len(s.Collectibles()))
	}
}

func TestBobStaysNearAnchor(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Collectibles.CoinChance = 1.0

	s := NewCollectibleSpawner(&cfg, rand.New(rand.NewSource(1)))
	platforms := rowOfPlatforms(&cfg, 400)
	s.Update(testDt, 0, platforms, 0, 0, false)

	c := s.Collectibles()[0]
	anchor := c.Y
	for i := 0; i < 600; i++ {
		s.Update(testDt, 0, nil, 0, 0, false)
		if math.Abs(c.Y-anchor) > cfg.Collectibles.BobAmplitude+1e-6 {
			t.Fatalf("bob exceeded amplitude: Y=%f anchor=%f", c.Y, anchor)
		}
	}
}

func TestPowerupDurations(t *testing.T) {
	cases := []struct {
		typ  CollectibleType
		want float64
	}{
		{CollectSpeedBoost, 5.0},
		{CollectMagnet, 8.0},
		{CollectDoublePoints, 10.0},
		{CollectCoin, 0},
		{CollectShield, 0},
		{CollectExtraJump, 0},
	}
	for _, tc := range cases {
		if got := tc.typ.Duration(); !almostEqual(got, tc.want) {
			t.Errorf("%s duration = %f, want %f", tc.typ, got, tc.want)
		}
	}
}
