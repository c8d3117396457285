package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Kept in sync with defaults/runner.yaml; used as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        1280,
			Height:       720,
			WaterLevel:   620,
			MinPlatformY: 150,
			WaterMargin:  150,
		},
		Physics: PhysicsConfig{
			Gravity:      2000.0,
			MaxFallSpeed: 1000.0,
			RunSpeed:     400.0,
		},
		Jump: JumpConfig{
			JumpVelocity:        -600.0,
			DoubleJumpVelocity:  -550.0,
			BoostSpeed:          200.0,
			BoostDuration:       0.5,
			HelicopterFallSpeed: 100.0,
			HelicopterDuration:  1.5,
			VariableJumpFactor:  0.5,
			CoyoteTime:          0.1,
			JumpBufferTime:      0.15,
		},
		Platforms: PlatformConfig{
			Height:            16,
			Scale:             2,
			MinWidth:          65,
			MaxWidth:          150,
			SmallWidth:        50,
			StartWidth:        100,
			PoolSize:          20,
			MoveAmplitude:     150.0,
			MoveRate:          2.0,
			CrumbleDelay:      0.5,
			DisappearInterval: 2.0,
			ReappearInterval:  1.5,
			SpringForce:       1.5,
			BounceForce:       1.3,
			ConveyorSpeed:     150.0,
			IceFriction:       0.2,
			SquashDecayRate:   8.0,
		},
		Generation: GenerationConfig{
			MinGap:        120,
			MaxGapBase:    250,
			GapGrowth:     60,
			SafetyFactor:  0.85,
			EasyShare:     0.35,
			MediumShare:   0.30,
			EasyCap:       0.65,
			MediumLow:     0.70,
			MediumHigh:    0.80,
			HardLow:       0.85,
			DescendBias:   0.5,
			AscendBias:    0.3,
			SpawnDistance: 1500,
			RetireMargin:  200,
			InitialCount:  10,
			TypeGateScore: 300,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			InitialLevel:   1.0,
			MaxLevel:       3.0,
			RampSeconds:    60.0,
			BaseSpeed:      300.0,
			MaxSpeed:       600.0,
			SpeedInterval:  10.0,
			SpeedIncrement: 20.0,
		},
		Collectibles: CollectibleConfig{
			CoinChance:    0.25,
			PowerupChance: 0.10,
			MinSpacing:    200,
			MaxActive:     40,
			SpawnHeight:   80,
			MagnetRadius:  150,
			MagnetSpeed:   600,
			BobAmplitude:  5.0,
			BobRate:       3.0,
		},
		Camera: CameraConfig{
			OffsetRatio: 0.3,
			Smoothing:   0.1,
		},
		Scoring: ScoringConfig{
			PlatformPoints: 10,
			CoinPoints:     5,
		},
	}
}
