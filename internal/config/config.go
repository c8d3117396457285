// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains all tunable parameters for the runner game.
// All distances are world pixels, all durations seconds, all speeds
// pixels per second unless noted otherwise.
type RunnerConfig struct {
	World        WorldConfig       `yaml:"world"`
	Physics      PhysicsConfig     `yaml:"physics"`
	Jump         JumpConfig        `yaml:"jump"`
	Platforms    PlatformConfig    `yaml:"platforms"`
	Generation   GenerationConfig  `yaml:"generation"`
	Difficulty   DifficultyConfig  `yaml:"difficulty"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Camera       CameraConfig      `yaml:"camera"`
	Scoring      ScoringConfig     `yaml:"scoring"`
}

// WorldConfig defines the virtual world dimensions.
// The renderer maps this fixed pixel space onto whatever terminal size
// the platform reports.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	WaterLevel   float64 `yaml:"water_level"`    // Y of the water surface
	MinPlatformY float64 `yaml:"min_platform_y"` // Top of the platform band
	WaterMargin  float64 `yaml:"water_margin"`   // Gap kept between platforms and water
}

// PhysicsConfig defines global physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	RunSpeed     float64 `yaml:"run_speed"`
}

// JumpConfig defines the player's jump arsenal. Launch velocities are
// negative (up) in screen coordinates.
type JumpConfig struct {
	JumpVelocity        float64 `yaml:"jump_velocity"`
	DoubleJumpVelocity  float64 `yaml:"double_jump_velocity"`
	BoostSpeed          float64 `yaml:"boost_speed"`          // Extra forward speed on double jump
	BoostDuration       float64 `yaml:"boost_duration"`       // How long the boost lasts
	HelicopterFallSpeed float64 `yaml:"helicopter_fall_speed"`
	HelicopterDuration  float64 `yaml:"helicopter_duration"`
	VariableJumpFactor  float64 `yaml:"variable_jump_factor"` // Velocity multiplier on early release
	CoyoteTime          float64 `yaml:"coyote_time"`
	JumpBufferTime      float64 `yaml:"jump_buffer_time"`
}

// PlatformConfig defines platform dimensions and per-type behavior constants.
type PlatformConfig struct {
	Height     float64 `yaml:"height"` // Base height, multiplied by Scale
	Scale      float64 `yaml:"scale"`
	MinWidth   float64 `yaml:"min_width"`
	MaxWidth   float64 `yaml:"max_width"`
	SmallWidth float64 `yaml:"small_width"`
	StartWidth float64 `yaml:"start_width"` // Starting platform base width
	PoolSize   int     `yaml:"pool_size"`

	MoveAmplitude     float64 `yaml:"move_amplitude"`     // Moving: oscillation half-range
	MoveRate          float64 `yaml:"move_rate"`          // Moving: angular rate (rad/s)
	CrumbleDelay      float64 `yaml:"crumble_delay"`      // Crumbling: seconds after landing
	DisappearInterval float64 `yaml:"disappear_interval"` // Disappearing: visible phase
	ReappearInterval  float64 `yaml:"reappear_interval"`  // Disappearing: invisible phase
	SpringForce       float64 `yaml:"spring_force"`       // Spring: launch multiplier
	BounceForce       float64 `yaml:"bounce_force"`       // Bouncy: launch multiplier
	ConveyorSpeed     float64 `yaml:"conveyor_speed"`     // Conveyor: belt speed magnitude
	IceFriction       float64 `yaml:"ice_friction"`       // Ice: friction coefficient
	SquashDecayRate   float64 `yaml:"squash_decay_rate"`  // Squash-and-stretch relax rate (1/s)
}

// GenerationConfig defines the gap/spawn selection parameters.
// The band fractions are empirically tuned constants; the easy/medium/hard
// ranges intentionally overlap at their boundaries to avoid a perceptible
// hard line between bands.
type GenerationConfig struct {
	MinGap        float64 `yaml:"min_gap"`
	MaxGapBase    float64 `yaml:"max_gap_base"`
	GapGrowth     float64 `yaml:"gap_growth"`     // Extra max gap per difficulty level
	SafetyFactor  float64 `yaml:"safety_factor"`  // Fraction of max reach ever used
	EasyShare     float64 `yaml:"easy_share"`     // Probability of an easy gap
	MediumShare   float64 `yaml:"medium_share"`   // Probability of a medium gap
	EasyCap       float64 `yaml:"easy_cap"`       // Easy band: up to this × single-jump reach
	MediumLow     float64 `yaml:"medium_low"`     // Medium band: from this × single-jump reach
	MediumHigh    float64 `yaml:"medium_high"`    // Medium band: up to this × double-jump reach
	HardLow       float64 `yaml:"hard_low"`       // Hard band: from this × double-jump reach
	DescendBias   float64 `yaml:"descend_bias"`   // Vertical offset: down-range × apex height
	AscendBias    float64 `yaml:"ascend_bias"`    // Vertical offset: up-range × apex height
	SpawnDistance float64 `yaml:"spawn_distance"` // Look-ahead past the camera
	RetireMargin  float64 `yaml:"retire_margin"`  // Retirement margin behind the camera
	InitialCount  int     `yaml:"initial_count"`  // Spawn steps after the starting platform
	TypeGateScore int     `yaml:"type_gate_score"` // Score unlocking the full type table
}

// DifficultyConfig defines the run-time difficulty progression.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`         // When false, level stays at InitialLevel
	InitialLevel   float64 `yaml:"initial_level"`   // Starting difficulty level
	MaxLevel       float64 `yaml:"max_level"`       // Level ceiling
	RampSeconds    float64 `yaml:"ramp_seconds"`    // Seconds per +1.0 level
	BaseSpeed      float64 `yaml:"base_speed"`      // Game scroll speed at t=0
	MaxSpeed       float64 `yaml:"max_speed"`       // Speed ceiling
	SpeedInterval  float64 `yaml:"speed_interval"`  // Seconds between speed steps
	SpeedIncrement float64 `yaml:"speed_increment"` // Speed added per step
}

// CollectibleConfig defines pickup spawning and behavior.
type CollectibleConfig struct {
	CoinChance    float64 `yaml:"coin_chance"`    // Coin spawn chance per new platform
	PowerupChance float64 `yaml:"powerup_chance"` // Power-up spawn chance per new platform
	MinSpacing    float64 `yaml:"min_spacing"`    // Minimum pixels between spawns
	MaxActive     int     `yaml:"max_active"`     // Hard cap on live collectibles
	SpawnHeight   float64 `yaml:"spawn_height"`   // Height above the platform top
	MagnetRadius  float64 `yaml:"magnet_radius"`
	MagnetSpeed   float64 `yaml:"magnet_speed"`
	BobAmplitude  float64 `yaml:"bob_amplitude"`
	BobRate       float64 `yaml:"bob_rate"`
}

// CameraConfig defines horizontal camera follow behavior. The view
// always spans the full world height, so there is no vertical follow.
type CameraConfig struct {
	OffsetRatio float64 `yaml:"offset_ratio"` // Player position as ratio of world width
	Smoothing   float64 `yaml:"smoothing"`    // Lerp factor per frame (0-1)
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	PlatformPoints int `yaml:"platform_points"` // First landing on a platform
	CoinPoints     int `yaml:"coin_points"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the starting difficulty level for a preset,
// mapped onto the [1.0, 3.0] level range.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.0
	case DifficultyNormal:
		return 1.6
	case DifficultyHard:
		return 2.4
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
