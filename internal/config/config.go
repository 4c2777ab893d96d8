// internal/config/config.go
package config

import "image/color"

// Window and frame-loop constants. These never change at runtime.
const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	PixelsPerUnit = 20.0
	HUDPadding    = 12
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{46, 58, 52, 255}
	GridColor       = color.RGBA{70, 100, 120, 90}
	BuildingColor   = color.RGBA{150, 150, 165, 255}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	PlayerShotColor = color.RGBA{255, 215, 0, 255}
	EnemyShotColor  = color.RGBA{255, 120, 40, 255}
	TurretColor     = color.RGBA{240, 240, 240, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthGoodColor = color.RGBA{50, 205, 50, 220}
	HealthLowColor  = color.RGBA{220, 60, 60, 220}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	StrokeWidth     = float32(2.0)
)

// Config is the full set of gameplay tunables. It is built once at startup
// (Default or Load) and shared read-only by every system.
type Config struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Placement PlacementConfig `yaml:"placement"`
	Combat    CombatConfig    `yaml:"combat"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Player    PlayerConfig    `yaml:"player"`
	Contact   ContactConfig   `yaml:"contact"`
}

// ArenaConfig describes the square battlefield and the match timeline.
type ArenaConfig struct {
	HalfSize      float32 `yaml:"half_size"`
	MatchDuration float64 `yaml:"match_duration"` // movement stops after this many seconds
	ShutdownAfter float64 `yaml:"shutdown_after"` // run loop ends after this many seconds
}

// PlacementConfig drives the level-start layout.
type PlacementConfig struct {
	Tries           int     `yaml:"tries"`
	BuildingBase    int     `yaml:"building_base"` // count is in [base, 2*base)
	EnemyBase       int     `yaml:"enemy_base"`
	MinSpacing      float32 `yaml:"min_spacing"`
	MaxCubeOffset   float32 `yaml:"max_cube_offset"`
	MinCubeHalfSize float32 `yaml:"min_cube_half_size"`
}

// CombatConfig holds values shared by both sides of the fight.
type CombatConfig struct {
	Damage             int     `yaml:"damage"`
	FireRate           float32 `yaml:"fire_rate"` // seconds between enemy cooldown shots
	AttackRange        float32 `yaml:"attack_range"`
	AlignmentThreshold float32 `yaml:"alignment_threshold"` // degrees
	FireCone           float32 `yaml:"fire_cone"`           // degrees
	DeformationStep    float32 `yaml:"deformation_step"`
	HitDistance        float32 `yaml:"hit_distance"`
}

// EnemyConfig holds AI vehicle tunables.
type EnemyConfig struct {
	Health             int     `yaml:"health"`
	Radius             float32 `yaml:"radius"`
	Step               float32 `yaml:"step"`      // units per tick
	TurnRate           float32 `yaml:"turn_rate"` // radians per second
	TurretTurnRate     float32 `yaml:"turret_turn_rate"`
	PatternMin         float32 `yaml:"pattern_min"`
	PatternMax         float32 `yaml:"pattern_max"`
	SpawnTimerMin      float32 `yaml:"spawn_timer_min"`
	SpawnTimerMax      float32 `yaml:"spawn_timer_max"`
	BuildingProbe      float32 `yaml:"building_probe"`
	EnemyProbe         float32 `yaml:"enemy_probe"`
	BuildingClearance  float32 `yaml:"building_clearance"`
	SinkSpeed          float32 `yaml:"sink_speed"`
	SinkDepth          float32 `yaml:"sink_depth"`
	ProjectileSpeed    float32 `yaml:"projectile_speed"`
	ProjectileLifespan float32 `yaml:"projectile_lifespan"`
	ProjectileRadius   float32 `yaml:"projectile_radius"`
	TurretLength       float32 `yaml:"turret_length"`
	MuzzleHeight       float32 `yaml:"muzzle_height"`
}

// PlayerConfig holds the player vehicle tunables.
type PlayerConfig struct {
	Health             int     `yaml:"health"`
	Radius             float32 `yaml:"radius"`
	Step               float32 `yaml:"step"`
	TurnRate           float32 `yaml:"turn_rate"`
	TurretTurnRate     float32 `yaml:"turret_turn_rate"`
	FireCooldown       float64 `yaml:"fire_cooldown"`
	ProjectileSpeed    float32 `yaml:"projectile_speed"`
	ProjectileLifespan float32 `yaml:"projectile_lifespan"`
	ProjectileRadius   float32 `yaml:"projectile_radius"`
	CannonLength       float32 `yaml:"cannon_length"`
	MuzzleHeight       float32 `yaml:"muzzle_height"`
}

// ContactConfig tunes vehicle-vehicle resolution.
type ContactConfig struct {
	Smoothing float32 `yaml:"smoothing"`
}

// Default returns the stock tuning of the arena.
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			HalfSize:      20,
			MatchDuration: 60,
			ShutdownAfter: 70,
		},
		Placement: PlacementConfig{
			Tries:           30,
			BuildingBase:    10,
			EnemyBase:       5,
			MinSpacing:      5,
			MaxCubeOffset:   1.5,
			MinCubeHalfSize: 0.5,
		},
		Combat: CombatConfig{
			Damage:             20,
			FireRate:           1.0,
			AttackRange:        5.0,
			AlignmentThreshold: 5.0,
			FireCone:           10.0,
			DeformationStep:    0.1,
			HitDistance:        1.0,
		},
		Enemy: EnemyConfig{
			Health:             100,
			Radius:             1.5,
			Step:               0.05,
			TurnRate:           1.0,
			TurretTurnRate:     2.0,
			PatternMin:         1,
			PatternMax:         5,
			SpawnTimerMin:      3,
			SpawnTimerMax:      10,
			BuildingProbe:      1.0,
			EnemyProbe:         2.0,
			BuildingClearance:  1.1,
			SinkSpeed:          0.5,
			SinkDepth:          1.0,
			ProjectileSpeed:    2.5,
			ProjectileLifespan: 10,
			ProjectileRadius:   0.1,
			TurretLength:       1.0,
			MuzzleHeight:       0.9,
		},
		Player: PlayerConfig{
			Health:             100,
			Radius:             2.2,
			Step:               0.05,
			TurnRate:           1.0,
			TurretTurnRate:     1.0,
			FireCooldown:       2.0,
			ProjectileSpeed:    10,
			ProjectileLifespan: 1.0,
			ProjectileRadius:   0.1,
			CannonLength:       2.0,
			MuzzleHeight:       0.85,
		},
		Contact: ContactConfig{
			Smoothing: 0.1,
		},
	}
}
