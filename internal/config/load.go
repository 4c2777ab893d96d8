// internal/config/load.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load reads a YAML overlay from path on top of Default. Keys missing from
// the file keep their default values. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks that every tunable is usable by the simulation.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Arena.HalfSize > 0, "arena.half_size must be positive, got %v", c.Arena.HalfSize)
	check(c.Arena.MatchDuration > 0, "arena.match_duration must be positive, got %v", c.Arena.MatchDuration)
	check(c.Arena.ShutdownAfter >= c.Arena.MatchDuration, "arena.shutdown_after (%v) must not precede match_duration (%v)", c.Arena.ShutdownAfter, c.Arena.MatchDuration)

	check(c.Placement.Tries > 0, "placement.tries must be positive, got %d", c.Placement.Tries)
	check(c.Placement.BuildingBase > 0, "placement.building_base must be positive, got %d", c.Placement.BuildingBase)
	check(c.Placement.EnemyBase > 0, "placement.enemy_base must be positive, got %d", c.Placement.EnemyBase)
	check(c.Placement.MinSpacing > 0, "placement.min_spacing must be positive, got %v", c.Placement.MinSpacing)
	check(c.Placement.MinCubeHalfSize > 0 && c.Placement.MinCubeHalfSize < c.Placement.MaxCubeOffset,
		"placement cube half size range [%v, %v) is empty", c.Placement.MinCubeHalfSize, c.Placement.MaxCubeOffset)
	check(2*(c.Arena.HalfSize-c.Placement.MaxCubeOffset) >= c.Placement.MinSpacing,
		"arena too small for a single building cell")

	check(c.Combat.Damage > 0, "combat.damage must be positive, got %d", c.Combat.Damage)
	check(c.Combat.FireRate > 0, "combat.fire_rate must be positive, got %v", c.Combat.FireRate)
	check(c.Combat.FireCone > 0 && c.Combat.FireCone < 180, "combat.fire_cone must be in (0, 180), got %v", c.Combat.FireCone)
	check(c.Combat.AlignmentThreshold >= 0, "combat.alignment_threshold must not be negative")
	check(c.Combat.DeformationStep >= 0, "combat.deformation_step must not be negative")
	check(c.Combat.HitDistance > 0, "combat.hit_distance must be positive")

	check(c.Enemy.Health > 0, "enemy.health must be positive")
	check(c.Enemy.Radius > 0, "enemy.radius must be positive")
	check(c.Enemy.PatternMin > 0 && c.Enemy.PatternMin <= c.Enemy.PatternMax, "enemy pattern timer range [%v, %v] is invalid", c.Enemy.PatternMin, c.Enemy.PatternMax)
	check(c.Enemy.SpawnTimerMin > 0 && c.Enemy.SpawnTimerMin <= c.Enemy.SpawnTimerMax, "enemy spawn timer range [%v, %v] is invalid", c.Enemy.SpawnTimerMin, c.Enemy.SpawnTimerMax)
	check(c.Enemy.SinkSpeed > 0, "enemy.sink_speed must be positive")
	check(c.Enemy.ProjectileLifespan > 0, "enemy.projectile_lifespan must be positive")

	check(c.Player.Health > 0, "player.health must be positive")
	check(c.Player.Radius > 0, "player.radius must be positive")
	check(c.Player.FireCooldown >= 0, "player.fire_cooldown must not be negative")
	check(c.Player.ProjectileLifespan > 0, "player.projectile_lifespan must be positive")

	check(c.Contact.Smoothing >= 0 && c.Contact.Smoothing <= 1, "contact.smoothing must be in [0, 1], got %v", c.Contact.Smoothing)

	return errors.Join(errs...)
}
