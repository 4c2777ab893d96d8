// internal/system/projectile.go
package system

import (
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/event"
	"go-tank-arena/pkg/geom"

	"go.uber.org/zap"
)

// ProjectileSystem moves projectiles, ages them out and applies hits.
// Each pass filters the projectile slice in place, so removals never skip
// or revisit a survivor.
type ProjectileSystem struct {
	cfg             *config.Config
	logger          *zap.Logger
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(cfg *config.Config, logger *zap.Logger, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		cfg:             cfg,
		logger:          logger,
		eventDispatcher: eventDispatcher,
	}
}

// UpdatePlayerHits removes every projectile within hit distance of the
// player and damages the player once per projectile.
func (s *ProjectileSystem) UpdatePlayerHits(w *entity.World) {
	player := &w.Player
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !geom.Overlaps(p.Position, 0, player.Position, s.cfg.Combat.HitDistance) {
			kept = append(kept, p)
			continue
		}
		killed := DamagePlayer(player, s.cfg.Combat.Damage, s.cfg.Combat.DeformationStep)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: event.HitData{
			Target:       player.ID,
			Projectile:   p.ID,
			HealthLeft:   player.Health,
			ProjectileBy: p.Owner,
		}})
		if killed {
			s.logger.Info("player destroyed", zap.Float64("game_time", w.GameTime))
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDestroyed, Data: player.ID})
		}
	}
	w.Projectiles = kept
}

// UpdateMovementAndEnemyHits advances every projectile, drops the expired
// ones without effect and lets each survivor hit at most one live enemy.
// Enemies are scanned in slice order and the scan stops at the first hit.
func (s *ProjectileSystem) UpdateMovementAndEnemyHits(w *entity.World, dt float32) {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		p.Age += dt

		if p.Expired() {
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired, Data: p.ID})
			continue
		}
		if s.hitEnemy(w, &p) {
			continue
		}
		kept = append(kept, p)
	}
	w.Projectiles = kept
}

func (s *ProjectileSystem) hitEnemy(w *entity.World, p *component.Projectile) bool {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active() || !geom.Overlaps(p.Position, 0, e.Position, s.cfg.Combat.HitDistance) {
			continue
		}
		if ApplyDamage(e, s.cfg.Combat.Damage, s.cfg.Combat.DeformationStep) {
			s.logger.Info("enemy destroyed",
				zap.Uint32("enemy", uint32(e.ID)),
				zap.Stringer("by", p.Owner),
				zap.Int("live_enemies", w.LiveEnemies()),
			)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.HitData{
				Target:       e.ID,
				Projectile:   p.ID,
				HealthLeft:   e.Health,
				ProjectileBy: p.Owner,
			}})
		}
		return true
	}
	return false
}

// UpdateBuildingHits removes projectiles whose box overlaps a building.
// Buildings are indestructible.
func (s *ProjectileSystem) UpdateBuildingHits(w *entity.World) {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !hitsAnyBuilding(w.Buildings, p.Box()) {
			kept = append(kept, p)
		}
	}
	w.Projectiles = kept
}

func hitsAnyBuilding(buildings []component.Building, box geom.AABB) bool {
	for i := range buildings {
		if buildings[i].Box().Intersects(box) {
			return true
		}
	}
	return false
}
