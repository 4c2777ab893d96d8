// internal/system/player_system.go
package system

import (
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/input"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"
)

// PlayerSystem applies the per-tick input signals to the player vehicle
// and keeps the kill tally.
type PlayerSystem struct {
	cfg    *config.Config
	armory *Armory
	world  *entity.World
}

func NewPlayerSystem(cfg *config.Config, armory *Armory, world *entity.World) *PlayerSystem {
	return &PlayerSystem{cfg: cfg, armory: armory, world: world}
}

// Update moves and turns the player, then handles the fire signal.
// Driving stops with the movement flag; the turret still turns while the
// player is alive.
func (s *PlayerSystem) Update(w *entity.World, in input.Frame, dt float32) {
	p := &w.Player
	if !p.Alive() {
		return
	}
	c := s.cfg.Player

	if !w.StopMovement {
		var turn float32
		if in.TurnLeft {
			turn -= c.TurnRate * dt
		}
		if in.TurnRight {
			turn += c.TurnRate * dt
		}
		// the turret is mounted on the hull and turns with it
		p.Rotation = utils.NormalizeAngle(p.Rotation + turn)
		p.TurretRotation = utils.NormalizeAngle(p.TurretRotation + turn)
		p.CannonAngle = p.Rotation

		heading := geom.Forward(p.Rotation)
		if in.Forward {
			p.Position = p.Position.Add(heading.Mul(c.Step))
		}
		if in.Backward {
			p.Position = p.Position.Sub(heading.Mul(c.Step))
		}
		p.Position = geom.ClampXZ(p.Position, s.cfg.Arena.HalfSize)
	}

	if in.TurretLeft {
		p.TurretRotation = utils.NormalizeAngle(p.TurretRotation - c.TurretTurnRate*dt)
	}
	if in.TurretRight {
		p.TurretRotation = utils.NormalizeAngle(p.TurretRotation + c.TurretTurnRate*dt)
	}

	if in.Fire && !w.StopMovement && s.CanFire(w) {
		s.armory.PlayerShot(w)
		p.LastShotAt = w.GameTime
		p.HasFired = true
	}
}

// CanFire reports whether the fire cooldown has elapsed on the game clock.
func (s *PlayerSystem) CanFire(w *entity.World) bool {
	p := &w.Player
	return !p.HasFired || w.GameTime-p.LastShotAt >= s.cfg.Player.FireCooldown
}

// OnEvent counts enemies destroyed by player projectiles.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	if hit, ok := e.Data.(event.HitData); ok && hit.ProjectileBy == component.OwnerPlayer {
		s.world.Player.Kills++
	}
}
