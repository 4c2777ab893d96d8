// internal/system/ai.go
package system

import (
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// EnemySystem drives every AI vehicle: pattern rolls, movement, turret
// tracking, both firing paths and the post-death sink animation.
type EnemySystem struct {
	cfg             *config.Config
	logger          *zap.Logger
	rng             *utils.PRNGService
	armory          *Armory
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(cfg *config.Config, logger *zap.Logger, rng *utils.PRNGService, armory *Armory, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{
		cfg:             cfg,
		logger:          logger,
		rng:             rng,
		armory:          armory,
		eventDispatcher: eventDispatcher,
	}
}

// SenseRange flags the enemies that are within attack range of the player.
func (s *EnemySystem) SenseRange(w *entity.World) {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		e.PlayerInRange = e.Active() &&
			geom.HorizontalDist(e.Position, w.Player.Position) <= s.cfg.Combat.AttackRange
	}
}

// Update runs one AI tick for every live enemy. Destroyed enemies are left
// to UpdateSinking.
func (s *EnemySystem) Update(w *entity.World, dt float32) {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active() {
			continue
		}
		s.tickPatternTimer(e, dt)
		if !w.StopMovement {
			s.move(w, i, dt)
		}
		s.trackTurret(e, w.Player.Position, dt)
		s.fireControl(w, e, dt)
	}
}

func (s *EnemySystem) tickPatternTimer(e *component.Enemy, dt float32) {
	e.PatternTimer -= dt
	if e.PatternTimer <= 0 {
		e.Pattern = s.rollPattern()
		e.PatternTimer = s.rng.Range(s.cfg.Enemy.PatternMin, s.cfg.Enemy.PatternMax)
	}
}

func (s *EnemySystem) rollPattern() component.MovementPattern {
	return component.MovementPattern(s.rng.Intn(component.PatternCount))
}

// move applies the current pattern for one tick. A step that would bring
// the enemy near a building or another tank is discarded entirely and the
// pattern is re-rolled on the spot.
func (s *EnemySystem) move(w *entity.World, i int, dt float32) {
	e := &w.Enemies[i]
	c := s.cfg.Enemy

	pos, rot := e.Position, e.Rotation
	switch e.Pattern {
	case component.MoveForward:
		pos = pos.Add(geom.Forward(rot).Mul(c.Step))
	case component.MoveBackward:
		pos = pos.Sub(geom.Forward(rot).Mul(c.Step))
	case component.RotateCW:
		rot += c.TurnRate * dt
	case component.RotateCCW:
		rot -= c.TurnRate * dt
	}
	pos = geom.ClampXZ(pos, s.cfg.Arena.HalfSize)

	if s.blocked(w, i, pos) {
		e.Pattern = s.rollPattern()
		return
	}
	e.Position = pos
	e.Rotation = utils.NormalizeAngle(rot)
}

// blocked probes a prospective position with fixed radii: buildings use the
// building probe, other tanks use the enemy probe plus this tank's radius.
// Wrecks block until they have sunk out of sight.
func (s *EnemySystem) blocked(w *entity.World, i int, pos mgl32.Vec3) bool {
	c := s.cfg.Enemy
	for j := range w.Buildings {
		b := &w.Buildings[j]
		if geom.OverlapsSq(pos, c.BuildingProbe, b.Position, b.Radius) {
			return true
		}
	}
	self := &w.Enemies[i]
	for j := range w.Enemies {
		other := &w.Enemies[j]
		if j == i || !other.Renderable {
			continue
		}
		if geom.OverlapsSq(pos, c.EnemyProbe+self.Radius, other.Position, 0) {
			return true
		}
	}
	return false
}

func (s *EnemySystem) trackTurret(e *component.Enemy, target mgl32.Vec3, dt float32) {
	bearing := geom.Bearing(e.Position, target)
	e.TurretRotation = utils.RotateTowards(e.TurretRotation, bearing, s.cfg.Enemy.TurretTurnRate*dt)
}

// fireControl runs the two independent firing paths. The reload path fires
// whenever the reload timer elapses. The aimed path fires when the player
// is in range and the turret sits within the alignment threshold, on its
// own timer. Both can be due on the same tick; only one shot leaves the
// barrel and the aimed path waits for the next tick.
func (s *EnemySystem) fireControl(w *entity.World, e *component.Enemy, dt float32) {
	c := s.cfg.Combat
	e.TimeSinceLastShot += dt
	e.TimeSinceAimedShot += dt

	fired := false
	if e.TimeSinceLastShot >= c.FireRate {
		e.TimeSinceLastShot = 0
		fired = s.Fire(w, e)
	}

	if fired || !e.PlayerInRange || !w.Player.Alive() || e.TimeSinceAimedShot < c.FireRate {
		return
	}
	bearing := geom.Bearing(e.Position, w.Player.Position)
	if abs32(utils.AngleBetween(e.TurretRotation, bearing)) <= utils.DegToRad(c.AlignmentThreshold) {
		if s.Fire(w, e) {
			e.TimeSinceAimedShot = 0
		}
	}
}

// Fire shoots at the player if the turret points within the fire cone of
// the true bearing. Exactly on the cone edge does not fire.
func (s *EnemySystem) Fire(w *entity.World, e *component.Enemy) bool {
	if !w.Player.Alive() || !InFireCone(e.TurretRotation, e.Position, w.Player.Position, s.cfg.Combat.FireCone) {
		return false
	}
	s.armory.EnemyShot(w, e)
	return true
}

// InFireCone reports whether a turret heading is strictly within coneDeg
// degrees of the bearing from `from` to `to`.
func InFireCone(turret float32, from, to mgl32.Vec3, coneDeg float32) bool {
	offset := abs32(utils.AngleBetween(turret, geom.Bearing(from, to)))
	return offset < utils.DegToRad(coneDeg)
}

// UpdateSinking lowers destroyed enemies until they drop out of sight.
func (s *EnemySystem) UpdateSinking(w *entity.World, dt float32) {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Active() || !e.Renderable {
			continue
		}
		e.SinkDepth += dt * e.SinkSpeed
		if e.SinkDepth >= s.cfg.Enemy.SinkDepth {
			e.Renderable = false
			s.logger.Debug("enemy sunk", zap.Uint32("enemy", uint32(e.ID)))
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySunk, Data: e.ID})
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
