// internal/system/weapons.go
package system

import (
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Armory spawns projectiles for both sides.
type Armory struct {
	cfg             *config.Config
	eventDispatcher *event.Dispatcher
}

func NewArmory(cfg *config.Config, eventDispatcher *event.Dispatcher) *Armory {
	return &Armory{cfg: cfg, eventDispatcher: eventDispatcher}
}

// EnemyShot launches a projectile from the enemy turret tip straight at
// the player.
func (a *Armory) EnemyShot(w *entity.World, e *component.Enemy) types.EntityID {
	c := a.cfg.Enemy
	tip := e.Position.
		Add(geom.Forward(e.TurretRotation).Mul(c.TurretLength)).
		Add(mgl32.Vec3{0, c.MuzzleHeight, 0})
	aim := geom.Direction(geom.Flatten(w.Player.Position.Sub(e.Position)))

	return a.launch(w, e.ID, component.Projectile{
		Owner:       component.OwnerEnemy,
		Position:    tip,
		Velocity:    aim.Mul(c.ProjectileSpeed),
		Radius:      c.ProjectileRadius,
		MaxLifespan: c.ProjectileLifespan,
	})
}

// PlayerShot launches a projectile from the player's cannon along the
// turret heading.
func (a *Armory) PlayerShot(w *entity.World) types.EntityID {
	c := a.cfg.Player
	p := &w.Player
	heading := geom.Forward(p.TurretRotation)
	tip := p.Position.
		Add(heading.Mul(c.CannonLength)).
		Add(mgl32.Vec3{0, c.MuzzleHeight, 0})

	return a.launch(w, p.ID, component.Projectile{
		Owner:       component.OwnerPlayer,
		Position:    tip,
		Velocity:    heading.Mul(c.ProjectileSpeed),
		Radius:      c.ProjectileRadius,
		MaxLifespan: c.ProjectileLifespan,
	})
}

func (a *Armory) launch(w *entity.World, shooter types.EntityID, p component.Projectile) types.EntityID {
	id := w.AddProjectile(p)
	a.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ShotData{
		Projectile: id,
		Shooter:    shooter,
		Owner:      p.Owner,
		Origin:     p.Position,
	}})
	return id
}
