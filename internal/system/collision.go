// internal/system/collision.go
package system

import (
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/pkg/geom"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ResolveBuildingContact pushes a ground body out of a building along the
// building-to-body axis by the full penetration depth. Height is untouched.
// The second result reports whether the pair overlapped.
func ResolveBuildingContact(pos mgl32.Vec3, radius float32, b *component.Building, clearance float32) (mgl32.Vec3, bool) {
	reach := radius + clearance
	if !geom.OverlapsSq(pos, reach, b.Position, b.Radius) {
		return pos, false
	}
	dir, depth := geom.Penetration(pos, b.Position, reach+b.Radius)
	return pos.Add(dir.Mul(depth)), true
}

// SplitContact returns equal and opposite displacements that separate two
// overlapping bodies: da moves a away from b, db moves b away from a.
// Together they cover the full penetration depth.
func SplitContact(aPos mgl32.Vec3, aR float32, bPos mgl32.Vec3, bR float32) (da, db mgl32.Vec3, ok bool) {
	dir, depth := geom.Penetration(aPos, bPos, aR+bR)
	if depth <= 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	half := dir.Mul(depth * 0.5)
	return half, half.Mul(-1), true
}

// CollisionSystem separates vehicles from buildings and from each other.
// Contacts are resolved one pair at a time in slice order, so a body
// wedged between two buildings can still touch the first one afterwards.
type CollisionSystem struct {
	cfg    *config.Config
	logger *zap.Logger
}

func NewCollisionSystem(cfg *config.Config, logger *zap.Logger) *CollisionSystem {
	return &CollisionSystem{cfg: cfg, logger: logger}
}

// ResolvePlayerBuildings pushes the player out of every building it touches.
func (s *CollisionSystem) ResolvePlayerBuildings(w *entity.World) {
	p := &w.Player
	for i := range w.Buildings {
		p.Position, _ = ResolveBuildingContact(p.Position, p.Radius, &w.Buildings[i], 0)
	}
}

// ResolveEnemyBuildings pushes every live enemy out of the buildings it
// touches, keeping an extra clearance, and counts the contacts per building.
func (s *CollisionSystem) ResolveEnemyBuildings(w *entity.World) {
	clearance := s.cfg.Enemy.BuildingClearance
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active() {
			continue
		}
		for j := range w.Buildings {
			pos, hit := ResolveBuildingContact(e.Position, e.Radius, &w.Buildings[j], clearance)
			if !hit {
				continue
			}
			e.Position = pos
			e.CountBuildingHit(j)
			if ce := s.logger.Check(zap.DebugLevel, "enemy pushed out of building"); ce != nil {
				ce.Write(zap.Uint32("enemy", uint32(e.ID)), zap.String("building", w.Buildings[j].Name))
			}
		}
	}
}

// ResolveVehicleContacts separates each live enemy from the player and from
// the other live enemies, splitting every overlap evenly. The enemy's net
// correction for the tick is then damped by the smoothing factor. Only an
// enemy touching the player hands the damped share of that contact back to
// the player, in the opposite direction.
func (s *CollisionSystem) ResolveVehicleContacts(w *entity.World) {
	smoothing := s.cfg.Contact.Smoothing
	player := &w.Player

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active() {
			continue
		}
		prev := e.Position

		var nudge mgl32.Vec3
		if de, dp, ok := SplitContact(e.Position, e.Radius, player.Position, player.Radius); ok {
			e.Position = e.Position.Add(de)
			player.Position = player.Position.Add(dp)
			nudge = de.Mul(smoothing)
		}

		for j := range w.Enemies {
			other := &w.Enemies[j]
			if j == i || !other.Active() {
				continue
			}
			if de, do, ok := SplitContact(e.Position, e.Radius, other.Position, other.Radius); ok {
				e.Position = e.Position.Add(de)
				other.Position = other.Position.Add(do)
			}
		}

		smooth := e.Position.Sub(prev).Mul(smoothing)
		e.Position = e.Position.Sub(smooth)
		player.Position = player.Position.Sub(nudge)
	}
}
