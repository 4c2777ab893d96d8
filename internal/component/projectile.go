// internal/component/projectile.go
package component

import (
	"go-tank-arena/internal/types"
	"go-tank-arena/pkg/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Owner tells who fired a projectile. It only affects colour and events;
// hit tests treat every projectile the same.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Projectile is a moving sphere with a limited lifespan.
type Projectile struct {
	ID          types.EntityID
	Owner       Owner
	Position    mgl32.Vec3
	Velocity    mgl32.Vec3
	Radius      float32
	Age         float32 // seconds since launch
	MaxLifespan float32
}

// Expired reports whether the projectile has outlived its lifespan.
func (p *Projectile) Expired() bool {
	return p.Age >= p.MaxLifespan
}

// Box is the cube enclosing the projectile sphere.
func (p *Projectile) Box() geom.AABB {
	return geom.CubeAround(p.Position, p.Radius)
}
