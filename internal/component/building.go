// internal/component/building.go
package component

import (
	"go-tank-arena/pkg/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Building is a static box obstacle with a sphere proxy for vehicle contact.
// Buildings never change after placement.
type Building struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3 // half extents
	Name     string
	Radius   float32
}

// NewBuilding derives the collision radius from the box diagonal.
func NewBuilding(pos, scale mgl32.Vec3, name string) Building {
	return Building{
		Position: pos,
		Scale:    scale,
		Name:     name,
		Radius:   0.5 * scale.Len(),
	}
}

// Box is the building's axis-aligned bounds.
func (b *Building) Box() geom.AABB {
	return geom.AABB{Center: b.Position, Half: b.Scale}
}
