// internal/component/vehicle.go
package component

import (
	"go-tank-arena/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

// Hull is the shape shared by the player and enemy vehicles.
type Hull struct {
	ID             types.EntityID
	Position       mgl32.Vec3
	Rotation       float32 // body heading, radians
	TurretRotation float32 // absolute turret heading, radians
	Radius         float32
	Health         int
	Deformation    float32 // [0,1], only ever grows
}

// Deform raises the deformation level by step, capped at 1.
func (h *Hull) Deform(step float32) {
	h.Deformation += step
	if h.Deformation > 1 {
		h.Deformation = 1
	}
}

// Alive reports whether the hull still has health.
func (h *Hull) Alive() bool {
	return h.Health > 0
}
