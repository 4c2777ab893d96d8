// internal/component/render.go
package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawKind selects the shape the renderer uses for a draw call.
type DrawKind uint8

const (
	DrawBuilding DrawKind = iota
	DrawPlayer
	DrawEnemy
	DrawProjectile
)

// DrawCall is a read-only transform + colour handed to the renderer once per
// tick. The renderer never writes back into the simulation.
type DrawCall struct {
	Kind        DrawKind
	Name        string
	Position    mgl32.Vec3
	Scale       mgl32.Vec3
	Rotation    float32
	Turret      float32
	Radius      float32
	Health      int
	Deformation float32
	Color       color.RGBA
}
