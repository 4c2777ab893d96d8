// pkg/geom/box.go
package geom

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned box given by its center and half extents.
type AABB struct {
	Center mgl32.Vec3
	Half   mgl32.Vec3
}

// CubeAround builds the box enclosing a sphere of radius r.
func CubeAround(center mgl32.Vec3, r float32) AABB {
	return AABB{Center: center, Half: mgl32.Vec3{r, r, r}}
}

func (b AABB) Min() mgl32.Vec3 { return b.Center.Sub(b.Half) }
func (b AABB) Max() mgl32.Vec3 { return b.Center.Add(b.Half) }

// Intersects requires strict overlap on all three axes.
func (b AABB) Intersects(o AABB) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	for i := 0; i < 3; i++ {
		if !(bMin[i] < oMax[i] && bMax[i] > oMin[i]) {
			return false
		}
	}
	return true
}
