// pkg/render/arena_renderer.go
package render

import (
	"go-tank-arena/internal/component"
	"go-tank-arena/pkg/geom"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArenaRenderer draws the ground plane from above. World X maps to screen
// X and world Z to screen Y; height only affects sinking wrecks, which fade
// out as they go under.
type ArenaRenderer struct {
	halfSize      float32
	pixelsPerUnit float32
	offsetX       float32
	offsetY       float32
	colors        *ArenaColors
	groundImage   *ebiten.Image
}

func NewArenaRenderer(halfSize, pixelsPerUnit float32, screenWidth, screenHeight int, colors *ArenaColors) *ArenaRenderer {
	r := &ArenaRenderer{
		halfSize:      halfSize,
		pixelsPerUnit: pixelsPerUnit,
		offsetX:       float32(screenWidth) / 2,
		offsetY:       float32(screenHeight) / 2,
		colors:        colors,
		groundImage:   ebiten.NewImage(screenWidth, screenHeight),
	}
	r.renderGroundImage()
	return r
}

// renderGroundImage pre-renders the ground square and its grid.
func (r *ArenaRenderer) renderGroundImage() {
	img := r.groundImage
	img.Fill(r.colors.BackgroundColor)

	x0, y0 := r.toScreen(mgl32.Vec3{-r.halfSize, 0, -r.halfSize})
	side := 2 * r.halfSize * r.pixelsPerUnit
	vector.DrawFilledRect(img, x0, y0, side, side, r.colors.GroundColor, false)

	for v := -r.halfSize; v <= r.halfSize; v += 5 {
		ax, ay := r.toScreen(mgl32.Vec3{v, 0, -r.halfSize})
		bx, by := r.toScreen(mgl32.Vec3{v, 0, r.halfSize})
		vector.StrokeLine(img, ax, ay, bx, by, 1, r.colors.GridColor, false)
		ax, ay = r.toScreen(mgl32.Vec3{-r.halfSize, 0, v})
		bx, by = r.toScreen(mgl32.Vec3{r.halfSize, 0, v})
		vector.StrokeLine(img, ax, ay, bx, by, 1, r.colors.GridColor, false)
	}
	vector.StrokeRect(img, x0, y0, side, side, r.colors.StrokeWidth, DarkenColor(r.colors.GroundColor), false)
}

func (r *ArenaRenderer) toScreen(p mgl32.Vec3) (float32, float32) {
	return r.offsetX + p.X()*r.pixelsPerUnit, r.offsetY + p.Z()*r.pixelsPerUnit
}

// Draw renders one tick's draw calls in list order.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, calls []component.DrawCall) {
	screen.DrawImage(r.groundImage, nil)
	for i := range calls {
		c := &calls[i]
		switch c.Kind {
		case component.DrawBuilding:
			r.drawBuilding(screen, c)
		case component.DrawPlayer, component.DrawEnemy:
			r.drawVehicle(screen, c)
		case component.DrawProjectile:
			x, y := r.toScreen(c.Position)
			vector.DrawFilledCircle(screen, x, y, 3, c.Color, true)
		}
	}
}

func (r *ArenaRenderer) drawBuilding(screen *ebiten.Image, c *component.DrawCall) {
	x, y := r.toScreen(c.Position.Sub(mgl32.Vec3{c.Scale.X(), 0, c.Scale.Z()}))
	w := 2 * c.Scale.X() * r.pixelsPerUnit
	h := 2 * c.Scale.Z() * r.pixelsPerUnit
	vector.DrawFilledRect(screen, x, y, w, h, c.Color, false)
	vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth, DarkenColor(c.Color), false)
}

func (r *ArenaRenderer) drawVehicle(screen *ebiten.Image, c *component.DrawCall) {
	x, y := r.toScreen(c.Position)
	radius := c.Radius * r.pixelsPerUnit
	col := c.Color
	if sunk := -c.Position.Y(); sunk > 0 {
		// wrecks fade as they sink
		col.A = uint8(float32(col.A) * (1 - mgl32.Clamp(sunk, 0, 1)))
	}

	vector.DrawFilledCircle(screen, x, y, radius, col, true)
	vector.StrokeCircle(screen, x, y, radius, r.colors.StrokeWidth, DarkenColor(col), true)

	hull := geom.Forward(c.Rotation).Mul(c.Radius * r.pixelsPerUnit)
	vector.StrokeLine(screen, x, y, x+hull.X(), y+hull.Z(), r.colors.StrokeWidth, DarkenColor(col), true)

	barrel := geom.Forward(c.Turret).Mul((c.Radius + 0.8) * r.pixelsPerUnit)
	vector.StrokeLine(screen, x, y, x+barrel.X(), y+barrel.Z(), 3, r.colors.TurretColor, true)
	vector.DrawFilledCircle(screen, x, y, radius*0.4, r.colors.TurretColor, true)
}
