// internal/system/render.go
package system

import (
	"image/color"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderSystem turns the world into a flat list of draw calls. It only
// reads the world.
type RenderSystem struct {
	calls []component.DrawCall
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Collect returns this tick's draw calls: buildings first, then enemies
// that are still visible, the player and finally projectiles. The returned
// slice is reused on the next call.
func (s *RenderSystem) Collect(w *entity.World) []component.DrawCall {
	s.calls = s.calls[:0]
	if w.StopRender {
		return s.calls
	}

	for i := range w.Buildings {
		b := &w.Buildings[i]
		s.calls = append(s.calls, component.DrawCall{
			Kind:     component.DrawBuilding,
			Name:     b.Name,
			Position: b.Position,
			Scale:    b.Scale,
			Radius:   b.Radius,
			Color:    config.BuildingColor,
		})
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Renderable {
			continue
		}
		pos := e.Position.Sub(mgl32.Vec3{0, e.SinkDepth, 0})
		s.calls = append(s.calls, component.DrawCall{
			Kind:        component.DrawEnemy,
			Position:    pos,
			Rotation:    e.Rotation,
			Turret:      e.TurretRotation,
			Radius:      e.Radius,
			Health:      e.Health,
			Deformation: e.Deformation,
			Color:       Shade(config.EnemyColor, e.Deformation),
		})
	}

	p := &w.Player
	s.calls = append(s.calls, component.DrawCall{
		Kind:        component.DrawPlayer,
		Position:    p.Position,
		Rotation:    p.Rotation,
		Turret:      p.TurretRotation,
		Radius:      p.Radius,
		Health:      p.Health,
		Deformation: p.Deformation,
		Color:       Shade(config.PlayerColor, p.Deformation),
	})

	for i := range w.Projectiles {
		pr := &w.Projectiles[i]
		c := config.EnemyShotColor
		if pr.Owner == component.OwnerPlayer {
			c = config.PlayerShotColor
		}
		s.calls = append(s.calls, component.DrawCall{
			Kind:     component.DrawProjectile,
			Position: pr.Position,
			Radius:   pr.Radius,
			Color:    c,
		})
	}
	return s.calls
}

// Shade darkens a colour toward half brightness as deformation goes to 1.
func Shade(c color.RGBA, deformation float32) color.RGBA {
	k := utils.Lerp(1, 0.5, deformation)
	return color.RGBA{
		R: uint8(float32(c.R) * k),
		G: uint8(float32(c.G) * k),
		B: uint8(float32(c.B) * k),
		A: c.A,
	}
}
