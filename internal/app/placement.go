// internal/app/placement.go
package app

import (
	"fmt"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Populate lays out buildings first, then enemies around them.
func (g *Game) Populate() {
	buildings := g.PlaceBuildings()
	enemies := g.PlaceEnemies()
	g.Logger.Info("arena populated", zap.Int("buildings", buildings), zap.Int("enemies", enemies))
}

// PlaceBuildings puts a random number of boxes on a coarse grid, at most
// one per cell and never on top of the player. A building that finds no
// free cell within the allowed tries is skipped.
func (g *Game) PlaceBuildings() int {
	pc := g.Config.Placement
	half := g.Config.Arena.HalfSize
	player := &g.World.Player

	count := g.Rng.Intn(pc.BuildingBase) + pc.BuildingBase
	cells := int((2*half - 2*pc.MaxCubeOffset) / pc.MinSpacing)
	cellCenter := func(c int) float32 {
		return float32(c)*pc.MinSpacing + pc.MinSpacing/2 - half + pc.MaxCubeOffset
	}
	occupied := make(map[[2]int]bool)

	placed := 0
	for i := 0; i < count; i++ {
		var b component.Building
		found := false
		for try := 0; try < pc.Tries && !found; try++ {
			scale := mgl32.Vec3{
				g.Rng.Range(pc.MinCubeHalfSize, pc.MaxCubeOffset),
				2 * g.Rng.Range(pc.MinCubeHalfSize, pc.MaxCubeOffset),
				g.Rng.Range(pc.MinCubeHalfSize, pc.MaxCubeOffset),
			}
			cell := [2]int{g.Rng.Intn(cells), g.Rng.Intn(cells)}
			if occupied[cell] {
				continue
			}
			pos := mgl32.Vec3{cellCenter(cell[0]), scale.Y(), cellCenter(cell[1])}
			b = component.NewBuilding(pos, scale, fmt.Sprintf("cube%d", i))
			if geom.OverlapsSq(pos, b.Radius, player.Position, player.Radius) {
				continue
			}
			occupied[cell] = true
			found = true
		}
		if !found {
			g.placementFailed("building", i)
			continue
		}
		g.World.AddBuilding(b)
		g.Logger.Debug("building created", zap.String("name", b.Name), zap.Float32("radius", b.Radius))
		placed++
	}
	return placed
}

// PlaceEnemies scatters a random number of enemies over the arena, clear
// of buildings (with the contact clearance), the player and each other.
func (g *Game) PlaceEnemies() int {
	pc := g.Config.Placement
	ec := g.Config.Enemy
	half := g.Config.Arena.HalfSize

	count := g.Rng.Intn(pc.EnemyBase) + pc.EnemyBase
	placed := 0
	for i := 0; i < count; i++ {
		var pos mgl32.Vec3
		found := false
		for try := 0; try < pc.Tries && !found; try++ {
			pos = mgl32.Vec3{g.Rng.Range(-half, half), 0, g.Rng.Range(-half, half)}
			found = !g.spawnBlocked(pos, ec.Radius)
		}
		if !found {
			g.placementFailed("enemy", i)
			continue
		}
		g.World.AddEnemy(component.Enemy{
			Hull: component.Hull{
				Position:       pos,
				Rotation:       g.Rng.Range(-utils.Pi, utils.Pi),
				TurretRotation: g.Rng.Range(-utils.Pi, utils.Pi),
				Radius:         ec.Radius,
				Health:         ec.Health,
			},
			Pattern:      component.MovementPattern(g.Rng.Intn(component.PatternCount)),
			PatternTimer: g.Rng.Range(ec.SpawnTimerMin, ec.SpawnTimerMax),
			SinkSpeed:    ec.SinkSpeed,
			Renderable:   true,
		})
		placed++
	}
	return placed
}

func (g *Game) spawnBlocked(pos mgl32.Vec3, radius float32) bool {
	w := g.World
	reach := radius + g.Config.Enemy.BuildingClearance
	for i := range w.Buildings {
		if geom.OverlapsSq(pos, reach, w.Buildings[i].Position, w.Buildings[i].Radius) {
			return true
		}
	}
	if geom.OverlapsSq(pos, radius, w.Player.Position, w.Player.Radius) {
		return true
	}
	for i := range w.Enemies {
		if geom.OverlapsSq(pos, radius, w.Enemies[i].Position, w.Enemies[i].Radius) {
			return true
		}
	}
	return false
}

func (g *Game) placementFailed(kind string, index int) {
	tries := g.Config.Placement.Tries
	g.Logger.Warn("no free position found, entity skipped",
		zap.String("kind", kind),
		zap.Int("index", index),
		zap.Int("tries", tries),
	)
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlacementFailed, Data: event.PlacementData{
		Kind:  kind,
		Index: index,
		Tries: tries,
	}})
}
