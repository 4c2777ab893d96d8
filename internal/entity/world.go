// internal/entity/world.go
package entity

import (
	"encoding/binary"
	"math"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/types"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// World owns every collection in the match. Systems borrow it for the
// duration of one call and never keep references across ticks.
type World struct {
	GameTime     float64
	NextID       types.EntityID
	Phase        component.MatchPhase
	StopMovement bool
	StopRender   bool

	Player      component.Player
	Buildings   []component.Building
	Enemies     []component.Enemy
	Projectiles []component.Projectile
}

// NewWorld creates an empty arena with the player at the origin.
func NewWorld(playerHealth int, playerRadius float32) *World {
	w := &World{NextID: 1}
	w.Player = component.Player{
		Hull: component.Hull{
			ID:     w.NewEntity(),
			Radius: playerRadius,
			Health: playerHealth,
		},
	}
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddBuilding appends a building and returns its stable index.
func (w *World) AddBuilding(b component.Building) int {
	w.Buildings = append(w.Buildings, b)
	return len(w.Buildings) - 1
}

// AddEnemy assigns an ID and appends the enemy.
func (w *World) AddEnemy(e component.Enemy) types.EntityID {
	e.ID = w.NewEntity()
	if e.BuildingHits == nil {
		e.BuildingHits = make([]int, len(w.Buildings))
	}
	w.Enemies = append(w.Enemies, e)
	return e.ID
}

// AddProjectile assigns an ID and appends the projectile.
func (w *World) AddProjectile(p component.Projectile) types.EntityID {
	p.ID = w.NewEntity()
	w.Projectiles = append(w.Projectiles, p)
	return p.ID
}

// ClearProjectiles drops every projectile in flight.
func (w *World) ClearProjectiles() {
	w.Projectiles = w.Projectiles[:0]
}

// LiveEnemies counts enemies that are not destroyed.
func (w *World) LiveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Active() {
			n++
		}
	}
	return n
}

// Checksum hashes the simulation-relevant state. Two runs that agree on
// every tick's checksum have evolved identically.
func (w *World) Checksum() uint64 {
	h := xxhash.New()
	buf := make([]byte, 0, 64)

	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(w.GameTime))
	p := &w.Player
	buf = appendHull(buf, &p.Hull)
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.LastShotAt))
	buf = append(buf, boolByte(p.HasFired))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(p.Kills))
	_, _ = h.Write(buf)

	for i := range w.Enemies {
		e := &w.Enemies[i]
		buf = appendHull(buf[:0], &e.Hull)
		buf = append(buf, byte(e.Pattern), boolByte(e.Destroyed), boolByte(e.Renderable), boolByte(e.PlayerInRange))
		buf = appendFloat(buf, e.PatternTimer)
		buf = appendFloat(buf, e.TimeSinceLastShot)
		buf = appendFloat(buf, e.TimeSinceAimedShot)
		buf = appendFloat(buf, e.SinkDepth)
		_, _ = h.Write(buf)
	}
	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		buf = appendVec(buf[:0], p.Position)
		buf = appendVec(buf, p.Velocity)
		buf = appendFloat(buf, p.Age)
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}

func appendHull(buf []byte, h *component.Hull) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.ID))
	buf = appendVec(buf, h.Position)
	buf = appendFloat(buf, h.Rotation)
	buf = appendFloat(buf, h.TurretRotation)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(h.Health)))
	return appendFloat(buf, h.Deformation)
}

func appendVec(buf []byte, v mgl32.Vec3) []byte {
	for _, f := range v {
		buf = appendFloat(buf, f)
	}
	return buf
}

func appendFloat(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
