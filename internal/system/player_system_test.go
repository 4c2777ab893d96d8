package system

import (
	"testing"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/input"
	"go-tank-arena/pkg/geom"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerDrivesAlongTrajectory(t *testing.T) {
	f := newFixture()
	p := &f.world.Player
	p.Rotation = 1.0
	p.TurretRotation = 1.0

	f.player.Update(f.world, input.Frame{Forward: true}, 0.016)

	want := geom.Forward(1.0).Mul(f.cfg.Player.Step)
	assert.InDelta(t, want.X(), p.Position.X(), 1e-6)
	assert.InDelta(t, want.Z(), p.Position.Z(), 1e-6)
	assert.Equal(t, p.Rotation, p.CannonAngle)
}

func TestPlayerTurnCarriesTurret(t *testing.T) {
	f := newFixture()
	p := &f.world.Player

	f.player.Update(f.world, input.Frame{TurnRight: true}, 0.5)
	assert.InDelta(t, 0.5, p.Rotation, 1e-6)
	assert.InDelta(t, 0.5, p.TurretRotation, 1e-6)

	f.player.Update(f.world, input.Frame{TurretLeft: true}, 0.25)
	assert.InDelta(t, 0.5, p.Rotation, 1e-6)
	assert.InDelta(t, 0.25, p.TurretRotation, 1e-6)
}

func TestPlayerClampedToArena(t *testing.T) {
	f := newFixture()
	f.world.Player.Position = mgl32.Vec3{-19.99, 0, 0}
	f.world.Player.Rotation = 3.14159

	f.player.Update(f.world, input.Frame{Forward: true}, 0.016)

	assert.Equal(t, float32(-20), f.world.Player.Position.X())
}

func TestPlayerFireCooldown(t *testing.T) {
	f := newFixture()
	fire := input.Frame{Fire: true}

	f.player.Update(f.world, fire, 0.016)
	require.Len(t, f.world.Projectiles, 1)

	f.world.GameTime = 1.0
	f.player.Update(f.world, fire, 0.016)
	assert.Len(t, f.world.Projectiles, 1, "cooldown still running")

	f.world.GameTime = 2.0
	f.player.Update(f.world, fire, 0.016)
	assert.Len(t, f.world.Projectiles, 2)
}

func TestPlayerShotLeavesCannonTip(t *testing.T) {
	f := newFixture()
	f.world.Player.Position = mgl32.Vec3{1, 0, 1}
	f.world.Player.TurretRotation = 0

	f.player.Update(f.world, input.Frame{Fire: true}, 0.016)

	require.Len(t, f.world.Projectiles, 1)
	p := f.world.Projectiles[0]
	assert.InDelta(t, 3, p.Position.X(), 1e-6)
	assert.InDelta(t, 0.85, p.Position.Y(), 1e-6)
	assert.InDelta(t, 1, p.Position.Z(), 1e-6)
	assert.InDelta(t, 10, p.Velocity.X(), 1e-6)
	assert.Equal(t, component.OwnerPlayer, p.Owner)
	assert.Equal(t, float32(1), p.MaxLifespan)
}

func TestPlayerFrozenWhenMovementStops(t *testing.T) {
	f := newFixture()
	f.world.StopMovement = true

	f.player.Update(f.world, input.Frame{Forward: true, TurnLeft: true, TurretRight: true, Fire: true}, 0.5)

	p := f.world.Player
	assert.Equal(t, mgl32.Vec3{}, p.Position)
	assert.Zero(t, p.Rotation)
	assert.InDelta(t, 0.5, p.TurretRotation, 1e-6)
	assert.Empty(t, f.world.Projectiles)
}

func TestDeadPlayerIgnoresInput(t *testing.T) {
	f := newFixture()
	f.world.Player.Health = 0

	f.player.Update(f.world, input.Frame{Forward: true, Fire: true}, 0.5)

	assert.Equal(t, mgl32.Vec3{}, f.world.Player.Position)
	assert.Empty(t, f.world.Projectiles)
}

func TestPlayerCountsOwnKills(t *testing.T) {
	f := newFixture()
	f.dispatcher.Subscribe(event.EnemyDestroyed, f.player)

	f.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.HitData{ProjectileBy: component.OwnerPlayer}})
	f.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.HitData{ProjectileBy: component.OwnerEnemy}})

	assert.Equal(t, 1, f.world.Player.Kills)
}
