package system

import (
	"math"
	"testing"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/utils"
	"go-tank-arena/pkg/geom"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFireConeBoundary(t *testing.T) {
	from := mgl32.Vec3{0, 0, 0}
	to := mgl32.Vec3{10, 0, 0}

	assert.True(t, InFireCone(0, from, to, 10))
	assert.True(t, InFireCone(utils.DegToRad(9.9), from, to, 10))
	assert.True(t, InFireCone(utils.DegToRad(-9.9), from, to, 10))
	assert.False(t, InFireCone(utils.DegToRad(10), from, to, 10), "cone edge is exclusive")
	assert.False(t, InFireCone(utils.DegToRad(-10), from, to, 10))
}

func TestFireSpawnsFromTurretTip(t *testing.T) {
	f := newFixture()
	f.world.Player.Position = mgl32.Vec3{10, 0, 0}
	e := f.addEnemy(mgl32.Vec3{0, 0, 0})
	e.TurretRotation = utils.DegToRad(9.9)

	require.True(t, f.enemies.Fire(f.world, e))
	require.Len(t, f.world.Projectiles, 1)

	p := f.world.Projectiles[0]
	tip := geom.Forward(e.TurretRotation)
	assert.InDelta(t, tip.X(), p.Position.X(), 1e-5)
	assert.InDelta(t, 0.9, p.Position.Y(), 1e-6)
	assert.InDelta(t, tip.Z(), p.Position.Z(), 1e-5)
	// flies at the player, not along the turret
	assert.InDelta(t, 2.5, p.Velocity.X(), 1e-5)
	assert.InDelta(t, 0, p.Velocity.Z(), 1e-6)
	assert.Equal(t, float32(10), p.MaxLifespan)
	assert.Equal(t, float32(0.1), p.Radius)
	assert.Equal(t, component.OwnerEnemy, p.Owner)
	assert.Len(t, f.events[event.ProjectileFired], 1)

	e.TurretRotation = utils.DegToRad(10)
	assert.False(t, f.enemies.Fire(f.world, e))
	assert.Len(t, f.world.Projectiles, 1)
}

func TestNoFireAtDeadPlayer(t *testing.T) {
	f := newFixture()
	f.world.Player.Position = mgl32.Vec3{10, 0, 0}
	f.world.Player.Health = 0
	e := f.addEnemy(mgl32.Vec3{0, 0, 0})

	assert.False(t, f.enemies.Fire(f.world, e))
}

func TestTurretTracksPlayerAtCappedRate(t *testing.T) {
	f := newFixture()
	f.world.StopMovement = true
	target := utils.DegToRad(170)
	f.world.Player.Position = geom.Forward(target).Mul(30)
	e := f.addEnemy(mgl32.Vec3{0, 0, 0})

	// turret turn rate is 2 rad/s, so this dt allows a 10 degree step
	dt := utils.DegToRad(10) / f.cfg.Enemy.TurretTurnRate
	f.enemies.Update(f.world, dt)
	assert.InDelta(t, utils.DegToRad(10), e.TurretRotation, 1e-5)

	for i := 0; i < 20; i++ {
		f.enemies.Update(f.world, dt)
		require.LessOrEqual(t, e.TurretRotation, target+1e-5)
	}
	assert.InDelta(t, target, e.TurretRotation, 1e-5)
}

func TestPatternTimerRerolls(t *testing.T) {
	f := newFixture()
	f.world.StopMovement = true
	f.world.Player.Position = mgl32.Vec3{0, 0, 15}
	e := f.addEnemy(mgl32.Vec3{0, 0, 0})
	e.PatternTimer = 0.05

	f.enemies.Update(f.world, 0.1)

	assert.GreaterOrEqual(t, e.PatternTimer, f.cfg.Enemy.PatternMin)
	assert.Less(t, e.PatternTimer, f.cfg.Enemy.PatternMax)

	before := e.PatternTimer
	f.enemies.Update(f.world, 0.1)
	assert.InDelta(t, before-0.1, e.PatternTimer, 1e-6)
}

func TestMovementPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern component.MovementPattern
		wantPos mgl32.Vec3
		wantRot float32
	}{
		{"forward", component.MoveForward, mgl32.Vec3{0.05, 0, 0}, 0},
		{"backward", component.MoveBackward, mgl32.Vec3{-0.05, 0, 0}, 0},
		{"rotate cw", component.RotateCW, mgl32.Vec3{}, 0.5},
		{"rotate ccw", component.RotateCCW, mgl32.Vec3{}, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.world.Player.Position = mgl32.Vec3{0, 0, 15}
			e := f.addEnemy(mgl32.Vec3{})
			e.Pattern = tt.pattern

			f.enemies.Update(f.world, 0.5)

			assert.InDelta(t, tt.wantPos.X(), e.Position.X(), 1e-6)
			assert.InDelta(t, tt.wantPos.Z(), e.Position.Z(), 1e-6)
			assert.InDelta(t, tt.wantRot, e.Rotation, 1e-6)
			assert.Equal(t, tt.pattern, e.Pattern)
		})
	}
}

func TestStopMovementFreezesEnemies(t *testing.T) {
	f := newFixture()
	f.world.StopMovement = true
	f.world.Player.Position = mgl32.Vec3{0, 0, 15}
	e := f.addEnemy(mgl32.Vec3{1, 0, 1})
	e.Pattern = component.MoveForward

	f.enemies.Update(f.world, 0.5)

	assert.Equal(t, mgl32.Vec3{1, 0, 1}, e.Position)
}

func TestMovementIsClampedToArena(t *testing.T) {
	f := newFixture()
	f.world.Player.Position = mgl32.Vec3{0, 0, 15}
	e := f.addEnemy(mgl32.Vec3{19.98, 0, 0})
	e.Pattern = component.MoveForward

	f.enemies.Update(f.world, 0.016)

	assert.Equal(t, float32(20), e.Position.X())
}

func TestBlockedMoveIsDiscarded(t *testing.T) {
	t.Run("building ahead", func(t *testing.T) {
		f := newFixture()
		f.world.Player.Position = mgl32.Vec3{0, 0, 15}
		// probe 1.0 + building 1.0, step lands at 1.99 away
		f.addBuilding(mgl32.Vec3{2.04, 3, 0}, 1)
		e := f.addEnemy(mgl32.Vec3{0, 0, 0})
		e.Pattern = component.MoveForward

		f.enemies.Update(f.world, 0.016)

		assert.Equal(t, mgl32.Vec3{}, e.Position)
	})

	t.Run("tank nearby blocks rotation too", func(t *testing.T) {
		f := newFixture()
		f.world.Player.Position = mgl32.Vec3{0, 0, 15}
		f.addEnemy(mgl32.Vec3{0, 0, 0})
		f.addEnemy(mgl32.Vec3{3.4, 0, 0}) // within probe 2.0 + radius 1.5
		e := &f.world.Enemies[0]
		e.Pattern = component.RotateCW
		e.Rotation = 0.3

		f.enemies.Update(f.world, 0.5)

		assert.Equal(t, float32(0.3), e.Rotation)
		assert.Equal(t, mgl32.Vec3{}, e.Position)
	})

	t.Run("sunk wreck does not block", func(t *testing.T) {
		f := newFixture()
		f.world.Player.Position = mgl32.Vec3{0, 0, 15}
		f.addEnemy(mgl32.Vec3{0, 0, 0})
		f.addEnemy(mgl32.Vec3{3, 0, 0})
		f.world.Enemies[1].Destroyed = true
		f.world.Enemies[1].Renderable = false
		e := &f.world.Enemies[0]
		e.Pattern = component.MoveBackward

		f.enemies.Update(f.world, 0.016)

		assert.InDelta(t, -0.05, e.Position.X(), 1e-6)
	})
}

func TestReloadPathFiresAndResets(t *testing.T) {
	f := newFixture()
	f.world.StopMovement = true
	f.world.Player.Position = mgl32.Vec3{15, 0, 0}
	e := f.addEnemy(mgl32.Vec3{0, 0, 0})
	e.TimeSinceLastShot = 0.99

	f.enemies.Update(f.world, 0.02)

	assert.Len(t, f.world.Projectiles, 1)
	assert.Zero(t, e.TimeSinceLastShot)

	f.enemies.Update(f.world, 0.02)
	assert.Len(t, f.world.Projectiles, 1)
	assert.InDelta(t, 0.02, e.TimeSinceLastShot, 1e-6)
}

func TestReloadPathConsumesShotWhenMisaligned(t *testing.T) {
	f := newFixture()
	f.world.StopMovement = true
	f.world.Player.Position = mgl32.Vec3{-15, 0, 0}
	e := f.addEnemy(mgl32.Vec3{0, 0, 0})
	e.TimeSinceLastShot = 0.99

	f.enemies.Update(f.world, 0.02)

	assert.Empty(t, f.world.Projectiles)
	assert.Zero(t, e.TimeSinceLastShot)
}

func TestAimedPathFiresInRange(t *testing.T) {
	f := newFixture()
	f.world.StopMovement = true
	f.world.Player.Position = mgl32.Vec3{4, 0, 0}
	e := f.addEnemy(mgl32.Vec3{0, 0, 0})
	e.TimeSinceAimedShot = 1

	f.enemies.SenseRange(f.world)
	require.True(t, e.PlayerInRange)
	f.enemies.Update(f.world, 0.016)

	assert.Len(t, f.world.Projectiles, 1)
	assert.Zero(t, e.TimeSinceAimedShot)
	assert.InDelta(t, 0.016, e.TimeSinceLastShot, 1e-6)
}

func TestAimedPathNeedsRange(t *testing.T) {
	f := newFixture()
	f.world.StopMovement = true
	f.world.Player.Position = mgl32.Vec3{8, 0, 0}
	e := f.addEnemy(mgl32.Vec3{0, 0, 0})
	e.TimeSinceAimedShot = 1

	f.enemies.SenseRange(f.world)
	f.enemies.Update(f.world, 0.016)

	assert.False(t, e.PlayerInRange)
	assert.Empty(t, f.world.Projectiles)
}

func TestBothPathsDueFireOnce(t *testing.T) {
	f := newFixture()
	f.world.StopMovement = true
	f.world.Player.Position = mgl32.Vec3{4, 0, 0}
	e := f.addEnemy(mgl32.Vec3{0, 0, 0})
	e.TimeSinceLastShot = 1
	e.TimeSinceAimedShot = 1

	f.enemies.SenseRange(f.world)
	f.enemies.Update(f.world, 0.016)
	assert.Len(t, f.world.Projectiles, 1)

	// the aimed path takes its shot on the following tick
	f.enemies.Update(f.world, 0.016)
	assert.Len(t, f.world.Projectiles, 2)
}

func TestSenseRangeBoundary(t *testing.T) {
	f := newFixture()
	f.world.Player.Position = mgl32.Vec3{0, 0, 0}
	f.addEnemy(mgl32.Vec3{5, 0, 0})
	f.addEnemy(mgl32.Vec3{5.01, 0, 0})
	f.addEnemy(mgl32.Vec3{1, 0, 0})
	f.world.Enemies[2].Destroyed = true

	f.enemies.SenseRange(f.world)

	assert.True(t, f.world.Enemies[0].PlayerInRange)
	assert.False(t, f.world.Enemies[1].PlayerInRange)
	assert.False(t, f.world.Enemies[2].PlayerInRange)
}

func TestDestroyedEnemyIsInert(t *testing.T) {
	f := newFixture()
	f.world.Player.Position = mgl32.Vec3{4, 0, 0}
	e := f.addEnemy(mgl32.Vec3{0, 0, 0})
	e.Destroyed = true
	e.Pattern = component.MoveForward
	e.TurretRotation = 1
	e.TimeSinceLastShot = 5

	f.enemies.SenseRange(f.world)
	f.enemies.Update(f.world, 0.1)

	assert.Equal(t, mgl32.Vec3{}, e.Position)
	assert.Equal(t, float32(1), e.TurretRotation)
	assert.Empty(t, f.world.Projectiles)
}

func TestSinking(t *testing.T) {
	f := newFixture()
	e := f.addEnemy(mgl32.Vec3{})
	f.enemies.UpdateSinking(f.world, 1)
	assert.Zero(t, e.SinkDepth, "live enemies do not sink")

	e.Destroyed = true
	f.enemies.UpdateSinking(f.world, 1)
	assert.InDelta(t, 0.5, e.SinkDepth, 1e-6)
	assert.True(t, e.Renderable)

	f.enemies.UpdateSinking(f.world, 1)
	assert.InDelta(t, 1.0, e.SinkDepth, 1e-6)
	assert.False(t, e.Renderable)

	f.enemies.UpdateSinking(f.world, 1)
	assert.InDelta(t, 1.0, e.SinkDepth, 1e-6)
	assert.Len(t, f.events[event.EnemySunk], 1)
	assert.Len(t, f.world.Enemies, 1, "sunk enemies stay in the collection")
}

func TestTurretBearingConvention(t *testing.T) {
	assert.InDelta(t, math.Pi/2, geom.Bearing(mgl32.Vec3{}, mgl32.Vec3{0, 0, 3}), 1e-6)
}
