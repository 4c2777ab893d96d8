package system

import (
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type fixture struct {
	cfg        *config.Config
	world      *entity.World
	dispatcher *event.Dispatcher
	events     map[event.EventType][]event.Event

	collision   *CollisionSystem
	projectiles *ProjectileSystem
	enemies     *EnemySystem
	player      *PlayerSystem
	armory      *Armory
}

func newFixture() *fixture {
	cfg := config.Default()
	logger := zap.NewNop()
	f := &fixture{
		cfg:        cfg,
		world:      entity.NewWorld(cfg.Player.Health, cfg.Player.Radius),
		dispatcher: event.NewDispatcher(),
		events:     make(map[event.EventType][]event.Event),
	}
	record := event.ListenerFunc(func(e event.Event) { f.events[e.Type] = append(f.events[e.Type], e) })
	for _, t := range []event.EventType{
		event.EnemyDestroyed, event.EnemySunk, event.PlayerHit, event.PlayerDestroyed,
		event.ProjectileFired, event.ProjectileExpired,
	} {
		f.dispatcher.Subscribe(t, record)
	}

	f.armory = NewArmory(cfg, f.dispatcher)
	f.collision = NewCollisionSystem(cfg, logger)
	f.projectiles = NewProjectileSystem(cfg, logger, f.dispatcher)
	f.enemies = NewEnemySystem(cfg, logger, utils.NewPRNGService(1), f.armory, f.dispatcher)
	f.player = NewPlayerSystem(cfg, f.armory, f.world)
	return f
}

// addEnemy places a live enemy with stock stats and a long pattern timer so
// tests control when it rolls.
func (f *fixture) addEnemy(pos mgl32.Vec3) *component.Enemy {
	f.world.AddEnemy(component.Enemy{
		Hull: component.Hull{
			Position: pos,
			Radius:   f.cfg.Enemy.Radius,
			Health:   f.cfg.Enemy.Health,
		},
		PatternTimer: 100,
		SinkSpeed:    f.cfg.Enemy.SinkSpeed,
		Renderable:   true,
	})
	return &f.world.Enemies[len(f.world.Enemies)-1]
}

func (f *fixture) addBuilding(pos mgl32.Vec3, radius float32) *component.Building {
	f.world.AddBuilding(component.Building{
		Position: pos,
		Scale:    mgl32.Vec3{1, 1, 1},
		Name:     "cube",
		Radius:   radius,
	})
	return &f.world.Buildings[len(f.world.Buildings)-1]
}
