// internal/app/game.go
package app

import (
	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/entity"
	"go-tank-arena/internal/event"
	"go-tank-arena/internal/input"
	"go-tank-arena/internal/replay"
	"go-tank-arena/internal/system"
	"go-tank-arena/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Game owns the world and runs the systems in a fixed order once per tick.
type Game struct {
	Config           *config.Config
	World            *entity.World
	MatchID          uuid.UUID
	Rng              *utils.PRNGService
	EventDispatcher  *event.Dispatcher
	Logger           *zap.Logger
	Armory           *system.Armory
	CollisionSystem  *system.CollisionSystem
	ProjectileSystem *system.ProjectileSystem
	EnemySystem      *system.EnemySystem
	PlayerSystem     *system.PlayerSystem
	RenderSystem     *system.RenderSystem

	// Recorder, when set, receives every tick's input and checksum.
	Recorder *replay.Recorder

	tick uint64
}

// NewGame builds an empty arena with all systems wired. Use Populate, or
// NewMatch, to lay out buildings and enemies.
func NewGame(cfg *config.Config, seed int64, logger *zap.Logger) *Game {
	rng := utils.NewPRNGService(seed)
	matchID := uuid.New()
	logger = logger.With(zap.Stringer("match", matchID), zap.Int64("seed", rng.Seed()))

	world := entity.NewWorld(cfg.Player.Health, cfg.Player.Radius)
	eventDispatcher := event.NewDispatcher()
	armory := system.NewArmory(cfg, eventDispatcher)

	g := &Game{
		Config:           cfg,
		World:            world,
		MatchID:          matchID,
		Rng:              rng,
		EventDispatcher:  eventDispatcher,
		Logger:           logger,
		Armory:           armory,
		CollisionSystem:  system.NewCollisionSystem(cfg, logger),
		ProjectileSystem: system.NewProjectileSystem(cfg, logger, eventDispatcher),
		EnemySystem:      system.NewEnemySystem(cfg, logger, rng, armory, eventDispatcher),
		PlayerSystem:     system.NewPlayerSystem(cfg, armory, world),
		RenderSystem:     system.NewRenderSystem(),
	}

	eventDispatcher.Subscribe(event.EnemyDestroyed, g.PlayerSystem)
	return g
}

// NewMatch creates a game and runs level-start placement.
func NewMatch(cfg *config.Config, seed int64, logger *zap.Logger) *Game {
	g := NewGame(cfg, seed, logger)
	g.Populate()
	return g
}

// Update advances the match by one tick. The order is fixed:
//
//	player input
//	projectile hits on the player
//	projectile flight, expiry and hits on enemies
//	enemy range sensor, AI, sinking
//	vehicle-vehicle contacts
//	enemy-building, then player-building contacts
//	projectile hits on buildings
//	while movement is stopped, every projectile left is dropped
//
// Once the match has finished Update does nothing.
func (g *Game) Update(deltaTime float64, in input.Frame) {
	w := g.World
	if w.StopRender {
		return
	}
	w.GameTime += deltaTime
	g.advanceTimeline()

	if !w.StopRender {
		dt := float32(deltaTime)

		g.PlayerSystem.Update(w, in, dt)
		g.ProjectileSystem.UpdatePlayerHits(w)
		g.ProjectileSystem.UpdateMovementAndEnemyHits(w, dt)
		g.EnemySystem.SenseRange(w)
		g.EnemySystem.Update(w, dt)
		g.EnemySystem.UpdateSinking(w, dt)
		g.CollisionSystem.ResolveVehicleContacts(w)
		g.CollisionSystem.ResolveEnemyBuildings(w)
		g.CollisionSystem.ResolvePlayerBuildings(w)
		g.ProjectileSystem.UpdateBuildingHits(w)

		// nothing stays in flight once the fight is frozen, so shots fired
		// after the stop never land
		if w.StopMovement {
			w.ClearProjectiles()
		}
		if !w.Player.Alive() && w.Phase == component.PhasePlaying {
			g.setPhase(component.PhaseGameOver)
		}
	}

	g.tick++
	if g.Recorder != nil {
		g.Recorder.Record(deltaTime, in, w.Checksum())
	}
}

// advanceTimeline applies the clock-driven stop flags.
func (g *Game) advanceTimeline() {
	w := g.World
	arena := g.Config.Arena
	switch {
	case w.GameTime >= arena.ShutdownAfter:
		g.setPhase(component.PhaseFinished)
	case w.GameTime >= arena.MatchDuration && w.Phase == component.PhasePlaying:
		g.setPhase(component.PhaseTimeUp)
	}
}

func (g *Game) setPhase(phase component.MatchPhase) {
	w := g.World
	w.Phase = phase
	w.StopMovement = true
	w.ClearProjectiles()
	if phase == component.PhaseFinished {
		w.StopRender = true
	}

	g.Logger.Info("match phase changed",
		zap.Stringer("phase", phase),
		zap.Float64("game_time", w.GameTime),
		zap.Int("player_health", w.Player.Health),
		zap.Int("live_enemies", w.LiveEnemies()),
		zap.Int("kills", w.Player.Kills),
	)
	g.EventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: event.MatchData{
		Phase:       phase,
		GameTime:    w.GameTime,
		LiveEnemies: w.LiveEnemies(),
	}})
}

// Finished reports whether the run loop should stop.
func (g *Game) Finished() bool {
	return g.World.StopRender
}

// Tick is the number of updates applied so far.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Checksum hashes the current world state.
func (g *Game) Checksum() uint64 {
	return g.World.Checksum()
}

// DrawCalls returns this tick's read-only render list.
func (g *Game) DrawCalls() []component.DrawCall {
	return g.RenderSystem.Collect(g.World)
}
