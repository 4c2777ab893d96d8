// internal/state/arena_state.go
package state

import (
	"go-tank-arena/internal/app"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/input"
	"go-tank-arena/internal/ui"
	"go-tank-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*ArenaState)(nil)

// ArenaState runs a live match: it samples the keyboard once per tick,
// steps the game and draws the result.
type ArenaState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.ArenaRenderer
	hud      *ui.HUD
}

func NewArenaState(sm *StateMachine, game *app.Game) *ArenaState {
	colors := &render.ArenaColors{
		BackgroundColor: config.BackgroundColor,
		GroundColor:     config.GroundColor,
		GridColor:       config.GridColor,
		TurretColor:     config.TurretColor,
		StrokeWidth:     config.StrokeWidth,
	}
	return &ArenaState{
		sm:       sm,
		game:     game,
		renderer: render.NewArenaRenderer(game.Config.Arena.HalfSize, config.PixelsPerUnit, config.ScreenWidth, config.ScreenHeight, colors),
		hud:      ui.NewHUD(basicfont.Face7x13),
	}
}

func (s *ArenaState) Game() *app.Game {
	return s.game
}

func (s *ArenaState) Enter() {}

func (s *ArenaState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	s.game.Update(deltaTime, ReadFrame())
	if s.game.Finished() {
		s.sm.SetState(NewResultState(s.sm, s.game))
	}
}

// ReadFrame samples the keyboard. Driving keys are level-triggered, fire is
// edge-triggered.
func ReadFrame() input.Frame {
	return input.Frame{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		TurretLeft:  ebiten.IsKeyPressed(ebiten.KeyQ),
		TurretRight: ebiten.IsKeyPressed(ebiten.KeyE),
		Fire:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

func (s *ArenaState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game.DrawCalls())
	s.hud.Draw(screen, s.hudData())
}

func (s *ArenaState) hudData() ui.HUDData {
	w := s.game.World
	p := &w.Player
	var reload float64
	if p.HasFired {
		reload = s.game.Config.Player.FireCooldown - (w.GameTime - p.LastShotAt)
	}
	return ui.HUDData{
		Health:        p.Health,
		MaxHealth:     s.game.Config.Player.Health,
		Kills:         p.Kills,
		LiveEnemies:   w.LiveEnemies(),
		GameTime:      w.GameTime,
		MatchDuration: s.game.Config.Arena.MatchDuration,
		ReloadLeft:    reload,
		Phase:         w.Phase,
	}
}

func (s *ArenaState) Exit() {}
