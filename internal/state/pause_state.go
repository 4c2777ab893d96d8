// internal/state/pause_state.go
package state

import (
	"go-tank-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the match. The simulation clock does not advance
// while paused.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	hud           *ui.HUD
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		hud:           ui.NewHUD(basicfont.Face7x13),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	s.hud.DrawBanner(screen, "PAUSED")
}

func (s *PauseState) Exit() {}
