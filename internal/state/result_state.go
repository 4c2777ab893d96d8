// internal/state/result_state.go
package state

import (
	"fmt"

	"go-tank-arena/internal/app"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// ResultState shows the final tally after the match has shut down. Any of
// space, enter or escape closes the window.
type ResultState struct {
	sm      *StateMachine
	game    *app.Game
	hud     *ui.HUD
	summary string
}

func NewResultState(sm *StateMachine, game *app.Game) *ResultState {
	return &ResultState{sm: sm, game: game, hud: ui.NewHUD(basicfont.Face7x13)}
}

func (m *ResultState) Enter() {
	w := m.game.World
	outcome := "SURVIVED"
	if !w.Player.Alive() {
		outcome = "DESTROYED"
	}
	m.summary = fmt.Sprintf("%s   kills %d   enemies left %d", outcome, w.Player.Kills, w.LiveEnemies())
}

func (m *ResultState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
	}
}

func (m *ResultState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.hud.DrawBanner(screen, m.summary)
}

func (m *ResultState) Exit() {}
