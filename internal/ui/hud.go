// internal/ui/hud.go
package ui

import (
	"fmt"
	"math"

	"go-tank-arena/internal/component"
	"go-tank-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUDData is the snapshot the HUD shows for one frame.
type HUDData struct {
	Health        int
	MaxHealth     int
	Kills         int
	LiveEnemies   int
	GameTime      float64
	MatchDuration float64
	ReloadLeft    float64
	Phase         component.MatchPhase
}

// HUD is the overlay in the top-left corner plus the end-of-match banner.
type HUD struct {
	health   *HealthIndicator
	fontFace font.Face
}

func NewHUD(fontFace font.Face) *HUD {
	return &HUD{
		health:   NewHealthIndicator(config.HUDPadding, config.HUDPadding, 200, 18, fontFace),
		fontFace: fontFace,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, d HUDData) {
	h.health.Draw(screen, d.Health, d.MaxHealth)

	lines := []string{
		"TIME   " + FormatClock(d.MatchDuration-d.GameTime),
		fmt.Sprintf("KILLS  %d", d.Kills),
		fmt.Sprintf("ENEMY  %d", d.LiveEnemies),
	}
	if d.ReloadLeft > 0 {
		lines = append(lines, fmt.Sprintf("RELOAD %.1fs", d.ReloadLeft))
	}
	y := config.HUDPadding + 18 + 20
	for _, line := range lines {
		text.Draw(screen, line, h.fontFace, config.HUDPadding, y, config.TextLightColor)
		y += 16
	}

	if d.Phase != component.PhasePlaying {
		h.DrawBanner(screen, PhaseBanner(d.Phase))
	}
}

// DrawBanner dims a strip across the screen and centres msg on it.
func (h *HUD) DrawBanner(screen *ebiten.Image, msg string) {
	vector.DrawFilledRect(screen, 0, config.ScreenHeight/2-30, config.ScreenWidth, 60, config.OverlayColor, false)
	bounds := text.BoundString(h.fontFace, msg)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := config.ScreenHeight/2 + bounds.Dy()/2
	text.Draw(screen, msg, h.fontFace, x, y, config.TextLightColor)
}

// FormatClock renders remaining seconds as m:ss, never below zero.
func FormatClock(seconds float64) string {
	s := int(math.Ceil(math.Max(seconds, 0)))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// PhaseBanner is the message shown once the match leaves the playing phase.
func PhaseBanner(p component.MatchPhase) string {
	switch p {
	case component.PhaseTimeUp:
		return "TIME UP"
	case component.PhaseGameOver:
		return "GAME OVER"
	case component.PhaseFinished:
		return "MATCH OVER"
	}
	return ""
}
