// internal/ui/health_indicator.go
package ui

import (
	"strconv"

	"go-tank-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HealthIndicator draws the player's health as a horizontal bar.
type HealthIndicator struct {
	X, Y          float32
	Width, Height float32
	fontFace      font.Face
}

func NewHealthIndicator(x, y, width, height float32, fontFace font.Face) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y, Width: width, Height: height, fontFace: fontFace}
}

// Draw fills the bar in proportion to health; at half or below it turns red.
func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	if health < 0 {
		health = 0
	}
	fill := config.HealthGoodColor
	if health*2 <= maxHealth {
		fill = config.HealthLowColor
	}

	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.OverlayColor, false)
	if maxHealth > 0 {
		w := i.Width * float32(health) / float32(maxHealth)
		vector.DrawFilledRect(screen, i.X, i.Y, w, i.Height, fill, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, i.Width, i.Height, config.StrokeWidth, config.IndicatorStroke, false)

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	bounds := text.BoundString(i.fontFace, label)
	textX := int(i.X + (i.Width-float32(bounds.Dx()))/2)
	textY := int(i.Y+i.Height/2) + bounds.Dy()/2
	text.Draw(screen, label, i.fontFace, textX, textY, config.TextLightColor)
}
