// internal/ui/health_bar.go
package ui

import (
	"fmt"
	"image/color"

	"go-boss-arena/internal/app"
	"go-boss-arena/internal/config"
	"go-boss-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HealthBar — полоса здоровья бойца с именем и статусами.
type HealthBar struct {
	X, Y          float32
	Width, Height float32
	Color         color.RGBA
	fontFace      font.Face
	shown         float64 // плавно догоняет текущее здоровье
}

func NewHealthBar(x, y, width, height float32, clr color.RGBA, fontFace font.Face) *HealthBar {
	return &HealthBar{
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		Color:    clr,
		fontFace: fontFace,
		shown:    -1,
	}
}

// Update сдвигает «хвост» полосы к текущему значению.
func (h *HealthBar) Update(deltaTime float64, view app.CombatantView) {
	if view.MaxHP <= 0 {
		return
	}
	frac := view.HP / view.MaxHP
	if h.shown < 0 || h.shown < frac {
		h.shown = frac
		return
	}
	h.shown -= deltaTime * 0.6
	if h.shown < frac {
		h.shown = frac
	}
}

func (h *HealthBar) Draw(screen *ebiten.Image, view app.CombatantView) {
	vector.DrawFilledRect(screen, h.X, h.Y, h.Width, h.Height, config.HealthBackColor, false)

	frac := float32(0)
	if view.MaxHP > 0 {
		frac = float32(view.HP / view.MaxHP)
	}
	if h.shown > 0 {
		vector.DrawFilledRect(screen, h.X, h.Y, h.Width*float32(h.shown), h.Height, render.LightenColor(config.HealthBackColor, 0.5), false)
	}
	vector.DrawFilledRect(screen, h.X, h.Y, h.Width*frac, h.Height, h.Color, false)
	vector.StrokeRect(screen, h.X, h.Y, h.Width, h.Height, 1, config.TextLightColor, false)

	hpText := fmt.Sprintf("%.0f / %.0f", view.HP, view.MaxHP)
	textX := int(h.X+h.Width/2) - len(hpText)*config.TextCharWidth/2
	text.Draw(screen, hpText, h.fontFace, textX, int(h.Y+h.Height)-config.TextOffsetY, config.TextLightColor)

	name := view.Name
	if view.PassiveStacks > 0 {
		name = fmt.Sprintf("%s  x%d", view.Name, view.PassiveStacks)
	}
	text.Draw(screen, name, h.fontFace, int(h.X), int(h.Y)-6, config.TextLightColor)

	// Статусы справа от имени
	x := h.X + h.Width - 8
	for i := len(view.Statuses) - 1; i >= 0; i-- {
		s := view.Statuses[i]
		vector.DrawFilledCircle(screen, x, h.Y-10, 5, render.StatusColor(s.Kind), true)
		x -= 14
	}
}
