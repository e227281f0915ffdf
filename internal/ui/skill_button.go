// internal/ui/skill_button.go
package ui

import (
	"fmt"
	"math"
	"time"

	"go-boss-arena/internal/app"
	"go-boss-arena/internal/config"
	"go-boss-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SkillButton — квадратная кнопка умения с затемнением на перезарядке.
type SkillButton struct {
	X, Y          float32
	Size          float32
	Slot          int
	Key           string
	LastClickTime time.Time
	fontFace      font.Face
}

func NewSkillButton(x, y, size float32, slot int, key string, fontFace font.Face) *SkillButton {
	return &SkillButton{X: x, Y: y, Size: size, Slot: slot, Key: key, fontFace: fontFace}
}

func (b *SkillButton) Contains(mx, my float32) bool {
	return mx >= b.X && mx <= b.X+b.Size && my >= b.Y && my <= b.Y+b.Size
}

// Press запускает анимацию нажатия.
func (b *SkillButton) Press() {
	b.LastClickTime = time.Now()
}

func (b *SkillButton) Draw(screen *ebiten.Image, view app.SkillView, ok bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	grow := float32(4 * math.Exp(-elapsed*8))
	x, y, size := b.X-grow/2, b.Y-grow/2, b.Size+grow

	vector.DrawFilledRect(screen, x, y, size, size, config.ButtonColor, true)
	if !ok {
		vector.StrokeRect(screen, x, y, size, size, 1, render.DarkenColor(config.ButtonReadyStroke), true)
		return
	}

	// Затемнение сверху вниз пропорционально остатку перезарядки
	if view.Cooldown > 0 && view.MaxCooldown > 0 && view.Stage != 2 {
		frac := float32(math.Min(view.Cooldown/view.MaxCooldown, 1))
		vector.DrawFilledRect(screen, x, y, size, size*frac, config.CooldownOverlay, true)
		cd := fmt.Sprintf("%.1f", view.Cooldown)
		text.Draw(screen, cd, b.fontFace, int(x+size/2)-len(cd)*config.TextCharWidth/2, int(y+size/2)+config.TextOffsetY, config.TextLightColor)
	}

	stroke := config.ButtonReadyStroke
	width := float32(1)
	if view.Stage == 2 {
		stroke = config.StageTwoColor
		width = 3
	} else if !view.Ready {
		stroke = render.DarkenColor(config.ButtonReadyStroke)
	}
	vector.StrokeRect(screen, x, y, size, size, width, stroke, true)

	text.Draw(screen, b.Key, b.fontFace, int(x)+4, int(y)+14, config.TextLightColor)
	label := shortName(view.Name, int(size)/config.TextCharWidth)
	text.Draw(screen, label, b.fontFace, int(x+size/2)-len(label)*config.TextCharWidth/2, int(y+size)-6, config.TextLightColor)
}

func shortName(name string, maxChars int) string {
	r := []rune(name)
	if len(r) <= maxChars || maxChars < 2 {
		return name
	}
	return string(r[:maxChars-1]) + "."
}
