// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-boss-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — кнопка переключения скорости игры (x1, x2, x4).
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:            x,
		Y:            y,
		Size:         size,
		StateColors:  stateColors,
		CurrentState: 0,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Два треугольника «перемотки»
	for _, dx := range []float32{0, offset} {
		tri := render.Polygon(
			b.X-width+dx, b.Y-height/2,
			b.X+dx, b.Y,
			b.X-width+dx, b.Y+height/2,
		)
		render.FillPath(screen, tri, clr)
		render.StrokePath(screen, tri, 1, color.RGBA{255, 255, 255, 255})
	}
}

// IsClicked — попадание проверяется по кругу, форма кнопки сложная.
func (b *SpeedButton) IsClicked(mx, my float32) bool {
	dx := mx - b.X
	dy := my - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetState синхронизирует кнопку с часами без анимации клика.
func (b *SpeedButton) SetState(idx int) {
	if idx >= 0 && idx < len(b.StateColors) {
		b.CurrentState = idx
	}
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
