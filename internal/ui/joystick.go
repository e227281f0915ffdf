// internal/ui/joystick.go
package ui

import (
	"math"

	"go-boss-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const joystickDeadZone = 0.15

// Joystick — экранный джойстик. Управляется мышью или касанием, начатым внутри основания.
type Joystick struct {
	X, Y       float32
	Radius     float32
	KnobRadius float32

	active  bool
	touch   bool
	touchID ebiten.TouchID
	dx, dy  float64
}

func NewJoystick(x, y, radius, knobRadius float32) *Joystick {
	return &Joystick{X: x, Y: y, Radius: radius, KnobRadius: knobRadius}
}

// Active — удерживается ли джойстик.
func (j *Joystick) Active() bool {
	return j.active
}

// Contains — находится ли точка внутри основания.
func (j *Joystick) Contains(mx, my float32) bool {
	dx := mx - j.X
	dy := my - j.Y
	return dx*dx+dy*dy <= j.Radius*j.Radius
}

// Update читает ввод и пересчитывает направление.
func (j *Joystick) Update() {
	if !j.active {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if j.Contains(float32(x), float32(y)) {
				j.active, j.touch = true, false
			}
		}
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			x, y := ebiten.TouchPosition(id)
			if j.Contains(float32(x), float32(y)) {
				j.active, j.touch, j.touchID = true, true, id
				break
			}
		}
		if !j.active {
			return
		}
	}

	var x, y int
	if j.touch {
		if inpututil.IsTouchJustReleased(j.touchID) {
			j.release()
			return
		}
		x, y = ebiten.TouchPosition(j.touchID)
	} else {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			j.release()
			return
		}
		x, y = ebiten.CursorPosition()
	}

	dx := float64(float32(x)-j.X) / float64(j.Radius)
	dy := float64(float32(y)-j.Y) / float64(j.Radius)
	length := math.Hypot(dx, dy)
	switch {
	case length < joystickDeadZone:
		dx, dy = 0, 0
	case length > 1:
		dx, dy = dx/length, dy/length
	}
	j.dx, j.dy = dx, dy
}

func (j *Joystick) release() {
	j.active = false
	j.dx, j.dy = 0, 0
}

// Direction — вектор направления длиной не больше 1.
func (j *Joystick) Direction() (float64, float64) {
	return j.dx, j.dy
}

func (j *Joystick) Draw(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, j.X, j.Y, j.Radius, config.JoystickBaseColor, true)
	vector.StrokeCircle(screen, j.X, j.Y, j.Radius, 1, config.JoystickKnobColor, true)
	kx := j.X + float32(j.dx)*j.Radius
	ky := j.Y + float32(j.dy)*j.Radius
	vector.DrawFilledCircle(screen, kx, ky, j.KnobRadius, config.JoystickKnobColor, true)
}
