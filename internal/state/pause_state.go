// internal/state/pause_state.go
package state

import (
	"time"

	"go-boss-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает бой: часы стоят, предыдущее состояние только рисуется.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	s.previousState.session.PollReload()

	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		button := s.previousState.pauseButton
		if button.IsClicked(float32(x), float32(y)) &&
			time.Since(button.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			unpause = true
		}
	}

	if unpause {
		// GameState.Enter снимает часы и кнопку с паузы
		s.previousState.pauseButton.LastClickTime = time.Now()
		s.previousState.pauseButton.LastToggleTime = time.Now()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	s.previousState.pauseButton.Draw(screen)

	pauseText := "PAUSED"
	hint := "P / Esc to resume"
	face := s.previousState.session.FontFace
	text.Draw(screen, pauseText, face, (config.ScreenWidth-len(pauseText)*config.TextCharWidth)/2, config.ScreenHeight/2, config.TextLightColor)
	text.Draw(screen, hint, face, (config.ScreenWidth-len(hint)*config.TextCharWidth)/2, config.ScreenHeight/2+20, config.TextLightColor)
}

func (s *PauseState) Exit() {}
