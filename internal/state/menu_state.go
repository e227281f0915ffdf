// internal/state/menu_state.go
package state

import (
	"log"

	"go-boss-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var menuLines = []string{
	"WASD / arrows / joystick - move",
	"1-4 - skills, Space or click - attack",
	"P - pause, speed button - x1/x2/x4",
	"",
	"Enter - fight",
}

// MenuState — стартовый экран
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	m.session.Clock.SetPaused(false)
}

func (m *MenuState) Update(deltaTime float64) {
	m.session.PollReload()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs, err := NewGameState(m.sm, m.session)
		if err != nil {
			log.Printf("failed to start match: %v", err)
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	lib := m.session.Library
	title := "BOSS ARENA"
	if p, e := lib.Player(), lib.Enemy(); p != nil && e != nil {
		title = p.Name + " vs " + e.Name
	}
	face := m.session.FontFace
	y := config.ScreenHeight/2 - 60
	text.Draw(screen, title, face, (config.ScreenWidth-len(title)*config.TextCharWidth)/2, y, config.StageTwoColor)
	y += 30
	for _, line := range menuLines {
		text.Draw(screen, line, face, (config.ScreenWidth-len(line)*config.TextCharWidth)/2, y, config.TextLightColor)
		y += 18
	}
}

func (m *MenuState) Exit() {}
