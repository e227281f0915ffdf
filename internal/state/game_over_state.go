// internal/state/game_over_state.go
package state

import (
	"fmt"
	"log"

	"go-boss-arena/internal/config"
	"go-boss-arena/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог матча поверх замершей арены.
type GameOverState struct {
	sm       *StateMachine
	finished *GameState
	title    string
	summary  []string
}

func NewGameOverState(sm *StateMachine, finished *GameState) *GameOverState {
	s := &GameOverState{sm: sm, finished: finished}

	g := finished.game
	switch {
	case g.IsDraw():
		s.title = "DRAW"
	case g.Winner() == types.RolePlayer:
		s.title = "VICTORY"
	default:
		s.title = "DEFEAT"
	}

	for _, id := range g.ECS.CombatantIDs() {
		st := g.Stats.For(id)
		s.summary = append(s.summary, fmt.Sprintf("%-10s dealt %6.0f  hits %3d  crits %3d  healed %5.0f",
			g.ECS.Combatants[id].Name, st.DamageDealt, st.Hits, st.Crits, st.Healed))
	}
	return s
}

func (s *GameOverState) Enter() {
	log.Printf("Game over: %s at %.1fs", s.title, s.finished.game.GetGameTime())
}

func (s *GameOverState) Update(deltaTime float64) {
	// Матч завершён, обновляются только всплывающие цифры
	s.finished.tick(deltaTime)
	s.finished.session.PollReload()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		next, err := NewGameState(s.sm, s.finished.session)
		if err != nil {
			log.Printf("failed to restart match: %v", err)
			return
		}
		s.sm.SetState(next)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.finished.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.finished.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	face := s.finished.session.FontFace
	y := config.ScreenHeight/2 - 40
	text.Draw(screen, s.title, face, (config.ScreenWidth-len(s.title)*config.TextCharWidth)/2, y, config.TextLightColor)
	y += 30
	for _, line := range s.summary {
		text.Draw(screen, line, face, (config.ScreenWidth-len(line)*config.TextCharWidth)/2, y, config.TextLightColor)
		y += 18
	}
	hint := "R - rematch, Esc - menu"
	text.Draw(screen, hint, face, (config.ScreenWidth-len(hint)*config.TextCharWidth)/2, y+12, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
