// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"strconv"
	"time"

	game "go-boss-arena/internal/app"
	"go-boss-arena/internal/config"
	"go-boss-arena/internal/ui"
	"go-boss-arena/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var _ State = (*GameState)(nil)

var skillKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// GameState — состояние боя
type GameState struct {
	sm           *StateMachine
	session      *Session
	game         *game.Game
	snap         game.Snapshot
	renderer     *render.ArenaRenderer
	playerBar    *ui.HealthBar
	enemyBar     *ui.HealthBar
	skillButtons []*ui.SkillButton
	joystick     *ui.Joystick
	speedButton  *ui.SpeedButton
	pauseButton  *ui.PauseButton
}

func NewGameState(sm *StateMachine, session *Session) (*GameState, error) {
	gameLogic, err := session.NewMatch()
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	face := session.FontFace
	renderer := render.NewArenaRenderer(gameLogic.Library.Arena, 0, config.ArenaOffsetY, face)

	gs := &GameState{
		sm:          sm,
		session:     session,
		game:        gameLogic,
		renderer:    renderer,
		playerBar:   ui.NewHealthBar(20, config.HealthBarY, config.HealthBarWidth, config.HealthBarHeight, config.HealthColor, face),
		enemyBar:    ui.NewHealthBar(config.ScreenWidth-20-config.HealthBarWidth, config.HealthBarY, config.HealthBarWidth, config.HealthBarHeight, config.EnemyColor, face),
		joystick:    ui.NewJoystick(config.JoystickX, config.JoystickY, config.JoystickRadius, config.JoystickKnobRadius),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseColor, config.PlayColor),
	}
	gs.speedButton.SetState(session.Clock.SpeedIndex())

	total := float32(len(skillKeys)*config.SkillButtonSize + (len(skillKeys)-1)*config.SkillButtonGap)
	x := (float32(config.ScreenWidth) - total) / 2
	for i := range skillKeys {
		slot := i + 1
		gs.skillButtons = append(gs.skillButtons,
			ui.NewSkillButton(x, config.SkillBarY, config.SkillButtonSize, slot, strconv.Itoa(slot), face))
		x += config.SkillButtonSize + config.SkillButtonGap
	}

	gs.snap = gameLogic.Snapshot()
	return gs, nil
}

func (g *GameState) Enter() {
	g.session.Clock.SetPaused(false)
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.session.PollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return
	}

	g.joystick.Update()
	g.handleMovement()

	for i, key := range skillKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.castSkill(i + 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.BasicAttack()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.handleUIClick(float32(x), float32(y)) {
			return
		}
	}

	g.tick(deltaTime)
	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// tick продвигает матч и обновляет снимок для отрисовки.
func (g *GameState) tick(deltaTime float64) {
	g.game.Update(deltaTime)
	g.snap = g.game.Snapshot()
	g.playerBar.Update(deltaTime, g.snap.Player)
	g.enemyBar.Update(deltaTime, g.snap.Enemy)
}

// handleMovement складывает клавиатуру и джойстик в одно направление.
func (g *GameState) handleMovement() {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	jx, jy := g.joystick.Direction()
	g.game.SetMoveDirection(dx+jx, dy+jy)
}

func (g *GameState) castSkill(slot int) {
	g.game.CastSkill(slot)
	if slot >= 1 && slot <= len(g.skillButtons) {
		g.skillButtons[slot-1].Press()
	}
}

// handleUIClick обрабатывает клик по интерфейсу. Клик по арене — базовая атака.
// Возвращает true, если после клика состояние сменилось.
func (g *GameState) handleUIClick(mx, my float32) bool {
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond
	switch {
	case g.speedButton.IsClicked(mx, my):
		if time.Since(g.speedButton.LastToggleTime) >= cooldown {
			speed := g.session.Clock.CycleSpeed()
			g.speedButton.ToggleState()
			log.Printf("Game speed x%.0f", speed)
		}
	case g.pauseButton.IsClicked(mx, my):
		if time.Since(g.pauseButton.LastToggleTime) >= cooldown {
			g.pause()
			return true
		}
	case g.joystick.Active():
	default:
		for _, b := range g.skillButtons {
			if b.Contains(mx, my) {
				g.castSkill(b.Slot)
				return false
			}
		}
		if my >= config.ArenaOffsetY && my < config.ArenaOffsetY+float32(g.snap.ArenaHeight) {
			g.game.BasicAttack()
		}
	}
	return false
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.session.Clock.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.snap)

	g.playerBar.Draw(screen, g.snap.Player)
	g.enemyBar.Draw(screen, g.snap.Enemy)

	for _, b := range g.skillButtons {
		view, ok := g.snap.Player.Skill(b.Slot)
		b.Draw(screen, view, ok)
	}
	g.joystick.Draw(screen)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  x%.0f", ebiten.ActualFPS(), g.session.Clock.Speed()), 10, config.ScreenHeight-18)

	clock := fmt.Sprintf("%02d:%02d", int(g.snap.Time)/60, int(g.snap.Time)%60)
	text.Draw(screen, clock, g.session.FontFace, config.ScreenWidth/2-len(clock)*config.TextCharWidth/2, 24, config.TextLightColor)
	if g.session.ReloadPending() {
		msg := "definitions changed: restart to apply"
		text.Draw(screen, msg, g.session.FontFace, config.ScreenWidth/2-len(msg)*config.TextCharWidth/2, 40, config.StageTwoColor)
	}
}

func (g *GameState) Exit() {}
