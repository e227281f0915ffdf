// internal/system/visual_effect.go
package system

import (
	"fmt"
	"image/color"

	"go-boss-arena/internal/component"
	"go-boss-arena/internal/config"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/event"
	"go-boss-arena/internal/types"
)

// VisualEffectSystem управляет визуальными эффектами: всплывающие цифры и вспышки урона.
// Работает только по событиям и никогда не меняет боевое состояние.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов и подписывает её на события.
func NewVisualEffectSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	dispatcher.Subscribe(s, event.DamageDealt, event.Healed)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case component.DamageEvent:
		clr := config.DamageTextColor
		text := fmt.Sprintf("%.0f", data.Final)
		switch {
		case data.Crit:
			clr = config.CritTextColor
			text += "!"
		case data.Type == defs.DamageTrue:
			clr = config.TrueTextColor
		}
		s.spawnText(data.Target, text, clr)
		s.ecs.DamageFlashes[data.Target] = &component.DamageFlash{
			Timer:    config.DamageFlashDuration,
			Duration: config.DamageFlashDuration,
		}
	case event.HealData:
		if data.Amount >= 1 {
			s.spawnText(data.Target, fmt.Sprintf("+%.0f", data.Amount), config.HealTextColor)
		}
	}
}

func (s *VisualEffectSystem) spawnText(target types.EntityID, text string, clr color.RGBA) {
	pos, ok := s.ecs.Positions[target]
	if !ok {
		return
	}
	y := pos.Y
	if body, ok := s.ecs.Bodies[target]; ok {
		y -= body.Height / 2
	}
	// Небольшой сдвиг, чтобы одновременные цифры не накладывались
	offset := float64(len(s.ecs.Texts)%4) * 10
	s.ecs.Texts[s.ecs.NewEntity()] = &component.FloatingText{
		Text:     text,
		Color:    clr,
		X:        pos.X - 10 + offset,
		Y:        y,
		Duration: config.FloatingTextDuration,
	}
}

// Update двигает всплывающий текст вверх и удаляет истёкшие эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.TextIDs() {
		t := s.ecs.Texts[id]
		t.Timer += deltaTime
		t.Y -= config.FloatingTextRise * deltaTime / t.Duration
		if t.Timer >= t.Duration {
			delete(s.ecs.Texts, id)
		}
	}

	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}
