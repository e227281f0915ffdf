// internal/system/state.go
package system

import (
	"log"

	"go-boss-arena/internal/component"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/event"
	"go-boss-arena/internal/utils"
)

// StateSystem следит за инвариантом здоровья и завершением матча.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update обрезает здоровье до [0, max] и проверяет конец матча.
// Если оба бойца погибли в одном кадре — ничья.
func (s *StateSystem) Update(deltaTime float64) {
	if s.ecs.IsOver() {
		return
	}
	for _, id := range s.ecs.CombatantIDs() {
		if h, ok := s.ecs.Healths[id]; ok {
			h.Value = utils.Clamp(h.Value, 0, h.Max)
		}
	}

	playerDead := !s.ecs.Healths[s.ecs.PlayerID].Alive()
	enemyDead := !s.ecs.Healths[s.ecs.EnemyID].Alive()
	if !playerDead && !enemyDead {
		return
	}

	m := s.ecs.Match
	m.Phase = component.MatchOver
	switch {
	case playerDead && enemyDead:
		m.Draw = true
	case playerDead:
		m.Winner = s.ecs.EnemyID
	default:
		m.Winner = s.ecs.PlayerID
	}
	s.ecs.CastQueue = nil
	s.ecs.AttackQueue = nil

	log.Printf("Match ended at %.2fs, winner=%d draw=%v", s.ecs.GameTime, m.Winner, m.Draw)
	s.eventDispatcher.Emit(event.MatchEnded, event.MatchEndedData{Winner: m.Winner, Time: s.ecs.GameTime})
}
