// internal/system/heal.go
package system

import (
	"math"

	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/event"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"
)

// HealSystem — единая точка лечения: вампиризм, регенерация, HoT.
type HealSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewHealSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *HealSystem {
	return &HealSystem{ecs: ecs, dispatcher: dispatcher}
}

// Heal лечит с учётом healing_received и возвращает реально восстановленное здоровье.
// Мёртвых не лечит.
func (s *HealSystem) Heal(id types.EntityID, amount float64, source string) float64 {
	h, ok := s.ecs.Healths[id]
	if !ok || !h.Alive() || amount <= 0 {
		return 0
	}
	if stats, ok := s.ecs.Stats[id]; ok {
		amount *= stats.HealingReceived
	}
	applied := math.Min(utils.Whole(amount), h.Max-h.Value)
	if applied <= 0 {
		return 0
	}
	h.Value += applied

	s.dispatcher.Emit(event.Healed, event.HealData{Target: id, Amount: applied, Source: source})
	return applied
}
