// internal/system/regen.go
package system

import (
	"go-boss-arena/internal/component"
	"go-boss-arena/internal/config"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/types"
)

// RegenSystem — регенерация вне боя и лечение по тикам. Всё считается аккумуляторами
// внутри шага обновления, отдельных таймеров нет.
type RegenSystem struct {
	ecs  *entity.ECS
	heal *HealSystem
}

func NewRegenSystem(ecs *entity.ECS, heal *HealSystem) *RegenSystem {
	return &RegenSystem{ecs: ecs, heal: heal}
}

// AddHoT запускает лечение по тикам. HoT с тем же источником заменяется.
func (s *RegenSystem) AddHoT(id types.EntityID, hot *component.HealOverTime) {
	r, ok := s.ecs.Regens[id]
	if !ok || hot.TicksLeft <= 0 || hot.Interval <= 0 {
		return
	}
	for i, existing := range r.HoTs {
		if existing.Source == hot.Source {
			r.HoTs[i] = hot
			return
		}
	}
	r.HoTs = append(r.HoTs, hot)
}

func (s *RegenSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.CombatantIDs() {
		r, ok := s.ecs.Regens[id]
		h, hasHealth := s.ecs.Healths[id]
		if !ok || !hasHealth || !h.Alive() {
			continue
		}

		// Естественная регенерация после паузы без урона
		r.SinceDamage += deltaTime
		if r.SinceDamage >= config.RegenDelay && h.Value < h.Max {
			r.TickTimer += deltaTime
			for r.TickTimer >= config.RegenTickInterval {
				r.TickTimer -= config.RegenTickInterval
				stats := s.ecs.Stats[id]
				s.heal.Heal(id, stats.HPRegen*config.RegenScale*config.RegenTickInterval, "regen")
			}
		} else {
			r.TickTimer = 0
		}

		kept := r.HoTs[:0]
		for _, hot := range r.HoTs {
			hot.TickTimer += deltaTime
			for hot.TicksLeft > 0 && hot.TickTimer >= hot.Interval {
				hot.TickTimer -= hot.Interval
				hot.TicksLeft--
				s.heal.Heal(id, hot.PerTick, hot.Source)
			}
			if hot.TicksLeft > 0 {
				kept = append(kept, hot)
			}
		}
		r.HoTs = kept
	}
}
