// internal/system/stats.go
package system

import (
	"go-boss-arena/internal/component"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"
)

// StatsSystem пересчитывает эффективные характеристики из базы, модификаторов и статусов.
// База (Combatant.Base) никогда не изменяется.
type StatsSystem struct {
	ecs *entity.ECS
}

func NewStatsSystem(ecs *entity.ECS) *StatsSystem {
	return &StatsSystem{ecs: ecs}
}

// Update уменьшает таймеры временных модификаторов и удаляет истёкшие.
func (s *StatsSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.CombatantIDs() {
		mods, ok := s.ecs.Modifiers[id]
		if !ok {
			continue
		}
		kept := mods.List[:0]
		for _, m := range mods.List {
			if !m.Permanent {
				m.Remaining -= deltaTime
				if m.Remaining <= 0 {
					continue
				}
			}
			kept = append(kept, m)
		}
		mods.List = kept
	}
}

// AddModifier добавляет модификатор (или обновляет модификатор того же источника) и пересчитывает статы.
func (s *StatsSystem) AddModifier(id types.EntityID, source string, def defs.ModifierDefinition) {
	mods, ok := s.ecs.Modifiers[id]
	if !ok {
		return
	}
	mods.Set(&component.StatModifier{
		Source:    source,
		Stat:      def.Stat,
		Add:       def.Add,
		Mult:      def.Multiplier(),
		Remaining: def.Duration,
		Permanent: def.Duration <= 0,
	})
	s.Refresh(id)
}

// RefreshAll пересчитывает статы обоих бойцов.
func (s *StatsSystem) RefreshAll() {
	for _, id := range s.ecs.CombatantIDs() {
		s.Refresh(id)
	}
}

// Refresh считает (base + Σadd) * Πmult, затем множители статусов.
// Максимальное здоровье синхронизируется с Health, текущее обрезается по нему.
func (s *StatsSystem) Refresh(id types.EntityID) {
	c, ok := s.ecs.Combatants[id]
	if !ok {
		return
	}
	eff := c.Base

	if mods, ok := s.ecs.Modifiers[id]; ok {
		for _, m := range mods.List {
			if f := eff.Field(m.Stat); f != nil {
				*f += m.Add
			}
		}
		for _, m := range mods.List {
			if f := eff.Field(m.Stat); f != nil {
				*f *= m.Mult
			}
		}
	}

	if effects, ok := s.ecs.StatusEffects[id]; ok {
		if slow, ok := effects.Get(defs.StatusSlowed); ok {
			eff.MovementSpeed *= 1 - utils.Clamp(slow.Magnitude, 0, 1)
		}
	}

	eff.CritChance = utils.Clamp(eff.CritChance, 0, 1)
	eff.LifestealChance = utils.Clamp(eff.LifestealChance, 0, 1)
	eff.PhysicalReduction = utils.Clamp(eff.PhysicalReduction, 0, 0.99)
	eff.MagicReduction = utils.Clamp(eff.MagicReduction, 0, 0.99)
	eff.MovementSpeed = max(eff.MovementSpeed, 0)
	eff.AttackSpeed = max(eff.AttackSpeed, 0.05)
	eff.HealingReceived = max(eff.HealingReceived, 0)
	eff.MaxHP = max(utils.Whole(eff.MaxHP), 1)

	if stats, ok := s.ecs.Stats[id]; ok {
		*stats = eff
	}
	if h, ok := s.ecs.Healths[id]; ok {
		h.Max = eff.MaxHP
		if h.Value > h.Max {
			h.Value = h.Max
		}
	}
}
