// internal/system/status_effect.go
package system

import (
	"math"

	"go-boss-arena/internal/component"
	"go-boss-arena/internal/config"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/event"
	"go-boss-arena/internal/types"
)

const tickEpsilon = 1e-9

// StatusEffectSystem управляет жизненным циклом эффектов: замедление, оглушение, заморозка, горение.
type StatusEffectSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	damage     *DamageSystem
	stats      *StatsSystem
}

func NewStatusEffectSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, damage *DamageSystem, stats *StatsSystem) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, dispatcher: dispatcher, damage: damage, stats: stats}
}

// Apply накладывает эффект. Повторное наложение не суммируется: остаток времени
// становится максимумом из двух, сила — тоже максимумом.
func (s *StatusEffectSystem) Apply(target, source types.EntityID, kind defs.StatusKind, duration, magnitude float64) {
	effects, ok := s.ecs.StatusEffects[target]
	if !ok || duration <= 0 {
		return
	}
	if h, ok := s.ecs.Healths[target]; ok && !h.Alive() {
		return
	}

	effect, refreshed := effects.Get(kind)
	if refreshed {
		effect.Remaining = math.Max(effect.Remaining, duration)
		effect.Magnitude = math.Max(effect.Magnitude, magnitude)
		effect.SourceID = source
	} else {
		effect = &component.StatusEffect{
			Kind:      kind,
			Remaining: duration,
			Magnitude: magnitude,
			SourceID:  source,
		}
		if kind == defs.StatusBurning {
			effect.TickTimer = config.BurnTickInterval
		}
		effects.Effects[kind] = effect
	}
	s.stats.Refresh(target)

	s.dispatcher.Emit(event.StatusApplied, event.StatusData{
		Target:    target,
		Kind:      kind,
		Remaining: effect.Remaining,
		Refreshed: refreshed,
	})
}

// Remove снимает эффект досрочно.
func (s *StatusEffectSystem) Remove(target types.EntityID, kind defs.StatusKind) {
	effects, ok := s.ecs.StatusEffects[target]
	if !ok || !effects.Has(kind) {
		return
	}
	delete(effects.Effects, kind)
	s.stats.Refresh(target)
	s.dispatcher.Emit(event.StatusExpired, event.StatusData{Target: target, Kind: kind})
}

// Update обрабатывает все активные эффекты в фиксированном порядке.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.CombatantIDs() {
		effects, ok := s.ecs.StatusEffects[id]
		if !ok {
			continue
		}
		for _, kind := range defs.StatusKinds {
			effect, ok := effects.Get(kind)
			if !ok {
				continue
			}
			if kind == defs.StatusBurning {
				s.tickBurn(id, effect, math.Min(deltaTime, effect.Remaining))
			}
			effect.Remaining -= deltaTime
			if effect.Remaining <= tickEpsilon {
				s.Remove(id, kind)
			}
		}
	}
}

// tickBurn наносит чистый урон (доля maxHp) за каждый прошедший интервал горения.
func (s *StatusEffectSystem) tickBurn(id types.EntityID, effect *component.StatusEffect, elapsed float64) {
	effect.TickTimer -= elapsed
	for effect.TickTimer <= tickEpsilon {
		effect.TickTimer += config.BurnTickInterval
		h, ok := s.ecs.Healths[id]
		if !ok {
			return
		}
		s.damage.Resolve(Hit{
			Attacker: effect.SourceID,
			Target:   id,
			Base:     h.Max * effect.Magnitude,
			Type:     defs.DamageTrue,
			Source:   string(defs.StatusBurning),
		})
	}
}
