// internal/system/damage.go
package system

import (
	"go-boss-arena/internal/component"
	"go-boss-arena/internal/config"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/event"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"
)

// Hit — одно попадание до расчёта крита и снижения урона.
type Hit struct {
	Attacker     types.EntityID
	Target       types.EntityID
	Base         float64
	Type         defs.DamageType
	CanCrit      bool
	CanLifesteal bool
	Source       string
}

// DamageSystem — резолвер урона: крит, снижение, пассивка цели, округление, вампиризм.
type DamageSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	heal       *HealSystem
	passives   *PassiveSystem
}

func NewDamageSystem(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher, heal *HealSystem, passives *PassiveSystem) *DamageSystem {
	return &DamageSystem{
		ecs:        ecs,
		rng:        rng,
		dispatcher: dispatcher,
		heal:       heal,
		passives:   passives,
	}
}

// Resolve наносит урон и возвращает событие. Урон никогда не отклоняется;
// нулевой или отрицательный базовый урон ничего не меняет.
func (s *DamageSystem) Resolve(hit Hit) component.DamageEvent {
	ev := component.DamageEvent{
		Attacker: hit.Attacker,
		Target:   hit.Target,
		Base:     hit.Base,
		Type:     hit.Type,
		Source:   hit.Source,
		Time:     s.ecs.GameTime,
	}
	health, ok := s.ecs.Healths[hit.Target]
	if !ok || hit.Base <= 0 {
		return ev
	}

	amount := hit.Base
	if hit.CanCrit {
		if attacker, ok := s.ecs.Stats[hit.Attacker]; ok && s.rng.Chance(attacker.CritChance) {
			amount *= attacker.CritMultiplier
			ev.Crit = true
		}
	}
	amount = s.Mitigate(hit.Target, hit.Type, amount)

	ev.Final = utils.Whole(amount)
	if ev.Final <= 0 {
		return ev
	}

	before := health.Value
	health.Value = utils.Clamp(health.Value-ev.Final, 0, health.Max)
	lost := before - health.Value

	s.ecs.DamageLog = append(s.ecs.DamageLog, ev)
	if regen, ok := s.ecs.Regens[hit.Target]; ok {
		regen.SinceDamage = 0
	}
	s.passives.OnDamageTaken(hit.Target, lost)
	s.dispatcher.Emit(event.DamageDealt, ev)

	if hit.CanLifesteal {
		s.lifesteal(hit.Attacker, ev.Final)
	}
	return ev
}

// Mitigate применяет процентное снижение урона цели. Чистый урон не снижается.
func (s *DamageSystem) Mitigate(target types.EntityID, t defs.DamageType, amount float64) float64 {
	if t == defs.DamageTrue {
		return amount
	}
	stats, ok := s.ecs.Stats[target]
	if !ok {
		return amount
	}
	reduction := stats.Reduction(t) + s.passives.DamageReduction(target, t)
	reduction = utils.Clamp(reduction, 0, config.MaxDamageReduction)
	return amount * (1 - reduction)
}

func (s *DamageSystem) lifesteal(attacker types.EntityID, dealt float64) {
	stats, ok := s.ecs.Stats[attacker]
	if !ok || stats.LifestealPercent <= 0 {
		return
	}
	if s.rng.Chance(stats.LifestealChance) {
		s.heal.Heal(attacker, dealt*stats.LifestealPercent, "lifesteal")
	}
}
