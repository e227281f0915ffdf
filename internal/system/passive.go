// internal/system/passive.go
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

const (
	resolveSource    = "passive:resolve"
	adaptationSource = "passive:adaptation"
)

// PassiveHook — поведение конкретной пассивки. Резолвер урона симметричен
// и узнаёт о роли бойца только через эти хуки.
type PassiveHook interface {
	Update(id types.EntityID, p *component.Passive, deltaTime float64)
	DamageReduction(p *component.Passive, t defs.DamageType) float64
}

// PassiveSystem ведёт окно полученного урона и вызывает хуки пассивок.
type PassiveSystem struct {
	ecs   *entity.ECS
	hooks map[defs.PassiveKind]PassiveHook
}

func NewPassiveSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, stats *StatsSystem, regen *RegenSystem) *PassiveSystem {
	return &PassiveSystem{
		ecs: ecs,
		hooks: map[defs.PassiveKind]PassiveHook{
			defs.PassiveResolve:    &resolveHook{ecs: ecs, dispatcher: dispatcher, stats: stats},
			defs.PassiveAdaptation: &adaptationHook{ecs: ecs, dispatcher: dispatcher, stats: stats, regen: regen},
		},
	}
}

func (s *PassiveSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.CombatantIDs() {
		p, ok := s.ecs.Passives[id]
		if !ok {
			continue
		}
		p.Window.Prune(s.ecs.GameTime, windowLength(p.Def))
		if hook, ok := s.hooks[p.Def.Kind]; ok {
			hook.Update(id, p, deltaTime)
		}
	}
}

// OnDamageTaken записывает потерянное здоровье в окно.
func (s *PassiveSystem) OnDamageTaken(id types.EntityID, amount float64) {
	p, ok := s.ecs.Passives[id]
	if !ok || amount <= 0 {
		return
	}
	p.Window.Add(s.ecs.GameTime, amount)
}

// DamageReduction — дополнительное снижение урона от пассивки цели.
func (s *PassiveSystem) DamageReduction(id types.EntityID, t defs.DamageType) float64 {
	p, ok := s.ecs.Passives[id]
	if !ok {
		return 0
	}
	hook, ok := s.hooks[p.Def.Kind]
	if !ok {
		return 0
	}
	return hook.DamageReduction(p, t)
}

func windowLength(def *defs.PassiveDefinition) float64 {
	if def.Window > 0 {
		return def.Window
	}
	return config.DamageWindowSeconds
}

func stackReduction(p *component.Passive, t defs.DamageType) float64 {
	per := p.Def.ReductionPerStack[t]
	return utils.Clamp(float64(p.Stacks)*per, 0, p.Def.ReductionCap)
}

// resolveHook — пассивка игрока. Стаки растут от доли здоровья, потерянной в окне,
// и не уменьшаются, пока окно не опустеет. На максимуме стаков пассивка активируется.
type resolveHook struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	stats      *StatsSystem
}

func (h *resolveHook) Update(id types.EntityID, p *component.Passive, deltaTime float64) {
	def := p.Def
	if p.Active {
		p.ActiveTimer -= deltaTime
		if p.ActiveTimer <= 0 {
			p.Active = false
			p.ActiveTimer = 0
		}
	}
	if p.Cooldown > 0 {
		// Стаки заморожены до конца перезарядки
		p.Cooldown -= deltaTime
		if p.Cooldown <= 0 {
			p.Cooldown = 0
			p.Stacks = 0
		}
		return
	}

	if len(p.Window.Samples) == 0 {
		p.Stacks = 0
		return
	}
	health := h.ecs.Healths[id]
	lost := p.Window.Total() / health.Max
	stacks := min(int(lost/def.LossPerStack+1e-9), def.MaxStacks)
	if stacks > p.Stacks {
		p.Stacks = stacks
	}
	if p.Stacks < def.MaxStacks {
		return
	}

	p.Active = true
	p.ActiveTimer = def.ActiveDuration
	p.Cooldown = def.Cooldown
	for _, bonus := range def.Bonuses {
		bonus.Duration = def.ActiveDuration
		h.stats.AddModifier(id, resolveSource, bonus)
	}
	h.dispatcher.Emit(event.PassiveTriggered, event.PassiveData{Owner: id, Kind: def.Kind, Stacks: p.Stacks})
}

func (h *resolveHook) DamageReduction(p *component.Passive, t defs.DamageType) float64 {
	if !p.Active {
		return 0
	}
	return stackReduction(p, t)
}

// adaptationHook — пассивка противника. Крупный урон за окно даёт стак адаптации:
// постоянный прирост maxHp, лечение по тикам и снижение урона за стак.
type adaptationHook struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	stats      *StatsSystem
	regen      *RegenSystem
}

func (h *adaptationHook) Update(id types.EntityID, p *component.Passive, deltaTime float64) {
	def := p.Def
	p.SinceTriggered += deltaTime
	if p.SinceTriggered < def.Interval {
		return
	}
	health := h.ecs.Healths[id]
	if p.Window.Total() < def.Threshold*health.Max {
		return
	}

	p.Stacks++
	p.SinceTriggered = 0
	p.Window.Samples = nil

	h.stats.AddModifier(id, adaptationSource, defs.ModifierDefinition{
		Stat: defs.StatMaxHP,
		Add:  def.MaxHPPerStack * float64(p.Stacks),
	})
	if def.RegenTicks > 0 {
		h.regen.AddHoT(id, &component.HealOverTime{
			Source:    adaptationSource,
			PerTick:   def.RegenBase + def.RegenPerStack*float64(p.Stacks),
			Interval:  config.HoTTickInterval,
			TicksLeft: def.RegenTicks,
		})
	}
	h.dispatcher.Emit(event.PassiveTriggered, event.PassiveData{Owner: id, Kind: def.Kind, Stacks: p.Stacks})
}

func (h *adaptationHook) DamageReduction(p *component.Passive, t defs.DamageType) float64 {
	return stackReduction(p, t)
}
