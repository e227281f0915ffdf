// internal/system/combat.go
package system

import (
	"slices"

	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/types"
)

const basicAttackSource = "basic"

// CombatSystem управляет обычными атаками: раз в 1/attack_speed секунд по цели в радиусе.
type CombatSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewCombatSystem(ecs *entity.ECS, damage *DamageSystem) *CombatSystem {
	return &CombatSystem{ecs: ecs, damage: damage}
}

// QueueAttack — ручная атака; проходит те же проверки, что и автоатака.
func (s *CombatSystem) QueueAttack(id types.EntityID) {
	s.ecs.AttackQueue = append(s.ecs.AttackQueue, id)
}

func (s *CombatSystem) Update(deltaTime float64) {
	queued := s.ecs.AttackQueue
	s.ecs.AttackQueue = nil
	for _, id := range s.ecs.CombatantIDs() {
		c, ok := s.ecs.Combatants[id]
		if !ok {
			continue
		}
		if c.AutoAttack || slices.Contains(queued, id) {
			s.TryAttack(id)
		}
	}
}

// TryAttack бьёт противника, если таймер готов и цель в радиусе атаки.
// Таймер не сбрасывается, если удар не состоялся.
func (s *CombatSystem) TryAttack(id types.EntityID) bool {
	if s.ecs.IsOver() {
		return false
	}
	atk, ok := s.ecs.BasicAttacks[id]
	if !ok || atk.Cooldown > 0 {
		return false
	}
	if h, ok := s.ecs.Healths[id]; !ok || !h.Alive() {
		return false
	}
	if effects, ok := s.ecs.StatusEffects[id]; ok && effects.Disabled() {
		return false
	}
	target := s.ecs.Opponent(id)
	th, ok := s.ecs.Healths[target]
	if !ok || !th.Alive() {
		return false
	}
	stats := s.ecs.Stats[id]
	dist := s.ecs.Positions[id].Vector().Distance(s.ecs.Positions[target].Vector())
	if dist > stats.AttackRange {
		return false
	}

	s.damage.Resolve(Hit{
		Attacker:     id,
		Target:       target,
		Base:         stats.Attack,
		Type:         defs.DamagePhysical,
		CanCrit:      true,
		CanLifesteal: true,
		Source:       basicAttackSource,
	})
	atk.Cooldown = 1 / stats.AttackSpeed
	return true
}
