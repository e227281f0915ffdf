// internal/system/spawn.go
package system

import (
	"go-boss-arena/internal/component"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/types"

	"github.com/jakecoffman/cp"
)

// SpawnCombatant создаёт бойца по описанию. Если policy не пуст, бойцом управляет ИИ.
func SpawnCombatant(ecs *entity.ECS, def *defs.CombatantDefinition, skills []*defs.SkillDefinition, policy defs.PolicyKind) types.EntityID {
	id := ecs.NewEntity()

	facing := cp.Vector{X: 1}
	if def.Role == types.RoleEnemy {
		facing = cp.Vector{X: -1}
	}

	ecs.Positions[id] = &component.Position{X: def.Spawn.X, Y: def.Spawn.Y}
	ecs.Bodies[id] = &component.Body{Width: def.Size.Width, Height: def.Size.Height}
	ecs.Movements[id] = &component.Movement{Facing: facing}
	ecs.Combatants[id] = &component.Combatant{
		DefID:      def.ID,
		Name:       def.Name,
		Role:       def.Role,
		Base:       def.Stats,
		AutoAttack: def.AutoAttack,
	}
	stats := def.Stats
	ecs.Stats[id] = &stats
	ecs.Healths[id] = &component.Health{Value: def.Stats.MaxHP, Max: def.Stats.MaxHP}
	ecs.BasicAttacks[id] = &component.BasicAttack{}
	ecs.StatusEffects[id] = component.NewStatusEffects()
	ecs.Modifiers[id] = &component.Modifiers{}
	ecs.SkillBooks[id] = component.NewSkillBook(skills)
	ecs.Marks[id] = component.NewMarks()
	ecs.Regens[id] = &component.Regen{}

	if def.Passive != nil && def.Passive.Kind != defs.PassiveNone {
		p := &component.Passive{Def: def.Passive}
		if def.Passive.Kind == defs.PassiveAdaptation {
			// Первая адаптация доступна сразу
			p.SinceTriggered = def.Passive.Interval
		}
		ecs.Passives[id] = p
	}
	if policy != defs.PolicyNone {
		ecs.Controllers[id] = &component.AIController{Policy: policy, Behavior: component.AIHold}
	}

	switch def.Role {
	case types.RolePlayer:
		ecs.PlayerID = id
	case types.RoleEnemy:
		ecs.EnemyID = id
	}
	return id
}
