package system

import (
	"math"
	"testing"

	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/event"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"
)

// testWorld собирает все системы матча так же, как это делает app.Game.
type testWorld struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService

	stats    *StatsSystem
	heal     *HealSystem
	regen    *RegenSystem
	passives *PassiveSystem
	damage   *DamageSystem
	status   *StatusEffectSystem
	movement *MovementSystem
	zones    *ZoneSystem
	skills   *SkillSystem
	combat   *CombatSystem
	cooldown *CooldownSystem
	state    *StateSystem

	player types.EntityID
	enemy  types.EntityID
}

func plainStats() defs.StatBlock {
	return defs.StatBlock{
		MaxHP:           1000,
		Attack:          100,
		AttackSpeed:     1,
		AttackRange:     100,
		CritMultiplier:  1,
		MovementSpeed:   1,
		HealingReceived: 1,
	}
}

func fighter(role types.Role, x, y float64, stats defs.StatBlock) *defs.CombatantDefinition {
	return &defs.CombatantDefinition{
		ID:    string(role),
		Name:  string(role),
		Role:  role,
		Size:  defs.Size{Width: 50, Height: 50},
		Spawn: defs.Point{X: x, Y: y},
		Stats: stats,
	}
}

func newTestWorld(t *testing.T, player, enemy *defs.CombatantDefinition, playerSkills, enemySkills []*defs.SkillDefinition) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(42),
	}
	arena := defs.ArenaDefinition{Width: 1000, Height: 500}

	w.stats = NewStatsSystem(w.ecs)
	w.heal = NewHealSystem(w.ecs, w.dispatcher)
	w.regen = NewRegenSystem(w.ecs, w.heal)
	w.passives = NewPassiveSystem(w.ecs, w.dispatcher, w.stats, w.regen)
	w.damage = NewDamageSystem(w.ecs, w.rng, w.dispatcher, w.heal, w.passives)
	w.status = NewStatusEffectSystem(w.ecs, w.dispatcher, w.damage, w.stats)
	w.movement = NewMovementSystem(w.ecs, arena)
	w.zones = NewZoneSystem(w.ecs, w.damage)
	w.skills = NewSkillSystem(w.ecs, w.dispatcher, w.damage, w.status, w.stats, w.regen, w.zones, w.movement)
	w.combat = NewCombatSystem(w.ecs, w.damage)
	w.cooldown = NewCooldownSystem(w.ecs)
	w.state = NewStateSystem(w.ecs, w.dispatcher)

	w.player = SpawnCombatant(w.ecs, player, playerSkills, defs.PolicyNone)
	w.enemy = SpawnCombatant(w.ecs, enemy, enemySkills, defs.PolicyNone)
	return w
}

// defaultWorld — игрок слева, противник в 100 пикселях справа, без умений.
func defaultWorld(t *testing.T) *testWorld {
	return newTestWorld(t,
		fighter(types.RolePlayer, 300, 250, plainStats()),
		fighter(types.RoleEnemy, 400, 250, plainStats()),
		nil, nil)
}

func (w *testWorld) hp(id types.EntityID) float64 {
	return w.ecs.Healths[id].Value
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
