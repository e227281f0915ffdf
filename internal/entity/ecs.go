// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-boss-arena/internal/component"
	"go-boss-arena/internal/types"
)

// ECS — состояние матча. Им владеет цикл обновления; системы получают его по ссылке.
type ECS struct {
	GameTime float64
	NextID   types.EntityID
	PlayerID types.EntityID
	EnemyID  types.EntityID

	Positions     map[types.EntityID]*component.Position
	Bodies        map[types.EntityID]*component.Body
	Movements     map[types.EntityID]*component.Movement
	Combatants    map[types.EntityID]*component.Combatant
	Healths       map[types.EntityID]*component.Health
	Stats         map[types.EntityID]*component.Stats
	BasicAttacks  map[types.EntityID]*component.BasicAttack
	StatusEffects map[types.EntityID]*component.StatusEffects
	Modifiers     map[types.EntityID]*component.Modifiers
	SkillBooks    map[types.EntityID]*component.SkillBook
	Marks         map[types.EntityID]*component.Marks
	Passives      map[types.EntityID]*component.Passive
	Regens        map[types.EntityID]*component.Regen
	Controllers   map[types.EntityID]*component.AIController
	Zones         map[types.EntityID]*component.Zone
	Texts         map[types.EntityID]*component.FloatingText
	DamageFlashes map[types.EntityID]*component.DamageFlash

	CastQueue   []component.CastRequest
	AttackQueue []types.EntityID
	DamageLog   []component.DamageEvent
	Match       *component.MatchState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Bodies:        make(map[types.EntityID]*component.Body),
		Movements:     make(map[types.EntityID]*component.Movement),
		Combatants:    make(map[types.EntityID]*component.Combatant),
		Healths:       make(map[types.EntityID]*component.Health),
		Stats:         make(map[types.EntityID]*component.Stats),
		BasicAttacks:  make(map[types.EntityID]*component.BasicAttack),
		StatusEffects: make(map[types.EntityID]*component.StatusEffects),
		Modifiers:     make(map[types.EntityID]*component.Modifiers),
		SkillBooks:    make(map[types.EntityID]*component.SkillBook),
		Marks:         make(map[types.EntityID]*component.Marks),
		Passives:      make(map[types.EntityID]*component.Passive),
		Regens:        make(map[types.EntityID]*component.Regen),
		Controllers:   make(map[types.EntityID]*component.AIController),
		Zones:         make(map[types.EntityID]*component.Zone),
		Texts:         make(map[types.EntityID]*component.FloatingText),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Match:         &component.MatchState{Phase: component.MatchRunning},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// CombatantIDs возвращает бойцов в фиксированном порядке: игрок, затем противник.
func (ecs *ECS) CombatantIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, 2)
	if ecs.PlayerID != 0 {
		ids = append(ids, ecs.PlayerID)
	}
	if ecs.EnemyID != 0 {
		ids = append(ids, ecs.EnemyID)
	}
	return ids
}

// Opponent возвращает противника бойца.
func (ecs *ECS) Opponent(id types.EntityID) types.EntityID {
	if id == ecs.PlayerID {
		return ecs.EnemyID
	}
	if id == ecs.EnemyID {
		return ecs.PlayerID
	}
	return 0
}

// ZoneIDs возвращает зоны, отсортированные по ID.
func (ecs *ECS) ZoneIDs() []types.EntityID {
	return sortedKeys(ecs.Zones)
}

// TextIDs возвращает всплывающие тексты, отсортированные по ID.
func (ecs *ECS) TextIDs() []types.EntityID {
	return sortedKeys(ecs.Texts)
}

// IsOver — завершён ли матч.
func (ecs *ECS) IsOver() bool {
	return ecs.Match.Phase == component.MatchOver
}

func sortedKeys[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
