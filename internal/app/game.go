// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-boss-arena/internal/component"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/event"
	"go-boss-arena/internal/system"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"

	"github.com/jakecoffman/cp"
)

// Options — настройки одного матча поверх match.yaml.
type Options struct {
	Seed         int64           // 0 — сид из match.yaml, а если и там 0, то текущее время
	EnemyPolicy  defs.PolicyKind // пусто — из match.yaml
	Autopilot    bool            // игроком тоже управляет ИИ
	PlayerPolicy defs.PolicyKind // пусто — из match.yaml, затем range_gated
}

// Game holds the match state and runs all systems in a fixed order.
type Game struct {
	Library         *defs.Library
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Stats           *MatchStats

	StatsSystem        *system.StatsSystem
	HealSystem         *system.HealSystem
	RegenSystem        *system.RegenSystem
	PassiveSystem      *system.PassiveSystem
	DamageSystem       *system.DamageSystem
	StatusEffectSystem *system.StatusEffectSystem
	CooldownSystem     *system.CooldownSystem
	ZoneSystem         *system.ZoneSystem
	MovementSystem     *system.MovementSystem
	SkillSystem        *system.SkillSystem
	CombatSystem       *system.CombatSystem
	AISystem           *system.AISystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
}

// NewGame initializes a new match from definitions.
func NewGame(lib *defs.Library, opts Options) (*Game, error) {
	if lib == nil {
		return nil, fmt.Errorf("failed to create game: nil library")
	}
	playerDef, enemyDef := lib.Player(), lib.Enemy()
	if playerDef == nil || enemyDef == nil {
		return nil, fmt.Errorf("failed to create game: match combatants %q/%q not found", lib.Match.Player, lib.Match.Enemy)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = lib.Match.Seed
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Library:         lib,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
		Stats:           NewMatchStats(),
	}

	g.StatsSystem = system.NewStatsSystem(ecs)
	g.HealSystem = system.NewHealSystem(ecs, eventDispatcher)
	g.RegenSystem = system.NewRegenSystem(ecs, g.HealSystem)
	g.PassiveSystem = system.NewPassiveSystem(ecs, eventDispatcher, g.StatsSystem, g.RegenSystem)
	g.DamageSystem = system.NewDamageSystem(ecs, g.Rng, eventDispatcher, g.HealSystem, g.PassiveSystem)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, eventDispatcher, g.DamageSystem, g.StatsSystem)
	g.CooldownSystem = system.NewCooldownSystem(ecs)
	g.ZoneSystem = system.NewZoneSystem(ecs, g.DamageSystem)
	g.MovementSystem = system.NewMovementSystem(ecs, lib.Arena)
	g.SkillSystem = system.NewSkillSystem(ecs, eventDispatcher, g.DamageSystem, g.StatusEffectSystem,
		g.StatsSystem, g.RegenSystem, g.ZoneSystem, g.MovementSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, g.DamageSystem)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)

	enemyPolicy := opts.EnemyPolicy
	if enemyPolicy == defs.PolicyNone {
		enemyPolicy = lib.Match.EnemyPolicy
	}
	if enemyPolicy == defs.PolicyNone {
		enemyPolicy = defs.PolicyRangeGated
	}
	playerPolicy := defs.PolicyNone
	if opts.Autopilot {
		playerPolicy = opts.PlayerPolicy
		if playerPolicy == defs.PolicyNone {
			playerPolicy = lib.Match.PlayerPolicy
		}
		if playerPolicy == defs.PolicyNone {
			playerPolicy = defs.PolicyRangeGated
		}
	}

	policies, err := g.buildPolicies(enemyPolicy, playerPolicy)
	if err != nil {
		return nil, err
	}
	for _, kind := range []defs.PolicyKind{enemyPolicy, playerPolicy} {
		if _, ok := policies[kind]; kind != defs.PolicyNone && !ok {
			return nil, fmt.Errorf("failed to create game: unknown ai policy %q", kind)
		}
	}
	g.AISystem = system.NewAISystem(ecs, g.SkillSystem, policies)

	system.SpawnCombatant(ecs, playerDef, lib.SkillsFor(playerDef), playerPolicy)
	system.SpawnCombatant(ecs, enemyDef, lib.SkillsFor(enemyDef), enemyPolicy)
	g.StatsSystem.RefreshAll()

	eventDispatcher.Subscribe(g.Stats, event.DamageDealt, event.Healed, event.SkillCast, event.PassiveTriggered)
	eventDispatcher.Subscribe(&GameEventListener{game: g}, event.PassiveTriggered, event.MatchEnded)

	log.Printf("Match started: %s vs %s, seed %d, enemy policy %s", playerDef.Name, enemyDef.Name, g.Rng.Seed(), enemyPolicy)
	return g, nil
}

func (g *Game) buildPolicies(kinds ...defs.PolicyKind) (map[defs.PolicyKind]system.Policy, error) {
	policies := map[defs.PolicyKind]system.Policy{
		defs.PolicyRangeGated:    system.NewRangeGatedPolicy(),
		defs.PolicyProbabilistic: system.NewProbabilisticPolicy(g.Rng),
	}
	for _, kind := range kinds {
		if kind != defs.PolicyScripted {
			continue
		}
		if _, ok := policies[kind]; ok {
			continue
		}
		src, ok := g.Library.Scripts[g.Library.Match.Script]
		if !ok {
			return nil, fmt.Errorf("failed to create scripted policy: script %q not loaded", g.Library.Match.Script)
		}
		scripted, err := system.NewScriptedPolicy(src)
		if err != nil {
			return nil, fmt.Errorf("failed to create scripted policy: %w", err)
		}
		policies[kind] = scripted
	}
	return policies, nil
}

// Update progresses the match by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.ECS.IsOver() {
		g.VisualEffectSystem.Update(deltaTime)
		return
	}
	g.ECS.GameTime += deltaTime
	g.ECS.DamageLog = nil

	g.StatusEffectSystem.Update(deltaTime)
	g.StatsSystem.Update(deltaTime)
	g.CooldownSystem.Update(deltaTime)
	g.RegenSystem.Update(deltaTime)
	g.ZoneSystem.Update(deltaTime)
	g.PassiveSystem.Update(deltaTime)
	g.StatsSystem.RefreshAll()

	g.AISystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)

	g.SkillSystem.ProcessQueue()
	g.CombatSystem.Update(deltaTime)

	g.StateSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

// --- Input ---

// SetMoveDirection задаёт направление движения игрока; длина обрезается до 1.
func (g *Game) SetMoveDirection(dx, dy float64) {
	if mv, ok := g.ECS.Movements[g.ECS.PlayerID]; ok {
		mv.Direction = utils.ClampLength(cp.Vector{X: dx, Y: dy}, 1)
	}
}

// CastSkill ставит умение игрока из слота n (1..4) в очередь.
func (g *Game) CastSkill(n int) {
	if g.ECS.IsOver() {
		return
	}
	g.SkillSystem.Queue(g.ECS.PlayerID, n)
}

// BasicAttack — ручная атака игрока.
func (g *Game) BasicAttack() {
	if g.ECS.IsOver() {
		return
	}
	g.CombatSystem.QueueAttack(g.ECS.PlayerID)
}

// --- Public Accessors ---

func (g *Game) IsOver() bool {
	return g.ECS.IsOver()
}

func (g *Game) IsDraw() bool {
	return g.ECS.Match.Draw
}

// Winner возвращает роль победителя; пустая строка, если матч идёт или ничья.
func (g *Game) Winner() types.Role {
	m := g.ECS.Match
	if m.Phase != component.MatchOver || m.Draw {
		return ""
	}
	if c, ok := g.ECS.Combatants[m.Winner]; ok {
		return c.Role
	}
	return ""
}

func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}

// GameEventListener логирует редкие события матча.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.PassiveData:
		name := ""
		if c, ok := l.game.ECS.Combatants[data.Owner]; ok {
			name = c.Name
		}
		log.Printf("%.2fs: %s passive %s, stacks %d", l.game.ECS.GameTime, name, data.Kind, data.Stacks)
	case event.MatchEndedData:
		log.Printf("Match finished in %.2fs: winner %q", data.Time, l.game.Winner())
	}
}
