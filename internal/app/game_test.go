package app

import (
	"reflect"
	"testing"

	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
)

func testLibrary(playerHP, enemyHP float64) *defs.Library {
	stats := func(hp float64) defs.StatBlock {
		return defs.StatBlock{
			MaxHP:             hp,
			PhysicalReduction: 0.3,
			MagicReduction:    0.3,
			Attack:            100,
			AttackSpeed:       1,
			AttackRange:       80,
			CritMultiplier:    1,
			MovementSpeed:     1,
			HealingReceived:   1,
		}
	}
	return &defs.Library{
		Arena: defs.ArenaDefinition{Width: 1000, Height: 500},
		Match: defs.MatchDefinition{
			Player:      "hero",
			Enemy:       "boss",
			EnemyPolicy: defs.PolicyRangeGated,
		},
		Combatants: map[string]*defs.CombatantDefinition{
			"hero": {
				ID: "hero", Name: "Hero", Role: types.RolePlayer,
				Size:  defs.Size{Width: 50, Height: 50},
				Spawn: defs.Point{X: 100, Y: 250},
				Stats: stats(playerHP),
			},
			"boss": {
				ID: "boss", Name: "Boss", Role: types.RoleEnemy,
				Size:  defs.Size{Width: 60, Height: 60},
				Spawn: defs.Point{X: 900, Y: 250},
				Stats: stats(enemyHP),
			},
		},
		Skills:  map[string]*defs.SkillDefinition{},
		Scripts: map[string][]byte{},
	}
}

func newTestGame(t *testing.T, lib *defs.Library, opts Options) *Game {
	t.Helper()
	g, err := NewGame(lib, opts)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return g
}

func TestSinglePhysicalHit(t *testing.T) {
	g := newTestGame(t, testLibrary(20000, 80000), Options{Seed: 7})
	ecs := g.ECS

	g.DamageSystem.Resolve(hitFor(ecs.PlayerID, ecs.EnemyID))
	if got := ecs.Healths[ecs.EnemyID].Value; got != 79300 {
		t.Errorf("Expected enemy hp 79300, got %v", got)
	}

	g.DamageSystem.Resolve(hitFor(ecs.EnemyID, ecs.PlayerID))
	if got := ecs.Healths[ecs.PlayerID].Value; got != 19300 {
		t.Errorf("Expected player hp 19300, got %v", got)
	}
}

func TestMoveInput(t *testing.T) {
	g := newTestGame(t, testLibrary(1000, 1000), Options{Seed: 7})

	g.SetMoveDirection(3, 4)
	dir := g.ECS.Movements[g.ECS.PlayerID].Direction
	if dir.Length() > 1+1e-9 {
		t.Errorf("Expected direction clamped to length 1, got %v", dir.Length())
	}

	g.SetMoveDirection(1, 0)
	g.Update(0.5)
	if got := g.Snapshot().Player.X; got < 199.999 || got > 200.001 {
		t.Errorf("Expected player at x 200, got %v", got)
	}
}

func TestBasicAttackInputRespectsRange(t *testing.T) {
	g := newTestGame(t, testLibrary(1000, 1000), Options{Seed: 7})

	g.BasicAttack()
	g.Update(0.016)
	if got := g.Snapshot().Enemy.HP; got != 1000 {
		t.Errorf("Expected no damage out of range, got hp %v", got)
	}
}

func TestMatchEndsAndFreezes(t *testing.T) {
	g := newTestGame(t, testLibrary(1000, 1000), Options{Seed: 7})
	g.ECS.Healths[g.ECS.EnemyID].Value = 0

	g.Update(0.016)
	if !g.IsOver() || g.Winner() != types.RolePlayer {
		t.Fatalf("Expected player win, got over=%v winner=%q", g.IsOver(), g.Winner())
	}

	at := g.GetGameTime()
	g.CastSkill(1)
	g.Update(1)
	if g.GetGameTime() != at {
		t.Error("Expected game time to stop after the match ended")
	}
	if len(g.ECS.CastQueue) != 0 {
		t.Error("Expected input to be ignored after the match ended")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	lib := testLibrary(1000, 1000)
	lib.Arena.Walls = []defs.Rect{{X: 400, Y: 0, Width: 20, Height: 100}}
	g := newTestGame(t, lib, Options{Seed: 7})

	snap := g.Snapshot()
	snap.Walls[0].X = 0
	snap.Player.HP = 0
	if lib.Arena.Walls[0].X != 400 || g.ECS.Healths[g.ECS.PlayerID].Value != 1000 {
		t.Error("Expected snapshot changes not to leak into the match")
	}
}

func TestDefaultMatchIsDeterministic(t *testing.T) {
	lib, err := defs.Load("")
	if err != nil {
		t.Fatalf("Failed to load definitions: %v", err)
	}

	run := func() (Snapshot, map[types.EntityID]RoleStats) {
		g := newTestGame(t, lib, Options{Seed: 1234, Autopilot: true})
		for i := 0; i < 60*60 && !g.IsOver(); i++ {
			g.Update(1.0 / 60)
			for _, id := range g.ECS.CombatantIDs() {
				h := g.ECS.Healths[id]
				if h.Value < 0 || h.Value > h.Max {
					t.Fatalf("hp out of range at frame %d: %v/%v", i, h.Value, h.Max)
				}
			}
		}
		stats := make(map[types.EntityID]RoleStats)
		for id, st := range g.Stats.ByID {
			stats[id] = *st
		}
		return g.Snapshot(), stats
	}

	snapA, statsA := run()
	snapB, statsB := run()
	if !reflect.DeepEqual(snapA, snapB) {
		t.Error("Expected identical snapshots for the same seed")
	}
	if !reflect.DeepEqual(statsA, statsB) {
		t.Errorf("Expected identical match stats, got %+v and %+v", statsA, statsB)
	}
}

func TestScriptedPolicyMatch(t *testing.T) {
	lib, err := defs.Load("")
	if err != nil {
		t.Fatalf("Failed to load definitions: %v", err)
	}
	g := newTestGame(t, lib, Options{Seed: 5, EnemyPolicy: defs.PolicyScripted})
	for i := 0; i < 600; i++ {
		g.Update(1.0 / 60)
	}
	if g.Snapshot().Enemy.X >= lib.Enemy().Spawn.X {
		t.Error("Expected scripted enemy to approach the player")
	}
}

func TestScriptedPolicyWithoutScript(t *testing.T) {
	lib := testLibrary(1000, 1000)
	lib.Match.Script = "missing.tengo"
	if _, err := NewGame(lib, Options{EnemyPolicy: defs.PolicyScripted}); err == nil {
		t.Error("Expected error when the script is not loaded")
	}
}

func TestUnknownPolicyRejected(t *testing.T) {
	lib := testLibrary(1000, 1000)
	if _, err := NewGame(lib, Options{EnemyPolicy: "berserk"}); err == nil {
		t.Error("Expected error for unknown enemy policy")
	}
	if _, err := NewGame(lib, Options{Autopilot: true, PlayerPolicy: "berserk"}); err == nil {
		t.Error("Expected error for unknown player policy")
	}
}

func TestEmptyEnemyPolicyDefaultsToRangeGated(t *testing.T) {
	lib := testLibrary(1000, 1000)
	lib.Match.EnemyPolicy = defs.PolicyNone
	g := newTestGame(t, lib, Options{Seed: 1})

	ctrl, ok := g.ECS.Controllers[g.ECS.EnemyID]
	if !ok {
		t.Fatal("Expected enemy to have an AI controller")
	}
	if ctrl.Policy != defs.PolicyRangeGated {
		t.Errorf("Expected %s, got %s", defs.PolicyRangeGated, ctrl.Policy)
	}
}
