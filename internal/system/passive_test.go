package system

import (
	"testing"

	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
)

func resolvePassive(maxStacks int) *defs.PassiveDefinition {
	return &defs.PassiveDefinition{
		Kind:           defs.PassiveResolve,
		Window:         3,
		LossPerStack:   0.02,
		MaxStacks:      maxStacks,
		ActiveDuration: 5,
		Cooldown:       12,
		Bonuses: []defs.ModifierDefinition{
			{Stat: defs.StatAttackSpeed, Add: 0.2},
		},
		ReductionPerStack: map[defs.DamageType]float64{defs.DamagePhysical: 0.01},
		ReductionCap:      0.3,
	}
}

func adaptationPassive() *defs.PassiveDefinition {
	return &defs.PassiveDefinition{
		Kind:              defs.PassiveAdaptation,
		Window:            3,
		Threshold:         0.05,
		Interval:          3,
		MaxHPPerStack:     250,
		RegenBase:         20,
		RegenPerStack:     2,
		RegenTicks:        5,
		ReductionPerStack: map[defs.DamageType]float64{defs.DamagePhysical: 0.005},
		ReductionCap:      0.1,
	}
}

func passiveWorld(t *testing.T, player, enemy *defs.PassiveDefinition) *testWorld {
	p := fighter(types.RolePlayer, 300, 250, plainStats())
	p.Passive = player
	e := fighter(types.RoleEnemy, 400, 250, plainStats())
	e.Passive = enemy
	return newTestWorld(t, p, e, nil, nil)
}

func TestResolveActivatesAtMaxStacks(t *testing.T) {
	w := passiveWorld(t, resolvePassive(3), nil)

	w.damage.Resolve(Hit{Attacker: w.enemy, Target: w.player, Base: 60, Type: defs.DamageTrue})
	w.passives.Update(0.1)

	p := w.ecs.Passives[w.player]
	if p.Stacks != 3 || !p.Active {
		t.Fatalf("Expected 3 stacks and active passive, got %d stacks active=%v", p.Stacks, p.Active)
	}
	if got := w.ecs.Stats[w.player].AttackSpeed; !approx(got, 1.2) {
		t.Errorf("Expected attack speed 1.2, got %v", got)
	}
	if got := w.passives.DamageReduction(w.player, defs.DamagePhysical); !approx(got, 0.03) {
		t.Errorf("Expected physical reduction 0.03, got %v", got)
	}
	if got := w.passives.DamageReduction(w.player, defs.DamageMagic); got != 0 {
		t.Errorf("Expected no magic reduction, got %v", got)
	}

	w.passives.Update(5)
	if p.Active {
		t.Error("Expected passive to deactivate after its duration")
	}
	if p.Stacks != 3 {
		t.Errorf("Expected stacks frozen during cooldown, got %d", p.Stacks)
	}

	w.passives.Update(7)
	if p.Stacks != 0 || p.Cooldown != 0 {
		t.Errorf("Expected reset after cooldown, got %d stacks cooldown %v", p.Stacks, p.Cooldown)
	}
}

func TestResolveStacksDropWhenWindowEmpties(t *testing.T) {
	w := passiveWorld(t, resolvePassive(5), nil)

	w.damage.Resolve(Hit{Attacker: w.enemy, Target: w.player, Base: 20, Type: defs.DamageTrue})
	w.passives.Update(0.1)
	p := w.ecs.Passives[w.player]
	if p.Stacks != 1 {
		t.Fatalf("Expected 1 stack, got %d", p.Stacks)
	}
	if got := w.passives.DamageReduction(w.player, defs.DamagePhysical); got != 0 {
		t.Errorf("Expected no reduction while inactive, got %v", got)
	}

	w.ecs.GameTime = 3.5
	w.passives.Update(0.1)
	if p.Stacks != 0 {
		t.Errorf("Expected stacks to reset, got %d", p.Stacks)
	}
}

func TestAdaptationGrantsStack(t *testing.T) {
	w := passiveWorld(t, nil, adaptationPassive())

	w.damage.Resolve(Hit{Attacker: w.player, Target: w.enemy, Base: 60, Type: defs.DamageTrue})
	w.passives.Update(0.1)

	p := w.ecs.Passives[w.enemy]
	if p.Stacks != 1 {
		t.Fatalf("Expected 1 adaptation stack, got %d", p.Stacks)
	}
	if got := w.ecs.Healths[w.enemy].Max; got != 1250 {
		t.Errorf("Expected max hp 1250, got %v", got)
	}
	if got := w.passives.DamageReduction(w.enemy, defs.DamagePhysical); !approx(got, 0.005) {
		t.Errorf("Expected reduction 0.005, got %v", got)
	}
	if hots := w.ecs.Regens[w.enemy].HoTs; len(hots) != 1 || hots[0].PerTick != 22 {
		t.Errorf("Expected one HoT of 22 per tick, got %+v", hots)
	}

	// Следующий стак — не раньше чем через интервал
	w.damage.Resolve(Hit{Attacker: w.player, Target: w.enemy, Base: 100, Type: defs.DamageTrue})
	w.passives.Update(0.1)
	if p.Stacks != 1 {
		t.Errorf("Expected interval to gate the next stack, got %d", p.Stacks)
	}

	w.passives.Update(3)
	if p.Stacks != 2 {
		t.Errorf("Expected second stack after interval, got %d", p.Stacks)
	}
	if got := w.ecs.Healths[w.enemy].Max; got != 1500 {
		t.Errorf("Expected max hp 1500, got %v", got)
	}
}

func TestAdaptationBelowThreshold(t *testing.T) {
	w := passiveWorld(t, nil, adaptationPassive())

	w.damage.Resolve(Hit{Attacker: w.player, Target: w.enemy, Base: 40, Type: defs.DamageTrue})
	w.passives.Update(0.1)
	if got := w.ecs.Passives[w.enemy].Stacks; got != 0 {
		t.Errorf("Expected no stack below threshold, got %d", got)
	}
}
