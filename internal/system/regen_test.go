package system

import (
	"testing"

	"go-boss-arena/internal/component"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
)

func TestRegenAfterDelay(t *testing.T) {
	stats := plainStats()
	stats.HPRegen = 60
	w := newTestWorld(t,
		fighter(types.RolePlayer, 300, 250, stats),
		fighter(types.RoleEnemy, 400, 250, plainStats()),
		nil, nil)
	w.ecs.Healths[w.player].Value = 500

	w.regen.Update(1)
	if got := w.hp(w.player); got != 500 {
		t.Errorf("Expected no regen before delay, got %v", got)
	}
	w.regen.Update(1)
	if got := w.hp(w.player); got != 530 {
		t.Errorf("Expected one regen tick of 30, got %v", got)
	}

	w.damage.Resolve(Hit{Attacker: w.enemy, Target: w.player, Base: 10, Type: defs.DamageTrue})
	w.regen.Update(1)
	if got := w.hp(w.player); got != 520 {
		t.Errorf("Expected damage to reset regen delay, got %v", got)
	}
}

func TestRegenSkipsDead(t *testing.T) {
	stats := plainStats()
	stats.HPRegen = 60
	w := newTestWorld(t,
		fighter(types.RolePlayer, 300, 250, stats),
		fighter(types.RoleEnemy, 400, 250, plainStats()),
		nil, nil)
	w.ecs.Healths[w.player].Value = 0

	w.regen.Update(5)
	if got := w.hp(w.player); got != 0 {
		t.Errorf("Expected dead combatant to stay at 0, got %v", got)
	}
}

func TestHealOverTime(t *testing.T) {
	w := defaultWorld(t)
	w.ecs.Healths[w.player].Value = 500

	w.regen.AddHoT(w.player, &component.HealOverTime{Source: "test", PerTick: 10, Interval: 1, TicksLeft: 3})
	// Повторное наложение с тем же источником заменяет лечение
	w.regen.AddHoT(w.player, &component.HealOverTime{Source: "test", PerTick: 20, Interval: 1, TicksLeft: 3})

	for i := 0; i < 4; i++ {
		w.regen.Update(1)
	}
	if got := w.hp(w.player); got != 560 {
		t.Errorf("Expected 3 ticks of 20, got hp %v", got)
	}
	if n := len(w.ecs.Regens[w.player].HoTs); n != 0 {
		t.Errorf("Expected HoT to finish, got %d active", n)
	}
}

func TestHealingReceivedScalesHeal(t *testing.T) {
	w := defaultWorld(t)
	w.ecs.Healths[w.player].Value = 500
	w.stats.AddModifier(w.player, "test", defs.ModifierDefinition{Stat: defs.StatHealingReceived, Mult: 0.7, Duration: 3})

	if got := w.heal.Heal(w.player, 100, "test"); got != 70 {
		t.Errorf("Expected 70 healed, got %v", got)
	}
}
