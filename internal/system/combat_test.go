package system

import (
	"testing"

	"go-boss-arena/internal/defs"
)

func TestBasicAttack(t *testing.T) {
	w := defaultWorld(t)

	if !w.combat.TryAttack(w.player) {
		t.Fatal("Expected attack in range to land")
	}
	if got := w.hp(w.enemy); got != 900 {
		t.Errorf("Expected hp 900, got %v", got)
	}
	if got := w.ecs.BasicAttacks[w.player].Cooldown; got != 1 {
		t.Errorf("Expected attack timer 1, got %v", got)
	}
	if w.combat.TryAttack(w.player) {
		t.Error("Expected attack to wait for its timer")
	}

	w.cooldown.Update(1)
	if !w.combat.TryAttack(w.player) {
		t.Error("Expected attack after timer elapsed")
	}
}

func TestBasicAttackOutOfRange(t *testing.T) {
	w := defaultWorld(t)
	w.ecs.Positions[w.enemy].X = 450

	if w.combat.TryAttack(w.player) {
		t.Error("Expected attack out of range to be ignored")
	}
	if got := w.ecs.BasicAttacks[w.player].Cooldown; got != 0 {
		t.Errorf("Expected timer untouched, got %v", got)
	}
}

func TestQueuedAttack(t *testing.T) {
	w := defaultWorld(t)

	w.combat.Update(0.016)
	if got := w.hp(w.enemy); got != 1000 {
		t.Errorf("Expected no attack without auto attack or input, got hp %v", got)
	}

	w.combat.QueueAttack(w.player)
	w.combat.Update(0.016)
	if got := w.hp(w.enemy); got != 900 {
		t.Errorf("Expected queued attack to land, got hp %v", got)
	}
}

func TestBasicAttackRejectedWhileDisabled(t *testing.T) {
	tests := []struct {
		name string
		kind defs.StatusKind
	}{
		{"stunned", defs.StatusStunned},
		{"frozen", defs.StatusFrozen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := defaultWorld(t)
			w.status.Apply(w.player, w.enemy, tt.kind, 1, 0)

			if w.combat.TryAttack(w.player) {
				t.Error("Expected attack to be refused")
			}
			if got := w.hp(w.enemy); got != 1000 {
				t.Errorf("Expected hp 1000, got %v", got)
			}
			if got := w.ecs.BasicAttacks[w.player].Cooldown; got != 0 {
				t.Errorf("Expected timer untouched, got %v", got)
			}

			w.status.Update(1)
			if !w.combat.TryAttack(w.player) {
				t.Error("Expected attack once the status expired")
			}
		})
	}
}
