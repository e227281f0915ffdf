package system

import (
	"testing"

	"go-boss-arena/internal/component"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"
)

func TestChooseBehavior(t *testing.T) {
	tests := []struct {
		name string
		view AIView
		want component.AIBehavior
	}{
		{"far away", AIView{Distance: 500, HPFraction: 1, AttackRange: 80}, component.AIApproach},
		{"in range", AIView{Distance: 60, HPFraction: 1, AttackRange: 80}, component.AIHold},
		{"low hp", AIView{Distance: 60, HPFraction: 0.1, AttackRange: 80}, component.AIFlee},
		{"low hp with emergency skill", AIView{
			Distance:    60,
			HPFraction:  0.1,
			AttackRange: 80,
			Skills:      []AISkillView{{Slot: 4, Ready: true, HPThreshold: 0.5}},
		}, component.AIHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseBehavior(tt.view); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRangeGatedPolicy(t *testing.T) {
	view := AIView{
		Distance:    100,
		HPFraction:  0.8,
		AttackRange: 80,
		Skills: []AISkillView{
			{Slot: 1, Ready: true, InRange: true, Priority: 2},
			{Slot: 2, Ready: true, InRange: false, Priority: 1},
			{Slot: 3, Ready: false, InRange: true, Priority: 0},
			{Slot: 4, Ready: true, InRange: true, Priority: 0, HPThreshold: 0.5},
		},
	}

	got := NewRangeGatedPolicy().Decide(view)
	if len(got.Skills) != 1 || got.Skills[0] != 1 {
		t.Errorf("Expected slot 1, got %v", got.Skills)
	}
	if got.Behavior != component.AIApproach {
		t.Errorf("Expected approach, got %s", got.Behavior)
	}

	view.HPFraction = 0.4
	got = NewRangeGatedPolicy().Decide(view)
	if len(got.Skills) != 1 || got.Skills[0] != 4 {
		t.Errorf("Expected emergency slot 4 below threshold, got %v", got.Skills)
	}
}

func TestProbabilisticPolicy(t *testing.T) {
	view := AIView{
		Skills: []AISkillView{
			{Slot: 1, Chance: 1},
			{Slot: 2, Chance: 0},
			{Slot: 3, Chance: 1},
		},
	}
	got := NewProbabilisticPolicy(utils.NewPRNGService(1)).Decide(view)
	if len(got.Skills) != 2 || got.Skills[0] != 1 || got.Skills[1] != 3 {
		t.Errorf("Expected slots [1 3], got %v", got.Skills)
	}
}

func TestScriptedPolicy(t *testing.T) {
	src, err := defs.DataFS.ReadFile("data/scripts/enemy_ai.tengo")
	if err != nil {
		t.Fatalf("Failed to read script: %v", err)
	}
	policy, err := NewScriptedPolicy(src)
	if err != nil {
		t.Fatalf("Failed to compile script: %v", err)
	}

	tests := []struct {
		name         string
		view         AIView
		wantBehavior component.AIBehavior
		wantSkill    int
	}{
		{
			name:         "far and nothing in range",
			view:         AIView{Distance: 500, HPFraction: 1, AttackRange: 80, Skills: []AISkillView{{Slot: 1, Ready: true}}},
			wantBehavior: component.AIApproach,
		},
		{
			name: "prefers slot 2",
			view: AIView{Distance: 60, HPFraction: 1, AttackRange: 80, Skills: []AISkillView{
				{Slot: 1, Ready: true, InRange: true},
				{Slot: 2, Ready: true, InRange: true},
			}},
			wantBehavior: component.AIHold,
			wantSkill:    2,
		},
		{
			name: "fortify when hurt",
			view: AIView{Distance: 60, HPFraction: 0.4, AttackRange: 80, Skills: []AISkillView{
				{Slot: 2, Ready: true, InRange: true},
				{Slot: 4, Ready: true},
			}},
			wantBehavior: component.AIHold,
			wantSkill:    4,
		},
		{
			name:         "flee when almost dead",
			view:         AIView{Distance: 60, HPFraction: 0.1, AttackRange: 80},
			wantBehavior: component.AIFlee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Decide(tt.view)
			if got.Behavior != tt.wantBehavior {
				t.Errorf("Expected behavior %s, got %s", tt.wantBehavior, got.Behavior)
			}
			switch {
			case tt.wantSkill == 0 && len(got.Skills) != 0:
				t.Errorf("Expected no skill, got %v", got.Skills)
			case tt.wantSkill != 0 && (len(got.Skills) != 1 || got.Skills[0] != tt.wantSkill):
				t.Errorf("Expected skill %d, got %v", tt.wantSkill, got.Skills)
			}
		})
	}
}

func TestScriptedPolicyFallback(t *testing.T) {
	if _, err := NewScriptedPolicy([]byte("behavior = ")); err == nil {
		t.Error("Expected compile error for a broken script")
	}

	policy, err := NewScriptedPolicy([]byte(`behavior = "dance"; skill = 9`))
	if err != nil {
		t.Fatalf("Failed to compile script: %v", err)
	}
	got := policy.Decide(AIView{Distance: 500, HPFraction: 1, AttackRange: 80})
	if got.Behavior != component.AIApproach || len(got.Skills) != 0 {
		t.Errorf("Expected fallback to approach with no skill, got %s %v", got.Behavior, got.Skills)
	}
}

func TestScriptedPolicyImports(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"math allowed", `math := import("math"); skill = math.floor(1.7)`, false},
		{"rand allowed", `rand := import("rand"); skill = 0`, false},
		{"os rejected", `os := import("os"); skill = 0`, true},
		{"exec via os rejected", `os := import("os"); os.exec("ls")`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScriptedPolicy([]byte(tt.src))
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAISystemSteersAndQueues(t *testing.T) {
	w := newTestWorld(t,
		fighter(types.RolePlayer, 200, 250, plainStats()),
		fighter(types.RoleEnemy, 600, 250, plainStats()),
		nil, []*defs.SkillDefinition{strikeSkill()})
	ai := NewAISystem(w.ecs, w.skills, map[defs.PolicyKind]Policy{
		defs.PolicyRangeGated: NewRangeGatedPolicy(),
	})
	w.ecs.Controllers[w.enemy] = &component.AIController{Policy: defs.PolicyRangeGated}

	ai.Update(0.016)
	if got := w.ecs.Movements[w.enemy].Direction; !approx(got.X, -1) || !approx(got.Y, 0) {
		t.Errorf("Expected enemy to approach the player, got %v", got)
	}
	if len(w.ecs.CastQueue) != 0 {
		t.Errorf("Expected no cast out of range, got %v", w.ecs.CastQueue)
	}

	w.ecs.Positions[w.enemy].X = 300
	w.ecs.Controllers[w.enemy].ThinkTimer = 0
	ai.Update(0.016)
	if len(w.ecs.CastQueue) != 1 || w.ecs.CastQueue[0].Caster != w.enemy {
		t.Errorf("Expected one queued cast, got %v", w.ecs.CastQueue)
	}

	w.status.Apply(w.enemy, w.player, defs.StatusStunned, 1, 0)
	ai.Update(0.016)
	if got := w.ecs.Movements[w.enemy].Direction; got.Length() != 0 {
		t.Errorf("Expected stunned enemy to stand still, got %v", got)
	}
}
