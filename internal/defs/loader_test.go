package defs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadEmbedded(t *testing.T) {
	lib, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load embedded definitions: %v", err)
	}

	player, enemy := lib.Player(), lib.Enemy()
	if player == nil || enemy == nil {
		t.Fatal("Expected player and enemy definitions")
	}
	if player.Stats.HealingReceived != 1 {
		t.Errorf("Expected healing_received default 1, got %v", player.Stats.HealingReceived)
	}

	for _, def := range []*CombatantDefinition{player, enemy} {
		skills := lib.SkillsFor(def)
		if len(skills) != 4 {
			t.Fatalf("Expected 4 skills for %s, got %d", def.ID, len(skills))
		}
		for i, s := range skills {
			if s.Slot != i+1 {
				t.Errorf("Expected %s slot %d at index %d, got %d", def.ID, i+1, i, s.Slot)
			}
		}
	}
	if _, ok := lib.Scripts[lib.Match.Script]; !ok {
		t.Errorf("Expected script %q to be loaded", lib.Match.Script)
	}
}

// overrideDir кладёт во временный каталог изменённую копию встроенного файла.
func overrideDir(t *testing.T, name, old, replacement string) string {
	t.Helper()
	data, err := Source{}.ReadFile(name)
	if err != nil {
		t.Fatalf("Failed to read embedded %s: %v", name, err)
	}
	text := string(data)
	if !strings.Contains(text, old) {
		t.Fatalf("Embedded %s does not contain %q", name, old)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(strings.Replace(text, old, replacement, 1)), 0o644); err != nil {
		t.Fatalf("Failed to write override: %v", err)
	}
	return dir
}

func TestLoadRejectsInvalidStats(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		from, to string
	}{
		{"negative hp", CombatantsFile, "max_hp: 23000", "max_hp: -5"},
		{"reduction of one", CombatantsFile, "physical_reduction: 0.34", "physical_reduction: 1"},
		{"crit chance above one", CombatantsFile, "crit_chance: 0.7", "crit_chance: 1.5"},
		{"zero attack speed", CombatantsFile, "attack_speed: 1.9", "attack_speed: 0"},
		{"unknown skill", CombatantsFile, "skills: [shadow_step,", "skills: [missing_skill,"},
		{"zero mark duration", SkillsFile, "mark: {duration: 4}", "mark: {duration: 0}"},
		{"negative knockback", SkillsFile, "knockback: 50", "knockback: -50"},
		{"negative reposition offset", SkillsFile, "offset: 60}", "offset: -60}"},
		{"slow above one", SkillsFile, "magnitude: 0.4}", "magnitude: 1.5}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := overrideDir(t, tt.file, tt.from, tt.to)
			_, err := Load(dir)
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("Expected ErrInvalidDefinition, got %v", err)
			}
		})
	}
}

func TestLoadWithoutEnemyPolicy(t *testing.T) {
	dir := overrideDir(t, MatchFile, "enemy_policy: range_gated\n", "")
	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Expected match without enemy_policy to load, got %v", err)
	}
	if lib.Match.EnemyPolicy != PolicyNone {
		t.Errorf("Expected empty enemy policy, got %q", lib.Match.EnemyPolicy)
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	dir := overrideDir(t, MatchFile, "seed: 0", "seed: 0\nbogus: 1")
	if _, err := Load(dir); err == nil {
		t.Error("Expected error for an unknown field")
	}
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	dir := overrideDir(t, MatchFile, "enemy_policy: range_gated", "enemy_policy: psychic")
	_, err := Load(dir)
	if !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("Expected ErrInvalidDefinition, got %v", err)
	}
}

func TestLoadOverridesOnlyPresentFiles(t *testing.T) {
	dir := overrideDir(t, MatchFile, "seed: 0", "seed: 77")
	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if lib.Match.Seed != 77 {
		t.Errorf("Expected seed from override, got %d", lib.Match.Seed)
	}
	if lib.Player() == nil {
		t.Error("Expected combatants from embedded defaults")
	}
}

func TestValidateStats(t *testing.T) {
	valid := StatBlock{MaxHP: 100, AttackSpeed: 1, AttackRange: 50, CritMultiplier: 1, HealingReceived: 1}
	if errs := ValidateStats("ok", valid); len(errs) != 0 {
		t.Errorf("Expected valid stats, got %v", errs)
	}

	mutations := map[string]func(s *StatBlock){
		"zero hp":            func(s *StatBlock) { s.MaxHP = 0 },
		"negative reduction": func(s *StatBlock) { s.MagicReduction = -0.1 },
		"crit multiplier":    func(s *StatBlock) { s.CritMultiplier = 0.5 },
		"negative attack":    func(s *StatBlock) { s.Attack = -1 },
		"lifesteal chance":   func(s *StatBlock) { s.LifestealChance = 2 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			s := valid
			mutate(&s)
			errs := ValidateStats("bad", s)
			if len(errs) == 0 {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(errs[0], ErrInvalidDefinition) {
				t.Errorf("Expected ErrInvalidDefinition, got %v", errs[0])
			}
		})
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, MatchFile), []byte("seed: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != MatchFile {
			t.Errorf("Expected %s, got %s", MatchFile, name)
		}
	case err := <-w.Errors:
		t.Fatalf("Watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for watcher event")
	}
}
