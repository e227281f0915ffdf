// internal/defs/validate.go
package defs

import (
	"errors"
	"fmt"

	"go-boss-arena/internal/types"
)

// ErrInvalidDefinition is wrapped by every validation failure.
var ErrInvalidDefinition = errors.New("invalid definition")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
}

// Validate checks the whole library and returns all problems joined together.
func (l *Library) Validate() error {
	var errs []error

	if l.Arena.Width <= 0 || l.Arena.Height <= 0 {
		errs = append(errs, invalid("arena size must be positive"))
	}
	for i, w := range l.Arena.Walls {
		if w.Width <= 0 || w.Height <= 0 {
			errs = append(errs, invalid("wall %d has non-positive size", i))
		}
	}

	for id, def := range l.Combatants {
		errs = append(errs, l.validateCombatant(id, def)...)
	}
	for id, def := range l.Skills {
		errs = append(errs, validateSkill(id, def)...)
	}

	errs = append(errs, l.validateMatch()...)
	return errors.Join(errs...)
}

func (l *Library) validateMatch() []error {
	var errs []error
	m := l.Match
	if def, ok := l.Combatants[m.Player]; !ok {
		errs = append(errs, invalid("match player %q is not defined", m.Player))
	} else if def.Role != types.RolePlayer {
		errs = append(errs, invalid("match player %q has role %q", m.Player, def.Role))
	}
	if def, ok := l.Combatants[m.Enemy]; !ok {
		errs = append(errs, invalid("match enemy %q is not defined", m.Enemy))
	} else if def.Role != types.RoleEnemy {
		errs = append(errs, invalid("match enemy %q has role %q", m.Enemy, def.Role))
	}
	for _, p := range []PolicyKind{m.EnemyPolicy, m.PlayerPolicy} {
		if !validPolicy(p) {
			errs = append(errs, invalid("unknown ai policy %q", p))
		}
		if p == PolicyScripted && m.Script == "" {
			errs = append(errs, invalid("scripted policy requires match script"))
		}
	}
	return errs
}

func (l *Library) validateCombatant(id string, def *CombatantDefinition) []error {
	var errs []error
	if def.Role != types.RolePlayer && def.Role != types.RoleEnemy {
		errs = append(errs, invalid("combatant %q: unknown role %q", id, def.Role))
	}
	if def.Size.Width <= 0 || def.Size.Height <= 0 {
		errs = append(errs, invalid("combatant %q: size must be positive", id))
	}
	errs = append(errs, ValidateStats(id, def.Stats)...)

	slots := make(map[int]string)
	for _, skillID := range def.Skills {
		skill, ok := l.Skills[skillID]
		if !ok {
			errs = append(errs, invalid("combatant %q: unknown skill %q", id, skillID))
			continue
		}
		if other, taken := slots[skill.Slot]; taken {
			errs = append(errs, invalid("combatant %q: skills %q and %q share slot %d", id, other, skillID, skill.Slot))
		}
		slots[skill.Slot] = skillID
	}

	if p := def.Passive; p != nil {
		switch p.Kind {
		case PassiveResolve:
			if p.MaxStacks <= 0 || p.LossPerStack <= 0 {
				errs = append(errs, invalid("combatant %q: resolve needs max_stacks and loss_per_stack", id))
			}
		case PassiveAdaptation:
			if p.Threshold <= 0 || p.Threshold > 1 {
				errs = append(errs, invalid("combatant %q: adaptation threshold must be in (0,1]", id))
			}
		default:
			errs = append(errs, invalid("combatant %q: unknown passive %q", id, p.Kind))
		}
		if p.Window <= 0 {
			errs = append(errs, invalid("combatant %q: passive window must be positive", id))
		}
		if p.ReductionCap < 0 || p.ReductionCap >= 1 {
			errs = append(errs, invalid("combatant %q: passive reduction_cap must be in [0,1)", id))
		}
	}
	return errs
}

// ValidateStats rejects stat blocks the damage resolver cannot handle.
func ValidateStats(id string, s StatBlock) []error {
	var errs []error
	if s.MaxHP <= 0 {
		errs = append(errs, invalid("combatant %q: max_hp must be positive, got %v", id, s.MaxHP))
	}
	for name, r := range map[string]float64{
		"physical_reduction": s.PhysicalReduction,
		"magic_reduction":    s.MagicReduction,
	} {
		if r < 0 || r >= 1 {
			errs = append(errs, invalid("combatant %q: %s must be in [0,1), got %v", id, name, r))
		}
	}
	for name, c := range map[string]float64{
		"crit_chance":      s.CritChance,
		"lifesteal_chance": s.LifestealChance,
	} {
		if c < 0 || c > 1 {
			errs = append(errs, invalid("combatant %q: %s must be in [0,1], got %v", id, name, c))
		}
	}
	if s.CritMultiplier < 1 {
		errs = append(errs, invalid("combatant %q: crit_multiplier must be >= 1", id))
	}
	if s.AttackSpeed <= 0 {
		errs = append(errs, invalid("combatant %q: attack_speed must be positive", id))
	}
	if s.AttackRange <= 0 {
		errs = append(errs, invalid("combatant %q: attack_range must be positive", id))
	}
	for name, v := range map[string]float64{
		"hp_regen":          s.HPRegen,
		"attack":            s.Attack,
		"ability_power":     s.AbilityPower,
		"lifesteal_percent": s.LifestealPercent,
		"movement_speed":    s.MovementSpeed,
		"healing_received":  s.HealingReceived,
	} {
		if v < 0 {
			errs = append(errs, invalid("combatant %q: %s must not be negative", id, name))
		}
	}
	return errs
}

func validateSkill(id string, def *SkillDefinition) []error {
	var errs []error
	if def.Slot < 1 || def.Slot > 4 {
		errs = append(errs, invalid("skill %q: slot must be 1..4", id))
	}
	if def.Cooldown < 0 {
		errs = append(errs, invalid("skill %q: cooldown must not be negative", id))
	}
	checkDamage := func(f *DamageFormula, what string) {
		if f != nil && !validDamageType(f.Type) {
			errs = append(errs, invalid("skill %q: %s has unknown damage type %q", id, what, f.Type))
		}
	}
	checkStatus := func(s *StatusDefinition) {
		if s == nil {
			return
		}
		if !validStatusKind(s.Kind) || s.Duration <= 0 {
			errs = append(errs, invalid("skill %q: bad status %q", id, s.Kind))
		}
		if s.Kind == StatusSlowed && (s.Magnitude < 0 || s.Magnitude > 1) {
			errs = append(errs, invalid("skill %q: slowed magnitude must be in [0,1], got %v", id, s.Magnitude))
		}
	}
	checkDamage(def.Damage, "damage")
	checkStatus(def.Status)

	if def.Mark != nil && def.Mark.Duration <= 0 {
		errs = append(errs, invalid("skill %q: mark duration must be positive", id))
	}
	if def.Knockback < 0 {
		errs = append(errs, invalid("skill %q: knockback must not be negative", id))
	}
	if def.Reposition != nil && def.Reposition.Offset < 0 {
		errs = append(errs, invalid("skill %q: reposition offset must not be negative", id))
	}

	switch def.Behavior {
	case BehaviorStrike:
		if def.Range <= 0 {
			errs = append(errs, invalid("skill %q: strike needs a positive range", id))
		}
	case BehaviorLine:
		if def.Range <= 0 || def.Width <= 0 {
			errs = append(errs, invalid("skill %q: line needs range and width", id))
		}
		if def.Zone != nil {
			checkDamage(&def.Zone.Damage, "zone")
			if def.Zone.Ticks <= 0 || def.Zone.Interval <= 0 {
				errs = append(errs, invalid("skill %q: zone needs ticks and interval", id))
			}
		}
	case BehaviorTwoStage:
		if def.Radius <= 0 || def.Window <= 0 || def.FollowUp == nil {
			errs = append(errs, invalid("skill %q: two_stage needs radius, window and follow_up", id))
		} else {
			checkDamage(&def.FollowUp.Damage, "follow_up")
			checkStatus(def.FollowUp.Status)
			if b := def.FollowUp.FrozenBonus; b != nil && !validDamageType(b.Type) {
				errs = append(errs, invalid("skill %q: frozen_bonus has unknown damage type %q", id, b.Type))
			}
		}
		if def.ComboCooldownReduction < 0 || def.ComboCooldownReduction > 1 {
			errs = append(errs, invalid("skill %q: combo_cooldown_reduction must be in [0,1]", id))
		}
	case BehaviorFortify:
		if def.Fortify == nil || def.Fortify.MaxHPMultiplier <= 0 || def.Fortify.Duration <= 0 {
			errs = append(errs, invalid("skill %q: fortify needs max_hp_multiplier and duration", id))
		}
	default:
		errs = append(errs, invalid("skill %q: unknown behavior %q", id, def.Behavior))
	}
	return errs
}
