// internal/defs/skills.go
package defs

// DamageFormula scales a base amount with caster and target stats.
type DamageFormula struct {
	Type              DamageType `yaml:"type"`
	Base              float64    `yaml:"base"`
	AttackRatio       float64    `yaml:"attack_ratio"`
	AbilityPowerRatio float64    `yaml:"ability_power_ratio"`
	MaxHPRatio        float64    `yaml:"max_hp_ratio"`    // от максимального здоровья заклинателя
	TargetHPRatio     float64    `yaml:"target_hp_ratio"` // от текущего здоровья цели
}

// Amount считает базовый урон до крита и снижения.
func (f DamageFormula) Amount(caster *StatBlock, targetHP float64) float64 {
	return f.Base +
		f.AttackRatio*caster.Attack +
		f.AbilityPowerRatio*caster.AbilityPower +
		f.MaxHPRatio*caster.MaxHP +
		f.TargetHPRatio*targetHP
}

type StatusDefinition struct {
	Kind      StatusKind `yaml:"kind"`
	Duration  float64    `yaml:"duration"`
	Magnitude float64    `yaml:"magnitude"`
}

type RepositionDefinition struct {
	Mode   RepositionMode `yaml:"mode"`
	Offset float64        `yaml:"offset"`
}

type MarkDefinition struct {
	Duration float64 `yaml:"duration"`
}

// ZoneDefinition — остающаяся на земле область, наносящая урон тиками.
type ZoneDefinition struct {
	Damage   DamageFormula `yaml:"damage"`
	Ticks    int           `yaml:"ticks"`
	Interval float64       `yaml:"interval"`
}

// FrozenBonusDefinition applies when the follow-up lands on a frozen target.
type FrozenBonusDefinition struct {
	Type          DamageType `yaml:"type"`
	HealReduction float64    `yaml:"heal_reduction"`
	Duration      float64    `yaml:"duration"`
}

type FollowUpDefinition struct {
	Damage      DamageFormula          `yaml:"damage"`
	Status      *StatusDefinition      `yaml:"status"`
	FrozenBonus *FrozenBonusDefinition `yaml:"frozen_bonus"`
}

// FortifyDefinition — временное увеличение здоровья с лечением по тикам.
type FortifyDefinition struct {
	MaxHPMultiplier float64 `yaml:"max_hp_multiplier"`
	Duration        float64 `yaml:"duration"`
	HealFraction    float64 `yaml:"heal_fraction"` // доля maxHp за всё время
	Ticks           int     `yaml:"ticks"`
}

// SkillDefinition describes one castable skill bound to a slot (1..4).
type SkillDefinition struct {
	ID        string        `yaml:"id"`
	Name      string        `yaml:"name"`
	Slot      int           `yaml:"slot"`
	Behavior  SkillBehavior `yaml:"behavior"`
	Cooldown  float64       `yaml:"cooldown"`
	Range     float64       `yaml:"range"`
	Width     float64       `yaml:"width"`
	Radius    float64       `yaml:"radius"`
	CanCrit   bool          `yaml:"can_crit"`
	Lifesteal bool          `yaml:"lifesteal"`

	Damage     *DamageFormula        `yaml:"damage"`
	Status     *StatusDefinition     `yaml:"status"`
	Reposition *RepositionDefinition `yaml:"reposition"`
	Knockback  float64               `yaml:"knockback"`
	SelfBuff   *ModifierDefinition   `yaml:"self_buff"`
	Mark       *MarkDefinition       `yaml:"mark"`
	Zone       *ZoneDefinition       `yaml:"zone"`

	Window                 float64             `yaml:"window"`
	FollowUp               *FollowUpDefinition `yaml:"follow_up"`
	ComboCooldownReduction float64             `yaml:"combo_cooldown_reduction"`

	Fortify *FortifyDefinition `yaml:"fortify"`

	AIChance      float64 `yaml:"ai_chance"`       // вероятность попытки за одно решение ИИ
	AIHPThreshold float64 `yaml:"ai_hp_threshold"` // 0 — без ограничения
	AIPriority    int     `yaml:"ai_priority"`
}

// Reach returns how far the target may be (center to center) for the skill
// to connect. Zero means the skill does not need a target in range.
func (d *SkillDefinition) Reach() float64 {
	switch d.Behavior {
	case BehaviorTwoStage:
		return d.Range + d.Radius
	case BehaviorFortify:
		return 0
	}
	return d.Range
}
