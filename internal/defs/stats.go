// internal/defs/stats.go
package defs

// StatBlock is the full set of numeric combat stats of a combatant.
// The same struct is used for base stats loaded from YAML and for the
// effective stats recomputed every tick.
type StatBlock struct {
	MaxHP             float64 `yaml:"max_hp"`
	HPRegen           float64 `yaml:"hp_regen"`
	PhysicalReduction float64 `yaml:"physical_reduction"`
	MagicReduction    float64 `yaml:"magic_reduction"`
	Attack            float64 `yaml:"attack"`
	AbilityPower      float64 `yaml:"ability_power"`
	AttackSpeed       float64 `yaml:"attack_speed"`
	AttackRange       float64 `yaml:"attack_range"`
	CritChance        float64 `yaml:"crit_chance"`
	CritMultiplier    float64 `yaml:"crit_multiplier"`
	LifestealChance   float64 `yaml:"lifesteal_chance"`
	LifestealPercent  float64 `yaml:"lifesteal_percent"`
	MovementSpeed     float64 `yaml:"movement_speed"`
	HealingReceived   float64 `yaml:"healing_received"`
}

// Field returns a pointer to the stat addressed by id, or nil for an unknown id.
func (s *StatBlock) Field(id StatID) *float64 {
	switch id {
	case StatMaxHP:
		return &s.MaxHP
	case StatHPRegen:
		return &s.HPRegen
	case StatPhysicalReduction:
		return &s.PhysicalReduction
	case StatMagicReduction:
		return &s.MagicReduction
	case StatAttack:
		return &s.Attack
	case StatAbilityPower:
		return &s.AbilityPower
	case StatAttackSpeed:
		return &s.AttackSpeed
	case StatAttackRange:
		return &s.AttackRange
	case StatCritChance:
		return &s.CritChance
	case StatCritMultiplier:
		return &s.CritMultiplier
	case StatLifestealChance:
		return &s.LifestealChance
	case StatLifestealPercent:
		return &s.LifestealPercent
	case StatMovementSpeed:
		return &s.MovementSpeed
	case StatHealingReceived:
		return &s.HealingReceived
	}
	return nil
}

// Reduction возвращает процент снижения урона для типа атаки.
func (s *StatBlock) Reduction(t DamageType) float64 {
	switch t {
	case DamagePhysical:
		return s.PhysicalReduction
	case DamageMagic:
		return s.MagicReduction
	}
	return 0
}

func (s *StatBlock) applyDefaults() {
	if s.HealingReceived == 0 {
		s.HealingReceived = 1
	}
	if s.CritMultiplier == 0 {
		s.CritMultiplier = 1
	}
}
