// internal/defs/types.go
package defs

// DamageType defines the type of damage dealt.
type DamageType string

const (
	DamagePhysical DamageType = "PHYSICAL"
	DamageMagic    DamageType = "MAGIC"
	DamageTrue     DamageType = "TRUE" // игнорирует любое снижение урона
)

// StatusKind — вид статус-эффекта.
type StatusKind string

const (
	StatusSlowed  StatusKind = "slowed"
	StatusStunned StatusKind = "stunned"
	StatusFrozen  StatusKind = "frozen"
	StatusBurning StatusKind = "burning"
)

// StatusKinds задаёт фиксированный порядок обхода эффектов.
var StatusKinds = []StatusKind{StatusSlowed, StatusStunned, StatusFrozen, StatusBurning}

// SkillBehavior определяет, как умение выбирает цель и что делает.
type SkillBehavior string

const (
	BehaviorStrike   SkillBehavior = "strike"
	BehaviorLine     SkillBehavior = "line"
	BehaviorTwoStage SkillBehavior = "two_stage"
	BehaviorFortify  SkillBehavior = "fortify"
)

// RepositionMode — куда переносится заклинатель после удара.
type RepositionMode string

const (
	RepositionBehindTarget RepositionMode = "behind_target"
	RepositionToTarget     RepositionMode = "to_target"
)

// PassiveKind — пассивная способность бойца.
type PassiveKind string

const (
	PassiveNone       PassiveKind = ""
	PassiveResolve    PassiveKind = "resolve"
	PassiveAdaptation PassiveKind = "adaptation"
)

// PolicyKind — стратегия выбора умений у ИИ.
type PolicyKind string

const (
	PolicyNone          PolicyKind = ""
	PolicyRangeGated    PolicyKind = "range_gated"
	PolicyProbabilistic PolicyKind = "probabilistic"
	PolicyScripted      PolicyKind = "scripted"
)

// StatID адресует поле в StatBlock.
type StatID string

const (
	StatMaxHP             StatID = "max_hp"
	StatHPRegen           StatID = "hp_regen"
	StatPhysicalReduction StatID = "physical_reduction"
	StatMagicReduction    StatID = "magic_reduction"
	StatAttack            StatID = "attack"
	StatAbilityPower      StatID = "ability_power"
	StatAttackSpeed       StatID = "attack_speed"
	StatAttackRange       StatID = "attack_range"
	StatCritChance        StatID = "crit_chance"
	StatCritMultiplier    StatID = "crit_multiplier"
	StatLifestealChance   StatID = "lifesteal_chance"
	StatLifestealPercent  StatID = "lifesteal_percent"
	StatMovementSpeed     StatID = "movement_speed"
	StatHealingReceived   StatID = "healing_received"
)

func validDamageType(t DamageType) bool {
	switch t {
	case DamagePhysical, DamageMagic, DamageTrue:
		return true
	}
	return false
}

func validStatusKind(k StatusKind) bool {
	for _, kind := range StatusKinds {
		if kind == k {
			return true
		}
	}
	return false
}

func validPolicy(p PolicyKind) bool {
	switch p {
	case PolicyNone, PolicyRangeGated, PolicyProbabilistic, PolicyScripted:
		return true
	}
	return false
}
