// internal/defs/combatants.go
package defs

import "go-boss-arena/internal/types"

// Size — размеры тела бойца в пикселях.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Point — точка на арене.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CombatantDefinition describes one fighter: stats, body, skills and passive.
type CombatantDefinition struct {
	ID         string             `yaml:"id"`
	Name       string             `yaml:"name"`
	Role       types.Role         `yaml:"role"`
	Size       Size               `yaml:"size"`
	Spawn      Point              `yaml:"spawn"`
	Stats      StatBlock          `yaml:"stats"`
	Skills     []string           `yaml:"skills"`
	Passive    *PassiveDefinition `yaml:"passive"`
	AutoAttack bool               `yaml:"auto_attack"`
}

// ModifierDefinition — временный (или постоянный при Duration <= 0) модификатор стата.
type ModifierDefinition struct {
	Stat     StatID  `yaml:"stat"`
	Add      float64 `yaml:"add"`
	Mult     float64 `yaml:"mult"` // 0 трактуется как 1
	Duration float64 `yaml:"duration"`
}

// Multiplier возвращает множитель с учётом значения по умолчанию.
func (m ModifierDefinition) Multiplier() float64 {
	if m.Mult == 0 {
		return 1
	}
	return m.Mult
}

// PassiveDefinition holds the tuning of both passives; each kind reads its own fields.
type PassiveDefinition struct {
	Kind   PassiveKind `yaml:"kind"`
	Window float64     `yaml:"window"`

	// resolve
	LossPerStack   float64              `yaml:"loss_per_stack"`
	MaxStacks      int                  `yaml:"max_stacks"`
	ActiveDuration float64              `yaml:"active_duration"`
	Cooldown       float64              `yaml:"cooldown"`
	Bonuses        []ModifierDefinition `yaml:"bonuses"`

	// adaptation
	Threshold     float64 `yaml:"threshold"`
	Interval      float64 `yaml:"interval"`
	MaxHPPerStack float64 `yaml:"max_hp_per_stack"`
	RegenBase     float64 `yaml:"regen_base"`
	RegenPerStack float64 `yaml:"regen_per_stack"`
	RegenTicks    int     `yaml:"regen_ticks"`

	// общее: снижение урона за стак
	ReductionPerStack map[DamageType]float64 `yaml:"reduction_per_stack"`
	ReductionCap      float64                `yaml:"reduction_cap"`
}
