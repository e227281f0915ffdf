// internal/component/combat.go
package component

import (
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
)

// Health — компонент здоровья. Инвариант: 0 <= Value <= Max.
type Health struct {
	Value float64
	Max   float64
}

// Fraction возвращает долю оставшегося здоровья.
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

// Alive — жив ли боец.
func (h *Health) Alive() bool {
	return h.Value > 0
}

// Combatant — роль и базовые характеристики бойца. Base никогда не меняется во время матча.
type Combatant struct {
	DefID      string
	Name       string
	Role       types.Role
	Base       defs.StatBlock
	AutoAttack bool
}

// BasicAttack — таймер обычной атаки
type BasicAttack struct {
	Cooldown float64 // Оставшееся время до следующего удара
}

// Stats — эффективные характеристики: база с модификаторами и статус-эффектами.
// Пересчитываются каждый тик системой StatsSystem.
type Stats = defs.StatBlock
