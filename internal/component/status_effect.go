// internal/component/status_effect.go
package component

import (
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
)

// StatusEffect — один активный эффект. Magnitude: доля замедления для slowed,
// доля maxHp за тик для burning.
type StatusEffect struct {
	Kind      defs.StatusKind
	Remaining float64
	Magnitude float64
	TickTimer float64
	SourceID  types.EntityID
}

// StatusEffects хранит не более одного эффекта каждого вида.
type StatusEffects struct {
	Effects map[defs.StatusKind]*StatusEffect
}

func NewStatusEffects() *StatusEffects {
	return &StatusEffects{Effects: make(map[defs.StatusKind]*StatusEffect)}
}

func (s *StatusEffects) Get(kind defs.StatusKind) (*StatusEffect, bool) {
	e, ok := s.Effects[kind]
	return e, ok
}

func (s *StatusEffects) Has(kind defs.StatusKind) bool {
	_, ok := s.Effects[kind]
	return ok
}

// Disabled — оглушён или заморожен: не двигается, не атакует, не кастует.
func (s *StatusEffects) Disabled() bool {
	return s.Has(defs.StatusStunned) || s.Has(defs.StatusFrozen)
}
