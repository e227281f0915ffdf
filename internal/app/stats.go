// internal/app/stats.go
package app

import (
	"go-boss-arena/internal/component"
	"go-boss-arena/internal/event"
	"go-boss-arena/internal/types"
)

// RoleStats — итоги матча для одного бойца.
type RoleStats struct {
	DamageDealt float64
	Hits        int
	Crits       int
	Healed      float64
	Casts       int
	Passives    int
}

// MatchStats собирает итоги матча по событиям. Ключ — ID бойца.
type MatchStats struct {
	ByID map[types.EntityID]*RoleStats
}

func NewMatchStats() *MatchStats {
	return &MatchStats{ByID: make(map[types.EntityID]*RoleStats)}
}

// For возвращает итоги бойца, создавая запись при первом обращении.
func (s *MatchStats) For(id types.EntityID) *RoleStats {
	st, ok := s.ByID[id]
	if !ok {
		st = &RoleStats{}
		s.ByID[id] = st
	}
	return st
}

func (s *MatchStats) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case component.DamageEvent:
		st := s.For(data.Attacker)
		st.DamageDealt += data.Final
		st.Hits++
		if data.Crit {
			st.Crits++
		}
	case event.HealData:
		s.For(data.Target).Healed += data.Amount
	case event.SkillCastData:
		s.For(data.Caster).Casts++
	case event.PassiveData:
		s.For(data.Owner).Passives++
	}
}
