// internal/event/data.go
package event

import (
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
)

type HealData struct {
	Target types.EntityID
	Amount float64
	Source string
}

type StatusData struct {
	Target    types.EntityID
	Kind      defs.StatusKind
	Remaining float64
	Refreshed bool
}

type SkillCastData struct {
	Caster  types.EntityID
	SkillID string
	Slot    int
	Stage   int
}

type PassiveData struct {
	Owner  types.EntityID
	Kind   defs.PassiveKind
	Stacks int
}

type MatchEndedData struct {
	Winner types.EntityID // 0 — ничья
	Time   float64
}
