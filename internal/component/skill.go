// internal/component/skill.go
package component

import (
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
)

// SkillState — состояние умения: READY при Cooldown <= 0, иначе ON_COOLDOWN.
// Stage == 2 означает, что открыто окно второй стадии (Window секунд).
type SkillState struct {
	Def      *defs.SkillDefinition
	Cooldown float64
	Stage    int
	Window   float64
}

func (s *SkillState) Ready() bool {
	return s.Cooldown <= 0
}

// SkillBook — умения бойца по слотам 1..4
type SkillBook struct {
	Slots map[int]*SkillState
}

func NewSkillBook(skills []*defs.SkillDefinition) *SkillBook {
	book := &SkillBook{Slots: make(map[int]*SkillState, len(skills))}
	for _, def := range skills {
		book.Slots[def.Slot] = &SkillState{Def: def, Stage: 1}
	}
	return book
}

func (b *SkillBook) Slot(n int) (*SkillState, bool) {
	s, ok := b.Slots[n]
	return s, ok
}

// CastRequest — запрос на применение умения, обрабатывается в шаге атак.
type CastRequest struct {
	Caster types.EntityID
	Slot   int
}

// Mark — метка умения на цели.
type Mark struct {
	SkillID   string
	SourceID  types.EntityID
	Remaining float64
}

// Marks — метки на цели, по ID умения.
type Marks struct {
	BySkill map[string]*Mark
}

func NewMarks() *Marks {
	return &Marks{BySkill: make(map[string]*Mark)}
}

func (m *Marks) Has(skillID string) bool {
	_, ok := m.BySkill[skillID]
	return ok
}
