// internal/component/modifier.go
package component

import "go-boss-arena/internal/defs"

// StatModifier меняет эффективное значение стата: (base + Add) * Mult.
type StatModifier struct {
	Source    string
	Stat      defs.StatID
	Add       float64
	Mult      float64
	Remaining float64
	Permanent bool
}

// Modifiers — активные модификаторы бойца. Пара (Source, Stat) уникальна.
type Modifiers struct {
	List []*StatModifier
}

// Set добавляет модификатор или обновляет уже существующий с тем же источником и статом.
func (m *Modifiers) Set(mod *StatModifier) {
	for i, existing := range m.List {
		if existing.Source == mod.Source && existing.Stat == mod.Stat {
			m.List[i] = mod
			return
		}
	}
	m.List = append(m.List, mod)
}

// Find ищет модификатор по источнику и стату.
func (m *Modifiers) Find(source string, stat defs.StatID) (*StatModifier, bool) {
	for _, mod := range m.List {
		if mod.Source == source && mod.Stat == stat {
			return mod, true
		}
	}
	return nil, false
}

// RemoveSource удаляет все модификаторы источника.
func (m *Modifiers) RemoveSource(source string) {
	kept := m.List[:0]
	for _, mod := range m.List {
		if mod.Source != source {
			kept = append(kept, mod)
		}
	}
	m.List = kept
}
