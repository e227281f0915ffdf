// internal/app/snapshot.go
package app

import (
	"image/color"
	"sort"

	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"
)

type StatusView struct {
	Kind      defs.StatusKind
	Remaining float64
}

type SkillView struct {
	Slot        int
	Name        string
	Cooldown    float64
	MaxCooldown float64
	Stage       int
	Window      float64
	Ready       bool
}

// CombatantView — всё, что нужно отрисовать об одном бойце.
type CombatantView struct {
	ID            types.EntityID
	Name          string
	Role          types.Role
	X, Y          float64
	Width, Height float64
	FacingX       float64
	FacingY       float64
	HP, MaxHP     float64
	Statuses      []StatusView
	Skills        []SkillView
	Passive       defs.PassiveKind
	PassiveStacks int
	PassiveActive bool
	Flash         float64 // 0..1, сила вспышки от полученного урона
}

type ZoneView struct {
	OriginX, OriginY float64
	DirX, DirY       float64
	Length, Width    float64
	TicksLeft        int
}

type TextView struct {
	Text  string
	Color color.RGBA
	X, Y  float64
	Alpha float64
}

// Snapshot — неизменяемый снимок матча для отрисовки.
type Snapshot struct {
	Time        float64
	ArenaWidth  float64
	ArenaHeight float64
	Walls       []defs.Rect
	Player      CombatantView
	Enemy       CombatantView
	Zones       []ZoneView
	Texts       []TextView
	Over        bool
	Draw        bool
	Winner      types.Role
}

// Snapshot копирует состояние матча; изменения снимка не влияют на игру.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Time:        g.ECS.GameTime,
		ArenaWidth:  g.Library.Arena.Width,
		ArenaHeight: g.Library.Arena.Height,
		Walls:       append([]defs.Rect(nil), g.Library.Arena.Walls...),
		Player:      g.combatantView(g.ECS.PlayerID),
		Enemy:       g.combatantView(g.ECS.EnemyID),
		Over:        g.IsOver(),
		Draw:        g.IsDraw(),
		Winner:      g.Winner(),
	}

	for _, id := range g.ECS.ZoneIDs() {
		z := g.ECS.Zones[id]
		snap.Zones = append(snap.Zones, ZoneView{
			OriginX:   z.Origin.X,
			OriginY:   z.Origin.Y,
			DirX:      z.Dir.X,
			DirY:      z.Dir.Y,
			Length:    z.Length,
			Width:     z.Width,
			TicksLeft: z.TicksLeft,
		})
	}
	for _, id := range g.ECS.TextIDs() {
		t := g.ECS.Texts[id]
		snap.Texts = append(snap.Texts, TextView{
			Text:  t.Text,
			Color: t.Color,
			X:     t.X,
			Y:     t.Y,
			Alpha: utils.Clamp(1-t.Timer/t.Duration, 0, 1),
		})
	}
	return snap
}

func (g *Game) combatantView(id types.EntityID) CombatantView {
	c, ok := g.ECS.Combatants[id]
	if !ok {
		return CombatantView{}
	}
	pos := g.ECS.Positions[id]
	body := g.ECS.Bodies[id]
	health := g.ECS.Healths[id]
	facing := g.ECS.Movements[id].Facing

	view := CombatantView{
		ID:      id,
		Name:    c.Name,
		Role:    c.Role,
		X:       pos.X,
		Y:       pos.Y,
		Width:   body.Width,
		Height:  body.Height,
		FacingX: facing.X,
		FacingY: facing.Y,
		HP:      health.Value,
		MaxHP:   health.Max,
	}

	effects := g.ECS.StatusEffects[id]
	for _, kind := range defs.StatusKinds {
		if e, ok := effects.Get(kind); ok {
			view.Statuses = append(view.Statuses, StatusView{Kind: kind, Remaining: e.Remaining})
		}
	}

	if book, ok := g.ECS.SkillBooks[id]; ok {
		for slot, st := range book.Slots {
			view.Skills = append(view.Skills, SkillView{
				Slot:        slot,
				Name:        st.Def.Name,
				Cooldown:    st.Cooldown,
				MaxCooldown: st.Def.Cooldown,
				Stage:       st.Stage,
				Window:      st.Window,
				Ready:       st.Ready() || st.Stage == 2,
			})
		}
		sort.Slice(view.Skills, func(i, j int) bool { return view.Skills[i].Slot < view.Skills[j].Slot })
	}

	if p, ok := g.ECS.Passives[id]; ok {
		view.Passive = p.Def.Kind
		view.PassiveStacks = p.Stacks
		view.PassiveActive = p.Active
	}
	if flash, ok := g.ECS.DamageFlashes[id]; ok && flash.Duration > 0 {
		view.Flash = utils.Clamp(flash.Timer/flash.Duration, 0, 1)
	}
	return view
}

// Skill возвращает умение бойца по слоту.
func (v CombatantView) Skill(slot int) (SkillView, bool) {
	for _, s := range v.Skills {
		if s.Slot == slot {
			return s, true
		}
	}
	return SkillView{}, false
}

// HasStatus — висит ли на бойце эффект.
func (v CombatantView) HasStatus(kind defs.StatusKind) bool {
	for _, s := range v.Statuses {
		if s.Kind == kind {
			return true
		}
	}
	return false
}
