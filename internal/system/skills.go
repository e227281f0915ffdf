// internal/system/skills.go
package system

import (
	"go-boss-arena/internal/component"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/event"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"

	"github.com/jakecoffman/cp"
)

// SkillSystem — диспетчер умений. Каждый слот — автомат READY -> ON_COOLDOWN -> READY,
// у двухстадийных умений есть ещё окно второй стадии.
// Любой недопустимый каст (перезарядка, цель далеко, заклинатель обездвижен, цель мертва)
// молча игнорируется.
type SkillSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	damage     *DamageSystem
	status     *StatusEffectSystem
	stats      *StatsSystem
	regen      *RegenSystem
	zones      *ZoneSystem
	movement   *MovementSystem
}

func NewSkillSystem(
	ecs *entity.ECS,
	dispatcher *event.Dispatcher,
	damage *DamageSystem,
	status *StatusEffectSystem,
	stats *StatsSystem,
	regen *RegenSystem,
	zones *ZoneSystem,
	movement *MovementSystem,
) *SkillSystem {
	return &SkillSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		damage:     damage,
		status:     status,
		stats:      stats,
		regen:      regen,
		zones:      zones,
		movement:   movement,
	}
}

// Queue ставит каст в очередь; очередь разбирается в шаге атак.
func (s *SkillSystem) Queue(caster types.EntityID, slot int) {
	s.ecs.CastQueue = append(s.ecs.CastQueue, component.CastRequest{Caster: caster, Slot: slot})
}

// ProcessQueue применяет все запросы в порядке поступления.
func (s *SkillSystem) ProcessQueue() {
	queue := s.ecs.CastQueue
	s.ecs.CastQueue = nil
	for _, req := range queue {
		s.Cast(req.Caster, req.Slot)
	}
}

// Cast пытается применить умение из слота. Возвращает false, если каст ничего не сделал.
func (s *SkillSystem) Cast(casterID types.EntityID, slot int) bool {
	if s.ecs.IsOver() {
		return false
	}
	book, ok := s.ecs.SkillBooks[casterID]
	if !ok {
		return false
	}
	st, ok := book.Slot(slot)
	if !ok {
		return false
	}
	if h, ok := s.ecs.Healths[casterID]; !ok || !h.Alive() {
		return false
	}
	if effects, ok := s.ecs.StatusEffects[casterID]; ok && effects.Disabled() {
		return false
	}
	targetID := s.ecs.Opponent(casterID)
	if h, ok := s.ecs.Healths[targetID]; !ok || !h.Alive() {
		return false
	}

	stage := st.Stage
	var cast bool
	switch st.Def.Behavior {
	case defs.BehaviorStrike:
		cast = s.castStrike(casterID, targetID, st)
	case defs.BehaviorLine:
		cast = s.castLine(casterID, targetID, st)
	case defs.BehaviorTwoStage:
		cast = s.castTwoStage(casterID, targetID, st)
	case defs.BehaviorFortify:
		cast = s.castFortify(casterID, st)
	}
	if cast {
		s.dispatcher.Emit(event.SkillCast, event.SkillCastData{
			Caster:  casterID,
			SkillID: st.Def.ID,
			Slot:    slot,
			Stage:   stage,
		})
	}
	return cast
}

// InReach — достаёт ли умение до цели.
func (s *SkillSystem) InReach(casterID, targetID types.EntityID, def *defs.SkillDefinition) bool {
	reach := def.Reach()
	if reach <= 0 {
		return true
	}
	return s.distance(casterID, targetID) <= reach
}

func (s *SkillSystem) distance(a, b types.EntityID) float64 {
	return s.ecs.Positions[a].Vector().Distance(s.ecs.Positions[b].Vector())
}

// castStrike — удар по цели в радиусе. Метка: первый каст по цели без метки ставит её
// и не тратит перезарядку; каст по помеченной цели тратит полную перезарядку.
func (s *SkillSystem) castStrike(casterID, targetID types.EntityID, st *component.SkillState) bool {
	def := st.Def
	if !st.Ready() || !s.InReach(casterID, targetID, def) {
		return false
	}

	charge := def.Cooldown
	if def.Mark != nil {
		marks := s.ecs.Marks[targetID]
		if !marks.Has(def.ID) {
			marks.BySkill[def.ID] = &component.Mark{
				SkillID:   def.ID,
				SourceID:  casterID,
				Remaining: def.Mark.Duration,
			}
			charge = 0
		}
	}

	if def.Damage != nil {
		s.hit(casterID, targetID, def, *def.Damage, def.Damage.Type)
	}
	if def.Status != nil {
		s.status.Apply(targetID, casterID, def.Status.Kind, def.Status.Duration, def.Status.Magnitude)
	}
	if def.Knockback > 0 {
		s.movement.Knockback(targetID, s.ecs.Positions[casterID].Vector(), def.Knockback)
	}
	if def.Reposition != nil {
		s.reposition(casterID, targetID, def.Reposition)
	}
	if def.SelfBuff != nil {
		s.stats.AddModifier(casterID, def.ID, *def.SelfBuff)
	}

	st.Cooldown = charge
	return true
}

// castLine — удар прямоугольником вдоль направления взгляда, затем зона урона.
func (s *SkillSystem) castLine(casterID, targetID types.EntityID, st *component.SkillState) bool {
	def := st.Def
	if !st.Ready() || !s.InReach(casterID, targetID, def) {
		return false
	}
	origin := s.ecs.Positions[casterID].Vector()
	dir := s.aim(casterID, targetID)
	zone := &component.Zone{
		Owner:  casterID,
		Source: def.ID,
		Origin: origin,
		Dir:    dir,
		Length: def.Range,
		Width:  def.Width,
	}

	if s.zones.Contains(zone, targetID) {
		if def.Damage != nil {
			s.hit(casterID, targetID, def, *def.Damage, def.Damage.Type)
		}
		if def.Status != nil {
			s.status.Apply(targetID, casterID, def.Status.Kind, def.Status.Duration, def.Status.Magnitude)
		}
	}

	if z := def.Zone; z != nil {
		zone.Damage = z.Damage.Amount(s.ecs.Stats[casterID], 0)
		zone.Type = z.Damage.Type
		zone.Interval = z.Interval
		zone.TicksLeft = z.Ticks
		s.zones.Spawn(zone)
	}

	st.Cooldown = def.Cooldown
	return true
}

// castTwoStage — первая стадия накладывает статус и открывает окно; вторая стадия
// в окне не требует готовности и сокращает перезарядку.
func (s *SkillSystem) castTwoStage(casterID, targetID types.EntityID, st *component.SkillState) bool {
	def := st.Def
	if st.Stage == 2 {
		if !s.inArea(casterID, targetID, def) {
			return false
		}
		fu := def.FollowUp
		dmgType := fu.Damage.Type
		frozen := s.ecs.StatusEffects[targetID].Has(defs.StatusFrozen)
		if frozen && fu.FrozenBonus != nil {
			dmgType = fu.FrozenBonus.Type
		}

		s.hit(casterID, targetID, def, fu.Damage, dmgType)

		if frozen && fu.FrozenBonus != nil {
			s.status.Remove(targetID, defs.StatusFrozen)
			if fu.FrozenBonus.HealReduction > 0 {
				s.stats.AddModifier(targetID, def.ID+":heal_reduction", defs.ModifierDefinition{
					Stat:     defs.StatHealingReceived,
					Mult:     1 - fu.FrozenBonus.HealReduction,
					Duration: fu.FrozenBonus.Duration,
				})
			}
		}
		if fu.Status != nil {
			s.status.Apply(targetID, casterID, fu.Status.Kind, fu.Status.Duration, fu.Status.Magnitude)
		}

		st.Cooldown *= 1 - def.ComboCooldownReduction
		st.Stage = 1
		st.Window = 0
		return true
	}

	if !st.Ready() || !s.inArea(casterID, targetID, def) {
		return false
	}
	if def.Damage != nil {
		s.hit(casterID, targetID, def, *def.Damage, def.Damage.Type)
	}
	if def.Status != nil {
		s.status.Apply(targetID, casterID, def.Status.Kind, def.Status.Duration, def.Status.Magnitude)
	}
	st.Cooldown = def.Cooldown
	st.Stage = 2
	st.Window = def.Window
	return true
}

// castFortify — временно умножает maxHp (и текущее здоровье) и лечит по тикам.
func (s *SkillSystem) castFortify(casterID types.EntityID, st *component.SkillState) bool {
	def := st.Def
	if !st.Ready() {
		return false
	}
	f := def.Fortify
	s.stats.AddModifier(casterID, def.ID, defs.ModifierDefinition{
		Stat:     defs.StatMaxHP,
		Mult:     f.MaxHPMultiplier,
		Duration: f.Duration,
	})
	h := s.ecs.Healths[casterID]
	h.Value = min(utils.Whole(h.Value*f.MaxHPMultiplier), h.Max)

	if f.HealFraction > 0 {
		ticks := max(f.Ticks, 1)
		s.regen.AddHoT(casterID, &component.HealOverTime{
			Source:    def.ID,
			PerTick:   f.HealFraction * h.Max / float64(ticks),
			Interval:  f.Duration / float64(ticks),
			TicksLeft: ticks,
		})
	}

	st.Cooldown = def.Cooldown
	return true
}

func (s *SkillSystem) hit(casterID, targetID types.EntityID, def *defs.SkillDefinition, formula defs.DamageFormula, dmgType defs.DamageType) {
	base := formula.Amount(s.ecs.Stats[casterID], s.ecs.Healths[targetID].Value)
	s.damage.Resolve(Hit{
		Attacker:     casterID,
		Target:       targetID,
		Base:         base,
		Type:         dmgType,
		CanCrit:      def.CanCrit,
		CanLifesteal: def.Lifesteal,
		Source:       def.ID,
	})
}

// aim — направление умения: куда идёт заклинатель, а если стоит — на цель.
func (s *SkillSystem) aim(casterID, targetID types.EntityID) cp.Vector {
	mv := s.ecs.Movements[casterID]
	if mv.Direction.LengthSq() > 0 {
		return mv.Direction.Normalize()
	}
	return utils.Direction(s.ecs.Positions[casterID].Vector(), s.ecs.Positions[targetID].Vector(), mv.Facing)
}

// inArea — попадает ли цель в круг перед заклинателем.
func (s *SkillSystem) inArea(casterID, targetID types.EntityID, def *defs.SkillDefinition) bool {
	center := s.ecs.Positions[casterID].Vector().Add(s.aim(casterID, targetID).Mult(def.Range))
	body := s.ecs.Bodies[targetID]
	return utils.InCircle(s.ecs.Positions[targetID].Vector(), center, def.Radius+body.Width/2)
}

// reposition переносит заклинателя относительно цели: за спину или вплотную.
func (s *SkillSystem) reposition(casterID, targetID types.EntityID, r *defs.RepositionDefinition) {
	from := s.ecs.Positions[casterID].Vector()
	target := s.ecs.Positions[targetID].Vector()
	dir := utils.Direction(from, target, s.ecs.Movements[casterID].Facing)

	var to cp.Vector
	switch r.Mode {
	case defs.RepositionBehindTarget:
		to = target.Add(dir.Mult(r.Offset))
	default:
		to = target.Sub(dir.Mult(r.Offset))
	}
	s.movement.Teleport(casterID, to)

	newPos := s.ecs.Positions[casterID].Vector()
	s.ecs.Movements[casterID].Facing = utils.Direction(newPos, target, dir)
}
