// internal/system/ai.go
package system

import (
	"sort"

	"go-boss-arena/internal/component"
	"go-boss-arena/internal/config"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"

	"github.com/jakecoffman/cp"
)

// AISkillView — то, что ИИ знает об одном умении.
type AISkillView struct {
	Slot        int
	Ready       bool
	InRange     bool
	Priority    int
	Chance      float64
	HPThreshold float64
}

// AIView — снимок ситуации для политики ИИ.
type AIView struct {
	Distance         float64
	HPFraction       float64
	TargetHPFraction float64
	AttackRange      float64
	Skills           []AISkillView
}

// AIDecision — поведение до следующего решения и слоты, которые стоит попробовать.
type AIDecision struct {
	Behavior component.AIBehavior
	Skills   []int
}

// Policy выбирает поведение и умения. Попытки каста всё равно проходят проверки диспетчера.
type Policy interface {
	Decide(view AIView) AIDecision
}

// AISystem принимает решения раз в config.ThinkInterval, а направление обновляет каждый кадр.
type AISystem struct {
	ecs      *entity.ECS
	skills   *SkillSystem
	policies map[defs.PolicyKind]Policy
}

func NewAISystem(ecs *entity.ECS, skills *SkillSystem, policies map[defs.PolicyKind]Policy) *AISystem {
	return &AISystem{ecs: ecs, skills: skills, policies: policies}
}

func (s *AISystem) Update(deltaTime float64) {
	for _, id := range s.ecs.CombatantIDs() {
		ctrl, ok := s.ecs.Controllers[id]
		if !ok {
			continue
		}
		mv := s.ecs.Movements[id]
		if !s.canAct(id) {
			mv.Direction = cp.Vector{}
			continue
		}

		ctrl.ThinkTimer -= deltaTime
		if ctrl.ThinkTimer <= 0 {
			ctrl.ThinkTimer += config.ThinkInterval
			if ctrl.ThinkTimer <= 0 {
				ctrl.ThinkTimer = config.ThinkInterval
			}
			if policy, ok := s.policies[ctrl.Policy]; ok {
				decision := policy.Decide(s.View(id))
				ctrl.Behavior = decision.Behavior
				for _, slot := range decision.Skills {
					s.skills.Queue(id, slot)
				}
			}
		}
		s.steer(id, ctrl.Behavior)
	}
}

func (s *AISystem) canAct(id types.EntityID) bool {
	if s.ecs.IsOver() {
		return false
	}
	if h, ok := s.ecs.Healths[id]; !ok || !h.Alive() {
		return false
	}
	if effects, ok := s.ecs.StatusEffects[id]; ok && effects.Disabled() {
		return false
	}
	return true
}

// View строит снимок ситуации для бойца id.
func (s *AISystem) View(id types.EntityID) AIView {
	target := s.ecs.Opponent(id)
	view := AIView{
		Distance:         s.ecs.Positions[id].Vector().Distance(s.ecs.Positions[target].Vector()),
		HPFraction:       s.ecs.Healths[id].Fraction(),
		TargetHPFraction: s.ecs.Healths[target].Fraction(),
		AttackRange:      s.ecs.Stats[id].AttackRange,
	}
	if book, ok := s.ecs.SkillBooks[id]; ok {
		for _, st := range book.Slots {
			view.Skills = append(view.Skills, AISkillView{
				Slot:        st.Def.Slot,
				Ready:       st.Ready() || st.Stage == 2,
				InRange:     s.skills.InReach(id, target, st.Def),
				Priority:    st.Def.AIPriority,
				Chance:      st.Def.AIChance,
				HPThreshold: st.Def.AIHPThreshold,
			})
		}
		sort.Slice(view.Skills, func(i, j int) bool { return view.Skills[i].Slot < view.Skills[j].Slot })
	}
	return view
}

// steer выставляет направление движения для текущего поведения.
func (s *AISystem) steer(id types.EntityID, behavior component.AIBehavior) {
	mv := s.ecs.Movements[id]
	self := s.ecs.Positions[id].Vector()
	target := s.ecs.Positions[s.ecs.Opponent(id)].Vector()
	toward := utils.Direction(self, target, mv.Facing)

	switch behavior {
	case component.AIApproach:
		mv.Direction = toward
	case component.AIFlee:
		mv.Direction = toward.Neg()
	default:
		mv.Direction = cp.Vector{}
		mv.Facing = toward
	}
}

// ChooseBehavior — общее правило выбора поведения: отступать при низком здоровье,
// если нет готового умения спасения, иначе сближаться до дистанции атаки.
func ChooseBehavior(view AIView) component.AIBehavior {
	if view.HPFraction < config.FleeHPFraction && !emergencyReady(view) {
		return component.AIFlee
	}
	if view.Distance > view.AttackRange*config.HoldRangeFactor {
		return component.AIApproach
	}
	return component.AIHold
}

func emergencyReady(view AIView) bool {
	for _, sk := range view.Skills {
		if sk.HPThreshold > 0 && sk.Ready {
			return true
		}
	}
	return false
}

// RangeGatedPolicy кастует первое по приоритету готовое умение, которое достаёт до цели.
type RangeGatedPolicy struct{}

func NewRangeGatedPolicy() *RangeGatedPolicy {
	return &RangeGatedPolicy{}
}

func (p *RangeGatedPolicy) Decide(view AIView) AIDecision {
	decision := AIDecision{Behavior: ChooseBehavior(view)}

	candidates := make([]AISkillView, 0, len(view.Skills))
	for _, sk := range view.Skills {
		if !sk.Ready || !sk.InRange {
			continue
		}
		if sk.HPThreshold > 0 && view.HPFraction >= sk.HPThreshold {
			continue
		}
		candidates = append(candidates, sk)
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Priority < candidates[j].Priority })
	if len(candidates) > 0 {
		decision.Skills = []int{candidates[0].Slot}
	}
	return decision
}

// ProbabilisticPolicy бросает шанс каждого умения при каждом решении, не глядя на
// перезарядку и дистанцию.
type ProbabilisticPolicy struct {
	rng *utils.PRNGService
}

func NewProbabilisticPolicy(rng *utils.PRNGService) *ProbabilisticPolicy {
	return &ProbabilisticPolicy{rng: rng}
}

func (p *ProbabilisticPolicy) Decide(view AIView) AIDecision {
	decision := AIDecision{Behavior: ChooseBehavior(view)}
	for _, sk := range view.Skills {
		if p.rng.Chance(sk.Chance) {
			decision.Skills = append(decision.Skills, sk.Slot)
		}
	}
	return decision
}
