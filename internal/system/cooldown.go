// internal/system/cooldown.go
package system

import "go-boss-arena/internal/entity"

// CooldownSystem уменьшает перезарядки умений, окна вторых стадий, таймеры атак и меток.
type CooldownSystem struct {
	ecs *entity.ECS
}

func NewCooldownSystem(ecs *entity.ECS) *CooldownSystem {
	return &CooldownSystem{ecs: ecs}
}

func (s *CooldownSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.CombatantIDs() {
		if book, ok := s.ecs.SkillBooks[id]; ok {
			for _, st := range book.Slots {
				if st.Cooldown > 0 {
					st.Cooldown = max(0, st.Cooldown-deltaTime)
				}
				if st.Stage == 2 {
					st.Window -= deltaTime
					if st.Window <= 0 {
						// Окно истекло: возвращаемся к первой стадии, перезарядка первой стадии остаётся
						st.Stage = 1
						st.Window = 0
					}
				}
			}
		}

		if atk, ok := s.ecs.BasicAttacks[id]; ok && atk.Cooldown > 0 {
			atk.Cooldown = max(0, atk.Cooldown-deltaTime)
		}

		if marks, ok := s.ecs.Marks[id]; ok {
			for skillID, mark := range marks.BySkill {
				mark.Remaining -= deltaTime
				if mark.Remaining <= 0 {
					delete(marks.BySkill, skillID)
				}
			}
		}
	}
}
