// internal/system/zone.go
package system

import (
	"go-boss-arena/internal/component"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"
)

// ZoneSystem обрабатывает наземные области урона.
type ZoneSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewZoneSystem(ecs *entity.ECS, damage *DamageSystem) *ZoneSystem {
	return &ZoneSystem{ecs: ecs, damage: damage}
}

// Spawn создаёт зону; первый тик — через один интервал.
func (s *ZoneSystem) Spawn(zone *component.Zone) types.EntityID {
	id := s.ecs.NewEntity()
	zone.TickTimer = zone.Interval
	s.ecs.Zones[id] = zone
	return id
}

func (s *ZoneSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ZoneIDs() {
		zone := s.ecs.Zones[id]
		zone.TickTimer -= deltaTime
		for zone.TicksLeft > 0 && zone.TickTimer <= tickEpsilon {
			zone.TickTimer += zone.Interval
			zone.TicksLeft--
			target := s.ecs.Opponent(zone.Owner)
			if s.Contains(zone, target) {
				s.damage.Resolve(Hit{
					Attacker: zone.Owner,
					Target:   target,
					Base:     zone.Damage,
					Type:     zone.Type,
					Source:   zone.Source,
				})
			}
		}
		if zone.TicksLeft <= 0 {
			delete(s.ecs.Zones, id)
		}
	}
}

// Contains проверяет, стоит ли боец в зоне (с учётом половины его тела).
func (s *ZoneSystem) Contains(zone *component.Zone, id types.EntityID) bool {
	pos, ok := s.ecs.Positions[id]
	body, hasBody := s.ecs.Bodies[id]
	if !ok || !hasBody {
		return false
	}
	return utils.InOrientedRect(pos.Vector(), zone.Origin, zone.Dir, zone.Length+body.Width/2, zone.Width+body.Width)
}
