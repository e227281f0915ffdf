// internal/system/movement.go
package system

import (
	"go-boss-arena/internal/config"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/entity"
	"go-boss-arena/internal/types"
	"go-boss-arena/internal/utils"

	"github.com/jakecoffman/cp"
)

// MovementSystem двигает бойцов, не пускает их в стены и за пределы арены.
type MovementSystem struct {
	ecs   *entity.ECS
	arena defs.ArenaDefinition
	walls []cp.BB
}

func NewMovementSystem(ecs *entity.ECS, arena defs.ArenaDefinition) *MovementSystem {
	walls := make([]cp.BB, 0, len(arena.Walls))
	for _, w := range arena.Walls {
		walls = append(walls, utils.RectBB(w.X, w.Y, w.Width, w.Height))
	}
	return &MovementSystem{ecs: ecs, arena: arena, walls: walls}
}

// Walls возвращает прямоугольники стен.
func (s *MovementSystem) Walls() []cp.BB {
	return s.walls
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.CombatantIDs() {
		pos, ok := s.ecs.Positions[id]
		mv, hasMovement := s.ecs.Movements[id]
		if !ok || !hasMovement || !s.canMove(id) {
			continue
		}
		if mv.Direction.LengthSq() == 0 {
			continue
		}
		speed := config.BaseMoveSpeed * s.ecs.Stats[id].MovementSpeed
		pos.Set(pos.Vector().Add(mv.Direction.Mult(speed * deltaTime)))
		mv.Facing = mv.Direction.Normalize()
		s.confine(id)
	}
	s.separate()
}

func (s *MovementSystem) canMove(id types.EntityID) bool {
	if h, ok := s.ecs.Healths[id]; ok && !h.Alive() {
		return false
	}
	if effects, ok := s.ecs.StatusEffects[id]; ok && effects.Disabled() {
		return false
	}
	return true
}

// Teleport мгновенно переносит бойца, ограничивая позицию ареной.
func (s *MovementSystem) Teleport(id types.EntityID, to cp.Vector) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	pos.Set(to)
	s.confine(id)
}

// Knockback отталкивает бойца от точки from на distance пикселей.
func (s *MovementSystem) Knockback(id types.EntityID, from cp.Vector, distance float64) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	fallback := cp.Vector{X: 1}
	if mv, ok := s.ecs.Movements[id]; ok {
		fallback = mv.Facing.Neg()
	}
	dir := utils.Direction(from, pos.Vector(), fallback)
	s.Teleport(id, pos.Vector().Add(dir.Mult(distance)))
}

// confine выталкивает тело из стен и возвращает в пределы арены.
func (s *MovementSystem) confine(id types.EntityID) {
	s.resolveWalls(id)
	s.clampToArena(id)
}

func (s *MovementSystem) clampToArena(id types.EntityID) {
	pos := s.ecs.Positions[id]
	body := s.ecs.Bodies[id]
	pos.X = utils.Clamp(pos.X, body.Width/2, s.arena.Width-body.Width/2)
	pos.Y = utils.Clamp(pos.Y, body.Height/2, s.arena.Height-body.Height/2)
}

// resolveWalls сдвигает тело по оси наименьшего перекрытия.
func (s *MovementSystem) resolveWalls(id types.EntityID) {
	pos := s.ecs.Positions[id]
	body := s.ecs.Bodies[id]
	for _, wall := range s.walls {
		bb := utils.BodyBB(pos.Vector(), body.Width, body.Height)
		if !bb.Intersects(wall) {
			continue
		}
		overlapX := min(bb.R-wall.L, wall.R-bb.L)
		overlapY := min(bb.T-wall.B, wall.T-bb.B)
		if overlapX <= 0 || overlapY <= 0 {
			continue
		}
		center := wall.Center()
		if overlapX < overlapY {
			if pos.X < center.X {
				pos.X -= overlapX
			} else {
				pos.X += overlapX
			}
		} else {
			if pos.Y < center.Y {
				pos.Y -= overlapY
			} else {
				pos.Y += overlapY
			}
		}
	}
}

// separate расталкивает бойцов поровну, если их тела наложились.
func (s *MovementSystem) separate() {
	a, b := s.ecs.PlayerID, s.ecs.EnemyID
	pa, okA := s.ecs.Positions[a]
	pb, okB := s.ecs.Positions[b]
	if !okA || !okB {
		return
	}
	minDist := (s.ecs.Bodies[a].Width + s.ecs.Bodies[b].Width) / 2
	dist := pa.Vector().Distance(pb.Vector())
	if dist >= minDist {
		return
	}
	dir := utils.Direction(pa.Vector(), pb.Vector(), cp.Vector{X: 1})
	push := (minDist - dist) / 2
	pa.Set(pa.Vector().Sub(dir.Mult(push)))
	pb.Set(pb.Vector().Add(dir.Mult(push)))
	s.confine(a)
	s.confine(b)
}
