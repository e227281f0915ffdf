// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS
type EntityID uint64

// Role — роль бойца на арене.
type Role string

const (
	RolePlayer Role = "player"
	RoleEnemy  Role = "enemy"
)

// Opposite возвращает роль противника.
func (r Role) Opposite() Role {
	if r == RolePlayer {
		return RoleEnemy
	}
	return RolePlayer
}
